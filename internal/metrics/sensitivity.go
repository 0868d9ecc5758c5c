package metrics

import (
	"fmt"
	"math"

	"github.com/crelens/dealsense/internal/model"
)

// Sensitivities stresses the deal along four axes: exit cap expansion, NOI
// swings, interest rate shocks, and leverage changes. Grids that lack the
// inputs they need are simply absent from the result.
func (c *Calculator) Sensitivities(fields map[string]model.ExtractedField, derived map[string]model.DerivedMetric) map[string][]model.SensitivityCell {
	d := &derivation{fields: fields, out: derived}
	grids := make(map[string][]model.SensitivityCell)

	if cells := c.exitCapGrid(d); len(cells) > 0 {
		grids["exit_cap"] = cells
	}
	if cells := c.noiGrid(d); len(cells) > 0 {
		grids["noi"] = cells
	}
	if cells := c.interestRateGrid(d); len(cells) > 0 {
		grids["interest_rate"] = cells
	}
	if cells := c.ltvGrid(d); len(cells) > 0 {
		grids["ltv"] = cells
	}
	return grids
}

// exitCapGrid widens the exit cap by 50 and 100 basis points and reprices
// the exit value
func (c *Calculator) exitCapGrid(d *derivation) []model.SensitivityCell {
	noi, hasNOI := d.num("noi")
	baseValue, hasExit := d.derived("exit_value")
	if !hasNOI || !hasExit || baseValue <= 0 {
		return nil
	}
	hold := d.numOr("hold_period_years", c.cfg.DefaultHoldYears)
	exitNOI := noi * math.Pow(1+c.cfg.NOIGrowthRate, hold)
	baseCap := exitNOI / baseValue

	var cells []model.SensitivityCell
	for _, bps := range []float64{50, 100} {
		newCap := baseCap + bps/10000
		if newCap <= 0 {
			continue
		}
		newValue := exitNOI / newCap
		cells = append(cells, model.SensitivityCell{
			Scenario: fmt.Sprintf("+%.0fbps", bps),
			Values: map[string]float64{
				"exit_value":   newValue,
				"value_change": newValue - baseValue,
				"pct_change":   (newValue - baseValue) / baseValue * 100,
			},
		})
	}
	return cells
}

// noiGrid swings NOI and reports the resulting coverage, marking scenarios
// that fall below the loan's DSCR covenant
func (c *Calculator) noiGrid(d *derivation) []model.SensitivityCell {
	noi, hasNOI := d.num("noi")
	ads, hasADS := d.derived("annual_debt_service")
	if !hasNOI || !hasADS || ads <= 0 {
		return nil
	}
	minDSCR := d.numOr("min_dscr", 0)

	var cells []model.SensitivityCell
	for _, pct := range []float64{-10, -5, 5, 10} {
		newNOI := noi * (1 + pct/100)
		newDSCR := newNOI / ads
		cell := model.SensitivityCell{
			Scenario: fmt.Sprintf("%+.0f%%", pct),
			Values: map[string]float64{
				"noi":  newNOI,
				"dscr": newDSCR,
			},
		}
		if minDSCR > 0 && newDSCR < minDSCR {
			cell.Breach = "DSCR covenant"
		}
		cells = append(cells, cell)
	}
	return cells
}

// interestRateGrid shocks the rate upward and recomputes debt service and
// coverage
func (c *Calculator) interestRateGrid(d *derivation) []model.SensitivityCell {
	noi, hasNOI := d.num("noi")
	loan, hasLoan := d.num("loan_amount")
	rate, hasRate := d.num("interest_rate")
	if !hasNOI || !hasLoan || !hasRate || loan <= 0 {
		return nil
	}
	rate = normalizeRate(rate)
	amort := d.numOr("amort_years", c.cfg.DefaultAmortYears)
	ioYears := d.numOr("io_period_years", 0)
	minDSCR := d.numOr("min_dscr", 0)

	var cells []model.SensitivityCell
	for _, bps := range []float64{100, 200} {
		newRate := rate + bps/10000
		newADS := AnnualDebtService(loan, newRate, amort, ioYears)
		if newADS <= 0 {
			continue
		}
		newDSCR := noi / newADS
		cell := model.SensitivityCell{
			Scenario: fmt.Sprintf("+%.0fbps", bps),
			Values: map[string]float64{
				"rate": newRate * 100,
				"ads":  newADS,
				"dscr": newDSCR,
			},
		}
		if minDSCR > 0 && newDSCR < minDSCR {
			cell.Breach = "DSCR covenant"
		}
		cells = append(cells, cell)
	}
	return cells
}

// ltvGrid moves leverage up and down five points, resizing the loan against
// the purchase price
func (c *Calculator) ltvGrid(d *derivation) []model.SensitivityCell {
	price, hasPrice := d.num("purchase_price")
	baseLTV, hasLTV := d.derived("ltv")
	noi, hasNOI := d.num("noi")
	rate, hasRate := d.num("interest_rate")
	if !hasPrice || !hasLTV || price <= 0 {
		return nil
	}
	amort := d.numOr("amort_years", c.cfg.DefaultAmortYears)
	ioYears := d.numOr("io_period_years", 0)

	var cells []model.SensitivityCell
	for _, change := range []float64{-5, 5} {
		newLTV := baseLTV + change
		if newLTV <= 0 {
			continue
		}
		newLoan := price * newLTV / 100
		values := map[string]float64{
			"ltv":    newLTV,
			"loan":   newLoan,
			"equity": price - newLoan,
		}
		if hasNOI && hasRate {
			if ads := AnnualDebtService(newLoan, rate, amort, ioYears); ads > 0 {
				values["dscr"] = noi / ads
			}
		}
		cells = append(cells, model.SensitivityCell{
			Scenario: fmt.Sprintf("%+.0fpts", change),
			Values:   values,
		})
	}
	return cells
}
