// Package validate cross-checks extracted deal fields against each other and
// against the derived metrics. Warnings are advisory: they never remove a
// field, but they downgrade how much its value should be trusted.
package validate

import (
	"fmt"

	"github.com/crelens/dealsense/internal/metrics"
	"github.com/crelens/dealsense/internal/model"
)

// Validator runs the cross-validation checks with configured tolerances
type Validator struct {
	cfg      model.ValidationConfig
	analysis model.AnalysisConfig
}

// NewValidator creates a validator. The analysis config supplies the default
// amortization used when a loan states a rate but no schedule.
func NewValidator(cfg model.ValidationConfig, analysis model.AnalysisConfig) *Validator {
	return &Validator{cfg: cfg, analysis: analysis}
}

// Report is the outcome of one validation pass
type Report struct {
	Warnings []model.ValidationWarning
	Notes    []string

	// Downgraded lists fields whose extraction confidence should no longer
	// be trusted because a consistency check failed around them
	Downgraded []string

	// Computed holds values derived during validation, such as the
	// calculated annual debt service and any normalized occupancy
	Computed map[string]float64
}

// check is the per-call accumulator
type check struct {
	v      *Validator
	fields map[string]model.ExtractedField
	report *Report
}

func (c *check) num(name string) (float64, bool) {
	f, ok := c.fields[name]
	if !ok {
		return 0, false
	}
	return f.Number()
}

func (c *check) warn(w model.ValidationWarning) {
	c.report.Warnings = append(c.report.Warnings, w)
}

func (c *check) note(format string, args ...interface{}) {
	c.report.Notes = append(c.report.Notes, fmt.Sprintf(format, args...))
}

func (c *check) downgrade(names ...string) {
	c.report.Downgraded = append(c.report.Downgraded, names...)
}

// Validate runs every check against the extracted fields and derived metrics.
// The inputs are never mutated.
func (v *Validator) Validate(fields map[string]model.ExtractedField, derived map[string]model.DerivedMetric) *Report {
	c := &check{
		v:      v,
		fields: fields,
		report: &Report{Computed: make(map[string]float64)},
	}

	c.capRateImpliedNOI()
	c.statedVersusCalculatedCap(derived)
	c.ltvImpliedLoan()
	c.debtServiceCoverage()
	c.negativeEquity()
	c.capRateCompression(derived)
	c.occupancyPlausibility()

	return c.report
}

// capRateImpliedNOI checks that the stated cap rate, purchase price, and NOI
// agree with each other
func (c *check) capRateImpliedNOI() {
	cap, hasCap := c.num("cap_rate")
	price, hasPrice := c.num("purchase_price")
	noi, hasNOI := c.num("noi")
	if !hasCap || !hasPrice || !hasNOI || noi <= 0 {
		return
	}

	implied := cap * price
	variance := abs(implied-noi) / noi
	if variance <= c.v.cfg.CapRateTolerance {
		return
	}

	severity := model.SeverityMedium
	if variance > 2*c.v.cfg.CapRateTolerance {
		severity = model.SeverityHigh
	}
	c.warn(model.ValidationWarning{
		Type:     "cap_rate_noi_mismatch",
		Severity: severity,
		Message: fmt.Sprintf("Cap rate implies NOI of $%.0f, but extracted NOI is $%.0f (%.1f%% variance)",
			implied, noi, variance*100),
		FieldsAffected: []string{"noi", "cap_rate"},
		Stated:         noi,
		Computed:       implied,
		VariancePct:    variance * 100,
	})
	c.downgrade("noi", "cap_rate")
}

// statedVersusCalculatedCap compares the document's cap rate against the one
// derived from NOI and price
func (c *check) statedVersusCalculatedCap(derived map[string]model.DerivedMetric) {
	cap, hasCap := c.num("cap_rate")
	calc, hasCalc := derived["cap_rate"]
	if !hasCap || !hasCalc || calc.Value <= 0 {
		return
	}

	statedPct := cap * 100
	variance := abs(statedPct-calc.Value) / calc.Value
	if variance <= c.v.cfg.CapRateTolerance {
		return
	}

	c.warn(model.ValidationWarning{
		Type:           "cap_rate_calculation_mismatch",
		Severity:       model.SeverityMedium,
		Message:        fmt.Sprintf("Stated cap %.2f%% vs calculated %.2f%%", statedPct, calc.Value),
		FieldsAffected: []string{"cap_rate"},
		Stated:         statedPct,
		Computed:       calc.Value,
		VariancePct:    variance * 100,
	})
}

// ltvImpliedLoan checks the stated LTV against the extracted loan amount
func (c *check) ltvImpliedLoan() {
	ltv, hasLTV := c.num("ltv_pct")
	price, hasPrice := c.num("purchase_price")
	loan, hasLoan := c.num("loan_amount")
	if !hasLTV || !hasPrice || !hasLoan || loan <= 0 {
		return
	}

	implied := ltv * price
	variance := abs(implied-loan) / loan
	if variance <= c.v.cfg.LTVTolerance {
		return
	}

	// HIGH at 5% with the default 2% tolerance
	severity := model.SeverityMedium
	if variance > 2.5*c.v.cfg.LTVTolerance {
		severity = model.SeverityHigh
	}
	c.warn(model.ValidationWarning{
		Type:     "ltv_loan_mismatch",
		Severity: severity,
		Message: fmt.Sprintf("LTV %.1f%% implies loan of $%.0f, but extracted loan is $%.0f",
			ltv*100, implied, loan),
		FieldsAffected: []string{"loan_amount", "ltv_pct"},
		Stated:         loan,
		Computed:       implied,
		VariancePct:    variance * 100,
	})
	c.downgrade("loan_amount", "ltv_pct")
}

// debtServiceCoverage recomputes DSCR from the loan terms. A stated DSCR is
// checked against it; otherwise the computed value is recorded.
func (c *check) debtServiceCoverage() {
	noi, hasNOI := c.num("noi")
	loan, hasLoan := c.num("loan_amount")
	rate, hasRate := c.num("interest_rate")
	if !hasNOI || !hasLoan || !hasRate || loan <= 0 {
		return
	}

	amort, ok := c.num("amort_years")
	if !ok {
		amort = c.v.analysis.DefaultAmortYears
	}
	io, _ := c.num("io_period_years")

	ads := metrics.AnnualDebtService(loan, rate, amort, io)
	if ads <= 0 {
		return
	}
	c.report.Computed["ads_calculated"] = ads
	calc := noi / ads

	stated, hasStated := c.num("dscr")
	if !hasStated || stated <= 0 {
		c.report.Computed["dscr_calculated"] = calc
		c.note("DSCR calculated from loan terms: %.2fx", calc)
		return
	}

	variance := abs(calc-stated) / stated
	if variance <= c.v.cfg.DSCRTolerance {
		return
	}

	severity := model.SeverityMedium
	if variance > 2*c.v.cfg.DSCRTolerance {
		severity = model.SeverityHigh
	}
	c.warn(model.ValidationWarning{
		Type:     "dscr_calculation_mismatch",
		Severity: severity,
		Message: fmt.Sprintf("DSCR calc: NOI $%.0f / ADS $%.0f = %.2fx, but stated is %.2fx",
			noi, ads, calc, stated),
		FieldsAffected: []string{"dscr"},
		Stated:         stated,
		Computed:       calc,
		VariancePct:    variance * 100,
	})
	c.downgrade("dscr")
}

// negativeEquity flags a loan larger than the purchase price
func (c *check) negativeEquity() {
	price, hasPrice := c.num("purchase_price")
	loan, hasLoan := c.num("loan_amount")
	if !hasPrice || !hasLoan || price <= 0 {
		return
	}
	if loan <= price {
		return
	}
	c.warn(model.ValidationWarning{
		Type:           "negative_equity",
		Severity:       model.SeverityHigh,
		Message:        fmt.Sprintf("Loan amount $%.0f exceeds purchase price $%.0f", loan, price),
		FieldsAffected: []string{"loan_amount", "purchase_price"},
		Stated:         loan,
		Computed:       price,
	})
}

// capRateCompression flags an exit cap assumed below the entry cap
func (c *check) capRateCompression(derived map[string]model.DerivedMetric) {
	exit, hasExit := c.num("exit_cap_rate")
	if !hasExit {
		return
	}
	entry, hasEntry := c.num("cap_rate")
	if !hasEntry {
		if m, ok := derived["cap_rate"]; ok {
			entry = m.Value / 100
			hasEntry = true
		}
	}
	if !hasEntry {
		return
	}

	// More than 50bps of assumed compression
	if exit-entry >= -0.005 {
		return
	}
	c.warn(model.ValidationWarning{
		Type:     "cap_rate_compression",
		Severity: model.SeverityLow,
		Message: fmt.Sprintf("Exit cap %.2f%% below entry cap %.2f%% (aggressive assumption)",
			exit*100, entry*100),
		FieldsAffected: []string{"exit_cap_rate"},
		Stated:         exit * 100,
		Computed:       entry * 100,
	})
}

// occupancyPlausibility normalizes percent-form occupancy and flags
// implausibly low values
func (c *check) occupancyPlausibility() {
	occ, ok := c.num("occupancy_pct")
	if !ok {
		return
	}
	if occ > 1.0 {
		occ = occ / 100
		c.report.Computed["occupancy_normalized"] = occ
		c.note("Occupancy normalized from percent form to %.2f", occ)
	}
	if occ >= c.v.cfg.MinPlausibleOccupancy {
		return
	}
	c.warn(model.ValidationWarning{
		Type:           "low_occupancy",
		Severity:       model.SeverityHigh,
		Message:        fmt.Sprintf("Occupancy %.1f%% is unusually low", occ*100),
		FieldsAffected: []string{"occupancy_pct"},
		Stated:         occ * 100,
	})
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
