// Package metrics derives financial metrics from extracted deal fields and
// projects them under stressed assumptions.
package metrics

import (
	"math"

	"github.com/crelens/dealsense/internal/model"
)

// Calculator derives financial metrics from an extracted field map.
// Projection assumptions (growth, hold, balance factor) come from config.
type Calculator struct {
	cfg model.AnalysisConfig
}

// NewCalculator creates a calculator with the given projection assumptions
func NewCalculator(cfg model.AnalysisConfig) *Calculator {
	return &Calculator{cfg: cfg}
}

// derivation accumulates the metric map for one Derive call
type derivation struct {
	fields map[string]model.ExtractedField
	out    map[string]model.DerivedMetric
}

func (d *derivation) num(name string) (float64, bool) {
	f, ok := d.fields[name]
	if !ok {
		return 0, false
	}
	return f.Number()
}

func (d *derivation) numOr(name string, fallback float64) float64 {
	if v, ok := d.num(name); ok {
		return v
	}
	return fallback
}

func (d *derivation) add(name string, value float64, formula string, inputs ...string) {
	d.out[name] = model.DerivedMetric{
		Name:    name,
		Value:   value,
		Formula: formula,
		Inputs:  inputs,
	}
}

// derived returns a previously computed metric value
func (d *derivation) derived(name string) (float64, bool) {
	m, ok := d.out[name]
	return m.Value, ok
}

// Derive computes every metric the extracted fields support. Metrics whose
// inputs are missing or whose denominators are zero are simply absent from
// the result; the unknown ledger reports why.
func (c *Calculator) Derive(fields map[string]model.ExtractedField) map[string]model.DerivedMetric {
	d := &derivation{fields: fields, out: make(map[string]model.DerivedMetric)}

	price, hasPrice := d.num("purchase_price")
	noi, hasNOI := d.num("noi")
	loan, hasLoan := d.num("loan_amount")
	rate, hasRate := d.num("interest_rate")
	rate = normalizeRate(rate)

	if hasPrice && hasNOI && price > 0 {
		d.add("cap_rate", noi/price*100, "NOI / Purchase Price", "noi", "purchase_price")
	}
	if hasPrice && hasLoan && price > 0 {
		d.add("ltv", loan/price*100, "Loan / Purchase Price", "loan_amount", "purchase_price")
	}
	if hasPrice && hasLoan {
		d.add("equity", price-loan, "Purchase Price - Loan", "purchase_price", "loan_amount")
	}
	if hasPrice && hasNOI && price > 0 {
		closing := d.numOr("closing_costs", 0.02)
		if closing >= 1 {
			// Stated as a dollar figure, not a percentage
			closing = closing / price
		}
		cost := price * (1 + closing)
		if cost > 0 {
			d.add("yield_on_cost", noi/cost*100, "NOI / (Purchase Price + Closing Costs)",
				"noi", "purchase_price", "closing_costs")
		}
	}

	// Debt service and coverage
	amort := d.numOr("amort_years", c.cfg.DefaultAmortYears)
	ioYears := d.numOr("io_period_years", 0)
	if hasLoan && hasRate && loan > 0 {
		ads := 0.0
		adsFormula := ""
		if ioYears > 0 || amort == 0 {
			ads = loan * rate
			adsFormula = "Loan × Rate (IO period)"
		} else {
			mc := MortgageConstant(rate, amort)
			d.add("mortgage_constant", mc, "12 * (r*(1+r)^n)/((1+r)^n - 1)",
				"interest_rate", "amort_years")
			ads = loan * mc
			adsFormula = "Loan × Mortgage Constant"
		}
		if ads > 0 {
			d.add("annual_debt_service", ads, adsFormula, "loan_amount", "interest_rate", "amort_years")
			if hasNOI {
				d.add("dscr", noi/ads, "NOI / Annual Debt Service", "noi", "annual_debt_service")
			}
		}
	}
	if hasLoan && hasNOI && loan > 0 {
		d.add("debt_yield", noi/loan*100, "NOI / Loan Amount", "noi", "loan_amount")
	}

	if equity, ok := d.derived("equity"); ok && equity > 0 {
		if ads, ok := d.derived("annual_debt_service"); ok && hasNOI {
			d.add("cash_on_cash", (noi-ads)/equity*100, "(NOI - Debt Service) / Equity",
				"noi", "annual_debt_service", "equity")
		}
	}

	// Exit projection
	hold := d.numOr("hold_period_years", c.cfg.DefaultHoldYears)
	exitCap, hasExitCap := d.num("exit_cap_rate")
	if !hasExitCap {
		// Conventional underwriting default: entry cap plus 50bps
		if entry, ok := d.derived("cap_rate"); ok {
			exitCap = (entry + 0.5) / 100
			hasExitCap = true
		}
	}
	exitCap = normalizeRate(exitCap)

	if hasNOI && hasExitCap && exitCap > 0 && hold > 0 {
		d.add("exit_cap_rate", exitCap*100, "Stated, or entry cap + 50bps", "exit_cap_rate", "cap_rate")
		exitNOI := noi * math.Pow(1+c.cfg.NOIGrowthRate, hold)
		exitValue := exitNOI / exitCap
		d.add("exit_value", exitValue, "NOI_Year_N / Exit Cap",
			"noi", "exit_cap_rate", "hold_period_years")

		saleCosts := d.numOr("disposition_fee_pct", 0.02)
		balance := loan * c.cfg.RemainingBalanceFactor
		netProceeds := exitValue*(1-saleCosts) - balance
		d.add("net_sale_proceeds", netProceeds, "Exit Value × (1 - Sale Costs) - Loan Balance",
			"exit_value", "disposition_fee_pct", "loan_amount")

		if equity, ok := d.derived("equity"); ok && equity > 0 && netProceeds > 0 {
			em := netProceeds / equity
			d.add("equity_multiple", em, "Net Sale Proceeds / Equity", "net_sale_proceeds", "equity")
			d.add("irr", (math.Pow(em, 1/hold)-1)*100, "(Equity Multiple ^ (1/Hold) - 1)",
				"equity_multiple", "hold_period_years")
		}
	}

	// Refinance proceeds
	if refiCap, ok := d.num("refi_cap_rate"); ok && hasNOI {
		refiCap = normalizeRate(refiCap)
		if refiCap > 0 {
			refiLTV := normalizeRate(d.numOr("refi_ltv_target", 0.65))
			d.add("refi_proceeds", noi/refiCap*refiLTV, "(NOI / Refi Cap) × Refi LTV",
				"noi", "refi_cap_rate", "refi_ltv_target")
		}
	}

	// Operational ratios
	if egi, ok := d.num("gross_income"); ok && egi > 0 {
		if opex, ok := d.num("operating_expenses"); ok {
			d.add("expense_ratio", opex/egi*100, "Operating Expenses / EGI",
				"operating_expenses", "gross_income")
		}
	}

	// Per-unit pricing
	if hasPrice {
		if units, ok := d.num("unit_count"); ok && units > 0 {
			d.add("price_per_unit", price/units, "Purchase Price / Units", "purchase_price", "unit_count")
		}
		if sf, ok := d.num("building_sf"); ok && sf > 0 {
			d.add("price_psf", price/sf, "Purchase Price / SF", "purchase_price", "building_sf")
		}
	}

	return d.out
}

// MortgageConstant is the annual payment per dollar of loan for a fully
// amortizing loan at the given annual rate over amortYears. A zero rate
// degenerates to straight-line repayment.
func MortgageConstant(rate float64, amortYears float64) float64 {
	rate = normalizeRate(rate)
	if amortYears <= 0 {
		return rate
	}
	monthly := rate / 12
	n := amortYears * 12
	if monthly <= 0 {
		return 1 / amortYears
	}
	compound := math.Pow(1+monthly, n)
	return 12 * (monthly * compound) / (compound - 1)
}

// AnnualDebtService computes debt service for a loan, honoring an
// interest-only period when one applies.
func AnnualDebtService(loan, rate, amortYears, ioYears float64) float64 {
	rate = normalizeRate(rate)
	if loan <= 0 {
		return 0
	}
	if ioYears > 0 || amortYears <= 0 {
		return loan * rate
	}
	return loan * MortgageConstant(rate, amortYears)
}

// normalizeRate accepts rates stated either as fractions (0.065) or
// percentages (6.5) and returns the fraction form
func normalizeRate(rate float64) float64 {
	if rate > 1 {
		return rate / 100
	}
	return rate
}
