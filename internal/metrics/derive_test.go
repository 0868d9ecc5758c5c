package metrics

import (
	"math"
	"testing"

	"github.com/crelens/dealsense/internal/model"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) <= 1e-3*(1+math.Abs(b))
}

func deal(values map[string]float64) map[string]model.ExtractedField {
	fields := make(map[string]model.ExtractedField, len(values))
	for name, v := range values {
		fields[name] = model.ExtractedField{Name: name, Value: v, Confidence: 0.9}
	}
	return fields
}

func TestCalculator_CoreRatios(t *testing.T) {
	calc := NewCalculator(model.DefaultConfig().Analysis)

	derived := calc.Derive(deal(map[string]float64{
		"purchase_price": 45000000,
		"noi":            2700000,
		"loan_amount":    30000000,
	}))

	if m, ok := derived["cap_rate"]; !ok {
		t.Fatal("Expected cap_rate to be derived")
	} else if !approx(m.Value, 6.0) {
		t.Errorf("Expected cap rate 6.00, got %v", m.Value)
	}
	if m := derived["ltv"]; !approx(m.Value, 66.667) {
		t.Errorf("Expected LTV 66.67, got %v", m.Value)
	}
	if m := derived["equity"]; !approx(m.Value, 15000000) {
		t.Errorf("Expected equity $15M, got %v", m.Value)
	}
	if m := derived["debt_yield"]; !approx(m.Value, 9.0) {
		t.Errorf("Expected debt yield 9.0, got %v", m.Value)
	}
	if m := derived["cap_rate"]; m.Formula != "NOI / Purchase Price" {
		t.Errorf("Expected cap rate formula, got '%s'", m.Formula)
	}
	if m := derived["cap_rate"]; len(m.Inputs) != 2 {
		t.Errorf("Expected cap rate to list 2 inputs, got %d", len(m.Inputs))
	}
}

func TestCalculator_AmortizingDebtService(t *testing.T) {
	calc := NewCalculator(model.DefaultConfig().Analysis)

	derived := calc.Derive(deal(map[string]float64{
		"noi":           1000000,
		"loan_amount":   10000000,
		"interest_rate": 0.07,
		"amort_years":   25,
	}))

	mc, ok := derived["mortgage_constant"]
	if !ok {
		t.Fatal("Expected mortgage_constant for an amortizing loan")
	}
	if math.Abs(mc.Value-0.08481) > 1e-4 {
		t.Errorf("Expected mortgage constant near 0.0848, got %v", mc.Value)
	}

	ads := derived["annual_debt_service"]
	if !approx(ads.Value, 10000000*mc.Value) {
		t.Errorf("Expected ADS = loan x constant, got %v", ads.Value)
	}
	if ads.Formula != "Loan × Mortgage Constant" {
		t.Errorf("Expected amortizing ADS formula, got '%s'", ads.Formula)
	}

	dscr := derived["dscr"]
	if !approx(dscr.Value, 1000000/ads.Value) {
		t.Errorf("Expected DSCR = NOI/ADS, got %v", dscr.Value)
	}
}

func TestCalculator_InterestOnlyDebtService(t *testing.T) {
	calc := NewCalculator(model.DefaultConfig().Analysis)

	derived := calc.Derive(deal(map[string]float64{
		"noi":             1000000,
		"loan_amount":     10000000,
		"interest_rate":   0.07,
		"io_period_years": 3,
	}))

	ads := derived["annual_debt_service"]
	if !approx(ads.Value, 700000) {
		t.Errorf("Expected IO debt service $700K, got %v", ads.Value)
	}
	if ads.Formula != "Loan × Rate (IO period)" {
		t.Errorf("Expected IO formula, got '%s'", ads.Formula)
	}
	if _, ok := derived["mortgage_constant"]; ok {
		t.Error("Expected no mortgage constant during IO period")
	}
}

func TestCalculator_ExitProjection(t *testing.T) {
	calc := NewCalculator(model.DefaultConfig().Analysis)

	derived := calc.Derive(deal(map[string]float64{
		"purchase_price":    45000000,
		"noi":               2700000,
		"loan_amount":       30000000,
		"exit_cap_rate":     0.065,
		"hold_period_years": 5,
	}))

	// 2.7M growing 3%/yr for 5 years, capped at 6.5%
	exit := derived["exit_value"]
	if !approx(exit.Value, 48154461.5) {
		t.Errorf("Expected exit value ~$48.15M, got %v", exit.Value)
	}

	// 2% sale costs, 90% of the loan still outstanding
	proceeds := derived["net_sale_proceeds"]
	if !approx(proceeds.Value, 48154461.5*0.98-27000000) {
		t.Errorf("Expected net proceeds ~$20.19M, got %v", proceeds.Value)
	}

	em := derived["equity_multiple"]
	if !approx(em.Value, 1.3461) {
		t.Errorf("Expected equity multiple ~1.35x, got %v", em.Value)
	}

	irr := derived["irr"]
	if math.Abs(irr.Value-6.12) > 0.01 {
		t.Errorf("Expected IRR ~6.12%%, got %v", irr.Value)
	}
}

func TestCalculator_ExitCapDefaultsToEntryPlusSpread(t *testing.T) {
	calc := NewCalculator(model.DefaultConfig().Analysis)

	derived := calc.Derive(deal(map[string]float64{
		"purchase_price": 45000000,
		"noi":            2700000,
		"loan_amount":    30000000,
	}))

	// Entry cap 6.00 means a 6.50 assumed exit cap
	exit, ok := derived["exit_value"]
	if !ok {
		t.Fatal("Expected exit projection using default exit cap")
	}
	if !approx(exit.Value, 2700000*math.Pow(1.03, 5)/0.065) {
		t.Errorf("Expected exit value at entry cap + 50bps, got %v", exit.Value)
	}
}

func TestCalculator_GuardedDenominators(t *testing.T) {
	calc := NewCalculator(model.DefaultConfig().Analysis)

	derived := calc.Derive(deal(map[string]float64{
		"purchase_price": 0,
		"noi":            2700000,
	}))
	if _, ok := derived["cap_rate"]; ok {
		t.Error("Expected no cap rate with zero purchase price")
	}

	derived = calc.Derive(deal(map[string]float64{
		"noi": 2700000,
	}))
	if _, ok := derived["dscr"]; ok {
		t.Error("Expected no DSCR without loan terms")
	}

	if got := calc.Derive(deal(nil)); len(got) != 0 {
		t.Errorf("Expected empty metrics for empty fields, got %d", len(got))
	}
}

func TestCalculator_OperationalAndPerUnit(t *testing.T) {
	calc := NewCalculator(model.DefaultConfig().Analysis)

	derived := calc.Derive(deal(map[string]float64{
		"purchase_price":     45000000,
		"gross_income":       5000000,
		"operating_expenses": 2000000,
		"unit_count":         150,
		"building_sf":        120000,
	}))

	if m := derived["expense_ratio"]; !approx(m.Value, 40.0) {
		t.Errorf("Expected 40%% expense ratio, got %v", m.Value)
	}
	if m := derived["price_per_unit"]; !approx(m.Value, 300000) {
		t.Errorf("Expected $300K/unit, got %v", m.Value)
	}
	if m := derived["price_psf"]; !approx(m.Value, 375) {
		t.Errorf("Expected $375/SF, got %v", m.Value)
	}
}

func TestCalculator_RefiProceeds(t *testing.T) {
	calc := NewCalculator(model.DefaultConfig().Analysis)

	derived := calc.Derive(deal(map[string]float64{
		"noi":           2700000,
		"refi_cap_rate": 0.06,
	}))

	// $45M stabilized value at the default 65% refi LTV
	if m := derived["refi_proceeds"]; !approx(m.Value, 29250000) {
		t.Errorf("Expected refi proceeds $29.25M, got %v", m.Value)
	}
}

func TestMortgageConstant(t *testing.T) {
	// 30-year at 7% is the canonical ~0.0798 constant
	if mc := MortgageConstant(0.07, 30); math.Abs(mc-0.07984) > 1e-4 {
		t.Errorf("Expected constant near 0.0798, got %v", mc)
	}

	// Percent-form rates normalize
	if a, b := MortgageConstant(7.0, 30), MortgageConstant(0.07, 30); math.Abs(a-b) > 1e-12 {
		t.Errorf("Expected 7.0 and 0.07 to produce the same constant, got %v vs %v", a, b)
	}

	// Zero rate degenerates to straight-line
	if mc := MortgageConstant(0, 25); !approx(mc, 0.04) {
		t.Errorf("Expected 1/25 for a zero-rate loan, got %v", mc)
	}
}

func TestAnnualDebtService(t *testing.T) {
	if ads := AnnualDebtService(10000000, 0.07, 25, 2); !approx(ads, 700000) {
		t.Errorf("Expected IO debt service during IO period, got %v", ads)
	}
	if ads := AnnualDebtService(0, 0.07, 25, 0); ads != 0 {
		t.Errorf("Expected zero debt service for zero loan, got %v", ads)
	}
}
