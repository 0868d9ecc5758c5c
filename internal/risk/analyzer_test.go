package risk

import (
	"math"
	"strings"
	"testing"

	"github.com/crelens/dealsense/internal/model"
)

func newTestAnalyzer() *Analyzer {
	return NewAnalyzer(model.DefaultConfig().Risk)
}

func deal(values map[string]float64) map[string]model.ExtractedField {
	fields := make(map[string]model.ExtractedField, len(values))
	for name, v := range values {
		fields[name] = model.ExtractedField{Name: name, Value: v, Confidence: 0.9}
	}
	return fields
}

func metricsOf(values map[string]float64) map[string]model.DerivedMetric {
	derived := make(map[string]model.DerivedMetric, len(values))
	for name, v := range values {
		derived[name] = model.DerivedMetric{Name: name, Value: v}
	}
	return derived
}

func offside(metric string, value, target float64) model.BenchComparison {
	return model.BenchComparison{Metric: metric, Value: value, Target: target, Status: model.StatusOffside}
}

func TestAnalyzer_SeverityMapping(t *testing.T) {
	analyzer := newTestAnalyzer()

	risks := analyzer.Analyze("office", nil, nil, []model.BenchComparison{
		offside("dscr", 1.08, 1.40),
		offside("ltv", 82, 70),
		offside("price_psf", 950, 600),
	}, nil)

	if len(risks) != 3 {
		t.Fatalf("Expected 3 risks, got %d", len(risks))
	}
	bySeverity := map[string]model.Severity{}
	for _, r := range risks {
		bySeverity[r.Metric] = r.Severity
	}
	if bySeverity["dscr"] != model.SeverityHigh {
		t.Errorf("Expected HIGH for dscr, got %s", bySeverity["dscr"])
	}
	if bySeverity["ltv"] != model.SeverityMedium {
		t.Errorf("Expected MEDIUM for ltv, got %s", bySeverity["ltv"])
	}
	if bySeverity["price_psf"] != model.SeverityLow {
		t.Errorf("Expected LOW for price_psf, got %s", bySeverity["price_psf"])
	}
}

func TestAnalyzer_OKComparisonsIgnored(t *testing.T) {
	analyzer := newTestAnalyzer()

	risks := analyzer.Analyze("office", nil, nil, []model.BenchComparison{
		{Metric: "dscr", Value: 1.40, Target: 1.40, Status: model.StatusOK},
		{Metric: "ltv", Value: 72, Target: 70, Status: model.StatusBorderline},
	}, nil)
	if len(risks) != 0 {
		t.Errorf("Expected no risks from OK/Borderline readings, got %d", len(risks))
	}
}

func TestAnalyzer_CoverageMitigations(t *testing.T) {
	analyzer := newTestAnalyzer()

	// 1.08x coverage against a 1.40x target
	fields := deal(map[string]float64{
		"noi":           1000000,
		"interest_rate": 0.07,
	})
	derived := metricsOf(map[string]float64{"annual_debt_service": 925926})

	risks := analyzer.Analyze("hospitality", fields, derived, []model.BenchComparison{
		offside("dscr", 1.08, 1.40),
	}, nil)
	if len(risks) != 1 {
		t.Fatalf("Expected 1 risk, got %d", len(risks))
	}
	risk := risks[0]
	if risk.Severity != model.SeverityHigh {
		t.Errorf("Expected HIGH severity, got %s", risk.Severity)
	}
	if len(risk.Mitigations) != 2 {
		t.Fatalf("Expected paydown and NOI growth mitigations, got %d", len(risk.Mitigations))
	}

	// (925926 - 1000000/1.40) / 0.07
	paydown := risk.Mitigations[0]
	if math.Abs(paydown.DollarImpact-(-3023433)) > 10 {
		t.Errorf("Expected ~$3.02M paydown, got %v", paydown.DollarImpact)
	}
	// 1.40 * 925926 - 1000000
	lift := risk.Mitigations[1]
	if math.Abs(lift.DollarImpact-296296) > 10 {
		t.Errorf("Expected ~$296K NOI lift, got %v", lift.DollarImpact)
	}
}

func TestAnalyzer_LeverageMitigations(t *testing.T) {
	analyzer := newTestAnalyzer()

	fields := deal(map[string]float64{
		"purchase_price": 20000000,
		"loan_amount":    16000000,
		"interest_rate":  0.07,
	})
	risks := analyzer.Analyze("multifamily", fields, nil, []model.BenchComparison{
		offside("ltv", 80, 70),
	}, nil)
	if len(risks) != 1 {
		t.Fatalf("Expected 1 risk, got %d", len(risks))
	}

	// $16M loan against a 70% target on $20M needs $2M out
	equity := risks[0].Mitigations[0]
	if math.Abs(equity.DollarImpact-(-2000000)) > 1 {
		t.Errorf("Expected -$2M equity top-up, got %v", equity.DollarImpact)
	}
	saved := risks[0].Mitigations[1]
	if math.Abs(saved.DollarImpact-140000) > 1 {
		t.Errorf("Expected $140K annual interest saved, got %v", saved.DollarImpact)
	}
}

func TestAnalyzer_IndustrialClearHeight(t *testing.T) {
	analyzer := newTestAnalyzer()

	fields := deal(map[string]float64{
		"noi":         940000,
		"building_sf": 100000,
	})
	risks := analyzer.Analyze("industrial", fields, nil, []model.BenchComparison{
		offside("clear_height", 28, 36),
	}, nil)
	if len(risks) != 1 {
		t.Fatalf("Expected 1 risk, got %d", len(risks))
	}

	mitigations := risks[0].Mitigations
	if len(mitigations) != 2 {
		t.Fatalf("Expected rent discount and roof raise, got %d", len(mitigations))
	}
	// 4 feet short of 32' at 2%/ft is an 8% discount on $1M gross rent
	if math.Abs(mitigations[0].DollarImpact-(-80000)) > 1 {
		t.Errorf("Expected -$80K rent discount, got %v", mitigations[0].DollarImpact)
	}
	if math.Abs(mitigations[1].DollarImpact-(-2500000)) > 1 {
		t.Errorf("Expected -$2.5M roof raise, got %v", mitigations[1].DollarImpact)
	}
}

func TestAnalyzer_IndustrialDockDoors(t *testing.T) {
	analyzer := newTestAnalyzer()

	risks := analyzer.Analyze("industrial", nil, nil, []model.BenchComparison{
		offside("dock_doors", 12, 20),
	}, nil)
	if len(risks) != 1 {
		t.Fatalf("Expected 1 risk, got %d", len(risks))
	}
	// 8 doors short at $35K installed
	if math.Abs(risks[0].Mitigations[0].DollarImpact-(-280000)) > 1 {
		t.Errorf("Expected -$280K door cost, got %v", risks[0].Mitigations[0].DollarImpact)
	}
}

func TestAnalyzer_RetailAnchorRollover(t *testing.T) {
	analyzer := newTestAnalyzer()

	fields := deal(map[string]float64{
		"anchor_remaining_term_years": 6,
		"noi":                         1000000,
		"market_rent":                 20,
	})
	fields["top_tenants"] = model.ExtractedField{
		Name:  "top_tenants",
		Value: []model.Tenant{{Name: "GROCER LLC", SF: 45000}},
	}

	risks := analyzer.Analyze("retail", fields, nil, nil, nil)
	if len(risks) != 1 {
		t.Fatalf("Expected anchor rollover risk, got %d risks", len(risks))
	}
	risk := risks[0]
	if risk.Metric != "anchor_remaining_term_years" {
		t.Errorf("Expected anchor term risk, got %s", risk.Metric)
	}
	if risk.Severity != model.SeverityMedium {
		t.Errorf("Expected MEDIUM severity, got %s", risk.Severity)
	}
	if len(risk.Mitigations) != 4 {
		t.Fatalf("Expected 4 mitigations, got %d", len(risk.Mitigations))
	}
	// Backfill at half the spread over $12 base: 45000 * 8 * 0.5
	if math.Abs(risk.Mitigations[2].DollarImpact-180000) > 1 {
		t.Errorf("Expected $180K backfill upside, got %v", risk.Mitigations[2].DollarImpact)
	}
	// Co-tenancy exposure is 15% of NOI
	if math.Abs(risk.Mitigations[3].DollarImpact-(-150000)) > 1 {
		t.Errorf("Expected -$150K co-tenancy exposure, got %v", risk.Mitigations[3].DollarImpact)
	}

	// A long anchor lease raises nothing
	long := deal(map[string]float64{"anchor_remaining_term_years": 15})
	if risks := analyzer.Analyze("retail", long, nil, nil, nil); len(risks) != 0 {
		t.Errorf("Expected no risk for a 15-year anchor, got %d", len(risks))
	}
}

func TestAnalyzer_HospitalityRevPAR(t *testing.T) {
	analyzer := newTestAnalyzer()

	fields := deal(map[string]float64{"keys": 200})
	risks := analyzer.Analyze("hospitality", fields, nil, []model.BenchComparison{
		offside("revpar", 95, 120),
	}, nil)
	if len(risks) != 1 {
		t.Fatalf("Expected 1 risk, got %d", len(risks))
	}

	mitigations := risks[0].Mitigations
	// $25 gap across 200 keys for a year
	if math.Abs(mitigations[0].DollarImpact-1825000) > 1 {
		t.Errorf("Expected $1.825M RevPAR upside, got %v", mitigations[0].DollarImpact)
	}
	// PIP at $15K/key
	if math.Abs(mitigations[1].DollarImpact-(-3000000)) > 1 {
		t.Errorf("Expected -$3M PIP, got %v", mitigations[1].DollarImpact)
	}
}

func TestAnalyzer_MultifamilyExpenseRatio(t *testing.T) {
	analyzer := newTestAnalyzer()

	fields := deal(map[string]float64{
		"gross_income": 5000000,
		"unit_count":   150,
	})
	risks := analyzer.Analyze("multifamily", fields, nil, []model.BenchComparison{
		offside("expense_ratio", 48, 40),
	}, nil)
	if len(risks) != 1 {
		t.Fatalf("Expected 1 risk, got %d", len(risks))
	}

	mitigations := risks[0].Mitigations
	if len(mitigations) != 3 {
		t.Fatalf("Expected 3 mitigations, got %d", len(mitigations))
	}
	// 8 points of expense ratio on $5M revenue
	if math.Abs(mitigations[0].DollarImpact-400000) > 1 {
		t.Errorf("Expected $400K expense cut, got %v", mitigations[0].DollarImpact)
	}
	// RUBS at $30/unit/mo across 150 units
	if math.Abs(mitigations[1].DollarImpact-54000) > 1 {
		t.Errorf("Expected $54K RUBS, got %v", mitigations[1].DollarImpact)
	}
}

func TestAnalyzer_HighWarningsBecomeRisks(t *testing.T) {
	analyzer := newTestAnalyzer()

	warnings := []model.ValidationWarning{
		{Type: "negative_equity", Severity: model.SeverityHigh, Message: "Loan amount $22000000 exceeds purchase price $20000000"},
		{Type: "cap_rate_calculation_mismatch", Severity: model.SeverityMedium, Message: "Stated cap 6.75% vs calculated 6.00%"},
	}
	risks := analyzer.Analyze("office", nil, nil, nil, warnings)
	if len(risks) != 1 {
		t.Fatalf("Expected only the HIGH warning promoted, got %d risks", len(risks))
	}
	risk := risks[0]
	if risk.Metric != "negative_equity" {
		t.Errorf("Expected negative_equity risk, got %s", risk.Metric)
	}
	if len(risk.Mitigations) != 2 {
		t.Errorf("Expected verify/request mitigations, got %d", len(risk.Mitigations))
	}
	if !strings.Contains(risk.Mitigations[0].Action, "Verify and reconcile") {
		t.Errorf("Expected reconciliation action, got '%s'", risk.Mitigations[0].Action)
	}
}

func TestAnalyzer_SortOrder(t *testing.T) {
	analyzer := newTestAnalyzer()

	fields := deal(map[string]float64{
		"purchase_price": 20000000,
		"loan_amount":    16000000,
		"interest_rate":  0.07,
		"noi":            1000000,
	})
	derived := metricsOf(map[string]float64{"annual_debt_service": 925926})

	risks := analyzer.Analyze("multifamily", fields, derived, []model.BenchComparison{
		offside("price_per_unit", 450000, 150000),
		offside("ltv", 80, 70),
		offside("dscr", 1.08, 1.40),
	}, nil)

	if len(risks) != 3 {
		t.Fatalf("Expected 3 risks, got %d", len(risks))
	}
	if risks[0].Metric != "dscr" {
		t.Errorf("Expected HIGH dscr risk first, got %s", risks[0].Metric)
	}
	if risks[1].Metric != "ltv" {
		t.Errorf("Expected MEDIUM ltv risk second, got %s", risks[1].Metric)
	}
	if risks[2].Metric != "price_per_unit" {
		t.Errorf("Expected LOW risk last, got %s", risks[2].Metric)
	}
}

func TestAnalyzer_EveryRiskHasMitigation(t *testing.T) {
	analyzer := newTestAnalyzer()

	// No fields at all: quantified rules cannot fire, fallback must
	risks := analyzer.Analyze("office", nil, nil, []model.BenchComparison{
		offside("walt", 2.1, 7.0),
		offside("noi_growth", 0.5, 3.5),
	}, nil)
	for _, r := range risks {
		if len(r.Mitigations) == 0 {
			t.Errorf("Expected at least one mitigation for %s", r.Metric)
		}
	}
}
