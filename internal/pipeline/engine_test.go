package pipeline

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/crelens/dealsense/internal/model"
)

const sampleDeal = `
Property: Riverside Commons Apartments
Purchase Price: $45,000,000
NOI: $2,700,000
Loan Amount: $30,000,000
Interest Rate: 6.25%
Amortization: 30 years
Exit Cap Rate: 6.5%
Hold Period: 5 years
Occupancy: 94%
Unit Count: 220 units
`

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = false
	engine, err := NewEngine(cfg, nil)
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	return engine
}

func TestEngine_AnalyzeText_FullDeal(t *testing.T) {
	engine := newTestEngine(t)

	result := engine.AnalyzeText(context.Background(), sampleDeal)

	if result.AssetClass != "multifamily" {
		t.Errorf("expected multifamily, got %s", result.AssetClass)
	}
	if result.Subclass == "" {
		t.Error("expected a subclass from the first-subclass fallback")
	}
	if result.AnalyzedAt.IsZero() {
		t.Error("expected AnalyzedAt to be set")
	}

	if _, ok := result.Ingested["purchase_price"]; !ok {
		t.Fatal("expected purchase_price in ingested fields")
	}
	if label, ok := result.Confidence["purchase_price"]; !ok || label == "" {
		t.Error("expected a confidence label for purchase_price")
	}

	capRate, ok := result.Derived["cap_rate"]
	if !ok {
		t.Fatal("expected derived cap_rate")
	}
	if math.Abs(capRate.Value-6.0) > 0.01 {
		t.Errorf("expected cap_rate 6.00, got %v", capRate.Value)
	}
	if _, ok := result.Derived["dscr"]; !ok {
		t.Error("expected derived dscr")
	}

	foundCapRate := false
	for _, cmp := range result.BenchCompare {
		if cmp.Metric == "cap_rate" {
			foundCapRate = true
			if cmp.Status == model.StatusUnknown {
				t.Error("cap_rate comparison should not be Unknown")
			}
		}
	}
	if !foundCapRate {
		t.Error("expected a cap_rate benchmark comparison")
	}

	if len(result.CashFlows) != 5 {
		t.Errorf("expected 5 years of cash flows, got %d", len(result.CashFlows))
	}
	if len(result.Sensitivities) == 0 {
		t.Error("expected sensitivity grids")
	}
	if result.Summary == "" {
		t.Error("expected a principal summary")
	}
	if result.Polished != nil {
		t.Error("expected no polished summary with LLM disabled")
	}
	if result.Completeness.Required == 0 {
		t.Error("expected a non-zero required-field count")
	}
	if len(result.Known) == 0 {
		t.Error("expected known entries for an extracted deal")
	}
}

func newClassEngine(t *testing.T, class, subclass string) *Engine {
	t.Helper()
	cfg := model.DefaultConfig()
	cfg.Analysis.DefaultAssetClass = class
	cfg.Analysis.DefaultSubclass = subclass
	cfg.Cache.Enabled = false
	engine, err := NewEngine(cfg, nil)
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	return engine
}

func TestEngine_AnalyzeText_IndustrialClearHeightRisk(t *testing.T) {
	engine := newClassEngine(t, "industrial", "bulk_distribution")

	text := `
Bulk Distribution Warehouse
Building Size: 420,000 SF
Clear Height: 24 FT
Dock Doors: 4
Occupancy: 96%
NOI: $2,400,000
Purchase Price: $48,000,000
`
	result := engine.AnalyzeText(context.Background(), text)

	if v, ok := result.Ingested["clear_height_ft"].(float64); !ok || v != 24 {
		t.Fatalf("expected clear_height_ft 24, got %v", result.Ingested["clear_height_ft"])
	}
	if v, ok := result.Ingested["dock_doors_count"].(float64); !ok || v != 4 {
		t.Fatalf("expected dock_doors_count 4, got %v", result.Ingested["dock_doors_count"])
	}

	var clearHeight, dockDoors *model.RiskItem
	for i := range result.RisksRanked {
		switch result.RisksRanked[i].Metric {
		case "clear_height":
			clearHeight = &result.RisksRanked[i]
		case "dock_doors":
			dockDoors = &result.RisksRanked[i]
		}
	}

	if clearHeight == nil {
		t.Fatal("expected a clear_height risk for a 24' warehouse against a 32' band")
	}
	if len(clearHeight.Mitigations) != 2 {
		t.Fatalf("expected rent-discount and roof-raise mitigations, got %d", len(clearHeight.Mitigations))
	}
	for _, m := range clearHeight.Mitigations {
		if m.DollarImpact >= 0 {
			t.Errorf("expected clear height mitigations to carry costs, got %v for %q", m.DollarImpact, m.Action)
		}
	}

	if dockDoors == nil {
		t.Fatal("expected a dock_doors risk for 4 doors against a 20-door floor")
	}
	// 36 doors short of the 40-door target at $35,000 installed
	if got := dockDoors.Mitigations[0].DollarImpact; math.Abs(got-(-1260000)) > 1 {
		t.Errorf("expected dock door install cost -1260000, got %v", got)
	}
}

func TestEngine_AnalyzeText_HospitalityGOPRisk(t *testing.T) {
	engine := newClassEngine(t, "hospitality", "full_service")

	text := `
Full Service Hotel
Keys: 220
ADR: $195
RevPAR: $82
GOP Margin: 22%
Occupancy: 68%
NOI: $3,100,000
Purchase Price: $42,000,000
`
	result := engine.AnalyzeText(context.Background(), text)

	if v, ok := result.Ingested["gop_margin_pct"].(float64); !ok || math.Abs(v-0.22) > 1e-9 {
		t.Fatalf("expected gop_margin_pct 0.22, got %v", result.Ingested["gop_margin_pct"])
	}
	if v, ok := result.Ingested["keys"].(float64); !ok || v != 220 {
		t.Fatalf("expected keys 220, got %v", result.Ingested["keys"])
	}

	var gop, revpar *model.RiskItem
	for i := range result.RisksRanked {
		switch result.RisksRanked[i].Metric {
		case "gop_margin":
			gop = &result.RisksRanked[i]
		case "revpar":
			revpar = &result.RisksRanked[i]
		}
	}

	if gop == nil {
		t.Fatal("expected a gop_margin risk at 22% against a 28-42% band")
	}
	foundNOILift := false
	for _, m := range gop.Mitigations {
		// Revenue-management lift is 3% of the $3.1M NOI
		if math.Abs(m.DollarImpact-93000) < 1 {
			foundNOILift = true
		}
	}
	if !foundNOILift {
		t.Errorf("expected a 93000 NOI-lift mitigation, got %+v", gop.Mitigations)
	}

	if revpar == nil {
		t.Fatal("expected a revpar risk at $82 against a $95 floor")
	}
	if len(revpar.Mitigations) != 2 {
		t.Fatalf("expected gap-close and PIP mitigations, got %d", len(revpar.Mitigations))
	}
	// PIP budget at $15,000 across 220 keys
	if got := revpar.Mitigations[1].DollarImpact; math.Abs(got-(-3300000)) > 1 {
		t.Errorf("expected PIP budget -3300000, got %v", got)
	}
}

func TestEngine_AnalyzeText_RetailSalesAndAnchorRisk(t *testing.T) {
	engine := newClassEngine(t, "retail", "grocery_anchored")

	text := `
Grocery Anchored Retail Center
Building Size: 95,000 SF
Anchor Tenant: Kroger
Anchor Remaining Term: 6 years
Tenant Sales: $310/SF
NOI: $1,800,000
Purchase Price: $30,000,000
`
	result := engine.AnalyzeText(context.Background(), text)

	if v, ok := result.Ingested["sales_psf"].(float64); !ok || v != 310 {
		t.Fatalf("expected sales_psf 310, got %v", result.Ingested["sales_psf"])
	}
	if v, ok := result.Ingested["anchor_remaining_term_years"].(float64); !ok || v != 6 {
		t.Fatalf("expected anchor_remaining_term_years 6, got %v", result.Ingested["anchor_remaining_term_years"])
	}

	var sales, anchor *model.RiskItem
	for i := range result.RisksRanked {
		switch result.RisksRanked[i].Metric {
		case "sales_psf":
			sales = &result.RisksRanked[i]
		case "anchor_remaining_term_years":
			anchor = &result.RisksRanked[i]
		}
	}

	if sales == nil {
		t.Fatal("expected a sales_psf risk at $310 against a $350 floor")
	}
	if len(sales.Mitigations) != 2 {
		t.Fatalf("expected remerchandise and marketing mitigations, got %d", len(sales.Mitigations))
	}

	if anchor == nil {
		t.Fatal("expected an anchor rollover risk with 6 years remaining")
	}
	if anchor.Severity != model.SeverityMedium {
		t.Errorf("expected medium severity for anchor rollover, got %s", anchor.Severity)
	}
	foundCoTenancy := false
	for _, m := range anchor.Mitigations {
		// Co-tenancy exposure at 15% of the $1.8M NOI
		if math.Abs(m.DollarImpact-(-270000)) < 1 {
			foundCoTenancy = true
		}
	}
	if !foundCoTenancy {
		t.Errorf("expected a -270000 co-tenancy mitigation, got %+v", anchor.Mitigations)
	}
}

func TestEngine_AnalyzeText_Empty(t *testing.T) {
	engine := newTestEngine(t)

	result := engine.AnalyzeText(context.Background(), "")

	if result == nil {
		t.Fatal("expected a well-formed result for empty input")
	}
	if len(result.Ingested) != 0 {
		t.Errorf("expected no ingested fields, got %d", len(result.Ingested))
	}
	if result.Summary == "" {
		t.Error("expected a summary even for empty input")
	}
	if len(result.Unknown) == 0 {
		t.Error("expected unknown entries when nothing was extracted")
	}
	if result.Completeness.Filled != 0 {
		t.Errorf("expected 0 filled fields, got %d", result.Completeness.Filled)
	}
}

func TestEngine_AnalyzeText_Idempotent(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()

	first := engine.AnalyzeText(ctx, sampleDeal)
	second := engine.AnalyzeText(ctx, sampleDeal)

	if len(first.Ingested) != len(second.Ingested) {
		t.Errorf("runs disagree on field count: %d vs %d", len(first.Ingested), len(second.Ingested))
	}
	for name, d := range first.Derived {
		d2, ok := second.Derived[name]
		if !ok {
			t.Errorf("second run missing derived metric %s", name)
			continue
		}
		if d.Value != d2.Value {
			t.Errorf("runs disagree on %s: %v vs %v", name, d.Value, d2.Value)
		}
	}
}

func TestEngine_AnalyzeText_MultiPage(t *testing.T) {
	engine := newTestEngine(t)

	// Page 1 hedges the exit cap; page 2 states it plainly. The merge must
	// keep the higher-confidence page-2 value.
	text := "Exit Cap Rate: 7.0%?\fExit Cap Rate: 6.5%\nPurchase Price: $45,000,000"
	result := engine.AnalyzeText(context.Background(), text)

	v, ok := result.Ingested["exit_cap_rate"].(float64)
	if !ok {
		t.Fatal("expected exit_cap_rate to be extracted")
	}
	if math.Abs(v-0.065) > 1e-9 {
		t.Errorf("expected higher-confidence 0.065, got %v", v)
	}
	if _, ok := result.Ingested["purchase_price"]; !ok {
		t.Error("expected purchase_price from page 2")
	}
}

func TestEngine_AnalyzeText_LTVMismatchDowngrades(t *testing.T) {
	engine := newTestEngine(t)

	text := `
Purchase Price: $20,000,000
Loan Amount: $15,000,000
LTV: 70%
`
	result := engine.AnalyzeText(context.Background(), text)

	found := false
	for _, w := range result.ValidationWarnings {
		if w.Type == "ltv_loan_mismatch" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected an ltv_loan_mismatch warning for stated 70% vs actual 75%")
	}
	if result.Confidence["ltv_pct"] != model.ConfidenceLow {
		t.Errorf("expected ltv_pct confidence downgraded to Low, got %s", result.Confidence["ltv_pct"])
	}
}

func TestEngine_AnalyzeFile(t *testing.T) {
	engine := newTestEngine(t)

	path := filepath.Join(t.TempDir(), "deal.txt")
	if err := os.WriteFile(path, []byte(sampleDeal), 0o644); err != nil {
		t.Fatal(err)
	}

	result, err := engine.AnalyzeFile(context.Background(), path)
	if err != nil {
		t.Fatalf("AnalyzeFile failed: %v", err)
	}
	if result.SourceFile != path {
		t.Errorf("expected SourceFile %s, got %s", path, result.SourceFile)
	}
}

func TestEngine_AnalyzeFile_NotFound(t *testing.T) {
	engine := newTestEngine(t)

	_, err := engine.AnalyzeFile(context.Background(), "no_such_deal.txt")
	if err == nil {
		t.Error("expected error for missing document")
	}
}

func TestNewEngine_UnknownAssetClass(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Analysis.DefaultAssetClass = "submarine_base"

	if _, err := NewEngine(cfg, nil); err == nil {
		t.Error("expected error for an asset class outside the benchmark taxonomy")
	}
}

func TestNewEngine_SubclassOverride(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Analysis.DefaultAssetClass = "industrial"
	cfg.Analysis.DefaultSubclass = "light_industrial_flex"
	cfg.Cache.Enabled = false

	engine, err := NewEngine(cfg, nil)
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	class, subclass := engine.Taxonomy()
	if class != "industrial" || subclass != "light_industrial_flex" {
		t.Errorf("unexpected taxonomy %s/%s", class, subclass)
	}
}

func TestEngine_CanonicalField(t *testing.T) {
	engine := newTestEngine(t)

	name, ok := engine.CanonicalField("Net Operating Income")
	if !ok || name != "noi" {
		t.Errorf("expected noi, got %q (ok=%v)", name, ok)
	}
	if _, ok := engine.CanonicalField("favorite color"); ok {
		t.Error("expected no resolution for an unrelated label")
	}
}
