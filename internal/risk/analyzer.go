// Package risk turns offside benchmark comparisons and failed validation
// checks into a severity-ranked risk register with dollar-quantified
// mitigation paths.
package risk

import (
	"fmt"
	"sort"
	"strings"

	"github.com/crelens/dealsense/internal/model"
)

// Analyzer builds the risk register for one deal
type Analyzer struct {
	cfg model.RiskConfig
}

// NewAnalyzer creates an analyzer with the given quantification constants
func NewAnalyzer(cfg model.RiskConfig) *Analyzer {
	return &Analyzer{cfg: cfg}
}

// highSeverityMetrics are the metrics where an offside reading threatens the
// capital stack directly
var highSeverityMetrics = map[string]bool{
	"dscr":       true,
	"debt_yield": true,
	"cap_rate":   true,
}

var mediumSeverityMetrics = map[string]bool{
	"ltv":           true,
	"expense_ratio": true,
	"walt":          true,
	"occupancy":     true,
}

// analysis is the per-call accumulator
type analysis struct {
	a       *Analyzer
	class   string
	fields  map[string]model.ExtractedField
	derived map[string]model.DerivedMetric
	risks   []model.RiskItem
}

// Analyze ranks every offside benchmark reading and every HIGH validation
// warning into the risk register. Each risk carries at least one mitigation.
func (a *Analyzer) Analyze(assetClass string, fields map[string]model.ExtractedField, derived map[string]model.DerivedMetric, comparisons []model.BenchComparison, warnings []model.ValidationWarning) []model.RiskItem {
	run := &analysis{
		a:       a,
		class:   strings.ToLower(strings.TrimSpace(assetClass)),
		fields:  fields,
		derived: derived,
	}

	for _, cmp := range comparisons {
		if cmp.Status != model.StatusOffside {
			continue
		}
		run.benchmarkRisk(cmp)
	}

	for _, w := range warnings {
		if w.Severity != model.SeverityHigh {
			continue
		}
		run.warningRisk(w)
	}

	run.anchorRolloverRisk()

	sort.SliceStable(run.risks, func(i, j int) bool {
		ri, rj := run.risks[i], run.risks[j]
		if ri.Severity.Rank() != rj.Severity.Rank() {
			return ri.Severity.Rank() < rj.Severity.Rank()
		}
		return ri.MaxImpact() > rj.MaxImpact()
	})
	return run.risks
}

func severityFor(metric string) model.Severity {
	switch {
	case highSeverityMetrics[metric]:
		return model.SeverityHigh
	case mediumSeverityMetrics[metric]:
		return model.SeverityMedium
	default:
		return model.SeverityLow
	}
}

func (r *analysis) benchmarkRisk(cmp model.BenchComparison) {
	severity := severityFor(cmp.Metric)
	item := model.RiskItem{
		Metric:       cmp.Metric,
		Severity:     severity,
		CurrentValue: cmp.Value,
		TargetValue:  cmp.Target,
		Explanation: fmt.Sprintf("%s is %s at %.2f vs target %.2f",
			cmp.Metric, cmp.Status, cmp.Value, cmp.Target),
		Mitigations: r.mitigationsFor(cmp),
	}
	if len(item.Mitigations) == 0 {
		item.Mitigations = []model.MitigationAction{{
			Action: fmt.Sprintf("Review %s underwriting assumptions against market comps", cmp.Metric),
		}}
	}
	r.risks = append(r.risks, item)
}

// warningRisk promotes a HIGH validation warning into the risk register
func (r *analysis) warningRisk(w model.ValidationWarning) {
	r.risks = append(r.risks, model.RiskItem{
		Metric:      w.Type,
		Severity:    model.SeverityHigh,
		Explanation: w.Message,
		Mitigations: []model.MitigationAction{
			{Action: "Verify and reconcile data sources"},
			{Action: "Request updated financials"},
		},
	})
}

// mitigationsFor dispatches to the cross-asset rules first, then the rules
// specific to the deal's asset class
func (r *analysis) mitigationsFor(cmp model.BenchComparison) []model.MitigationAction {
	switch cmp.Metric {
	case "dscr":
		return r.coverageMitigations(cmp)
	case "ltv":
		return r.leverageMitigations(cmp)
	}

	switch r.class {
	case "office":
		return r.officeMitigations(cmp)
	case "industrial":
		return r.industrialMitigations(cmp)
	case "retail":
		return r.retailMitigations(cmp)
	case "hospitality":
		return r.hospitalityMitigations(cmp)
	case "multifamily":
		return r.multifamilyMitigations(cmp)
	}
	return nil
}

func (r *analysis) num(name string) (float64, bool) {
	f, ok := r.fields[name]
	if !ok {
		return 0, false
	}
	return f.Number()
}

func (r *analysis) numOr(name string, fallback float64) float64 {
	if v, ok := r.num(name); ok {
		return v
	}
	return fallback
}

func (r *analysis) metric(name string) (float64, bool) {
	m, ok := r.derived[name]
	return m.Value, ok
}

// coverageMitigations sizes the loan paydown or NOI growth needed to restore
// target coverage. Dollar impacts are signed: capital required is negative,
// value created positive.
func (r *analysis) coverageMitigations(cmp model.BenchComparison) []model.MitigationAction {
	noi, hasNOI := r.num("noi")
	rate, hasRate := r.num("interest_rate")
	ads, hasADS := r.metric("annual_debt_service")
	if !hasNOI || !hasADS || cmp.Target <= 0 || ads <= 0 {
		return nil
	}

	var actions []model.MitigationAction
	targetADS := noi / cmp.Target
	if hasRate && rate > 0 && ads > targetADS {
		paydown := (ads - targetADS) / normalizeRate(rate)
		actions = append(actions, model.MitigationAction{
			Action:       fmt.Sprintf("Reduce loan by $%.0f to reach %.2fx coverage", paydown, cmp.Target),
			DollarImpact: -paydown,
		})
	}
	if lift := cmp.Target*ads - noi; lift > 0 {
		actions = append(actions, model.MitigationAction{
			Action:       fmt.Sprintf("Grow NOI by $%.0f through rent or expense initiatives", lift),
			DollarImpact: lift,
		})
	}
	return actions
}

// leverageMitigations sizes the equity top-up that brings LTV back to target
func (r *analysis) leverageMitigations(cmp model.BenchComparison) []model.MitigationAction {
	price, hasPrice := r.num("purchase_price")
	loan, hasLoan := r.num("loan_amount")
	if !hasPrice || !hasLoan || cmp.Target <= 0 {
		return nil
	}
	target := cmp.Target
	if target > 1 {
		target = target / 100
	}
	reduction := loan - price*target
	if reduction <= 0 {
		return nil
	}

	actions := []model.MitigationAction{{
		Action:       fmt.Sprintf("Add $%.0f equity to bring leverage to %.0f%%", reduction, target*100),
		DollarImpact: -reduction,
	}}
	if rate, ok := r.num("interest_rate"); ok && rate > 0 {
		actions = append(actions, model.MitigationAction{
			Action:       fmt.Sprintf("Annual debt service saved by the paydown: $%.0f", reduction*normalizeRate(rate)),
			DollarImpact: reduction * normalizeRate(rate),
		})
	}
	return actions
}

func (r *analysis) officeMitigations(cmp model.BenchComparison) []model.MitigationAction {
	sf := r.numOr("building_sf", 0)
	rent := r.numOr("market_rent", 0)

	switch cmp.Metric {
	case "tenant_improvement":
		// Annual rollover funds the TI gap; tenants typically co-fund half
		walt := r.numOr("walt_years", 0)
		if sf <= 0 || walt <= 0 || cmp.Value <= cmp.Target {
			return nil
		}
		rollover := sf / walt
		gap := cmp.Value - cmp.Target
		return []model.MitigationAction{
			{
				Action:       fmt.Sprintf("Fund a TI reserve of $%.0f/yr for rollover space", rollover*gap),
				DollarImpact: -rollover * gap,
			},
			{
				Action:       "Negotiate tenant-funded improvements on renewals",
				DollarImpact: rollover * gap * 0.5,
			},
		}
	case "walt":
		if sf <= 0 || rent <= 0 {
			return nil
		}
		return []model.MitigationAction{
			{
				Action:       "Launch early renewal program with a 5% rent lift on 30% of the rent roll",
				DollarImpact: sf * 0.3 * rent * 0.05,
			},
			{
				Action:       "Offer 6 months free rent to anchor renewals on 20% of the rent roll",
				DollarImpact: -sf * 0.2 * rent * 0.5,
			},
		}
	case "parking_ratio":
		if sf <= 0 || cmp.Value >= cmp.Target {
			return nil
		}
		spacesShort := (cmp.Target - cmp.Value) * sf / 1000
		return []model.MitigationAction{
			{
				Action:       fmt.Sprintf("Lease %.0f offsite spaces at $%.0f/mo", spacesShort, r.a.cfg.OffsiteParkingMonthlyRate),
				DollarImpact: -spacesShort * r.a.cfg.OffsiteParkingMonthlyRate * 12,
			},
			{
				Action:       "Install a parking management system to raise effective capacity",
				DollarImpact: -50000,
			},
		}
	}
	return nil
}

func (r *analysis) industrialMitigations(cmp model.BenchComparison) []model.MitigationAction {
	switch cmp.Metric {
	case "clear_height":
		if cmp.Value >= r.a.cfg.ClearHeightStandardFt {
			return nil
		}
		discount := (r.a.cfg.ClearHeightStandardFt - cmp.Value) * r.a.cfg.RentDiscountPerFootPct
		if discount > r.a.cfg.RentDiscountCapPct {
			discount = r.a.cfg.RentDiscountCapPct
		}
		var actions []model.MitigationAction
		if noi, ok := r.num("noi"); ok {
			// Gross rent backed out of NOI at a typical industrial margin
			annualRent := noi / 0.94
			actions = append(actions, model.MitigationAction{
				Action:       fmt.Sprintf("Underwrite a %.0f%% rent discount for sub-standard clear height", discount),
				DollarImpact: -annualRent * discount / 100,
			})
		}
		if sf, ok := r.num("building_sf"); ok && sf > 0 {
			actions = append(actions, model.MitigationAction{
				Action:       "Evaluate roof raise at $25/SF for modern racking clearance",
				DollarImpact: -sf * 25,
			})
		}
		return actions
	case "dock_doors":
		if cmp.Value >= cmp.Target {
			return nil
		}
		shortfall := cmp.Target - cmp.Value
		return []model.MitigationAction{
			{
				Action:       fmt.Sprintf("Add %.0f dock doors at $%.0f installed", shortfall, r.a.cfg.DockDoorCost),
				DollarImpact: -shortfall * r.a.cfg.DockDoorCost,
			},
			{
				Action:       "Deploy dock scheduling software to stretch existing doors",
				DollarImpact: -25000,
			},
		}
	}
	return nil
}

func (r *analysis) retailMitigations(cmp model.BenchComparison) []model.MitigationAction {
	if cmp.Metric != "sales_psf" || cmp.Value >= cmp.Target {
		return nil
	}
	sf, ok := r.num("building_sf")
	if !ok || sf <= 0 {
		return nil
	}
	return []model.MitigationAction{
		{
			Action:       "Remerchandise weak inline suites toward the sales target",
			DollarImpact: (cmp.Target - cmp.Value) * sf * 0.06,
		},
		{
			Action:       "Fund a center marketing program at $2/SF",
			DollarImpact: -sf * 2,
		},
	}
}

func (r *analysis) hospitalityMitigations(cmp model.BenchComparison) []model.MitigationAction {
	keys := r.numOr("keys", r.numOr("unit_count", 0))

	switch cmp.Metric {
	case "gop_margin":
		if cmp.Value >= cmp.Target {
			return nil
		}
		gap := cmp.Target - cmp.Value
		var actions []model.MitigationAction
		if exitValue, ok := r.metric("exit_value"); ok {
			// Margin shortfall widens the exit cap
			bps := gap * r.a.cfg.ExitCapWideningBpsPerGOPPoint
			actions = append(actions, model.MitigationAction{
				Action:       fmt.Sprintf("Underwrite %.0fbps of exit cap widening for the GOP shortfall", bps),
				DollarImpact: -exitValue * bps / 10000,
			})
		}
		if noi, ok := r.num("noi"); ok {
			actions = append(actions, model.MitigationAction{
				Action:       "Drive RevPAR through revenue management (3% NOI lift)",
				DollarImpact: noi * 0.03,
			})
		}
		if revenue, ok := r.num("gross_income"); ok {
			actions = append(actions, model.MitigationAction{
				Action:       "Renegotiate the management fee by 50bps of revenue",
				DollarImpact: revenue * 0.005,
			})
		}
		return actions
	case "revpar":
		if cmp.Value >= cmp.Target || keys <= 0 {
			return nil
		}
		gap := cmp.Target - cmp.Value
		return []model.MitigationAction{
			{
				Action:       fmt.Sprintf("Close the $%.0f RevPAR gap across %.0f keys", gap, keys),
				DollarImpact: gap * keys * 365,
			},
			{
				Action:       fmt.Sprintf("Budget a PIP at $%.0f/key", r.a.cfg.PIPCostPerKey),
				DollarImpact: -keys * r.a.cfg.PIPCostPerKey,
			},
		}
	}
	return nil
}

func (r *analysis) multifamilyMitigations(cmp model.BenchComparison) []model.MitigationAction {
	if cmp.Metric != "expense_ratio" || cmp.Value <= cmp.Target {
		return nil
	}
	revenue, ok := r.num("gross_income")
	if !ok {
		// Back EGI out of NOI at a typical multifamily margin
		noi, hasNOI := r.num("noi")
		if !hasNOI {
			return nil
		}
		revenue = noi / 0.6
	}

	actions := []model.MitigationAction{{
		Action:       fmt.Sprintf("Cut expenses %.1f points to the benchmark target", cmp.Value-cmp.Target),
		DollarImpact: (cmp.Value - cmp.Target) / 100 * revenue,
	}}
	if units, ok := r.num("unit_count"); ok && units > 0 {
		actions = append(actions, model.MitigationAction{
			Action:       "Implement RUBS utility billback at $30/unit/mo",
			DollarImpact: units * 30 * 12,
		})
	}
	actions = append(actions, model.MitigationAction{
		Action:       "Self-manage to recapture the management fee (3% of revenue)",
		DollarImpact: revenue * 0.03,
	})
	return actions
}

// anchorRolloverRisk flags retail deals whose anchor lease runs off inside
// ten years. This reads the field directly because anchor term has no
// benchmark band.
func (r *analysis) anchorRolloverRisk() {
	if r.class != "retail" {
		return
	}
	term, ok := r.num("anchor_remaining_term_years")
	if !ok || term >= 10 {
		return
	}

	actions := []model.MitigationAction{
		{Action: "Open early extension negotiations with the anchor"},
		{
			Action:       "Secure a ROFR on the anchor parcel",
			DollarImpact: -r.a.cfg.ROFRLegalCost,
		},
	}
	if tenants, ok := r.fields["top_tenants"]; ok {
		if roster, ok := tenants.Value.([]model.Tenant); ok && len(roster) > 0 {
			rent := r.numOr("market_rent", 0)
			if anchorSF := roster[0].SF; anchorSF > 0 && rent > 12 {
				actions = append(actions, model.MitigationAction{
					Action:       "Underwrite anchor backfill at half the mark-to-market spread",
					DollarImpact: anchorSF * (rent - 12) * 0.5,
				})
			}
		}
	}
	if noi, ok := r.num("noi"); ok {
		actions = append(actions, model.MitigationAction{
			Action:       "Model co-tenancy exposure if the anchor goes dark",
			DollarImpact: -noi * r.a.cfg.CoTenancyRentReductionPct / 100,
		})
	}

	r.risks = append(r.risks, model.RiskItem{
		Metric:       "anchor_remaining_term_years",
		Severity:     model.SeverityMedium,
		CurrentValue: term,
		TargetValue:  10,
		Explanation:  fmt.Sprintf("Anchor lease has %.1f years remaining against a 10-year underwriting floor", term),
		Mitigations:  actions,
	})
}

func normalizeRate(rate float64) float64 {
	if rate > 1 {
		return rate / 100
	}
	return rate
}
