package risk

import (
	"fmt"
	"sort"
	"strings"

	"github.com/crelens/dealsense/internal/benchmark"
	"github.com/crelens/dealsense/internal/model"
)

// metricDependency lists the input fields a metric needs and why the metric
// matters when it cannot be computed
type metricDependency struct {
	inputs  []string
	because string
}

// metricDependencies drives the unknown ledger: a metric absent from the
// derived set is reported with whichever of its inputs were missing.
var metricDependencies = map[string]metricDependency{
	"cap_rate": {
		inputs:  []string{"noi", "purchase_price"},
		because: "Going-in yield is the primary pricing check against market comps",
	},
	"ltv": {
		inputs:  []string{"loan_amount", "purchase_price"},
		because: "Leverage determines refinance risk and equity cushion",
	},
	"dscr": {
		inputs:  []string{"noi", "loan_amount", "interest_rate", "amort_years"},
		because: "Lenders size loans to coverage; thin coverage forces a smaller loan",
	},
	"debt_yield": {
		inputs:  []string{"noi", "loan_amount"},
		because: "Debt yield is the lender's cap-rate-independent sizing test",
	},
	"yield_on_cost": {
		inputs:  []string{"noi", "purchase_price", "closing_costs"},
		because: "Spread between yield on cost and market cap rate is the development margin",
	},
	"irr": {
		inputs:  []string{"purchase_price", "loan_amount", "noi", "hold_period_years", "exit_cap_rate"},
		because: "IRR calculation needs complete cash flow projections including entry, operations, and exit",
	},
	"equity_multiple": {
		inputs:  []string{"purchase_price", "loan_amount", "exit_cap_rate", "hold_period_years"},
		because: "Equity multiple requires initial equity investment and total proceeds",
	},
	"cash_on_cash": {
		inputs:  []string{"noi", "loan_amount", "interest_rate", "purchase_price"},
		because: "Current cash yield drives distributions during the hold",
	},
	"exit_value": {
		inputs:  []string{"noi", "hold_period_years", "exit_cap_rate"},
		because: "Exit value carries most of the total return in a value-add deal",
	},
	"net_sale_proceeds": {
		inputs:  []string{"exit_cap_rate", "loan_amount", "disposition_fee_pct"},
		because: "Net proceeds after debt payoff determine the realized equity multiple",
	},
	"refi_proceeds": {
		inputs:  []string{"noi", "refi_cap_rate", "refi_ltv_target"},
		because: "Refinance proceeds fund the return of capital without a sale",
	},
	"expense_ratio": {
		inputs:  []string{"operating_expenses", "gross_income"},
		because: "Expense ratio against benchmark reveals operational upside",
	},
	"price_per_unit": {
		inputs:  []string{"purchase_price", "unit_count"},
		because: "Per-unit pricing is the primary multifamily comp metric",
	},
	"price_psf": {
		inputs:  []string{"purchase_price", "building_sf"},
		because: "Price per square foot anchors the deal against market comps",
	},
}

// commonRequiredFields are required regardless of subclass
var commonRequiredFields = []string{
	"purchase_price", "noi", "cap_rate", "loan_amount", "ltv_pct", "interest_rate",
}

// requiredFieldsBySubclass extends the common core per benchmark subclass
var requiredFieldsBySubclass = map[string][]string{
	// Multifamily
	"garden_lowrise": {"unit_count", "market_rent", "occupancy_pct", "expense_ratio", "replacement_reserves"},
	"midrise":        {"unit_count", "market_rent", "occupancy_pct", "expense_ratio", "replacement_reserves", "parking_ratio"},
	"highrise":       {"unit_count", "market_rent", "occupancy_pct", "expense_ratio", "replacement_reserves", "free_rent_months"},
	// Office
	"cbd_A_trophy": {"building_sf", "walt_years", "ti_allowance_new", "leasing_commission_pct", "occupancy_pct"},
	"suburban":     {"building_sf", "walt_years", "ti_allowance_new", "occupancy_pct", "parking_ratio"},
	// Industrial
	"bulk_distribution": {"building_sf", "clear_height_ft", "dock_doors_count", "occupancy_pct"},
	"last_mile":         {"building_sf", "clear_height_ft", "dock_doors_count", "yard_depth"},
	// Retail
	"grocery_anchored": {"building_sf", "anchor_tenant", "anchor_remaining_term_years", "cam_recovery_pct"},
	// Hospitality
	"limited_service": {"keys", "adr", "occupancy_pct", "revpar", "gop_margin_pct"},
	"full_service":    {"keys", "adr", "occupancy_pct", "revpar", "gop_margin_pct", "fb_revenue"},
}

// fieldDescriptions explain why a missing required field matters
var fieldDescriptions = map[string]string{
	"walt_years":                  "Weighted average lease term drives rollover risk and exit pricing",
	"ti_allowance_new":            "TI costs on rollover materially reduce net cash flow",
	"clear_height_ft":             "Clear height below 32 feet limits modern logistics tenants",
	"anchor_remaining_term_years": "Anchor rollover triggers co-tenancy clauses across the center",
	"expense_ratio":               "Expense ratio against benchmark reveals operational upside",
	"replacement_reserves":        "Underfunded reserves defer capital needs into the hold",
	"gop_margin_pct":              "Operating margin determines hotel value beyond top-line revenue",
	"adr":                         "Average daily rate shows pricing power against the comp set",
	"revpar":                      "RevPAR combines rate and occupancy into the core hotel KPI",
	"dock_doors_count":            "Dock door count caps throughput for distribution tenants",
}

// BuildLedger produces the known list, the unknown entries, and the
// completeness score for one analyzed deal
func BuildLedger(subclass string, fields map[string]model.ExtractedField, derived map[string]model.DerivedMetric) (known []string, unknown []model.UnknownEntry, completeness model.Completeness) {
	known = knownEntries(fields, derived)
	unknown = unknownEntries(subclass, fields, derived)
	completeness = completenessFor(subclass, fields)
	return known, unknown, completeness
}

// knownEntries formats every extracted field and derived metric for display,
// sorted by name for a stable report
func knownEntries(fields map[string]model.ExtractedField, derived map[string]model.DerivedMetric) []string {
	var entries []string
	for name, f := range fields {
		v, ok := f.Number()
		if !ok {
			continue
		}
		entries = append(entries, fmt.Sprintf("%s: %s (%s confidence)",
			name, formatValue(name, v), model.LabelConfidence(f.Confidence)))
	}
	for name, m := range derived {
		entries = append(entries, fmt.Sprintf("%s: %s (Calculated)", name, formatValue(name, m.Value)))
	}
	sort.Strings(entries)
	return entries
}

// unknownEntries reports uncomputable metrics with their missing inputs and
// missing required fields with their valuation relevance
func unknownEntries(subclass string, fields map[string]model.ExtractedField, derived map[string]model.DerivedMetric) []model.UnknownEntry {
	var entries []model.UnknownEntry

	var metricNames []string
	for name := range metricDependencies {
		metricNames = append(metricNames, name)
	}
	sort.Strings(metricNames)

	for _, name := range metricNames {
		if _, ok := derived[name]; ok {
			continue
		}
		dep := metricDependencies[name]
		var missing []string
		for _, input := range dep.inputs {
			if _, ok := fields[input]; !ok {
				missing = append(missing, input)
			}
		}
		if len(missing) == 0 {
			// All inputs present but the metric still failed, typically a
			// zero denominator; keep the explanation without a gap list
			continue
		}
		entries = append(entries, model.UnknownEntry{
			Metric:  name,
			Missing: missing,
			Because: dep.because,
		})
	}

	for _, field := range requiredFor(subclass) {
		if _, ok := fields[field]; ok {
			continue
		}
		if _, ok := derived[field]; ok {
			continue
		}
		because, ok := fieldDescriptions[field]
		if !ok {
			if info, documented := benchmark.Documented(field); documented {
				because = info.WhyItMatters
			} else {
				because = fmt.Sprintf("Required for %s analysis", subclass)
			}
		}
		entries = append(entries, model.UnknownEntry{
			Metric:  field,
			Because: because,
		})
	}

	return entries
}

// completenessFor scores required-field coverage for the subclass
func completenessFor(subclass string, fields map[string]model.ExtractedField) model.Completeness {
	required := requiredFor(subclass)
	filled := 0
	for _, field := range required {
		if _, ok := fields[field]; ok {
			filled++
		}
	}
	pct := 0.0
	if len(required) > 0 {
		pct = float64(filled) / float64(len(required)) * 100
	}
	return model.Completeness{Filled: filled, Required: len(required), Percent: pct}
}

func requiredFor(subclass string) []string {
	required := append([]string{}, commonRequiredFields...)
	if extra, ok := requiredFieldsBySubclass[subclass]; ok {
		required = append(required, extra...)
	}
	return required
}

// formatValue renders dollars for large magnitudes and percentages for
// fraction-form rate fields
func formatValue(name string, v float64) string {
	if strings.HasSuffix(name, "_pct") || strings.HasSuffix(name, "_rate") || name == "cap_rate" {
		if v <= 1 {
			v = v * 100
		}
		return fmt.Sprintf("%.2f%%", v)
	}
	if v >= 1000 || v <= -1000 {
		return fmt.Sprintf("$%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}
