package benchmark

import "strings"

// MetricInfo describes a metric for report output
type MetricInfo struct {
	Unit         string `json:"unit"`
	Description  string `json:"description"`
	WhyItMatters string `json:"why_it_matters"`
}

// Describe returns catalog information for a metric, or a placeholder when
// the metric is not documented
func Describe(metric string) MetricInfo {
	if info, ok := Documented(metric); ok {
		return info
	}
	return MetricInfo{
		Description:  "No description available",
		WhyItMatters: "Metric importance not documented",
	}
}

// Documented looks up catalog information without a placeholder fallback
func Documented(metric string) (MetricInfo, bool) {
	info, ok := metricsCatalog[normalizeMetric(strings.TrimSpace(metric))]
	return info, ok
}

var metricsCatalog = map[string]MetricInfo{
	// Core financial metrics
	"cap_rate": {
		Unit:         "%",
		Description:  "Net Operating Income divided by Purchase Price",
		WhyItMatters: "Primary valuation metric showing annual return on investment before debt. Higher cap rates indicate higher risk/return profiles.",
	},
	"dscr": {
		Unit:         "x",
		Description:  "Net Operating Income divided by Annual Debt Service",
		WhyItMatters: "Measures ability to cover debt payments. Lenders typically require 1.25x minimum for loan approval.",
	},
	"ltv": {
		Unit:         "%",
		Description:  "Loan Amount divided by Property Value",
		WhyItMatters: "Leverage ratio showing loan exposure. Lower LTV means more equity cushion and lower default risk.",
	},
	"equity_multiple": {
		Unit:         "x",
		Description:  "Total distributions divided by initial equity investment",
		WhyItMatters: "Shows total return multiple over hold period. 2.0x means doubling your money.",
	},
	"irr": {
		Unit:         "%",
		Description:  "Internal Rate of Return accounting for timing of cash flows",
		WhyItMatters: "Time-weighted return metric. Accounts for when you receive distributions, not just how much.",
	},
	"cash_on_cash": {
		Unit:         "%",
		Description:  "Annual cash flow after debt service divided by initial equity",
		WhyItMatters: "Current yield on invested equity. Shows immediate cash returns before sale.",
	},
	"exit_cap": {
		Unit:         "%",
		Description:  "Assumed cap rate at sale",
		WhyItMatters: "Critical assumption for exit value. 50bps change can swing returns by 20%+.",
	},
	"noi_growth": {
		Unit:         "%",
		Description:  "Annual growth rate of Net Operating Income",
		WhyItMatters: "Revenue growth driver. Directly impacts exit value and refinancing proceeds.",
	},
	"expense_ratio": {
		Unit:         "%",
		Description:  "Operating expenses divided by effective gross income",
		WhyItMatters: "Operational efficiency metric. Lower ratios indicate better management and margins.",
	},

	// Asset-specific metrics
	"occupancy": {
		Unit:         "%",
		Description:  "Percentage of space currently leased and occupied",
		WhyItMatters: "Revenue stability indicator. Physical occupancy drives actual cash flow.",
	},
	"walt": {
		Unit:         "years",
		Description:  "Weighted Average Lease Term remaining",
		WhyItMatters: "Income duration metric. Longer WALT means more predictable cash flows.",
	},
	"rent_psf": {
		Unit:         "$/sf/yr",
		Description:  "Annual rent per square foot",
		WhyItMatters: "Market positioning indicator. Compare to submarket averages for value-add potential.",
	},
	"price_per_unit": {
		Unit:         "$/unit",
		Description:  "Purchase price divided by number of units",
		WhyItMatters: "Multifamily valuation metric. Key comp for market pricing.",
	},
	"price_psf": {
		Unit:         "$/sf",
		Description:  "Purchase price per square foot",
		WhyItMatters: "Universal comparison metric across property types and markets.",
	},
	"revpar": {
		Unit:         "$",
		Description:  "Revenue Per Available Room (ADR x Occupancy)",
		WhyItMatters: "Hotel performance benchmark combining rate and occupancy.",
	},
	"adr": {
		Unit:         "$",
		Description:  "Average Daily Rate for hotel rooms",
		WhyItMatters: "Pricing power indicator. Shows competitive position in market.",
	},
	"gop_margin": {
		Unit:         "%",
		Description:  "Gross Operating Profit margin for hotels",
		WhyItMatters: "Operational efficiency before fixed costs. Industry standard for hotel performance.",
	},
	"sales_psf": {
		Unit:         "$/sf/yr",
		Description:  "Tenant sales per square foot (retail)",
		WhyItMatters: "Tenant health indicator. Higher sales support rent increases and renewals.",
	},
	"rent_to_sales": {
		Unit:         "%",
		Description:  "Rent as percentage of tenant sales",
		WhyItMatters: "Affordability metric. Above 10% signals potential tenant distress.",
	},
	"parking_ratio": {
		Unit:         "spaces/1000sf",
		Description:  "Parking spaces per 1,000 square feet",
		WhyItMatters: "Accessibility and convenience factor. Critical for suburban office and retail.",
	},
	"clear_height": {
		Unit:         "ft",
		Description:  "Clear height in industrial buildings",
		WhyItMatters: "Modern logistics require 32'+ for efficient racking systems.",
	},
	"dock_doors": {
		Unit:         "doors",
		Description:  "Number of dock-high loading doors",
		WhyItMatters: "Throughput capacity driver. Distribution users size requirements by door count.",
	},
	"power_density": {
		Unit:         "W/sf",
		Description:  "Power capacity per square foot (data centers)",
		WhyItMatters: "Revenue potential driver. Higher density commands premium rents.",
	},
	"pue": {
		Unit:         "ratio",
		Description:  "Power Usage Effectiveness (data centers)",
		WhyItMatters: "Energy efficiency metric. Lower is better, <1.5 is excellent.",
	},
	"renewal_probability": {
		Unit:         "%",
		Description:  "Likelihood of tenant renewal",
		WhyItMatters: "Future vacancy risk indicator. Impacts underwriting and valuations.",
	},
	"tenant_improvement": {
		Unit:         "$/sf",
		Description:  "TI allowance for new/renewal leases",
		WhyItMatters: "Capital requirement for leasing. Major impact on net effective rents.",
	},
	"leasing_commission": {
		Unit:         "%",
		Description:  "Commission as percentage of lease value",
		WhyItMatters: "Transaction cost impacting net proceeds. Budget 4-6% for new leases.",
	},
	"replacement_reserves": {
		Unit:         "$/unit/yr",
		Description:  "Annual capital reserve for replacements",
		WhyItMatters: "Long-term capital planning. Lenders often require reserves.",
	},
}
