// Package summary renders the rule-based principal investment summary. The
// output reads like a one-paragraph memo: macro context, two strengths, two
// risks, and a bottom line.
package summary

import (
	"fmt"
	"strings"

	"github.com/crelens/dealsense/internal/model"
)

// Generate builds the principal summary from derived metrics. It is fully
// deterministic; the optional LLM polish layer may rewrite it but never
// replaces it.
func Generate(derived map[string]model.DerivedMetric) string {
	get := func(name string) float64 {
		if m, ok := derived[name]; ok {
			return m.Value
		}
		return 0
	}

	dscr := get("dscr")
	equityMultiple := get("equity_multiple")
	irr := get("irr")
	capRate := get("cap_rate")
	exitCap := get("exit_cap_rate")
	ltv := get("ltv")

	var macro string
	switch {
	case capRate > 0 && capRate < 5:
		macro = "In a historically low cap rate environment"
	case capRate > 7:
		macro = "Cap rates have reset higher; exit needs cushion"
	default:
		macro = "Market cap rates remain within historical norms"
	}

	var strengths []string
	if dscr > 1.3 {
		strengths = append(strengths, fmt.Sprintf("deal maintains %.2fx DSCR", dscr))
	}
	if irr > 15 {
		strengths = append(strengths, fmt.Sprintf("IRR of %.1f%% exceeds hurdle", irr))
	}
	if ltv > 0 && ltv < 65 {
		strengths = append(strengths, fmt.Sprintf("conservative %.0f%% leverage provides flexibility", ltv))
	}
	if capRate > 6.5 {
		strengths = append(strengths, fmt.Sprintf("going-in %.1f%% cap offers margin", capRate))
	}
	switch len(strengths) {
	case 0:
		strengths = []string{"limited debt stress", "stable cash flow"}
	case 1:
		strengths = append(strengths, "NOI growth provides buffer")
	}

	var risks []string
	if equityMultiple > 0 && equityMultiple < 1.6 {
		risks = append(risks, fmt.Sprintf("%.2fx equity multiple falls short of 1.6x target", equityMultiple))
	}
	if exitCap > capRate+0.5 && capRate > 0 {
		risks = append(risks, fmt.Sprintf("exit cap expansion to %.1f%% pressures returns", exitCap))
	}
	if dscr > 0 && dscr < 1.25 {
		risks = append(risks, fmt.Sprintf("thin %.2fx coverage leaves no room for error", dscr))
	}
	if irr > 0 && irr < 12 {
		risks = append(risks, fmt.Sprintf("%.1f%% IRR below institutional threshold", irr))
	}
	switch len(risks) {
	case 0:
		risks = []string{"refinance risk at maturity", "market timing dependency"}
	case 1:
		risks = append(risks, "execution risk on business plan")
	}

	var bottomLine string
	switch {
	case equityMultiple >= 1.8 && irr >= 15:
		bottomLine = "strong risk-adjusted returns justify proceeding"
	case equityMultiple >= 1.5 && dscr >= 1.25:
		bottomLine = "workable with modest leverage reduction"
	case (dscr > 0 && dscr < 1.2) || (equityMultiple > 0 && equityMultiple < 1.3):
		bottomLine = "pass - insufficient margin of safety"
	default:
		bottomLine = "marginal - requires aggressive underwriting"
	}

	return fmt.Sprintf("%s. %s; %s. But %s, and %s. Net: %s.",
		macro, capitalize(strengths[0]), strengths[1], risks[0], risks[1], bottomLine)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
