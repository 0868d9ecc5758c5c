// Package util holds display formatting shared by the report renderers.
package util

import (
	"fmt"
	"math"
	"strings"
)

// Dollars formats a dollar amount with thousands separators and no cents,
// e.g. -1234567.8 -> "-$1,234,568"
func Dollars(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	s := fmt.Sprintf("%.0f", math.Round(v))

	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + "$" + b.String()
}

// Percent formats a percentage value with two decimals, e.g. 6.0 -> "6.00%"
func Percent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}

// Multiple formats a ratio like DSCR or equity multiple, e.g. 1.45 -> "1.45x"
func Multiple(v float64) string {
	return fmt.Sprintf("%.2fx", v)
}

// Metric picks a display format from the metric's name: dollar amounts,
// percentages, multiples, or a plain number.
func Metric(name string, v float64) string {
	switch {
	case strings.Contains(name, "rate") || strings.Contains(name, "ltv") ||
		strings.Contains(name, "yield") || strings.Contains(name, "ratio") ||
		strings.Contains(name, "irr") || strings.Contains(name, "pct") ||
		strings.Contains(name, "occupancy") || strings.Contains(name, "margin") ||
		strings.Contains(name, "cash_on_cash"):
		return Percent(v)
	case strings.Contains(name, "dscr") || strings.Contains(name, "multiple"):
		return Multiple(v)
	case strings.Contains(name, "price") || strings.Contains(name, "value") ||
		strings.Contains(name, "proceeds") || strings.Contains(name, "equity") ||
		strings.Contains(name, "cost") || strings.Contains(name, "service") ||
		strings.Contains(name, "noi") || strings.Contains(name, "amount") ||
		strings.Contains(name, "reserve") || strings.Contains(name, "psf") ||
		strings.Contains(name, "per_unit"):
		return Dollars(v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}
