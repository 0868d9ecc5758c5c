package util

import "testing"

func TestDollars(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0"},
		{950, "$950"},
		{1500, "$1,500"},
		{45000000, "$45,000,000"},
		{-1350000, "-$1,350,000"},
		{2700000.4, "$2,700,000"},
	}
	for _, tt := range tests {
		if got := Dollars(tt.in); got != tt.want {
			t.Errorf("Dollars(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMetric_FormatByName(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"cap_rate", 6, "6.00%"},
		{"ltv", 75, "75.00%"},
		{"dscr", 1.451, "1.45x"},
		{"equity_multiple", 1.8, "1.80x"},
		{"purchase_price", 45000000, "$45,000,000"},
		{"annual_debt_service", 2216000, "$2,216,000"},
		{"cash_on_cash", 7.5, "7.50%"},
		{"hold_period_years", 5, "5.00"},
	}
	for _, tt := range tests {
		if got := Metric(tt.name, tt.in); got != tt.want {
			t.Errorf("Metric(%s, %v) = %q, want %q", tt.name, tt.in, got, tt.want)
		}
	}
}
