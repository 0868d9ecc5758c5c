package extract

import "testing"

func TestAliasResolver_CanonicalPassthrough(t *testing.T) {
	resolver := NewAliasResolver()

	got, ok := resolver.Resolve("noi")
	if !ok || got != "noi" {
		t.Errorf("Expected canonical name to resolve to itself, got '%s' (ok=%v)", got, ok)
	}
}

func TestAliasResolver_ExactSynonym(t *testing.T) {
	resolver := NewAliasResolver()

	cases := []struct {
		label string
		want  string
	}{
		{"sales price", "purchase_price"},
		{"Net Operating Income", "noi"},
		{"GLA", "square_feet"},
		{"average daily rate", "adr"},
		{"loan to value", "ltv"},
		{"ceiling height", "clear_height"},
	}
	for _, tc := range cases {
		got, ok := resolver.Resolve(tc.label)
		if !ok {
			t.Errorf("Expected '%s' to resolve, got no match", tc.label)
			continue
		}
		if got != tc.want {
			t.Errorf("Expected '%s' -> %s, got %s", tc.label, tc.want, got)
		}
	}
}

func TestAliasResolver_SubstringFallback(t *testing.T) {
	resolver := NewAliasResolver()

	got, ok := resolver.Resolve("stabilized noi figure")
	if !ok || got != "noi" {
		t.Errorf("Expected substring match to noi, got '%s' (ok=%v)", got, ok)
	}
}

func TestAliasResolver_CaseAndWhitespaceInsensitive(t *testing.T) {
	resolver := NewAliasResolver()

	got, ok := resolver.Resolve("  SALES PRICE  ")
	if !ok || got != "purchase_price" {
		t.Errorf("Expected trimmed case-folded resolution, got '%s' (ok=%v)", got, ok)
	}
}

func TestAliasResolver_NoMatch(t *testing.T) {
	resolver := NewAliasResolver()

	if got, ok := resolver.Resolve("frobnicator quotient"); ok {
		t.Errorf("Expected no match for unknown label, got '%s'", got)
	}
	if got, ok := resolver.Resolve(""); ok {
		t.Errorf("Expected no match for empty label, got '%s'", got)
	}
}

func TestAliasResolver_Canonical(t *testing.T) {
	resolver := NewAliasResolver()

	if !resolver.Canonical("purchase_price") {
		t.Error("Expected purchase_price to be canonical")
	}
	if resolver.Canonical("sales price") {
		t.Error("Expected synonym not to be reported canonical")
	}
}
