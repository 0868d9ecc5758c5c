package extract

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// AliasResolver maps free-text field labels to canonical field keys.
// The table is read-only after construction.
type AliasResolver struct {
	aliases map[string][]string // canonical name -> synonyms
}

// NewAliasResolver creates a resolver over the built-in synonym table
func NewAliasResolver() *AliasResolver {
	return &AliasResolver{aliases: defaultAliases}
}

// NewAliasResolverFromFile loads a replacement synonym table from YAML,
// allowing the alias data to be refreshed without code changes
func NewAliasResolverFromFile(path string) (*AliasResolver, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read alias table: %w", err)
	}
	var aliases map[string][]string
	if err := yaml.Unmarshal(data, &aliases); err != nil {
		return nil, fmt.Errorf("parse alias table: %w", err)
	}
	return &AliasResolver{aliases: aliases}, nil
}

// Resolve converts a raw label to its canonical field name. Resolution order:
// exact canonical match, exact synonym match, then bidirectional substring
// match against any synonym. Returns ok=false when nothing matches.
func (r *AliasResolver) Resolve(label string) (string, bool) {
	label = strings.ToLower(strings.TrimSpace(label))
	if label == "" {
		return "", false
	}

	if _, ok := r.aliases[label]; ok {
		return label, true
	}

	for canonical, synonyms := range r.aliases {
		for _, syn := range synonyms {
			if label == strings.ToLower(syn) {
				return canonical, true
			}
		}
	}

	for canonical, synonyms := range r.aliases {
		for _, syn := range synonyms {
			lower := strings.ToLower(syn)
			if strings.Contains(label, lower) || strings.Contains(lower, label) {
				return canonical, true
			}
		}
	}

	return "", false
}

// Synonyms returns the label variants for a canonical key: the key itself
// with underscores spelled out, followed by the table's synonyms. Unknown
// keys yield just the spelled-out form.
func (r *AliasResolver) Synonyms(canonical string) []string {
	canonical = strings.ToLower(strings.TrimSpace(canonical))
	out := []string{strings.ReplaceAll(canonical, "_", " ")}
	return append(out, r.aliases[canonical]...)
}

// Canonical reports whether a name is a canonical field key in the table
func (r *AliasResolver) Canonical(name string) bool {
	_, ok := r.aliases[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// defaultAliases maps canonical field keys to the synonyms seen across
// deal decks, term sheets, and broker packages
var defaultAliases = map[string][]string{
	// Financial fields
	"purchase_price": {"sales price", "acquisition price", "contract price", "pp", "sale price", "acquisition cost", "purchase amount"},
	"noi":            {"net operating income", "net income", "operating income", "annual noi", "effective noi", "stabilized noi"},
	"cap_rate":       {"capitalization rate", "cap", "going in cap", "initial yield", "acquisition cap", "entry cap"},
	"loan_amount":    {"debt", "mortgage", "loan proceeds", "financing", "debt amount", "mortgage amount", "loan size"},
	"interest_rate":  {"rate", "coupon", "interest", "loan rate", "mortgage rate", "debt rate", "borrowing rate"},
	"dscr":           {"debt service coverage", "debt coverage", "coverage ratio", "dcr", "debt service cover"},
	"ltv":            {"loan to value", "leverage", "ltv ratio", "debt to value", "loan-to-value ratio"},

	// Property fields
	"asset_class": {"property type", "asset type", "product type", "property class", "real estate type"},
	"address":     {"property address", "location", "street address", "property location", "site address"},
	"year_built":  {"construction year", "built", "year constructed", "construction date", "vintage", "age"},
	"square_feet": {"sf", "sq ft", "gla", "nra", "gross leasable area", "rentable area", "building size", "total sf"},
	"units":       {"unit count", "doors", "apartments", "total units", "unit mix", "number of units"},
	"occupancy":   {"occupied", "occupancy rate", "leased", "physical occupancy", "economic occupancy", "occ"},

	// Lease terms
	"walt":          {"weighted average lease term", "wall", "remaining lease term", "lease duration", "average lease term"},
	"rent":          {"rental rate", "lease rate", "rent roll", "base rent", "contract rent", "rental income"},
	"expense_ratio": {"opex ratio", "operating expense ratio", "expense rate", "operating expenses", "expense percentage"},
	"tenant":        {"lessee", "occupant", "tenant name", "tenant roster", "rent roll"},

	// Hospitality
	"adr":            {"average daily rate", "room rate", "avg rate", "daily rate", "average rate"},
	"revpar":         {"rev par", "revenue per available room", "revpar index", "room revenue"},
	"occupancy_rate": {"occ rate", "occupancy %", "occupied percentage", "utilization"},
	"keys":           {"rooms", "room count", "guestrooms", "hotel rooms", "number of rooms"},

	// Industrial
	"clear_height":   {"ceiling height", "clearance", "height", "clear ceiling", "warehouse height"},
	"dock_doors":     {"loading docks", "dock high doors", "truck doors", "loading doors", "docks"},
	"parking_spaces": {"parking", "parking count", "spaces", "parking stalls", "car spaces"},

	// Retail
	"anchor_tenant": {"anchor", "major tenant", "anchor store", "key tenant", "primary tenant"},
	"sales_psf":     {"sales per square foot", "tenant sales", "retail sales", "sales volume", "sales per sf"},
	"parking_ratio": {"parking index", "parking per sf", "stalls per 1000 sf", "parking density"},

	// Multifamily
	"unit_mix":    {"bedroom mix", "unit types", "floorplan mix", "apartment mix", "unit breakdown"},
	"avg_rent":    {"average rent", "mean rent", "avg monthly rent", "effective rent", "average unit rent"},
	"concessions": {"rent concessions", "free rent", "incentives", "move-in specials", "discounts"},

	// Office
	"class":          {"building class", "property class", "class a/b/c", "office class", "quality"},
	"floor_plate":    {"floor size", "typical floor", "floor area", "plate size", "floor plan"},
	"elevator_count": {"elevators", "lifts", "vertical transportation", "elevator banks"},

	// Senior living
	"care_level":  {"level of care", "care type", "acuity", "service level", "care services"},
	"medicaid":    {"medicaid beds", "medicaid mix", "medicaid percentage", "medicaid units"},
	"private_pay": {"private pay mix", "private percentage", "private pay residents"},
}
