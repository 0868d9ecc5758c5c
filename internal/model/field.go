package model

// FieldValue is the value of an extracted field. Numeric fields are float64,
// text fields string, flag fields bool, and the tenant roster []Tenant.
type FieldValue interface{}

// ExtractedField represents a single field pulled out of deal text
type ExtractedField struct {
	Name       string     `json:"name"`                  // Canonical field key (e.g., "purchase_price")
	Value      FieldValue `json:"value"`                 // Parsed value after unit multiplication
	Confidence float64    `json:"confidence"`            // Extraction confidence in [0,1]
	SourceNote string     `json:"source_note,omitempty"` // Provenance, e.g. "Found purchase_price on page 2"
}

// Tenant is one entry in the extracted tenant roster
type Tenant struct {
	Name string  `json:"name"`
	SF   float64 `json:"sf"` // Leased square footage
}

// PageExtraction is the raw output of one extraction pass over one page of text
type PageExtraction struct {
	Fields          map[string]ExtractedField `json:"fields"`             // Keyed by canonical field name
	Notes           []string                  `json:"notes"`              // Provenance notes in discovery order
	MissingCritical []string                  `json:"missing_critical"`   // Critical fields absent from this page
	Confidence      float64                   `json:"overall_confidence"` // Mean of per-field confidence scores
}

// CriticalFields are the inputs the derived-metric calculations cannot do without
var CriticalFields = []string{
	"purchase_price", "noi", "loan_amount", "interest_rate",
	"exit_cap_rate", "hold_period_years",
}

// Number returns the field's value as a float64 when it is numeric
func (f ExtractedField) Number() (float64, bool) {
	v, ok := f.Value.(float64)
	return v, ok
}

// Text returns the field's value as a string when it is textual
func (f ExtractedField) Text() (string, bool) {
	v, ok := f.Value.(string)
	return v, ok
}

// NumberField looks up a numeric field by name
func (p *PageExtraction) NumberField(name string) (float64, bool) {
	f, ok := p.Fields[name]
	if !ok {
		return 0, false
	}
	return f.Number()
}

// Has reports whether a field was extracted
func (p *PageExtraction) Has(name string) bool {
	_, ok := p.Fields[name]
	return ok
}
