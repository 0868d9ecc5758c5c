package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/crelens/dealsense/internal/model"
)

// FieldExtractor pulls canonical deal fields out of normalized document text.
// Beyond its own state it is read-only; every Extract call builds a fresh
// accumulator so results can never bleed between documents.
type FieldExtractor struct {
	synonyms []synonymSpec
}

// synonymSpec is one field's compiled fallback: every label variant from the
// alias table, tried only when the primary patterns came up empty
type synonymSpec struct {
	field string
	mult  float64
	res   []*regexp.Regexp
}

// NewFieldExtractor creates a field extractor over the built-in alias table
func NewFieldExtractor() *FieldExtractor {
	return NewFieldExtractorWithAliases(NewAliasResolver())
}

// NewFieldExtractorWithAliases compiles the fallback matchers from an alias
// resolver, so a file-loaded synonym table extends extraction without code
// changes.
func NewFieldExtractorWithAliases(aliases *AliasResolver) *FieldExtractor {
	e := &FieldExtractor{}
	for _, t := range synonymTargets {
		spec := synonymSpec{field: t.field, mult: t.mult}
		for i, label := range aliases.Synonyms(t.canonical) {
			// Terse synonyms ("pp", "occ", "rate") collide with unrelated
			// text too easily; only the canonical label may be that short
			if i > 0 && len(label) < 5 {
				continue
			}
			spec.res = append(spec.res, synonymValueRe(label))
		}
		if len(spec.res) > 0 {
			e.synonyms = append(e.synonyms, spec)
		}
	}
	return e
}

// Extract runs all extraction passes over one page of raw text and returns
// the extracted fields with per-field confidence and provenance notes.
// Empty input yields an empty result, never an error.
func (e *FieldExtractor) Extract(raw string, page int) *model.PageExtraction {
	run := &extractionRun{
		page:   page,
		result: &model.PageExtraction{Fields: make(map[string]model.ExtractedField)},
	}
	if strings.TrimSpace(raw) == "" {
		run.result.Notes = []string{"No text provided"}
		return run.result
	}

	text := Normalize(raw)

	run.dealAssetPass(text)
	run.pricingExitPass(text)
	run.incomeOperationsPass(text)
	run.assetOperationsPass(text)
	if containsAny(text, leasingGateWords) {
		run.leasingPass(text)
	}
	run.debtPass(text)
	run.refinancePass(text)
	if containsAny(text, developmentGateWords) {
		run.developmentPass(text)
	}
	run.insuranceLegalPass(text)
	run.synonymPass(text, e.synonyms)

	run.finish()
	return run.result
}

// extractionRun is the per-call accumulator. It exists only for the duration
// of one Extract call.
type extractionRun struct {
	page   int
	result *model.PageExtraction
}

// extractNumber tries each candidate pattern in order and keeps the first
// parseable match. Malformed numbers are a silent failure: the next candidate
// is tried and the field is simply absent if none succeed.
func (r *extractionRun) extractNumber(text string, spec fieldSpec) {
	for _, cand := range spec.candidates {
		loc := cand.re.FindStringSubmatchIndex(text)
		if loc == nil || loc[2] < 0 {
			continue
		}
		// Normalization pads commas with spaces, so "45,000,000" arrives as
		// "45 , 000 , 000"; both the commas and the padding must go
		valueStr := text[loc[2]:loc[3]]
		valueStr = strings.ReplaceAll(valueStr, ",", "")
		valueStr = strings.ReplaceAll(valueStr, "$", "")
		valueStr = strings.ReplaceAll(valueStr, " ", "")
		value, err := strconv.ParseFloat(valueStr, 64)
		if err != nil {
			continue
		}
		mult := cand.mult
		// Magnitude multipliers only apply when the text actually carries a
		// shorthand suffix: "$45M" scales, "$45,000,000" is already in dollars
		if mult >= 1000 && !hasMagnitudeSuffix(text[loc[3]:loc[1]]) {
			mult = 1
		}
		r.set(spec.name, value*mult, r.contextConfidence(text, loc[0], loc[1]))
		return
	}
}

// hasMagnitudeSuffix reports whether the match tail after the number contains
// an M/MM/MILLION shorthand marker
func hasMagnitudeSuffix(tail string) bool {
	tail = strings.TrimSpace(tail)
	return strings.HasPrefix(tail, "M") || strings.HasPrefix(tail, "m")
}

// extractText keeps the first matched capture group verbatim, trimmed
func (r *extractionRun) extractText(text string, spec textFieldSpec) {
	for _, re := range spec.patterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		r.setWith(spec.name, strings.TrimSpace(m[1]), 0.85)
		return
	}
}

// contextConfidence inspects the text surrounding a match for an uncertainty
// marker. A nearby question mark drops confidence to 0.6; otherwise 0.9.
// This is a weak heuristic inherited from the upstream data format.
func (r *extractionRun) contextConfidence(text string, start, end int) float64 {
	lo := start - 10
	if lo < 0 {
		lo = 0
	}
	hi := end + 10
	if hi > len(text) {
		hi = len(text)
	}
	if strings.Contains(text[lo:hi], "?") {
		return 0.6
	}
	return 0.9
}

func (r *extractionRun) set(name string, value float64, confidence float64) {
	r.setWith(name, value, confidence)
}

// setWith records a field with a provenance note referencing the page
func (r *extractionRun) setWith(name string, value model.FieldValue, confidence float64) {
	r.result.Fields[name] = model.ExtractedField{
		Name:       name,
		Value:      value,
		Confidence: confidence,
		SourceNote: fmt.Sprintf("Found %s on page %d", name, r.page),
	}
	r.result.Notes = append(r.result.Notes, fmt.Sprintf("Found %s on page %d", name, r.page))
}

// setQuiet records a field without appending a discovery note
func (r *extractionRun) setQuiet(name string, value model.FieldValue, confidence float64) {
	r.result.Fields[name] = model.ExtractedField{
		Name:       name,
		Value:      value,
		Confidence: confidence,
	}
}

func (r *extractionRun) dealAssetPass(text string) {
	for _, spec := range dealAssetTextFields {
		r.extractText(text, spec)
	}

	// City, state, zip come from a single combined match
	if m := cityStateZipRe.FindStringSubmatch(text); m != nil {
		r.setQuiet("city", strings.TrimSpace(m[1]), 0.9)
		r.setQuiet("state", m[2], 0.95)
		r.setQuiet("zip_code", m[3], 0.95)
	}

	for _, spec := range dealAssetFields {
		r.extractNumber(text, spec)
	}

	// Tenant roster: top 5 tenants by listed square footage
	if matches := tenantRosterRe.FindAllStringSubmatch(text, -1); len(matches) > 0 {
		var tenants []model.Tenant
		for i, m := range matches {
			if i >= 5 {
				break
			}
			sf, err := strconv.ParseFloat(strings.NewReplacer(",", "", " ", "").Replace(m[2]), 64)
			if err != nil {
				continue
			}
			tenants = append(tenants, model.Tenant{Name: strings.TrimSpace(m[1]), SF: sf})
		}
		if len(tenants) > 0 {
			r.setQuiet("top_tenants", tenants, 0.8)
		}
	}
}

func (r *extractionRun) pricingExitPass(text string) {
	for _, spec := range pricingExitFields {
		r.extractNumber(text, spec)
	}
}

func (r *extractionRun) incomeOperationsPass(text string) {
	for _, spec := range incomeOperationsFields {
		r.extractNumber(text, spec)
	}
}

func (r *extractionRun) assetOperationsPass(text string) {
	for _, spec := range assetOperationsFields {
		r.extractNumber(text, spec)
	}
}

// synonymPass is the last extraction step: for each field still missing, its
// label synonyms are tried as "LABEL : VALUE" pairs. The indirect label earns
// a reduced confidence.
func (r *extractionRun) synonymPass(text string, specs []synonymSpec) {
	for _, spec := range specs {
		if _, ok := r.result.Fields[spec.field]; ok {
			continue
		}
		for _, re := range spec.res {
			m := re.FindStringSubmatch(text)
			if m == nil {
				continue
			}
			valueStr := strings.NewReplacer(",", "", " ", "").Replace(m[1])
			value, err := strconv.ParseFloat(valueStr, 64)
			if err != nil {
				continue
			}
			mult := spec.mult
			if m[2] != "" && mult == 1 {
				mult = 1000000
			}
			r.set(spec.field, value*mult, 0.7)
			break
		}
	}
}

func (r *extractionRun) leasingPass(text string) {
	for _, spec := range leasingFields {
		r.extractNumber(text, spec)
	}
}

func (r *extractionRun) debtPass(text string) {
	for _, spec := range debtFields {
		r.extractNumber(text, spec)
	}

	// Floating-rate spread over an index. Spreads quoted in basis points
	// (explicit BPS token nearby, or a magnitude no sane percentage has)
	// normalize to percentage points.
	if loc := rateSpreadRe.FindStringSubmatchIndex(text); loc != nil {
		spread, err := strconv.ParseFloat(text[loc[2]:loc[3]], 64)
		if err == nil {
			hi := loc[1] + 20
			if hi > len(text) {
				hi = len(text)
			}
			if strings.Contains(text[loc[0]:hi], "BPS") || spread > 50 {
				spread = spread / 100
			}
			r.set("rate_spread", spread, 0.9)
		}
	}

	// Prepayment structure keyword vocabulary
	for _, term := range prepaymentTypes {
		if strings.Contains(text, term) {
			r.setQuiet("prepayment_type", strings.ToLower(term), 0.85)
			break
		}
	}

	// Extension options quoted as "2x12MO EXTENSION"
	if m := extensionRe.FindStringSubmatch(text); m != nil {
		count, err1 := strconv.ParseFloat(m[1], 64)
		months, err2 := strconv.ParseFloat(m[2], 64)
		if err1 == nil && err2 == nil {
			r.setQuiet("extension_count", count, 0.85)
			r.setQuiet("extension_term_months", months, 0.85)
		}
	}
}

func (r *extractionRun) refinancePass(text string) {
	for _, spec := range refinanceFields {
		r.extractNumber(text, spec)
	}
}

func (r *extractionRun) developmentPass(text string) {
	for _, spec := range developmentFields {
		r.extractNumber(text, spec)
	}
	for _, spec := range developmentTextFields {
		r.extractText(text, spec)
	}

	for _, ct := range contractTypes {
		if strings.Contains(text, ct) {
			normalized := strings.ToLower(strings.ReplaceAll(strings.ReplaceAll(ct, " - ", "-"), " ", "_"))
			r.setQuiet("construction_contract_type", normalized, 0.85)
			break
		}
	}

	if m := deliveryRe.FindStringSubmatch(text); m != nil {
		r.setQuiet("expected_delivery", m[1], 0.8)
	}

	for _, re := range permitKeywordRes {
		if m := re.FindString(text); m != "" {
			status := strings.ToLower(whitespaceRe.ReplaceAllString(m, "_"))
			r.setQuiet("permit_status", status, 0.85)
			break
		}
	}
}

func (r *extractionRun) insuranceLegalPass(text string) {
	for _, spec := range insuranceLegalFields {
		r.extractNumber(text, spec)
	}

	if strings.Contains(text, "GROUND LEASE") {
		r.setQuiet("ground_lease", true, 0.9)
		for _, spec := range groundLeaseFields {
			r.extractNumber(text, spec)
		}
	}

	for _, kw := range litigationWords {
		if strings.Contains(text, kw) {
			r.result.Fields["litigation_flag"] = model.ExtractedField{
				Name:       "litigation_flag",
				Value:      true,
				Confidence: 0.7,
				SourceNote: fmt.Sprintf("Litigation keyword '%s' found on page %d", kw, r.page),
			}
			r.result.Notes = append(r.result.Notes,
				fmt.Sprintf("Litigation keyword '%s' found on page %d", kw, r.page))
			break
		}
	}
}

// finish computes the overall confidence and the critical-field gap list
func (r *extractionRun) finish() {
	if len(r.result.Fields) > 0 {
		sum := 0.0
		for _, f := range r.result.Fields {
			sum += f.Confidence
		}
		r.result.Confidence = sum / float64(len(r.result.Fields))
	}

	for _, name := range model.CriticalFields {
		if _, ok := r.result.Fields[name]; !ok {
			r.result.MissingCritical = append(r.result.MissingCritical, name)
		}
	}
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
