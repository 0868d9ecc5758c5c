package model

import "time"

// Severity ranks risks and validation warnings
type Severity string

const (
	SeverityHigh   Severity = "HIGH"
	SeverityMedium Severity = "MEDIUM"
	SeverityLow    Severity = "LOW"
)

// rank orders severities for sorting, highest first
func (s Severity) Rank() int {
	switch s {
	case SeverityHigh:
		return 0
	case SeverityMedium:
		return 1
	case SeverityLow:
		return 2
	}
	return 3
}

// ConfidenceLabel buckets a numeric confidence score for display
type ConfidenceLabel string

const (
	ConfidenceHigh   ConfidenceLabel = "High"
	ConfidenceMedium ConfidenceLabel = "Medium"
	ConfidenceLow    ConfidenceLabel = "Low"
)

// LabelConfidence buckets a numeric score: >=0.85 High, >=0.65 Medium, else Low
func LabelConfidence(score float64) ConfidenceLabel {
	switch {
	case score >= 0.85:
		return ConfidenceHigh
	case score >= 0.65:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// DerivedMetric is a metric computed from extracted primitives
type DerivedMetric struct {
	Name    string   `json:"name"`
	Value   float64  `json:"value"`
	Formula string   `json:"formula"`          // Human-readable calculation, e.g. "NOI / Purchase Price"
	Inputs  []string `json:"inputs,omitempty"` // Field names the value depended on
}

// ValidationWarning flags a mismatch between a stated value and one recomputed
// from primitives. Warnings are advisory and never block extraction.
type ValidationWarning struct {
	Type           string   `json:"type"` // e.g. "ltv_loan_mismatch"
	Severity       Severity `json:"severity"`
	Message        string   `json:"message"`
	FieldsAffected []string `json:"fields_affected"`
	Stated         float64  `json:"stated,omitempty"`
	Computed       float64  `json:"computed,omitempty"`
	VariancePct    float64  `json:"variance_pct,omitempty"`
}

// MitigationAction is one concrete step that addresses a risk, with its
// signed dollar impact (negative = cost, positive = upside)
type MitigationAction struct {
	Action       string  `json:"action"`
	DollarImpact float64 `json:"dollar_impact"`
}

// RiskItem is a ranked risk with quantified mitigations. A risk always
// carries at least one mitigation.
type RiskItem struct {
	Metric       string             `json:"metric"`
	Severity     Severity           `json:"severity"`
	CurrentValue float64            `json:"current_value"`
	TargetValue  float64            `json:"target_value"`
	Explanation  string             `json:"explanation"`
	Mitigations  []MitigationAction `json:"mitigations"`
}

// MaxImpact returns the largest absolute mitigation dollar impact,
// used as the secondary sort key after severity
func (r RiskItem) MaxImpact() float64 {
	max := 0.0
	for _, m := range r.Mitigations {
		abs := m.DollarImpact
		if abs < 0 {
			abs = -abs
		}
		if abs > max {
			max = abs
		}
	}
	return max
}

// BenchStatus is the classification of a value against a benchmark band
type BenchStatus string

const (
	StatusOK         BenchStatus = "OK"
	StatusBorderline BenchStatus = "Borderline"
	StatusOffside    BenchStatus = "Offside"
	StatusUnknown    BenchStatus = "Unknown"
)

// BenchComparison records one metric measured against its benchmark band
type BenchComparison struct {
	Metric string      `json:"metric"`
	Value  float64     `json:"value"`
	Status BenchStatus `json:"status"`
	Min    float64     `json:"min"`
	Target float64     `json:"target"`
	Max    float64     `json:"max"`
	Source string      `json:"source,omitempty"` // Market data provenance
}

// UnknownEntry explains a metric or field that could not be established
// and why it matters to valuation
type UnknownEntry struct {
	Metric  string   `json:"metric"`
	Missing []string `json:"missing,omitempty"` // Input fields that were absent
	Because string   `json:"because"`           // Valuation relevance, never empty
}

// Completeness measures required-field coverage for the selected subclass
type Completeness struct {
	Filled   int     `json:"filled"`
	Required int     `json:"required"`
	Percent  float64 `json:"percent"`
}

// SensitivityCell is one scenario in a sensitivity grid
type SensitivityCell struct {
	Scenario string             `json:"scenario"` // e.g. "+50bps", "-10%"
	Values   map[string]float64 `json:"values"`
	Breach   string             `json:"breach,omitempty"` // Covenant breached in this scenario, if any
}

// PolishedSummary holds the optional LLM rewrite of the principal summary.
// It never affects the analysis itself.
type PolishedSummary struct {
	Enabled  bool   `json:"enabled"`
	Provider string `json:"provider,omitempty"`
	Model    string `json:"model,omitempty"`
	Text     string `json:"text,omitempty"`
	Cached   bool   `json:"cached,omitempty"` // Served from the response cache
}

// ExtractionResult is the complete analysis of one deal document.
// Immutable once returned from the pipeline.
type ExtractionResult struct {
	AssetClass string    `json:"asset_class"`
	Subclass   string    `json:"subclass"`
	SourceFile string    `json:"source_file,omitempty"`
	AnalyzedAt time.Time `json:"analyzed_at"`

	Ingested   map[string]FieldValue      `json:"ingested"`   // Extracted field values by canonical name
	Confidence map[string]ConfidenceLabel `json:"confidence"` // Per-field confidence labels
	Notes      []string                   `json:"notes,omitempty"`

	Derived map[string]DerivedMetric `json:"derived"`

	BenchCompare       []BenchComparison            `json:"bench_compare"`
	ValidationWarnings []ValidationWarning          `json:"validation_warnings,omitempty"`
	RisksRanked        []RiskItem                   `json:"risks_ranked"`
	Known              []string                     `json:"known"`   // Established facts with confidence
	Unknown            []UnknownEntry               `json:"unknown"` // Gaps with valuation relevance
	Sensitivities      map[string][]SensitivityCell `json:"sensitivities,omitempty"`

	// CashFlows projects annual after-debt-service cash flows over the hold
	// period, net sale proceeds folded into the final year
	CashFlows []float64 `json:"cash_flows,omitempty"`

	Completeness Completeness `json:"completeness"`
	Summary      string       `json:"summary"` // Rule-based principal summary

	Polished *PolishedSummary `json:"polished,omitempty"` // Optional LLM rewrite, separate from analysis
}
