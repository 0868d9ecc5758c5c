// Package pipeline orchestrates a full deal analysis: extraction, validation,
// benchmarking, risk ranking, summary generation, and report rendering.
package pipeline

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/crelens/dealsense/internal/benchmark"
	"github.com/crelens/dealsense/internal/extract"
	"github.com/crelens/dealsense/internal/llm"
	"github.com/crelens/dealsense/internal/metrics"
	"github.com/crelens/dealsense/internal/model"
	"github.com/crelens/dealsense/internal/risk"
	"github.com/crelens/dealsense/internal/summary"
	"github.com/crelens/dealsense/internal/validate"
)

// Engine runs the complete analysis for one document at a time. Each call
// operates on fresh state, so a single Engine is safe for concurrent use.
type Engine struct {
	extractor  *extract.FieldExtractor
	aliases    *extract.AliasResolver
	benchmarks *benchmark.Repository
	calculator *metrics.Calculator
	validator  *validate.Validator
	risks      *risk.Analyzer
	renderer   *Renderer
	polisher   *llm.Polisher // Optional summary rewrite (nil if disabled)
	logger     *zap.Logger

	assetClass string
	subclass   string
}

// NewEngine creates an engine from configuration. The asset class selector
// comes from cfg.Analysis and must name a class in the benchmark taxonomy.
func NewEngine(cfg *model.Config, logger *zap.Logger) (*Engine, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	repo := benchmark.NewRepository()
	if cfg.Benchmarks.Path != "" {
		r, err := benchmark.NewRepositoryFromFile(cfg.Benchmarks.Path)
		if err != nil {
			return nil, eris.Wrapf(err, "load benchmark table %s", cfg.Benchmarks.Path)
		}
		repo = r
	}

	aliases := extract.NewAliasResolver()
	if cfg.Benchmarks.AliasPath != "" {
		a, err := extract.NewAliasResolverFromFile(cfg.Benchmarks.AliasPath)
		if err != nil {
			return nil, eris.Wrapf(err, "load alias table %s", cfg.Benchmarks.AliasPath)
		}
		aliases = a
	}

	class := strings.ToLower(strings.TrimSpace(cfg.Analysis.DefaultAssetClass))
	if class == "" {
		class = "multifamily"
	}
	if !repo.HasAssetClass(class) {
		return nil, eris.Errorf("unknown asset class %q", class)
	}
	subclass := strings.ToLower(strings.TrimSpace(cfg.Analysis.DefaultSubclass))
	if subclass == "" {
		if subs := repo.Subclasses(class); len(subs) > 0 {
			subclass = subs[0]
		}
	}

	polisher, err := llm.NewPolisher(cfg.LLM, cfg.Cache, logger)
	if err != nil {
		// A misconfigured polish layer never blocks analysis
		logger.Warn("LLM polish disabled", zap.Error(err))
	}

	return &Engine{
		extractor:  extract.NewFieldExtractorWithAliases(aliases),
		aliases:    aliases,
		benchmarks: repo,
		calculator: metrics.NewCalculator(cfg.Analysis),
		validator:  validate.NewValidator(cfg.Validation, cfg.Analysis),
		risks:      risk.NewAnalyzer(cfg.Risk),
		renderer:   NewRenderer(cfg.Output.IncludeFooter),
		polisher:   polisher,
		logger:     logger,
		assetClass: class,
		subclass:   subclass,
	}, nil
}

// AnalyzeFile reads a plain-text deal document and analyzes it. Pages are
// separated by form feeds, the convention of most PDF-to-text tools.
func (e *Engine) AnalyzeFile(ctx context.Context, path string) (*model.ExtractionResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "read document %s", path)
	}

	result := e.AnalyzeText(ctx, string(data))
	result.SourceFile = path
	return result, nil
}

// AnalyzeText runs the full analysis over raw document text. It always
// returns a well-formed result, even for empty input: unparsable values are
// simply absent and discrepancies become advisory warnings.
func (e *Engine) AnalyzeText(ctx context.Context, text string) *model.ExtractionResult {
	// 1. Per-page extraction, then merge keeping the higher-confidence value
	pages := strings.Split(text, "\f")
	extracted := make([]*model.PageExtraction, 0, len(pages))
	for i, page := range pages {
		extracted = append(extracted, e.extractor.Extract(page, i+1))
	}
	merged := extract.MergePages(extracted)
	e.logger.Debug("extraction complete",
		zap.Int("pages", len(pages)),
		zap.Int("fields", len(merged.Fields)),
		zap.Float64("confidence", merged.Confidence))

	// 2. Derived metrics from the extracted primitives
	derived := e.calculator.Derive(merged.Fields)

	// 3. Cross-validation; apply normalized values and confidence downgrades
	report := e.validator.Validate(merged.Fields, derived)
	e.applyValidation(merged, report)

	// 4. Benchmark comparisons for the selected taxonomy slot
	comparisons := e.compareBenchmarks(merged.Fields, derived)

	// 5. Risk ranking from offside benchmarks and HIGH warnings
	risks := e.risks.Analyze(e.assetClass, merged.Fields, derived, comparisons, report.Warnings)

	// 6. Known/unknown ledger and completeness
	known, unknown, completeness := risk.BuildLedger(e.subclass, merged.Fields, derived)

	// 7. Scenario grids and projected cash flows
	sensitivities := e.calculator.Sensitivities(merged.Fields, derived)
	cashFlows := e.calculator.CashFlows(merged.Fields, derived)

	// 8. Rule-based principal summary
	principal := summary.Generate(derived)

	result := &model.ExtractionResult{
		AssetClass: e.assetClass,
		Subclass:   e.subclass,
		AnalyzedAt: time.Now().UTC(),

		Ingested:   ingestedValues(merged.Fields),
		Confidence: confidenceLabels(merged.Fields),
		Notes:      append(append([]string{}, merged.Notes...), report.Notes...),

		Derived: derived,

		BenchCompare:       comparisons,
		ValidationWarnings: report.Warnings,
		RisksRanked:        risks,
		Known:              known,
		Unknown:            unknown,
		Sensitivities:      sensitivities,

		CashFlows:    cashFlows,
		Completeness: completeness,
		Summary:      principal,
	}

	// 9. Optional LLM polish, after assembly so it can never affect analysis
	if e.polisher != nil {
		result.Polished = e.polisher.Polish(ctx, principal, polishMetrics(derived))
	}

	return result
}

// CanonicalField resolves a free-form field label ("Cap Rate", "Net Operating
// Income") to its canonical name, for lookups driven by user input.
func (e *Engine) CanonicalField(label string) (string, bool) {
	return e.aliases.Resolve(label)
}

// Benchmarks exposes the loaded benchmark table
func (e *Engine) Benchmarks() *benchmark.Repository {
	return e.benchmarks
}

// Taxonomy returns the asset class and subclass this engine analyzes against
func (e *Engine) Taxonomy() (string, string) {
	return e.assetClass, e.subclass
}

// applyValidation folds validator output back into the merged extraction:
// normalized occupancy replaces the raw value, and fields implicated in a
// failed consistency check have their confidence capped below the Medium
// threshold so the label reads Low.
func (e *Engine) applyValidation(merged *model.PageExtraction, report *validate.Report) {
	if occ, ok := report.Computed["occupancy_normalized"]; ok {
		if f, exists := merged.Fields["occupancy_pct"]; exists {
			f.Value = occ
			merged.Fields["occupancy_pct"] = f
		}
	}
	for _, name := range report.Downgraded {
		if f, exists := merged.Fields[name]; exists && f.Confidence > 0.6 {
			f.Confidence = 0.6
			merged.Fields[name] = f
		}
	}
}

// Benchmark values come either from a derived metric or from an extracted
// field, with an optional rescale to the band's unit.
var benchmarkDerived = []string{
	"cap_rate", "dscr", "ltv", "expense_ratio", "price_psf", "price_per_unit",
}

var benchmarkFields = []struct {
	metric string
	field  string
	scale  float64
}{
	{"occupancy", "occupancy_pct", 100}, // Stored as a fraction, banded as a percent
	{"walt", "walt_years", 1},
	{"parking_ratio", "parking_ratio", 1},
	{"renewal_probability", "renewal_probability_pct", 100},
	{"clear_height", "clear_height_ft", 1},
	{"dock_doors", "dock_doors_count", 1},
	{"adr", "adr", 1},
	{"revpar", "revpar", 1},
	{"gop_margin", "gop_margin_pct", 100},
	{"sales_psf", "sales_psf", 1},
}

func (e *Engine) compareBenchmarks(fields map[string]model.ExtractedField, derived map[string]model.DerivedMetric) []model.BenchComparison {
	var out []model.BenchComparison

	for _, metric := range benchmarkDerived {
		d, ok := derived[metric]
		if !ok {
			continue
		}
		cmp := benchmark.Compare(e.benchmarks, e.assetClass, e.subclass, metric, d.Value)
		if cmp.Status != model.StatusUnknown {
			out = append(out, cmp)
		}
	}

	for _, src := range benchmarkFields {
		f, ok := fields[src.field]
		if !ok {
			continue
		}
		value, ok := f.Number()
		if !ok {
			continue
		}
		cmp := benchmark.Compare(e.benchmarks, e.assetClass, e.subclass, src.metric, value*src.scale)
		if cmp.Status != model.StatusUnknown {
			out = append(out, cmp)
		}
	}

	return out
}

func ingestedValues(fields map[string]model.ExtractedField) map[string]model.FieldValue {
	out := make(map[string]model.FieldValue, len(fields))
	for name, f := range fields {
		out[name] = f.Value
	}
	return out
}

func confidenceLabels(fields map[string]model.ExtractedField) map[string]model.ConfidenceLabel {
	out := make(map[string]model.ConfidenceLabel, len(fields))
	for name, f := range fields {
		out[name] = model.LabelConfidence(f.Confidence)
	}
	return out
}

// polishMetrics is the small dictionary the polish collaborator receives;
// it never sees the full result.
var polishMetricNames = []string{
	"dscr", "equity_multiple", "irr", "cap_rate", "exit_cap_rate", "ltv",
}

func polishMetrics(derived map[string]model.DerivedMetric) map[string]model.DerivedMetric {
	out := make(map[string]model.DerivedMetric, len(polishMetricNames))
	for _, name := range polishMetricNames {
		if d, ok := derived[name]; ok {
			out[name] = d
		}
	}
	return out
}
