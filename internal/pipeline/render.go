package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/crelens/dealsense/internal/model"
	"github.com/crelens/dealsense/internal/util"
)

// Renderer writes analysis results as JSON and Markdown artifacts
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the full result as indented JSON
func (r *Renderer) RenderJSON(result *model.ExtractionResult, path string) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// RenderMarkdown writes the human-readable deal memo
func (r *Renderer) RenderMarkdown(result *model.ExtractionResult, path string) error {
	if err := os.WriteFile(path, []byte(r.Markdown(result)), 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// Markdown builds the memo text
func (r *Renderer) Markdown(result *model.ExtractionResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Deal Analysis — %s / %s\n\n", result.AssetClass, result.Subclass)
	if result.SourceFile != "" {
		fmt.Fprintf(&b, "**Source:** %s  \n", result.SourceFile)
	}
	fmt.Fprintf(&b, "**Analyzed:** %s  \n", result.AnalyzedAt.Format("2006-01-02 15:04 UTC"))
	fmt.Fprintf(&b, "**Data completeness:** %d/%d fields (%.0f%%)\n\n",
		result.Completeness.Filled, result.Completeness.Required, result.Completeness.Percent)

	b.WriteString("## Summary\n\n")
	b.WriteString(result.Summary)
	b.WriteString("\n\n")
	if result.Polished != nil && result.Polished.Text != "" {
		fmt.Fprintf(&b, "> %s\n>\n> — polished by %s\n\n", result.Polished.Text, result.Polished.Model)
	}

	if len(result.Derived) > 0 {
		b.WriteString("## Key Metrics\n\n")
		b.WriteString("| Metric | Value | Formula |\n|---|---|---|\n")
		for _, name := range sortedKeys(result.Derived) {
			d := result.Derived[name]
			fmt.Fprintf(&b, "| %s | %s | %s |\n", name, util.Metric(name, d.Value), d.Formula)
		}
		b.WriteString("\n")
	}

	if len(result.BenchCompare) > 0 {
		b.WriteString("## Benchmark Comparison\n\n")
		b.WriteString("| Metric | Value | Status | Band | Source |\n|---|---|---|---|---|\n")
		for _, c := range result.BenchCompare {
			fmt.Fprintf(&b, "| %s | %s | %s | %.2f – %.2f (target %.2f) | %s |\n",
				c.Metric, util.Metric(c.Metric, c.Value), statusBadge(c.Status), c.Min, c.Max, c.Target, c.Source)
		}
		b.WriteString("\n")
	}

	if len(result.RisksRanked) > 0 {
		b.WriteString("## Risks\n\n")
		for i, risk := range result.RisksRanked {
			fmt.Fprintf(&b, "### %d. [%s] %s\n\n%s\n\n", i+1, risk.Severity, risk.Metric, risk.Explanation)
			for _, m := range risk.Mitigations {
				fmt.Fprintf(&b, "- %s (%s)\n", m.Action, util.Dollars(m.DollarImpact))
			}
			b.WriteString("\n")
		}
	}

	if len(result.ValidationWarnings) > 0 {
		b.WriteString("## Validation Warnings\n\n")
		for _, w := range result.ValidationWarnings {
			fmt.Fprintf(&b, "- **%s** (%s): %s\n", w.Type, w.Severity, w.Message)
		}
		b.WriteString("\n")
	}

	if len(result.Known) > 0 {
		b.WriteString("## What We Know\n\n")
		for _, k := range result.Known {
			fmt.Fprintf(&b, "- %s\n", k)
		}
		b.WriteString("\n")
	}

	if len(result.Unknown) > 0 {
		b.WriteString("## What We Don't Know\n\n")
		for _, u := range result.Unknown {
			fmt.Fprintf(&b, "- **%s**: %s\n", u.Metric, u.Because)
		}
		b.WriteString("\n")
	}

	if len(result.Sensitivities) > 0 {
		b.WriteString("## Sensitivity\n\n")
		for _, grid := range sortedKeys(result.Sensitivities) {
			fmt.Fprintf(&b, "**%s**\n\n", grid)
			for _, cell := range result.Sensitivities[grid] {
				fmt.Fprintf(&b, "- %s:", cell.Scenario)
				for _, name := range sortedKeys(cell.Values) {
					fmt.Fprintf(&b, " %s=%s", name, util.Metric(name, cell.Values[name]))
				}
				if cell.Breach != "" {
					fmt.Fprintf(&b, " ⚠ breaches %s", cell.Breach)
				}
				b.WriteString("\n")
			}
			b.WriteString("\n")
		}
	}

	if r.includeFooter {
		b.WriteString("---\n\nGenerated by dealsense. Figures are extracted from unverified deal text; confirm against source documents before relying on them.\n")
	}

	return b.String()
}

// RenderSummary prints a short result digest to stdout
func (r *Renderer) RenderSummary(result *model.ExtractionResult) {
	fmt.Printf("\n%s / %s", result.AssetClass, result.Subclass)
	if result.SourceFile != "" {
		fmt.Printf("  (%s)", result.SourceFile)
	}
	fmt.Println()
	fmt.Printf("Completeness: %d/%d fields\n", result.Completeness.Filled, result.Completeness.Required)
	for _, name := range []string{"cap_rate", "dscr", "ltv", "irr", "equity_multiple"} {
		if d, ok := result.Derived[name]; ok {
			fmt.Printf("  %-16s %s\n", name, util.Metric(name, d.Value))
		}
	}
	if n := len(result.RisksRanked); n > 0 {
		fmt.Printf("Risks: %d (top: [%s] %s)\n", n, result.RisksRanked[0].Severity, result.RisksRanked[0].Metric)
	} else {
		fmt.Println("Risks: none flagged")
	}
	fmt.Println()
	fmt.Println(result.Summary)
}

// RenderReport writes the requested artifacts for one result
func (e *Engine) RenderReport(result *model.ExtractionResult, jsonPath, mdPath, xlsxPath string, verbose bool) error {
	if jsonPath != "" {
		if err := e.renderer.RenderJSON(result, jsonPath); err != nil {
			return eris.Wrap(err, "render JSON")
		}
		if verbose {
			fmt.Printf("✓ Wrote JSON: %s\n", jsonPath)
		}
	}

	if mdPath != "" {
		if err := e.renderer.RenderMarkdown(result, mdPath); err != nil {
			return eris.Wrap(err, "render markdown")
		}
		if verbose {
			fmt.Printf("✓ Wrote Markdown: %s\n", mdPath)
		}
	}

	if xlsxPath != "" {
		if err := WriteExcel(result, xlsxPath); err != nil {
			return eris.Wrap(err, "render excel")
		}
		if verbose {
			fmt.Printf("✓ Wrote Excel: %s\n", xlsxPath)
		}
	}

	e.renderer.RenderSummary(result)
	return nil
}

func statusBadge(s model.BenchStatus) string {
	switch s {
	case model.StatusOK:
		return "✅ OK"
	case model.StatusBorderline:
		return "🟡 Borderline"
	case model.StatusOffside:
		return "🔴 Offside"
	}
	return "❔ Unknown"
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
