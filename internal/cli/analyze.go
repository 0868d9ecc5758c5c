package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/crelens/dealsense/internal/model"
	"github.com/crelens/dealsense/internal/pipeline"
)

var (
	outJSON     string
	outMD       string
	outXLSX     string
	assetClass  string
	subclass    string
	timeout     time.Duration
	noCache     bool
	noFooter    bool
	llmEnabled  bool
	llmProvider string
	llmModel    string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze one deal document and generate reports",
	Long: `Analyze reads a plain-text deal document (pages separated by form
feeds, as produced by most PDF-to-text tools) and:
- Extracts fields with confidence scores and page provenance
- Derives cap rate, DSCR, LTV, IRR, and the other underwriting metrics
- Compares them against market benchmark bands for the asset class
- Cross-checks stated values against computed ones
- Ranks risks with dollar-quantified mitigations

Example:
  dealsense analyze deal.txt
  dealsense analyze deal.txt --asset-class office --json deal.json --md deal.md
  dealsense analyze deal.txt --xlsx deal.xlsx --llm openai --llm-model gpt-4o-mini`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Taxonomy flags
	analyzeCmd.Flags().StringVar(&assetClass, "asset-class", "", "benchmark asset class (default from config)")
	analyzeCmd.Flags().StringVar(&subclass, "subclass", "", "benchmark subclass (default: first for the class)")

	// Output flags
	analyzeCmd.Flags().StringVar(&outJSON, "json", "report.json", "output JSON path")
	analyzeCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	analyzeCmd.Flags().StringVar(&outXLSX, "xlsx", "", "output Excel workbook path (optional)")
	analyzeCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	// LLM flags
	analyzeCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall analysis timeout (only the LLM polish can block)")
	analyzeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the polish response cache")
	analyzeCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM summary polish")
	analyzeCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, anthropic, ollama)")
	analyzeCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	path := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg, err := analysisConfig()
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Analyzing: %s\n", path)
		fmt.Fprintf(os.Stderr, "Asset class: %s/%s\n", cfg.Analysis.DefaultAssetClass, cfg.Analysis.DefaultSubclass)
		fmt.Fprintln(os.Stderr)
	}

	engine, err := pipeline.NewEngine(cfg, newLogger())
	if err != nil {
		return eris.Wrap(err, "initialize engine")
	}

	result, err := engine.AnalyzeFile(ctx, path)
	if err != nil {
		return eris.Wrap(err, "analyze")
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Extracted %d fields\n", len(result.Ingested))
		fmt.Fprintf(os.Stderr, "✓ Derived %d metrics\n", len(result.Derived))
		fmt.Fprintf(os.Stderr, "✓ Flagged %d risks\n", len(result.RisksRanked))
		if result.Polished != nil {
			fmt.Fprintf(os.Stderr, "✓ Polished summary using %s/%s\n", result.Polished.Provider, result.Polished.Model)
		}
		fmt.Fprintln(os.Stderr)
	}

	if err := engine.RenderReport(result, outJSON, outMD, outXLSX, verbose); err != nil {
		return eris.Wrap(err, "render")
	}

	return nil
}

// analysisConfig builds the engine configuration from file, environment,
// and command flags
func analysisConfig() (*model.Config, error) {
	cfg := loadConfig()
	if assetClass != "" {
		cfg.Analysis.DefaultAssetClass = assetClass
	}
	if subclass != "" {
		cfg.Analysis.DefaultSubclass = subclass
	}
	cfg.Cache.Enabled = cfg.Cache.Enabled && !noCache
	cfg.Output.IncludeFooter = cfg.Output.IncludeFooter && !noFooter

	if llmEnabled {
		cfg.LLM.Provider = llmProvider
		cfg.LLM.Model = llmModel

		// Get API key from environment
		switch llmProvider {
		case "openai":
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
			if cfg.LLM.APIKey == "" {
				return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
			}
		case "anthropic", "claude":
			cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
			if cfg.LLM.APIKey == "" {
				return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
			}
		case "ollama":
			// Ollama doesn't need an API key
			if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
				cfg.LLM.BaseURL = baseURL
			}
		}
	} else {
		cfg.LLM.Provider = ""
	}

	return cfg, nil
}
