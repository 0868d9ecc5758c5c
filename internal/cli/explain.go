package cli

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/crelens/dealsense/internal/benchmark"
	"github.com/crelens/dealsense/internal/pipeline"
)

// explainCmd represents the explain command
var explainCmd = &cobra.Command{
	Use:   "explain <metric or field>",
	Short: "Explain a metric and show its benchmark bands",
	Long: `Explain resolves a metric or field label (synonyms accepted) and prints
what it measures, why it matters, and the benchmark band for the selected
asset class.

Example:
  dealsense explain dscr
  dealsense explain "Net Operating Income"
  dealsense explain cap_rate --asset-class office`,
	Args: cobra.ExactArgs(1),
	RunE: runExplain,
}

func init() {
	rootCmd.AddCommand(explainCmd)

	explainCmd.Flags().StringVar(&assetClass, "asset-class", "", "benchmark asset class (default from config)")
	explainCmd.Flags().StringVar(&subclass, "subclass", "", "benchmark subclass (default: first for the class)")
}

func runExplain(cmd *cobra.Command, args []string) error {
	label := args[0]

	cfg, err := analysisConfig()
	if err != nil {
		return err
	}

	engine, err := pipeline.NewEngine(cfg, newLogger())
	if err != nil {
		return eris.Wrap(err, "initialize engine")
	}

	name, ok := engine.CanonicalField(label)
	if !ok {
		// Benchmark metrics like dscr are not extraction fields; try as-is
		name = strings.ToLower(strings.TrimSpace(label))
	}

	info := benchmark.Describe(name)
	fmt.Printf("%s\n", name)
	if info.Unit != "" {
		fmt.Printf("  Unit:    %s\n", info.Unit)
	}
	fmt.Printf("  What:    %s\n", info.Description)
	fmt.Printf("  Why:     %s\n", info.WhyItMatters)

	class, sub := engine.Taxonomy()
	if band, ok := engine.Benchmarks().Lookup(class, sub, name); ok {
		target := ""
		switch len(band.Preferred) {
		case 1:
			target = fmt.Sprintf("%.2f", band.Preferred[0])
		case 2:
			target = fmt.Sprintf("%.2f–%.2f", band.Preferred[0], band.Preferred[1])
		}
		fmt.Printf("  Band:    %.2f – %.2f (target %s) for %s/%s\n", band.Min, band.Max, target, class, sub)
		fmt.Printf("  Source:  %s\n", band.Source)
	} else {
		fmt.Printf("  Band:    none for %s/%s\n", class, sub)
	}

	return nil
}
