// Package llm optionally rewrites the rule-based principal summary through a
// language model. The polish is cosmetic: every figure in the input must
// survive verbatim, and any failure leaves the deterministic summary in place.
package llm

import (
	"context"
	"fmt"
	"sort"

	"github.com/crelens/dealsense/internal/model"
)

// Provider defines the interface for polish providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Polish rewrites the principal summary for an investment committee audience
	Polish(ctx context.Context, req PolishRequest) (*PolishResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// PolishRequest contains the input for a summary rewrite
type PolishRequest struct {
	// Summary is the rule-based principal summary to rewrite
	Summary string

	// Metrics gives the model the derived numbers behind the summary so it
	// can rephrase without inventing figures
	Metrics map[string]model.DerivedMetric

	// Prompt is an optional custom prompt (if empty, use default)
	Prompt string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// PolishResponse contains the rewritten summary
type PolishResponse struct {
	// Text is the polished summary
	Text string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// Config holds polish provider configuration
type Config struct {
	// Provider name: "openai", "anthropic", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests
	Timeout int // seconds

	// MaxTokens for response generation
	MaxTokens int
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:  "", // Disabled by default
		Model:     "",
		Timeout:   30,
		MaxTokens: 200,
	}
}

const systemPrompt = "You are an institutional real estate analyst polishing deal memos. You rephrase; you never change, add, or remove figures."

// BuildPrompt constructs the default rewrite prompt
func BuildPrompt(summary string, metrics map[string]model.DerivedMetric) string {
	return fmt.Sprintf(`Rewrite the following commercial real estate deal summary as 2-3 polished sentences for an investment committee memo.

RULES:
1. Preserve every number exactly as written. Do not invent or recompute figures.
2. Do not add metrics, comparisons, or market commentary beyond the input.
3. Keep the recommendation unchanged.

Summary:
%s

Derived metrics for reference:
%s`, summary, formatMetrics(metrics))
}

func formatMetrics(metrics map[string]model.DerivedMetric) string {
	if len(metrics) == 0 {
		return "(none)"
	}

	names := make([]string, 0, len(metrics))
	for name := range metrics {
		names = append(names, name)
	}
	sort.Strings(names)

	result := ""
	for _, name := range names {
		result += fmt.Sprintf("- %s: %.2f\n", name, metrics[name].Value)
	}
	return result
}
