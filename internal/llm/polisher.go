package llm

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/crelens/dealsense/internal/cache"
	"github.com/crelens/dealsense/internal/model"
	"github.com/crelens/dealsense/internal/worker"
)

// Polisher runs the optional summary rewrite with response caching and rate
// limiting. It degrades gracefully: every failure path returns nil and the
// caller keeps the rule-based summary.
type Polisher struct {
	provider Provider
	model    string
	cache    cache.Cache
	limiter  *worker.Limiter
	ttl      time.Duration
	logger   *zap.Logger
}

// NewPolisher builds a polisher from config. A nil polisher with a nil error
// means no provider is configured and polish is disabled.
func NewPolisher(cfg model.LLMConfig, cacheCfg model.CacheConfig, logger *zap.Logger) (*Polisher, error) {
	provider, err := NewProvider(ConfigFromModel(cfg))
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, nil
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	ttl := time.Duration(cacheCfg.TTLMinutes) * time.Minute
	if ttl <= 0 {
		ttl = time.Hour
	}

	return &Polisher{
		provider: provider,
		model:    cfg.Model,
		cache:    cache.ForConfig(cacheCfg),
		limiter:  worker.NewLimiter(cfg.RequestsPerSecond, cfg.Burst),
		ttl:      ttl,
		logger:   logger,
	}, nil
}

// newPolisherWith wires explicit collaborators, used by tests
func newPolisherWith(provider Provider, c cache.Cache, limiter *worker.Limiter, ttl time.Duration, logger *zap.Logger) *Polisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	if limiter == nil {
		limiter = worker.NewLimiter(0, 1) // Unlimited
	}
	return &Polisher{provider: provider, cache: c, limiter: limiter, ttl: ttl, logger: logger}
}

// Polish rewrites the summary. It never returns an error: failures are
// logged and yield nil, so the analysis output is unaffected.
func (p *Polisher) Polish(ctx context.Context, summary string, metrics map[string]model.DerivedMetric) *model.PolishedSummary {
	if p == nil || p.provider == nil || summary == "" {
		return nil
	}

	// The prompt captures both the summary and the metric snapshot, so it
	// doubles as the cache identity
	key := cache.CacheKey(p.provider.Name() + "|" + p.model + "|" + BuildPrompt(summary, metrics))
	if p.cache != nil {
		if data, found := p.cache.Get(key); found {
			var cached model.PolishedSummary
			if err := json.Unmarshal(data, &cached); err == nil && cached.Text != "" {
				cached.Cached = true
				return &cached
			}
		}
	}

	if err := p.limiter.Wait(ctx, p.provider.Name()); err != nil {
		p.logger.Warn("polish rate limit wait aborted", zap.Error(err))
		return nil
	}

	resp, err := p.provider.Polish(ctx, PolishRequest{Summary: summary, Metrics: metrics, Model: p.model})
	if err != nil {
		p.logger.Warn("polish failed, keeping rule-based summary",
			zap.String("provider", p.provider.Name()),
			zap.Error(err))
		return nil
	}

	polished := &model.PolishedSummary{
		Enabled:  true,
		Provider: p.provider.Name(),
		Model:    resp.Model,
		Text:     resp.Text,
	}

	if p.cache != nil {
		if data, err := json.Marshal(polished); err == nil {
			if err := p.cache.Set(key, data, p.ttl); err != nil {
				p.logger.Debug("polish cache write failed", zap.Error(err))
			}
		}
	}

	return polished
}
