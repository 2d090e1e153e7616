package llm

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// Scorer wraps a provider with rate limiting. Document refreshes can
// score many sentences in a row; the limiter keeps the provider within
// its request budget.
type Scorer struct {
	provider Provider
	limiter  *rate.Limiter
	config   Config
}

// NewScorer creates a rate-limited scorer for the configured provider.
// Returns nil when no provider is configured (LLM scoring disabled).
func NewScorer(config Config) (*Scorer, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, nil
	}

	rps := config.RequestsPerSecond
	if rps <= 0 {
		rps = 1
	}

	return &Scorer{
		provider: provider,
		limiter:  rate.NewLimiter(rate.Limit(rps), 1),
		config:   config,
	}, nil
}

// Provider returns the underlying provider name.
func (s *Scorer) Provider() string {
	return s.provider.Name()
}

// Score rates the sentiment of text in [-1, 1], waiting for rate-limit
// clearance first.
func (s *Scorer) Score(ctx context.Context, text string) (float64, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return 0, fmt.Errorf("rate limit wait: %w", err)
	}

	resp, err := s.provider.Score(ctx, ScoreRequest{Text: text})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", s.provider.Name(), err)
	}
	return resp.Score, nil
}
