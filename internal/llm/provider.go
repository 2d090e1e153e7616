// Package llm provides the optional LLM-backed sentiment providers.
// When no provider is configured the system falls back to the embedded
// lexicon; a provider failure never blocks an analysis pass.
package llm

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ppiankov/annotext/internal/model"
)

// Provider defines the interface for LLM sentiment providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Score rates the sentiment of text in [-1, 1]
	Score(ctx context.Context, req ScoreRequest) (*ScoreResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// ScoreRequest contains the input for LLM sentiment scoring
type ScoreRequest struct {
	// Text is the passage to score
	Text string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// ScoreResponse contains the provider's sentiment output
type ScoreResponse struct {
	// Score is the sentiment in [-1, 1]
	Score float64

	// Model is the model that produced the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests
	Timeout int // seconds

	// MaxTokens for response generation
	MaxTokens int

	// RequestsPerSecond rate-limits calls to the provider
	RequestsPerSecond float64
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:          "", // Disabled by default
		Model:             "",
		Timeout:           30,
		MaxTokens:         16,
		RequestsPerSecond: 1,
	}
}

// ConfigFromModel converts model.LLMConfig to llm.Config
func ConfigFromModel(mc model.LLMConfig) Config {
	cfg := DefaultConfig()
	cfg.Provider = mc.Provider
	cfg.Model = mc.Model
	cfg.APIKey = mc.APIKey
	cfg.BaseURL = mc.BaseURL
	if mc.Timeout > 0 {
		cfg.Timeout = int(mc.Timeout.Seconds())
	}
	if mc.RequestsPerSecond > 0 {
		cfg.RequestsPerSecond = mc.RequestsPerSecond
	}
	return cfg
}

// BuildPrompt constructs the sentiment prompt. The response contract is
// a single number so the answer parses without any structured output
// support on the provider side.
func BuildPrompt(text string) string {
	return fmt.Sprintf(`Rate the overall sentiment of the following passage as a single number between -1.0 (very negative) and 1.0 (very positive).

Respond with ONLY the number. No words, no explanation.

Passage:
%s`, text)
}

// ParseScore extracts the numeric score from a provider response.
func ParseScore(resp string) (float64, error) {
	fields := strings.Fields(strings.TrimSpace(resp))
	if len(fields) == 0 {
		return 0, fmt.Errorf("empty response")
	}

	score, err := strconv.ParseFloat(strings.Trim(fields[0], "\"'`"), 64)
	if err != nil {
		return 0, fmt.Errorf("parse score %q: %w", resp, err)
	}
	if score < -1 {
		score = -1
	}
	if score > 1 {
		score = 1
	}
	return score, nil
}
