package model

import "time"

// Config holds the complete annotext configuration
type Config struct {
	Analysis    AnalysisConfig    `yaml:"analysis" json:"analysis" mapstructure:"analysis"`
	Entities    EntitiesConfig    `yaml:"entities" json:"entities" mapstructure:"entities"`
	LLM         LLMConfig         `yaml:"llm" json:"llm" mapstructure:"llm"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" json:"concurrency" mapstructure:"concurrency"`
	Output      OutputConfig      `yaml:"output" json:"output" mapstructure:"output"`
}

// AnalysisConfig controls sentiment aggregation behavior
type AnalysisConfig struct {
	PerSentence    bool `yaml:"per_sentence" json:"per_sentence" mapstructure:"per_sentence"`          // Average per-sentence scores instead of scoring the whole document
	NormalizeScore bool `yaml:"normalize_score" json:"normalize_score" mapstructure:"normalize_score"` // Length-normalize sentiment scores
}

// EntitiesConfig points at the optional custom-entity examples file
type EntitiesConfig struct {
	ExamplesFile string `yaml:"examples_file" json:"examples_file" mapstructure:"examples_file"` // JSON file with custom entity examples (optional)
}

// LLMConfig configures the optional LLM sentiment provider
type LLMConfig struct {
	Provider          string        `yaml:"provider" json:"provider" mapstructure:"provider"` // "openai", "ollama", "" (disabled)
	Model             string        `yaml:"model" json:"model" mapstructure:"model"`
	APIKey            string        `yaml:"-" json:"-" mapstructure:"-"` // Never persisted, environment only
	BaseURL           string        `yaml:"base_url" json:"base_url" mapstructure:"base_url"`
	Timeout           time.Duration `yaml:"timeout" json:"timeout" mapstructure:"timeout"`
	RequestsPerSecond float64       `yaml:"requests_per_second" json:"requests_per_second" mapstructure:"requests_per_second"`
}

// ConcurrencyConfig controls refresh parallelism
type ConcurrencyConfig struct {
	RefreshWorkers int `yaml:"refresh_workers" json:"refresh_workers" mapstructure:"refresh_workers"`
}

// OutputConfig controls CLI rendering
type OutputConfig struct {
	Verbose bool   `yaml:"verbose" json:"verbose" mapstructure:"verbose"`
	Format  string `yaml:"format" json:"format" mapstructure:"format"` // "text" or "json"
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			PerSentence:    true,
			NormalizeScore: false,
		},
		Entities: EntitiesConfig{},
		LLM: LLMConfig{
			Timeout:           30 * time.Second,
			RequestsPerSecond: 1,
		},
		Concurrency: ConcurrencyConfig{
			RefreshWorkers: 4,
		},
		Output: OutputConfig{
			Format: "text",
		},
	}
}
