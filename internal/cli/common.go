package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ppiankov/annotext/internal/analyze"
	"github.com/ppiankov/annotext/internal/doccache"
	"github.com/ppiankov/annotext/internal/llm"
	"github.com/ppiankov/annotext/internal/model"
)

var (
	outputJSON bool

	perSentence    bool
	normalizeScore bool

	llmEnabled  bool
	llmProvider string
	llmModel    string
)

// docs is the process-wide document cache, shared by refresh and the
// aggregate queries within one invocation. Created empty at startup,
// torn down with the process.
var docs *doccache.Cache

func docCache() *doccache.Cache {
	if docs == nil {
		workers := viper.GetInt("concurrency.refresh_workers")
		if workers <= 0 {
			workers = model.DefaultConfig().Concurrency.RefreshWorkers
		}
		docs = doccache.New(workers)
	}
	return docs
}

// analysisConfig resolves the sentiment aggregation settings: defaults,
// then the config file, then flags the user passed explicitly.
func analysisConfig(cmd *cobra.Command) model.AnalysisConfig {
	cfg := model.DefaultConfig().Analysis
	if err := viper.UnmarshalKey("analysis", &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: invalid analysis config: %v\n", err)
	}
	if cmd.Flags().Changed("per-sentence") {
		cfg.PerSentence = perSentence
	}
	if cmd.Flags().Changed("normalize") {
		cfg.NormalizeScore = normalizeScore
	}
	return cfg
}

// newScorer builds the optional LLM sentiment scorer. Provider settings
// come from the config file, with flags overriding; the API key only
// ever comes from the environment. Returns nil when no provider is
// configured.
func newScorer(cmd *cobra.Command) (*llm.Scorer, error) {
	mc := model.DefaultConfig().LLM
	if err := viper.UnmarshalKey("llm", &mc); err != nil {
		return nil, fmt.Errorf("invalid llm config: %w", err)
	}

	if cmd.Flags().Changed("llm-provider") {
		mc.Provider = llmProvider
	}
	if cmd.Flags().Changed("llm-model") {
		mc.Model = llmModel
	}
	if llmEnabled && mc.Provider == "" {
		mc.Provider = llmProvider
	}
	if mc.Provider == "" {
		return nil, nil
	}

	cfg := llm.ConfigFromModel(mc)
	switch cfg.Provider {
	case "openai":
		cfg.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "ollama":
		// Ollama doesn't need an API key
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			cfg.BaseURL = baseURL
		}
	}

	return llm.NewScorer(cfg)
}

// entityAnalyzer loads the entity analyzer with the configured custom
// examples. A missing or malformed examples file degrades to built-in
// entities with a warning; an optional config never blocks a command.
func entityAnalyzer() *analyze.EntityAnalyzer {
	path := viper.GetString("entities.examples_file")
	a, err := analyze.NewEntityAnalyzerFromFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: custom entities unavailable: %v\n", err)
	}
	return a
}

// renderRanges writes located ranges as text or JSON.
func renderRanges(text string, ranges []model.Range) error {
	if outputJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(ranges)
	}

	for _, r := range ranges {
		fmt.Printf("[%4d,%4d) %-28s %q\n", r.Start, r.End, r.ClassAttr(), text[r.Start:r.End])
	}
	return nil
}
