package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// newFlagCmd registers the shared analysis and LLM flags on a throwaway
// command, resetting the backing variables to their defaults.
func newFlagCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().BoolVar(&perSentence, "per-sentence", true, "")
	cmd.Flags().BoolVar(&normalizeScore, "normalize", false, "")
	cmd.Flags().BoolVar(&llmEnabled, "llm", false, "")
	cmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "")
	cmd.Flags().StringVar(&llmModel, "llm-model", "", "")
	return cmd
}

func TestAnalysisConfig_Defaults(t *testing.T) {
	defer viper.Reset()

	cfg := analysisConfig(newFlagCmd())
	if !cfg.PerSentence {
		t.Error("Expected per-sentence scoring by default")
	}
	if cfg.NormalizeScore {
		t.Error("Expected normalization off by default")
	}
}

func TestAnalysisConfig_ConfigFileApplies(t *testing.T) {
	defer viper.Reset()
	viper.Set("analysis.per_sentence", false)
	viper.Set("analysis.normalize_score", true)

	cfg := analysisConfig(newFlagCmd())
	if cfg.PerSentence {
		t.Error("Expected per_sentence from the config file to apply")
	}
	if !cfg.NormalizeScore {
		t.Error("Expected normalize_score from the config file to apply")
	}
}

func TestAnalysisConfig_FlagOverridesConfigFile(t *testing.T) {
	defer viper.Reset()
	viper.Set("analysis.normalize_score", true)

	cmd := newFlagCmd()
	if err := cmd.Flags().Set("normalize", "false"); err != nil {
		t.Fatalf("Set flag: %v", err)
	}

	cfg := analysisConfig(cmd)
	if cfg.NormalizeScore {
		t.Error("Expected an explicit flag to override the config file")
	}
}

func TestNewScorer_DisabledWithoutProvider(t *testing.T) {
	defer viper.Reset()

	scorer, err := newScorer(newFlagCmd())
	if err != nil {
		t.Fatalf("Expected no error when LLM scoring is off, got %v", err)
	}
	if scorer != nil {
		t.Error("Expected nil scorer without a configured provider")
	}
}

func TestNewScorer_ProviderFromConfigFile(t *testing.T) {
	defer viper.Reset()
	viper.Set("llm.provider", "ollama")
	viper.Set("llm.model", "llama3")

	scorer, err := newScorer(newFlagCmd())
	if err != nil {
		t.Fatalf("Expected scorer from config file, got error %v", err)
	}
	if scorer == nil {
		t.Fatal("Expected non-nil scorer when the config file sets a provider")
	}
	if scorer.Provider() != "ollama" {
		t.Errorf("Expected provider ollama, got %s", scorer.Provider())
	}
}

func TestNewScorer_FlagOverridesConfigFile(t *testing.T) {
	defer viper.Reset()
	viper.Set("llm.provider", "openai")

	cmd := newFlagCmd()
	if err := cmd.Flags().Set("llm-provider", "ollama"); err != nil {
		t.Fatalf("Set flag: %v", err)
	}

	scorer, err := newScorer(cmd)
	if err != nil {
		t.Fatalf("Expected scorer, got error %v", err)
	}
	if scorer.Provider() != "ollama" {
		t.Errorf("Expected flag provider to win, got %s", scorer.Provider())
	}
}

func TestEffectiveConfig_MergesFileOverDefaults(t *testing.T) {
	defer viper.Reset()
	viper.Set("output.format", "json")
	viper.Set("concurrency.refresh_workers", 8)

	cfg := effectiveConfig()
	if cfg.Output.Format != "json" {
		t.Errorf("Expected output format json, got %s", cfg.Output.Format)
	}
	if cfg.Concurrency.RefreshWorkers != 8 {
		t.Errorf("Expected 8 refresh workers, got %d", cfg.Concurrency.RefreshWorkers)
	}
	if !cfg.Analysis.PerSentence {
		t.Error("Expected untouched defaults to survive the merge")
	}
}
