package cli

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/annotext/internal/doccache"
)

var refreshTimeout time.Duration

// refreshCmd represents the refresh command
var refreshCmd = &cobra.Command{
	Use:   "refresh <file>...",
	Short: "Rebuild the analyzed-document cache for the given files",
	Long: `Refresh loads each file, runs the full analysis (tokens, sentences,
sentiment), and stores the result in the document cache used by the
stats queries.

A per-file failure does not roll back the rest of the batch: files
processed successfully stay cached, and the failure is reported once at
the end.

Example:
  annotext refresh notes/*.md
  annotext refresh report.html --llm --llm-provider openai`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRefresh,
}

func init() {
	rootCmd.AddCommand(refreshCmd)

	refreshCmd.Flags().DurationVar(&refreshTimeout, "timeout", 5*time.Minute, "total refresh timeout")
	refreshCmd.Flags().BoolVar(&perSentence, "per-sentence", true, "average per-sentence sentiment instead of scoring whole document")
	refreshCmd.Flags().BoolVar(&normalizeScore, "normalize", false, "length-normalize sentiment scores")

	// LLM flags
	refreshCmd.Flags().BoolVar(&llmEnabled, "llm", false, "score sentiment with an LLM provider")
	refreshCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, ollama)")
	refreshCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name (provider default if empty)")
}

func runRefresh(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	scorer, err := newScorer(cmd)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Refreshing %d files\n", len(args))
		if scorer != nil {
			fmt.Fprintf(os.Stderr, "Sentiment provider: %s\n", scorer.Provider())
		}
	}

	analyzeFn := doccache.NewAnalyzeFunc(analysisConfig(cmd), scorer)
	refreshed, err := docCache().RefreshAll(ctx, args, doccache.LoadFile, analyzeFn)

	if verbose {
		paths := docCache().Paths()
		sort.Strings(paths)
		for _, path := range paths {
			doc, ok := docCache().Get(path)
			if !ok {
				continue
			}
			fmt.Fprintf(os.Stderr, "  %s: %d tokens, %d sentences, sentiment %+.2f\n",
				path, len(doc.Tokens), len(doc.Sentences), doc.Sentiment)
		}
	}
	fmt.Printf("Refreshed %d of %d documents\n", len(refreshed), len(args))

	// Partial success is preserved; the error is the end-of-batch notice.
	return err
}
