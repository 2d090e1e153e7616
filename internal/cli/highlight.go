package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ppiankov/annotext/internal/analyze"
	"github.com/ppiankov/annotext/internal/annotate"
	"github.com/ppiankov/annotext/internal/doccache"
	"github.com/ppiankov/annotext/internal/editor"
	"github.com/ppiankov/annotext/internal/model"
)

// highlightCmd represents the highlight command group
var highlightCmd = &cobra.Command{
	Use:   "highlight",
	Short: "Run one analysis pass and print the highlighted ranges",
	Long: `Highlight runs a single analyzer over a document and resolves its
fragments to absolute, non-overlapping character ranges.

Example:
  annotext highlight pos notes.md
  annotext highlight sentences notes.md --json
  annotext highlight entities notes.md`,
}

var highlightPosCmd = &cobra.Command{
	Use:   "pos <file>",
	Short: "Highlight part-of-speech tags",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHighlight(args[0], annotate.Pass{
			Analyzer: analyze.NewTokenAnalyzer(),
		})
	},
}

var highlightSentencesCmd = &cobra.Command{
	Use:   "sentences <file>",
	Short: "Highlight sentence boundaries",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHighlight(args[0], annotate.Pass{
			Analyzer:     analyze.NewSentenceAnalyzer(),
			Category:     "Sentence",
			PrefixLocate: true,
		})
	},
}

var highlightEntitiesCmd = &cobra.Command{
	Use:   "entities <file>",
	Short: "Highlight built-in and custom entities",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHighlight(args[0], annotate.Pass{
			Analyzer: entityAnalyzer(),
			Category: "Entity",
		})
	},
}

var highlightSentimentCmd = &cobra.Command{
	Use:   "sentiment <file>",
	Short: "Highlight per-sentence sentiment polarity",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := analyze.SentimentOptions{Normalize: analysisConfig(cmd).NormalizeScore}
		return runHighlight(args[0], annotate.Pass{
			Analyzer:     analyze.NewSentimentAnalyzer(opts),
			Category:     "Sentiment",
			PrefixLocate: true,
		})
	},
}

func init() {
	rootCmd.AddCommand(highlightCmd)

	highlightCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "output ranges as JSON")
	highlightCmd.PersistentFlags().BoolVar(&normalizeScore, "normalize", false, "length-normalize sentiment scores")

	highlightCmd.AddCommand(highlightPosCmd)
	highlightCmd.AddCommand(highlightSentencesCmd)
	highlightCmd.AddCommand(highlightEntitiesCmd)
	highlightCmd.AddCommand(highlightSentimentCmd)
}

// runHighlight reads the document, runs one pass, dispatches the batch
// into a fresh view, and renders the resulting decorations. Text is
// read and decorations dispatched within the same turn, so the offsets
// match the rendered buffer.
func runHighlight(path string, pass annotate.Pass) error {
	text, err := doccache.LoadFile(context.Background(), path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	ranges, err := annotate.RunPass(text, pass)
	if err != nil {
		return err
	}

	view := editor.NewView()
	if pass.Category != "" {
		view.Dispatch(ranges, func(r model.Range) bool { return r.HasClass(pass.Category) })
	} else {
		view.Dispatch(ranges, nil)
	}

	return renderRanges(text, view.Decorations().Ranges())
}
