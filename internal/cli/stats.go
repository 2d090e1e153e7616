package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/ppiankov/annotext/internal/doccache"
)

// statsCmd represents the stats command group
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Aggregate statistics over cached documents",
	Long: `Stats queries the analyzed-document cache: bag-of-words term
frequencies, the distinct term set, and average sentiment. The target
file is refreshed into the cache first if it is not there yet.

Example:
  annotext stats terms notes.md
  annotext stats bow notes.md --json
  annotext stats sentiment notes.md`,
}

var statsTermsCmd = &cobra.Command{
	Use:   "terms <file>",
	Short: "Print the document's distinct non-stopword terms",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := ensureCached(cmd, args[0]); err != nil {
			return err
		}
		terms, err := docCache().TermSet(args[0])
		if err != nil {
			return err
		}
		if outputJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(terms)
		}
		for _, t := range terms {
			fmt.Println(t)
		}
		return nil
	},
}

var statsBowCmd = &cobra.Command{
	Use:   "bow <file>",
	Short: "Print the document's bag-of-words term frequencies",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := ensureCached(cmd, args[0]); err != nil {
			return err
		}
		bag, err := docCache().BagOfWords(args[0])
		if err != nil {
			return err
		}
		if outputJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(bag)
		}

		// Highest frequency first, ties alphabetical.
		terms := make([]string, 0, len(bag))
		for t := range bag {
			terms = append(terms, t)
		}
		sort.Slice(terms, func(i, j int) bool {
			if bag[terms[i]] != bag[terms[j]] {
				return bag[terms[i]] > bag[terms[j]]
			}
			return terms[i] < terms[j]
		})
		for _, t := range terms {
			fmt.Printf("%6d  %s\n", bag[t], t)
		}
		return nil
	},
}

var statsSentimentCmd = &cobra.Command{
	Use:   "sentiment <file>",
	Short: "Print the document's average sentiment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := ensureCached(cmd, args[0]); err != nil {
			return err
		}
		score, err := docCache().AverageSentiment(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%+.3f\n", score)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "output as JSON")
	statsCmd.PersistentFlags().BoolVar(&perSentence, "per-sentence", true, "average per-sentence sentiment instead of scoring whole document")
	statsCmd.PersistentFlags().BoolVar(&normalizeScore, "normalize", false, "length-normalize sentiment scores")

	statsCmd.AddCommand(statsTermsCmd)
	statsCmd.AddCommand(statsBowCmd)
	statsCmd.AddCommand(statsSentimentCmd)
}

// ensureCached refreshes a path into the cache if no entry exists yet.
func ensureCached(cmd *cobra.Command, path string) error {
	if _, ok := docCache().Get(path); ok {
		return nil
	}

	scorer, err := newScorer(cmd)
	if err != nil {
		return err
	}
	analyzeFn := doccache.NewAnalyzeFunc(analysisConfig(cmd), scorer)
	_, err = docCache().RefreshAll(context.Background(), []string{path}, doccache.LoadFile, analyzeFn)
	return err
}
