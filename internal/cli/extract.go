package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ppiankov/annotext/internal/doccache"
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <entity> <file>",
	Short: "Extract every occurrence of one entity label",
	Long: `Extract prints each match of an entity label, one per line, ready to
pipe or copy. Built-in labels are Email, URL, Date, and Number; custom
labels come from the configured entity examples file.

Example:
  annotext extract Email notes.md
  annotext extract Project notes.md`,
	Args: cobra.ExactArgs(2),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	label, path := args[0], args[1]

	a := entityAnalyzer()
	known := false
	for _, l := range a.Labels() {
		if l == label {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("unknown entity label %q (known: %s)", label, strings.Join(a.Labels(), ", "))
	}

	text, err := doccache.LoadFile(context.Background(), path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	for _, match := range a.Extract(text, label) {
		fmt.Println(match)
	}
	return nil
}
