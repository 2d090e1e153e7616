package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ppiankov/annotext/internal/analyze"
	"github.com/ppiankov/annotext/internal/annotate"
	"github.com/ppiankov/annotext/internal/doccache"
	"github.com/ppiankov/annotext/internal/editor"
)

// transformCmd represents the transform command group
var transformCmd = &cobra.Command{
	Use:   "transform",
	Short: "Apply a per-category text operation to a document",
	Long: `Transform rewrites every span of one token category (Number,
Adjective, Date) with a registered operation and prints the result.

Subcommands are generated from the static operation table at startup.

Example:
  annotext transform number-remove notes.md
  annotext transform adjective-upper notes.md`,
}

func init() {
	rootCmd.AddCommand(transformCmd)

	// One subcommand per table entry; the table is the single source
	// of truth for what operations exist.
	for _, key := range editor.Transforms() {
		key := key
		sub := &cobra.Command{
			Use:   fmt.Sprintf("%s-%s <file>", strings.ToLower(key.Category), key.Op),
			Short: fmt.Sprintf("Apply %s to every %s span", key.Op, key.Category),
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runTransform(args[0], key)
			},
		}
		transformCmd.AddCommand(sub)
	}
}

// runTransform locates the category's spans with a token pass, rewrites
// them right-to-left, and prints the transformed document.
func runTransform(path string, key editor.TransformKey) error {
	text, err := doccache.LoadFile(context.Background(), path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	fn, err := editor.LookupTransform(key.Category, key.Op)
	if err != nil {
		return err
	}

	ranges, err := annotate.RunPass(text, annotate.Pass{Analyzer: analyze.NewTokenAnalyzer()})
	if err != nil {
		return err
	}

	var spans []editor.Span
	for _, r := range ranges {
		if r.HasClass(key.Category) {
			spans = append(spans, editor.Span{Start: r.Start, End: r.End})
		}
	}

	// Route the rewrite through the buffer contract: select the whole
	// document, replace the selection with the transformed text.
	buf := editor.NewMemoryBuffer(text)
	buf.Select(0, len(text))
	buf.ReplaceSelection(editor.ApplyTransform(text, spans, fn))

	fmt.Print(buf.FullText())
	return nil
}
