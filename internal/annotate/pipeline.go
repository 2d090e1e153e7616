// Package annotate orchestrates one analysis pass: run an analyzer over
// the full document text, resolve its fragments to absolute ranges, and
// normalize tags into the canonical classes the view renders.
package annotate

import (
	"fmt"

	"github.com/ppiankov/annotext/internal/locate"
	"github.com/ppiankov/annotext/internal/model"
	"github.com/ppiankov/annotext/internal/tags"
)

// Analyzer is one NLP capability consumed as a black box: a pure
// function of its input text returning fragments in document order.
type Analyzer interface {
	// Name returns the analyzer name
	Name() string

	// Analyze runs the analyzer over the full text. May be expensive;
	// the pipeline calls it exactly once per pass, with no retries.
	Analyze(text string) ([]model.Fragment, error)
}

// Pass describes one highlight pass over the document.
type Pass struct {
	// Analyzer produces the fragments for this pass.
	Analyzer Analyzer

	// Category, when non-empty, is attached as an additional class to
	// every range the pass produces (e.g. "Sentence"). Category-free
	// passes use the normalized fragment tags directly.
	Category string

	// PrefixLocate selects prefix matching in the locator, for passes
	// whose fragments approximate rather than equal the document text.
	PrefixLocate bool
}

// RunPass executes one analysis pass and returns the add-batch of
// ranges for the live view, sorted by start. The pipeline performs no
// caching; callers decide when to re-run it.
//
// The caller must read fullText and dispatch the returned ranges
// without an intervening edit, otherwise the recovered offsets will not
// match the post-edit buffer.
func RunPass(fullText string, pass Pass) ([]model.Range, error) {
	fragments, err := pass.Analyzer.Analyze(fullText)
	if err != nil {
		return nil, fmt.Errorf("analyze %s: %w", pass.Analyzer.Name(), err)
	}

	ranges := locate.Fragments(fullText, fragments, locate.Options{Prefix: pass.PrefixLocate})

	for i := range ranges {
		classes := tags.NormalizeAll(ranges[i].Classes)
		if pass.Category != "" {
			classes = append(classes, pass.Category)
		}
		ranges[i].Classes = classes
	}

	return ranges, nil
}
