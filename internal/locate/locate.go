// Package locate recovers absolute byte offsets for analyzer fragments.
//
// NLP analyzers return fragment text without character positions, and a
// document may contain the same word or sentence many times. The locator
// resolves the ambiguity with a search cursor that only moves forward:
// each fragment is searched for from the end of the previous match, so
// repeated substrings resolve to successive occurrences and the resulting
// ranges never overlap or backtrack.
package locate

import (
	"strings"

	"github.com/ppiankov/annotext/internal/model"
)

// PrefixLen is the number of leading bytes matched for approximate
// fragments. Sentence fragments reproduce whitespace imperfectly, so an
// exact substring search can miss; a short prefix is enough to anchor
// the start of the span.
const PrefixLen = 5

// Options controls how fragments are matched against the document.
type Options struct {
	// Prefix enables fixed-length prefix matching for fragments whose
	// text approximates but may not byte-exactly equal the document
	// substring (multi-token spans such as sentences).
	Prefix bool
}

// Fragments resolves each fragment to an absolute half-open range in
// fullText. Fragments must arrive in document order. Ranges carry the
// fragment's raw tags as classes; normalization happens downstream.
//
// A fragment with empty text produces no range and does not move the
// cursor. A fragment that cannot be found from the cursor onward is
// skipped and the cursor stays put, so one mismatched fragment never
// blanks out the rest of the batch.
func Fragments(fullText string, fragments []model.Fragment, opts Options) []model.Range {
	var ranges []model.Range
	offset := 0

	for _, f := range fragments {
		if f.Text == "" {
			continue
		}

		needle := f.Text
		if opts.Prefix && len(needle) > PrefixLen {
			needle = needle[:PrefixLen]
		}

		idx := strings.Index(fullText[offset:], needle)
		if idx < 0 {
			// No match from the cursor onward; skip this fragment.
			continue
		}

		start := offset + idx
		// End is always start plus the full fragment length, even in
		// prefix mode. The reported span can drift by a few bytes on
		// imprecise fragments; that is acceptable for highlighting and
		// keeps the cursor moving strictly forward.
		end := start + len(f.Text)
		if end > len(fullText) {
			end = len(fullText)
		}
		if end <= start {
			continue
		}

		ranges = append(ranges, model.Range{
			Start:   start,
			End:     end,
			Classes: append([]string(nil), f.Tags...),
		})
		offset = end
	}

	return ranges
}
