package analyze

import (
	"strings"

	"github.com/ppiankov/annotext/internal/model"
)

// SentenceAnalyzer segments text into sentences.
type SentenceAnalyzer struct{}

// NewSentenceAnalyzer creates a new sentence analyzer
func NewSentenceAnalyzer() *SentenceAnalyzer {
	return &SentenceAnalyzer{}
}

// Name returns the analyzer name
func (a *SentenceAnalyzer) Name() string { return "sentences" }

// Analyze splits text into sentence fragments in document order.
// Sentence text is trimmed, so it approximates rather than byte-exactly
// matches the document; callers locate these fragments in prefix mode.
func (a *SentenceAnalyzer) Analyze(text string) ([]model.Fragment, error) {
	sentences := SplitSentences(text)
	fragments := make([]model.Fragment, 0, len(sentences))
	for _, s := range sentences {
		fragments = append(fragments, model.Fragment{Text: s})
	}
	return fragments, nil
}

// SplitSentences splits text into sentences on terminators followed by
// whitespace, with a lookahead that avoids splitting inside
// abbreviations glued to the next word.
func SplitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	flush := func() {
		sentence := strings.TrimSpace(current.String())
		if sentence != "" {
			sentences = append(sentences, sentence)
		}
		current.Reset()
	}

	for i, r := range text {
		current.WriteRune(r)

		if r == '.' || r == '!' || r == '?' {
			// Only split when the terminator ends the text or is
			// followed by whitespace; "e.g.x" stays together.
			if i+1 >= len(text) || text[i+1] == ' ' || text[i+1] == '\t' || text[i+1] == '\n' {
				flush()
			}
		}
	}
	flush()

	return sentences
}
