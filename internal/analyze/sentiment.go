package analyze

import (
	"strings"

	"github.com/ppiankov/annotext/internal/model"
)

// Sentiment polarity classes attached to sentence fragments.
const (
	ClassPositive = "Positive"
	ClassNegative = "Negative"
	ClassNeutral  = "Neutral"
)

// sentimentLexicon maps lowercased words to polarity scores. Scores are
// in [-1, 1]; words absent from the lexicon score zero.
var sentimentLexicon = map[string]float64{
	"good": 0.7, "great": 0.9, "excellent": 1.0, "wonderful": 0.9,
	"happy": 0.8, "love": 0.9, "loved": 0.9, "best": 0.8, "beautiful": 0.8,
	"nice": 0.5, "fine": 0.3, "better": 0.4, "success": 0.6, "successful": 0.7,
	"win": 0.6, "won": 0.6, "easy": 0.4, "clear": 0.3, "helpful": 0.6,
	"improved": 0.5, "improvement": 0.5, "fast": 0.3, "reliable": 0.6,

	"bad": -0.7, "terrible": -0.9, "awful": -0.9, "horrible": -1.0,
	"sad": -0.7, "hate": -0.9, "hated": -0.9, "worst": -0.9, "ugly": -0.7,
	"poor": -0.5, "worse": -0.5, "failure": -0.7, "failed": -0.6, "fail": -0.6,
	"lose": -0.5, "lost": -0.5, "hard": -0.3, "slow": -0.3, "broken": -0.6,
	"wrong": -0.5, "problem": -0.4, "difficult": -0.4, "unreliable": -0.6,
}

// SentimentOptions selects how aggregate scores are computed.
type SentimentOptions struct {
	// Normalize divides the summed word scores by the token count
	// instead of by the count of lexicon hits.
	Normalize bool
}

// SentimentAnalyzer scores text polarity against the embedded lexicon.
type SentimentAnalyzer struct {
	opts SentimentOptions
}

// NewSentimentAnalyzer creates a new sentiment analyzer
func NewSentimentAnalyzer(opts SentimentOptions) *SentimentAnalyzer {
	return &SentimentAnalyzer{opts: opts}
}

// Name returns the analyzer name
func (a *SentimentAnalyzer) Name() string { return "sentiment" }

// Analyze splits text into sentences and tags each with its polarity
// class. Fragments approximate document substrings; locate in prefix
// mode.
func (a *SentimentAnalyzer) Analyze(text string) ([]model.Fragment, error) {
	sentences := SplitSentences(text)
	fragments := make([]model.Fragment, 0, len(sentences))
	for _, s := range sentences {
		fragments = append(fragments, model.Fragment{
			Text: s,
			Tags: []string{polarityClass(a.Score(s))},
		})
	}
	return fragments, nil
}

// Score returns the aggregate polarity of text in [-1, 1].
func (a *SentimentAnalyzer) Score(text string) float64 {
	var sum float64
	hits, total := 0, 0

	for _, word := range strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9') && r != '\''
	}) {
		total++
		if score, ok := sentimentLexicon[word]; ok {
			sum += score
			hits++
		}
	}

	if a.opts.Normalize {
		if total == 0 {
			return 0
		}
		return sum / float64(total)
	}
	if hits == 0 {
		return 0
	}
	return sum / float64(hits)
}

func polarityClass(score float64) string {
	switch {
	case score > 0.05:
		return ClassPositive
	case score < -0.05:
		return ClassNegative
	default:
		return ClassNeutral
	}
}
