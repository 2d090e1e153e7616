package model

import "time"

// Token is a single word or symbol from an analyzed document, with its
// part-of-speech tag and byte offsets into the source text.
type Token struct {
	Text  string `json:"text"`
	Tag   string `json:"tag"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Sentence is a segmented portion of an analyzed document.
type Sentence struct {
	Text      string  `json:"text"`
	Sentiment float64 `json:"sentiment"` // Lexicon or provider score, -1.0 to +1.0
}

// AnalyzedDoc is the cached analyzer-ready representation of one
// document, keyed by path. At most one entry exists per path; a refresh
// replaces the entry wholesale, never patches it.
type AnalyzedDoc struct {
	Path       string     `json:"path"`
	Text       string     `json:"-"` // Full source text the analysis was run against
	Tokens     []Token    `json:"tokens"`
	Sentences  []Sentence `json:"sentences"`
	Sentiment  float64    `json:"sentiment"` // Whole-document score
	AnalyzedAt time.Time  `json:"analyzed_at"`
}
