// Package analyze provides the built-in NLP analyzers: part-of-speech
// tokens, sentence segmentation, entity matching, and lexicon-based
// sentiment. Each analyzer is a pure function of its input text and
// returns fragments in left-to-right document order, the contract the
// annotation pipeline depends on.
package analyze

import (
	"strings"
	"unicode"

	"github.com/ppiankov/annotext/internal/model"
)

// TokenAnalyzer tokenizes text and assigns part-of-speech tags by rule.
type TokenAnalyzer struct{}

// NewTokenAnalyzer creates a new token analyzer
func NewTokenAnalyzer() *TokenAnalyzer {
	return &TokenAnalyzer{}
}

// Name returns the analyzer name
func (a *TokenAnalyzer) Name() string { return "tokens" }

// Analyze tokenizes text and returns one tagged fragment per word
// token, in document order. Punctuation produces no fragment.
func (a *TokenAnalyzer) Analyze(text string) ([]model.Fragment, error) {
	tokens := a.Tokens(text)
	fragments := make([]model.Fragment, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Tag == tagPunctuation {
			continue
		}
		fragments = append(fragments, model.Fragment{
			Text: tok.Text,
			Tags: []string{tok.Tag},
		})
	}
	return fragments, nil
}

// Tokens scans text into tagged tokens with byte offsets. Offsets
// satisfy text[tok.Start:tok.End] == tok.Text.
func (a *TokenAnalyzer) Tokens(text string) []model.Token {
	var tokens []model.Token

	start := -1
	flush := func(end int) {
		if start < 0 {
			return
		}
		word := text[start:end]
		tokens = append(tokens, model.Token{
			Text:  word,
			Tag:   tagWord(word),
			Start: start,
			End:   end,
		})
		start = -1
	}

	for i, r := range text {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '\'' || r == '-' {
			if start < 0 {
				start = i
			}
			continue
		}
		flush(i)
		if !unicode.IsSpace(r) {
			tokens = append(tokens, model.Token{
				Text:  string(r),
				Tag:   tagPunctuation,
				Start: i,
				End:   i + len(string(r)),
			})
		}
	}
	flush(len(text))

	return tokens
}

// Part-of-speech tags emitted by the token analyzer. MaleName and
// FemaleName are raw labels; the tags package collapses them to the
// neutral canonical forms before rendering.
const (
	tagNoun        = "Noun"
	tagProperNoun  = "ProperNoun"
	tagVerb        = "Verb"
	tagAdjective   = "Adjective"
	tagAdverb      = "Adverb"
	tagPronoun     = "Pronoun"
	tagDeterminer  = "Determiner"
	tagPreposition = "Preposition"
	tagConjunction = "Conjunction"
	tagNumber      = "Number"
	tagDate        = "Date"
	tagPunctuation = "Punctuation"
	tagMaleName    = "MaleName"
	tagFemaleName  = "FemaleName"
)

// Closed-class word lists. Small on purpose: the tagger is a
// heuristic, not a model.
var (
	determiners  = wordSet("the", "a", "an", "this", "that", "these", "those", "each", "every", "some", "any", "no")
	pronouns     = wordSet("i", "you", "he", "she", "it", "we", "they", "me", "him", "her", "us", "them", "his", "hers", "its", "their", "my", "your", "our", "who", "whom", "which")
	prepositions = wordSet("in", "on", "at", "by", "for", "with", "from", "to", "of", "about", "over", "under", "into", "through", "between", "after", "before", "during")
	conjunctions = wordSet("and", "or", "but", "nor", "so", "yet", "because", "although", "while", "unless", "if")
	verbs        = wordSet("is", "are", "was", "were", "be", "been", "being", "am", "do", "does", "did", "have", "has", "had", "will", "would", "can", "could", "shall", "should", "may", "might", "must", "ran", "run", "runs", "go", "goes", "went", "say", "says", "said", "make", "makes", "made", "see", "sees", "saw")
	adverbs      = wordSet("very", "quite", "too", "also", "not", "never", "always", "often", "soon", "now", "then", "here", "there")

	months = wordSet("january", "february", "march", "april", "may", "june", "july", "august", "september", "october", "november", "december")

	maleNames   = wordSet("john", "james", "peter", "robert", "michael", "william", "david", "richard", "thomas", "mark", "paul", "george", "henry")
	femaleNames = wordSet("mary", "anna", "emma", "elizabeth", "sarah", "margaret", "susan", "jessica", "helen", "laura", "alice", "jane", "olivia")
)

func wordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// tagWord assigns a part-of-speech tag to a single word token.
func tagWord(word string) string {
	lower := strings.ToLower(word)

	if isNumeric(word) {
		return tagNumber
	}
	if _, ok := months[lower]; ok {
		return tagDate
	}
	if _, ok := determiners[lower]; ok {
		return tagDeterminer
	}
	if _, ok := pronouns[lower]; ok {
		return tagPronoun
	}
	if _, ok := prepositions[lower]; ok {
		return tagPreposition
	}
	if _, ok := conjunctions[lower]; ok {
		return tagConjunction
	}
	if _, ok := verbs[lower]; ok {
		return tagVerb
	}
	if _, ok := adverbs[lower]; ok {
		return tagAdverb
	}

	if isCapitalized(word) {
		if _, ok := maleNames[lower]; ok {
			return tagMaleName
		}
		if _, ok := femaleNames[lower]; ok {
			return tagFemaleName
		}
		return tagProperNoun
	}

	// Suffix heuristics for open-class words.
	switch {
	case strings.HasSuffix(lower, "ly"):
		return tagAdverb
	case strings.HasSuffix(lower, "ing"), strings.HasSuffix(lower, "ize"), strings.HasSuffix(lower, "ise"):
		return tagVerb
	case strings.HasSuffix(lower, "ous"), strings.HasSuffix(lower, "ful"),
		strings.HasSuffix(lower, "ive"), strings.HasSuffix(lower, "able"),
		strings.HasSuffix(lower, "less"), strings.HasSuffix(lower, "ish"):
		return tagAdjective
	}

	return tagNoun
}

func isNumeric(word string) bool {
	digits := 0
	for _, r := range word {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == '.' || r == ',' || r == '-' || r == '/':
			// Separators inside numbers and numeric dates.
		default:
			return false
		}
	}
	return digits > 0
}

func isCapitalized(word string) bool {
	for _, r := range word {
		return unicode.IsUpper(r)
	}
	return false
}
