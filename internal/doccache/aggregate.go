package doccache

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// stopwords are excluded from bag-of-words and term-set aggregates.
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "and": {}, "or": {}, "but": {},
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {},
	"in": {}, "on": {}, "at": {}, "by": {}, "for": {}, "with": {},
	"from": {}, "to": {}, "of": {}, "as": {}, "it": {}, "its": {},
	"this": {}, "that": {}, "these": {}, "those": {}, "he": {}, "she": {},
	"they": {}, "we": {}, "you": {}, "i": {}, "not": {}, "no": {},
	"do": {}, "does": {}, "did": {}, "have": {}, "has": {}, "had": {},
	"will": {}, "would": {}, "can": {}, "could": {}, "so": {}, "if": {},
}

// BagOfWords returns term frequencies for a cached document, lowercased,
// with stop-words and non-word tokens filtered out.
func (c *Cache) BagOfWords(path string) (map[string]int, error) {
	doc, ok := c.Get(path)
	if !ok {
		return nil, fmt.Errorf("document not cached: %s (run refresh first)", path)
	}

	bag := make(map[string]int)
	for _, tok := range doc.Tokens {
		term, ok := aggregateTerm(tok.Text)
		if !ok {
			continue
		}
		bag[term]++
	}
	return bag, nil
}

// TermSet returns the sorted set of distinct terms in a cached document.
func (c *Cache) TermSet(path string) ([]string, error) {
	bag, err := c.BagOfWords(path)
	if err != nil {
		return nil, err
	}

	terms := make([]string, 0, len(bag))
	for term := range bag {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms, nil
}

// AverageSentiment returns the document's aggregate sentiment score.
// Whether it was computed whole-document or averaged per sentence, and
// whether scores were length-normalized, was fixed at refresh time.
func (c *Cache) AverageSentiment(path string) (float64, error) {
	doc, ok := c.Get(path)
	if !ok {
		return 0, fmt.Errorf("document not cached: %s (run refresh first)", path)
	}
	return doc.Sentiment, nil
}

// aggregateTerm lowercases a token and reports whether it belongs in
// aggregates: word tokens only, no stop-words, no bare punctuation or
// numbers.
func aggregateTerm(token string) (string, bool) {
	term := strings.ToLower(token)
	if _, stop := stopwords[term]; stop {
		return "", false
	}
	hasLetter := false
	for _, r := range term {
		if unicode.IsLetter(r) {
			hasLetter = true
			break
		}
	}
	if !hasLetter {
		return "", false
	}
	return term, true
}
