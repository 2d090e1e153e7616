package analyze

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/ppiankov/annotext/internal/model"
)

// Built-in entity patterns. Matches satisfy text[start:end] == match.
var builtinPatterns = []struct {
	label string
	re    *regexp.Regexp
}{
	{"Email", regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)},
	{"URL", regexp.MustCompile(`https?://[^\s<>"]+`)},
	{"Date", regexp.MustCompile(`\b(?:\d{4}-\d{2}-\d{2}|\d{1,2}/\d{1,2}/\d{2,4}|(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2}(?:,\s*\d{4})?)\b`)},
	{"Number", regexp.MustCompile(`\b\d+(?:[.,]\d+)*\b`)},
}

// CustomEntity is one user-defined entity category with its literal
// example strings, loaded from the JSON examples file.
type CustomEntity struct {
	Label    string   `json:"label"`
	Examples []string `json:"examples"`
}

type entityExamplesFile struct {
	Entities []CustomEntity `json:"entities"`
}

// EntityAnalyzer matches built-in patterns and user-defined custom
// entities against text.
type EntityAnalyzer struct {
	custom []CustomEntity
}

// NewEntityAnalyzer creates an entity analyzer with built-in patterns only.
func NewEntityAnalyzer() *EntityAnalyzer {
	return &EntityAnalyzer{}
}

// NewEntityAnalyzerFromFile creates an entity analyzer with custom
// entities loaded from a JSON examples file. A missing or malformed
// file is reported, but the returned analyzer is still usable with
// built-in patterns only; an optional config must not block the rest
// of the system.
func NewEntityAnalyzerFromFile(path string) (*EntityAnalyzer, error) {
	a := NewEntityAnalyzer()
	if path == "" {
		return a, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return a, fmt.Errorf("read entity examples: %w", err)
	}

	var file entityExamplesFile
	if err := json.Unmarshal(data, &file); err != nil {
		return a, fmt.Errorf("parse entity examples: %w", err)
	}

	a.custom = file.Entities
	return a, nil
}

// Name returns the analyzer name
func (a *EntityAnalyzer) Name() string { return "entities" }

// Labels returns the entity labels this analyzer can emit, built-ins
// first, then custom labels in file order.
func (a *EntityAnalyzer) Labels() []string {
	labels := make([]string, 0, len(builtinPatterns)+len(a.custom))
	for _, p := range builtinPatterns {
		labels = append(labels, p.label)
	}
	for _, c := range a.custom {
		labels = append(labels, c.Label)
	}
	return labels
}

type entityMatch struct {
	start int
	end   int
	label string
}

// Analyze returns one tagged fragment per entity match, in document
// order. Overlapping matches keep the earlier (then longer) one so the
// fragment sequence stays locatable by a forward-only cursor.
func (a *EntityAnalyzer) Analyze(text string) ([]model.Fragment, error) {
	matches := a.matches(text)

	fragments := make([]model.Fragment, 0, len(matches))
	for _, m := range matches {
		fragments = append(fragments, model.Fragment{
			Text: text[m.start:m.end],
			Tags: []string{m.label},
		})
	}
	return fragments, nil
}

// Extract returns the matched text of every entity with the given
// label, in document order.
func (a *EntityAnalyzer) Extract(text, label string) []string {
	var out []string
	for _, m := range a.matches(text) {
		if m.label == label {
			out = append(out, text[m.start:m.end])
		}
	}
	return out
}

func (a *EntityAnalyzer) matches(text string) []entityMatch {
	var matches []entityMatch

	for _, p := range builtinPatterns {
		for _, loc := range p.re.FindAllStringIndex(text, -1) {
			matches = append(matches, entityMatch{start: loc[0], end: loc[1], label: p.label})
		}
	}
	for _, c := range a.custom {
		for _, example := range c.Examples {
			if example == "" {
				continue
			}
			for from := 0; ; {
				idx := strings.Index(text[from:], example)
				if idx < 0 {
					break
				}
				start := from + idx
				matches = append(matches, entityMatch{start: start, end: start + len(example), label: c.Label})
				from = start + len(example)
			}
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].start != matches[j].start {
			return matches[i].start < matches[j].start
		}
		return matches[i].end > matches[j].end
	})

	// Drop matches swallowed by an earlier overlapping one.
	out := matches[:0]
	lastEnd := 0
	for _, m := range matches {
		if m.start < lastEnd {
			continue
		}
		out = append(out, m)
		lastEnd = m.end
	}
	return out
}
