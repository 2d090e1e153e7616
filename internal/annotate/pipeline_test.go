package annotate

import (
	"errors"
	"testing"

	"github.com/ppiankov/annotext/internal/model"
)

// stubAnalyzer returns canned fragments, or an error.
type stubAnalyzer struct {
	name      string
	fragments []model.Fragment
	err       error
	calls     int
}

func (s *stubAnalyzer) Name() string { return s.name }

func (s *stubAnalyzer) Analyze(text string) ([]model.Fragment, error) {
	s.calls++
	return s.fragments, s.err
}

func TestRunPass_CategoryAttached(t *testing.T) {
	text := "John ran. Mary ran."
	analyzer := &stubAnalyzer{
		name: "sentences",
		fragments: []model.Fragment{
			{Text: "John ran."},
			{Text: "Mary ran."},
		},
	}

	ranges, err := RunPass(text, Pass{Analyzer: analyzer, Category: "Sentence", PrefixLocate: true})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(ranges) != 2 {
		t.Fatalf("Expected 2 ranges, got %d", len(ranges))
	}
	for i, r := range ranges {
		if !r.HasClass("Sentence") {
			t.Errorf("Range %d missing category class: %v", i, r.Classes)
		}
	}
	if ranges[0].Start != 0 || ranges[0].End != 9 || ranges[1].Start != 10 || ranges[1].End != 19 {
		t.Errorf("Unexpected offsets: %v", ranges)
	}
}

func TestRunPass_TagsNormalized(t *testing.T) {
	text := "John met Mary"
	analyzer := &stubAnalyzer{
		name: "tokens",
		fragments: []model.Fragment{
			{Text: "John", Tags: []string{"MaleName"}},
			{Text: "met", Tags: []string{"Verb"}},
			{Text: "Mary", Tags: []string{"FemaleName"}},
		},
	}

	ranges, err := RunPass(text, Pass{Analyzer: analyzer})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(ranges) != 3 {
		t.Fatalf("Expected 3 ranges, got %d", len(ranges))
	}
	if got := ranges[0].ClassAttr(); got != "MasculineName" {
		t.Errorf("Expected MasculineName, got %q", got)
	}
	if got := ranges[2].ClassAttr(); got != "FeminineName" {
		t.Errorf("Expected FeminineName, got %q", got)
	}
	if got := ranges[1].ClassAttr(); got != "Verb" {
		t.Errorf("Expected Verb to pass through, got %q", got)
	}
}

func TestRunPass_EmptyFragmentsProduceNoRanges(t *testing.T) {
	analyzer := &stubAnalyzer{
		name: "tokens",
		fragments: []model.Fragment{
			{Text: ""},
			{Text: "word"},
			{Text: ""},
		},
	}

	ranges, err := RunPass("a word here", Pass{Analyzer: analyzer})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(ranges) != 1 {
		t.Errorf("Expected 1 range, got %d", len(ranges))
	}
}

func TestRunPass_AnalyzerFailurePropagates(t *testing.T) {
	analyzer := &stubAnalyzer{name: "broken", err: errors.New("model unavailable")}

	ranges, err := RunPass("any text", Pass{Analyzer: analyzer})
	if err == nil {
		t.Fatal("Expected analyzer failure to propagate")
	}
	if ranges != nil {
		t.Errorf("Expected no partial result, got %v", ranges)
	}
	if analyzer.calls != 1 {
		t.Errorf("Expected exactly one analyzer invocation, got %d", analyzer.calls)
	}
}

func TestRunPass_BatchSortedByStart(t *testing.T) {
	text := "alpha beta gamma delta"
	analyzer := &stubAnalyzer{
		name: "tokens",
		fragments: []model.Fragment{
			{Text: "alpha"}, {Text: "beta"}, {Text: "gamma"}, {Text: "delta"},
		},
	}

	ranges, err := RunPass(text, Pass{Analyzer: analyzer})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	for i := 1; i < len(ranges); i++ {
		if ranges[i].Start < ranges[i-1].End {
			t.Errorf("Batch not sorted or overlapping at %d: %v", i, ranges)
		}
	}
}
