package editor

import (
	"strings"
	"testing"

	"github.com/ppiankov/annotext/internal/model"
)

func TestView_DispatchAddAndRemove(t *testing.T) {
	v := NewView()

	v.Dispatch([]model.Range{
		{Start: 0, End: 4, Classes: []string{"Noun"}},
		{Start: 5, End: 9, Classes: []string{"Sentence"}},
	}, nil)

	if v.Decorations().Len() != 2 {
		t.Fatalf("Expected 2 decorations, got %d", v.Decorations().Len())
	}

	// Replace the sentence pass without disturbing the other category.
	v.Dispatch(
		[]model.Range{{Start: 10, End: 20, Classes: []string{"Sentence"}}},
		func(r model.Range) bool { return r.HasClass("Sentence") },
	)

	rs := v.Decorations().Ranges()
	if len(rs) != 2 {
		t.Fatalf("Expected 2 decorations after re-dispatch, got %d", len(rs))
	}
	if !rs[0].HasClass("Noun") {
		t.Errorf("Noun decoration disturbed: %v", rs[0])
	}
	if rs[1].Start != 10 {
		t.Errorf("Expected new sentence decoration at 10, got %d", rs[1].Start)
	}
}

func TestView_ApplyTransaction(t *testing.T) {
	v := NewView()
	v.Dispatch([]model.Range{
		{Start: 6, End: 9, Classes: []string{"Noun"}},
		{Start: 10, End: 15, Classes: []string{"Noun"}},
	}, nil)

	// Delete [5,8) and insert 2 characters.
	v.ApplyTransaction([]model.DocumentChange{{From: 5, To: 8, InsertedLen: 2}})

	rs := v.Decorations().Ranges()
	if len(rs) != 1 {
		t.Fatalf("Expected overlapping decoration dropped, got %d", len(rs))
	}
	if rs[0].Start != 9 || rs[0].End != 14 {
		t.Errorf("Expected [9,14), got [%d,%d)", rs[0].Start, rs[0].End)
	}
}

func TestMemoryBuffer_ReplaceSelection(t *testing.T) {
	b := NewMemoryBuffer("hello cruel world")
	b.Select(6, 11)

	if b.Selection() != "cruel" {
		t.Fatalf("Expected selection %q, got %q", "cruel", b.Selection())
	}

	b.ReplaceSelection("kind")

	if b.FullText() != "hello kind world" {
		t.Errorf("Expected replaced text, got %q", b.FullText())
	}
	if b.Selection() != "" {
		t.Errorf("Expected collapsed selection, got %q", b.Selection())
	}
}

func TestTransformTable_Complete(t *testing.T) {
	for _, category := range []string{"Number", "Adjective", "Date"} {
		for _, op := range []string{"upper", "lower", "remove"} {
			if _, err := LookupTransform(category, op); err != nil {
				t.Errorf("Missing transform %s/%s: %v", category, op, err)
			}
		}
	}
	if _, err := LookupTransform("Verb", "upper"); err == nil {
		t.Error("Expected unknown category to be rejected")
	}
}

func TestApplyTransform_RightToLeft(t *testing.T) {
	text := "pay 10 now and 25 later"
	spans := []Span{{4, 6}, {15, 17}}

	remove, err := LookupTransform("Number", "remove")
	if err != nil {
		t.Fatal(err)
	}
	got := ApplyTransform(text, spans, remove)

	if got != "pay  now and  later" {
		t.Errorf("Expected numbers removed, got %q", got)
	}

	upper, err := LookupTransform("Adjective", "upper")
	if err != nil {
		t.Fatal(err)
	}
	got = ApplyTransform("a big and bold move", []Span{{2, 5}, {10, 14}}, upper)
	if !strings.Contains(got, "BIG") || !strings.Contains(got, "BOLD") {
		t.Errorf("Expected uppercased spans, got %q", got)
	}
}

func TestApplyTransform_IgnoresInvalidSpans(t *testing.T) {
	got := ApplyTransform("abc", []Span{{-1, 2}, {2, 99}, {2, 2}}, strings.ToUpper)
	if got != "abc" {
		t.Errorf("Expected invalid spans skipped, got %q", got)
	}
}
