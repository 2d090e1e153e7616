package model

import "strings"

// Fragment represents a text span returned by an NLP analyzer.
// Analyzers report fragment text without absolute document positions;
// fragments arrive in left-to-right document order, an ordering the
// locator depends on.
type Fragment struct {
	Text string   `json:"text"`           // The fragment's content
	Tags []string `json:"tags,omitempty"` // Raw classification labels, order-significant
}

// Range is a resolved, absolute, half-open [Start,End) byte span with
// associated visual classes. A Range is immutable once created; edits
// produce new Range values through re-mapping.
type Range struct {
	Start   int      `json:"start"`
	End     int      `json:"end"`
	Classes []string `json:"classes,omitempty"` // Canonical labels, space-joined for rendering
}

// Len returns the span length in bytes.
func (r Range) Len() int {
	return r.End - r.Start
}

// HasClass reports whether the range carries the given class.
func (r Range) HasClass(class string) bool {
	for _, c := range r.Classes {
		if c == class {
			return true
		}
	}
	return false
}

// ClassAttr returns the space-joined class string used for rendering.
func (r Range) ClassAttr() string {
	return strings.Join(r.Classes, " ")
}

// DocumentChange describes a single edit to the backing text: replace
// [From,To) with InsertedLen bytes. Offsets in a multi-change
// transaction all refer to the text as it existed before any change in
// the transaction was applied.
type DocumentChange struct {
	From        int `json:"from"`
	To          int `json:"to"`
	InsertedLen int `json:"inserted_len"`
}

// Delta returns the net length change of the edit.
func (c DocumentChange) Delta() int {
	return c.InsertedLen - (c.To - c.From)
}
