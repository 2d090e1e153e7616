// Package editor models the host text-editing surface at the boundary
// the annotation engine needs: full-text reads, selection replacement,
// and decoration updates against a live range set.
package editor

import (
	"github.com/ppiankov/annotext/internal/model"
	"github.com/ppiankov/annotext/internal/rangeset"
)

// Buffer is the minimal contract with the host text surface.
type Buffer interface {
	// FullText returns the complete document text.
	FullText() string

	// Selection returns the currently selected text.
	Selection() string

	// ReplaceSelection replaces the current selection with text.
	ReplaceSelection(text string)
}

// View owns the live decoration state for one buffer. It is recreated
// empty whenever the view (re)initializes; every edit transaction and
// every highlight dispatch flows through it.
type View struct {
	decorations *rangeset.Set
}

// NewView creates a view with an empty decoration set.
func NewView() *View {
	return &View{decorations: rangeset.New()}
}

// Decorations returns the current decoration set.
func (v *View) Decorations() *rangeset.Set {
	return v.decorations
}

// ApplyTransaction re-maps every decoration through an edit
// transaction. The swap is a single assignment, so no reader observes
// a partially mapped set.
func (v *View) ApplyTransaction(changes []model.DocumentChange) {
	v.decorations = v.decorations.MapTransaction(changes)
}

// Dispatch applies a decoration delta: ranges matching removeFilter are
// cleared first, then the add batch is merged in. Either argument may
// be nil/empty.
func (v *View) Dispatch(add []model.Range, removeFilter func(model.Range) bool) {
	next := v.decorations
	if removeFilter != nil {
		next = next.Filter(func(r model.Range) bool { return !removeFilter(r) })
	}
	if len(add) > 0 {
		next = next.AddAll(add)
	}
	v.decorations = next
}

// MemoryBuffer is an in-process Buffer for the CLI and tests.
type MemoryBuffer struct {
	text     string
	selStart int
	selEnd   int
}

// NewMemoryBuffer creates a buffer holding text, with an empty
// selection at the start.
func NewMemoryBuffer(text string) *MemoryBuffer {
	return &MemoryBuffer{text: text}
}

// FullText returns the complete document text.
func (b *MemoryBuffer) FullText() string { return b.text }

// Selection returns the currently selected text.
func (b *MemoryBuffer) Selection() string { return b.text[b.selStart:b.selEnd] }

// Select sets the selection to [start,end), clamped to the document.
func (b *MemoryBuffer) Select(start, end int) {
	if start < 0 {
		start = 0
	}
	if end > len(b.text) {
		end = len(b.text)
	}
	if end < start {
		end = start
	}
	b.selStart, b.selEnd = start, end
}

// ReplaceSelection replaces the current selection with text and leaves
// the selection collapsed after the inserted text.
func (b *MemoryBuffer) ReplaceSelection(text string) {
	b.text = b.text[:b.selStart] + text + b.text[b.selEnd:]
	b.selStart += len(text)
	b.selEnd = b.selStart
}
