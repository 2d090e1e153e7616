// Package rangeset maintains the ordered collection of highlighted
// ranges owned by a live view.
//
// A Set is immutable: every operation returns a new Set, so the host
// can swap the live value atomically and no reader ever observes a
// partially mapped state. Ranges are kept sorted ascending by start,
// which makes rendering deterministic and re-mapping a single linear
// walk.
package rangeset

import "github.com/ppiankov/annotext/internal/model"

// Set is an ordered collection of tagged half-open byte ranges.
// The zero value is an empty set ready for use.
type Set struct {
	ranges []model.Range
}

// New creates an empty Set.
func New() *Set {
	return &Set{}
}

// Len returns the number of ranges in the set.
func (s *Set) Len() int {
	return len(s.ranges)
}

// Ranges returns the ranges in ascending start order. The returned
// slice is shared; callers must not modify it.
func (s *Set) Ranges() []model.Range {
	return s.ranges
}

// AddAll merge-inserts a batch of ranges, preserving global sort order
// by start. Both the set and the batch are sorted, so the merge is
// O(n+m). Batches produced by the locator's forward-only cursor are
// always pre-sorted.
func (s *Set) AddAll(batch []model.Range) *Set {
	if len(batch) == 0 {
		return s
	}

	merged := make([]model.Range, 0, len(s.ranges)+len(batch))
	i, j := 0, 0
	for i < len(s.ranges) && j < len(batch) {
		if s.ranges[i].Start <= batch[j].Start {
			merged = append(merged, s.ranges[i])
			i++
		} else {
			merged = append(merged, batch[j])
			j++
		}
	}
	merged = append(merged, s.ranges[i:]...)
	merged = append(merged, batch[j:]...)

	return &Set{ranges: merged}
}

// Filter retains only the ranges satisfying keep. Used to clear one
// highlight category without disturbing others.
func (s *Set) Filter(keep func(model.Range) bool) *Set {
	out := make([]model.Range, 0, len(s.ranges))
	for _, r := range s.ranges {
		if keep(r) {
			out = append(out, r)
		}
	}
	return &Set{ranges: out}
}

// MapThrough translates every range through a single document change.
// Ranges entirely before the edit are unaffected; ranges entirely after
// it shift by the net length delta; ranges overlapping the edited span
// are dropped, since an in-place edit invalidates their meaning and a
// stale highlight is worse than none.
func (s *Set) MapThrough(change model.DocumentChange) *Set {
	return s.MapTransaction([]model.DocumentChange{change})
}

// MapTransaction translates every range through an ordered sequence of
// changes whose offsets all refer to the pre-transaction text. A range
// overlapping any edited span is dropped; otherwise it shifts by the
// summed delta of the changes that end at or before its start.
// Applying the changes one combined edit at a time yields the same
// offsets, which keeps the operation associative.
func (s *Set) MapTransaction(changes []model.DocumentChange) *Set {
	if len(changes) == 0 {
		return s
	}

	out := make([]model.Range, 0, len(s.ranges))
	for _, r := range s.ranges {
		mapped, ok := mapRange(r, changes)
		if ok {
			out = append(out, mapped)
		}
	}
	return &Set{ranges: out}
}

func mapRange(r model.Range, changes []model.DocumentChange) (model.Range, bool) {
	delta := 0
	for _, c := range changes {
		switch {
		case r.End <= c.From:
			// Edit is entirely after the range.
		case r.Start >= c.To:
			delta += c.Delta()
		default:
			// The edit touches the range; drop it.
			return model.Range{}, false
		}
	}
	if delta == 0 {
		return r, true
	}
	mapped := model.Range{
		Start:   r.Start + delta,
		End:     r.End + delta,
		Classes: r.Classes,
	}
	if mapped.Start < 0 || mapped.Len() <= 0 {
		return model.Range{}, false
	}
	return mapped, true
}
