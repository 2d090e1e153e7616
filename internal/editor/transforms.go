package editor

import (
	"fmt"
	"sort"
	"strings"
)

// TransformKey identifies one per-category text operation.
type TransformKey struct {
	Category string // Token tag the operation applies to (Number, Adjective, Date)
	Op       string // Operation name (upper, lower, remove)
}

// Transform is a pure string operation applied to each span of the
// key's category.
type Transform func(string) string

// transforms is the static operation table. Built once; the CLI
// iterates it to register one command per entry, so there is no
// dispatch by reflection anywhere.
var transforms = buildTransforms()

func buildTransforms() map[TransformKey]Transform {
	table := make(map[TransformKey]Transform)
	for _, category := range []string{"Number", "Adjective", "Date"} {
		table[TransformKey{category, "upper"}] = strings.ToUpper
		table[TransformKey{category, "lower"}] = strings.ToLower
		table[TransformKey{category, "remove"}] = func(string) string { return "" }
	}
	return table
}

// Transforms returns the table keys in deterministic order.
func Transforms() []TransformKey {
	keys := make([]TransformKey, 0, len(transforms))
	for k := range transforms {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Category != keys[j].Category {
			return keys[i].Category < keys[j].Category
		}
		return keys[i].Op < keys[j].Op
	})
	return keys
}

// LookupTransform returns the operation registered for a key.
func LookupTransform(category, op string) (Transform, error) {
	t, ok := transforms[TransformKey{Category: category, Op: op}]
	if !ok {
		return nil, fmt.Errorf("no transform registered for %s/%s", category, op)
	}
	return t, nil
}

// ApplyTransform rewrites every span of the given category in text.
// Spans arrive as located ranges; they are applied right-to-left so
// earlier offsets stay valid while later spans are rewritten.
func ApplyTransform(text string, spans []Span, fn Transform) string {
	sorted := make([]Span, len(spans))
	copy(sorted, spans)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start > sorted[j].Start })

	for _, s := range sorted {
		if s.Start < 0 || s.End > len(text) || s.Start >= s.End {
			continue
		}
		text = text[:s.Start] + fn(text[s.Start:s.End]) + text[s.End:]
	}
	return text
}

// Span is one [Start,End) byte region a transform rewrites.
type Span struct {
	Start int
	End   int
}
