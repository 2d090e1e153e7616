// Package tags maps raw analyzer labels onto the canonical label set
// used for rendering.
package tags

// canonical maps raw analyzer tags to their canonical names. Gendered
// name labels collapse to neutral ones; anything not in the table
// passes through unchanged.
var canonical = map[string]string{
	"MaleName":   "MasculineName",
	"FemaleName": "FeminineName",
}

// Normalize returns the canonical form of a raw analyzer tag.
func Normalize(tag string) string {
	if c, ok := canonical[tag]; ok {
		return c
	}
	return tag
}

// NormalizeAll normalizes a tag sequence, preserving order.
func NormalizeAll(raw []string) []string {
	if len(raw) == 0 {
		return nil
	}
	out := make([]string, len(raw))
	for i, t := range raw {
		out[i] = Normalize(t)
	}
	return out
}
