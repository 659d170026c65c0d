package types

import (
	"sort"
	"strings"
)

// Category is one label in the closed classification enumeration.
type Category string

const (
	Monospace Category = "monospace"
	Serif     Category = "serif"
	SansSerif Category = "sans-serif"
	Display   Category = "display"
	Symbol    Category = "symbol"
	Unknown   Category = "unknown"
)

// AllCategories lists every category in display order. The numbered
// filter-selection menu indexes into this slice.
var AllCategories = []Category{Monospace, Serif, SansSerif, Display, Symbol, Unknown}

// ParseCategory resolves a user-supplied category name. It accepts the
// canonical names plus the short spellings used by the CLI flags.
func ParseCategory(s string) (Category, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "monospace", "mono":
		return Monospace, true
	case "serif":
		return Serif, true
	case "sans-serif", "sans serif", "sans":
		return SansSerif, true
	case "display":
		return Display, true
	case "symbol":
		return Symbol, true
	case "unknown", "other":
		return Unknown, true
	}
	return "", false
}

// CategorySet is an unordered set of categories. A font may belong to more
// than one category, so membership is a set rather than a single tag.
type CategorySet map[Category]struct{}

// NewCategorySet builds a set from the given categories.
func NewCategorySet(cats ...Category) CategorySet {
	s := make(CategorySet, len(cats))
	for _, c := range cats {
		s[c] = struct{}{}
	}
	return s
}

// Add inserts a category into the set.
func (s CategorySet) Add(c Category) {
	s[c] = struct{}{}
}

// Has reports whether the set contains the category.
func (s CategorySet) Has(c Category) bool {
	_, ok := s[c]
	return ok
}

// Empty reports whether the set has no members.
func (s CategorySet) Empty() bool {
	return len(s) == 0
}

// Intersects reports whether the two sets share at least one member.
func (s CategorySet) Intersects(other CategorySet) bool {
	for c := range other {
		if s.Has(c) {
			return true
		}
	}
	return false
}

// Clone returns an independent copy of the set.
func (s CategorySet) Clone() CategorySet {
	out := make(CategorySet, len(s))
	for c := range s {
		out[c] = struct{}{}
	}
	return out
}

// Sorted returns the member names in lexical order. Exports and display
// paths use this so output is deterministic even though the underlying
// representation is unordered.
func (s CategorySet) Sorted() []string {
	out := make([]string, 0, len(s))
	for c := range s {
		out = append(out, string(c))
	}
	sort.Strings(out)
	return out
}

// String renders the set as a comma-separated list in lexical order.
func (s CategorySet) String() string {
	return strings.Join(s.Sorted(), ", ")
}
