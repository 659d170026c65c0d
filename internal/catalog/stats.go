package catalog

import "github.com/solarbyte-dev/fuzzyfont/pkg/types"

// maxExamples caps how many entry names a category keeps as illustration.
const maxExamples = 3

// CategoryStats aggregates one category over a view.
type CategoryStats struct {
	Count    int
	Examples []string
}

// Aggregate computes per-category counts and example names over a view in
// a single pass. An entry with multiple categories increments every one of
// them, so counts across categories may sum to more than the entry count;
// that reflects co-membership, not a distribution. Categories with no
// matches are absent from the result.
func Aggregate(view []types.CatalogEntry) map[types.Category]CategoryStats {
	stats := make(map[types.Category]CategoryStats)
	for _, e := range view {
		for cat := range e.Categories {
			s := stats[cat]
			s.Count++
			if len(s.Examples) < maxExamples {
				s.Examples = append(s.Examples, e.Name)
			}
			stats[cat] = s
		}
	}
	return stats
}
