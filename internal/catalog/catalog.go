// Package catalog owns the in-memory collection of classified font entries
// and the pure query operations over it: filter, search, pagination,
// aggregation, and export. Views returned by queries are read-only slices;
// nothing here mutates an entry after build.
package catalog

import (
	"strings"

	"github.com/solarbyte-dev/fuzzyfont/internal/classify"
	"github.com/solarbyte-dev/fuzzyfont/internal/errors"
	"github.com/solarbyte-dev/fuzzyfont/internal/log"
	"github.com/solarbyte-dev/fuzzyfont/pkg/types"
)

// DefaultPageSize is the page size used when a caller does not override it.
const DefaultPageSize = 16

// Catalog is an ordered sequence of classified font entries. Order is
// discovery order and doubles as the index shown to users. A catalog is
// immutable once built; rebuilding replaces it wholesale.
type Catalog struct {
	entries []types.CatalogEntry
}

// Build classifies every record and assembles the catalog. Records are
// deduplicated by file path keeping the first occurrence in input order,
// and no record is dropped for classifying as unknown. A nil record
// sequence is the one invalid input; an empty one yields a valid empty
// catalog.
func Build(records []types.FontRecord, classifier *classify.Classifier) (*Catalog, error) {
	if records == nil {
		return nil, errors.New("cannot build catalog from absent record sequence")
	}
	if classifier == nil {
		classifier = classify.New()
	}

	entries := make([]types.CatalogEntry, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for _, rec := range records {
		if _, dup := seen[rec.FilePath]; dup {
			log.LogWithFields(log.F("path", rec.FilePath)).Debugf("Skipping duplicate font file")
			continue
		}
		seen[rec.FilePath] = struct{}{}
		entries = append(entries, types.CatalogEntry{
			Name:       rec.Name,
			FilePath:   rec.FilePath,
			Categories: classifier.Classify(rec.Name, rec.FamilyMetadata),
		})
	}

	log.LogWithFields(log.F("fonts", len(entries))).Debugf("Catalog built")
	return &Catalog{entries: entries}, nil
}

// Entries returns the full catalog view in discovery order. Callers must
// treat the result as read-only.
func (c *Catalog) Entries() []types.CatalogEntry {
	return c.entries
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Filter returns the entries whose category set intersects cats, in view
// order. An empty (or nil) set is the identity filter.
func Filter(view []types.CatalogEntry, cats types.CategorySet) []types.CatalogEntry {
	if cats.Empty() {
		return view
	}
	out := make([]types.CatalogEntry, 0, len(view))
	for _, e := range view {
		if e.Categories.Intersects(cats) {
			out = append(out, e)
		}
	}
	return out
}

// Search returns the entries whose name contains term, case-insensitively,
// in view order. An empty term is the identity.
func Search(view []types.CatalogEntry, term string) []types.CatalogEntry {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return view
	}
	out := make([]types.CatalogEntry, 0, len(view))
	for _, e := range view {
		if strings.Contains(strings.ToLower(e.Name), term) {
			out = append(out, e)
		}
	}
	return out
}

// Page is one paginated slice of a view.
type Page struct {
	Entries    []types.CatalogEntry
	Index      int
	TotalPages int
	HasNext    bool
	HasPrev    bool
}

// Paginate slices a view into fixed-size pages. An out-of-range page index
// yields an empty page with the correct total; it never fails and never
// wraps.
func Paginate(view []types.CatalogEntry, pageSize, pageIndex int) Page {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	total := (len(view) + pageSize - 1) / pageSize
	page := Page{Index: pageIndex, TotalPages: total}
	if pageIndex < 0 || pageIndex >= total {
		return page
	}
	start := pageIndex * pageSize
	end := start + pageSize
	if end > len(view) {
		end = len(view)
	}
	page.Entries = view[start:end]
	page.HasNext = pageIndex < total-1
	page.HasPrev = pageIndex > 0
	return page
}
