// Package session holds the mutable browsing state for one interactive
// catalog consumer: active category filters, active search term, and the
// current page. The visible page is never cached; every transition
// recomputes filter, search, and pagination from the full catalog, so it
// can never go stale relative to the filter or search state.
//
// A Session is owned by exactly one caller. Concurrent sessions over the
// same catalog are fine because the catalog itself is read-only.
package session

import (
	"strconv"

	"github.com/solarbyte-dev/fuzzyfont/internal/catalog"
	"github.com/solarbyte-dev/fuzzyfont/internal/errors"
	"github.com/solarbyte-dev/fuzzyfont/pkg/types"
)

// Mode is the session's input-collection state.
type Mode int

// Session modes. FilterSelecting and Searching are transient: they return
// to Browsing on completion.
const (
	Browsing Mode = iota
	FilterSelecting
	Searching
)

// Sentinel is the filter-selection input that confirms the accumulated
// category set. Categories themselves are selected by 1-based numerals
// into types.AllCategories.
const Sentinel = "0"

// Session is one interactive browsing context.
type Session struct {
	cat      *catalog.Catalog
	mode     Mode
	filters  types.CategorySet
	pending  types.CategorySet
	term     string
	page     int
	pageSize int
}

// New creates a session at page zero with no filters and no search term.
// A pageSize below one falls back to the catalog default.
func New(cat *catalog.Catalog, pageSize int) *Session {
	if pageSize < 1 {
		pageSize = catalog.DefaultPageSize
	}
	return &Session{
		cat:      cat,
		filters:  types.CategorySet{},
		pageSize: pageSize,
	}
}

// Mode returns the current mode.
func (s *Session) Mode() Mode {
	return s.mode
}

// Filters returns a copy of the applied filter set.
func (s *Session) Filters() types.CategorySet {
	return s.filters.Clone()
}

// Pending returns a copy of the filter set being accumulated in
// FilterSelecting mode.
func (s *Session) Pending() types.CategorySet {
	return s.pending.Clone()
}

// SearchTerm returns the active search term, empty when none.
func (s *Session) SearchTerm() string {
	return s.term
}

// PageIndex returns the zero-based current page index.
func (s *Session) PageIndex() int {
	return s.page
}

// PageSize returns the fixed page size.
func (s *Session) PageSize() int {
	return s.pageSize
}

// View composes filter then search over the full catalog.
func (s *Session) View() []types.CatalogEntry {
	return catalog.Search(catalog.Filter(s.cat.Entries(), s.filters), s.term)
}

// Page paginates the current view at the current page index.
func (s *Session) Page() catalog.Page {
	return catalog.Paginate(s.View(), s.pageSize, s.page)
}

// Stats aggregates the current view.
func (s *Session) Stats() map[types.Category]catalog.CategoryStats {
	return catalog.Aggregate(s.View())
}

// Export serializes the current view.
func (s *Session) Export(format catalog.Format) ([]byte, error) {
	return catalog.Export(s.View(), format)
}

// ToggleFilterMode enters FilterSelecting, seeding the pending set from
// the applied filters so selection toggles against the visible state.
func (s *Session) ToggleFilterMode() {
	s.mode = FilterSelecting
	s.pending = s.filters.Clone()
}

// SelectFilter handles one numbered selection while in FilterSelecting
// mode. Numerals 1..len(AllCategories) toggle the corresponding category
// in the pending set; the sentinel "0" confirms. Anything else returns a
// SelectionError and leaves all state untouched so the prompt can repeat.
func (s *Session) SelectFilter(input string) error {
	if s.mode != FilterSelecting {
		return errors.NewSelectionError("not selecting filters", input)
	}
	if input == Sentinel {
		s.ConfirmFilters()
		return nil
	}
	n, err := strconv.Atoi(input)
	if err != nil || n < 1 || n > len(types.AllCategories) {
		return errors.NewSelectionError("selection out of range", input)
	}
	s.ToggleCategory(types.AllCategories[n-1])
	return nil
}

// ToggleCategory flips one category in the pending set. It is the
// set-union equivalent of the numbered selection for callers that already
// hold a Category.
func (s *Session) ToggleCategory(cat types.Category) {
	if s.mode != FilterSelecting {
		return
	}
	if s.pending.Has(cat) {
		delete(s.pending, cat)
	} else {
		s.pending.Add(cat)
	}
}

// ConfirmFilters applies the pending set, resets to page zero, and returns
// to Browsing. Changing the candidate set invalidates the old page
// boundary, hence the reset.
func (s *Session) ConfirmFilters() {
	s.filters = s.pending.Clone()
	s.page = 0
	s.mode = Browsing
}

// CancelFilters discards the pending set and returns to Browsing with the
// applied filters unchanged.
func (s *Session) CancelFilters() {
	s.pending = types.CategorySet{}
	s.mode = Browsing
}

// StartSearch enters Searching mode.
func (s *Session) StartSearch() {
	s.mode = Searching
}

// Search sets the search term (empty clears it), resets to page zero, and
// returns to Browsing.
func (s *Session) Search(term string) {
	s.term = term
	s.page = 0
	s.mode = Browsing
}

// CancelSearch returns to Browsing leaving the previous term intact.
func (s *Session) CancelSearch() {
	s.mode = Browsing
}

// NextPage advances one page. At the last page it is a no-op, not an
// error. Valid only while Browsing.
func (s *Session) NextPage() {
	if s.mode != Browsing {
		return
	}
	if s.Page().HasNext {
		s.page++
	}
}

// PrevPage steps back one page, clamped at zero. Valid only while
// Browsing.
func (s *Session) PrevPage() {
	if s.mode != Browsing {
		return
	}
	if s.page > 0 {
		s.page--
	}
}
