package catalog_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solarbyte-dev/fuzzyfont/internal/catalog"
	"github.com/solarbyte-dev/fuzzyfont/internal/classify"
	"github.com/solarbyte-dev/fuzzyfont/pkg/types"
)

func buildTestCatalog(t *testing.T, records []types.FontRecord) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Build(records, classify.New())
	require.NoError(t, err)
	return c
}

func TestBuildScenario(t *testing.T) {
	c := buildTestCatalog(t, []types.FontRecord{
		{Name: "Consolas", FamilyMetadata: "", FilePath: "/f/Consolas.ttf"},
		{Name: "XYZ Mono Pro", FamilyMetadata: "", FilePath: "/f/xyz.ttf"},
		{Name: "Obscuro99", FamilyMetadata: "", FilePath: "/f/o.ttf"},
	})

	require.Equal(t, 3, c.Len())
	assert.True(t, c.Entries()[0].Categories.Has(types.Monospace), "Consolas resolves via override")
	assert.True(t, c.Entries()[1].Categories.Has(types.Monospace), "XYZ Mono Pro resolves via heuristic")
	assert.True(t, c.Entries()[2].Categories.Has(types.Unknown))

	mono := catalog.Filter(c.Entries(), types.NewCategorySet(types.Monospace))
	require.Len(t, mono, 2)
	assert.Equal(t, "Consolas", mono[0].Name)
	assert.Equal(t, "XYZ Mono Pro", mono[1].Name)
}

func TestBuildNilRecordsFails(t *testing.T) {
	_, err := catalog.Build(nil, classify.New())
	assert.Error(t, err)
}

func TestBuildEmptyIsValid(t *testing.T) {
	c := buildTestCatalog(t, []types.FontRecord{})
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Entries())
}

func TestBuildDeduplicatesByPath(t *testing.T) {
	c := buildTestCatalog(t, []types.FontRecord{
		{Name: "Fira Code", FilePath: "/f/fira.ttf"},
		{Name: "Fira Code Retina", FilePath: "/f/fira.ttf"},
		{Name: "Lato", FilePath: "/f/lato.ttf"},
	})

	require.Equal(t, 2, c.Len())
	// First occurrence in input order wins.
	assert.Equal(t, "Fira Code", c.Entries()[0].Name)
	assert.Equal(t, "Lato", c.Entries()[1].Name)
}

func TestBuildKeepsUnknownEntries(t *testing.T) {
	c := buildTestCatalog(t, []types.FontRecord{
		{Name: "Zzyzx", FilePath: "/f/z.ttf"},
	})
	require.Equal(t, 1, c.Len())
	assert.True(t, c.Entries()[0].Categories.Has(types.Unknown))
}

func TestBuildDefaultsClassifier(t *testing.T) {
	c, err := catalog.Build([]types.FontRecord{{Name: "Consolas", FilePath: "/f/c.ttf"}}, nil)
	require.NoError(t, err)
	assert.True(t, c.Entries()[0].Categories.Has(types.Monospace))
}

func sampleEntries(t *testing.T) []types.CatalogEntry {
	t.Helper()
	c := buildTestCatalog(t, []types.FontRecord{
		{Name: "Roboto", FilePath: "/f/roboto.ttf"},
		{Name: "Consolas", FilePath: "/f/consolas.ttf"},
		{Name: "Georgia", FilePath: "/f/georgia.ttf"},
		{Name: "Roboto Mono", FilePath: "/f/roboto-mono.ttf"},
		{Name: "Wingdings", FilePath: "/f/wingdings.ttf"},
		{Name: "Obscuro99", FilePath: "/f/o99.ttf"},
	})
	return c.Entries()
}

func TestFilterEmptySetIsIdentity(t *testing.T) {
	view := sampleEntries(t)
	assert.Equal(t, view, catalog.Filter(view, types.CategorySet{}))
	assert.Equal(t, view, catalog.Filter(view, nil))
}

func TestFilterIntersectsAndPreservesOrder(t *testing.T) {
	view := sampleEntries(t)

	got := catalog.Filter(view, types.NewCategorySet(types.Monospace, types.Symbol))
	require.Len(t, got, 3)
	assert.Equal(t, "Consolas", got[0].Name)
	assert.Equal(t, "Roboto Mono", got[1].Name)
	assert.Equal(t, "Wingdings", got[2].Name)

	got = catalog.Filter(view, types.NewCategorySet(types.Unknown))
	require.Len(t, got, 1)
	assert.Equal(t, "Obscuro99", got[0].Name)
}

func TestFilterNoMatchesIsEmptyNotError(t *testing.T) {
	view := sampleEntries(t)
	got := catalog.Filter(view, types.NewCategorySet(types.Display))
	assert.Empty(t, got)
}

func TestSearchCaseInsensitive(t *testing.T) {
	view := sampleEntries(t)

	lower := catalog.Search(view, "rob")
	upper := catalog.Search(view, "ROB")
	require.Len(t, lower, 2)
	assert.Equal(t, lower, upper)
	assert.Equal(t, "Roboto", lower[0].Name)
	assert.Equal(t, "Roboto Mono", lower[1].Name)
}

func TestSearchEmptyTermIsIdentity(t *testing.T) {
	view := sampleEntries(t)
	assert.Equal(t, view, catalog.Search(view, ""))
	assert.Equal(t, view, catalog.Search(view, "   "))
}

func TestSearchComposesWithFilter(t *testing.T) {
	view := sampleEntries(t)
	got := catalog.Search(catalog.Filter(view, types.NewCategorySet(types.Monospace)), "roboto")
	require.Len(t, got, 1)
	assert.Equal(t, "Roboto Mono", got[0].Name)
}

func TestPaginateIsAPartition(t *testing.T) {
	var view []types.CatalogEntry
	for i := 0; i < 37; i++ {
		view = append(view, types.CatalogEntry{
			Name:       fmt.Sprintf("Font %02d", i),
			FilePath:   fmt.Sprintf("/f/%02d.ttf", i),
			Categories: types.NewCategorySet(types.Unknown),
		})
	}

	const pageSize = 10
	first := catalog.Paginate(view, pageSize, 0)
	require.Equal(t, 4, first.TotalPages)

	var reassembled []types.CatalogEntry
	for i := 0; i < first.TotalPages; i++ {
		page := catalog.Paginate(view, pageSize, i)
		assert.Equal(t, i > 0, page.HasPrev, "page %d", i)
		assert.Equal(t, i < first.TotalPages-1, page.HasNext, "page %d", i)
		reassembled = append(reassembled, page.Entries...)
	}
	assert.Equal(t, view, reassembled, "concatenated pages must reconstruct the view exactly")
}

func TestPaginateOutOfRange(t *testing.T) {
	view := sampleEntries(t)

	for _, index := range []int{-1, 99} {
		page := catalog.Paginate(view, 4, index)
		assert.Empty(t, page.Entries, "index %d", index)
		assert.Equal(t, 2, page.TotalPages, "index %d", index)
		assert.False(t, page.HasNext)
		assert.False(t, page.HasPrev)
	}
}

func TestPaginateEmptyView(t *testing.T) {
	page := catalog.Paginate(nil, 16, 0)
	assert.Empty(t, page.Entries)
	assert.Equal(t, 0, page.TotalPages)
	assert.False(t, page.HasNext)
	assert.False(t, page.HasPrev)
}

func TestPaginateDefaultsPageSize(t *testing.T) {
	view := sampleEntries(t)
	page := catalog.Paginate(view, 0, 0)
	assert.Len(t, page.Entries, len(view), "six entries fit in one default-size page")
	assert.Equal(t, 1, page.TotalPages)
}
