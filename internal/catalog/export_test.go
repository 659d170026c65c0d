package catalog_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solarbyte-dev/fuzzyfont/internal/catalog"
	"github.com/solarbyte-dev/fuzzyfont/internal/errors"
	"github.com/solarbyte-dev/fuzzyfont/pkg/types"
)

func exportView() []types.CatalogEntry {
	return []types.CatalogEntry{
		{Name: "Courier New", FilePath: "/f/cour.ttf", Categories: types.NewCategorySet(types.Serif, types.Monospace)},
		{Name: "Roboto", FilePath: "/f/roboto.ttf", Categories: types.NewCategorySet(types.SansSerif)},
	}
}

func TestExportJSONRoundTrip(t *testing.T) {
	content, err := catalog.Export(exportView(), catalog.FormatJSON)
	require.NoError(t, err)

	var parsed []struct {
		Name       string   `json:"name"`
		Categories []string `json:"categories"`
		FilePath   string   `json:"filePath"`
	}
	require.NoError(t, json.Unmarshal(content, &parsed))
	require.Len(t, parsed, 2)

	assert.Equal(t, "Courier New", parsed[0].Name)
	assert.Equal(t, "/f/cour.ttf", parsed[0].FilePath)
	// Categories are sorted lexically regardless of set iteration order.
	assert.Equal(t, []string{"monospace", "serif"}, parsed[0].Categories)
	assert.Equal(t, "Roboto", parsed[1].Name)
	assert.Equal(t, []string{"sans-serif"}, parsed[1].Categories)
}

func TestExportJSONDeterministic(t *testing.T) {
	first, err := catalog.Export(exportView(), catalog.FormatJSON)
	require.NoError(t, err)
	second, err := catalog.Export(exportView(), catalog.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestExportText(t *testing.T) {
	content, err := catalog.Export(exportView(), catalog.FormatText)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Courier New\tmonospace,serif\t/f/cour.ttf", lines[0])
	assert.Equal(t, "Roboto\tsans-serif\t/f/roboto.ttf", lines[1])
}

func TestExportEmptyView(t *testing.T) {
	content, err := catalog.Export(nil, catalog.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(content))

	content, err = catalog.Export(nil, catalog.FormatText)
	require.NoError(t, err)
	assert.Empty(t, content)
}

func TestExportUnknownFormat(t *testing.T) {
	_, err := catalog.Export(exportView(), catalog.Format("yaml"))
	require.Error(t, err)
	assert.False(t, errors.IsExportWriteFailure(err), "a bad format is not a write failure")
}

func TestParseFormat(t *testing.T) {
	for input, want := range map[string]catalog.Format{
		"json": catalog.FormatJSON,
		"JSON": catalog.FormatJSON,
		"text": catalog.FormatText,
		"txt":  catalog.FormatText,
	} {
		got, err := catalog.ParseFormat(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got)
	}

	_, err := catalog.ParseFormat("csv")
	assert.Error(t, err)
}

func TestFormatForPath(t *testing.T) {
	assert.Equal(t, catalog.FormatJSON, catalog.FormatForPath("/tmp/out.json"))
	assert.Equal(t, catalog.FormatJSON, catalog.FormatForPath("out.JSON"))
	assert.Equal(t, catalog.FormatText, catalog.FormatForPath("/tmp/out.txt"))
	assert.Equal(t, catalog.FormatText, catalog.FormatForPath("/tmp/out"))
}
