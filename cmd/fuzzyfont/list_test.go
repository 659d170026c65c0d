package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"

	"github.com/solarbyte-dev/fuzzyfont/pkg/types"
)

func TestCategoryFlagsSet(t *testing.T) {
	assert.True(t, categoryFlags{}.set().Empty(), "no switches means no filter")

	cats := categoryFlags{mono: true, serif: true}.set()
	assert.True(t, cats.Has(types.Monospace))
	assert.True(t, cats.Has(types.Serif))
	assert.False(t, cats.Has(types.SansSerif))

	all := categoryFlags{mono: true, serif: true, sans: true, display: true, symbol: true, unknown: true}.set()
	assert.Len(t, all.Sorted(), len(types.AllCategories))
}

func TestApplyViewComposesFilterAndSearch(t *testing.T) {
	entries := []types.CatalogEntry{
		{Name: "Consolas", FilePath: "/f/consolas.ttf", Categories: types.NewCategorySet(types.Monospace)},
		{Name: "Roboto", FilePath: "/f/roboto.ttf", Categories: types.NewCategorySet(types.SansSerif)},
		{Name: "Roboto Mono", FilePath: "/f/roboto-mono.ttf", Categories: types.NewCategorySet(types.Monospace)},
		{Name: "Georgia", FilePath: "/f/georgia.ttf", Categories: types.NewCategorySet(types.Serif)},
	}

	assert.Equal(t, entries, applyView(entries, categoryFlags{}, ""), "no flags and no term is the identity")

	mono := applyView(entries, categoryFlags{mono: true}, "")
	assert.Len(t, mono, 2)
	assert.Equal(t, "Consolas", mono[0].Name)
	assert.Equal(t, "Roboto Mono", mono[1].Name)

	monoRob := applyView(entries, categoryFlags{mono: true}, "rob")
	assert.Len(t, monoRob, 1)
	assert.Equal(t, "Roboto Mono", monoRob[0].Name)
}

func TestViewCommandsShareFilterFlags(t *testing.T) {
	for _, cmd := range []*cobra.Command{NewListCmd(), NewStatsCmd(), NewExportCmd()} {
		for _, name := range []string{"mono", "serif", "sans", "display", "symbol", "unknown", "search"} {
			assert.NotNilf(t, cmd.Flags().Lookup(name), "%s is missing --%s", cmd.Use, name)
		}
	}
}

func TestCategoryList(t *testing.T) {
	cats := types.CategorySet{}
	cats.Add(types.Serif)
	cats.Add(types.Monospace)
	assert.Equal(t, "monospace, serif", categoryList(cats))
}
