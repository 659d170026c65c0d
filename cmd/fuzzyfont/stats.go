package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/solarbyte-dev/fuzzyfont/internal/catalog"
	"github.com/solarbyte-dev/fuzzyfont/pkg/types"
)

// NewStatsCmd creates the stats command
func NewStatsCmd() *cobra.Command {
	var (
		flags      categoryFlags
		searchTerm string
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show per-category font counts",
		Long: `Aggregate the catalog into per-category counts with a few example
font names for each category. The same category and search flags as
'list' narrow the view first; fonts in several categories are counted
once per category.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := buildCatalog()
			if err != nil {
				return err
			}

			view := applyView(cat.Entries(), flags, searchTerm)
			stats := catalog.Aggregate(view)
			fmt.Println(headerText("Font statistics"))
			for _, category := range types.AllCategories {
				cs, ok := stats[category]
				if !ok {
					continue
				}
				fmt.Printf("  %-12s %4d  %s\n", category, cs.Count, mutedText(strings.Join(cs.Examples, ", ")))
			}
			if len(view) == cat.Len() {
				fmt.Printf("\n%s\n", mutedText(fmt.Sprintf("%d fonts cataloged", cat.Len())))
			} else {
				fmt.Printf("\n%s\n", mutedText(fmt.Sprintf("%d of %d fonts in view", len(view), cat.Len())))
			}
			return nil
		},
	}

	addViewFlags(cmd, &flags, &searchTerm)

	return cmd
}
