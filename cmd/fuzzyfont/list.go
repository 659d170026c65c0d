package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/solarbyte-dev/fuzzyfont/internal/catalog"
	"github.com/solarbyte-dev/fuzzyfont/pkg/types"
)

// categoryFlags holds the per-category filter switches of the list command.
type categoryFlags struct {
	mono    bool
	serif   bool
	sans    bool
	display bool
	symbol  bool
	unknown bool
}

// set converts the switches into a filter set. No switches means no
// filtering.
func (f categoryFlags) set() types.CategorySet {
	cats := types.CategorySet{}
	if f.mono {
		cats.Add(types.Monospace)
	}
	if f.serif {
		cats.Add(types.Serif)
	}
	if f.sans {
		cats.Add(types.SansSerif)
	}
	if f.display {
		cats.Add(types.Display)
	}
	if f.symbol {
		cats.Add(types.Symbol)
	}
	if f.unknown {
		cats.Add(types.Unknown)
	}
	return cats
}

// addViewFlags registers the category filter and search flags shared by
// every command that operates on a catalog view.
func addViewFlags(cmd *cobra.Command, flags *categoryFlags, searchTerm *string) {
	cmd.Flags().BoolVar(&flags.mono, "mono", false, "only monospace fonts")
	cmd.Flags().BoolVar(&flags.serif, "serif", false, "only serif fonts")
	cmd.Flags().BoolVar(&flags.sans, "sans", false, "only sans-serif fonts")
	cmd.Flags().BoolVar(&flags.display, "display", false, "only display fonts")
	cmd.Flags().BoolVar(&flags.symbol, "symbol", false, "only symbol fonts")
	cmd.Flags().BoolVar(&flags.unknown, "unknown", false, "only unclassified fonts")
	cmd.Flags().StringVarP(searchTerm, "search", "s", "", "filter by name substring (case-insensitive)")
}

// applyView narrows entries to the flagged categories and search term,
// filter before search.
func applyView(entries []types.CatalogEntry, flags categoryFlags, searchTerm string) []types.CatalogEntry {
	return catalog.Search(catalog.Filter(entries, flags.set()), searchTerm)
}

// NewListCmd creates the list command
func NewListCmd() *cobra.Command {
	var (
		flags      categoryFlags
		searchTerm string
		page       int
		limit      int
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cataloged fonts",
		Long: `List the fonts in the catalog, optionally filtered by category and
searched by name. With --limit the output is paginated; --page selects
the page to print.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := buildCatalog()
			if err != nil {
				return err
			}

			view := applyView(cat.Entries(), flags, searchTerm)

			if asJSON {
				content, err := catalog.Export(view, catalog.FormatJSON)
				if err != nil {
					return err
				}
				fmt.Println(string(content))
				return nil
			}

			if len(view) == 0 {
				fmt.Println(mutedText("No fonts match."))
				return nil
			}

			if limit > 0 {
				pg := catalog.Paginate(view, limit, page)
				printEntries(pg.Entries, page*limit)
				fmt.Println(mutedText(fmt.Sprintf("page %d/%d (%d fonts total)", pg.Index+1, pg.TotalPages, len(view))))
				return nil
			}

			printEntries(view, 0)
			fmt.Println(mutedText(fmt.Sprintf("%d fonts", len(view))))
			return nil
		},
	}

	addViewFlags(cmd, &flags, &searchTerm)
	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "entries per page (0 lists everything)")
	cmd.Flags().IntVarP(&page, "page", "p", 0, "page to print, starting at 0")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")

	return cmd
}

func printEntries(entries []types.CatalogEntry, offset int) {
	for i, entry := range entries {
		fmt.Printf("%4d. %s  %s\n", offset+i+1, entry.Name, infoText("["+categoryList(entry.Categories)+"]"))
		fmt.Printf("      %s\n", mutedText(entry.FilePath))
	}
}
