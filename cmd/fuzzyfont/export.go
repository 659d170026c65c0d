package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/solarbyte-dev/fuzzyfont/internal/catalog"
	apperrors "github.com/solarbyte-dev/fuzzyfont/internal/errors"
)

// NewExportCmd creates the export command
func NewExportCmd() *cobra.Command {
	var (
		flags      categoryFlags
		searchTerm string
		outPath    string
		formatName string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the catalog to a file",
		Long: `Export the catalog as JSON or tab-delimited text. The same category
and search flags as 'list' narrow the exported view; the format is
inferred from the output file extension unless --format is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			format := catalog.FormatForPath(outPath)
			if formatName != "" {
				var err error
				format, err = catalog.ParseFormat(formatName)
				if err != nil {
					return err
				}
			}

			cat, err := buildCatalog()
			if err != nil {
				return err
			}

			view := applyView(cat.Entries(), flags, searchTerm)
			content, err := catalog.Export(view, format)
			if err != nil {
				return err
			}

			if err := os.WriteFile(outPath, content, 0644); err != nil {
				return apperrors.NewExportError("failed to write export file", outPath, apperrors.ExportWriteFailed, err)
			}

			fmt.Println(infoText(fmt.Sprintf("Exported %d fonts to %s", len(view), outPath)))
			return nil
		},
	}

	addViewFlags(cmd, &flags, &searchTerm)
	cmd.Flags().StringVarP(&outPath, "out", "o", "fonts.json", "output file path")
	cmd.Flags().StringVarP(&formatName, "format", "f", "", "output format: json or text (default inferred from --out)")

	return cmd
}
