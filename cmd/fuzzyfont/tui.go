package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/solarbyte-dev/fuzzyfont/internal/session"
	"github.com/solarbyte-dev/fuzzyfont/internal/tui"
)

// NewTuiCmd creates the tui command
func NewTuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Start the interactive font browser",
		Long:  `Start the terminal browser for paging, filtering, and searching the catalog.`,
		Run: func(cmd *cobra.Command, args []string) {
			cat, err := buildCatalog()
			if err != nil {
				fmt.Println(errorText(fmt.Sprintf("Error building catalog: %v", err)))
				os.Exit(1)
			}

			m := tui.New(session.New(cat, cfg.Catalog.PageSize))
			// Initialize Bubble Tea WITHOUT alt screen for better compatibility
			// in non-TTY environments.
			p := tea.NewProgram(m)
			if _, err := p.Run(); err != nil {
				fmt.Println(errorText(fmt.Sprintf("Error running browser: %v", err)))
				os.Exit(1)
			}
		},
	}
}
