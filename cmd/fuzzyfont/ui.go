package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/solarbyte-dev/fuzzyfont/pkg/types"
)

var (
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#61AFEF"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#E5C07B"))
	errStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5555")).Bold(true)
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#4F4FB7")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#959595"))
)

func infoText(s string) string    { return infoStyle.Render(s) }
func warningText(s string) string { return warningStyle.Render(s) }
func errorText(s string) string   { return errStyle.Render(s) }
func headerText(s string) string  { return headerStyle.Render(s) }
func mutedText(s string) string   { return mutedStyle.Render(s) }

// categoryList renders a category set as its comma-joined lexical names.
func categoryList(cats types.CategorySet) string {
	return strings.Join(cats.Sorted(), ", ")
}
