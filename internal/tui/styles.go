package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/solarbyte-dev/fuzzyfont/pkg/types"
)

var (
	// Title style for the header bar
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#4F4FB7")).
			Padding(0, 1)

	// Status style for info messages
	StatusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#959595"))

	// Error style for error messages
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5555"))

	// Index column style
	IndexStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	// Font name style
	NameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CCCCCC"))

	// Path style, de-emphasized
	PathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	// Help/key bar style
	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#959595"))

	// Selected filter highlight in the filter menu
	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#4F4FB7"))

	// Category label colors
	categoryStyles = map[types.Category]lipgloss.Style{
		types.Monospace: lipgloss.NewStyle().Foreground(lipgloss.Color("#61AFEF")),
		types.Serif:     lipgloss.NewStyle().Foreground(lipgloss.Color("#98C379")),
		types.SansSerif: lipgloss.NewStyle().Foreground(lipgloss.Color("#E5C07B")),
		types.Display:   lipgloss.NewStyle().Foreground(lipgloss.Color("#C678DD")),
		types.Symbol:    lipgloss.NewStyle().Foreground(lipgloss.Color("#D08770")),
		types.Unknown:   lipgloss.NewStyle().Foreground(lipgloss.Color("#767676")),
	}
)

// CategoryLabel renders a colored category name.
func CategoryLabel(cat types.Category) string {
	if style, ok := categoryStyles[cat]; ok {
		return style.Render(string(cat))
	}
	return string(cat)
}
