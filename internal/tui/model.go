// Package tui implements the interactive catalog browser. It is a thin
// bubbletea layer over a session: every key that changes browsing state
// goes through the session's transitions, and the view is re-derived from
// the session on each render.
package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/solarbyte-dev/fuzzyfont/internal/catalog"
	"github.com/solarbyte-dev/fuzzyfont/internal/session"
	"github.com/solarbyte-dev/fuzzyfont/pkg/types"
)

type viewState int

const (
	stateBrowse viewState = iota
	stateFilter
	stateSearch
	stateStats
	stateHelp
)

// Model is the bubbletea model for the catalog browser.
type Model struct {
	session *session.Session
	search  textinput.Model
	state   viewState
	status  string

	// writeFile performs the export write; swapped out in tests.
	writeFile func(path string, data []byte) error
}

// New creates a browser over the given session.
func New(sess *session.Session) Model {
	ti := textinput.New()
	ti.Placeholder = "font name"
	ti.Prompt = "search> "
	ti.CharLimit = 64

	return Model{
		session:   sess,
		search:    ti,
		writeFile: func(path string, data []byte) error { return os.WriteFile(path, data, 0644) },
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.state {
	case stateFilter:
		return m.updateFilter(keyMsg)
	case stateSearch:
		return m.updateSearch(keyMsg)
	case stateStats, stateHelp:
		m.state = stateBrowse
		return m, nil
	default:
		return m.updateBrowse(keyMsg)
	}
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "n", "right":
		m.session.NextPage()
	case "p", "left":
		m.session.PrevPage()
	case "/", "s":
		m.session.StartSearch()
		m.search.SetValue(m.session.SearchTerm())
		m.search.Focus()
		m.state = stateSearch
		return m, textinput.Blink
	case "f":
		m.session.ToggleFilterMode()
		m.state = stateFilter
	case "t":
		m.state = stateStats
	case "e":
		m.status = m.exportCurrentView()
	case "?", "h":
		m.state = stateHelp
	}
	return m, nil
}

func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "esc":
		m.session.CancelFilters()
		m.state = stateBrowse
		m.status = ""
		return m, nil
	case "enter":
		key = session.Sentinel
	}
	if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
		if err := m.session.SelectFilter(key); err != nil {
			// Invalid numeral: keep selecting, the prompt repeats.
			m.status = ErrorStyle.Render(err.Error())
			return m, nil
		}
		m.status = ""
		if m.session.Mode() == session.Browsing {
			m.state = stateBrowse
		}
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.session.Search(strings.TrimSpace(m.search.Value()))
		m.search.Blur()
		m.state = stateBrowse
		return m, nil
	case "esc":
		m.session.CancelSearch()
		m.search.Blur()
		m.state = stateBrowse
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m Model) exportCurrentView() string {
	path := fmt.Sprintf("fuzzyfont-%s.json", time.Now().Format("20060102-150405"))
	content, err := m.session.Export(catalog.FormatJSON)
	if err != nil {
		return ErrorStyle.Render(fmt.Sprintf("export failed: %v", err))
	}
	if err := m.writeFile(path, content); err != nil {
		return ErrorStyle.Render(fmt.Sprintf("could not write %s: %v", path, err))
	}
	return StatusStyle.Render(fmt.Sprintf("exported %d fonts to %s", len(m.session.View()), path))
}

// View implements tea.Model.
func (m Model) View() string {
	switch m.state {
	case stateFilter:
		return m.viewFilter()
	case stateSearch:
		return m.viewSearch()
	case stateStats:
		return m.viewStats()
	case stateHelp:
		return m.viewHelp()
	default:
		return m.viewBrowse()
	}
}

func (m Model) viewBrowse() string {
	var sb strings.Builder
	page := m.session.Page()
	view := m.session.View()

	sb.WriteString(TitleStyle.Render("FuzzyFont"))
	sb.WriteString(StatusStyle.Render(fmt.Sprintf("  %d fonts", len(view))))
	if filters := m.session.Filters(); !filters.Empty() {
		sb.WriteString(StatusStyle.Render(fmt.Sprintf("  filters: %s", filters)))
	}
	if term := m.session.SearchTerm(); term != "" {
		sb.WriteString(StatusStyle.Render(fmt.Sprintf("  search: %q", term)))
	}
	sb.WriteString("\n\n")

	if len(page.Entries) == 0 {
		sb.WriteString(StatusStyle.Render("no results") + "\n")
	}
	for i, entry := range page.Entries {
		index := page.Index*m.session.PageSize() + i + 1
		cats := make([]string, 0, len(entry.Categories))
		for _, name := range entry.Categories.Sorted() {
			cats = append(cats, CategoryLabel(types.Category(name)))
		}
		sb.WriteString(fmt.Sprintf("%s %s  %s  %s\n",
			IndexStyle.Render(fmt.Sprintf("%4d", index)),
			NameStyle.Render(padRight(entry.Name, 36)),
			strings.Join(cats, ", "),
			PathStyle.Render(entry.FilePath),
		))
	}

	sb.WriteString("\n")
	if page.TotalPages > 0 {
		sb.WriteString(StatusStyle.Render(fmt.Sprintf("page %d/%d", page.Index+1, page.TotalPages)))
		sb.WriteString("\n")
	}
	if m.status != "" {
		sb.WriteString(m.status + "\n")
	}
	sb.WriteString(HelpStyle.Render("[n/p] page  [/] search  [f] filters  [t] stats  [e] export  [?] help  [q] quit"))
	return sb.String()
}

func (m Model) viewFilter() string {
	var sb strings.Builder
	sb.WriteString(TitleStyle.Render("Select filters"))
	sb.WriteString("\n\n")
	pending := m.session.Pending()
	for i, cat := range types.AllCategories {
		marker := "[ ]"
		line := fmt.Sprintf("%s %d. %s", marker, i+1, cat)
		if pending.Has(cat) {
			line = SelectedStyle.Render(fmt.Sprintf("[x] %d. %s", i+1, cat))
		}
		sb.WriteString(line + "\n")
	}
	sb.WriteString("\n")
	if m.status != "" {
		sb.WriteString(m.status + "\n")
	}
	sb.WriteString(HelpStyle.Render("[1-6] toggle  [0/enter] apply  [esc] cancel"))
	return sb.String()
}

func (m Model) viewSearch() string {
	var sb strings.Builder
	sb.WriteString(TitleStyle.Render("Search fonts"))
	sb.WriteString("\n\n")
	sb.WriteString(m.search.View())
	sb.WriteString("\n\n")
	sb.WriteString(HelpStyle.Render("[enter] apply  [esc] cancel"))
	return sb.String()
}

func (m Model) viewStats() string {
	var sb strings.Builder
	view := m.session.View()
	stats := m.session.Stats()

	sb.WriteString(TitleStyle.Render("Font statistics"))
	sb.WriteString("\n\n")
	for _, cat := range types.AllCategories {
		s, ok := stats[cat]
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("%s %s  %s\n",
			CategoryLabel(cat),
			StatusStyle.Render(fmt.Sprintf("%d", s.Count)),
			PathStyle.Render(strings.Join(s.Examples, ", ")),
		))
	}
	sb.WriteString("\n")
	sb.WriteString(StatusStyle.Render(fmt.Sprintf("%d fonts in view", len(view))))
	sb.WriteString("\n\n")
	sb.WriteString(HelpStyle.Render("press any key to return"))
	return sb.String()
}

func (m Model) viewHelp() string {
	help := `
 n / p      Next / previous page
 /          Search fonts by name (empty to clear)
 f          Select category filters (numbered, 0 applies)
 t          Show statistics for the current view
 e          Export the current view to JSON
 q          Quit
`
	return TitleStyle.Render("Help") + "\n" + HelpStyle.Render(help) + "\n" + HelpStyle.Render("press any key to return")
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
