package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/inputshowcase/internal/config"
	"github.com/muurk/inputshowcase/internal/logging"
	"github.com/muurk/inputshowcase/internal/search"
)

// closestCount is how many "did you mean" entries are offered
const closestCount = 3

// searchKeyMap defines key bindings for the search screen
type searchKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Clear  key.Binding
	Back   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k searchKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Clear, k.Back}
}

// FullHelp returns keybindings for the expanded help view
func (k searchKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Clear, k.Back},
	}
}

// SearchModel is the search field with recent, popular and matching rows
type SearchModel struct {
	Input    textinput.Model
	Registry *config.Registry

	Rows    []search.Suggestion
	Closest []string // Offered when a query matches nothing
	Cursor  int
	LastRun string // Last submitted query
	Width   int
	Height  int
	Help    help.Model
	Keys    searchKeyMap

	back bool
}

// NewSearchModel creates the search screen backed by the registry's suggestions
func NewSearchModel(reg *config.Registry) SearchModel {
	if reg == nil {
		reg = config.NewRegistry()
	}

	in := textinput.New()
	in.Placeholder = "Search"
	in.Prompt = "> "
	in.Width = 40
	in.Focus()

	m := SearchModel{
		Input:    in,
		Registry: reg,
		Help:     help.New(),
		Keys: searchKeyMap{
			Up: key.NewBinding(
				key.WithKeys("up", "ctrl+p"),
				key.WithHelp("↑", "previous"),
			),
			Down: key.NewBinding(
				key.WithKeys("down", "ctrl+n"),
				key.WithHelp("↓", "next"),
			),
			Select: key.NewBinding(
				key.WithKeys("enter"),
				key.WithHelp("enter", "search"),
			),
			Clear: key.NewBinding(
				key.WithKeys("ctrl+u"),
				key.WithHelp("ctrl+u", "clear"),
			),
			Back: key.NewBinding(
				key.WithKeys("esc"),
				key.WithHelp("esc", "back"),
			),
		},
	}
	m.refresh()
	return m
}

// Init initializes the search screen
func (m SearchModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model
func (m SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.Keys.Back):
			m.back = true
			return m, nil

		case key.Matches(keyMsg, m.Keys.Up):
			if m.Cursor > 0 {
				m.Cursor--
			}
			return m, nil

		case key.Matches(keyMsg, m.Keys.Down):
			if m.Cursor < len(m.Rows)-1 {
				m.Cursor++
			}
			return m, nil

		case key.Matches(keyMsg, m.Keys.Clear):
			m.Input.SetValue("")
			m.refresh()
			return m, nil

		case key.Matches(keyMsg, m.Keys.Select):
			m.run()
			return m, nil
		}
	}

	prev := m.Input.Value()

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)

	if m.Input.Value() != prev {
		m.refresh()
	}
	return m, cmd
}

// run submits the highlighted row, or the typed query when nothing matches
func (m *SearchModel) run() {
	query := strings.TrimSpace(m.Input.Value())
	if m.Cursor >= 0 && m.Cursor < len(m.Rows) {
		query = m.Rows[m.Cursor].Text
	}
	if query == "" {
		return
	}

	m.Registry.RecordSearch(query)
	m.LastRun = query
	logging.Debug("Search submitted")

	m.Input.SetValue(query)
	m.Input.CursorEnd()
	m.refresh()
}

func (m *SearchModel) refresh() {
	s := m.Registry.Suggestions
	query := m.Input.Value()

	if strings.TrimSpace(query) == "" {
		m.Rows = search.Idle(s.Recent, s.Popular)
		m.Closest = nil
	} else {
		m.Rows = search.Results(s.SearchItems, query)
		m.Closest = nil
		if len(m.Rows) == 0 {
			m.Closest = search.Closest(s.SearchItems, query, closestCount)
		}
	}

	if m.Cursor >= len(m.Rows) {
		m.Cursor = 0
	}
}

// IsBackRequested returns true if user wants to go back
func (m SearchModel) IsBackRequested() bool {
	return m.back
}

// View renders the search screen
func (m SearchModel) View() string {
	sections := []string{
		RenderTitle("Search"),
		m.Input.View(),
	}

	var heading search.SuggestionType = -1
	for i, row := range m.Rows {
		if row.Type != heading {
			heading = row.Type
			sections = append(sections, SectionStyle.Render(heading.String()))
		}
		if i == m.Cursor {
			sections = append(sections, SelectedRowStyle.Render("› "+row.Text))
			continue
		}
		sections = append(sections, RowStyle.Render(row.Text))
	}

	if strings.TrimSpace(m.Input.Value()) != "" && len(m.Rows) == 0 {
		sections = append(sections, SubtitleStyle.Render("No results"))
		if len(m.Closest) > 0 {
			sections = append(sections, SupportStyle.Render("Did you mean: "+strings.Join(m.Closest, ", ")+"?"))
		}
	}

	if m.LastRun != "" {
		sections = append(sections, "", RenderSuccess(fmt.Sprintf("Searched for %q", m.LastRun)))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return RenderApplicationContainer(content, m.Help.View(m.Keys), m.Width, m.Height)
}
