package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// scenario is one entry of the home menu
type scenario struct {
	title  string
	desc   string
	screen Screen
}

// Implement list.DefaultItem
func (s scenario) FilterValue() string { return s.title }
func (s scenario) Title() string       { return s.title }
func (s scenario) Description() string { return s.desc }

// Scenarios lists the home menu entries in display order.
var Scenarios = []scenario{
	{"Purchase", "Payment and shipping information", ScreenPurchase},
	{"Profile Creation", "Multi-field data entry form", ScreenProfile},
	{"Chat", "Message input field", ScreenChat},
	{"Search", "Search input field", ScreenSearch},
	{"Review", "Review and rating input", ScreenReview},
	{"Settings", "Profile editing fields", ScreenSettings},
	{"Calendar Event", "Event creation fields", ScreenCalendar},
	{"Social Media Post", "Post creation field", ScreenSocial},
	{"Copy & Paste", "Copy and paste functionality", ScreenCopyPaste},
}

// homeKeyMap defines key bindings for the home screen
type homeKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Enter  key.Binding
	Filter key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k homeKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.Filter, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k homeKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Enter},
		{k.Filter, k.Quit},
	}
}

// HomeModel is the scenario menu
type HomeModel struct {
	List   list.Model
	Width  int
	Height int
	Help   help.Model
	Keys   homeKeyMap

	chosen Screen
	quit   bool
}

// NewHomeModel creates the home menu
func NewHomeModel() HomeModel {
	items := make([]list.Item, len(Scenarios))
	for i, s := range Scenarios {
		items[i] = s
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(HighlightColor).
		BorderForeground(HighlightColor)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		BorderForeground(HighlightColor)

	l := list.New(items, delegate, MinTerminalWidth, MinTerminalRows)
	l.Title = "Text Input Scenarios"
	l.Styles.Title = TitleStyle
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)

	return HomeModel{
		List: l,
		Help: help.New(),
		Keys: homeKeyMap{
			Up: key.NewBinding(
				key.WithKeys("up", "k"),
				key.WithHelp("↑/k", "move up"),
			),
			Down: key.NewBinding(
				key.WithKeys("down", "j"),
				key.WithHelp("↓/j", "move down"),
			),
			Enter: key.NewBinding(
				key.WithKeys("enter"),
				key.WithHelp("enter", "open"),
			),
			Filter: key.NewBinding(
				key.WithKeys("/"),
				key.WithHelp("/", "filter"),
			),
			Quit: key.NewBinding(
				key.WithKeys("q", "esc"),
				key.WithHelp("q", "quit"),
			),
		},
	}
}

// Init initializes the home model
func (m HomeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model
func (m HomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && m.List.FilterState() != list.Filtering {
		switch {
		case key.Matches(keyMsg, m.Keys.Enter):
			if s, ok := m.List.SelectedItem().(scenario); ok {
				m.chosen = s.screen
			}
			return m, nil

		case key.Matches(keyMsg, m.Keys.Quit):
			// esc clears an applied filter before quitting
			if m.List.FilterState() == list.FilterApplied {
				m.List.ResetFilter()
				return m, nil
			}
			m.quit = true
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.List, cmd = m.List.Update(msg)
	return m, cmd
}

// Resize sets the terminal dimensions
func (m HomeModel) Resize(width, height int) HomeModel {
	m.Width, m.Height = width, height
	w, h := contentWidth(width), height-8
	if h < 6 {
		h = 6
	}
	m.List.SetSize(w, h)
	return m
}

// Chosen returns the scenario picked with enter, if any
func (m HomeModel) Chosen() (Screen, bool) {
	return m.chosen, m.chosen != ""
}

// ClearChoice forgets the last pick so returning home does not reopen it
func (m HomeModel) ClearChoice() HomeModel {
	m.chosen = ""
	return m
}

// QuitRequested reports whether the user asked to leave the application
func (m HomeModel) QuitRequested() bool {
	return m.quit
}

// View renders the home menu
func (m HomeModel) View() string {
	return RenderApplicationContainer(m.List.View(), m.Help.View(m.Keys), m.Width, m.Height)
}
