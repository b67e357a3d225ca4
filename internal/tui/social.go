package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/inputshowcase/internal/logging"
	"github.com/muurk/inputshowcase/internal/posttoken"
)

// maxShownPosts caps the posted list under the composer
const maxShownPosts = 5

// socialKeyMap defines key bindings for the post composer
type socialKeyMap struct {
	Accept  key.Binding
	Next    key.Binding
	Prev    key.Binding
	Hashtag key.Binding
	Mention key.Binding
	Post    key.Binding
	Back    key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k socialKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Accept, k.Hashtag, k.Mention, k.Post, k.Back}
}

// FullHelp returns keybindings for the expanded help view
func (k socialKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Accept, k.Next, k.Prev},
		{k.Hashtag, k.Mention},
		{k.Post, k.Back},
	}
}

// SocialModel is the post composer with hashtag and mention suggestions
type SocialModel struct {
	Input textinput.Model

	Hashtags []string
	Mentions []string
	Limit    int

	Word        posttoken.Word // Word under the cursor
	Suggestions []string
	Selected    int

	Posts  []string // Most recent first
	Status string

	Width  int
	Height int
	Help   help.Model
	Keys   socialKeyMap

	back bool
}

// NewSocialModel creates the composer. A non-positive limit uses posttoken.MaxPostLength.
func NewSocialModel(hashtags, mentions []string, limit int) SocialModel {
	if limit <= 0 {
		limit = posttoken.MaxPostLength
	}

	in := textinput.New()
	in.Placeholder = "What's happening?"
	in.Prompt = "> "
	in.Width = 50
	in.Focus()

	return SocialModel{
		Input:    in,
		Hashtags: hashtags,
		Mentions: mentions,
		Limit:    limit,
		Help:     help.New(),
		Keys: socialKeyMap{
			Accept: key.NewBinding(
				key.WithKeys("tab"),
				key.WithHelp("tab", "insert suggestion"),
			),
			Next: key.NewBinding(
				key.WithKeys("ctrl+n", "down"),
				key.WithHelp("ctrl+n/↓", "next suggestion"),
			),
			Prev: key.NewBinding(
				key.WithKeys("ctrl+p", "up"),
				key.WithHelp("ctrl+p/↑", "previous suggestion"),
			),
			Hashtag: key.NewBinding(
				key.WithKeys("ctrl+t"),
				key.WithHelp("ctrl+t", "add #"),
			),
			Mention: key.NewBinding(
				key.WithKeys("ctrl+g"),
				key.WithHelp("ctrl+g", "add @"),
			),
			Post: key.NewBinding(
				key.WithKeys("ctrl+s", "enter"),
				key.WithHelp("enter", "post"),
			),
			Back: key.NewBinding(
				key.WithKeys("esc"),
				key.WithHelp("esc", "back"),
			),
		},
	}
}

// Init initializes the composer
func (m SocialModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model
func (m SocialModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.Keys.Back):
			m.back = true
			return m, nil

		case key.Matches(keyMsg, m.Keys.Accept):
			m.acceptSuggestion()
			return m, nil

		case key.Matches(keyMsg, m.Keys.Next):
			m.cycle(1)
			return m, nil

		case key.Matches(keyMsg, m.Keys.Prev):
			m.cycle(-1)
			return m, nil

		case key.Matches(keyMsg, m.Keys.Hashtag):
			m.apply(posttoken.AppendMarker(m.Input.Value(), posttoken.HashtagMarker))
			return m, nil

		case key.Matches(keyMsg, m.Keys.Mention):
			m.apply(posttoken.AppendMarker(m.Input.Value(), posttoken.MentionMarker))
			return m, nil

		case key.Matches(keyMsg, m.Keys.Post):
			m.post()
			return m, nil
		}
	}

	prev, prevPos := m.Input.Value(), m.Input.Position()

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)

	if text := m.Input.Value(); text != prev {
		if !posttoken.AcceptEdit(text, m.Limit) {
			m.Input.SetValue(prev)
			m.Input.SetCursor(prevPos)
			return m, cmd
		}
		logging.LogFieldEdit("social", "post", prev, text)
		m.Status = ""
	}

	m.refreshSuggestions()
	return m, cmd
}

// apply replaces the composer text and cursor when the edit fits the limit
func (m *SocialModel) apply(e posttoken.Edit) bool {
	if !posttoken.AcceptEdit(e.Text, m.Limit) {
		return false
	}
	m.Input.SetValue(e.Text)
	m.Input.SetCursor(e.Cursor)
	m.refreshSuggestions()
	return true
}

func (m *SocialModel) acceptSuggestion() {
	if len(m.Suggestions) == 0 {
		return
	}
	choice := m.Suggestions[m.Selected]
	m.apply(posttoken.InsertSuggestion(
		m.Input.Value(), m.Input.Position(), m.Word.Text, choice, m.Word.Kind.Marker(),
	))
}

func (m *SocialModel) cycle(delta int) {
	if n := len(m.Suggestions); n > 0 {
		m.Selected = (m.Selected + delta + n) % n
	}
}

func (m *SocialModel) refreshSuggestions() {
	word := posttoken.CurrentWord(m.Input.Value(), m.Input.Position())
	suggestions := posttoken.Suggest(word, m.Hashtags, m.Mentions)

	if word != m.Word && posttoken.ShouldShowSuggestions(word) {
		logging.LogSuggestion(word.Kind.String(), word.Text, len(suggestions))
	}
	if word != m.Word {
		m.Selected = 0
	}
	if m.Selected >= len(suggestions) {
		m.Selected = 0
	}

	m.Word = word
	m.Suggestions = suggestions
}

func (m *SocialModel) post() {
	text := m.Input.Value()
	if !posttoken.CanPost(text, m.Limit) {
		m.Status = "Nothing to post"
		return
	}

	m.Posts = append([]string{strings.TrimSpace(text)}, m.Posts...)
	if len(m.Posts) > maxShownPosts {
		m.Posts = m.Posts[:maxShownPosts]
	}
	m.Input.SetValue("")
	m.Status = "Posted"
	m.refreshSuggestions()
}

// Resize sets the terminal dimensions
func (m SocialModel) Resize(width, height int) SocialModel {
	m.Width, m.Height = width, height
	if w := contentWidth(width) - 4; w > 10 {
		m.Input.Width = w
	}
	return m
}

// IsBackRequested returns true if user wants to go back
func (m SocialModel) IsBackRequested() bool {
	return m.back
}

// View renders the composer
func (m SocialModel) View() string {
	text := m.Input.Value()
	count := posttoken.Counter(text, m.Limit)

	counterStyle := SupportStyle
	switch {
	case count.Over():
		counterStyle = FieldErrorStyle
	case count.Warn():
		counterStyle = SupportStyle.Foreground(WarningColor)
	}

	sections := []string{
		RenderTitle("Create Post"),
		m.Input.View(),
		counterStyle.Render(count.Label()),
	}

	if len(m.Suggestions) > 0 {
		sections = append(sections, m.renderSuggestions())
	}

	if text != "" {
		preview := posttoken.Render(posttoken.Highlight(text), styleSpan)
		width := contentWidth(m.Width) - 4
		sections = append(sections,
			SectionStyle.Render("Preview"),
			PreviewBoxStyle.Width(width).Render(preview),
		)
	}

	if m.Status != "" {
		if len(m.Posts) > 0 && m.Status == "Posted" {
			sections = append(sections, RenderSuccess(m.Status))
		} else {
			sections = append(sections, WarningTextStyle.Render(m.Status))
		}
	}

	if len(m.Posts) > 0 {
		sections = append(sections, SectionStyle.Render("Your Posts"))
		for _, p := range m.Posts {
			sections = append(sections, RowStyle.Render(posttoken.Render(posttoken.Highlight(p), styleSpan)))
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return RenderApplicationContainer(content, m.Help.View(m.Keys), m.Width, m.Height)
}

func (m SocialModel) renderSuggestions() string {
	marker := m.Word.Kind.Marker()
	lines := []string{SectionStyle.Render(fmt.Sprintf("Suggestions for %s", m.Word.Text))}
	for i, s := range m.Suggestions {
		if i == m.Selected {
			lines = append(lines, SelectedRowStyle.Render("› "+marker+s))
			continue
		}
		lines = append(lines, RowStyle.Render(marker+s))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
