package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/inputshowcase/internal/cardformat"
	"github.com/muurk/inputshowcase/internal/logging"
)

// SampleText is loaded into the source field by the Load Sample action
const SampleText = "Sample text: 123-456-7890\nEmail: test@example.com\nAmount: $99.99"

// Field indexes on the copy and paste screen
const (
	cpSource = iota
	cpPlain
	cpNumbers
	cpMultiline
	cpFieldCount
)

var cpLabels = [cpFieldCount]string{
	"Source Text",
	"Plain Text Field",
	"Numbers Only",
	"Multiline Field",
}

// copiedMsg reports the outcome of a clipboard write
type copiedMsg struct {
	text string
	err  error
}

// pastedMsg carries clipboard contents read for the focused field
type pastedMsg struct {
	text string
	err  error
}

func copyCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{text: text, err: clipboard.WriteAll(text)}
	}
}

func pasteCmd() tea.Cmd {
	return func() tea.Msg {
		text, err := clipboard.ReadAll()
		return pastedMsg{text: text, err: err}
	}
}

// copyPasteKeyMap defines key bindings for the copy and paste screen
type copyPasteKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Sample key.Binding
	Copy   key.Binding
	Paste  key.Binding
	Back   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k copyPasteKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Sample, k.Copy, k.Paste, k.Back}
}

// FullHelp returns keybindings for the expanded help view
func (k copyPasteKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.Sample, k.Copy, k.Paste},
		{k.Back},
	}
}

// CopyPasteModel demonstrates moving text between fields through the clipboard
type CopyPasteModel struct {
	Source    textinput.Model
	Plain     textinput.Model
	Numbers   textinput.Model
	Multiline textarea.Model
	Focus     int

	// Buffer holds the last copied text so paste still works without a
	// system clipboard (e.g. over SSH)
	Buffer string
	Status string

	Width  int
	Height int
	Help   help.Model
	Keys   copyPasteKeyMap

	back bool
}

// NewCopyPasteModel creates the copy and paste screen
func NewCopyPasteModel() CopyPasteModel {
	newInput := func(placeholder string) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.Prompt = "> "
		in.Width = 50
		return in
	}

	source := newInput("Type or load sample text to copy")
	source.Focus()

	area := textarea.New()
	area.Placeholder = "Paste multiple lines here"
	area.ShowLineNumbers = false
	area.SetWidth(50)
	area.SetHeight(3)

	return CopyPasteModel{
		Source:    source,
		Plain:     newInput("Paste here"),
		Numbers:   newInput("Digits only"),
		Multiline: area,
		Help:      help.New(),
		Keys: copyPasteKeyMap{
			Next: key.NewBinding(
				key.WithKeys("tab"),
				key.WithHelp("tab", "next field"),
			),
			Prev: key.NewBinding(
				key.WithKeys("shift+tab"),
				key.WithHelp("shift+tab", "previous field"),
			),
			Sample: key.NewBinding(
				key.WithKeys("ctrl+l"),
				key.WithHelp("ctrl+l", "load sample"),
			),
			Copy: key.NewBinding(
				key.WithKeys("ctrl+y"),
				key.WithHelp("ctrl+y", "copy"),
			),
			Paste: key.NewBinding(
				key.WithKeys("ctrl+v"),
				key.WithHelp("ctrl+v", "paste"),
			),
			Back: key.NewBinding(
				key.WithKeys("esc"),
				key.WithHelp("esc", "back"),
			),
		},
	}
}

// Init initializes the screen
func (m CopyPasteModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model
func (m CopyPasteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case copiedMsg:
		m.Buffer = msg.text
		if msg.err != nil {
			logging.Warn("Clipboard write failed, using local buffer")
			m.Status = "Copied (local buffer only)"
		} else {
			m.Status = fmt.Sprintf("Copied %d characters", len([]rune(msg.text)))
		}
		return m, nil

	case pastedMsg:
		text := msg.text
		if msg.err != nil || text == "" {
			text = m.Buffer
		}
		m.paste(text)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.Keys.Back):
			m.back = true
			return m, nil

		case key.Matches(msg, m.Keys.Next):
			return m, m.setFocus((m.Focus + 1) % cpFieldCount)

		case key.Matches(msg, m.Keys.Prev):
			return m, m.setFocus((m.Focus + cpFieldCount - 1) % cpFieldCount)

		case key.Matches(msg, m.Keys.Sample):
			m.Source.SetValue(SampleText)
			m.Source.CursorEnd()
			m.Status = "Sample loaded"
			return m, nil

		case key.Matches(msg, m.Keys.Copy):
			text := m.focusedValue()
			if text == "" {
				m.Status = "Nothing to copy"
				return m, nil
			}
			return m, copyCmd(text)

		case key.Matches(msg, m.Keys.Paste):
			return m, pasteCmd()
		}
	}

	return m, m.updateFocused(msg)
}

func (m *CopyPasteModel) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.Focus {
	case cpSource:
		m.Source, cmd = m.Source.Update(msg)
	case cpPlain:
		m.Plain, cmd = m.Plain.Update(msg)
	case cpNumbers:
		prev := m.Numbers.Value()
		m.Numbers, cmd = m.Numbers.Update(msg)
		if v := m.Numbers.Value(); v != prev {
			m.Numbers.SetValue(cardformat.Digits(v))
			m.Numbers.CursorEnd()
		}
	case cpMultiline:
		m.Multiline, cmd = m.Multiline.Update(msg)
	}
	return cmd
}

// paste inserts text into the focused field, keeping only digits for the
// numbers field
func (m *CopyPasteModel) paste(text string) {
	if text == "" {
		m.Status = "Clipboard is empty"
		return
	}

	switch m.Focus {
	case cpSource:
		m.Source.SetValue(m.Source.Value() + text)
		m.Source.CursorEnd()
	case cpPlain:
		m.Plain.SetValue(m.Plain.Value() + text)
		m.Plain.CursorEnd()
	case cpNumbers:
		m.Numbers.SetValue(m.Numbers.Value() + cardformat.Digits(text))
		m.Numbers.CursorEnd()
	case cpMultiline:
		m.Multiline.InsertString(text)
	}
	m.Status = "Pasted into " + cpLabels[m.Focus]
}

func (m CopyPasteModel) focusedValue() string {
	switch m.Focus {
	case cpSource:
		return m.Source.Value()
	case cpPlain:
		return m.Plain.Value()
	case cpNumbers:
		return m.Numbers.Value()
	default:
		return m.Multiline.Value()
	}
}

func (m *CopyPasteModel) setFocus(i int) tea.Cmd {
	m.Source.Blur()
	m.Plain.Blur()
	m.Numbers.Blur()
	m.Multiline.Blur()
	m.Focus = i

	switch i {
	case cpSource:
		return m.Source.Focus()
	case cpPlain:
		return m.Plain.Focus()
	case cpNumbers:
		return m.Numbers.Focus()
	default:
		return m.Multiline.Focus()
	}
}

// Resize sets the terminal dimensions
func (m CopyPasteModel) Resize(width, height int) CopyPasteModel {
	m.Width, m.Height = width, height
	w := contentWidth(width) - 4
	m.Source.Width = w
	m.Plain.Width = w
	m.Numbers.Width = w
	m.Multiline.SetWidth(w)
	return m
}

// IsBackRequested returns true if user wants to go back
func (m CopyPasteModel) IsBackRequested() bool {
	return m.back
}

// View renders the screen
func (m CopyPasteModel) View() string {
	views := [cpFieldCount]string{
		m.Source.View(),
		m.Plain.View(),
		m.Numbers.View(),
		m.Multiline.View(),
	}

	sections := []string{RenderTitle("Copy & Paste")}
	for i, v := range views {
		label := LabelStyle.Render(cpLabels[i])
		if i == m.Focus {
			label = FocusedLabelStyle.Render(cpLabels[i])
		}
		if i == cpPlain {
			sections = append(sections, SectionStyle.Render("Paste Destinations"))
		}
		sections = append(sections, label, v)
	}

	if m.Status != "" {
		sections = append(sections, "", RenderSuccess(m.Status))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return RenderApplicationContainer(content, m.Help.View(m.Keys), m.Width, m.Height)
}
