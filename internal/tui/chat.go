package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ChatMessage is one bubble in the conversation
type ChatMessage struct {
	Text string
	Own  bool
	At   time.Time
}

// chatKeyMap defines key bindings for the chat screen
type chatKeyMap struct {
	Send     key.Binding
	ScrollUp key.Binding
	ScrollDn key.Binding
	Back     key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k chatKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Send, k.ScrollUp, k.ScrollDn, k.Back}
}

// FullHelp returns keybindings for the expanded help view
func (k chatKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Send, k.Back}, {k.ScrollUp, k.ScrollDn}}
}

// ChatModel is the message composer with a scrolling history
type ChatModel struct {
	Messages []ChatMessage
	Input    textinput.Model
	Viewport viewport.Model

	Width  int
	Height int
	Help   help.Model
	Keys   chatKeyMap

	now  func() time.Time
	back bool
}

// NewChatModel creates the chat screen seeded with the welcome messages
func NewChatModel() ChatModel {
	in := textinput.New()
	in.Placeholder = "Type a message..."
	in.Prompt = "> "
	in.Width = 50
	in.Focus()

	start := time.Now()
	welcome := []string{
		"Hi there! This is a chat input demo.",
		"Try typing a message below!",
		"You can send multiple messages",
		"The input field will expand for longer text",
	}
	messages := make([]ChatMessage, len(welcome))
	for i, text := range welcome {
		messages[i] = ChatMessage{Text: text, At: start}
	}

	m := ChatModel{
		Messages: messages,
		Input:    in,
		Viewport: viewport.New(MinTerminalWidth-8, MinTerminalRows-10),
		Help:     help.New(),
		Keys: chatKeyMap{
			Send: key.NewBinding(
				key.WithKeys("enter"),
				key.WithHelp("enter", "send"),
			),
			ScrollUp: key.NewBinding(
				key.WithKeys("pgup"),
				key.WithHelp("pgup", "scroll up"),
			),
			ScrollDn: key.NewBinding(
				key.WithKeys("pgdown"),
				key.WithHelp("pgdn", "scroll down"),
			),
			Back: key.NewBinding(
				key.WithKeys("esc"),
				key.WithHelp("esc", "back"),
			),
		},
		now: time.Now,
	}
	m.syncViewport()
	return m
}

// Init initializes the chat screen
func (m ChatModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model
func (m ChatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.Keys.Back):
			m.back = true
			return m, nil

		case key.Matches(keyMsg, m.Keys.Send):
			m.send()
			return m, nil

		case key.Matches(keyMsg, m.Keys.ScrollUp, m.Keys.ScrollDn):
			var cmd tea.Cmd
			m.Viewport, cmd = m.Viewport.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

// send appends the trimmed input as an own message; blank input is ignored
func (m *ChatModel) send() {
	text := strings.TrimSpace(m.Input.Value())
	if text == "" {
		return
	}
	m.Messages = append(m.Messages, ChatMessage{Text: text, Own: true, At: m.now()})
	m.Input.SetValue("")
	m.syncViewport()
}

func (m *ChatModel) syncViewport() {
	m.Viewport.SetContent(m.renderMessages())
	m.Viewport.GotoBottom()
}

func (m ChatModel) renderMessages() string {
	width := m.Viewport.Width
	bubbleWidth := width * 3 / 4

	lines := make([]string, 0, len(m.Messages))
	for _, msg := range m.Messages {
		style := OtherBubbleStyle
		align := lipgloss.Left
		if msg.Own {
			style = OwnBubbleStyle
			align = lipgloss.Right
		}

		bubble := style.MaxWidth(bubbleWidth).Render(msg.Text)
		stamp := TimestampStyle.Render(msg.At.Format("15:04"))
		block := lipgloss.JoinVertical(align, bubble, stamp)

		lines = append(lines, lipgloss.PlaceHorizontal(width, align, block))
	}
	return strings.Join(lines, "\n")
}

// Resize sets the terminal dimensions
func (m ChatModel) Resize(width, height int) ChatModel {
	m.Width, m.Height = width, height

	m.Viewport.Width = contentWidth(width)
	h := height - 12
	if h < 4 {
		h = 4
	}
	m.Viewport.Height = h
	m.Input.Width = contentWidth(width) - 4

	m.syncViewport()
	return m
}

// IsBackRequested returns true if user wants to go back
func (m ChatModel) IsBackRequested() bool {
	return m.back
}

// View renders the chat screen
func (m ChatModel) View() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		RenderTitle("Chat"),
		m.Viewport.View(),
		"",
		m.Input.View(),
	)
	return RenderApplicationContainer(content, m.Help.View(m.Keys), m.Width, m.Height)
}
