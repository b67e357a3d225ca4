package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/inputshowcase/internal/forms"
	"github.com/muurk/inputshowcase/internal/logging"
)

// Tone selects how supporting text under a field is colored
type Tone int

const (
	ToneNormal Tone = iota
	ToneWarning
	ToneError
)

// Hint is the supporting text shown under a field
type Hint struct {
	Text string
	Tone Tone
}

// FieldSpec describes one input of a form screen
type FieldSpec struct {
	Label       string // Also the field name used in validation errors
	Placeholder string
	CharLimit   int
	Password    bool

	// Accept turns a raw edit into the value the field should hold.
	// Returning false rejects the edit and restores the previous value.
	Accept func(raw string) (string, bool)

	// Hint computes live supporting text from the current value.
	Hint func(value string) Hint
}

// FormSpec describes a complete form screen
type FormSpec struct {
	Title          string
	Subtitle       string
	SubmitLabel    string
	SuccessMessage string
	Fields         []FieldSpec

	// Validate checks the field values keyed by label
	Validate func(values map[string]string) []error
}

// formKeyMap defines key bindings for form screens
type formKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Back   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k formKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Submit, k.Back}
}

// FullHelp returns keybindings for the expanded help view
func (k formKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.Submit, k.Back},
	}
}

// FormModel is a generic multi-field form screen
type FormModel struct {
	Spec   FormSpec
	Inputs []textinput.Model
	Focus  int

	Errors    []error // Result of the last validation
	Attempted bool    // Submit was pressed at least once
	Submitted bool    // Last submit passed validation

	Width  int
	Height int
	Help   help.Model
	Keys   formKeyMap

	back bool
}

// NewFormModel builds a form from spec with the first field focused
func NewFormModel(spec FormSpec) FormModel {
	inputs := make([]textinput.Model, len(spec.Fields))
	for i, f := range spec.Fields {
		in := textinput.New()
		in.Placeholder = f.Placeholder
		in.CharLimit = f.CharLimit
		in.Width = 40
		in.Prompt = "> "
		if f.Password {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '•'
		}
		inputs[i] = in
	}
	if len(inputs) > 0 {
		inputs[0].Focus()
	}

	return FormModel{
		Spec:   spec,
		Inputs: inputs,
		Help:   help.New(),
		Keys: formKeyMap{
			Next: key.NewBinding(
				key.WithKeys("tab", "down"),
				key.WithHelp("tab/↓", "next field"),
			),
			Prev: key.NewBinding(
				key.WithKeys("shift+tab", "up"),
				key.WithHelp("shift+tab/↑", "previous"),
			),
			Submit: key.NewBinding(
				key.WithKeys("ctrl+s"),
				key.WithHelp("ctrl+s", spec.SubmitLabel),
			),
			Back: key.NewBinding(
				key.WithKeys("esc"),
				key.WithHelp("esc", "back"),
			),
		},
	}
}

// Init initializes the form
func (m FormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model
func (m FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.Keys.Back):
			m.back = true
			return m, nil

		case key.Matches(keyMsg, m.Keys.Next):
			return m, m.moveFocus(1)

		case key.Matches(keyMsg, m.Keys.Prev):
			return m, m.moveFocus(-1)

		case key.Matches(keyMsg, m.Keys.Submit):
			m.submit()
			return m, nil

		case keyMsg.Type == tea.KeyEnter:
			// Enter advances, and submits from the last field
			if m.Focus == len(m.Inputs)-1 {
				m.submit()
				return m, nil
			}
			return m, m.moveFocus(1)
		}
	}

	if len(m.Inputs) == 0 {
		return m, nil
	}

	cmd := m.updateFocused(msg)
	return m, cmd
}

// updateFocused forwards msg to the focused input and applies the field's
// Accept rule to any resulting edit.
func (m *FormModel) updateFocused(msg tea.Msg) tea.Cmd {
	in := &m.Inputs[m.Focus]
	spec := m.Spec.Fields[m.Focus]
	prev, prevPos := in.Value(), in.Position()

	var cmd tea.Cmd
	*in, cmd = in.Update(msg)

	raw := in.Value()
	if raw == prev {
		return cmd
	}

	if spec.Accept != nil {
		next, ok := spec.Accept(raw)
		switch {
		case !ok:
			in.SetValue(prev)
			in.SetCursor(prevPos)
			return cmd
		case next != raw:
			in.SetValue(next)
			in.CursorEnd()
		}
	}

	logging.LogFieldEdit(m.Spec.Title, spec.Label, prev, in.Value())

	m.Submitted = false
	if m.Attempted {
		m.Errors = m.validate()
	}
	return cmd
}

func (m *FormModel) moveFocus(delta int) tea.Cmd {
	if len(m.Inputs) == 0 {
		return nil
	}
	m.Inputs[m.Focus].Blur()
	m.Focus = (m.Focus + delta + len(m.Inputs)) % len(m.Inputs)
	return m.Inputs[m.Focus].Focus()
}

func (m *FormModel) submit() {
	m.Attempted = true
	m.Errors = m.validate()
	m.Submitted = forms.CanSubmit(m.Errors)
	logging.LogValidation(m.Spec.Title, m.Errors)
}

func (m FormModel) validate() []error {
	if m.Spec.Validate == nil {
		return nil
	}
	return m.Spec.Validate(m.Values())
}

// Values returns the current field values keyed by label
func (m FormModel) Values() map[string]string {
	values := make(map[string]string, len(m.Inputs))
	for i, f := range m.Spec.Fields {
		values[f.Label] = m.Inputs[i].Value()
	}
	return values
}

// SetValue places value into the field labeled label, applying its Accept rule.
// It reports whether the field exists and took the value.
func (m *FormModel) SetValue(label, value string) bool {
	for i, f := range m.Spec.Fields {
		if f.Label != label {
			continue
		}
		if f.Accept != nil {
			next, ok := f.Accept(value)
			if !ok {
				return false
			}
			value = next
		}
		m.Inputs[i].SetValue(value)
		m.Inputs[i].CursorEnd()
		return true
	}
	return false
}

// IsBackRequested returns true if user wants to go back
func (m FormModel) IsBackRequested() bool {
	return m.back
}

// View renders the form
func (m FormModel) View() string {
	var b strings.Builder

	b.WriteString(RenderTitle(m.Spec.Title))
	b.WriteString("\n")
	if m.Spec.Subtitle != "" {
		b.WriteString(RenderSubtitle(m.Spec.Subtitle))
		b.WriteString("\n\n")
	}

	for i := range m.Spec.Fields {
		b.WriteString(m.renderField(i))
		b.WriteString("\n")
	}

	b.WriteString(m.renderSubmit())

	return RenderApplicationContainer(b.String(), m.Help.View(m.Keys), m.Width, m.Height)
}

func (m FormModel) renderField(i int) string {
	spec := m.Spec.Fields[i]

	label := LabelStyle.Render(spec.Label)
	if i == m.Focus {
		label = FocusedLabelStyle.Render(spec.Label)
	}

	lines := []string{label, m.Inputs[i].View()}
	if hint := m.hintFor(i); hint.Text != "" {
		lines = append(lines, renderHint(hint))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// hintFor prefers a validation error for the field over its live hint
func (m FormModel) hintFor(i int) Hint {
	spec := m.Spec.Fields[i]
	for _, err := range forms.ErrorsFor(m.Errors, spec.Label) {
		fe, ok := err.(*forms.FieldError)
		if !ok {
			continue
		}
		tone := ToneError
		if fe.Type == forms.ErrTypeWarning {
			tone = ToneWarning
		}
		return Hint{Text: fe.Message, Tone: tone}
	}
	if spec.Hint == nil {
		return Hint{}
	}
	return spec.Hint(m.Inputs[i].Value())
}

func renderHint(h Hint) string {
	switch h.Tone {
	case ToneError:
		return FieldErrorStyle.Render(h.Text)
	case ToneWarning:
		return SupportStyle.Foreground(WarningColor).Render(h.Text)
	default:
		return SupportStyle.Render(h.Text)
	}
}

func (m FormModel) renderSubmit() string {
	button := lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Bold(true).
		Render(fmt.Sprintf("[ %s ]", m.Spec.SubmitLabel))

	if !m.Attempted {
		return button
	}

	_, critical := forms.SeparateWarningsAndErrors(m.Errors)
	var status string
	if m.Submitted {
		status = RenderSuccess(m.Spec.SuccessMessage)
	} else {
		status = RenderError(fmt.Sprintf("%d field(s) need attention", len(critical)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, button, status)
}
