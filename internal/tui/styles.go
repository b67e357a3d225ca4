package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/inputshowcase/internal/posttoken"
	"github.com/muurk/inputshowcase/internal/version"
)

// Application branding constants
const (
	AppName   = "TEXT INPUT SHOWCASE"
	GitHubURL = "github.com/muurk/inputshowcase"
)

// AppVersion returns the application version from the centralized version package
func AppVersion() string {
	return version.Short()
}

// Layout constants for responsive terminal width
const (
	MinTerminalWidth = 72 // Minimum supported terminal width
	MinTerminalRows  = 20
)

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#7D56F4") // Purple
	SecondaryColor = lipgloss.Color("#43BF6D") // Green
	WarningColor   = lipgloss.Color("#FFA500") // Orange
	ErrorColor     = lipgloss.Color("#FF5555") // Red
	HashtagColor   = lipgloss.Color("#4A90E2") // Blue
	MentionColor   = lipgloss.Color("#9B59B6") // Violet

	TextColor      = lipgloss.Color("#FFFFFF") // White
	SubtleColor    = lipgloss.Color("#626262") // Gray
	BorderColor    = lipgloss.Color("#7D56F4") // Purple (same as primary)
	HighlightColor = lipgloss.Color("#43BF6D") // Green (same as secondary)
	BubbleColor    = lipgloss.Color("#3C3C3C") // Chat bubble background
)

// Common styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)

	// Field label (unfocused)
	LabelStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	// Field label (focused)
	FocusedLabelStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true)

	// Supporting text under a field
	SupportStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			PaddingLeft(2)

	// Supporting text in error state
	FieldErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			PaddingLeft(2)

	WarningTextStyle = lipgloss.NewStyle().
				Foreground(WarningColor)

	SuccessTextStyle = lipgloss.NewStyle().
				Foreground(SecondaryColor).
				Bold(true)

	SectionStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Bold(true).
			MarginTop(1)

	// Selected list row
	SelectedRowStyle = lipgloss.NewStyle().
				Foreground(HighlightColor).
				Bold(true)

	RowStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	// Error message box
	ErrorBoxStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ErrorColor).
			Padding(0, 1)

	// Preview box for highlighted posts
	PreviewBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(SubtleColor).
			Padding(0, 1)

	HashtagStyle = lipgloss.NewStyle().
			Foreground(HashtagColor).
			Bold(true)

	MentionStyle = lipgloss.NewStyle().
			Foreground(MentionColor).
			Bold(true)

	// Chat bubbles
	OwnBubbleStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(PrimaryColor).
			Padding(0, 1)

	OtherBubbleStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Background(BubbleColor).
				Padding(0, 1)

	TimestampStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)
)

// RenderTitle renders a title with consistent styling
func RenderTitle(text string) string {
	return TitleStyle.Render(text)
}

// RenderSubtitle renders a subtitle with consistent styling
func RenderSubtitle(text string) string {
	return SubtitleStyle.Render(text)
}

// RenderError renders an error message
func RenderError(text string) string {
	return ErrorBoxStyle.Render("✗ " + text)
}

// RenderSuccess renders a success message
func RenderSuccess(text string) string {
	return SuccessTextStyle.Render("✓ " + text)
}

// styleSpan colors one highlighted piece of a post.
func styleSpan(s posttoken.Span) string {
	switch s.Kind() {
	case posttoken.Hashtag:
		return HashtagStyle.Render(s.Text)
	case posttoken.Mention:
		return MentionStyle.Render(s.Text)
	default:
		return s.Text
	}
}

// BuildHeaderContent creates header content with app name and GitHub URL
func BuildHeaderContent() string {
	left := lipgloss.NewStyle().
		Foreground(TextColor).
		Bold(true).
		Render(AppName + " " + AppVersion())

	right := lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(GitHubURL)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
}

// RenderApplicationContainer is the wrapper for all screens in the application.
// It provides a full-screen bordered panel with the application header and a
// context-sensitive footer.
//
//	func (m Model) View() string {
//	    content := m.buildContent()
//	    helpText := m.Help.View(m.Keys)
//	    return RenderApplicationContainer(content, helpText, m.Width, m.Height)
//	}
func RenderApplicationContainer(content string, footerText string, terminalWidth int, terminalHeight int) string {
	if terminalWidth < MinTerminalWidth {
		terminalWidth = MinTerminalWidth
	}
	if terminalHeight < MinTerminalRows {
		terminalHeight = MinTerminalRows
	}

	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderBottom(true).
		BorderForeground(BorderColor).
		Width(terminalWidth-4).
		Padding(0, 1)

	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderTop(true).
		BorderForeground(BorderColor).
		Foreground(SubtleColor).
		Width(terminalWidth-4).
		Padding(0, 1)

	contentStyle := lipgloss.NewStyle().
		Width(terminalWidth-4).
		Padding(0, 1)

	innerContent := lipgloss.JoinVertical(
		lipgloss.Left,
		headerStyle.Render(BuildHeaderContent()),
		contentStyle.Render(content),
		footerStyle.Render(footerText),
	)

	bordered := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(BorderColor).
		Width(terminalWidth - 2).
		Height(terminalHeight - 2).
		AlignVertical(lipgloss.Top).
		Render(innerContent)

	return lipgloss.Place(
		terminalWidth,
		terminalHeight,
		lipgloss.Left,
		lipgloss.Top,
		bordered,
	)
}

// contentWidth returns the usable width inside the application container.
func contentWidth(terminalWidth int) int {
	if terminalWidth < MinTerminalWidth {
		terminalWidth = MinTerminalWidth
	}
	return terminalWidth - 8
}
