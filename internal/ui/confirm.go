package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Confirm displays a warning line and asks a yes/no question.
// Returns true only for "y" or "yes" (case-insensitive); EOF counts as no.
func Confirm(in io.Reader, out io.Writer, warning, question string) bool {
	warnStyle := lipgloss.NewStyle().
		Foreground(WarningColor).
		Bold(true)

	if warning != "" {
		_, _ = fmt.Fprintln(out, warnStyle.Render(WarningMarker+"  "+warning))
	}
	_, _ = fmt.Fprint(out, question+" [y/N]: ")

	reader := bufio.NewReader(in)
	input, err := reader.ReadString('\n')
	if err != nil && input == "" {
		_, _ = fmt.Fprintln(out)
		return false
	}

	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return true
	default:
		cancelStyle := lipgloss.NewStyle().Foreground(MutedColor)
		_, _ = fmt.Fprintln(out, cancelStyle.Render("  Cancelled."))
		return false
	}
}
