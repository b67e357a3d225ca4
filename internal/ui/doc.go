// Package ui provides terminal output components for the inputshowcase CLI.
//
// This package uses Lipgloss to render styled boxes and go-pretty to render
// tables. Unlike the interactive TUI, these components follow a "run once and
// exit" pattern: they render a result and return.
//
// # Components
//
//   - Header: command banner showing operation name and parameters
//   - Result: success, failure and warning boxes with ordered details
//   - Tables: token, suggestion and search tables
//   - Printer: writes the above to an io.Writer, or plain lines when
//     output is not a terminal
//
// Example:
//
//	p := ui.NewPrinter(os.Stdout).SetPlain(!ui.IsTerminal(os.Stdout))
//	p.PrintValue("Formatted card number", cardformat.FormatCardNumber(input),
//	    ui.Detail{Key: "Digits", Value: "16"})
//
// # Logging Integration
//
// Logging is controlled via INPUTSHOWCASE_LOG_LEVEL and written to stderr,
// so the curated output on stdout stays clean.
package ui
