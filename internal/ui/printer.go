package ui

import (
	"fmt"
	"io"
	"os"
)

// Printer provides methods for printing UI components to a writer.
// This is the primary way commands should output styled content.
type Printer struct {
	out   io.Writer
	width int
	plain bool
}

// NewPrinter creates a new Printer that writes to the given writer.
// If w is nil, os.Stdout is used.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{
		out:   w,
		width: GetTerminalWidth(),
	}
}

// SetPlain switches the printer to undecorated output for scripts and pipes.
func (p *Printer) SetPlain(plain bool) *Printer {
	p.plain = plain
	return p
}

// Plain reports whether decorations are disabled.
func (p *Printer) Plain() bool {
	return p.plain
}

// Width returns the current terminal width used by this printer
func (p *Printer) Width() int {
	return p.width
}

// Print writes content to the output
func (p *Printer) Print(content string) {
	_, _ = fmt.Fprint(p.out, content)
}

// Println writes content with a newline
func (p *Printer) Println(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}

// Newline prints an empty line
func (p *Printer) Newline() {
	_, _ = fmt.Fprintln(p.out)
}

// PrintHeader prints a command header box. Skipped in plain mode.
func (p *Printer) PrintHeader(title, command string, params ...Detail) {
	if p.plain {
		return
	}
	p.Println(NewHeader(title, command, params...).SetWidth(p.width).Render())
}

// PrintValue prints a single result value. In plain mode only the value is
// written so the output can be piped.
func (p *Printer) PrintValue(title string, value string, details ...Detail) {
	if p.plain {
		p.Println(value)
		return
	}
	all := append([]Detail{{Key: "Result", Value: value}}, details...)
	p.Println(NewSuccessResult(title, all...).SetWidth(p.width).Render())
}

// PrintSuccess prints a success result box
func (p *Printer) PrintSuccess(title string, details ...Detail) {
	if p.plain {
		p.printPlain("ok", title, details)
		return
	}
	p.Println(NewSuccessResult(title, details...).SetWidth(p.width).Render())
}

// PrintWarning prints a warning result box
func (p *Printer) PrintWarning(title string, details ...Detail) {
	if p.plain {
		p.printPlain("warning", title, details)
		return
	}
	p.Println(NewWarningResult(title, details...).SetWidth(p.width).Render())
}

// PrintFailure prints a failure result box listing errs and hints
func (p *Printer) PrintFailure(title string, errs []error, hints ...string) {
	if p.plain {
		p.Println("invalid: " + title)
		for _, err := range errs {
			p.Println("  " + err.Error())
		}
		return
	}
	p.Println(NewFailureResult(title, errs, hints...).SetWidth(p.width).Render())
}

// PrintTable writes a pre-rendered table.
func (p *Printer) PrintTable(rendered string) {
	p.Println(rendered)
}

func (p *Printer) printPlain(status, title string, details []Detail) {
	p.Println(status + ": " + title)
	for _, d := range details {
		p.Println("  " + d.Key + ": " + d.Value)
	}
}
