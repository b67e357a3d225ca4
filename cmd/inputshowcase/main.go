// Inputshowcase is a terminal showcase of text input patterns.
//
// It runs an interactive TUI with one screen per input scenario (checkout
// card fields, contact details, a social post composer with hashtag and
// mention suggestions, search, chat and clipboard handling), and exposes the
// same formatting and validation rules as scriptable commands.
//
// Usage:
//
//	inputshowcase [command] [flags]
//
// Running without arguments launches the interactive showcase.
// See 'inputshowcase --help' for available commands.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
