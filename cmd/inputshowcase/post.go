package main

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/muurk/inputshowcase/internal/logging"
	"github.com/muurk/inputshowcase/internal/posttoken"
	"github.com/muurk/inputshowcase/internal/ui"
)

func newPostCmd(opts *rootOptions) *cobra.Command {
	postCmd := &cobra.Command{
		Use:   "post",
		Short: "Inspect social post text",
		Long: `Inspect social post text the way the post composer does.

Hashtags start with '#' and mentions with '@'. Words are split on spaces only.
Cursor positions count characters, not bytes, and default to the end of the text.`,
	}

	postCmd.AddCommand(
		newPostWordCmd(opts),
		newPostHighlightCmd(opts),
		newPostSuggestCmd(opts),
		newPostCountCmd(opts),
	)
	return postCmd
}

// cursorOrEnd returns cursor, or the rune length of text when cursor is negative
func cursorOrEnd(text string, cursor int) int {
	if cursor < 0 {
		return utf8.RuneCountInString(text)
	}
	return cursor
}

func newPostWordCmd(opts *rootOptions) *cobra.Command {
	var cursor int

	cmd := &cobra.Command{
		Use:   "word [text]",
		Short: "Show the word under the cursor and its kind",
		Example: `  inputshowcase post word "hello #andr"
  inputshowcase post word "hi @bo there" --cursor 6`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			pos := cursorOrEnd(text, cursor)
			word := posttoken.CurrentWord(text, pos)

			p := newPrinter(cmd, opts)
			p.PrintHeader("post word", cmd.CommandPath(),
				ui.Detail{Key: "Text", Value: text},
				ui.Detail{Key: "Cursor", Value: strconv.Itoa(pos)},
			)
			p.PrintValue("Current word", word.Text,
				ui.Detail{Key: "Kind", Value: word.Kind.String()},
				ui.Detail{Key: "Suggestions", Value: strconv.FormatBool(posttoken.ShouldShowSuggestions(word))},
			)
			return nil
		},
	}

	cmd.Flags().IntVar(&cursor, "cursor", -1, "Cursor position in characters (default: end of text)")
	return cmd
}

func newPostHighlightCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "highlight [text]",
		Short:   "Split text into plain, hashtag and mention pieces",
		Example: `  inputshowcase post highlight "Loving #Compose with @alice_dev"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			spans := posttoken.Highlight(text)

			p := newPrinter(cmd, opts)
			if p.Plain() {
				for _, s := range spans {
					p.Println(fmt.Sprintf("%s\t%s", s.Kind(), s.Text))
				}
				return nil
			}

			p.PrintHeader("post highlight", cmd.CommandPath())
			p.Println(ui.RenderHighlighted(text))
			p.Newline()
			p.PrintTable(ui.SpanTable(spans))
			return nil
		},
	}
}

func newPostSuggestCmd(opts *rootOptions) *cobra.Command {
	var cursor int

	cmd := &cobra.Command{
		Use:   "suggest [text]",
		Short: "List hashtag or mention suggestions for the word under the cursor",
		Long: `List suggestions for the hashtag or mention under the cursor.

Candidates come from the configuration file (see 'inputshowcase config show').
Suggestions appear once at least one character follows the marker.`,
		Example: `  inputshowcase post suggest "Building for #and"
  inputshowcase post suggest "cc @al"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			reg, err := loadRegistry()
			if err != nil {
				return err
			}

			word := posttoken.CurrentWord(text, cursorOrEnd(text, cursor))
			suggestions := posttoken.Suggest(word, reg.Suggestions.Hashtags, reg.Suggestions.Mentions)
			logging.LogSuggestion(word.Kind.String(), word.Text, len(suggestions))

			p := newPrinter(cmd, opts)
			if p.Plain() {
				for _, s := range suggestions {
					p.Println(word.Kind.Marker() + s)
				}
				return nil
			}

			p.PrintHeader("post suggest", cmd.CommandPath(),
				ui.Detail{Key: "Word", Value: word.Text},
				ui.Detail{Key: "Kind", Value: word.Kind.String()},
			)
			if len(suggestions) == 0 {
				p.Println("No suggestions.")
				return nil
			}
			p.PrintTable(ui.SuggestionTable(word, suggestions))
			return nil
		},
	}

	cmd.Flags().IntVar(&cursor, "cursor", -1, "Cursor position in characters (default: end of text)")
	return cmd
}

func newPostCountCmd(opts *rootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:          "count [text]",
		Short:        "Count characters against the post limit",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			if limit <= 0 {
				reg, err := loadRegistry()
				if err != nil {
					return err
				}
				limit = reg.Limits.Post
			}

			count := posttoken.Counter(text, limit)
			p := newPrinter(cmd, opts)
			details := []ui.Detail{{Key: "Characters", Value: count.Label()}}

			switch {
			case count.Over():
				p.PrintFailure("Post too long", []error{
					fmt.Errorf("%d characters over the %d limit", count.Used-count.Limit, count.Limit),
				})
				return errInvalid
			case !posttoken.CanPost(text, limit):
				p.PrintFailure("Post is empty", []error{fmt.Errorf("nothing to post")})
				return errInvalid
			case count.Warn():
				p.PrintWarning("Close to the limit", details...)
			default:
				p.PrintSuccess("Post fits", details...)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Character limit (default: from config, 280)")
	return cmd
}
