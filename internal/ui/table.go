package ui

import (
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/muurk/inputshowcase/internal/posttoken"
	"github.com/muurk/inputshowcase/internal/search"
)

// StyleSpan colors a highlighted post piece for the terminal.
func StyleSpan(s posttoken.Span) string {
	switch s.Kind() {
	case posttoken.Hashtag:
		return HashtagStyle.Render(s.Text)
	case posttoken.Mention:
		return MentionStyle.Render(s.Text)
	default:
		return s.Text
	}
}

// RenderHighlighted returns text with hashtags and mentions colored.
func RenderHighlighted(text string) string {
	return posttoken.Render(posttoken.Highlight(text), StyleSpan)
}

func newTable(title string) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.Style().Title.Align = text.AlignLeft
	if title != "" {
		t.SetTitle(title)
	}
	return t
}

// SpanTable renders one row per highlighted piece of a post.
// Empty pieces from consecutive spaces are shown as "(empty)".
func SpanTable(spans []posttoken.Span) string {
	t := newTable("Tokens")
	t.AppendHeader(table.Row{"#", "Text", "Kind", "Runes"})
	for i, s := range spans {
		shown := s.Text
		if shown == "" {
			shown = "(empty)"
		}
		t.AppendRow(table.Row{i + 1, shown, s.Kind().String(), len([]rune(s.Text))})
	}
	t.AppendFooter(table.Row{"", "", "Total", len(spans)})
	return t.Render()
}

// SuggestionTable renders suggestion candidates with their marker applied.
func SuggestionTable(word posttoken.Word, suggestions []string) string {
	t := newTable("Suggestions for " + strconv.Quote(word.Text))
	t.AppendHeader(table.Row{"#", "Insert"})
	for i, s := range suggestions {
		t.AppendRow(table.Row{i + 1, word.Kind.Marker() + s})
	}
	return t.Render()
}

// SearchTable renders search rows grouped under their section heading.
func SearchTable(rows []search.Suggestion) string {
	t := newTable("")
	t.AppendHeader(table.Row{"Section", "Item"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, AutoMerge: true},
	})
	for _, r := range rows {
		t.AppendRow(table.Row{r.Type.String(), r.Text})
	}
	return t.Render()
}

// ListTable renders a titled single-column list.
func ListTable(title string, items []string) string {
	t := newTable(title)
	for _, item := range items {
		t.AppendRow(table.Row{strings.TrimSpace(item)})
	}
	return t.Render()
}
