package posttoken

import (
	"strings"

	"github.com/samber/lo"
)

// Span is one space-delimited piece of a post, tagged for styling.
type Span struct {
	Text    string
	Hashtag bool
	Mention bool
}

// Kind returns the classification carried by the span.
func (s Span) Kind() Kind {
	switch {
	case s.Hashtag:
		return Hashtag
	case s.Mention:
		return Mention
	default:
		return Plain
	}
}

// Highlight splits text on single spaces and tags every piece.
// Joining the span texts with " " reproduces text exactly, empty pieces
// from consecutive spaces included.
func Highlight(text string) []Span {
	return lo.Map(strings.Split(text, " "), func(piece string, _ int) Span {
		kind := Classify(piece)
		return Span{
			Text:    piece,
			Hashtag: kind == Hashtag,
			Mention: kind == Mention,
		}
	})
}

// Join reassembles spans produced by Highlight.
func Join(spans []Span) string {
	return strings.Join(lo.Map(spans, func(s Span, _ int) string { return s.Text }), " ")
}

// Render joins spans with single spaces, passing each piece through style.
// The presentation layer supplies style to colour hashtags and mentions.
func Render(spans []Span, style func(Span) string) string {
	var b strings.Builder
	for i, s := range spans {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(style(s))
	}
	return b.String()
}
