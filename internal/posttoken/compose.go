package posttoken

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// MaxPostLength is the character cap enforced by the compose screen.
const MaxPostLength = 280

// Edit is a text value together with the cursor position that goes with it.
// Cursor counts runes.
type Edit struct {
	Text   string
	Cursor int
}

// InsertSuggestion replaces the last occurrence of word that ends at or
// before cursor with marker+replacement. The returned cursor sits right after
// the inserted replacement. If word is not found the text is returned as is.
func InsertSuggestion(text string, cursor int, word, replacement, marker string) Edit {
	before := prefixRunes(text, cursor)

	idx := strings.LastIndex(before, word)
	if idx < 0 {
		return Edit{Text: text, Cursor: utf8.RuneCountInString(before)}
	}

	head := text[:idx] + marker + replacement
	tail := text[idx+len(word):]
	return Edit{
		Text:   head + tail,
		Cursor: utf8.RuneCountInString(head),
	}
}

// AppendMarker adds marker to the end of text and moves the cursor after it.
func AppendMarker(text, marker string) Edit {
	next := text + marker
	return Edit{Text: next, Cursor: utf8.RuneCountInString(next)}
}

// CharCount describes how much of the post limit text uses.
type CharCount struct {
	Used  int
	Limit int
}

// Counter measures text against limit. A non-positive limit falls back to MaxPostLength.
func Counter(text string, limit int) CharCount {
	if limit <= 0 {
		limit = MaxPostLength
	}
	return CharCount{Used: utf8.RuneCountInString(text), Limit: limit}
}

// Warn reports whether more than 90% of the limit is used.
func (c CharCount) Warn() bool {
	return c.Used*10 > c.Limit*9
}

// Over reports whether the limit is exceeded.
func (c CharCount) Over() bool {
	return c.Used > c.Limit
}

// Label returns the "used/limit" counter text.
func (c CharCount) Label() string {
	return strconv.Itoa(c.Used) + "/" + strconv.Itoa(c.Limit)
}

// AcceptEdit reports whether a compose field should take text.
func AcceptEdit(text string, limit int) bool {
	return !Counter(text, limit).Over()
}

// CanPost reports whether text is non-blank and within limit.
func CanPost(text string, limit int) bool {
	return strings.TrimSpace(text) != "" && AcceptEdit(text, limit)
}
