package posttoken

import (
	"strings"
	"unicode/utf8"
)

// Kind classifies a word by its leading marker.
type Kind int

const (
	// Plain is a word without a marker.
	Plain Kind = iota
	// Hashtag is a word starting with '#'.
	Hashtag
	// Mention is a word starting with '@'.
	Mention
)

// Marker characters.
const (
	HashtagMarker = "#"
	MentionMarker = "@"
)

// String returns a human-readable name for the kind
func (k Kind) String() string {
	switch k {
	case Plain:
		return "plain"
	case Hashtag:
		return "hashtag"
	case Mention:
		return "mention"
	default:
		return "unknown"
	}
}

// Marker returns the marker that introduces words of this kind, or "" for Plain.
func (k Kind) Marker() string {
	switch k {
	case Hashtag:
		return HashtagMarker
	case Mention:
		return MentionMarker
	default:
		return ""
	}
}

// Word is the token under the cursor.
type Word struct {
	Text string
	Kind Kind
}

// Classify returns the kind of s based on its first character.
func Classify(s string) Kind {
	switch {
	case strings.HasPrefix(s, HashtagMarker):
		return Hashtag
	case strings.HasPrefix(s, MentionMarker):
		return Mention
	default:
		return Plain
	}
}

// CurrentWord returns the word that ends at cursor.
//
// The text before the cursor is split on ASCII spaces only; the last piece is
// trimmed and classified. cursor counts runes and is clamped to the text.
func CurrentWord(text string, cursor int) Word {
	before := prefixRunes(text, cursor)

	last := before
	if i := strings.LastIndexByte(before, ' '); i >= 0 {
		last = before[i+1:]
	}
	last = strings.TrimSpace(last)

	return Word{Text: last, Kind: Classify(last)}
}

// ShouldShowSuggestions reports whether word is a hashtag or mention with at
// least one character after its marker.
func ShouldShowSuggestions(word Word) bool {
	if word.Kind != Hashtag && word.Kind != Mention {
		return false
	}
	return utf8.RuneCountInString(word.Text) > 1
}

// prefixRunes returns the first n runes of s, clamping n into [0, len].
func prefixRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
