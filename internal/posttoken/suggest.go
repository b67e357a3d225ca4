package posttoken

import (
	"strings"

	"github.com/samber/lo"
)

// FilterSuggestions returns the candidates, in their original order, that
// start with word once its marker is removed. Matching ignores case.
// The candidates slice is never modified.
func FilterSuggestions(candidates []string, word Word) []string {
	prefix := strings.ToLower(strings.TrimPrefix(word.Text, word.Kind.Marker()))

	return lo.Filter(candidates, func(candidate string, _ int) bool {
		return strings.HasPrefix(strings.ToLower(candidate), prefix)
	})
}

// Suggest picks the candidate list matching the word's kind and filters it.
// It returns nil when no suggestions should be shown for word.
func Suggest(word Word, hashtags, mentions []string) []string {
	if !ShouldShowSuggestions(word) {
		return nil
	}

	switch word.Kind {
	case Hashtag:
		return FilterSuggestions(hashtags, word)
	case Mention:
		return FilterSuggestions(mentions, word)
	default:
		return nil
	}
}
