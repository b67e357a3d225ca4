// Package search filters the static example catalogue behind the search screen.
package search

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/samber/lo"
)

// SuggestionType tells the search screen which section a row belongs to.
type SuggestionType int

const (
	Recent SuggestionType = iota
	Popular
	Result
)

// String returns the section heading for the suggestion type
func (t SuggestionType) String() string {
	switch t {
	case Recent:
		return "Recent Searches"
	case Popular:
		return "Popular Searches"
	case Result:
		return "Results"
	default:
		return "Unknown"
	}
}

// Suggestion is one row on the search screen.
type Suggestion struct {
	Text string
	Type SuggestionType
}

// Filter returns the items containing query, ignoring case, in their
// original order. A blank query matches nothing.
func Filter(items []string, query string) []string {
	if strings.TrimSpace(query) == "" {
		return nil
	}
	q := strings.ToLower(query)
	return lo.Filter(items, func(item string, _ int) bool {
		return strings.Contains(strings.ToLower(item), q)
	})
}

// Results wraps the Filter matches as Result suggestions.
func Results(items []string, query string) []Suggestion {
	return lo.Map(Filter(items, query), func(item string, _ int) Suggestion {
		return Suggestion{Text: item, Type: Result}
	})
}

// Idle returns the rows shown while the query is blank: recent searches
// first, then popular ones.
func Idle(recent, popular []string) []Suggestion {
	rows := lo.Map(recent, func(s string, _ int) Suggestion {
		return Suggestion{Text: s, Type: Recent}
	})
	return append(rows, lo.Map(popular, func(s string, _ int) Suggestion {
		return Suggestion{Text: s, Type: Popular}
	})...)
}

// Closest returns up to n items ordered by edit distance to query, compared
// case-insensitively against each item and against each of its words.
// Ties keep the input order. It backs the "did you mean" line shown when
// Filter finds nothing.
func Closest(items []string, query string, n int) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || n <= 0 || len(items) == 0 {
		return nil
	}

	type scored struct {
		item string
		dist int
	}
	ranked := lo.Map(items, func(item string, _ int) scored {
		return scored{item: item, dist: distance(strings.ToLower(item), q)}
	})
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].dist < ranked[j].dist
	})

	if n > len(ranked) {
		n = len(ranked)
	}
	return lo.Map(ranked[:n], func(s scored, _ int) string { return s.item })
}

// distance is the smallest edit distance between q and the whole item or any
// single word of it, so short queries are not penalised by long titles.
func distance(item, q string) int {
	best := levenshtein.ComputeDistance(item, q)
	for _, word := range strings.Fields(item) {
		if d := levenshtein.ComputeDistance(word, q); d < best {
			best = d
		}
	}
	return best
}
