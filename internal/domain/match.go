package domain

import "strings"

// Matchable is implemented by every content entry that can be term-matched.
type Matchable interface {
	MatchFields() []string
}

// MatchesTerms reports whether every term occurs as a substring of the
// entry's combined match fields, case-insensitively. An empty term list
// never matches: a topic without terms has no results by definition.
func MatchesTerms(entry Matchable, terms []string) bool {
	if len(terms) == 0 {
		return false
	}

	haystack := strings.ToLower(strings.Join(entry.MatchFields(), " "))
	for _, term := range terms {
		if !strings.Contains(haystack, strings.ToLower(term)) {
			return false
		}
	}
	return true
}

// filterMatching returns the entries matching all terms, preserving order.
func filterMatching[T Matchable](entries []T, terms []string) []T {
	var out []T
	for _, e := range entries {
		if MatchesTerms(e, terms) {
			out = append(out, e)
		}
	}
	return out
}
