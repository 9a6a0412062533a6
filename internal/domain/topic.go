package domain

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	slugDisallowed   = regexp.MustCompile(`[^a-z0-9-]`)
	hyphenRuns       = regexp.MustCompile(`-+`)
	nonAlphanumeric  = regexp.MustCompile(`[^a-z0-9]+`)
	leadTrailHyphens = regexp.MustCompile(`^-+|-+$`)
)

// SlugToQuery converts a topic slug into a search query: lowercased, with
// everything outside [a-z0-9-] removed and hyphen runs collapsed into single
// spaces. "multi-agent-systems" becomes "multi agent systems".
func SlugToQuery(slug string) string {
	q := strings.ToLower(slug)
	q = slugDisallowed.ReplaceAllString(q, "")
	q = hyphenRuns.ReplaceAllString(q, " ")
	return strings.TrimSpace(q)
}

// SlugToTitle converts a topic slug into a display title by capitalizing
// each word of the query form. An empty result falls back to "Topic".
func SlugToTitle(slug string) string {
	query := SlugToQuery(slug)
	if query == "" {
		return "Topic"
	}

	words := strings.Split(query, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// SearchTerms splits a topic slug into the individual lowercase terms used
// for matching. A slug that yields no terms returns an empty slice.
func SearchTerms(slug string) []string {
	query := SlugToQuery(slug)
	if query == "" {
		return nil
	}

	parts := strings.Split(query, " ")
	terms := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			terms = append(terms, p)
		}
	}
	return terms
}

var asciiReplacements = strings.NewReplacer(
	"ß", "ss",
	"æ", "ae",
	"Æ", "ae",
	"ø", "o",
	"Ø", "o",
	"đ", "d",
	"Đ", "d",
)

// ToSlug converts free text into a topic slug: special Latin letters are
// transliterated, diacritics stripped via Unicode decomposition, and any
// remaining non-alphanumeric runs become single hyphens. An empty result
// falls back to "topic".
func ToSlug(text string) string {
	s := asciiReplacements.Replace(text)
	s = norm.NFKD.String(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}

	s = strings.ToLower(b.String())
	s = nonAlphanumeric.ReplaceAllString(s, "-")
	s = leadTrailHyphens.ReplaceAllString(s, "")
	if s == "" {
		return "topic"
	}
	return s
}
