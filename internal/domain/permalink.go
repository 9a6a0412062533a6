package domain

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

var anchorDisallowed = regexp.MustCompile(`[^a-zA-Z0-9-]`)

// EntryAnchorID builds the fragment identifier for a single entry:
// period ID, section tag, and entry ID joined with hyphens, with every
// character outside [a-zA-Z0-9-] replaced by a hyphen, lowercased. The
// result is stable for a given input and unique as long as entry IDs are
// unique within a period and section.
func EntryAnchorID(periodID, sectionTag, entryID string) string {
	anchor := periodID + "-" + sectionTag + "-" + entryID
	anchor = anchorDisallowed.ReplaceAllString(anchor, "-")
	return strings.ToLower(anchor)
}

// HrefOptions selects the non-default parts of a topic page URL.
type HrefOptions struct {
	Page    int
	Period  string
	Section Section
	Anchor  string
}

// BuildTopicHref renders a topic page URL. Parameters at their defaults are
// omitted: page one, section "all", and an empty period produce a bare
// path. The anchor, when set, is appended as a fragment.
func BuildTopicHref(lang, topic string, opts HrefOptions) string {
	var b strings.Builder
	b.WriteString("/")
	b.WriteString(url.PathEscape(lang))
	b.WriteString("/topic/")
	b.WriteString(url.PathEscape(topic))

	params := url.Values{}
	if opts.Period != "" {
		params.Set("period", opts.Period)
	}
	if opts.Section != "" && opts.Section != SectionAll {
		params.Set("section", string(opts.Section))
	}
	if opts.Page > 1 {
		params.Set("page", strconv.Itoa(opts.Page))
	}

	if encoded := params.Encode(); encoded != "" {
		b.WriteString("?")
		b.WriteString(encoded)
	}
	if opts.Anchor != "" {
		b.WriteString("#")
		b.WriteString(opts.Anchor)
	}
	return b.String()
}
