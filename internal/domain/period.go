// Package domain holds the core types and pure logic for topic search:
// period identifiers, topic slugs, term matching, bucket construction,
// section projection, pagination, and permalinks.
package domain

import (
	"regexp"
	"strings"
	"time"
)

// Period identifier formats. Weekly IDs look like "2026-kw08", daily IDs
// like "2026-02-20".
var (
	weeklyIDPattern = regexp.MustCompile(`^\d{4}-kw\d{2}$`)
	dailyIDPattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// Day is a single daily edition inside a week.
type Day struct {
	ID string `json:"id"`
}

// Week is one entry of the period catalog as served by the content hub.
type Week struct {
	ID      string `json:"id"`
	Current bool   `json:"current,omitempty"`
	Days    []Day  `json:"days,omitempty"`
}

// WeeksDocument is the catalog payload shape.
type WeeksDocument struct {
	Weeks []Week `json:"weeks"`
}

// IsWeeklyID reports whether id is a weekly period identifier.
func IsWeeklyID(id string) bool {
	return weeklyIDPattern.MatchString(id)
}

// IsDailyID reports whether id is a daily period identifier.
func IsDailyID(id string) bool {
	return dailyIDPattern.MatchString(id)
}

// IsValidPeriodID reports whether id is a well-formed weekly or daily
// period identifier.
func IsValidPeriodID(id string) bool {
	return IsWeeklyID(id) || IsDailyID(id)
}

var englishMonths = [...]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// PeriodLabel renders a human-readable label for a period ID. Weekly IDs
// become "KW 08"; daily IDs become "20.02.2026" for German and "Feb 20,
// 2026" for every other language. Malformed IDs are returned unchanged.
func PeriodLabel(id, lang string) string {
	if IsWeeklyID(id) {
		return "KW " + strings.TrimPrefix(id[strings.Index(id, "-")+1:], "kw")
	}
	if !IsDailyID(id) {
		return id
	}

	t, err := time.Parse("2006-01-02", id)
	if err != nil {
		return id
	}
	if lang == "de" {
		return t.Format("02.01.2006")
	}
	return englishMonths[t.Month()-1] + " " + t.Format("2, 2006")
}
