package domain_test

import (
	"testing"

	"github.com/datacube/topic-search/internal/domain"
)

func TestEntryAnchorID(t *testing.T) {
	tests := []struct {
		name     string
		periodID string
		tag      string
		entryID  string
		want     string
	}{
		{"plain", "2026-kw08", "tech", "item-1", "2026-kw08-tech-item-1"},
		{"uppercase lowered", "2026-kw08", "pm", "Round-A", "2026-kw08-pm-round-a"},
		{"special chars replaced", "2026-02-20", "tips", "tip#1!", "2026-02-20-tips-tip-1-"},
		{"unicode replaced", "2026-kw08", "ma", "übernahme", "2026-kw08-ma--bernahme"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.EntryAnchorID(tt.periodID, tt.tag, tt.entryID)
			if got != tt.want {
				t.Errorf("EntryAnchorID = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEntryAnchorID_UniquePerEntry(t *testing.T) {
	seen := map[string]bool{}
	for _, tag := range []string{domain.TagTech, domain.TagPrimary, domain.TagSecondary, domain.TagMA, domain.TagTips} {
		for _, id := range []string{"a1", "a2", "b1"} {
			anchor := domain.EntryAnchorID("2026-kw08", tag, id)
			if seen[anchor] {
				t.Errorf("duplicate anchor %q", anchor)
			}
			seen[anchor] = true
		}
	}
}

func TestBuildTopicHref(t *testing.T) {
	tests := []struct {
		name string
		lang string
		slug string
		opts domain.HrefOptions
		want string
	}{
		{
			name: "defaults omitted",
			lang: "de", slug: "openai",
			opts: domain.HrefOptions{Page: 1, Section: domain.SectionAll},
			want: "/de/topic/openai",
		},
		{
			name: "page beyond first",
			lang: "en", slug: "openai",
			opts: domain.HrefOptions{Page: 2},
			want: "/en/topic/openai?page=2",
		},
		{
			name: "period and section",
			lang: "de", slug: "openai",
			opts: domain.HrefOptions{Period: "2026-kw08", Section: domain.SectionTips},
			want: "/de/topic/openai?period=2026-kw08&section=tips",
		},
		{
			name: "everything plus anchor",
			lang: "de", slug: "openai",
			opts: domain.HrefOptions{
				Page:    3,
				Period:  "2026-kw08",
				Section: domain.SectionTech,
				Anchor:  "2026-kw08-tech-t1",
			},
			want: "/de/topic/openai?page=3&period=2026-kw08&section=tech#2026-kw08-tech-t1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.BuildTopicHref(tt.lang, tt.slug, tt.opts)
			if got != tt.want {
				t.Errorf("BuildTopicHref = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewTopicQuery(t *testing.T) {
	q := domain.NewTopicQuery("xx", "openai", "bogus", "2026-kw08", "-1")
	if q.Lang != domain.DefaultLanguage {
		t.Errorf("Lang = %q, want default", q.Lang)
	}
	if q.Section != domain.SectionAll {
		t.Errorf("Section = %q, want all", q.Section)
	}
	if q.Page != 1 {
		t.Errorf("Page = %d, want 1", q.Page)
	}
	if q.Period != "2026-kw08" {
		t.Errorf("Period = %q", q.Period)
	}
}
