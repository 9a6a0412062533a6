package domain_test

import (
	"reflect"
	"testing"

	"github.com/datacube/topic-search/internal/domain"
)

func TestSlugToQuery(t *testing.T) {
	tests := []struct {
		name string
		slug string
		want string
	}{
		{"simple", "openai", "openai"},
		{"multi word", "multi-agent-systems", "multi agent systems"},
		{"uppercase", "OpenAI", "openai"},
		{"hyphen runs collapse", "gpt--5---turbo", "gpt 5 turbo"},
		{"strips punctuation", "c++!", "c"},
		{"leading trailing hyphens", "-edge-", "edge"},
		{"empty", "", ""},
		{"only punctuation", "!!!", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := domain.SlugToQuery(tt.slug); got != tt.want {
				t.Errorf("SlugToQuery(%q) = %q, want %q", tt.slug, got, tt.want)
			}
		})
	}
}

func TestSlugToTitle(t *testing.T) {
	tests := []struct {
		slug string
		want string
	}{
		{"openai", "Openai"},
		{"multi-agent-systems", "Multi Agent Systems"},
		{"", "Topic"},
		{"---", "Topic"},
	}
	for _, tt := range tests {
		if got := domain.SlugToTitle(tt.slug); got != tt.want {
			t.Errorf("SlugToTitle(%q) = %q, want %q", tt.slug, got, tt.want)
		}
	}
}

func TestSearchTerms(t *testing.T) {
	tests := []struct {
		name string
		slug string
		want []string
	}{
		{"single", "openai", []string{"openai"}},
		{"multiple", "multi-agent-systems", []string{"multi", "agent", "systems"}},
		{"empty slug", "", nil},
		{"punctuation only", "??", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.SearchTerms(tt.slug)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SearchTerms(%q) = %v, want %v", tt.slug, got, tt.want)
			}
		})
	}
}

func TestToSlug(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"plain", "OpenAI", "openai"},
		{"spaces", "Multi Agent Systems", "multi-agent-systems"},
		{"german sharp s", "Straße", "strasse"},
		{"diacritics", "Café Résumé", "cafe-resume"},
		{"nordic", "Søren", "soren"},
		{"punctuation runs", "AI: The Future!!", "ai-the-future"},
		{"empty", "", "topic"},
		{"only symbols", "@#$", "topic"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := domain.ToSlug(tt.text); got != tt.want {
				t.Errorf("ToSlug(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestSlugQueryRoundTrip(t *testing.T) {
	// A slug generated from text must parse back to usable search terms.
	slug := domain.ToSlug("Künstliche Intelligenz")
	if slug != "kunstliche-intelligenz" {
		t.Fatalf("ToSlug = %q", slug)
	}
	terms := domain.SearchTerms(slug)
	if len(terms) != 2 {
		t.Fatalf("SearchTerms(%q) = %v, want 2 terms", slug, terms)
	}
}
