package domain_test

import (
	"testing"

	"github.com/datacube/topic-search/internal/domain"
)

func makeBuckets(n int) []domain.PeriodBucket {
	buckets := make([]domain.PeriodBucket, n)
	for i := range buckets {
		buckets[i] = domain.PeriodBucket{PeriodID: "2026-kw0" + string(rune('1'+i))}
	}
	return buckets
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name       string
		total      int
		page       int
		wantIDs    int
		wantPage   int
		wantPages  int
		firstIndex int
	}{
		{"first page full", 7, 1, 3, 1, 3, 0},
		{"middle page", 7, 2, 3, 2, 3, 3},
		{"last page partial", 7, 3, 1, 3, 3, 6},
		{"page clamps high", 7, 99, 1, 3, 3, 6},
		{"page clamps low", 7, 0, 3, 1, 3, 0},
		{"exact multiple", 6, 2, 3, 2, 2, 3},
		{"single bucket", 1, 1, 1, 1, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buckets := makeBuckets(tt.total)
			page, info := domain.Paginate(buckets, tt.page, domain.DefaultPageSize)

			if len(page) != tt.wantIDs {
				t.Errorf("len(page) = %d, want %d", len(page), tt.wantIDs)
			}
			if info.Page != tt.wantPage {
				t.Errorf("Page = %d, want %d", info.Page, tt.wantPage)
			}
			if info.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", info.TotalPages, tt.wantPages)
			}
			if info.Total != tt.total {
				t.Errorf("Total = %d, want %d", info.Total, tt.total)
			}
			if len(page) > 0 && page[0].PeriodID != buckets[tt.firstIndex].PeriodID {
				t.Errorf("first bucket = %q, want %q", page[0].PeriodID, buckets[tt.firstIndex].PeriodID)
			}
		})
	}
}

func TestPaginate_EmptyList(t *testing.T) {
	page, info := domain.Paginate(nil, 1, domain.DefaultPageSize)
	if len(page) != 0 {
		t.Errorf("len(page) = %d, want 0", len(page))
	}
	if info.TotalPages != 1 {
		t.Errorf("TotalPages = %d, want 1 for empty list", info.TotalPages)
	}
	if info.Page != 1 {
		t.Errorf("Page = %d, want 1", info.Page)
	}
}

func TestParsePositiveInt(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 1},
		{"1", 1},
		{"42", 42},
		{"0", 1},
		{"-3", 1},
		{"abc", 1},
		{"2.5", 1},
	}
	for _, tt := range tests {
		if got := domain.ParsePositiveInt(tt.raw, 1); got != tt.want {
			t.Errorf("ParsePositiveInt(%q, 1) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}
