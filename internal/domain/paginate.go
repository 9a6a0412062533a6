package domain

import "strconv"

// DefaultPageSize is the number of period buckets per page.
const DefaultPageSize = 3

// PageInfo describes one page of results.
type PageInfo struct {
	Page       int `json:"page"`
	TotalPages int `json:"totalPages"`
	PageSize   int `json:"pageSize"`
	Total      int `json:"total"`
}

// Paginate slices buckets into the requested page. Total pages is never
// below one, even for an empty list, and an out-of-range request clamps to
// the last page rather than erroring.
func Paginate(buckets []PeriodBucket, page, pageSize int) ([]PeriodBucket, PageInfo) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}

	total := len(buckets)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page > totalPages {
		page = totalPages
	}

	info := PageInfo{
		Page:       page,
		TotalPages: totalPages,
		PageSize:   pageSize,
		Total:      total,
	}

	start := (page - 1) * pageSize
	if start >= total {
		return []PeriodBucket{}, info
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return buckets[start:end], info
}

// ParsePositiveInt parses raw as a positive integer, returning fallback for
// anything empty, malformed, or below one.
func ParsePositiveInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
