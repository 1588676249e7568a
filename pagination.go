package main

import (
	"math"
	"strconv"
)

// Pagination summary for a listing. Total always reflects the whole
// collection, not the filtered subset; historical behavior, kept until
// the API contract says otherwise.
type Pagination struct {
	Total       int64
	TotalPages  int
	HasMore     bool
	CurrentPage int
}

// NewTweetPagination uses round for the page count. User listings use
// ceil instead; the asymmetry is observable in responses and is kept
// verbatim rather than unified.
func NewTweetPagination(total int64, page, limit int) Pagination {
	totalPages := int(math.Round(float64(total) / float64(limit)))
	return Pagination{
		Total:       total,
		TotalPages:  totalPages,
		HasMore:     page < totalPages,
		CurrentPage: page,
	}
}

func NewUserPagination(total int64, page, limit int) Pagination {
	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	return Pagination{
		Total:       total,
		TotalPages:  totalPages,
		HasMore:     page < totalPages,
		CurrentPage: page,
	}
}

// ParsePageLimit reads the pagination window from query values, falling
// back to the defaults for anything absent, malformed or below 1. No
// upper bound is applied to limit.
func ParsePageLimit(pageValue, limitValue string) (int, int) {
	page := DEFAULT_PAGE
	limit := DEFAULT_LIMIT
	if v, err := strconv.Atoi(pageValue); err == nil && v >= 1 {
		page = v
	}
	if v, err := strconv.Atoi(limitValue); err == nil && v >= 1 {
		limit = v
	}
	return page, limit
}

// Offset converts the window to the skip count used by the store.
func Offset(page, limit int) int {
	return (page - 1) * limit
}
