package types

import "time"

// Pagination is the metadata accompanying a paged recipe fetch
type Pagination struct {
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	Total       int  `json:"total"`
	TotalPages  int  `json:"totalPages"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

// NewPagination derives the full metadata from a page, limit and total count
func NewPagination(page, limit, total int) Pagination {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	totalPages := (total + limit - 1) / limit
	return Pagination{
		Page:        page,
		Limit:       limit,
		Total:       total,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}

// SearchHistoryItem records one AI-suggestion query and its results
type SearchHistoryItem struct {
	ID        string    `json:"id"`
	Query     string    `json:"query"`
	Recipes   []Recipe  `json:"recipes"`
	Timestamp time.Time `json:"timestamp"`
}
