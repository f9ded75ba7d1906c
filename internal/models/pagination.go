package models

import "math"

const (
	DefaultPageLimit = 6
	MaxPageLimit     = 100
)

// PageMeta describes one page of a paginated listing
type PageMeta struct {
	TotalItems   int64 `json:"totalItems"`
	TotalPages   int   `json:"totalPages"`
	CurrentPage  int   `json:"currentPage"`
	Limit        int   `json:"limit"`
	NextPage     *int  `json:"nextPage,omitempty"`
	PreviousPage *int  `json:"previousPage,omitempty"`
}

// ClampPage normalizes page and limit: page is floored at 1, limit defaults
// when unset and is capped at MaxPageLimit.
func ClampPage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return page, limit
}

// NewPageMeta builds page metadata for a listing of total items
func NewPageMeta(total int64, page, limit int) PageMeta {
	meta := PageMeta{
		TotalItems:  total,
		TotalPages:  int(math.Ceil(float64(total) / float64(limit))),
		CurrentPage: page,
		Limit:       limit,
	}
	if int64(page*limit) < total {
		next := page + 1
		meta.NextPage = &next
	}
	if page > 1 {
		prev := page - 1
		meta.PreviousPage = &prev
	}
	return meta
}
