package models

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// PageRequest is a requested pagination window.
type PageRequest struct {
	Page int
	Size int
}

// Normalize clamps non-positive or missing values to the defaults so a bad
// query string can never turn into a negative offset.
func (p PageRequest) Normalize() PageRequest {
	if p.Page <= 0 {
		p.Page = DefaultPage
	}
	if p.Size <= 0 {
		p.Size = DefaultPageSize
	}
	return p
}

// Offset returns the row offset of the window.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Size
}

// Page is the paged list envelope: total count plus the requested window.
type Page[T any] struct {
	TotalItems  int `json:"totalItems"`
	TotalPages  int `json:"totalPages"`
	CurrentPage int `json:"currentPage"`
	Items       []T `json:"items"`
}

// NewPage wraps items with pagination metadata for the given window.
func NewPage[T any](items []T, total int, req PageRequest) Page[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := (total + req.Size - 1) / req.Size
	return Page[T]{
		TotalItems:  total,
		TotalPages:  totalPages,
		CurrentPage: req.Page,
		Items:       items,
	}
}
