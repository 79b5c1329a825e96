package dto

import "github.com/spec-kit/agrilink/internal/repository"

// Pagination is the navigation block returned with every list response.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// NewPagination builds the block from a clamped page and total count.
func NewPagination(page repository.Page, total int) Pagination {
	clamped := repository.ClampPage(page.Number, page.Limit)
	return Pagination{
		Page:  clamped.Number,
		Limit: clamped.Limit,
		Total: total,
		Pages: repository.PageCount(total, clamped.Limit),
	}
}

// ListResponse is the envelope for paginated listings.
type ListResponse struct {
	Items      any        `json:"items"`
	Pagination Pagination `json:"pagination"`
}
