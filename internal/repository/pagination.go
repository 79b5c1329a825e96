package repository

const (
	// DefaultLimit is applied when the caller supplies no page size.
	DefaultLimit = 10
	// MaxLimit bounds the page size regardless of what the caller asks for.
	MaxLimit = 100
)

// Page is a clamped pagination window.
type Page struct {
	Number int
	Limit  int
}

// ClampPage normalizes raw pagination input: page at least 1, limit within
// [1, MaxLimit] with a default when unset or invalid.
func ClampPage(page, limit int) Page {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Page{Number: page, Limit: limit}
}

// Offset returns the row offset for the window.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Limit
}

// PageCount returns ceil(total/limit) for client-side navigation.
func PageCount(total, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := total / limit
	if total%limit != 0 {
		pages++
	}
	return pages
}
