package domain

// PaginationParams carries the page window for list queries.
// Page is 1-based.
type PaginationParams struct {
	Page     int
	PageSize int
}

// Offset returns the number of records to skip for the current page.
func (p PaginationParams) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}
