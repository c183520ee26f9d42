package pagination

import (
	"strconv"
	"strings"
)

// PageSize is the number of books shown per listing page.
const PageSize = 5

// Cursor is derived from route parameters for a single request.
type Cursor struct {
	PageSize       int
	CurrentPage    int
	TotalPageCount int
}

// New parses a 1-based page number. Missing, malformed and non-positive
// values fall back to page 1.
func New(raw string, pageSize int) Cursor {
	if pageSize < 1 {
		pageSize = PageSize
	}
	page := 1
	if n, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil && n >= 1 {
		page = n
	}
	return Cursor{PageSize: pageSize, CurrentPage: page}
}

// Offset is the number of records skipped before the current page.
func (c Cursor) Offset() int { return (c.CurrentPage - 1) * c.PageSize }

// Limit is the maximum number of records on the current page.
func (c Cursor) Limit() int { return c.PageSize }

// WithTotal fills TotalPageCount from the full matching count.
func (c Cursor) WithTotal(total int) Cursor {
	c.TotalPageCount = TotalPages(total, c.PageSize)
	return c
}

// TotalPages is ceil(total / pageSize); zero records means zero pages.
func TotalPages(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}
