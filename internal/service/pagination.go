package service

import "fmt"

// Paging defaults and bounds shared by every listing.
const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// Page is a validated 1-based page request.
type Page struct {
	Number int
	Limit  int
}

// NewPage validates optional page and limit values, applying defaults for nil.
func NewPage(number, limit *int) (Page, error) {
	p := Page{Number: 1, Limit: DefaultPageLimit}

	if number != nil {
		if *number < 1 {
			return Page{}, newError(ErrCodeInvalidRequest, fmt.Sprintf("page must be at least 1, got %d", *number))
		}
		p.Number = *number
	}

	if limit != nil {
		if *limit < 1 || *limit > MaxPageLimit {
			return Page{}, newError(ErrCodeInvalidRequest,
				fmt.Sprintf("limit must be between 1 and %d, got %d", MaxPageLimit, *limit))
		}
		p.Limit = *limit
	}

	return p, nil
}

// Offset returns the number of rows skipped before this page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Limit
}

// TotalPages returns how many pages of this size hold total rows.
func (p Page) TotalPages(total int) int {
	if total <= 0 {
		return 0
	}
	return (total + p.Limit - 1) / p.Limit
}
