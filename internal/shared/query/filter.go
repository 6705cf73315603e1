package query

import "github.com/tripline/tripline/internal/shared/constants"

// PageFilter is a 1-based page request.
type PageFilter struct {
	Page     int
	PageSize int
}

func (f PageFilter) Normalize() PageFilter {
	if f.Page < 1 {
		f.Page = constants.DefaultPage
	}
	if f.PageSize < 1 {
		f.PageSize = constants.DefaultPageSize
	}
	if f.PageSize > constants.MaxPageSize {
		f.PageSize = constants.MaxPageSize
	}
	return f
}

func (f PageFilter) Offset() int {
	n := f.Normalize()
	return (n.Page - 1) * n.PageSize
}

func (f PageFilter) Limit() int {
	return f.Normalize().PageSize
}
