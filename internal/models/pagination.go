// ===============================
// internal/models/pagination.go - Offset Pagination
// ===============================

package models

const (
	DefaultPageSize = 10
	MaxPageSize     = 20
)

// PageParams carries page-number pagination. Out-of-range values are clamped
// rather than rejected; availability wins over strict input validation.
type PageParams struct {
	Page  int
	Limit int
}

// Normalized returns the params with page forced to >= 1 and limit clamped
// into [1, MaxPageSize]. A zero limit falls back to DefaultPageSize.
func (p PageParams) Normalized() PageParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit == 0 {
		p.Limit = DefaultPageSize
	}
	if p.Limit < 1 {
		p.Limit = 1
	}
	if p.Limit > MaxPageSize {
		p.Limit = MaxPageSize
	}
	return p
}

// Offset returns the row offset for the normalized params.
func (p PageParams) Offset() int {
	n := p.Normalized()
	return (n.Page - 1) * n.Limit
}
