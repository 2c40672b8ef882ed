// Package pagination carries offset/limit paging shared by list endpoints.
package pagination

import "errors"

// ErrInvalidPage signals page or limit below one.
var ErrInvalidPage = errors.New("page and limit must be greater or equal to one")

// Page bundles one slice of results with the total unfiltered row count.
// TotalElements comes from a separate count query, so it is only consistent
// with Items when no writes happen between the two reads.
type Page[T any] struct {
	Items         []T   `json:"items"`
	TotalElements int64 `json:"totalElements"`
}

// Request is a validated page/limit pair.
type Request struct {
	Page  int
	Limit int
}

// NewRequest validates raw page/limit values.
func NewRequest(page, limit int) (Request, error) {
	if page < 1 || limit < 1 {
		return Request{}, ErrInvalidPage
	}
	return Request{Page: page, Limit: limit}, nil
}

// Offset converts the one-based page into a row offset.
func (r Request) Offset() int {
	return (r.Page - 1) * r.Limit
}
