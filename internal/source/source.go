// Package source provides the option sources a select prompt reads its list from.
//
// A source is asked for one window at a time, so lists that are huge or computed on demand
// never have to be held in memory.
package source

import "errors"

// ErrInvalidWindow is returned when a fetch asks for a negative offset or limit
var ErrInvalidWindow = errors.New("offset and limit must not be negative")

// Fetcher returns the options matching filter in [offset, offset+limit) together with
// the total number of matching options. The returned slice is owned by the caller.
// Fetching past the end returns an empty slice and the real total.
type Fetcher[T any] interface {
	Fetch(filter string, offset, limit int) ([]T, int, error)
}

// FetchFunc adapts a plain function to the Fetcher interface
type FetchFunc[T any] func(filter string, offset, limit int) ([]T, int, error)

// Fetch calls f
func (f FetchFunc[T]) Fetch(filter string, offset, limit int) ([]T, int, error) {
	return f(filter, offset, limit)
}
