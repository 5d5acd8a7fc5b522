package source

import (
	"fmt"
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"
)

type fetchKey struct {
	filter string
	offset int
	limit  int
}

type fetchResult[T any] struct {
	items []T
	total int
}

// Cached remembers recent windows of another fetcher.
// Hits hand out copies, so callers may modify what they get back.
type Cached[T any] struct {
	next  Fetcher[T]
	cache *lru.Cache[fetchKey, fetchResult[T]]
}

// NewCached wraps next with an LRU cache holding up to size windows
func NewCached[T any](next Fetcher[T], size int) (*Cached[T], error) {
	cache, err := lru.New[fetchKey, fetchResult[T]](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create fetch cache: %w", err)
	}
	return &Cached[T]{next: next, cache: cache}, nil
}

// Fetch implements Fetcher. Errors are never cached.
func (c *Cached[T]) Fetch(filter string, offset, limit int) ([]T, int, error) {
	key := fetchKey{filter: filter, offset: offset, limit: limit}
	if res, ok := c.cache.Get(key); ok {
		return slices.Clone(res.items), res.total, nil
	}

	items, total, err := c.next.Fetch(filter, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	c.cache.Add(key, fetchResult[T]{items: slices.Clone(items), total: total})
	return items, total, nil
}

// Len returns the number of cached windows
func (c *Cached[T]) Len() int {
	return c.cache.Len()
}

// Purge drops every cached window
func (c *Cached[T]) Purge() {
	c.cache.Purge()
}
