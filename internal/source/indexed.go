package source

import (
	"fmt"
	"log"
	"sort"
)

// Indexed serves windows from any list addressable by position.
//
// Without a filter windows are read straight through At, so a computed list of millions
// of entries costs one window per fetch. With a filter the matching positions are computed
// once per distinct filter text and kept until the filter changes.
type Indexed[T any] struct {
	n       int
	at      func(int) T
	display func(T) string
	matcher Matcher

	filter  string
	matches []int
	cached  bool
}

// FromSlice creates a source over items. The slice is not copied.
func FromSlice[T any](items []T, display func(T) string, matcher Matcher) *Indexed[T] {
	return FromFunc(len(items), func(i int) T { return items[i] }, display, matcher)
}

// FromFunc creates a source over n options produced on demand by at
func FromFunc[T any](n int, at func(int) T, display func(T) string, matcher Matcher) *Indexed[T] {
	if display == nil {
		display = func(v T) string { return fmt.Sprint(v) }
	}
	if matcher == nil {
		matcher = SubstringMatcher{}
	}
	if n < 0 {
		n = 0
	}
	return &Indexed[T]{
		n:       n,
		at:      at,
		display: display,
		matcher: matcher,
	}
}

// Len returns the number of options before filtering
func (s *Indexed[T]) Len() int {
	return s.n
}

// Fetch implements Fetcher
func (s *Indexed[T]) Fetch(filter string, offset, limit int) ([]T, int, error) {
	if offset < 0 || limit < 0 {
		return nil, 0, fmt.Errorf("%w: offset %d, limit %d", ErrInvalidWindow, offset, limit)
	}

	if filter == "" {
		end := min(offset+limit, s.n)
		items := make([]T, 0, max(0, end-offset))
		for i := offset; i < end; i++ {
			items = append(items, s.at(i))
		}
		return items, s.n, nil
	}

	matches := s.matchesFor(filter)
	total := len(matches)
	end := min(offset+limit, total)
	items := make([]T, 0, max(0, end-offset))
	for i := offset; i < end; i++ {
		items = append(items, s.at(matches[i]))
	}
	return items, total, nil
}

type scored struct {
	index int
	score int
}

// matchesFor returns the positions matching filter, best score first.
// Ties keep list order.
func (s *Indexed[T]) matchesFor(filter string) []int {
	if s.cached && s.filter == filter {
		return s.matches
	}

	var hits []scored
	for i := 0; i < s.n; i++ {
		if score, ok := s.matcher.Match(filter, s.display(s.at(i))); ok {
			hits = append(hits, scored{index: i, score: score})
		}
	}
	sort.SliceStable(hits, func(a, b int) bool {
		return hits[a].score > hits[b].score
	})

	matches := make([]int, len(hits))
	for i, h := range hits {
		matches[i] = h.index
	}

	log.Printf("Filter %q matched %d of %d options", filter, len(matches), s.n)

	s.filter = filter
	s.matches = matches
	s.cached = true
	return matches
}
