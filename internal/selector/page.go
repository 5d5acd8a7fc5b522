package selector

import "winpick/internal/domain"

// Page describes what a rendering backend should draw for the current window
type Page[T any] struct {
	First  bool                   // the window starts at the first option
	Last   bool                   // the window reaches the last option
	Items  []domain.ListOption[T] // visible options tagged with their logical index
	Cursor int                    // position of the highlighted option in Items, -1 when none
	Total  int                    // options matching the filter
}

// Highlighted returns the highlighted option, if any
func (p Page[T]) Highlighted() (domain.ListOption[T], bool) {
	if p.Cursor < 0 || p.Cursor >= len(p.Items) {
		return domain.ListOption[T]{}, false
	}
	return p.Items[p.Cursor], true
}

// Page projects the engine state into a page
func (e *Engine[T]) Page() Page[T] {
	w := e.window
	items := make([]domain.ListOption[T], len(e.items))
	for i, v := range e.items {
		items[i] = domain.NewListOption(w.offset+i, v)
	}

	cursor := -1
	if local, ok := e.highlighted(); ok {
		cursor = local
	}

	return Page[T]{
		First:  w.offset == 0,
		Last:   w.offset+w.length >= w.total,
		Items:  items,
		Cursor: cursor,
		Total:  w.total,
	}
}
