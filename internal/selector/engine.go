// Package selector implements the windowed selection engine behind the select prompt.
//
// The engine never holds more than one window of options. It tracks the cursor and the
// window offset over the logical list and asks its source for a fresh window after every
// change.
package selector

import (
	"fmt"
	"log"
	"slices"

	"winpick/internal/config"
	"winpick/internal/domain"
	"winpick/internal/source"
	"winpick/internal/ui/input/types"
)

// Result reports whether a transition changed anything visible
type Result int

const (
	Clean Result = iota
	NeedsRedraw
)

func (r Result) String() string {
	if r == NeedsRedraw {
		return "NeedsRedraw"
	}
	return "Clean"
}

// Direction of a cursor move
type Direction int

const (
	Up Direction = iota
	Down
)

// FilterText is the editable filter the engine reads its filter string from
type FilterText interface {
	Handle(edit types.EditAction) bool
	Content() string
}

// Engine owns the cursor, the window and the fetched options of one prompt
type Engine[T any] struct {
	fetcher source.Fetcher[T]
	input   FilterText
	window  window
	items   []T
}

// New creates an engine showing cfg.PageSize rows. Setup must be called before the first render.
func New[T any](cfg config.SelectConfig, startingCursor int, fetcher source.Fetcher[T], input FilterText) *Engine[T] {
	length := max(cfg.PageSize, 1)
	startingCursor = max(startingCursor, 0)

	return &Engine[T]{
		fetcher: fetcher,
		input:   input,
		window: window{
			offset: startingCursor,
			length: length,
			cursor: startingCursor,
		},
	}
}

// Setup performs the initial fetch
func (e *Engine[T]) Setup() error {
	return e.refetch()
}

// Cursor returns the logical index of the highlighted option
func (e *Engine[T]) Cursor() int { return e.window.cursor }

// Offset returns the logical index of the first visible option
func (e *Engine[T]) Offset() int { return e.window.offset }

// Total returns the number of options matching the filter
func (e *Engine[T]) Total() int { return e.window.total }

// WindowLength returns the number of visible rows
func (e *Engine[T]) WindowLength() int { return e.window.length }

// Filter returns the current filter text
func (e *Engine[T]) Filter() string { return e.input.Content() }

// Handle applies an action and refetches when the window may have changed
func (e *Engine[T]) Handle(action types.Action) (Result, error) {
	var res Result

	switch a := action.(type) {
	case types.MoveUpAction:
		res = e.MoveCursor(Up, 1, true)
	case types.MoveDownAction:
		res = e.MoveCursor(Down, 1, true)
	case types.PageUpAction:
		res = e.MoveCursor(Up, e.window.length, true)
	case types.PageDownAction:
		res = e.MoveCursor(Down, e.window.length, true)
	case types.MoveToStartAction:
		res = e.SetCursor(0)
	case types.MoveToEndAction:
		if e.window.total > 0 {
			res = e.SetCursor(e.window.total - 1)
		}
	case types.FilterEditAction:
		if !e.input.Handle(a.Edit) {
			return Clean, nil
		}
		if err := e.refetch(); err != nil {
			return NeedsRedraw, err
		}
		return NeedsRedraw, nil
	default:
		return Clean, nil
	}

	if err := e.refetch(); err != nil {
		return res, err
	}
	return res, nil
}

// MoveCursor moves the cursor by qty positions. With wrap the move is taken modulo the
// total, otherwise the cursor stops at the first or last option.
func (e *Engine[T]) MoveCursor(dir Direction, qty int, wrap bool) Result {
	total := e.window.total
	if total == 0 {
		return Clean
	}
	qty %= total
	cur := e.window.cursor

	var next int
	switch dir {
	case Up:
		if wrap {
			next = ((cur-qty)%total + total) % total
		} else {
			next = max(cur-qty, 0)
		}
	default:
		if wrap {
			next = (cur + qty) % total
		} else {
			next = min(cur+qty, total-1)
		}
	}

	return e.SetCursor(next)
}

// SetCursor highlights logical index i and scrolls the window to show it
func (e *Engine[T]) SetCursor(i int) Result {
	if i == e.window.cursor {
		return Clean
	}
	e.window.cursor = i
	e.window.offset = e.window.offsetFor(i)
	return NeedsRedraw
}

// Submit removes the highlighted option from the window and returns it with its logical index
func (e *Engine[T]) Submit() (domain.ListOption[T], bool) {
	local, ok := e.highlighted()
	if !ok {
		return domain.ListOption[T]{}, false
	}

	value := e.items[local]
	e.items = slices.Delete(e.items, local, local+1)
	return domain.NewListOption(e.window.offset+local, value), true
}

// highlighted returns the position of the highlighted option in the fetched slice
func (e *Engine[T]) highlighted() (int, bool) {
	local := e.window.cursor - e.window.offset
	if local < 0 || local >= len(e.items) {
		return 0, false
	}
	return local, true
}

// refetch reloads the window for the current filter and repairs cursor and offset
func (e *Engine[T]) refetch() error {
	filter := e.input.Content()
	if err := e.fetch(filter); err != nil {
		return err
	}

	e.window.cursor = e.window.clampCursor()
	offset := e.window.offsetFor(e.window.cursor)
	if offset == e.window.offset {
		return nil
	}

	// The clamp moved the window, the fetched slice no longer lines up with it
	e.window.offset = offset
	if e.window.total == 0 {
		e.items = nil
		return nil
	}
	if err := e.fetch(filter); err != nil {
		return err
	}
	e.window.cursor = e.window.clampCursor()
	return nil
}

func (e *Engine[T]) fetch(filter string) error {
	items, total, err := e.fetcher.Fetch(filter, e.window.offset, e.window.length)
	if err != nil {
		log.Printf("Fetch failed for filter %q at offset %d: %v", filter, e.window.offset, err)
		return fmt.Errorf("fetch options: %w", err)
	}
	if len(items) > e.window.length {
		items = items[:e.window.length]
	}
	e.items = items
	e.window.total = max(total, 0)
	return nil
}
