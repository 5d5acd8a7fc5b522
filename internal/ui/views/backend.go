package views

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"winpick/internal/selector"
)

const (
	defaultWidth = 80

	cursorMark = ">"
	upMark     = "↑"
	downMark   = "↓"
	emptyText  = "No matching options"
)

// Backend draws one pass of the select prompt. The calls come in the order
// RenderSelectPrompt, RenderOptions and, when there is one, RenderHelpMessage.
type Backend[T any] interface {
	RenderSelectPrompt(message, input string) error
	RenderOptions(page selector.Page[T]) error
	RenderHelpMessage(text string) error
}

// FrameBackend collects a render pass into a single string frame
type FrameBackend[T any] struct {
	styles  *Styles
	display func(T) string
	width   int
	frame   strings.Builder
}

// NewFrameBackend creates a backend that shows options with display
func NewFrameBackend[T any](styles *Styles, display func(T) string) *FrameBackend[T] {
	if styles == nil {
		styles = NewStyles()
	}
	if display == nil {
		display = func(v T) string { return fmt.Sprint(v) }
	}
	return &FrameBackend[T]{
		styles:  styles,
		display: display,
	}
}

// SetWidth sets the terminal width option lines are truncated to
func (b *FrameBackend[T]) SetWidth(width int) {
	b.width = width
}

func (b *FrameBackend[T]) termWidth() int {
	if b.width <= 0 {
		return defaultWidth
	}
	return b.width
}

// RenderSelectPrompt writes the message line with the filter text
func (b *FrameBackend[T]) RenderSelectPrompt(message, input string) error {
	b.frame.WriteString(b.styles.Prompt.Render("?"))
	b.frame.WriteString(" ")
	b.frame.WriteString(b.styles.Message.Render(message))
	b.frame.WriteString(" ")
	b.frame.WriteString(input)
	b.frame.WriteString("\n")
	return nil
}

// RenderOptions writes the visible options, the scroll hints and the position counter
func (b *FrameBackend[T]) RenderOptions(page selector.Page[T]) error {
	if len(page.Items) == 0 {
		b.frame.WriteString(b.styles.Empty.Render(emptyText))
		b.frame.WriteString("\n")
		return nil
	}

	// mark column plus one space
	textWidth := max(b.termWidth()-2, 1)
	last := len(page.Items) - 1

	for i, item := range page.Items {
		text := runewidth.Truncate(b.display(item.Value), textWidth, "…")

		var mark string
		switch {
		case i == page.Cursor:
			mark = b.styles.Cursor.Render(cursorMark)
		case i == 0 && !page.First:
			mark = b.styles.Scroll.Render(upMark)
		case i == last && !page.Last:
			mark = b.styles.Scroll.Render(downMark)
		default:
			mark = " "
		}

		style := b.styles.Option
		if i == page.Cursor {
			style = b.styles.Highlight
		}

		b.frame.WriteString(mark)
		b.frame.WriteString(" ")
		b.frame.WriteString(style.Render(text))
		b.frame.WriteString("\n")
	}

	if highlighted, ok := page.Highlighted(); ok && (!page.First || !page.Last) {
		b.frame.WriteString("  ")
		b.frame.WriteString(b.styles.Counter.Render(fmt.Sprintf("%d/%d", highlighted.Index+1, page.Total)))
		b.frame.WriteString("\n")
	}

	return nil
}

// RenderHelpMessage writes the help line
func (b *FrameBackend[T]) RenderHelpMessage(text string) error {
	b.frame.WriteString(b.styles.Help.Render("[" + text + "]"))
	b.frame.WriteString("\n")
	return nil
}

// Frame returns everything rendered since the last call and starts a new frame
func (b *FrameBackend[T]) Frame() string {
	s := b.frame.String()
	b.frame.Reset()
	return s
}
