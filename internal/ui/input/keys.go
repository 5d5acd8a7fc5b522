package input

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the list navigation and prompt control bindings.
// It implements help.KeyMap so the help bubble can render it.
type KeyMap struct {
	VimUp    key.Binding
	VimDown  key.Binding
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	Submit   key.Binding
	Cancel   key.Binding
	Help     key.Binding
}

// DefaultKeyMap returns the bindings used by the prompt
func DefaultKeyMap() KeyMap {
	return KeyMap{
		VimUp: key.NewBinding(
			key.WithKeys("k"),
			key.WithHelp("k", "up (vim)"),
		),
		VimDown: key.NewBinding(
			key.WithKeys("j"),
			key.WithHelp("j", "down (vim)"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑/ctrl+p", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓/ctrl+n", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "page down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "first"),
		),
		End: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "last"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "cancel"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "keys"),
		),
	}
}

// ForConfig disables the vim bindings when vim mode is off
func (k KeyMap) ForConfig(vimMode bool) KeyMap {
	k.VimUp.SetEnabled(vimMode)
	k.VimDown.SetEnabled(vimMode)
	return k
}

// ShortHelp returns the bindings shown in the one-line help
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Submit, k.Cancel, k.Help}
}

// FullHelp returns every binding grouped by column
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.VimUp, k.VimDown},
		{k.PageUp, k.PageDown, k.Home, k.End},
		{k.Submit, k.Cancel, k.Help},
	}
}

// EditKeyMap holds the filter text editing bindings
type EditKeyMap struct {
	DeleteCharBackward key.Binding
	DeleteCharForward  key.Binding
	DeleteWordBackward key.Binding
	DeleteWordForward  key.Binding
	DeleteBeforeCursor key.Binding
	DeleteAfterCursor  key.Binding
	MoveLeft           key.Binding
	MoveRight          key.Binding
	WordLeft           key.Binding
	WordRight          key.Binding
	LineStart          key.Binding
	LineEnd            key.Binding
}

// DefaultEditKeyMap returns the filter editing bindings
func DefaultEditKeyMap() EditKeyMap {
	return EditKeyMap{
		DeleteCharBackward: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete char")),
		DeleteCharForward:  key.NewBinding(key.WithKeys("delete", "ctrl+d"), key.WithHelp("del", "delete next char")),
		DeleteWordBackward: key.NewBinding(key.WithKeys("alt+backspace", "ctrl+w"), key.WithHelp("ctrl+w", "delete word")),
		DeleteWordForward:  key.NewBinding(key.WithKeys("alt+delete", "alt+d"), key.WithHelp("alt+d", "delete next word")),
		DeleteBeforeCursor: key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "delete to start")),
		DeleteAfterCursor:  key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "delete to end")),
		MoveLeft:           key.NewBinding(key.WithKeys("left", "ctrl+b"), key.WithHelp("←", "cursor left")),
		MoveRight:          key.NewBinding(key.WithKeys("right", "ctrl+f"), key.WithHelp("→", "cursor right")),
		WordLeft:           key.NewBinding(key.WithKeys("alt+left", "ctrl+left", "alt+b"), key.WithHelp("alt+←", "word left")),
		WordRight:          key.NewBinding(key.WithKeys("alt+right", "ctrl+right", "alt+f"), key.WithHelp("alt+→", "word right")),
		LineStart:          key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "filter start")),
		LineEnd:            key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "filter end")),
	}
}

// FullHelp returns the editing bindings grouped by column
func (k EditKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.MoveLeft, k.MoveRight, k.WordLeft, k.WordRight, k.LineStart, k.LineEnd},
		{k.DeleteCharBackward, k.DeleteCharForward, k.DeleteWordBackward, k.DeleteWordForward, k.DeleteBeforeCursor, k.DeleteAfterCursor},
	}
}
