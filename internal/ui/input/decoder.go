package input

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"winpick/internal/config"
	"winpick/internal/ui/input/types"
)

var (
	navKeys  = DefaultKeyMap()
	editKeys = DefaultEditKeyMap()
)

// Decode maps a key press to a list action. Vim bindings win over everything when enabled,
// list navigation comes next and any other key is handed to the filter edit decoder.
// The second return value is false when the key means nothing to the prompt.
func Decode(msg tea.KeyMsg, cfg config.SelectConfig) (types.Action, bool) {
	if cfg.VimMode {
		switch {
		case key.Matches(msg, navKeys.VimUp):
			return types.MoveUpAction{}, true
		case key.Matches(msg, navKeys.VimDown):
			return types.MoveDownAction{}, true
		}
	}

	switch {
	case key.Matches(msg, navKeys.Up):
		return types.MoveUpAction{}, true
	case key.Matches(msg, navKeys.Down):
		return types.MoveDownAction{}, true
	case key.Matches(msg, navKeys.PageUp):
		return types.PageUpAction{}, true
	case key.Matches(msg, navKeys.PageDown):
		return types.PageDownAction{}, true
	case key.Matches(msg, navKeys.Home):
		return types.MoveToStartAction{}, true
	case key.Matches(msg, navKeys.End):
		return types.MoveToEndAction{}, true
	}

	edit, ok := DecodeEdit(msg)
	if !ok {
		return nil, false
	}
	return types.FilterEditAction{Edit: edit}, true
}

// DecodeEdit maps a key press to an edit of the filter text
func DecodeEdit(msg tea.KeyMsg) (types.EditAction, bool) {
	switch msg.Type {
	case tea.KeyRunes, tea.KeySpace:
		if !msg.Alt || msg.Paste {
			text := string(msg.Runes)
			if text == "" && msg.Type == tea.KeySpace {
				text = " "
			}
			if text != "" {
				return types.EditAction{Kind: types.EditInsert, Text: text}, true
			}
			return types.EditAction{}, false
		}
	}

	switch {
	case key.Matches(msg, editKeys.DeleteCharBackward):
		return types.EditAction{Kind: types.EditDeleteCharBackward}, true
	case key.Matches(msg, editKeys.DeleteCharForward):
		return types.EditAction{Kind: types.EditDeleteCharForward}, true
	case key.Matches(msg, editKeys.DeleteWordBackward):
		return types.EditAction{Kind: types.EditDeleteWordBackward}, true
	case key.Matches(msg, editKeys.DeleteWordForward):
		return types.EditAction{Kind: types.EditDeleteWordForward}, true
	case key.Matches(msg, editKeys.DeleteBeforeCursor):
		return types.EditAction{Kind: types.EditDeleteBeforeCursor}, true
	case key.Matches(msg, editKeys.DeleteAfterCursor):
		return types.EditAction{Kind: types.EditDeleteAfterCursor}, true
	case key.Matches(msg, editKeys.MoveLeft):
		return types.EditAction{Kind: types.EditMoveLeft}, true
	case key.Matches(msg, editKeys.MoveRight):
		return types.EditAction{Kind: types.EditMoveRight}, true
	case key.Matches(msg, editKeys.WordLeft):
		return types.EditAction{Kind: types.EditWordLeft}, true
	case key.Matches(msg, editKeys.WordRight):
		return types.EditAction{Kind: types.EditWordRight}, true
	case key.Matches(msg, editKeys.LineStart):
		return types.EditAction{Kind: types.EditLineStart}, true
	case key.Matches(msg, editKeys.LineEnd):
		return types.EditAction{Kind: types.EditLineEnd}, true
	}

	return types.EditAction{}, false
}
