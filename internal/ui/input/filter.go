package input

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"winpick/internal/ui/input/types"
)

// editMsgs are the key presses the text input's default key map turns into each edit
var editMsgs = map[types.EditKind]tea.KeyMsg{
	types.EditDeleteCharBackward: {Type: tea.KeyBackspace},
	types.EditDeleteCharForward:  {Type: tea.KeyDelete},
	types.EditDeleteWordBackward: {Type: tea.KeyCtrlW},
	types.EditDeleteWordForward:  {Type: tea.KeyRunes, Runes: []rune{'d'}, Alt: true},
	types.EditDeleteBeforeCursor: {Type: tea.KeyCtrlU},
	types.EditDeleteAfterCursor:  {Type: tea.KeyCtrlK},
	types.EditMoveLeft:           {Type: tea.KeyLeft},
	types.EditMoveRight:          {Type: tea.KeyRight},
	types.EditWordLeft:           {Type: tea.KeyRunes, Runes: []rune{'b'}, Alt: true},
	types.EditWordRight:          {Type: tea.KeyRunes, Runes: []rune{'f'}, Alt: true},
	types.EditLineStart:          {Type: tea.KeyCtrlA},
	types.EditLineEnd:            {Type: tea.KeyCtrlE},
}

// FilterInput owns the filter text and its own cursor.
// Editing is delegated to a bubbles text input.
type FilterInput struct {
	textInput textinput.Model
}

// NewFilterInput creates a focused filter input holding the initial text
func NewFilterInput(initial string) *FilterInput {
	ti := textinput.New()
	ti.Prompt = "" // Prompt is handled by the rendering backend
	ti.KeyMap = textinput.DefaultKeyMap
	ti.Focus()
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.SetValue(initial)
	ti.CursorEnd()

	return &FilterInput{textInput: ti}
}

// Handle applies an edit and reports whether the text changed
func (f *FilterInput) Handle(edit types.EditAction) bool {
	var msg tea.KeyMsg
	if edit.Kind == types.EditInsert {
		if edit.Text == "" {
			return false
		}
		// Paste keeps inserted text from being read as a binding such as "ctrl+a"
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(edit.Text), Paste: true}
	} else {
		m, ok := editMsgs[edit.Kind]
		if !ok {
			return false
		}
		msg = m
	}

	before := f.textInput.Value()
	f.textInput, _ = f.textInput.Update(msg)
	return f.textInput.Value() != before
}

// Content returns the current filter text
func (f *FilterInput) Content() string {
	return f.textInput.Value()
}

// Position returns the cursor position inside the filter text
func (f *FilterInput) Position() int {
	return f.textInput.Position()
}

// SetWidth limits how much of the filter text is visible
func (f *FilterInput) SetWidth(width int) {
	f.textInput.Width = width
}

// View renders the filter text with its cursor
func (f *FilterInput) View() string {
	return f.textInput.View()
}
