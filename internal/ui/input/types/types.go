package types

// Action represents a semantic event decoded from a key press
type Action interface {
	Type() string
}

// EditKind identifies an edit on the filter text
type EditKind int

const (
	EditInsert EditKind = iota
	EditDeleteCharBackward
	EditDeleteCharForward
	EditDeleteWordBackward
	EditDeleteWordForward
	EditDeleteBeforeCursor
	EditDeleteAfterCursor
	EditMoveLeft
	EditMoveRight
	EditWordLeft
	EditWordRight
	EditLineStart
	EditLineEnd
)

var editKindNames = map[EditKind]string{
	EditInsert:             "insert",
	EditDeleteCharBackward: "delete_char_backward",
	EditDeleteCharForward:  "delete_char_forward",
	EditDeleteWordBackward: "delete_word_backward",
	EditDeleteWordForward:  "delete_word_forward",
	EditDeleteBeforeCursor: "delete_before_cursor",
	EditDeleteAfterCursor:  "delete_after_cursor",
	EditMoveLeft:           "move_left",
	EditMoveRight:          "move_right",
	EditWordLeft:           "word_left",
	EditWordRight:          "word_right",
	EditLineStart:          "line_start",
	EditLineEnd:            "line_end",
}

func (k EditKind) String() string {
	if name, ok := editKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// EditAction is an edit the filter text input should apply
type EditAction struct {
	Kind EditKind
	Text string // only set for EditInsert
}
