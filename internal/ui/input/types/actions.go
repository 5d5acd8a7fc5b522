package types

// Navigation actions
type MoveUpAction struct{}

func (a MoveUpAction) Type() string { return "move_up" }

type MoveDownAction struct{}

func (a MoveDownAction) Type() string { return "move_down" }

type PageUpAction struct{}

func (a PageUpAction) Type() string { return "page_up" }

type PageDownAction struct{}

func (a PageDownAction) Type() string { return "page_down" }

type MoveToStartAction struct{}

func (a MoveToStartAction) Type() string { return "move_to_start" }

type MoveToEndAction struct{}

func (a MoveToEndAction) Type() string { return "move_to_end" }

// Text input actions
type FilterEditAction struct {
	Edit EditAction
}

func (a FilterEditAction) Type() string { return "filter_edit" }
