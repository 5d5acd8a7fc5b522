package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventPromptStarted   EventType = "PromptStarted"
	EventOptionsFetched  EventType = "OptionsFetched"
	EventFetchFailed     EventType = "FetchFailed"
	EventAnswerSubmitted EventType = "AnswerSubmitted"
	EventPromptCancelled EventType = "PromptCancelled"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// PromptStartedEvent is emitted once the initial fetch has succeeded
type PromptStartedEvent struct {
	Message string
	Total   int
}

func (e PromptStartedEvent) Type() EventType { return EventPromptStarted }

// OptionsFetchedEvent is emitted after the filter text changed and the window was refetched
type OptionsFetchedEvent struct {
	Filter string
	Offset int
	Count  int // items in the fetched window
	Total  int // items matching the filter
}

func (e OptionsFetchedEvent) Type() EventType { return EventOptionsFetched }

// FetchFailedEvent is emitted when the option source returns an error
type FetchFailedEvent struct {
	Filter string
	Err    error
}

func (e FetchFailedEvent) Type() EventType { return EventFetchFailed }

// AnswerSubmittedEvent is emitted when the user picks an option
type AnswerSubmittedEvent struct {
	Index  int
	Answer string // formatted answer
}

func (e AnswerSubmittedEvent) Type() EventType { return EventAnswerSubmitted }

// PromptCancelledEvent is emitted when the user aborts the prompt
type PromptCancelledEvent struct{}

func (e PromptCancelledEvent) Type() EventType { return EventPromptCancelled }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path     string
	PageSize int
	VimMode  bool
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
