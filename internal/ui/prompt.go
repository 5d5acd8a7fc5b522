package ui

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"winpick/internal/config"
	"winpick/internal/domain"
	"winpick/internal/eventbus"
	"winpick/internal/selector"
	"winpick/internal/source"
	"winpick/internal/ui/input"
	"winpick/internal/ui/views"
)

// Prompt asks the user to pick one option from a source
type Prompt[T any] struct {
	message        string
	fetcher        source.Fetcher[T]
	helpMessage    string
	formatter      func(domain.ListOption[T]) string
	display        func(T) string
	cfg            config.SelectConfig
	startingCursor int
	startingFilter string
	bus            eventbus.EventBus
}

// NewPrompt creates a prompt with the default settings
func NewPrompt[T any](message string, fetcher source.Fetcher[T]) *Prompt[T] {
	return &Prompt[T]{
		message: message,
		fetcher: fetcher,
		cfg:     config.DefaultConfig().SelectConfig(),
	}
}

// WithHelpMessage replaces the key help line with a fixed message
func (p *Prompt[T]) WithHelpMessage(text string) *Prompt[T] {
	p.helpMessage = text
	return p
}

// WithFormatter sets how the submitted answer is shown
func (p *Prompt[T]) WithFormatter(f func(domain.ListOption[T]) string) *Prompt[T] {
	p.formatter = f
	return p
}

// WithDisplay sets how options are shown in the list
func (p *Prompt[T]) WithDisplay(f func(T) string) *Prompt[T] {
	p.display = f
	return p
}

// WithConfig sets the key decoding and window settings
func (p *Prompt[T]) WithConfig(cfg config.SelectConfig) *Prompt[T] {
	p.cfg = cfg
	return p
}

// WithStartingCursor highlights the option at logical index i when the prompt opens
func (p *Prompt[T]) WithStartingCursor(i int) *Prompt[T] {
	p.startingCursor = i
	return p
}

// WithStartingFilter pre-fills the filter text
func (p *Prompt[T]) WithStartingFilter(text string) *Prompt[T] {
	p.startingFilter = text
	return p
}

// WithBus publishes prompt events to bus
func (p *Prompt[T]) WithBus(bus eventbus.EventBus) *Prompt[T] {
	p.bus = bus
	return p
}

// Model builds the bubbletea model and performs the initial fetch
func (p *Prompt[T]) Model() (*Model[T], error) {
	if p.fetcher == nil {
		return nil, errors.New("prompt has no option source")
	}
	if p.cfg.PageSize < 1 {
		return nil, fmt.Errorf("%w: got %d", config.ErrInvalidPageSize, p.cfg.PageSize)
	}

	filter := input.NewFilterInput(p.startingFilter)
	engine := selector.New(p.cfg, p.startingCursor, p.fetcher, filter)
	if err := engine.Setup(); err != nil {
		if p.bus != nil {
			p.bus.Publish(eventbus.FetchFailedEvent{Filter: p.startingFilter, Err: err})
		}
		return nil, err
	}

	formatter := p.formatter
	if formatter == nil {
		formatter = func(opt domain.ListOption[T]) string { return opt.String() }
	}

	styles := views.NewStyles()
	m := &Model[T]{
		bus:       p.bus,
		cfg:       p.cfg,
		message:   p.message,
		helpMsg:   p.helpMessage,
		keys:      input.DefaultKeyMap().ForConfig(p.cfg.VimMode),
		help:      help.New(),
		filter:    filter,
		engine:    engine,
		backend:   views.NewFrameBackend(styles, p.display),
		styles:    styles,
		formatter: formatter,
	}

	log.Printf("Prompt %q opened with %d options", p.message, engine.Total())
	if p.bus != nil {
		p.bus.Publish(eventbus.PromptStartedEvent{Message: p.message, Total: engine.Total()})
	}

	return m, nil
}

// Run shows the prompt until the user submits or cancels.
// Cancelling, by key or through ctx, returns ErrCancelled.
func (p *Prompt[T]) Run(ctx context.Context, opts ...tea.ProgramOption) (domain.ListOption[T], error) {
	var none domain.ListOption[T]

	m, err := p.Model()
	if err != nil {
		return none, err
	}

	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		if ctx.Err() != nil {
			return none, fmt.Errorf("%w: %w", ErrCancelled, ctx.Err())
		}
		return none, fmt.Errorf("failed to run prompt: %w", err)
	}

	fm, ok := final.(*Model[T])
	if !ok {
		return none, fmt.Errorf("unexpected final model %T", final)
	}
	if fm.Err() != nil {
		return none, fm.Err()
	}
	if fm.Cancelled() {
		return none, ErrCancelled
	}

	answer, ok := fm.Answer()
	if !ok {
		return none, ErrCancelled
	}
	return answer, nil
}
