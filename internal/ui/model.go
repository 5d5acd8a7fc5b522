package ui

import (
	"errors"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"winpick/internal/config"
	"winpick/internal/domain"
	"winpick/internal/eventbus"
	"winpick/internal/selector"
	"winpick/internal/ui/input"
	inputtypes "winpick/internal/ui/input/types"
	"winpick/internal/ui/views"
)

// ErrCancelled is returned when the user aborts the prompt
var ErrCancelled = errors.New("prompt cancelled")

// Model is the bubbletea model driving one select prompt
type Model[T any] struct {
	bus     eventbus.EventBus
	cfg     config.SelectConfig
	message string
	helpMsg string

	keys      input.KeyMap
	help      help.Model
	filter    *input.FilterInput
	engine    *selector.Engine[T]
	backend   *views.FrameBackend[T]
	styles    *views.Styles
	formatter func(domain.ListOption[T]) string

	answer    domain.ListOption[T]
	answered  bool
	cancelled bool
	err       error
}

// Init returns an initial command
func (m *Model[T]) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.backend.SetWidth(msg.Width)
		m.filter.SetWidth(max(msg.Width-lipgloss.Width(m.message)-4, 1))

	case keysPagerMsg:
		if msg.err != nil {
			log.Printf("Key reference pager failed: %v", msg.err)
		}

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model[T]) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		answer, ok := m.engine.Submit()
		if !ok {
			// nothing highlighted, keep the prompt open
			return m, nil
		}
		m.answer = answer
		m.answered = true
		m.publish(eventbus.AnswerSubmittedEvent{Index: answer.Index, Answer: m.formatter(answer)})
		return m, tea.Quit

	case key.Matches(msg, m.keys.Cancel):
		m.cancelled = true
		m.publish(eventbus.PromptCancelledEvent{})
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		return m, showKeys(NewKeysRenderer(m.keys, input.DefaultEditKeyMap()).Render())
	}

	action, ok := input.Decode(msg, m.cfg)
	if !ok {
		return m, nil
	}

	before := m.engine.Filter()
	if _, err := m.engine.Handle(action); err != nil {
		m.err = err
		m.publish(eventbus.FetchFailedEvent{Filter: m.engine.Filter(), Err: err})
		return m, tea.Quit
	}

	if _, isEdit := action.(inputtypes.FilterEditAction); isEdit && m.engine.Filter() != before {
		page := m.engine.Page()
		m.publish(eventbus.OptionsFetchedEvent{
			Filter: m.engine.Filter(),
			Offset: m.engine.Offset(),
			Count:  len(page.Items),
			Total:  page.Total,
		})
	}

	return m, nil
}

// View renders the prompt
func (m *Model[T]) View() string {
	switch {
	case m.answered:
		return m.styles.Prompt.Render("?") + " " + m.styles.Message.Render(m.message) + " " +
			m.styles.Answer.Render(m.formatter(m.answer)) + "\n"
	case m.cancelled:
		return m.styles.Prompt.Render("?") + " " + m.styles.Message.Render(m.message) + " " +
			m.styles.Canceled.Render("<canceled>") + "\n"
	case m.err != nil:
		return m.styles.StatusError.Render("Error: "+m.err.Error()) + "\n"
	}

	if err := m.render(m.backend); err != nil {
		log.Printf("Render failed: %v", err)
	}
	return strings.TrimSuffix(m.backend.Frame(), "\n")
}

// render draws the current state with any backend
func (m *Model[T]) render(b views.Backend[T]) error {
	if err := b.RenderSelectPrompt(m.message, m.filter.View()); err != nil {
		return err
	}
	if err := b.RenderOptions(m.engine.Page()); err != nil {
		return err
	}

	helpText := m.helpMsg
	if helpText == "" {
		helpText = m.help.ShortHelpView(m.keys.ShortHelp())
	}
	if helpText != "" {
		return b.RenderHelpMessage(helpText)
	}
	return nil
}

// Answer returns the submitted option
func (m *Model[T]) Answer() (domain.ListOption[T], bool) {
	return m.answer, m.answered
}

// Cancelled reports whether the user aborted the prompt
func (m *Model[T]) Cancelled() bool {
	return m.cancelled
}

// Err returns the error that ended the prompt, if any
func (m *Model[T]) Err() error {
	return m.err
}

func (m *Model[T]) publish(event eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(event)
	}
}
