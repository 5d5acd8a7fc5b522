package ui

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"winpick/internal/config"
	"winpick/internal/domain"
	"winpick/internal/eventbus"
	"winpick/internal/source"
	"winpick/internal/ui/input"
)

// recordingBus keeps published events in order
type recordingBus struct {
	mu     sync.Mutex
	events []eventbus.DomainEvent
}

func (b *recordingBus) Publish(event eventbus.DomainEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, event)
}

func (b *recordingBus) Subscribe(eventbus.EventType, eventbus.EventHandler) func() {
	return func() {}
}

func (b *recordingBus) Close() {}

func (b *recordingBus) types() []eventbus.EventType {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]eventbus.EventType, len(b.events))
	for i, e := range b.events {
		out[i] = e.Type()
	}
	return out
}

var fruits = []string{"apple", "banana", "cherry", "grape", "pineapple", "apricot", "mango"}

func newModel(t *testing.T, cfg config.SelectConfig) (*Model[string], *recordingBus) {
	t.Helper()
	bus := &recordingBus{}
	m, err := NewPrompt[string]("Pick a fruit", source.FromSlice(fruits, nil, source.SubstringMatcher{})).
		WithConfig(cfg).
		WithHelpMessage("type to filter").
		WithBus(bus).
		Model()
	require.NoError(t, err)
	return m, bus
}

func typeText(m *Model[string], text string) {
	for _, r := range text {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func press(m *Model[string], t tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: t})
	return cmd
}

func isQuit(t *testing.T, cmd tea.Cmd) bool {
	t.Helper()
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelInitialView(t *testing.T) {
	m, bus := newModel(t, config.SelectConfig{PageSize: 3})

	view := m.View()
	lines := strings.Split(view, "\n")
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[0], "? Pick a fruit"))
	assert.Equal(t, "> apple", lines[1])
	assert.Equal(t, "  banana", lines[2])
	assert.Equal(t, "↓ cherry", lines[3])
	assert.Equal(t, "  1/7", lines[4])
	assert.Equal(t, "[type to filter]", lines[5])

	assert.Equal(t, []eventbus.EventType{eventbus.EventPromptStarted}, bus.types())
	assert.Nil(t, m.Init())
}

func TestModelFilterNarrowsOptions(t *testing.T) {
	m, bus := newModel(t, config.SelectConfig{PageSize: 3})

	typeText(m, "ap")

	view := m.View()
	assert.Contains(t, view, "? Pick a fruit ap")
	assert.Contains(t, view, "> apple")
	assert.Contains(t, view, "grape")
	assert.Contains(t, view, "pineapple")
	assert.NotContains(t, view, "banana")

	assert.Equal(t, []eventbus.EventType{
		eventbus.EventPromptStarted,
		eventbus.EventOptionsFetched,
		eventbus.EventOptionsFetched,
	}, bus.types())

	last := bus.events[len(bus.events)-1].(eventbus.OptionsFetchedEvent)
	assert.Equal(t, "ap", last.Filter)
	assert.Equal(t, 4, last.Total)
	assert.Equal(t, 3, last.Count)
}

func TestModelFilterWithNoMatches(t *testing.T) {
	m, _ := newModel(t, config.SelectConfig{PageSize: 3})

	typeText(m, "zzz")
	assert.Contains(t, m.View(), "No matching options")

	cmd := press(m, tea.KeyEnter)
	assert.Nil(t, cmd, "nothing to submit keeps the prompt open")
	_, ok := m.Answer()
	assert.False(t, ok)
}

func TestModelSubmitReturnsLogicalIndex(t *testing.T) {
	m, bus := newModel(t, config.SelectConfig{PageSize: 3})

	press(m, tea.KeyUp)
	cmd := press(m, tea.KeyEnter)
	require.True(t, isQuit(t, cmd))

	answer, ok := m.Answer()
	require.True(t, ok)
	assert.Equal(t, domain.ListOption[string]{Index: 6, Value: "mango"}, answer)
	assert.Equal(t, "? Pick a fruit mango\n", m.View())

	submitted := bus.events[len(bus.events)-1].(eventbus.AnswerSubmittedEvent)
	assert.Equal(t, 6, submitted.Index)
	assert.Equal(t, "mango", submitted.Answer)
}

func TestModelCancel(t *testing.T) {
	for _, k := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		m, bus := newModel(t, config.SelectConfig{PageSize: 3})

		cmd := press(m, k)
		require.True(t, isQuit(t, cmd))
		assert.True(t, m.Cancelled())
		assert.Contains(t, m.View(), "<canceled>")
		assert.Contains(t, bus.types(), eventbus.EventPromptCancelled)
	}
}

func TestModelVimMode(t *testing.T) {
	m, _ := newModel(t, config.SelectConfig{PageSize: 3, VimMode: true})

	typeText(m, "jj")
	press(m, tea.KeyEnter)

	answer, ok := m.Answer()
	require.True(t, ok)
	assert.Equal(t, "cherry", answer.Value)
}

func TestModelIgnoresUnknownKeys(t *testing.T) {
	m, _ := newModel(t, config.SelectConfig{PageSize: 3})
	before := m.View()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Nil(t, cmd)
	assert.Equal(t, before, m.View())
}

func TestModelWindowSize(t *testing.T) {
	items := []string{strings.Repeat("x", 50)}
	m, err := NewPrompt[string]("Pick", source.FromSlice(items, nil, nil)).
		WithHelpMessage("help").
		Model()
	require.NoError(t, err)

	m.Update(tea.WindowSizeMsg{Width: 20, Height: 10})

	lines := strings.Split(m.View(), "\n")
	assert.Equal(t, "> "+strings.Repeat("x", 17)+"…", lines[1])
}

func TestModelDefaultHelpLine(t *testing.T) {
	m, err := NewPrompt[string]("Pick", source.FromSlice(fruits, nil, nil)).Model()
	require.NoError(t, err)

	view := m.View()
	assert.Contains(t, view, "select")
	assert.Contains(t, view, "cancel")
}

func TestModelFetchErrorEndsPrompt(t *testing.T) {
	boom := errors.New("source gone")
	fail := false
	src := source.FetchFunc[string](func(filter string, offset, limit int) ([]string, int, error) {
		if fail {
			return nil, 0, boom
		}
		return []string{"a", "b"}, 2, nil
	})
	bus := &recordingBus{}
	m, err := NewPrompt[string]("Pick", src).WithBus(bus).Model()
	require.NoError(t, err)

	fail = true
	cmd := press(m, tea.KeyDown)
	require.True(t, isQuit(t, cmd))
	assert.ErrorIs(t, m.Err(), boom)
	assert.Contains(t, m.View(), "source gone")
	assert.Contains(t, bus.types(), eventbus.EventFetchFailed)
}

func TestPromptStartingState(t *testing.T) {
	m, err := NewPrompt[string]("Pick", source.FromSlice(fruits, nil, source.SubstringMatcher{})).
		WithConfig(config.SelectConfig{PageSize: 3}).
		WithStartingFilter("ap").
		WithStartingCursor(2).
		WithFormatter(func(o domain.ListOption[string]) string { return strings.ToUpper(o.Value) }).
		Model()
	require.NoError(t, err)

	assert.Contains(t, m.View(), "> pineapple")

	press(m, tea.KeyEnter)
	assert.Contains(t, m.View(), "PINEAPPLE")
}

func TestPromptDisplayFunction(t *testing.T) {
	m, err := NewPrompt[int]("Pick", source.FromSlice([]int{1, 2, 3}, nil, nil)).
		WithDisplay(func(v int) string { return strings.Repeat("#", v) }).
		WithHelpMessage("h").
		Model()
	require.NoError(t, err)

	assert.Contains(t, m.View(), "> #\n  ##\n  ###")
}

func TestPromptSetupErrors(t *testing.T) {
	_, err := NewPrompt[string]("Pick", nil).Model()
	assert.Error(t, err)

	_, err = NewPrompt[string]("Pick", source.FromSlice(fruits, nil, nil)).
		WithConfig(config.SelectConfig{PageSize: 0}).
		Model()
	assert.ErrorIs(t, err, config.ErrInvalidPageSize)

	boom := errors.New("boom")
	src := source.FetchFunc[string](func(string, int, int) ([]string, int, error) { return nil, 0, boom })
	_, err = NewPrompt[string]("Pick", src).Model()
	assert.ErrorIs(t, err, boom)

	_, err = NewPrompt[string]("Pick", src).Run(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestKeysRendererListsBindings(t *testing.T) {
	keys := NewKeysRenderer(input.DefaultKeyMap().ForConfig(false), input.DefaultEditKeyMap()).Render()
	assert.Contains(t, keys, "winpick keys")
	assert.Contains(t, keys, "page down")
	assert.Contains(t, keys, "delete word")
	assert.NotContains(t, keys, "down (vim)")

	keys = NewKeysRenderer(input.DefaultKeyMap().ForConfig(true), input.DefaultEditKeyMap()).Render()
	assert.Contains(t, keys, "down (vim)")
}
