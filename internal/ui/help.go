package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"winpick/internal/ui/input"
)

// KeysRenderer renders the key reference
type KeysRenderer struct {
	keys  input.KeyMap
	edits input.EditKeyMap
}

// NewKeysRenderer creates a renderer for the given bindings
func NewKeysRenderer(keys input.KeyMap, edits input.EditKeyMap) *KeysRenderer {
	return &KeysRenderer{keys: keys, edits: edits}
}

// Render generates the key reference with colors for the pager
func (r *KeysRenderer) Render() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("winpick keys"))
	help.WriteString("\n")

	section := func(name string, bindings ...[]key.Binding) {
		help.WriteString(sectionStyle.Render(name))
		help.WriteString("\n")
		for _, column := range bindings {
			for _, b := range column {
				if !b.Enabled() {
					continue
				}
				h := b.Help()
				help.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render(fmt.Sprintf("%-12s", h.Key)), descStyle.Render(h.Desc)))
			}
		}
	}

	full := r.keys.FullHelp()
	section("Navigation", full[0], full[1])
	help.WriteString("\n")
	section("Prompt", full[2])
	help.WriteString("\n")
	section("Filter editing", r.edits.FullHelp()...)
	help.WriteString("\n")
	help.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).Render("  Any other printable key is typed into the filter"))

	return help.String()
}

// ShowKeysInPager shows content using the ov pager
func ShowKeysInPager(content string) error {
	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return fmt.Errorf("failed to open pager: %w", err)
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// pagerCommand runs the pager while bubbletea has released the terminal
type pagerCommand struct {
	content string
}

func (c *pagerCommand) Run() error {
	return ShowKeysInPager(c.content)
}

// The pager talks to the terminal directly
func (c *pagerCommand) SetStdin(io.Reader)  {}
func (c *pagerCommand) SetStdout(io.Writer) {}
func (c *pagerCommand) SetStderr(io.Writer) {}

// showKeys returns a command that shows the key reference in the pager
func showKeys(content string) tea.Cmd {
	return tea.Exec(&pagerCommand{content: content}, func(err error) tea.Msg {
		return keysPagerMsg{err: err}
	})
}
