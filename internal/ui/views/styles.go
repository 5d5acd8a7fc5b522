package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the prompt
type Styles struct {
	Prompt      lipgloss.Style
	Message     lipgloss.Style
	Answer      lipgloss.Style
	Cursor      lipgloss.Style
	Highlight   lipgloss.Style
	Option      lipgloss.Style
	Scroll      lipgloss.Style
	Counter     lipgloss.Style
	Empty       lipgloss.Style
	Help        lipgloss.Style
	Canceled    lipgloss.Style
	StatusError lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true), // green
		Message:     lipgloss.NewStyle().Bold(true),
		Answer:      lipgloss.NewStyle().Foreground(lipgloss.Color("51")), // cyan
		Cursor:      lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Option:      lipgloss.NewStyle(),
		Scroll:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Counter:     lipgloss.NewStyle().Faint(true),
		Empty:       lipgloss.NewStyle().Faint(true).Italic(true),
		Help:        lipgloss.NewStyle().Foreground(lipgloss.Color("39")), // blue
		Canceled:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}
