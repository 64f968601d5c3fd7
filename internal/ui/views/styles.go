package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Status      lipgloss.Style
	StatusError lipgloss.Style
	Prompt      lipgloss.Style
	Disabled    lipgloss.Style
	Word        lipgloss.Style
	Separator   lipgloss.Style
	Help        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Disabled:    lipgloss.NewStyle().Faint(true),
		Word:        lipgloss.NewStyle().Bold(true),
		Separator:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Help:        lipgloss.NewStyle().Faint(true),
	}
}
