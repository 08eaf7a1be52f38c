package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nibzard/tasklist/internal/config"
	"github.com/nibzard/tasklist/internal/todo"
)

// Styles holds the lipgloss styles used to draw the widget.
type Styles struct {
	Title     lipgloss.Style
	Cursor    lipgloss.Style
	Completed lipgloss.Style
	Control   lipgloss.Style
	Disabled  lipgloss.Style
	Footer    lipgloss.Style
	Empty     lipgloss.Style

	badges map[todo.Priority]lipgloss.Style
}

// NewStyles builds styles from a color palette.
func NewStyles(colors config.ColorsConfig) Styles {
	grey := lipgloss.Color(colors.Completed)

	s := Styles{
		Title:     lipgloss.NewStyle().Bold(true).MarginBottom(1),
		Cursor:    lipgloss.NewStyle().Bold(true),
		Completed: lipgloss.NewStyle().Strikethrough(true).Foreground(grey),
		Control:   lipgloss.NewStyle(),
		Disabled:  lipgloss.NewStyle().Faint(true).Foreground(grey),
		Footer:    lipgloss.NewStyle().Foreground(grey).MarginTop(1),
		Empty:     lipgloss.NewStyle().Italic(true).Foreground(grey),
		badges:    make(map[todo.Priority]lipgloss.Style, 3),
	}
	for _, p := range todo.Priorities() {
		s.badges[p] = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color(colors.ForPriority(p))).
			Padding(0, 1)
	}
	return s
}

// Badge returns the tag style for a priority.
func (s Styles) Badge(p todo.Priority) lipgloss.Style {
	if b, ok := s.badges[p]; ok {
		return b
	}
	return lipgloss.NewStyle()
}
