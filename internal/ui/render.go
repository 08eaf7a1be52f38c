package ui

import (
	"fmt"
	"strings"

	"github.com/nibzard/tasklist/internal/todo"
)

// Control glyphs, in the order they are drawn after each task.
const (
	glyphRaise    = "▲"
	glyphLower    = "▼"
	glyphMoveUp   = "↑"
	glyphMoveDown = "↓"
	glyphDelete   = "✕"
)

// NoCursor renders a list without a selected row.
const NoCursor = -1

// RenderFooter returns the incomplete-task count line.
func RenderFooter(remaining int) string {
	return fmt.Sprintf("%d tasks remaining", remaining)
}

// RenderList renders every task in l, one per line. The row at cursor is
// marked; pass NoCursor for none.
func RenderList(l *todo.List, cursor int, s Styles) string {
	if l.Len() == 0 {
		return s.Empty.Render("No tasks yet.")
	}

	rows := make([]string, 0, l.Len())
	for i, task := range l.Tasks() {
		rows = append(rows, renderRow(l, i, task, i == cursor, s))
	}
	return strings.Join(rows, "\n")
}

func renderRow(l *todo.List, index int, task todo.Task, selected bool, s Styles) string {
	marker := "  "
	if selected {
		marker = s.Cursor.Render("> ")
	}

	check := "[ ]"
	text := task.Text
	if task.Completed {
		check = "[x]"
		text = s.Completed.Render(text)
	}

	badge := s.Badge(task.Priority).Render(task.Priority.String())
	return marker + check + " " + text + " " + badge + "  " + renderControls(l, index, task, s)
}

// renderControls draws the per-task controls. Controls that would be no-ops
// are dimmed.
func renderControls(l *todo.List, index int, task todo.Task, s Styles) string {
	control := func(glyph string, enabled bool) string {
		if enabled {
			return s.Control.Render(glyph)
		}
		return s.Disabled.Render(glyph)
	}
	return strings.Join([]string{
		control(glyphRaise, task.Priority != todo.PriorityHigh),
		control(glyphLower, task.Priority != todo.PriorityLow),
		control(glyphMoveUp, l.CanMove(index, todo.Up)),
		control(glyphMoveDown, l.CanMove(index, todo.Down)),
		control(glyphDelete, true),
	}, " ")
}

// RenderDraft renders the input row: text field and priority selector.
func RenderDraft(field string, p todo.Priority, s Styles) string {
	return field + "  " + s.Badge(p).Render(p.String())
}
