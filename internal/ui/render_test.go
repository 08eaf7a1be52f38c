package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/nibzard/tasklist/internal/config"
	"github.com/nibzard/tasklist/internal/todo"
)

// markedStyles wraps disabled controls in parentheses so they can be asserted
// without a color profile.
func markedStyles() Styles {
	s := NewStyles(config.DefaultColors())
	s.Disabled = lipgloss.NewStyle().Transform(func(in string) string {
		return "(" + in + ")"
	})
	return s
}

func TestRenderFooter(t *testing.T) {
	tests := []struct {
		remaining int
		want      string
	}{
		{0, "0 tasks remaining"},
		{1, "1 tasks remaining"},
		{12, "12 tasks remaining"},
	}
	for _, tt := range tests {
		if got := RenderFooter(tt.remaining); got != tt.want {
			t.Errorf("RenderFooter(%d) = %q, want %q", tt.remaining, got, tt.want)
		}
	}
}

func TestRenderListEmpty(t *testing.T) {
	got := RenderList(todo.NewList(), NoCursor, markedStyles())
	if !strings.Contains(got, "No tasks yet.") {
		t.Errorf("empty list: got %q", got)
	}
}

func TestRenderListRows(t *testing.T) {
	l := todo.NewList()
	milk, _ := l.Add("Buy milk", todo.PriorityMedium)
	l.Add("Call bank", todo.PriorityHigh)
	l.Add("Water plants", todo.PriorityLow)
	l.ToggleComplete(milk.ID)

	rows := strings.Split(RenderList(l, 1, markedStyles()), "\n")
	if len(rows) != 3 {
		t.Fatalf("rows: got %d, want 3", len(rows))
	}

	tests := []struct {
		row      int
		contains []string
		excludes []string
	}{
		{0, []string{"[x]", "Buy milk", "medium", "(" + glyphMoveUp + ")"}, []string{"> ", "(" + glyphMoveDown + ")"}},
		{1, []string{"> ", "[ ]", "Call bank", "high", "(" + glyphRaise + ")"}, []string{"(" + glyphMoveUp + ")", "(" + glyphMoveDown + ")"}},
		{2, []string{"Water plants", "low", "(" + glyphLower + ")", "(" + glyphMoveDown + ")"}, []string{"(" + glyphMoveUp + ")"}},
	}
	for _, tt := range tests {
		row := rows[tt.row]
		for _, want := range tt.contains {
			if !strings.Contains(row, want) {
				t.Errorf("row %d missing %q: %q", tt.row, want, row)
			}
		}
		for _, unwanted := range tt.excludes {
			if strings.Contains(row, unwanted) {
				t.Errorf("row %d should not contain %q: %q", tt.row, unwanted, row)
			}
		}
	}
}

func TestRenderSingleTaskDisablesBothMoves(t *testing.T) {
	l := todo.NewList()
	l.Add("only", todo.PriorityMedium)

	got := RenderList(l, NoCursor, markedStyles())
	for _, glyph := range []string{glyphMoveUp, glyphMoveDown} {
		if !strings.Contains(got, "("+glyph+")") {
			t.Errorf("%s should be disabled: %q", glyph, got)
		}
	}
	if strings.Contains(got, "("+glyphDelete+")") {
		t.Errorf("delete should stay enabled: %q", got)
	}
}

func TestStylesBadge(t *testing.T) {
	s := NewStyles(config.DefaultColors())
	for _, p := range todo.Priorities() {
		bg := s.Badge(p).GetBackground()
		want := lipgloss.Color(config.DefaultColors().ForPriority(p))
		if bg != want {
			t.Errorf("Badge(%s) background = %v, want %v", p, bg, want)
		}
	}
}
