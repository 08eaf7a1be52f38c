// Package ui provides the interactive terminal widget.
package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/nibzard/tasklist/internal/config"
	"github.com/nibzard/tasklist/internal/logging"
	"github.com/nibzard/tasklist/internal/todo"
	"github.com/nibzard/tasklist/internal/utils"
)

// TUIOption configures the TUI behavior.
type TUIOption func(*tuiConfig)

type tuiConfig struct {
	altScreen bool
	logger    *log.Logger
	list      *todo.List
	output    io.Writer
}

// WithAltScreen overrides the alt_screen setting.
func WithAltScreen(enabled bool) TUIOption {
	return func(c *tuiConfig) {
		c.altScreen = enabled
	}
}

// WithLogger sets the logger for widget and list events.
func WithLogger(logger *log.Logger) TUIOption {
	return func(c *tuiConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithList starts the widget on an existing list instead of an empty one.
func WithList(l *todo.List) TUIOption {
	return func(c *tuiConfig) {
		c.list = l
	}
}

// WithOutput sets the terminal the widget draws to. It must be a TTY.
func WithOutput(w io.Writer) TUIOption {
	return func(c *tuiConfig) {
		c.output = w
	}
}

// RunTUI starts the widget and blocks until the user quits or ctx is done.
func RunTUI(ctx context.Context, cfg *config.Config, opts ...TUIOption) error {
	c := &tuiConfig{
		altScreen: cfg.AltScreen,
		logger:    logging.Discard(),
		output:    os.Stdout,
	}
	for _, opt := range opts {
		opt(c)
	}

	if !utils.IsTTY(c.output) {
		return fmt.Errorf("tui requires a TTY")
	}

	list := c.list
	if list == nil {
		list = todo.NewList(todo.WithLogger(c.logger))
	}
	model := NewModel(cfg, list, c.logger)

	programOpts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithOutput(c.output)}
	if c.altScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	c.logger.Info("session started", "title", cfg.Title)
	finalModel, err := tea.NewProgram(model, programOpts...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("run tui: %w", err)
	}
	if m, ok := finalModel.(*Model); ok {
		c.logger.Info("session ended", "tasks", m.list.Len(), "remaining", m.list.Remaining())
	}
	return nil
}

type focus int

const (
	focusInput focus = iota
	focusList
)

// Model is the bubbletea model for the widget. The list and the draft are
// separate state; the text field mirrors the draft text.
type Model struct {
	title  string
	list   *todo.List
	draft  *todo.Draft
	input  textinput.Model
	help   help.Model
	keys   keyMap
	styles Styles
	logger *log.Logger

	cursor   int
	focus    focus
	quitting bool
}

// NewModel creates a widget over l with the input row focused.
func NewModel(cfg *config.Config, l *todo.List, logger *log.Logger) *Model {
	if logger == nil {
		logger = logging.Discard()
	}

	input := textinput.New()
	input.Placeholder = "Add a new task"
	input.Prompt = "> "
	input.Focus()

	m := &Model{
		title:  cfg.Title,
		list:   l,
		draft:  todo.NewDraft(cfg.DefaultPriority),
		input:  input,
		help:   help.New(),
		keys:   newKeyMap(cfg.Keys),
		styles: NewStyles(cfg.Colors),
		logger: logger,
		focus:  focusInput,
	}
	m.syncBindings()
	return m
}

// List returns the model's task list.
func (m *Model) List() *todo.List {
	return m.list
}

// Draft returns the model's draft input.
func (m *Model) Draft() *todo.Draft {
	return m.draft
}

// Cursor returns the selected row.
func (m *Model) Cursor() int {
	return m.cursor
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		if m.focus == focusInput {
			return m.updateInput(msg)
		}
		return m.updateList(msg)
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-20, 10)
		return m, nil
	}

	var cmd tea.Cmd
	if m.focus == focusInput {
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

func (m *Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.submit()
		return m, nil
	case key.Matches(msg, m.keys.CyclePriority):
		p := m.draft.CyclePriority()
		m.logger.Debug("draft priority", "priority", p)
		return m, nil
	case key.Matches(msg, m.keys.Blur):
		m.setFocus(focusList)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.draft.SetText(m.input.Value())
	return m, cmd
}

func (m *Model) submit() {
	m.draft.SetText(m.input.Value())
	task, ok := m.draft.Submit(m.list)
	if !ok {
		return
	}
	m.input.Reset()
	m.cursor = m.list.Len() - 1
	m.syncBindings()
	m.logger.Info("task added", "id", task.ID, "priority", task.Priority)
}

func (m *Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	task, selected := m.list.At(m.cursor)

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.list.Len()-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		if selected {
			m.list.ToggleComplete(task.ID)
		}
	case key.Matches(msg, m.keys.Raise):
		if selected {
			m.list.ChangePriority(task.ID, todo.Up)
		}
	case key.Matches(msg, m.keys.Lower):
		if selected {
			m.list.ChangePriority(task.ID, todo.Down)
		}
	case key.Matches(msg, m.keys.MoveUp):
		if m.list.Move(m.cursor, todo.Up) {
			m.cursor--
		}
	case key.Matches(msg, m.keys.MoveDown):
		if m.list.Move(m.cursor, todo.Down) {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Delete):
		if selected && m.list.Remove(task.ID) {
			m.clampCursor()
		}
	case key.Matches(msg, m.keys.Focus):
		return m, m.setFocus(focusInput)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	}

	m.syncBindings()
	return m, nil
}

func (m *Model) setFocus(f focus) tea.Cmd {
	m.focus = f
	if f == focusInput {
		return m.input.Focus()
	}
	m.input.Blur()
	m.clampCursor()
	m.syncBindings()
	return nil
}

func (m *Model) clampCursor() {
	if m.cursor >= m.list.Len() {
		m.cursor = m.list.Len() - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// syncBindings disables the move keys at the list boundaries.
func (m *Model) syncBindings() {
	m.keys.MoveUp.SetEnabled(m.list.CanMove(m.cursor, todo.Up))
	m.keys.MoveDown.SetEnabled(m.list.CanMove(m.cursor, todo.Down))
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(m.title))
	b.WriteString("\n")
	b.WriteString(RenderDraft(m.input.View(), m.draft.Priority, m.styles))
	b.WriteString("\n\n")

	cursor := NoCursor
	if m.focus == focusList {
		cursor = m.cursor
	}
	b.WriteString(RenderList(m.list, cursor, m.styles))
	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render(RenderFooter(m.list.Remaining())))
	b.WriteString("\n\n")

	if m.focus == focusInput {
		b.WriteString(m.help.View(inputHelp(m.keys)))
	} else {
		b.WriteString(m.help.View(listHelp(m.keys)))
	}
	b.WriteString("\n")
	return b.String()
}
