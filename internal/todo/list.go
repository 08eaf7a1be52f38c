package todo

import (
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// maxIDAttempts bounds how often a custom id generator is retried on collision
// before falling back to a UUID.
const maxIDAttempts = 8

// Option configures a List.
type Option func(*List)

// WithIDGenerator sets the function used to mint task ids.
func WithIDGenerator(gen func() string) Option {
	return func(l *List) {
		if gen != nil {
			l.newID = gen
		}
	}
}

// WithLogger logs every mutation at debug level.
func WithLogger(logger *log.Logger) Option {
	return func(l *List) {
		l.logger = logger
	}
}

// List is the ordered, in-memory task list.
type List struct {
	tasks  []Task
	newID  func() string
	logger *log.Logger
}

// NewList creates an empty list.
func NewList(opts ...Option) *List {
	l := &List{
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Add appends a new incomplete task. Whitespace-only text and out-of-range
// priorities are ignored, returning false.
func (l *List) Add(text string, priority Priority) (Task, bool) {
	if strings.TrimSpace(text) == "" || !priority.Valid() {
		return Task{}, false
	}
	task := Task{
		ID:       l.uniqueID(),
		Text:     text,
		Priority: priority,
	}
	l.tasks = append(l.tasks, task)
	l.debug("task added", "id", task.ID, "priority", task.Priority, "len", len(l.tasks))
	return task, true
}

// Remove deletes the task with the given id.
func (l *List) Remove(id string) bool {
	i := l.IndexOf(id)
	if i < 0 {
		return false
	}
	l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
	l.debug("task removed", "id", id, "len", len(l.tasks))
	return true
}

// ToggleComplete flips the completed flag of the task with the given id.
func (l *List) ToggleComplete(id string) bool {
	i := l.IndexOf(id)
	if i < 0 {
		return false
	}
	l.tasks[i].Completed = !l.tasks[i].Completed
	l.debug("task toggled", "id", id, "completed", l.tasks[i].Completed)
	return true
}

// ChangePriority moves the task's priority one level in direction d.
// It returns false if the id is unknown or the priority is already at the
// boundary.
func (l *List) ChangePriority(id string, d Direction) bool {
	i := l.IndexOf(id)
	if i < 0 {
		return false
	}
	current := l.tasks[i].Priority
	next := current.Step(d)
	if next == current {
		return false
	}
	l.tasks[i].Priority = next
	l.debug("priority changed", "id", id, "from", current, "to", next)
	return true
}

// Move swaps the task at position with its neighbor in direction d.
// Moving the first task up or the last task down does nothing.
func (l *List) Move(position int, d Direction) bool {
	if !l.CanMove(position, d) {
		return false
	}
	target := neighbor(position, d)
	l.tasks[position], l.tasks[target] = l.tasks[target], l.tasks[position]
	l.debug("task moved", "from", position, "to", target)
	return true
}

// CanMove reports whether Move(position, d) would change the list.
func (l *List) CanMove(position int, d Direction) bool {
	if position < 0 || position >= len(l.tasks) {
		return false
	}
	target := neighbor(position, d)
	return target >= 0 && target < len(l.tasks)
}

// Len returns the number of tasks.
func (l *List) Len() int {
	return len(l.tasks)
}

// Tasks returns a copy of the tasks in list order.
func (l *List) Tasks() []Task {
	out := make([]Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

// At returns the task at position i.
func (l *List) At(i int) (Task, bool) {
	if i < 0 || i >= len(l.tasks) {
		return Task{}, false
	}
	return l.tasks[i], true
}

// Get returns the task with the given id.
func (l *List) Get(id string) (Task, bool) {
	i := l.IndexOf(id)
	if i < 0 {
		return Task{}, false
	}
	return l.tasks[i], true
}

// IndexOf returns the position of the task with the given id, or -1.
func (l *List) IndexOf(id string) int {
	for i := range l.tasks {
		if l.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// FindByText returns the first task whose text equals text exactly.
func (l *List) FindByText(text string) (Task, bool) {
	for i := range l.tasks {
		if l.tasks[i].Text == text {
			return l.tasks[i], true
		}
	}
	return Task{}, false
}

// Remaining counts the tasks that are not completed.
func (l *List) Remaining() int {
	n := 0
	for i := range l.tasks {
		if !l.tasks[i].Completed {
			n++
		}
	}
	return n
}

func (l *List) uniqueID() string {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id := l.newID()
		if id != "" && l.IndexOf(id) < 0 {
			return id
		}
	}
	for {
		id := uuid.NewString()
		if l.IndexOf(id) < 0 {
			return id
		}
	}
}

func (l *List) debug(msg string, keyvals ...any) {
	if l.logger == nil {
		return
	}
	l.logger.Debug(msg, keyvals...)
}

func neighbor(position int, d Direction) int {
	if d == Up {
		return position - 1
	}
	return position + 1
}
