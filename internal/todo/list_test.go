package todo

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("t%d", n)
	}
}

func texts(l *List) []string {
	var out []string
	for _, task := range l.Tasks() {
		out = append(out, task.Text)
	}
	return out
}

func TestAddRejectsBlankText(t *testing.T) {
	for _, text := range []string{"", " ", "\t\n", "   \r\n  "} {
		l := NewList()
		l.Add("keep", PriorityLow)
		if _, ok := l.Add(text, PriorityHigh); ok {
			t.Errorf("Add(%q) reported a change", text)
		}
		if l.Len() != 1 {
			t.Errorf("Add(%q): len got %d, want 1", text, l.Len())
		}
	}
}

func TestAddAppendsIncompleteTask(t *testing.T) {
	l := NewList()
	for i, p := range Priorities() {
		task, ok := l.Add(fmt.Sprintf("task %d", i), p)
		if !ok {
			t.Fatalf("Add %d returned false", i)
		}
		if l.Len() != i+1 {
			t.Fatalf("len got %d, want %d", l.Len(), i+1)
		}
		last, _ := l.At(l.Len() - 1)
		if last != task {
			t.Errorf("last task got %+v, want %+v", last, task)
		}
		if task.Completed {
			t.Error("new task should not be completed")
		}
		if task.Priority != p {
			t.Errorf("priority got %v, want %v", task.Priority, p)
		}
		if task.ID == "" {
			t.Error("expected an id")
		}
	}
}

func TestAddKeepsTextAsGiven(t *testing.T) {
	l := NewList()
	task, _ := l.Add("  padded  ", PriorityLow)
	if task.Text != "  padded  " {
		t.Errorf("Text: got %q", task.Text)
	}
}

func TestAddRejectsInvalidPriority(t *testing.T) {
	l := NewList()
	if _, ok := l.Add("x", Priority(9)); ok {
		t.Error("expected invalid priority to be ignored")
	}
	if l.Len() != 0 {
		t.Errorf("len got %d, want 0", l.Len())
	}
}

func TestUniqueIDsOnCollision(t *testing.T) {
	l := NewList(WithIDGenerator(func() string { return "same" }))
	a, _ := l.Add("a", PriorityLow)
	b, _ := l.Add("b", PriorityLow)
	if a.ID != "same" {
		t.Errorf("first id: got %q, want same", a.ID)
	}
	if b.ID == a.ID || b.ID == "" {
		t.Errorf("second id %q collides with %q", b.ID, a.ID)
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	l := NewList(WithIDGenerator(sequentialIDs()))
	l.Add("a", PriorityLow)
	b, _ := l.Add("b", PriorityLow)
	l.Add("c", PriorityLow)

	if !l.Remove(b.ID) {
		t.Fatal("first Remove returned false")
	}
	if l.Remove(b.ID) {
		t.Error("second Remove returned true")
	}
	if got := strings.Join(texts(l), ","); got != "a,c" {
		t.Errorf("order got %s, want a,c", got)
	}
	if l.Remove("missing") {
		t.Error("Remove of unknown id returned true")
	}
}

func TestToggleTwiceRestores(t *testing.T) {
	l := NewList()
	task, _ := l.Add("a", PriorityLow)

	l.ToggleComplete(task.ID)
	got, _ := l.Get(task.ID)
	if !got.Completed {
		t.Fatal("expected completed after first toggle")
	}
	l.ToggleComplete(task.ID)
	got, _ = l.Get(task.ID)
	if got.Completed {
		t.Error("expected incomplete after second toggle")
	}
	if l.ToggleComplete("missing") {
		t.Error("toggle of unknown id returned true")
	}
}

func TestChangePriorityClamps(t *testing.T) {
	l := NewList()
	high, _ := l.Add("high", PriorityHigh)
	low, _ := l.Add("low", PriorityLow)

	if l.ChangePriority(high.ID, Up) {
		t.Error("raising high reported a change")
	}
	if got, _ := l.Get(high.ID); got.Priority != PriorityHigh {
		t.Errorf("high: got %v", got.Priority)
	}
	if l.ChangePriority(low.ID, Down) {
		t.Error("lowering low reported a change")
	}
	if got, _ := l.Get(low.ID); got.Priority != PriorityLow {
		t.Errorf("low: got %v", got.Priority)
	}

	if !l.ChangePriority(low.ID, Up) {
		t.Error("raising low reported no change")
	}
	if got, _ := l.Get(low.ID); got.Priority != PriorityMedium {
		t.Errorf("raised low: got %v, want medium", got.Priority)
	}
	if l.ChangePriority("missing", Up) {
		t.Error("unknown id reported a change")
	}
}

func TestMoveBoundaries(t *testing.T) {
	l := NewList()
	for _, s := range []string{"a", "b", "c"} {
		l.Add(s, PriorityMedium)
	}

	tests := []struct {
		name     string
		position int
		dir      Direction
		changed  bool
	}{
		{"first up", 0, Up, false},
		{"last down", 2, Down, false},
		{"negative", -1, Down, false},
		{"past end", 3, Up, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.Move(tt.position, tt.dir); got != tt.changed {
				t.Errorf("Move(%d, %v): got %v, want %v", tt.position, tt.dir, got, tt.changed)
			}
			if got := strings.Join(texts(l), ","); got != "a,b,c" {
				t.Errorf("order got %s, want a,b,c", got)
			}
		})
	}
}

func TestMoveRoundTrip(t *testing.T) {
	l := NewList()
	for _, s := range []string{"a", "b", "c", "d"} {
		l.Add(s, PriorityMedium)
	}

	for i := 1; i < l.Len(); i++ {
		before := strings.Join(texts(l), ",")
		if !l.Move(i, Up) {
			t.Fatalf("Move(%d, up) returned false", i)
		}
		if !l.Move(i-1, Down) {
			t.Fatalf("Move(%d, down) returned false", i-1)
		}
		if got := strings.Join(texts(l), ","); got != before {
			t.Errorf("round trip at %d: got %s, want %s", i, got, before)
		}
	}
}

func TestCanMove(t *testing.T) {
	l := NewList()
	l.Add("a", PriorityLow)
	l.Add("b", PriorityLow)

	if l.CanMove(0, Up) || !l.CanMove(0, Down) {
		t.Error("first row controls wrong")
	}
	if !l.CanMove(1, Up) || l.CanMove(1, Down) {
		t.Error("last row controls wrong")
	}
	if NewList().CanMove(0, Down) {
		t.Error("empty list should not allow moves")
	}
}

func TestTasksReturnsCopy(t *testing.T) {
	l := NewList()
	l.Add("a", PriorityLow)
	tasks := l.Tasks()
	tasks[0].Text = "mutated"
	if got, _ := l.At(0); got.Text != "a" {
		t.Errorf("list mutated through copy: %q", got.Text)
	}
}

func TestScenario(t *testing.T) {
	l := NewList()
	milk, _ := l.Add("Buy milk", PriorityMedium)
	l.Add("Call bank", PriorityHigh)

	want := []Task{
		{Text: "Buy milk", Priority: PriorityMedium},
		{Text: "Call bank", Priority: PriorityHigh},
	}
	for i, task := range l.Tasks() {
		if task.Text != want[i].Text || task.Priority != want[i].Priority || task.Completed {
			t.Errorf("task %d: got %+v, want %+v", i, task, want[i])
		}
	}
	if l.Remaining() != 2 {
		t.Fatalf("Remaining: got %d, want 2", l.Remaining())
	}

	l.ToggleComplete(milk.ID)
	if l.Remaining() != 1 {
		t.Fatalf("Remaining after toggle: got %d, want 1", l.Remaining())
	}

	l.ChangePriority(milk.ID, Up)
	if got, _ := l.FindByText("Buy milk"); got.Priority != PriorityHigh {
		t.Fatalf("Buy milk priority: got %v, want high", got.Priority)
	}

	l.Move(1, Up)
	if got := strings.Join(texts(l), ","); got != "Call bank,Buy milk" {
		t.Errorf("order got %s, want Call bank,Buy milk", got)
	}
}

func TestWithLoggerLogsMutations(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	l := NewList(WithLogger(logger), WithIDGenerator(sequentialIDs()))

	l.Add("a", PriorityLow)
	l.ToggleComplete("t1")

	out := buf.String()
	if !strings.Contains(out, "task added") {
		t.Errorf("expected add log, got %q", out)
	}
	if !strings.Contains(out, "task toggled") {
		t.Errorf("expected toggle log, got %q", out)
	}
}
