package todo

import "testing"

func TestDraftSubmitResets(t *testing.T) {
	l := NewList()
	d := NewDraft(PriorityMedium)
	d.SetText("Call bank")
	d.SetPriority(PriorityHigh)

	task, ok := d.Submit(l)
	if !ok {
		t.Fatal("Submit returned false")
	}
	if task.Priority != PriorityHigh {
		t.Errorf("task priority: got %v, want high", task.Priority)
	}
	if d.Text != "" || d.Priority != PriorityMedium {
		t.Errorf("draft not reset: %+v", d)
	}
}

func TestDraftRejectedSubmitKeepsDraft(t *testing.T) {
	l := NewList()
	d := NewDraft(PriorityMedium)
	d.SetText("   ")
	d.SetPriority(PriorityLow)

	if _, ok := d.Submit(l); ok {
		t.Fatal("blank submit returned true")
	}
	if d.Text != "   " || d.Priority != PriorityLow {
		t.Errorf("draft changed on rejection: %+v", d)
	}
	if l.Len() != 0 {
		t.Errorf("list len: got %d, want 0", l.Len())
	}
}

func TestDraftCyclePriority(t *testing.T) {
	d := NewDraft(PriorityLow)
	want := []Priority{PriorityMedium, PriorityHigh, PriorityLow, PriorityMedium}
	for i, w := range want {
		if got := d.CyclePriority(); got != w {
			t.Errorf("cycle %d: got %v, want %v", i, got, w)
		}
	}
}

func TestNewDraftInvalidDefault(t *testing.T) {
	d := NewDraft(Priority(-1))
	if d.Priority != DefaultPriority {
		t.Errorf("got %v, want %v", d.Priority, DefaultPriority)
	}
	d.SetPriority(Priority(5))
	if d.Priority != DefaultPriority {
		t.Errorf("invalid SetPriority changed draft to %v", d.Priority)
	}
}
