package todo

import (
	"encoding/json"
	"testing"
)

func TestParsePriority(t *testing.T) {
	tests := []struct {
		in      string
		want    Priority
		wantErr bool
	}{
		{"low", PriorityLow, false},
		{"Medium", PriorityMedium, false},
		{" HIGH ", PriorityHigh, false},
		{"urgent", PriorityLow, true},
		{"", PriorityLow, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePriority(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePriority(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParsePriority(%q): got %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPriorityStepClamps(t *testing.T) {
	tests := []struct {
		name string
		from Priority
		dir  Direction
		want Priority
	}{
		{"low up", PriorityLow, Up, PriorityMedium},
		{"medium up", PriorityMedium, Up, PriorityHigh},
		{"high up stays", PriorityHigh, Up, PriorityHigh},
		{"high down", PriorityHigh, Down, PriorityMedium},
		{"medium down", PriorityMedium, Down, PriorityLow},
		{"low down stays", PriorityLow, Down, PriorityLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.Step(tt.dir); got != tt.want {
				t.Errorf("%v.Step(%v): got %v, want %v", tt.from, tt.dir, got, tt.want)
			}
		})
	}
}

func TestPriorityString(t *testing.T) {
	if got := Priority(7).String(); got != "priority(7)" {
		t.Errorf("String: got %q", got)
	}
	if Priority(7).Valid() {
		t.Error("Priority(7) should not be valid")
	}
}

func TestTaskJSON(t *testing.T) {
	task := Task{ID: "a1", Text: "Buy milk", Priority: PriorityHigh}
	data, err := json.Marshal(task)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	want := `{"id":"a1","text":"Buy milk","priority":"high","completed":false}`
	if string(data) != want {
		t.Errorf("Marshal: got %s, want %s", data, want)
	}

	var decoded Task
	if err := json.Unmarshal([]byte(`{"id":"b","text":"x","priority":"low"}`), &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if decoded.Priority != PriorityLow {
		t.Errorf("Priority: got %v, want low", decoded.Priority)
	}

	if err := json.Unmarshal([]byte(`{"priority":"urgent"}`), &decoded); err == nil {
		t.Error("expected error for unknown priority")
	}
}

func TestParseDirection(t *testing.T) {
	if d, err := ParseDirection("UP"); err != nil || d != Up {
		t.Errorf("ParseDirection(UP): got %v, %v", d, err)
	}
	if d, err := ParseDirection("down"); err != nil || d != Down {
		t.Errorf("ParseDirection(down): got %v, %v", d, err)
	}
	if _, err := ParseDirection("left"); err == nil {
		t.Error("expected error for left")
	}
}
