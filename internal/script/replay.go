package script

import (
	"fmt"

	"github.com/nibzard/tasklist/internal/todo"
)

// Outcome records what one action did.
type Outcome struct {
	Step    int // 1-based position in the script
	Op      Op
	TaskID  string // resolved task id, empty if the target did not resolve
	Applied bool   // false when the action was a no-op
}

func (o Outcome) String() string {
	status := "applied"
	if !o.Applied {
		status = "no-op"
	}
	if o.TaskID == "" {
		return fmt.Sprintf("#%d %s: %s", o.Step, o.Op, status)
	}
	return fmt.Sprintf("#%d %s %s: %s", o.Step, o.Op, o.TaskID, status)
}

// Replay applies the script's actions to l in order. Adds go through a draft
// whose priority resets to defaultPriority, so "add" without a priority
// behaves like submitting the widget's input row untouched.
func Replay(l *todo.List, s *Script, defaultPriority todo.Priority) ([]Outcome, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	draft := todo.NewDraft(defaultPriority)
	outcomes := make([]Outcome, 0, len(s.Actions))
	for i, action := range s.Actions {
		outcome := Outcome{Step: i + 1, Op: action.Op}
		switch action.Op {
		case OpAdd:
			draft.SetText(action.Text)
			if action.Priority != nil {
				draft.SetPriority(*action.Priority)
			}
			task, ok := draft.Submit(l)
			if !ok {
				// A rejected add leaves the draft in place; replayed steps are
				// independent, so start the next one clean.
				draft.Reset()
			}
			outcome.TaskID = task.ID
			outcome.Applied = ok
		case OpRemove:
			if task, ok := resolve(l, action); ok {
				outcome.TaskID = task.ID
				outcome.Applied = l.Remove(task.ID)
			}
		case OpToggle:
			if task, ok := resolve(l, action); ok {
				outcome.TaskID = task.ID
				outcome.Applied = l.ToggleComplete(task.ID)
			}
		case OpPriority:
			if task, ok := resolve(l, action); ok {
				outcome.TaskID = task.ID
				outcome.Applied = l.ChangePriority(task.ID, *action.Direction)
			}
		case OpMove:
			if task, ok := l.At(*action.Index); ok {
				outcome.TaskID = task.ID
			}
			outcome.Applied = l.Move(*action.Index, *action.Direction)
		default:
			return outcomes, fmt.Errorf("action %d: unknown op %q", i+1, action.Op)
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes, nil
}

// resolve finds the task an action targets, by text first, then by index.
func resolve(l *todo.List, action Action) (todo.Task, bool) {
	if action.Task != "" {
		return l.FindByText(action.Task)
	}
	if action.Index != nil {
		return l.At(*action.Index)
	}
	return todo.Task{}, false
}
