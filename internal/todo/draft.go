package todo

// Draft is the uncommitted input for the next task.
type Draft struct {
	Text     string
	Priority Priority

	defaultPriority Priority
}

// NewDraft returns an empty draft whose priority resets to def.
// An invalid def falls back to DefaultPriority.
func NewDraft(def Priority) *Draft {
	if !def.Valid() {
		def = DefaultPriority
	}
	return &Draft{Priority: def, defaultPriority: def}
}

// SetText replaces the draft text.
func (d *Draft) SetText(text string) {
	d.Text = text
}

// SetPriority selects the draft priority. Invalid values are ignored.
func (d *Draft) SetPriority(p Priority) {
	if p.Valid() {
		d.Priority = p
	}
}

// CyclePriority advances the selector low -> medium -> high -> low.
func (d *Draft) CyclePriority() Priority {
	if d.Priority >= PriorityHigh || !d.Priority.Valid() {
		d.Priority = PriorityLow
	} else {
		d.Priority++
	}
	return d.Priority
}

// Submit adds the draft to l. On success the draft is reset; on rejection it
// is left as is.
func (d *Draft) Submit(l *List) (Task, bool) {
	task, ok := l.Add(d.Text, d.Priority)
	if ok {
		d.Reset()
	}
	return task, ok
}

// Reset clears the text and restores the default priority.
func (d *Draft) Reset() {
	d.Text = ""
	d.Priority = d.defaultPriority
}
