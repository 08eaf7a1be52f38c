// Package todo holds the in-memory task list behind the to-do widget.
//
// A List is an ordered sequence of tasks. Order is chosen by the user and is
// independent of priority or completion state. Every mutation is synchronous
// and total: operations on unknown ids or out-of-range positions leave the list
// unchanged and report false instead of returning an error.
//
// # Operations
//
//   - Add appends a task; whitespace-only text is ignored
//   - Remove deletes a task by id
//   - ToggleComplete flips a task's completed flag
//   - ChangePriority steps the priority toward high (Up) or low (Down), clamping
//   - Move swaps the task at a position with its neighbor
//
// # Priority
//
// Priorities form the ordered enumeration low < medium < high. They marshal as
// the lowercase names, so they can appear directly in TOML config and JSON
// action scripts.
//
// # Drafts
//
// A Draft is the uncommitted text and priority of the next task. It lives
// separately from the List: Submit adds the draft to a list and resets it, and a
// rejected submit leaves the draft untouched.
//
// A List is not safe for concurrent use. The widget mutates it from a single
// event loop.
package todo
