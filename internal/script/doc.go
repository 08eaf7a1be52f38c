// Package script replays recorded widget actions against a task list.
//
// A script is a JSON document:
//
//	{
//	  "schema_version": 1,
//	  "actions": [
//	    {"op": "add", "text": "Buy milk", "priority": "medium"},
//	    {"op": "add", "text": "Call bank", "priority": "high"},
//	    {"op": "toggle", "task": "Buy milk"},
//	    {"op": "priority", "task": "Buy milk", "direction": "up"},
//	    {"op": "move", "index": 1, "direction": "up"},
//	    {"op": "remove", "index": 0}
//	  ]
//	}
//
// Scripts are validated against an embedded JSON Schema (draft 2020-12) before
// they are decoded. remove, toggle and priority address a task either by its
// exact text ("task", first match) or by position ("index"); the target is
// resolved to a task id when the action runs. Actions whose target does not
// resolve are no-ops, the same as the list operations they drive.
//
// Scripts are input only. Nothing is written back.
package script
