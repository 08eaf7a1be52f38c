package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# tasklist configuration file
# Values can be overridden by TASKLIST_* environment variables or CLI flags

# Heading shown above the list
title = "To-do"

# Priority preselected for new tasks: low, medium or high
default_priority = "medium"

# Draw the widget on the terminal's alternate screen
alt_screen = true

# Session log directory; ~ and $VAR are expanded, relative paths are
# taken from the working directory
log_dir = "~/.tasklist/logs"

# Logging: debug, info, warn, error / text, json, logfmt
log_level = "info"
log_format = "text"
log_timestamps = false
log_caller = false

# Priority badge colors (hex or ANSI 0-255)
[colors]
low = "#22c55e"
medium = "#eab308"
high = "#ef4444"
completed = "#6b7280"

# Key bindings, as bubbletea key names
[keys]
up = ["up", "k"]
down = ["down", "j"]
toggle = [" ", "x"]
raise = ["+", "="]
lower = ["-"]
move_up = ["K", "shift+up"]
move_down = ["J", "shift+down"]
delete = ["d", "delete"]
focus = ["a", "i", "tab"]
help = ["?"]
quit = ["q"]
submit = ["enter"]
cycle_priority = ["tab"]
blur = ["esc"]
`
}
