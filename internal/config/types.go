package config

import (
	"github.com/nibzard/tasklist/internal/todo"
)

// ConfigSource represents where a configuration value came from.
type ConfigSource string

const (
	SourceDefault  ConfigSource = "default"
	SourceUserFile ConfigSource = "user file"
	SourceProjFile ConfigSource = "project file"
	SourceFile     ConfigSource = "config file"
	SourceEnv      ConfigSource = "environment"
	SourceFlag     ConfigSource = "flag"
)

// ConfigWithSources holds configuration along with source information for each field.
type ConfigWithSources struct {
	Config  *Config
	Sources map[string]ConfigSource
	Files   []string
}

// Default values.
const (
	DefaultTitle     = "To-do"
	DefaultLogDir    = "~/.tasklist/logs"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
	DefaultAltScreen = true
)

// Config holds the full configuration for tasklist.
type Config struct {
	// Widget
	Title           string        `toml:"title"`
	DefaultPriority todo.Priority `toml:"default_priority"`
	AltScreen       bool          `toml:"alt_screen"`

	Colors ColorsConfig `toml:"colors"`
	Keys   KeysConfig   `toml:"keys"`

	// Logging configuration
	LogDir        string `toml:"log_dir"`
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
	LogCaller     bool   `toml:"log_caller"`

	// Explicit config file (--config or TASKLIST_CONFIG)
	ConfigFile string `toml:"-"`

	// Working directory (computed)
	ProjectRoot string `toml:"-"`
}

// ColorsConfig holds the badge colors per priority and the completed-task color.
// Values are hex colors ("#22c55e") or ANSI color numbers ("2").
type ColorsConfig struct {
	Low       string `toml:"low"`
	Medium    string `toml:"medium"`
	High      string `toml:"high"`
	Completed string `toml:"completed"`
}

// ForPriority returns the color for a priority level.
func (c ColorsConfig) ForPriority(p todo.Priority) string {
	switch p {
	case todo.PriorityHigh:
		return c.High
	case todo.PriorityMedium:
		return c.Medium
	default:
		return c.Low
	}
}

// KeysConfig maps widget actions to key names as reported by bubbletea
// ("up", "k", "shift+up", "space", "ctrl+c").
type KeysConfig struct {
	// List focus
	Up       []string `toml:"up"`
	Down     []string `toml:"down"`
	Toggle   []string `toml:"toggle"`
	Raise    []string `toml:"raise"`
	Lower    []string `toml:"lower"`
	MoveUp   []string `toml:"move_up"`
	MoveDown []string `toml:"move_down"`
	Delete   []string `toml:"delete"`
	Focus    []string `toml:"focus"`
	Help     []string `toml:"help"`
	Quit     []string `toml:"quit"`

	// Input focus
	Submit        []string `toml:"submit"`
	CyclePriority []string `toml:"cycle_priority"`
	Blur          []string `toml:"blur"`
}

// DefaultKeys returns the built-in key map.
func DefaultKeys() KeysConfig {
	return KeysConfig{
		Up:            []string{"up", "k"},
		Down:          []string{"down", "j"},
		Toggle:        []string{" ", "x"},
		Raise:         []string{"+", "="},
		Lower:         []string{"-"},
		MoveUp:        []string{"K", "shift+up"},
		MoveDown:      []string{"J", "shift+down"},
		Delete:        []string{"d", "delete"},
		Focus:         []string{"a", "i", "tab"},
		Help:          []string{"?"},
		Quit:          []string{"q"},
		Submit:        []string{"enter"},
		CyclePriority: []string{"tab"},
		Blur:          []string{"esc"},
	}
}

// DefaultColors returns the built-in palette: green, yellow and red badges,
// grey for completed tasks.
func DefaultColors() ColorsConfig {
	return ColorsConfig{
		Low:       "#22c55e",
		Medium:    "#eab308",
		High:      "#ef4444",
		Completed: "#6b7280",
	}
}

// Default returns a config holding only the built-in defaults.
func Default() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	cfg.Title = DefaultTitle
	cfg.DefaultPriority = todo.DefaultPriority
	cfg.AltScreen = DefaultAltScreen
	cfg.Colors = DefaultColors()
	cfg.Keys = DefaultKeys()
	cfg.LogDir = DefaultLogDir
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
}

// configFields returns the configurable keys tracked for sources, as
// dotted TOML paths.
func configFields() []string {
	return []string{
		"title",
		"default_priority",
		"alt_screen",
		"colors.low",
		"colors.medium",
		"colors.high",
		"colors.completed",
		"keys",
		"log_dir",
		"log_level",
		"log_format",
		"log_timestamps",
		"log_caller",
	}
}
