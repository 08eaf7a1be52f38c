package config

import (
	"os"

	"github.com/nibzard/tasklist/internal/todo"
	"github.com/nibzard/tasklist/internal/utils"
)

// loadFromEnv overrides config from TASKLIST_* environment variables.
// If sources is non-nil, it tracks the source of each value.
func loadFromEnv(cfg *Config, sources map[string]ConfigSource) {
	if v := os.Getenv("TASKLIST_TITLE"); v != "" {
		cfg.Title = v
		setSource(sources, "title", SourceEnv)
	}
	if v := os.Getenv("TASKLIST_DEFAULT_PRIORITY"); v != "" {
		// Invalid values are ignored; flags and files report parse errors.
		if p, err := todo.ParsePriority(v); err == nil {
			cfg.DefaultPriority = p
			setSource(sources, "default_priority", SourceEnv)
		}
	}
	if v := os.Getenv("TASKLIST_ALT_SCREEN"); v != "" {
		cfg.AltScreen = utils.BoolFromString(v)
		setSource(sources, "alt_screen", SourceEnv)
	}

	// Logging configuration
	if v := os.Getenv("TASKLIST_LOG_DIR"); v != "" {
		cfg.LogDir = v
		setSource(sources, "log_dir", SourceEnv)
	}
	if v := os.Getenv("TASKLIST_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
		setSource(sources, "log_level", SourceEnv)
	}
	if v := os.Getenv("TASKLIST_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
		setSource(sources, "log_format", SourceEnv)
	}
	if v := os.Getenv("TASKLIST_LOG_TIMESTAMPS"); v != "" {
		cfg.LogTimestamps = utils.BoolFromString(v)
		setSource(sources, "log_timestamps", SourceEnv)
	}
	if v := os.Getenv("TASKLIST_LOG_CALLER"); v != "" {
		cfg.LogCaller = utils.BoolFromString(v)
		setSource(sources, "log_caller", SourceEnv)
	}
}
