package config

import (
	"flag"
)

// flagFields maps flag names to the config keys they set.
var flagFields = map[string]string{
	"title":          "title",
	"priority":       "default_priority",
	"alt-screen":     "alt_screen",
	"log-dir":        "log_dir",
	"log-level":      "log_level",
	"log-format":     "log_format",
	"log-timestamps": "log_timestamps",
	"log-caller":     "log_caller",
}

// parseFlags defines and parses CLI flags bound directly to cfg.
// If sources is non-nil, flags that were set explicitly are tracked.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string, sources map[string]ConfigSource) error {
	if fs == nil {
		fs = flag.NewFlagSet(appName, flag.ContinueOnError)
	}

	// Already applied by explicitConfigFile; registered so it parses and shows in usage.
	var configFile string
	fs.StringVar(&configFile, "config", "", "Path to an extra config file")

	fs.StringVar(&cfg.Title, "title", cfg.Title, "Widget title")
	fs.TextVar(&cfg.DefaultPriority, "priority", cfg.DefaultPriority, "Default priority for new tasks (low|medium|high)")
	fs.BoolVar(&cfg.AltScreen, "alt-screen", cfg.AltScreen, "Use the terminal alternate screen")

	fs.StringVar(&cfg.LogDir, "log-dir", cfg.LogDir, "Session log directory (empty disables session logs)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug|info|warn|error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text|json|logfmt)")
	fs.BoolVar(&cfg.LogTimestamps, "log-timestamps", cfg.LogTimestamps, "Include timestamps in log lines")
	fs.BoolVar(&cfg.LogCaller, "log-caller", cfg.LogCaller, "Include caller location in log lines")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if sources != nil {
		fs.Visit(func(f *flag.Flag) {
			if field, ok := flagFields[f.Name]; ok {
				sources[field] = SourceFlag
			}
		})
	}
	return nil
}
