// Package cmd implements the CLI command structure for tasklist.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/nibzard/tasklist/internal/config"
	"github.com/nibzard/tasklist/internal/logging"
	"github.com/nibzard/tasklist/internal/script"
	"github.com/nibzard/tasklist/internal/todo"
	"github.com/nibzard/tasklist/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Run executes the tasklist CLI.
func Run(ctx context.Context, args []string) error {
	return run(ctx, args, os.Stdout, os.Stderr)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Create a flag set for global options
	fs := flag.NewFlagSet("tasklist", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		printUsage(fs, stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	cws, err := config.LoadWithSources(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg := cws.Config
	if *help {
		printUsage(fs, stdout)
		return nil
	}
	if *showVersion {
		return versionCommand(stdout)
	}

	// No args or a leading flag means the widget
	subcommand := "tui"
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 && !strings.HasPrefix(remainingArgs[0], "-") {
		subcommand = remainingArgs[0]
		remainingArgs = remainingArgs[1:]
	}

	switch subcommand {
	case "tui":
		return tuiCommand(ctx, cfg, remainingArgs)
	case "play":
		return playCommand(cfg, remainingArgs, stdout, stderr)
	case "validate":
		return validateCommand(cfg, remainingArgs, stdout, stderr)
	case "config":
		return configCommand(cws, remainingArgs, stdout)
	case "logs":
		return logsCommand(ctx, cfg, remainingArgs, stdout)
	case "version":
		return versionCommand(stdout)
	case "help":
		printUsage(fs, stdout)
		return nil
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// consoleLogger returns the stderr logger used by non-interactive commands.
func consoleLogger(cfg *config.Config, w io.Writer) *log.Logger {
	return logging.New(w, logging.OptionsFromStrings(cfg.LogLevel, cfg.LogFormat, cfg.LogTimestamps, cfg.LogCaller))
}

// tuiCommand launches the interactive widget.
func tuiCommand(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("tasklist tui", flag.ContinueOnError)
	seed := fs.String("script", "", "Replay a script before starting")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	session, err := logging.NewSessionLogger(cfg.LogDir, cfg.ProjectRoot)
	if err != nil {
		return fmt.Errorf("creating session log: %w", err)
	}
	defer session.Close()

	logger := logging.New(session.Writer(), logging.OptionsFromStrings(cfg.LogLevel, cfg.LogFormat, true, cfg.LogCaller))
	logger = logger.With("session", session.SessionID)

	list := todo.NewList(todo.WithLogger(logger))
	if *seed != "" {
		s, err := script.Load(*seed)
		if err != nil {
			return fmt.Errorf("loading script: %w", err)
		}
		if _, err := script.Replay(list, s, cfg.DefaultPriority); err != nil {
			return fmt.Errorf("replaying script: %w", err)
		}
		logger.Info("seeded from script", "path", *seed, "tasks", list.Len())
	}

	return ui.RunTUI(ctx, cfg, ui.WithLogger(logger), ui.WithList(list))
}

// playCommand replays a script against an empty list and prints the result.
func playCommand(cfg *config.Config, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("tasklist play", flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("v", false, "Print the outcome of each action")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("play requires exactly one script file")
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := consoleLogger(cfg, stderr)
	path := fs.Arg(0)
	s, err := script.Load(path)
	if err != nil {
		return fmt.Errorf("loading script: %w", err)
	}

	list := todo.NewList(todo.WithLogger(logger))
	outcomes, err := script.Replay(list, s, cfg.DefaultPriority)
	if err != nil {
		return fmt.Errorf("replaying script: %w", err)
	}
	logger.Info("script replayed", "path", path, "actions", len(outcomes), "tasks", list.Len())

	if *verbose {
		for _, o := range outcomes {
			fmt.Fprintln(stdout, o)
		}
		fmt.Fprintln(stdout)
	}

	styles := ui.NewStyles(cfg.Colors)
	fmt.Fprintln(stdout, styles.Title.Render(cfg.Title))
	fmt.Fprintln(stdout, ui.RenderList(list, ui.NoCursor, styles))
	fmt.Fprintln(stdout, styles.Footer.Render(ui.RenderFooter(list.Remaining())))
	return nil
}

// validateCommand checks a script against the schema without replaying it.
func validateCommand(cfg *config.Config, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("tasklist validate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("validate requires exactly one script file")
	}

	path := fs.Arg(0)
	s, err := script.Load(path)
	if err != nil {
		var invalid *script.InvalidError
		if !errors.As(err, &invalid) {
			return err
		}
		fmt.Fprintf(stdout, "%s: invalid\n", path)
		for _, e := range invalid.Errors {
			fmt.Fprintf(stdout, "  - %s\n", e)
		}
		return fmt.Errorf("%s: %d validation errors", path, len(invalid.Errors))
	}

	consoleLogger(cfg, stderr).Debug("script valid", "path", path)
	fmt.Fprintf(stdout, "%s: ok (%d actions)\n", path, len(s.Actions))
	return nil
}

// configCommand prints the effective configuration and where each value came from.
func configCommand(cws *config.ConfigWithSources, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("tasklist config", flag.ContinueOnError)
	example := fs.Bool("example", false, "Print an example configuration file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *example {
		fmt.Fprint(stdout, config.ExampleConfig())
		return nil
	}

	if err := toml.NewEncoder(stdout).Encode(cws.Config); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	fmt.Fprintln(stdout)
	if len(cws.Files) == 0 {
		fmt.Fprintln(stdout, "# Files: none")
	} else {
		fmt.Fprintln(stdout, "# Files:")
		for _, f := range cws.Files {
			fmt.Fprintf(stdout, "#   %s\n", f)
		}
	}

	fmt.Fprintln(stdout, "# Sources:")
	fields := make([]string, 0, len(cws.Sources))
	for field := range cws.Sources {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		fmt.Fprintf(stdout, "#   %-18s %s\n", field, cws.Sources[field])
	}

	if err := cws.Config.Validate(); err != nil {
		fmt.Fprintln(stdout, "# Problems:")
		for _, line := range strings.Split(err.Error(), "\n") {
			fmt.Fprintf(stdout, "#   %s\n", line)
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// logsCommand prints the latest session log.
func logsCommand(ctx context.Context, cfg *config.Config, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("tasklist logs", flag.ContinueOnError)
	follow := fs.Bool("f", false, "Follow the log (like tail -f)")
	fs.BoolVar(follow, "follow", false, "Follow the log (like tail -f)")
	n := fs.Int("n", 0, "Number of lines to show (0 = all)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logDir, err := logging.FindLogDir(cfg.LogDir, cfg.ProjectRoot)
	if err != nil {
		return fmt.Errorf("finding log directory: %w", err)
	}
	logPath, err := logging.FindLatestLog(logDir)
	if err != nil {
		return fmt.Errorf("finding latest log: %w", err)
	}
	if logPath == "" {
		fmt.Fprintln(stdout, "No log files found.")
		return nil
	}

	fmt.Fprintf(stdout, "Log: %s\n", logPath)
	if *follow {
		fmt.Fprintln(stdout, "(Ctrl+C to stop)")
	}
	fmt.Fprintln(stdout)

	return logging.TailLog(ctx, stdout, logPath, *n, *follow)
}

// versionCommand prints version information.
func versionCommand(w io.Writer) error {
	fmt.Fprintf(w, "tasklist version %s\n", Version)
	return nil
}

// printUsage prints the usage message.
func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "tasklist - a terminal to-do list")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  tasklist [options] [command] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  tui [-script file]      Launch the widget (default command)")
	fmt.Fprintln(w, "  play [-v] <script>      Replay a script and print the resulting list")
	fmt.Fprintln(w, "  validate <script>       Check a script against the schema")
	fmt.Fprintln(w, "  config [-example]       Show effective configuration and sources")
	fmt.Fprintln(w, "  logs [-n N] [-f]        Print the latest session log")
	fmt.Fprintln(w, "  version                 Show version information")
	fmt.Fprintln(w, "  help                    Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
}
