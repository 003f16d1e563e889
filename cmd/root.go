// Package cmd implements the CLI command structure for taskline.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/dculotta/taskline/internal/config"
	"github.com/dculotta/taskline/internal/logging"
	"github.com/dculotta/taskline/internal/tracker"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Run executes the taskline CLI.
func Run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("taskline", flag.ContinueOnError)
	fs.Usage = func() {
		printUsage(fs, os.Stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	// Global flags are registered by config.Load
	cfg, err := config.Load(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, os.Stdout)
		return nil
	}
	if *showVersion {
		return versionCommand()
	}

	logger := logging.New(cfg)

	// Determine the subcommand; default to "list"
	subcommand := "list"
	remaining := fs.Args()
	if len(remaining) > 0 && !strings.HasPrefix(remaining[0], "-") {
		subcommand = remaining[0]
		remaining = remaining[1:]
	}

	switch subcommand {
	case "add":
		return addCommand(cfg, logger, remaining)
	case "complete":
		return completeCommand(cfg, logger, remaining)
	case "delete":
		return deleteCommand(cfg, logger, remaining)
	case "list":
		return listCommand(cfg, logger, remaining)
	case "tui":
		return tuiCommand(ctx, cfg, logger, remaining)
	case "version", "--version", "-v":
		return versionCommand()
	case "help", "--help", "-h":
		printUsage(fs, os.Stdout)
		return nil
	default:
		// An argument naming an existing file is treated as the database
		// path for list
		if fi, err := os.Stat(subcommand); err == nil && !fi.IsDir() {
			cfg.File = subcommand
			return listCommand(cfg, logger, remaining)
		}
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, os.Stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// newTracker builds the configured storage backend.
func newTracker(cfg *config.Config) (tracker.Tracker, error) {
	tr, err := tracker.New(tracker.Options{
		Backend:  cfg.Backend,
		Path:     cfg.File,
		Validate: cfg.Validate,
	})
	if err != nil {
		return nil, fmt.Errorf("opening %s backend: %w", cfg.Backend, err)
	}
	return tr, nil
}

// closeTracker releases backend resources for backends that hold any.
func closeTracker(tr tracker.Tracker, logger *log.Logger) {
	if c, ok := tr.(io.Closer); ok {
		if err := c.Close(); err != nil {
			logger.Warn("closing backend", "err", err)
		}
	}
}

func versionCommand() error {
	fmt.Printf("taskline %s %s/%s\n", Version, runtime.GOOS, runtime.GOARCH)
	return nil
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, `taskline - a todo CLI application

Usage:
  taskline [flags] <command> [command flags]

Commands:
  add       Add a new task
  complete  Mark an existing task as finished
  delete    Remove a task
  list      Show tasks (default)
  tui       Interactive terminal viewer
  version   Show version
  help      Show this help

Flags:
`)
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintf(w, `
Examples:
  taskline add -name "Write report" -tags work,writing -deadline "2025-04-01 12:00"
  taskline list -overdue
  taskline complete 0
  taskline -backend sqlite -file tasks.db list -all
`)
}

// splitAndTrim splits s on sep, trims each piece, and drops empties.
func splitAndTrim(s, sep string) []string {
	var out []string
	for _, part := range strings.Split(s, sep) {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
