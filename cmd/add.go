package cmd

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/dculotta/taskline/internal/config"
	"github.com/dculotta/taskline/internal/task"
)

// addCommand adds a new task to the tracker.
func addCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	fs := flag.NewFlagSet("taskline add", flag.ContinueOnError)
	name := fs.String("name", "", "Name of the task (required)")
	fs.StringVar(name, "n", "", "Name of the task (shorthand)")
	tags := fs.String("tags", "", "Comma-separated tags")
	fs.StringVar(tags, "t", "", "Comma-separated tags (shorthand)")
	deadlineArg := fs.String("deadline", "", `Deadline: "2006-01-02 15:04", a date (17:00 assumed), or a time (today assumed)`)
	fs.StringVar(deadlineArg, "d", "", "Deadline (shorthand)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if strings.TrimSpace(*name) == "" {
		return fmt.Errorf("add requires -name")
	}

	now := time.Now()
	deadline := task.DefaultDeadline(now)
	if *deadlineArg != "" {
		parsed, err := task.ParseDeadline(*deadlineArg, now)
		if err != nil {
			return err
		}
		deadline = parsed
	}

	tr, err := newTracker(cfg)
	if err != nil {
		return err
	}
	defer closeTracker(tr, logger)

	if err := tr.Add(*name, splitAndTrim(*tags, ","), &deadline); err != nil {
		return fmt.Errorf("adding task: %w", err)
	}
	logger.Debug("task added", "name", *name, "deadline", deadline)
	return nil
}
