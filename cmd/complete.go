package cmd

import (
	"flag"
	"fmt"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/dculotta/taskline/internal/config"
)

// completeCommand marks the task at the given id as finished.
func completeCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	fs := flag.NewFlagSet("taskline complete", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	id, err := parseID(fs.Args(), "complete")
	if err != nil {
		return err
	}

	tr, err := newTracker(cfg)
	if err != nil {
		return err
	}
	defer closeTracker(tr, logger)

	if err := tr.Complete(id); err != nil {
		return fmt.Errorf("completing task %d: %w", id, err)
	}
	logger.Debug("task completed", "id", id)
	return nil
}

// parseID extracts the single non-negative task id argument.
func parseID(args []string, command string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%s requires exactly one task id", command)
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("task id %q is not an integer", args[0])
	}
	if id < 0 {
		return 0, fmt.Errorf("task id must not be negative, got %d", id)
	}
	return id, nil
}
