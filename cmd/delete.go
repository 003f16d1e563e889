package cmd

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/dculotta/taskline/internal/config"
)

// deleteCommand removes the task at the given id.
func deleteCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	fs := flag.NewFlagSet("taskline delete", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	id, err := parseID(fs.Args(), "delete")
	if err != nil {
		return err
	}

	tr, err := newTracker(cfg)
	if err != nil {
		return err
	}
	defer closeTracker(tr, logger)

	if err := tr.Delete(id); err != nil {
		return fmt.Errorf("deleting task %d: %w", id, err)
	}
	logger.Debug("task deleted", "id", id)
	return nil
}
