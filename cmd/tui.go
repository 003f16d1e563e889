package cmd

import (
	"context"
	"flag"

	"github.com/charmbracelet/log"

	"github.com/dculotta/taskline/internal/config"
	"github.com/dculotta/taskline/internal/style"
	"github.com/dculotta/taskline/internal/tracker"
	"github.com/dculotta/taskline/internal/ui"
)

// tuiCommand launches the interactive viewer.
func tuiCommand(ctx context.Context, cfg *config.Config, logger *log.Logger, args []string) error {
	fs := flag.NewFlagSet("taskline tui", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	tr, err := newTracker(cfg)
	if err != nil {
		return err
	}
	defer closeTracker(tr, logger)

	return ui.RunTUI(ctx, tr, tracker.ListOptions{
		Styles: style.New(!cfg.NoColor),
	})
}
