package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/dculotta/taskline/internal/config"
	"github.com/dculotta/taskline/internal/style"
	"github.com/dculotta/taskline/internal/tracker"
)

// listCommand prints the task table.
func listCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	fs := flag.NewFlagSet("taskline list", flag.ContinueOnError)
	all := fs.Bool("all", false, "Include completed tasks")
	fs.BoolVar(all, "a", false, "Include completed tasks (shorthand)")
	overdue := fs.Bool("overdue", false, "Only show overdue tasks")
	fs.BoolVar(overdue, "o", false, "Only show overdue tasks (shorthand)")
	tags := fs.String("tags", "", "Only show tasks with any of these comma-separated tags")
	fs.StringVar(tags, "t", "", "Tag filter (shorthand)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if rest := fs.Args(); len(rest) > 0 {
		return fmt.Errorf("unexpected arguments: %v", rest)
	}

	tr, err := newTracker(cfg)
	if err != nil {
		return err
	}
	defer closeTracker(tr, logger)

	out, err := tr.List(tracker.ListOptions{
		All:     *all,
		Overdue: *overdue,
		Tags:    splitAndTrim(*tags, ","),
		Styles:  style.New(!cfg.NoColor),
	})
	if err != nil {
		return fmt.Errorf("listing tasks: %w", err)
	}
	fmt.Fprint(os.Stdout, out)
	return nil
}
