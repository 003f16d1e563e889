// Package logging constructs the console logger.
package logging

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/dculotta/taskline/internal/config"
)

// New builds a leveled stderr logger from config. An unrecognized level
// falls back to warn rather than failing the run.
func New(cfg *config.Config) *log.Logger {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.WarnLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		Formatter:       log.TextFormatter,
		ReportTimestamp: false,
		Prefix:          "taskline",
	})
}
