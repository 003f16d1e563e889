package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Load loads configuration from multiple sources in priority order:
// 1. Defaults
// 2. User config file (~/.config/taskline/taskline.toml or ~/.taskline.toml)
// 3. Project config file (taskline.toml or .taskline.toml in current directory)
// 4. Environment variables (TASKLINE_*)
// 5. CLI flags
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := &Config{}
	setDefaults(cfg)

	if userFile := findUserConfigFile(); userFile != "" {
		if err := loadConfigFile(cfg, userFile); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", userFile, err)
		}
	}

	if projectFile := findProjectConfigFile(); projectFile != "" {
		if err := loadConfigFile(cfg, projectFile); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", projectFile, err)
		}
	}

	loadFromEnv(cfg)

	if err := parseFlags(cfg, fs, args); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	if err := finalize(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadConfigFile(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return err
	}
	return nil
}

// findUserConfigFile looks for a user-level config file, preferring the
// OS config directory over a dotfile in the home directory.
func findUserConfigFile() string {
	if dir, err := os.UserConfigDir(); err == nil {
		path := filepath.Join(dir, "taskline", "taskline.toml")
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, ".taskline.toml")
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// findProjectConfigFile looks for a config file in the current directory.
func findProjectConfigFile() string {
	for _, name := range []string{"taskline.toml", ".taskline.toml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// loadFromEnv overrides config from environment variables. The standard
// NO_COLOR variable is honored alongside TASKLINE_NO_COLOR.
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("TASKLINE_FILE"); v != "" {
		cfg.File = v
	}
	if v := os.Getenv("TASKLINE_BACKEND"); v != "" {
		cfg.Backend = v
	}
	if v := os.Getenv("TASKLINE_VALIDATE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Validate = b
		}
	}
	if v := os.Getenv("TASKLINE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TASKLINE_NO_COLOR"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.NoColor = b
		}
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		cfg.NoColor = true
	}
}

// parseFlags defines global flags on fs and parses args. Flag values
// default to the already-merged config, so unset flags change nothing.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string) error {
	if fs == nil {
		fs = flag.NewFlagSet("taskline", flag.ContinueOnError)
	}
	fs.StringVar(&cfg.File, "file", cfg.File, "Path to the task database")
	fs.StringVar(&cfg.Backend, "backend", cfg.Backend, "Storage backend (plaintext|json|sqlite)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug|info|warn|error)")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "Disable terminal styling")
	return fs.Parse(args)
}

func finalize(cfg *Config) error {
	cfg.Backend = strings.ToLower(strings.TrimSpace(cfg.Backend))
	switch cfg.Backend {
	case "plaintext", "json", "sqlite":
	default:
		return fmt.Errorf("invalid backend %q (want plaintext, json, or sqlite)", cfg.Backend)
	}
	if strings.TrimSpace(cfg.File) == "" {
		return fmt.Errorf("task file path is empty")
	}
	return nil
}
