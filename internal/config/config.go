// Package config handles configuration loading and defaults.
package config

// Default values.
const (
	DefaultFile     = "./database"
	DefaultBackend  = "plaintext"
	DefaultLogLevel = "warn"
)

// Config holds the full configuration for taskline.
type Config struct {
	// File is the path to the backing task database.
	File string `toml:"file"`

	// Backend selects the storage backend (plaintext, json, sqlite).
	Backend string `toml:"backend"`

	// Validate enables schema validation of the json backend's document.
	Validate bool `toml:"validate"`

	// LogLevel sets console log verbosity (debug, info, warn, error).
	LogLevel string `toml:"log_level"`

	// NoColor disables terminal styling in listings.
	NoColor bool `toml:"no_color"`
}

func setDefaults(cfg *Config) {
	cfg.File = DefaultFile
	cfg.Backend = DefaultBackend
	cfg.Validate = true
	cfg.LogLevel = DefaultLogLevel
	cfg.NoColor = false
}
