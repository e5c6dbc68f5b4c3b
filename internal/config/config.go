// Package config resolves runtime settings from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config holds the settings the entrypoint needs to wire the application.
type Config struct {
	// DBPath is the SQLite file holding the ledger. ":memory:" keeps the
	// ledger for the lifetime of the process only.
	DBPath string

	// LogUseCases enables structured use-case logging to stderr.
	LogUseCases bool

	// NoTUI disables the interactive ledger screen on a bare invocation.
	NoTUI bool
}

// DefaultConfig returns the configuration used when no environment
// variables are set. The database lives under the user's home directory.
func DefaultConfig() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("finding home directory: %w", err)
	}
	return Config{
		DBPath: filepath.Join(home, ".laskuri", "laskuri.db"),
	}, nil
}

// LoadConfig reads configuration from environment variables, falling back
// to defaults for any unset values.
func LoadConfig() (Config, error) {
	return loadFrom(os.Getenv)
}

func loadFrom(getenv func(string) string) (Config, error) {
	var cfg Config
	if v := getenv("LASKURI_DB"); v != "" {
		cfg.DBPath = v
	} else {
		def, err := DefaultConfig()
		if err != nil {
			return Config{}, err
		}
		cfg = def
	}

	if v := getenv("LASKURI_LOG_USECASES"); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}
	if v := getenv("LASKURI_NO_TUI"); v != "" {
		cfg.NoTUI, _ = strconv.ParseBool(v)
	}
	return cfg, nil
}
