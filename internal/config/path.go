// Package config provides configuration utilities for the application.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// Default on-disk layout, relative to the working directory unless
// overridden in configuration.
const (
	DefaultDataDir   = "data"
	DefaultExportDir = "exports"
	DefaultChartDir  = "charts"
	DefaultDBName    = "expenses.db"
)

// DefaultDBPath returns the default database location under the data
// directory.
func DefaultDBPath() string {
	return filepath.Join(DefaultDataDir, DefaultDBName)
}

// ExpandPath expands ~ and environment variables in a file path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}
