// Package config provides configuration utilities for the application.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

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

// DefaultStorePath returns the default on-disk location for a backend's
// data file when storage.path is not configured.
func DefaultStorePath(backend string) string {
	base := "$HOME/.local/share/budgeto"
	if backend == "flat" {
		return ExpandPath(base + "/budgeto.kv")
	}
	return ExpandPath(base + "/budgeto.db")
}
