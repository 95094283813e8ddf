// Package config holds the CLI's file-name defaults and environment
// overrides.
package config

import (
	"os"
	"path/filepath"
)

// Default file names, relative to the submission directory.
const (
	DefaultInput  = "metadata.yaml"
	DefaultOutput = "article-metadata.tex"
)

// Environment variables overriding the defaults. They may be provided
// via a .env file in the working directory.
const (
	EnvInput  = "METATEX_INPUT"
	EnvOutput = "METATEX_OUTPUT"
)

// FromEnv returns the value of the environment variable key, or fallback
// when it is unset or empty.
func FromEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// ExpandPath expands ~ to the user's home directory.
// Returns the original path unchanged if it doesn't start with ~.
func ExpandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path // Return original if we can't get home directory
	}

	return filepath.Join(home, path[1:])
}
