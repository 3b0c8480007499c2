package platform

import (
	"os"
	"path/filepath"
)

// DefaultStorePath returns the blob location used when the user configures
// nothing: $JOT_STORE if set, otherwise ~/.jot/notes.json.
func DefaultStorePath() string {
	if env := os.Getenv("JOT_STORE"); env != "" {
		return env
	}

	home, err := os.UserHomeDir()
	if err != nil {
		// Last resort: relative to the working directory.
		return filepath.Join(".jot", "notes.json")
	}
	return filepath.Join(home, ".jot", "notes.json")
}

// DefaultConfigPath returns the location of the optional YAML config file.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "jot", "config.yaml")
}
