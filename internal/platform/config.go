package platform

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileConfig is the optional YAML configuration read by the CLI.
type FileConfig struct {
	// Store overrides the default blob location.
	Store string `yaml:"store"`
	// DefaultImportance pre-selects the importance applied when the user
	// does not pass one (low, medium or high).
	DefaultImportance string `yaml:"default_importance"`
	// Versioned enables local git history for the blob.
	Versioned bool `yaml:"versioned"`
}

// LoadConfig reads the config file at path. A missing file is not an error
// and yields the zero config; an unreadable or invalid file is.
func LoadConfig(path string) (FileConfig, error) {
	var cfg FileConfig

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}
