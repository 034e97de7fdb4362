package config

import (
	"os"
	"path/filepath"
)

// DefaultModel is used when neither the config file, environment, nor flags
// name a model.
const DefaultModel = "gemini-2.5-flash"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Provider:    ProviderGoogle,
		Model:       DefaultModel,
		IncludeDate: true,
		DateFormat:  "YYYY-MM-DD",
		Separator:   "_",
		Casing:      CasingLower,
	}
}

// DefaultPaths returns the config file locations searched when --config is
// not given, in order: ./parselmouth.yaml, then the user-level config.
func DefaultPaths() []string {
	paths := []string{"parselmouth.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "parselmouth", "config.yaml"))
	}
	return paths
}
