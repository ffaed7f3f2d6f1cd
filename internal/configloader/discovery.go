// Package configloader discovers, parses and merges xmlnav configuration
// from the project directory, the user's XDG config directory and the
// environment.
package configloader

import (
	"os"
	"path/filepath"
)

// projectConfigFiles are the file names searched in the working
// directory, in order of preference.
//
//nolint:gochecknoglobals // Read-only lookup table.
var projectConfigFiles = []string{
	".xmlnav.yaml",
	".xmlnav.yml",
	"xmlnav.yaml",
}

// FindProjectConfig returns the path of the project config file in
// workDir, or "" when none exists.
func FindProjectConfig(workDir string) string {
	for _, name := range projectConfigFiles {
		candidate := filepath.Join(workDir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}

// FindUserConfig returns the user-level config path
// ($XDG_CONFIG_HOME/xmlnav/config.yaml, falling back to
// ~/.config/xmlnav/config.yaml), or "" when it does not exist.
func FindUserConfig() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configDir = filepath.Join(home, ".config")
	}

	for _, name := range []string{"config.yaml", "config.yml"} {
		candidate := filepath.Join(configDir, "xmlnav", name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}
