package cli

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultConfigPath returns the well-known location of the tool's
// configuration file under the user config directory.
func DefaultConfigPath(tool string) string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, tool, "config.yaml")
}

// ExpandPath resolves a user-supplied path before storage: a leading ~
// expands to the home directory and relative paths become absolute. Used as
// the transform for the global --config option.
func ExpandPath(raw string) (any, error) {
	path := raw
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return filepath.Abs(path)
}
