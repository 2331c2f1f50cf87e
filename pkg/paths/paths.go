// Package paths provides centralized path resolution for tabline's config
// and log files.
//
// Layout (XDG-style):
//
//	Config:  ~/.config/tabline/tabline.yaml  (override: TABLINE_CONFIG_DIR)
//	Logs:    /tmp/tabline-*.log
package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

var (
	configDirOnce   sync.Once
	configDirCached string
)

// ConfigDir resolves the config directory.
// Priority: TABLINE_CONFIG_DIR env > ~/.config/tabline/
func ConfigDir() string {
	configDirOnce.Do(func() {
		if env := os.Getenv("TABLINE_CONFIG_DIR"); env != "" {
			configDirCached = env
		} else {
			home, err := os.UserHomeDir()
			if err != nil {
				configDirCached = "."
			} else {
				configDirCached = filepath.Join(home, ".config", "tabline")
			}
		}
	})
	return configDirCached
}

// ConfigPath returns the full path to tabline.yaml.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "tabline.yaml")
}

// LogPath returns the debug log path for a binary (e.g. "bar").
func LogPath(name string) string {
	return filepath.Join(os.TempDir(), fmt.Sprintf("tabline-%s.log", name))
}

// EnsureConfigDir creates the config directory if it doesn't exist and returns its path.
func EnsureConfigDir() (string, error) {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create config dir %s: %w", dir, err)
	}
	return dir, nil
}

// ResetForTest clears cached values so tests can re-run resolution logic.
// Only use in tests.
func ResetForTest() {
	configDirOnce = sync.Once{}
	configDirCached = ""
}
