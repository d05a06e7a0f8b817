package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Dir returns the devscope config directory under the user config base.
// On Linux, this typically resolves to $XDG_CONFIG_HOME/devscope; on macOS
// to ~/Library/Application Support/devscope; and on Windows to
// %AppData%/devscope. Falls back to HOME when UserConfigDir is unavailable.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil || strings.TrimSpace(base) == "" {
		if home, herr := os.UserHomeDir(); herr == nil {
			base = home
		} else {
			return "", errors.New("cannot determine config directory")
		}
	}
	return filepath.Join(base, "devscope"), nil
}

// CacheFile returns the path of the persistent tool cache.
func CacheFile() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "tools.json"), nil
}

// SettingsFile returns the path of the user settings store.
func SettingsFile() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "settings.json"), nil
}
