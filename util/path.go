package util

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandUser replaces a leading ~/ with the user's home directory.
func ExpandUser(path string) string {
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(os.Getenv("HOME"), path[2:])
	}
	return path
}

// ConfigDir returns $XDG_CONFIG_HOME/app, or ~/.config/app when the
// variable is unset.
func ConfigDir(app string) string {
	config := os.Getenv("XDG_CONFIG_HOME")
	if config == "" {
		config = ExpandUser("~/.config")
	}
	return filepath.Join(config, app)
}
