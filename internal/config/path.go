// Package config resolves user-facing configuration into domain types.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath expands a leading ~ and any $VAR environment references in a
// file path, so menu and config paths from flags or YAML behave like shell
// paths.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}
