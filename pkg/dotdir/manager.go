// Package dotdir locates hop's home directory, which holds config.toml and,
// unless configured otherwise, the directory database.
package dotdir

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// dirName is the name of the hop directory under $HOME.
	dirName = ".hop"

	// xdgName is the name of the hop directory under $XDG_DATA_HOME.
	xdgName = "hop"

	// EnvDir overrides every other location.
	EnvDir = "HOP_DIR"
)

type Manager struct{}

func NewManager() *Manager {
	return &Manager{}
}

// Target returns the absolute path to the hop directory, creating it if
// needed. Order of precedence is as follows:
//  1. Provided override
//  2. $HOP_DIR
//  3. $XDG_DATA_HOME/hop
//  4. ~/.hop
func (m *Manager) Target(overrideDir string) (string, error) {
	var dir string

	switch {
	case overrideDir != "":
		dir = overrideDir

	case strings.TrimSpace(os.Getenv(EnvDir)) != "":
		dir = strings.TrimSpace(os.Getenv(EnvDir))

	case strings.TrimSpace(os.Getenv("XDG_DATA_HOME")) != "":
		dir = filepath.Join(strings.TrimSpace(os.Getenv("XDG_DATA_HOME")), xdgName)

	default:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("getting home directory: %w", err)
		}
		dir = filepath.Join(home, dirName)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating hop directory %s: %w", dir, err)
	}

	return filepath.Abs(dir)
}
