package utils

import (
	"fmt"
	"path/filepath"
)

// AbsPath makes path absolute and clean. With resolveSymlinks, every symlink
// along it is resolved as well, which requires the path to exist.
func AbsPath(path string, resolveSymlinks bool) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", path, err)
	}
	if !resolveSymlinks {
		return abs, nil
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("resolving symlinks in %s: %w", abs, err)
	}
	return resolved, nil
}
