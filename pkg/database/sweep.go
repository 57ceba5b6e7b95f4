package database

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Orphans lists temporary database files in dataDir left behind by a save that
// never reached its rename.
func Orphans(dataDir string) ([]string, error) {
	entries, err := os.ReadDir(dataDir)
	if err != nil {
		return nil, fmt.Errorf("listing temporary files: %w", err)
	}

	var matches []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if ok, _ := filepath.Match(tempPattern, e.Name()); ok {
			matches = append(matches, filepath.Join(dataDir, e.Name()))
		}
	}
	return matches, nil
}

// RemoveOrphans deletes orphaned temporary files last modified more than
// minAge ago and returns how many it removed. Younger files may belong to a
// save still in progress in another process.
func RemoveOrphans(dataDir string, minAge time.Duration, now time.Time) (int, error) {
	orphans, err := Orphans(dataDir)
	if err != nil {
		return 0, err
	}

	removed := 0
	var errs []error
	for _, path := range orphans {
		info, err := os.Stat(path)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				errs = append(errs, err)
			}
			continue
		}
		if now.Sub(info.ModTime()) < minAge {
			continue
		}
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, fmt.Errorf("removing %s: %w", path, err))
			continue
		}
		removed++
	}

	return removed, errors.Join(errs...)
}
