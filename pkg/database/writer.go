package database

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// tempPattern matches every name tempPath produces.
const tempPattern = "db-*.hop.tmp"

// tempPath returns a fresh temporary file name next to the database so the
// final rename never crosses filesystems.
func tempPath(dataDir string) string {
	return filepath.Join(dataDir, "db-"+uuid.NewString()+".hop.tmp")
}

// Save writes Entries to disk if they changed since the last save. The
// bytes go to a temporary file in the data directory which is then renamed
// over the database, so readers see either the old file or the new one.
//
// When writing or renaming fails the temporary file is removed. If that
// removal fails too, its error is returned instead of the original one.
func (s *Store) Save() error {
	if !s.dirty {
		return nil
	}

	buf, err := Encode(CurrentVersion, s.Entries)
	if err != nil {
		return err
	}

	tmp := tempPath(s.dataDir)
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return &IOError{Op: "create temporary database", Path: tmp, Err: err}
	}

	// Not every filesystem supports preallocation.
	_ = f.Truncate(int64(len(buf)))

	if err := s.commit(f, tmp, buf); err != nil {
		if rmErr := s.remove(tmp); rmErr != nil {
			return &IOError{Op: "remove temporary database", Path: tmp, Err: rmErr}
		}
		return err
	}

	s.dirty = false
	s.logger.Debug("saved database", "path", s.Path(), "entries", len(s.Entries), "bytes", len(buf))

	return nil
}

func (s *Store) commit(f *os.File, tmp string, buf []byte) error {
	if _, err := f.Write(buf); err != nil {
		_ = f.Close()
		return &IOError{Op: "write to temporary database", Path: tmp, Err: err}
	}
	if err := f.Close(); err != nil {
		return &IOError{Op: "write to temporary database", Path: tmp, Err: err}
	}

	path := s.Path()
	if err := s.rename(tmp, path); err != nil {
		return &IOError{Op: "create database", Path: path, Err: err}
	}

	return nil
}
