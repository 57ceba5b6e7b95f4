package database

import (
	"cmp"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/papercomputeco/hop/pkg/logger"
)

const (
	fileName = "db.hop"
)

// Store holds every tracked directory in memory. Callers may edit Entries
// directly but must call MarkDirty afterwards so the change is persisted.
//
// A Store has a single owner and is not safe for concurrent use. Concurrent
// processes saving the same data directory do not corrupt it, but the last
// one to save wins.
type Store struct {
	Entries []Entry

	dirty   bool
	closed  bool
	dataDir string
	logger  *slog.Logger

	rename func(oldpath, newpath string) error
	remove func(name string) error
}

// Option configures a Store created with Open.
type Option func(*Store)

// WithLogger sets the logger Close reports save failures to.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// FilePath returns the database file location inside dataDir.
func FilePath(dataDir string) string {
	return filepath.Join(dataDir, fileName)
}

// Open loads the database stored in dataDir, creating the directory when
// needed. A missing or empty database file yields an empty store.
func Open(dataDir string, opts ...Option) (*Store, error) {
	s := &Store{
		dataDir: dataDir,
		logger:  logger.Nop(),
		rename:  os.Rename,
		remove:  os.Remove,
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, &IOError{Op: "create data directory", Path: dataDir, Err: err}
	}

	path := s.Path()
	buf, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.Debug("no database found, starting empty", "path", path)
			return s, nil
		}
		return nil, &IOError{Op: "read from database", Path: path, Err: err}
	}

	_, entries, err := Decode(buf)
	if err != nil {
		return nil, withPath(err, path)
	}

	s.Entries = entries
	s.logger.Debug("opened database", "path", path, "entries", len(entries))

	return s, nil
}

func withPath(err error, path string) error {
	var corrupted *CorruptedError
	if errors.As(err, &corrupted) {
		corrupted.Path = path
		return corrupted
	}

	var unsupported *UnsupportedSchemaError
	if errors.As(err, &unsupported) {
		unsupported.Path = path
		return unsupported
	}

	return fmt.Errorf("decoding database %s: %w", path, err)
}

// Path returns the database file location.
func (s *Store) Path() string {
	return FilePath(s.dataDir)
}

// DataDir returns the directory holding the database.
func (s *Store) DataDir() string {
	return s.dataDir
}

// Dirty reports whether Entries changed since the last successful save.
func (s *Store) Dirty() bool {
	return s.dirty
}

// MarkDirty records that Entries changed.
func (s *Store) MarkDirty() {
	s.dirty = true
}

// Matches orders Entries by descending score at now and returns the valid
// entries matching keywords, best first. Keywords are lowercased here.
// Validity is checked while iterating, so directories deleted since they
// were recorded are skipped. Each call sorts again.
func (s *Store) Matches(now Epoch, keywords []string) iter.Seq[*Entry] {
	slices.SortFunc(s.Entries, func(a, b Entry) int {
		return cmp.Compare(b.Score(now), a.Score(now))
	})

	lowered := make([]string, len(keywords))
	for i, kw := range keywords {
		lowered[i] = strings.ToLower(kw)
	}

	return func(yield func(*Entry) bool) {
		for i := range s.Entries {
			e := &s.Entries[i]
			if !e.IsMatch(lowered) || !e.IsValid() {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// Close saves pending changes once. A failed save is logged rather than
// returned because the caller is tearing down; call Save first to observe
// the error. Close is meant to be deferred right after Open.
func (s *Store) Close() {
	if s.closed {
		return
	}
	s.closed = true

	if err := s.Save(); err != nil {
		s.logger.Error("could not save database", "path", s.Path(), "error", err)
	}
}
