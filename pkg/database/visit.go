package database

import (
	"fmt"
	"path/filepath"
	"slices"
)

// Add records a visit to path at now. A known path gains one rank point and
// takes now as its last access time; an unknown one starts at rank 1.
func (s *Store) Add(path string, now Epoch) {
	s.AddWithRank(path, 1.0, now)
}

// AddWithRank is Add with a caller chosen rank increment.
func (s *Store) AddWithRank(path string, rank float64, now Epoch) {
	if i := s.index(path); i >= 0 {
		s.Entries[i].Rank += rank
		s.Entries[i].LastAccessed = now
	} else {
		s.Entries = append(s.Entries, Entry{Path: path, Rank: rank, LastAccessed: now})
	}
	s.dirty = true
}

// Remove deletes path and reports whether it was tracked.
func (s *Store) Remove(path string) bool {
	i := s.index(path)
	if i < 0 {
		return false
	}
	s.Entries = slices.Delete(s.Entries, i, i+1)
	s.dirty = true
	return true
}

// Get returns the entry for path, or nil.
func (s *Store) Get(path string) *Entry {
	if i := s.index(path); i >= 0 {
		return &s.Entries[i]
	}
	return nil
}

// Age keeps the total rank bounded. Once the sum of ranks exceeds maxAge,
// every rank is scaled so the sum drops to 90% of maxAge and entries left
// below rank 1 are forgotten. It returns the number of entries dropped.
func (s *Store) Age(maxAge float64) int {
	var sum float64
	for i := range s.Entries {
		sum += s.Entries[i].Rank
	}
	if sum <= maxAge {
		return 0
	}

	factor := 0.9 * maxAge / sum
	for i := range s.Entries {
		s.Entries[i].Rank *= factor
	}

	before := len(s.Entries)
	s.Entries = slices.DeleteFunc(s.Entries, func(e Entry) bool {
		return e.Rank < 1.0
	})
	s.dirty = true

	return before - len(s.Entries)
}

// Prune forgets every entry that is no longer valid and returns how many
// were removed.
func (s *Store) Prune() int {
	before := len(s.Entries)
	s.Entries = slices.DeleteFunc(s.Entries, func(e Entry) bool {
		return !e.IsValid()
	})

	removed := before - len(s.Entries)
	if removed > 0 {
		s.dirty = true
	}
	return removed
}

func (s *Store) index(path string) int {
	return slices.IndexFunc(s.Entries, func(e Entry) bool {
		return e.Path == path
	})
}

// Excluder rejects paths matching any of a set of glob patterns.
type Excluder struct {
	patterns []string
}

// NewExcluder validates patterns using filepath.Match syntax.
func NewExcluder(patterns []string) (*Excluder, error) {
	for _, p := range patterns {
		if _, err := filepath.Match(p, ""); err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", p, err)
		}
	}
	return &Excluder{patterns: patterns}, nil
}

// Excluded reports whether path matches one of the patterns.
func (x *Excluder) Excluded(path string) bool {
	if x == nil {
		return false
	}
	for _, p := range x.patterns {
		if ok, _ := filepath.Match(p, path); ok {
			return true
		}
	}
	return false
}
