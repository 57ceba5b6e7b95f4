// Package database is the frecency store behind hop: an in-memory list of
// visited directories persisted to a versioned binary file that is only
// ever replaced atomically.
package database

import (
	"math"
	"os"
)

// Epoch is a Unix timestamp in seconds. It is signed so that now minus a
// timestamp from a skewed clock is still meaningful.
type Epoch = int64

// Entry is one tracked directory.
type Entry struct {
	// Path identifies the directory. The store never normalizes it.
	Path string

	// Rank is the accumulated visit weight.
	Rank float64

	// LastAccessed is when the directory was last visited.
	LastAccessed Epoch
}

// IsValid reports whether the entry may be offered as a result: its rank is
// a finite number of at least 1 and its path is an existing directory.
// The filesystem is consulted on every call.
func (e *Entry) IsValid() bool {
	if math.IsNaN(e.Rank) || math.IsInf(e.Rank, 0) || e.Rank < 1.0 {
		return false
	}
	info, err := os.Stat(e.Path)
	return err == nil && info.IsDir()
}

// Score is the entry's frecency at now.
func (e *Entry) Score(now Epoch) float64 {
	return Score(e.Rank, now-e.LastAccessed)
}

func (e *Entry) String() string {
	return e.Path
}
