package database

import (
	"errors"
	"fmt"
)

// ErrTooLarge is wrapped by a CorruptedError when a database file exceeds MaxSize.
var ErrTooLarge = errors.New("database exceeds size limit")

// IOError is returned when the database or its temporary file cannot be
// created, read, written or renamed.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("could not %s: %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// CorruptedError is returned when the database bytes cannot be parsed.
type CorruptedError struct {
	Path   string
	Reason string
	Err    error
}

func (e *CorruptedError) Error() string {
	msg := "database is corrupted"
	if e.Reason != "" {
		msg += " (" + e.Reason + ")"
	}
	if e.Path != "" {
		msg += ": " + e.Path
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *CorruptedError) Unwrap() error {
	return e.Err
}

// UnsupportedSchemaError is returned when the version tag is well formed but
// differs from CurrentVersion. There is no migration path.
type UnsupportedSchemaError struct {
	Path    string
	Version uint32
}

func (e *UnsupportedSchemaError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("unsupported database schema v%d (expected v%d)", e.Version, CurrentVersion)
	}
	return fmt.Sprintf("unsupported database schema v%d (expected v%d): %s", e.Version, CurrentVersion, e.Path)
}

// SerializationError is returned when the entries cannot be encoded.
type SerializationError struct {
	Err error
}

func (e *SerializationError) Error() string {
	return "could not serialize database: " + e.Err.Error()
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}
