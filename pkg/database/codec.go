package database

import (
	"encoding/binary"
	"fmt"
	"math"
	"unicode/utf8"
)

const (
	// CurrentVersion is the only schema revision this package reads or writes.
	CurrentVersion uint32 = 3

	// MaxSize bounds how many bytes Decode will accept.
	MaxSize = 8 * 1024 * 1024

	versionSize = 4

	// Every entry carries a path length, a rank and a timestamp.
	entryFixedSize = 8 + 8 + 8
)

// schema is the decoded version tag. A recognized revision carries its
// payload; anything else only keeps the observed number.
type schema interface {
	version() uint32
}

type schemaV3 struct {
	entries []Entry
}

func (schemaV3) version() uint32 { return CurrentVersion }

type unknownSchema struct {
	observed uint32
}

func (s unknownSchema) version() uint32 { return s.observed }

// EncodedSize returns the exact number of bytes Encode produces for entries.
func EncodedSize(entries []Entry) int {
	size := versionSize + 8
	for i := range entries {
		size += entryFixedSize + len(entries[i].Path)
	}
	return size
}

// Encode serializes entries behind a fixed-width little-endian version tag.
// The entry sequence is a u64 count followed by, per entry, a u64 path
// length, the path bytes, the rank as an IEEE-754 double and the last
// access time as an i64.
func Encode(version uint32, entries []Entry) ([]byte, error) {
	for i := range entries {
		if !utf8.ValidString(entries[i].Path) {
			return nil, &SerializationError{Err: fmt.Errorf("path is not valid UTF-8: %q", entries[i].Path)}
		}
	}

	size := EncodedSize(entries)
	buf := make([]byte, 0, size)

	buf = binary.LittleEndian.AppendUint32(buf, version)
	buf = binary.LittleEndian.AppendUint64(buf, uint64(len(entries)))
	for i := range entries {
		e := &entries[i]
		buf = binary.LittleEndian.AppendUint64(buf, uint64(len(e.Path)))
		buf = append(buf, e.Path...)
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(e.Rank))
		buf = binary.LittleEndian.AppendUint64(buf, uint64(e.LastAccessed))
	}

	if len(buf) != size {
		return nil, &SerializationError{Err: fmt.Errorf("encoded %d bytes, expected %d", len(buf), size)}
	}

	return buf, nil
}

// Decode parses a database buffer. An empty buffer is a valid, empty
// database and skips the version check. A version tag other than
// CurrentVersion yields an UnsupportedSchemaError carrying the observed
// value, whatever follows it.
func Decode(buf []byte) (uint32, []Entry, error) {
	if len(buf) == 0 {
		return CurrentVersion, nil, nil
	}

	s, err := decodeSchema(buf)
	if err != nil {
		return 0, nil, err
	}

	switch s := s.(type) {
	case schemaV3:
		return CurrentVersion, s.entries, nil
	default:
		return s.version(), nil, &UnsupportedSchemaError{Version: s.version()}
	}
}

func decodeSchema(buf []byte) (schema, error) {
	if len(buf) < versionSize {
		return nil, &CorruptedError{Reason: "truncated version tag"}
	}

	observed := binary.LittleEndian.Uint32(buf[:versionSize])
	if observed != CurrentVersion {
		return unknownSchema{observed: observed}, nil
	}

	// The limit covers the payload of a recognized version only.
	if len(buf) > MaxSize {
		return nil, &CorruptedError{Reason: fmt.Sprintf("%d bytes", len(buf)), Err: ErrTooLarge}
	}

	entries, err := decodeEntries(buf[versionSize:])
	if err != nil {
		return nil, err
	}
	return schemaV3{entries: entries}, nil
}

type reader struct {
	buf []byte
	off int
}

func (r *reader) remaining() int {
	return len(r.buf) - r.off
}

func (r *reader) uint64() (uint64, error) {
	if r.remaining() < 8 {
		return 0, &CorruptedError{Reason: fmt.Sprintf("unexpected end of data at offset %d", r.off+versionSize)}
	}
	v := binary.LittleEndian.Uint64(r.buf[r.off:])
	r.off += 8
	return v, nil
}

func (r *reader) string() (string, error) {
	n, err := r.uint64()
	if err != nil {
		return "", err
	}
	if n > uint64(r.remaining()) {
		return "", &CorruptedError{Reason: fmt.Sprintf("path length %d overruns buffer", n)}
	}
	b := r.buf[r.off : r.off+int(n)]
	if !utf8.Valid(b) {
		return "", &CorruptedError{Reason: "path is not valid UTF-8"}
	}
	r.off += int(n)
	return string(b), nil
}

func decodeEntries(buf []byte) ([]Entry, error) {
	r := &reader{buf: buf}

	count, err := r.uint64()
	if err != nil {
		return nil, err
	}
	if count > uint64(r.remaining()/entryFixedSize) {
		return nil, &CorruptedError{Reason: fmt.Sprintf("entry count %d overruns buffer", count)}
	}

	entries := make([]Entry, 0, count)
	for range count {
		path, err := r.string()
		if err != nil {
			return nil, err
		}
		rank, err := r.uint64()
		if err != nil {
			return nil, err
		}
		lastAccessed, err := r.uint64()
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{
			Path:         path,
			Rank:         math.Float64frombits(rank),
			LastAccessed: int64(lastAccessed),
		})
	}

	if r.remaining() != 0 {
		return nil, &CorruptedError{Reason: fmt.Sprintf("%d trailing bytes", r.remaining())}
	}

	return entries, nil
}
