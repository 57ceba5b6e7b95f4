// Package importer merges databases from other directory jumpers into a
// hop store.
package importer

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/papercomputeco/hop/pkg/database"
	"github.com/papercomputeco/hop/pkg/utils"
)

// Format names a foreign database layout.
type Format string

const (
	// FormatZ is rupa/z's "path|rank|epoch" per line.
	FormatZ Format = "z"

	// FormatAutojump is autojump's "weight\tpath" per line. It carries no
	// timestamps, so entries are stamped with the import time.
	FormatAutojump Format = "autojump"
)

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatZ, FormatAutojump}
}

// ParseFormat validates a user supplied format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats() {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown import format %q (available: z, autojump)", s)
}

// Options controls Import.
type Options struct {
	Format Format

	// Merge adds imported ranks to existing entries. Without it the store
	// is emptied first.
	Merge bool

	// Now stamps entries of formats without timestamps.
	Now database.Epoch
}

// ParseError reports a malformed line.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %q: %v", e.Line, utils.Truncate(e.Text, 80), e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Import reads r in opts.Format and records every entry in store. It
// returns how many lines were imported. Nothing is changed when a line
// fails to parse.
func Import(store *database.Store, r io.Reader, opts Options) (int, error) {
	parse, err := parserFor(opts)
	if err != nil {
		return 0, err
	}

	var parsed []database.Entry
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), database.MaxSize)
	line := 0
	for scanner.Scan() {
		line++
		// Paths may begin or end with spaces; only the CR of CRLF files goes.
		text := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		e, err := parse(text)
		if err != nil {
			return 0, &ParseError{Line: line, Text: text, Err: err}
		}
		parsed = append(parsed, e)
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("reading import: %w", err)
	}

	if !opts.Merge {
		store.Entries = store.Entries[:0]
		store.MarkDirty()
	}

	for _, e := range parsed {
		existing := store.Get(e.Path)
		if existing == nil {
			store.Entries = append(store.Entries, e)
			continue
		}
		existing.Rank += e.Rank
		existing.LastAccessed = max(existing.LastAccessed, e.LastAccessed)
	}
	if len(parsed) > 0 {
		store.MarkDirty()
	}

	return len(parsed), nil
}

func parserFor(opts Options) (func(string) (database.Entry, error), error) {
	switch opts.Format {
	case FormatZ:
		return parseZ, nil
	case FormatAutojump:
		return func(line string) (database.Entry, error) {
			return parseAutojump(line, opts.Now)
		}, nil
	default:
		return nil, fmt.Errorf("unknown import format %q", opts.Format)
	}
}

// parseZ splits from the right because paths may contain '|'.
func parseZ(line string) (database.Entry, error) {
	rest, epochText, ok := cutLast(line, "|")
	if !ok {
		return database.Entry{}, fmt.Errorf("expected path|rank|epoch")
	}
	path, rankText, ok := cutLast(rest, "|")
	if !ok || path == "" {
		return database.Entry{}, fmt.Errorf("expected path|rank|epoch")
	}

	rank, err := parseRank(rankText)
	if err != nil {
		return database.Entry{}, err
	}
	epoch, err := strconv.ParseInt(strings.TrimSpace(epochText), 10, 64)
	if err != nil {
		return database.Entry{}, fmt.Errorf("invalid epoch: %w", err)
	}

	return database.Entry{Path: path, Rank: rank, LastAccessed: epoch}, nil
}

func parseAutojump(line string, now database.Epoch) (database.Entry, error) {
	rankText, path, ok := strings.Cut(line, "\t")
	if !ok || path == "" {
		return database.Entry{}, fmt.Errorf("expected weight<TAB>path")
	}

	rank, err := parseRank(rankText)
	if err != nil {
		return database.Entry{}, err
	}

	return database.Entry{Path: path, Rank: rank, LastAccessed: now}, nil
}

func parseRank(s string) (float64, error) {
	rank, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid rank: %w", err)
	}
	if math.IsNaN(rank) || math.IsInf(rank, 0) {
		return 0, fmt.Errorf("invalid rank: %s", s)
	}
	return rank, nil
}

func cutLast(s, sep string) (before, after string, found bool) {
	i := strings.LastIndex(s, sep)
	if i < 0 {
		return s, "", false
	}
	return s[:i], s[i+len(sep):], true
}
