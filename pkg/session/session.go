// Package session wires a resolved configuration into the logger and the
// opened database that a single hop command works with.
package session

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/papercomputeco/hop/pkg/config"
	"github.com/papercomputeco/hop/pkg/database"
	"github.com/papercomputeco/hop/pkg/logger"
)

// Session owns the store for the duration of one command.
type Session struct {
	Config *config.Config
	Logger *slog.Logger
	Store  *database.Store

	logFile io.Closer
}

// Open builds the logger described by cfg.Log, writing to stderr, and opens
// the database in cfg.Database.DataDir. Close must be called to persist
// changes.
func Open(cfg *config.Config, stderr io.Writer) (*Session, error) {
	log, logFile, err := NewLogger(cfg.Log, stderr)
	if err != nil {
		return nil, err
	}

	store, err := database.Open(cfg.Database.DataDir, database.WithLogger(log))
	if err != nil {
		if logFile != nil {
			_ = logFile.Close()
		}
		return nil, fmt.Errorf("opening database: %w", err)
	}

	return &Session{
		Config:  cfg,
		Logger:  log,
		Store:   store,
		logFile: logFile,
	}, nil
}

// Close saves the store, logging any failure, then releases the log file.
func (s *Session) Close() {
	s.Store.Close()
	if s.logFile != nil {
		_ = s.logFile.Close()
	}
}

// NewLogger returns the console logger for w, pretty when w is a terminal,
// fanned out to a JSON log file when cfg.File is set. Debug logging also
// records the source location. The returned closer is nil without a log
// file.
func NewLogger(cfg config.LogConfig, w io.Writer) (*slog.Logger, io.Closer, error) {
	console := logger.New(
		logger.WithWriter(w),
		logger.WithDebug(cfg.Debug),
		logger.WithSource(cfg.Debug),
		logger.WithPretty(IsTerminal(w)),
		logger.WithJSON(cfg.JSON),
	)
	if cfg.File == "" {
		return console, nil, nil
	}

	f, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}

	file := logger.New(
		logger.WithWriter(f),
		logger.WithDebug(cfg.Debug),
		logger.WithSource(cfg.Debug),
		logger.WithJSON(true),
	)

	return logger.Multi(console, file), f, nil
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
