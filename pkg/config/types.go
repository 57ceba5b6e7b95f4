package config

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// Config represents the persistent hop configuration stored as config.toml
// in the hop directory. The TOML layout uses sections for logical grouping.
type Config struct {
	Version  int            `toml:"version"`
	Database DatabaseConfig `toml:"database"`
	Query    QueryConfig    `toml:"query"`
	Log      LogConfig      `toml:"log"`
}

// DatabaseConfig holds the location and aging settings of the directory
// database.
type DatabaseConfig struct {
	// DataDir is where db.hop lives. Empty means the hop directory itself.
	DataDir string `toml:"data_dir,omitempty"`

	// MaxAge caps the sum of all ranks before entries are aged.
	MaxAge float64 `toml:"max_age,omitempty"`
}

// QueryConfig holds settings applied when recording and looking up
// directories.
type QueryConfig struct {
	// ExcludeDirs are glob patterns that are never recorded. An explicit
	// empty list disables the default.
	ExcludeDirs []string `toml:"exclude_dirs"`

	// ResolveSymlinks records the canonical path instead of the one given.
	ResolveSymlinks bool `toml:"resolve_symlinks,omitempty"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Debug bool   `toml:"debug,omitempty"`
	JSON  bool   `toml:"json,omitempty"`
	File  string `toml:"file,omitempty"`
}

// configKeyInfo maps a user-facing dotted key name to a getter and setter on *Config.
type configKeyInfo struct {
	get func(c *Config) string
	set func(c *Config, v string) error
}

// SplitList splits a list of paths or patterns joined with the OS path list
// separator, dropping empty elements.
func SplitList(s string) []string {
	parts := filepath.SplitList(s)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func boolKey(get func(c *Config) *bool, key string) configKeyInfo {
	return configKeyInfo{
		get: func(c *Config) string { return strconv.FormatBool(*get(c)) },
		set: func(c *Config, v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("invalid value for %s: %w", key, err)
			}
			*get(c) = b
			return nil
		},
	}
}

// configKeys is the authoritative map of all supported config keys.
// Keys use dotted notation matching the TOML section structure.
var configKeys = map[string]configKeyInfo{
	KeyDataDir: {
		get: func(c *Config) string { return c.Database.DataDir },
		set: func(c *Config, v string) error { c.Database.DataDir = v; return nil },
	},
	KeyMaxAge: {
		get: func(c *Config) string {
			if c.Database.MaxAge == 0 {
				return ""
			}
			return strconv.FormatFloat(c.Database.MaxAge, 'f', -1, 64)
		},
		set: func(c *Config, v string) error {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("invalid value for %s: %w", KeyMaxAge, err)
			}
			if f <= 0 {
				return fmt.Errorf("invalid value for %s: must be positive", KeyMaxAge)
			}
			c.Database.MaxAge = f
			return nil
		},
	},
	KeyExcludeDirs: {
		get: func(c *Config) string { return strings.Join(c.Query.ExcludeDirs, string(filepath.ListSeparator)) },
		set: func(c *Config, v string) error { c.Query.ExcludeDirs = SplitList(v); return nil },
	},
	KeyResolveSymlinks: boolKey(func(c *Config) *bool { return &c.Query.ResolveSymlinks }, KeyResolveSymlinks),
	KeyLogDebug:        boolKey(func(c *Config) *bool { return &c.Log.Debug }, KeyLogDebug),
	KeyLogJSON:         boolKey(func(c *Config) *bool { return &c.Log.JSON }, KeyLogJSON),
	KeyLogFile: {
		get: func(c *Config) string { return c.Log.File },
		set: func(c *Config, v string) error { c.Log.File = v; return nil },
	},
}
