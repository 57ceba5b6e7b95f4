package config

import "os"

// Dotted config keys.
const (
	KeyDataDir         = "database.data_dir"
	KeyMaxAge          = "database.max_age"
	KeyExcludeDirs     = "query.exclude_dirs"
	KeyResolveSymlinks = "query.resolve_symlinks"
	KeyLogDebug        = "log.debug"
	KeyLogJSON         = "log.json"
	KeyLogFile         = "log.file"
)

const (
	defaultMaxAge = 10_000
)

// defaultExcludeDirs keeps the home directory itself out of the database;
// it is always one keystroke away.
func defaultExcludeDirs() []string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return []string{}
	}
	return []string{home}
}

// NewDefaultConfig returns a Config with sane defaults for all fields.
// This is the single source of truth for default values.
func NewDefaultConfig() *Config {
	return &Config{
		Version: CurrentV,
		Database: DatabaseConfig{
			MaxAge: defaultMaxAge,
		},
		Query: QueryConfig{
			ExcludeDirs: defaultExcludeDirs(),
		},
	}
}
