package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/papercomputeco/hop/pkg/dotdir"
)

// InitViper creates and returns a configured *viper.Viper.
// It sets defaults from NewDefaultConfig(), reads config.toml from the hop
// directory and binds environment variables with the HOP_ prefix.
//
// Config precedence (highest to lowest):
//  1. CLI flags (once bound via BindRegisteredFlags)
//  2. Environment variables (HOP_DATABASE_DATA_DIR, HOP_LOG_DEBUG, etc.)
//  3. config.toml file values
//  4. Defaults from NewDefaultConfig()
func InitViper(configDir string) (*viper.Viper, error) {
	v := viper.New()

	setViperDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("toml")

	ddm := dotdir.NewManager()
	target, err := ddm.Target(configDir)
	if err != nil {
		return nil, fmt.Errorf("resolving config dir: %w", err)
	}
	v.AddConfigPath(target)

	if err := v.ReadInConfig(); err != nil {
		// Config file not found errors are fine, defaults will apply.
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	v.SetEnvPrefix("HOP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The hop directory doubles as the default data directory.
	v.SetDefault(KeyDataDir, target)

	return v, nil
}

// setViperDefaults registers defaults from NewDefaultConfig() into viper
// using dotted-key notation. This keeps defaults.go as the single source of truth.
func setViperDefaults(v *viper.Viper) {
	d := NewDefaultConfig()

	v.SetDefault("version", d.Version)

	v.SetDefault(KeyDataDir, d.Database.DataDir)
	v.SetDefault(KeyMaxAge, d.Database.MaxAge)

	v.SetDefault(KeyExcludeDirs, d.Query.ExcludeDirs)
	v.SetDefault(KeyResolveSymlinks, d.Query.ResolveSymlinks)

	v.SetDefault(KeyLogDebug, d.Log.Debug)
	v.SetDefault(KeyLogJSON, d.Log.JSON)
	v.SetDefault(KeyLogFile, d.Log.File)
}

// FromViper resolves every key through v's precedence chain into a Config.
func FromViper(v *viper.Viper) *Config {
	return &Config{
		Version: v.GetInt("version"),
		Database: DatabaseConfig{
			DataDir: v.GetString(KeyDataDir),
			MaxAge:  v.GetFloat64(KeyMaxAge),
		},
		Query: QueryConfig{
			ExcludeDirs:     excludeDirs(v),
			ResolveSymlinks: v.GetBool(KeyResolveSymlinks),
		},
		Log: LogConfig{
			Debug: v.GetBool(KeyLogDebug),
			JSON:  v.GetBool(KeyLogJSON),
			File:  v.GetString(KeyLogFile),
		},
	}
}

// excludeDirs reads query.exclude_dirs, which is a TOML array in the config
// file but a path list (like $PATH) in HOP_QUERY_EXCLUDE_DIRS.
func excludeDirs(v *viper.Viper) []string {
	if raw, ok := v.Get(KeyExcludeDirs).(string); ok {
		return SplitList(raw)
	}
	return v.GetStringSlice(KeyExcludeDirs)
}
