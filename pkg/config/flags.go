package config

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Flag is the single source of truth for a CLI flag.
// Commands reference flags by registry key rather than hard-coding names,
// shorthands, defaults, and descriptions inline, so a flag shared by the
// root command and a subcommand cannot drift.
type Flag struct {
	// Name is the long flag name (e.g. "data-dir").
	Name string

	// Shorthand is the one-letter short flag (e.g. "d"). Empty for no shorthand.
	Shorthand string

	// ViperKey is the dotted config key this flag maps to (e.g. "database.data_dir").
	ViperKey string

	// Description is the help text shown in --help output.
	Description string

	// Persistent registers the flag on the command and all its children.
	Persistent bool
}

// FlagSet is a mapping of flag names to Flag structs that hold their name,
// shorthand, viper key, etc.
type FlagSet map[string]Flag

// Flag registry keys.
// Use these constants when calling the Add*Flag helpers and
// BindRegisteredFlags to avoid typos or drift from one command to another.
const (
	FlagDataDir         = "data-dir"
	FlagMaxAge          = "max-age"
	FlagExclude         = "exclude-dirs"
	FlagResolveSymlinks = "resolve-symlinks"
	FlagDebug           = "debug"
	FlagJSONLogs        = "json-logs"
	FlagLogFile         = "log-file"
)

// GlobalFlags are registered once on the root command.
var GlobalFlags = FlagSet{
	FlagDataDir: {
		Name:        "data-dir",
		ViperKey:    KeyDataDir,
		Description: "Directory holding the database (default: the hop directory)",
		Persistent:  true,
	},
	FlagDebug: {
		Name:        "debug",
		Shorthand:   "d",
		ViperKey:    KeyLogDebug,
		Description: "Enable debug logging",
		Persistent:  true,
	},
	FlagJSONLogs: {
		Name:        "json-logs",
		ViperKey:    KeyLogJSON,
		Description: "Log as JSON lines",
		Persistent:  true,
	},
	FlagLogFile: {
		Name:        "log-file",
		ViperKey:    KeyLogFile,
		Description: "Also append JSON logs to this file",
		Persistent:  true,
	},
}

// AddFlags are registered on "hop add".
var AddFlags = FlagSet{
	FlagMaxAge: {
		Name:        "max-age",
		ViperKey:    KeyMaxAge,
		Description: "Total rank above which entries are aged",
	},
	FlagResolveSymlinks: {
		Name:        "resolve-symlinks",
		ViperKey:    KeyResolveSymlinks,
		Description: "Record the canonical path of each directory",
	},
}

func flagsFor(cmd *cobra.Command, def Flag) *pflag.FlagSet {
	if def.Persistent {
		return cmd.PersistentFlags()
	}
	return cmd.Flags()
}

// AddStringFlag registers a string flag on cmd from the given FlagSet.
// The flag's name, shorthand, default, and description all come from the
// FlagSet entry so they cannot drift across commands.
func AddStringFlag(cmd *cobra.Command, fs FlagSet, key string, target *string) {
	def, ok := fs[key]
	if !ok {
		return
	}

	flagsFor(cmd, def).StringVarP(target, def.Name, def.Shorthand, defaultString(def.ViperKey), def.Description)
}

// AddBoolFlag registers a bool flag on cmd from the given FlagSet.
func AddBoolFlag(cmd *cobra.Command, fs FlagSet, key string, target *bool) {
	def, ok := fs[key]
	if !ok {
		return
	}

	flagsFor(cmd, def).BoolVarP(target, def.Name, def.Shorthand, defaultBool(def.ViperKey), def.Description)
}

// AddFloat64Flag registers a float64 flag on cmd from the given FlagSet.
func AddFloat64Flag(cmd *cobra.Command, fs FlagSet, key string, target *float64) {
	def, ok := fs[key]
	if !ok {
		return
	}

	flagsFor(cmd, def).Float64VarP(target, def.Name, def.Shorthand, defaultFloat64(def.ViperKey), def.Description)
}

// BindRegisteredFlags binds already-registered flags to viper using definitions
// from the given FlagSet. Call this in PreRunE after InitViper to connect flags
// to the viper precedence chain (flag > env > config file > default).
func BindRegisteredFlags(v *viper.Viper, cmd *cobra.Command, fs FlagSet, registryKeys []string) {
	for _, registryKey := range registryKeys {
		def, ok := fs[registryKey]
		if !ok {
			continue
		}

		// Flag also searches persistent flags inherited from parents.
		f := cmd.Flag(def.Name)
		if f == nil {
			continue
		}

		_ = v.BindPFlag(def.ViperKey, f)
	}
}

// Keys returns the registry keys of fs, for BindRegisteredFlags.
func (fs FlagSet) Keys() []string {
	keys := make([]string, 0, len(fs))
	for k := range fs {
		keys = append(keys, k)
	}
	return keys
}

func defaults() *viper.Viper {
	v := viper.New()
	setViperDefaults(v)
	return v
}

// defaultString returns the default string value for a viper key from NewDefaultConfig.
func defaultString(viperKey string) string {
	return defaults().GetString(viperKey)
}

// defaultBool returns the default bool value for a viper key from NewDefaultConfig.
func defaultBool(viperKey string) bool {
	return defaults().GetBool(viperKey)
}

// defaultFloat64 returns the default float64 value for a viper key from NewDefaultConfig.
func defaultFloat64(viperKey string) float64 {
	return defaults().GetFloat64(viperKey)
}

// FlagConfigDir names the persistent flag that overrides the hop directory.
const FlagConfigDir = "config-dir"

// Resolve builds the effective Config for cmd: it reads config.toml from the
// directory named by --config-dir, then binds GlobalFlags and every extra
// FlagSet so flags win over env, file and defaults.
func Resolve(cmd *cobra.Command, sets ...FlagSet) (*Config, error) {
	configDir, _ := cmd.Flags().GetString(FlagConfigDir)

	v, err := InitViper(configDir)
	if err != nil {
		return nil, err
	}

	BindRegisteredFlags(v, cmd, GlobalFlags, GlobalFlags.Keys())
	for _, fs := range sets {
		BindRegisteredFlags(v, cmd, fs, fs.Keys())
	}

	return FromViper(v), nil
}
