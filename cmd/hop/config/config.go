// Package configcmder provides the config command for managing persistent
// hop configuration stored in the hop directory.
package configcmder

import (
	"github.com/spf13/cobra"

	"github.com/papercomputeco/hop/pkg/config"
)

const configLongDesc string = `Manage persistent hop configuration.

Configuration is stored as config.toml in the hop directory ($HOP_DIR,
$XDG_DATA_HOME/hop or ~/.hop) and provides default values for command
flags. CLI flags and HOP_* environment variables take precedence over
config file values.

Keys use dotted notation matching the TOML section structure:
  database.data_dir, database.max_age,
  query.exclude_dirs, query.resolve_symlinks,
  log.debug, log.json, log.file

Use subcommands to get, set, or list configuration values:
  hop config set <key> <value>    Set a configuration value
  hop config get <key>            Get a configuration value
  hop config list                 List all configuration values

Examples:
  hop config set database.max_age 5000
  hop config set query.exclude_dirs "$HOME:/tmp/*"
  hop config get query.exclude_dirs
  hop config list`

const configShortDesc string = "Manage persistent hop configuration"

func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: configShortDesc,
		Long:  configLongDesc,
	}

	cmd.AddCommand(newSetCmd())
	cmd.AddCommand(newGetCmd())
	cmd.AddCommand(newListCmd())

	return cmd
}

func completeKeys(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) == 0 {
		return config.ValidConfigKeys(), cobra.ShellCompDirectiveNoFileComp
	}
	return nil, cobra.ShellCompDirectiveNoFileComp
}
