// Package hopcmder
package hopcmder

import (
	"github.com/spf13/cobra"

	addcmder "github.com/papercomputeco/hop/cmd/hop/add"
	configcmder "github.com/papercomputeco/hop/cmd/hop/config"
	importcmder "github.com/papercomputeco/hop/cmd/hop/import"
	prunecmder "github.com/papercomputeco/hop/cmd/hop/prune"
	querycmder "github.com/papercomputeco/hop/cmd/hop/query"
	removecmder "github.com/papercomputeco/hop/cmd/hop/remove"
	versioncmder "github.com/papercomputeco/hop/cmd/version"
	"github.com/papercomputeco/hop/pkg/config"
)

const hopLongDesc string = `Hop remembers the directories you visit and ranks them by frecency,
a blend of how often and how recently each one was used.

Record visits from your shell's directory change hook, then jump back:
  hop add "$PWD"          Record a visit to the current directory
  hop query proj api      Print the best match for "proj" then "api"
  hop query -l -s         List every directory with its score
  hop prune               Forget directories that no longer exist`

const hopShortDesc string = "Hop - frecency directory jumper"

func NewHopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "hop",
		Short:        hopShortDesc,
		Long:         hopLongDesc,
		SilenceUsage: true,
	}

	// Global flags
	var (
		configDir string
		dataDir   string
		logFile   string
		debug     bool
		jsonLogs  bool
	)
	cmd.PersistentFlags().StringVar(&configDir, config.FlagConfigDir, "", "Override the hop directory holding config.toml")
	config.AddStringFlag(cmd, config.GlobalFlags, config.FlagDataDir, &dataDir)
	config.AddStringFlag(cmd, config.GlobalFlags, config.FlagLogFile, &logFile)
	config.AddBoolFlag(cmd, config.GlobalFlags, config.FlagDebug, &debug)
	config.AddBoolFlag(cmd, config.GlobalFlags, config.FlagJSONLogs, &jsonLogs)

	// Add subcommands
	cmd.AddCommand(addcmder.NewAddCmd())
	cmd.AddCommand(removecmder.NewRemoveCmd())
	cmd.AddCommand(querycmder.NewQueryCmd())
	cmd.AddCommand(prunecmder.NewPruneCmd())
	cmd.AddCommand(importcmder.NewImportCmd())
	cmd.AddCommand(configcmder.NewConfigCmd())
	cmd.AddCommand(versioncmder.NewVersionCmd())

	return cmd
}
