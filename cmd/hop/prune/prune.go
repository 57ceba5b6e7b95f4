// Package prunecmder provides the `hop prune` command.
package prunecmder

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/papercomputeco/hop/pkg/cliui"
	"github.com/papercomputeco/hop/pkg/config"
	"github.com/papercomputeco/hop/pkg/database"
	"github.com/papercomputeco/hop/pkg/session"
)

const pruneLongDesc string = `Clean up the database.

Forgets directories that no longer exist or whose rank fell below 1, and
deletes temporary database files left behind by interrupted saves.
Queries already skip missing directories, so pruning only reclaims space.

Examples:
  hop prune`

const pruneShortDesc string = "Forget missing directories"

// orphanAge protects temporary files of saves that may still be running.
const orphanAge = time.Minute

func NewPruneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prune",
		Short: pruneShortDesc,
		Long:  pruneLongDesc,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Resolve(cmd)
			if err != nil {
				return err
			}
			return run(cmd, cfg)
		},
	}

	return cmd
}

func run(cmd *cobra.Command, cfg *config.Config) error {
	sess, err := session.Open(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer sess.Close()

	out := cmd.OutOrStdout()

	pruned := sess.Store.Prune()
	err = sess.Store.Save()
	if err := cliui.Step(out, fmt.Sprintf("Forgot %d missing directories", pruned), err); err != nil {
		return err
	}

	removed, err := database.RemoveOrphans(sess.Store.DataDir(), orphanAge, time.Now())
	return cliui.Step(out, fmt.Sprintf("Removed %d temporary files", removed), err)
}
