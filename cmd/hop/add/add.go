// Package addcmder provides the `hop add` command.
package addcmder

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/papercomputeco/hop/pkg/config"
	"github.com/papercomputeco/hop/pkg/database"
	"github.com/papercomputeco/hop/pkg/session"
	"github.com/papercomputeco/hop/pkg/utils"
)

const addLongDesc string = `Record a visit to one or more directories.

Each path is made absolute before it is recorded. A directory already in
the database gains one rank point, a new one starts at rank 1. Paths
matching query.exclude_dirs are skipped. Once the sum of all ranks passes
database.max_age every rank is scaled down and the least used directories
are forgotten.

Examples:
  hop add .
  hop add "$PWD" --resolve-symlinks
  hop add ~/src/hop ~/src/dotfiles`

const addShortDesc string = "Record directory visits"

type addCommander struct {
	maxAge          float64
	resolveSymlinks bool
}

func NewAddCmd() *cobra.Command {
	cmder := &addCommander{}

	cmd := &cobra.Command{
		Use:   "add <path>...",
		Short: addShortDesc,
		Long:  addLongDesc,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Resolve(cmd, config.AddFlags)
			if err != nil {
				return err
			}
			return cmder.run(cmd, cfg, args)
		},
	}

	config.AddFloat64Flag(cmd, config.AddFlags, config.FlagMaxAge, &cmder.maxAge)
	config.AddBoolFlag(cmd, config.AddFlags, config.FlagResolveSymlinks, &cmder.resolveSymlinks)

	return cmd
}

func (c *addCommander) run(cmd *cobra.Command, cfg *config.Config, paths []string) error {
	excluder, err := database.NewExcluder(cfg.Query.ExcludeDirs)
	if err != nil {
		return err
	}

	sess, err := session.Open(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer sess.Close()

	now := time.Now().Unix()
	for _, p := range paths {
		path, err := utils.AbsPath(p, cfg.Query.ResolveSymlinks)
		if err != nil {
			return err
		}

		if excluder.Excluded(path) {
			sess.Logger.Debug("skipping excluded directory", "path", path)
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("could not add %s: %w", path, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("could not add %s: not a directory", path)
		}

		sess.Store.Add(path, now)
		sess.Logger.Debug("recorded visit", "path", path)
	}

	if dropped := sess.Store.Age(cfg.Database.MaxAge); dropped > 0 {
		sess.Logger.Debug("aged database", "dropped", dropped, "max_age", cfg.Database.MaxAge)
	}

	return sess.Store.Save()
}
