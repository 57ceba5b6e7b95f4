// Package removecmder provides the `hop remove` command.
package removecmder

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papercomputeco/hop/pkg/config"
	"github.com/papercomputeco/hop/pkg/session"
	"github.com/papercomputeco/hop/pkg/utils"
)

const removeLongDesc string = `Remove directories from the database.

Each argument is first looked up exactly as given, then as an absolute
path, so entries for directories that no longer exist can still be
removed by their recorded name.

Examples:
  hop remove ~/src/old-project
  hop remove .`

const removeShortDesc string = "Remove directories from the database"

func NewRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove <path>...",
		Aliases: []string{"rm"},
		Short:   removeShortDesc,
		Long:    removeLongDesc,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Resolve(cmd)
			if err != nil {
				return err
			}
			return run(cmd, cfg, args)
		},
	}

	return cmd
}

func run(cmd *cobra.Command, cfg *config.Config, paths []string) error {
	sess, err := session.Open(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer sess.Close()

	var errs []error
	for _, p := range paths {
		if sess.Store.Remove(p) {
			continue
		}

		abs, err := utils.AbsPath(p, false)
		if err == nil && sess.Store.Remove(abs) {
			continue
		}

		errs = append(errs, fmt.Errorf("path not found in database: %s", p))
	}

	if err := sess.Store.Save(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
