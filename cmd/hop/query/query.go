// Package querycmder provides the `hop query` command.
package querycmder

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/papercomputeco/hop/pkg/cliui"
	"github.com/papercomputeco/hop/pkg/config"
	"github.com/papercomputeco/hop/pkg/database"
	"github.com/papercomputeco/hop/pkg/session"
	"github.com/papercomputeco/hop/pkg/utils"
)

const queryLongDesc string = `Search the database for directories matching keywords.

Keywords must appear in the path in the order given, and the last keyword
must match within the final path component. Matching is case-insensitive.
Directories are ranked by frecency and ones that no longer exist are
skipped.

Examples:
  hop query proj
  hop query src api --exclude "$PWD"
  hop query --list --score`

const queryShortDesc string = "Search for a directory"

// ErrNoMatch is returned when no directory matches the keywords.
var ErrNoMatch = errors.New("no match found")

type queryCommander struct {
	list    bool
	score   bool
	exclude string
}

func NewQueryCmd() *cobra.Command {
	cmder := &queryCommander{}

	cmd := &cobra.Command{
		Use:   "query [keywords]...",
		Short: queryShortDesc,
		Long:  queryLongDesc,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Resolve(cmd)
			if err != nil {
				return err
			}
			return cmder.run(cmd, cfg, args)
		},
	}

	cmd.Flags().BoolVarP(&cmder.list, "list", "l", false, "List every match instead of the best one")
	cmd.Flags().BoolVarP(&cmder.score, "score", "s", false, "Print the score before each path")
	cmd.Flags().StringVar(&cmder.exclude, "exclude", "", "Skip this path, typically the current directory")

	return cmd
}

func (c *queryCommander) run(cmd *cobra.Command, cfg *config.Config, keywords []string) error {
	sess, err := session.Open(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer sess.Close()

	exclude := c.exclude
	if exclude != "" {
		if exclude, err = utils.AbsPath(exclude, false); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	color := c.score && session.IsTerminal(out)
	now := time.Now().Unix()

	found := 0
	for e := range sess.Store.Matches(now, keywords) {
		if e.Path == exclude {
			continue
		}

		found++
		if c.score {
			fmt.Fprintln(out, cliui.ScoreLine(database.ClampScore(e.Score(now)), e.Path, color))
		} else {
			fmt.Fprintln(out, e.Path)
		}

		if !c.list {
			break
		}
	}

	sess.Logger.Debug("query finished",
		"keywords", strings.Join(keywords, " "),
		"matches", found,
	)

	if found == 0 {
		return ErrNoMatch
	}
	return nil
}
