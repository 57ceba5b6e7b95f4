// Package importcmder provides the `hop import` command.
package importcmder

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/papercomputeco/hop/pkg/cliui"
	"github.com/papercomputeco/hop/pkg/config"
	"github.com/papercomputeco/hop/pkg/importer"
	"github.com/papercomputeco/hop/pkg/session"
)

const importLongDesc string = `Import the database of another directory jumper.

Supported formats:
  z          rupa/z and its ports, one "path|rank|epoch" per line
  autojump   autojump's "weight<TAB>path" lines

By default the hop database is replaced. With --merge, imported ranks are
added to existing entries. A file name of "-" reads standard input.

Examples:
  hop import --from z ~/.z
  hop import --from autojump --merge ~/.local/share/autojump/autojump.txt`

const importShortDesc string = "Import from another directory jumper"

type importCommander struct {
	from  string
	merge bool
}

func NewImportCmd() *cobra.Command {
	cmder := &importCommander{}

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: importShortDesc,
		Long:  importLongDesc,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := importer.ParseFormat(cmder.from)
			if err != nil {
				return err
			}

			cfg, err := config.Resolve(cmd)
			if err != nil {
				return err
			}
			return cmder.run(cmd, cfg, format, args[0])
		},
	}

	cmd.Flags().StringVar(&cmder.from, "from", "", "Format of the file to import (z, autojump)")
	cmd.Flags().BoolVar(&cmder.merge, "merge", false, "Merge into the existing database instead of replacing it")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.RegisterFlagCompletionFunc("from", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		formats := importer.Formats()
		names := make([]string, 0, len(formats))
		for _, f := range formats {
			names = append(names, string(f))
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func (c *importCommander) run(cmd *cobra.Command, cfg *config.Config, format importer.Format, name string) error {
	var r io.Reader = cmd.InOrStdin()
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return fmt.Errorf("opening import file: %w", err)
		}
		defer f.Close()
		r = f
	}

	sess, err := session.Open(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer sess.Close()

	n, err := importer.Import(sess.Store, r, importer.Options{
		Format: format,
		Merge:  c.merge,
		Now:    time.Now().Unix(),
	})
	if err != nil {
		return cliui.Step(cmd.OutOrStdout(), "Import failed", fmt.Errorf("importing %s: %w", name, err))
	}

	err = sess.Store.Save()
	return cliui.Step(cmd.OutOrStdout(), fmt.Sprintf("Imported %d directories from %s", n, format), err)
}
