package cmd

import (
	"github.com/beckbria/sketchren/internal/hlog"
	"github.com/beckbria/sketchren/internal/sketchdir"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newNormalizeCmd(a *app) *cobra.Command {
	opts := sketchdir.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "normalize [root]",
		Short: "Rename the single file in each subdirectory of root after the subdirectory",
		Long: `For every directory directly below root (default: the current directory)
that holds exactly one file, rename that file to <directory><ext>. Empty
directories, directories with several files, and files already named correctly
are reported and left alone.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}

			report, err := sketchdir.Normalize(cmd.Context(), a.fs, root, opts, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			hlog.From(cmd.Context()).Debug("normalize done",
				"renamed", report.Count(sketchdir.KindRenamed),
				"named", report.Count(sketchdir.KindAlreadyNamed),
				"empty", report.Count(sketchdir.KindEmpty),
				"multiple", report.Count(sketchdir.KindMultiple),
				"unreadable", report.Count(sketchdir.KindUnreadable),
			)
			return nil
		},
	}

	flags := pflag.NewFlagSet("normalize", pflag.ContinueOnError)
	flags.StringVar(&opts.Extension, "ext", opts.Extension, "extension given to renamed sketch files")
	flags.StringArrayVar(&opts.Ignore, "ignore", opts.Ignore, "glob of directory entries that do not count as files (repeatable)")
	cmd.Flags().AddFlagSet(flags)

	return cmd
}
