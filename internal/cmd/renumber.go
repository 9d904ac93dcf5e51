package cmd

import (
	"fmt"
	"unicode/utf8"

	"github.com/beckbria/sketchren/internal/renumber"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newRenumberCmd(a *app) *cobra.Command {
	opts := renumber.DefaultOptions()
	marker := string(opts.Marker)

	cmd := &cobra.Command{
		Use:   "renumber [dir]",
		Short: "Renumber the files in dir whose name contains the marker",
		Long: `Every file in dir (default: the current directory) whose name contains the
marker is renumbered in name order: its digits are removed and each marker is
followed by the zero padded number step*n. Nothing is printed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			r, size := utf8.DecodeRuneInString(marker)
			if size == 0 || size != len(marker) {
				return fmt.Errorf("marker must be a single character, got %q", marker)
			}
			opts.Marker = r

			_, err := renumber.Renumber(cmd.Context(), a.fs, dir, opts)
			return err
		},
	}

	flags := pflag.NewFlagSet("renumber", pflag.ContinueOnError)
	flags.StringVar(&marker, "marker", marker, "character that flags a file for renumbering")
	flags.IntVar(&opts.Step, "step", opts.Step, "the n-th file is numbered step*n")
	flags.IntVar(&opts.Width, "width", opts.Width, "minimum number of digits")
	cmd.Flags().AddFlagSet(flags)

	return cmd
}
