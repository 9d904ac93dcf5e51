package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/beckbria/sketchren/internal/hlog"
	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

type app struct {
	fs afero.Fs

	plain    bool
	debug    bool
	levelVar slog.LevelVar
	logger   hlog.Logger
}

// NewRootCmd builds the command tree operating on fsys.
func NewRootCmd(fsys afero.Fs) *cobra.Command {
	a := &app{fs: fsys}

	rootCmd := &cobra.Command{
		Use:           "sketchren",
		Short:         "Rename and renumber files in example sketch trees",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.setupLogger(cmd.ErrOrStderr())
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(hlog.ContextWithLogger(ctx, a.logger))
			return nil
		},
	}

	isTerm := isatty.IsTerminal(os.Stderr.Fd())

	rootCmd.PersistentFlags().BoolVarP(&a.plain, "plain", "", !isTerm, "disable coloured log output")
	rootCmd.PersistentFlags().BoolVarP(&a.debug, "debug", "", false, "enable debug log")

	rootCmd.AddCommand(newNormalizeCmd(a), newRenumberCmd(a))

	return rootCmd
}

func (a *app) setupLogger(w io.Writer) {
	a.levelVar.Set(slog.LevelInfo)
	if a.debug {
		a.levelVar.Set(slog.LevelDebug)
	}
	if a.plain {
		a.logger = hlog.NewPlainLogger(w, &a.levelVar)
	} else {
		a.logger = hlog.NewTextLogger(w, &a.levelVar)
	}
}

// Execute runs the command line against the host filesystem and exits
// non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := NewRootCmd(afero.NewOsFs())
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger := hlog.NewTextLogger(os.Stderr, slog.LevelInfo)
		if !isatty.IsTerminal(os.Stderr.Fd()) {
			logger = hlog.NewPlainLogger(os.Stderr, slog.LevelInfo)
		}
		logger.Error(err.Error())
		stop()
		os.Exit(1)
	}
}
