package cli

import (
	"context"
	"fmt"
	"log/slog"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gogpu/plot"
)

var (
	version string
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version.
// It is called by main with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the ggplot CLI until it finishes or ctx is canceled.
//
// Logging goes to stderr at info level, or debug level with --verbose.
// The same logger receives the records of the plot package.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "ggplot",
		Short:         "ggplot renders data as 2D charts with fading axis labels",
		Long:          `ggplot lays out and renders 2D line charts from CSV data, either to PNG or interactively in the terminal.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(cmd.ErrOrStderr(), level)
			plot.SetLogger(slog.New(logger))
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("ggplot %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newTicksCmd())
	root.AddCommand(newExploreCmd())

	return root
}
