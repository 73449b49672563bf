package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/gogpu/plot/internal/tui"
)

func newExploreCmd() *cobra.Command {
	var flags sourceFlags

	cmd := &cobra.Command{
		Use:   "explore [data.csv]",
		Short: "Explore a chart in the terminal",
		Long: `Open an interactive terminal view of a chart.

Arrow keys pan, +/- and the mouse wheel zoom, a locks the aspect ratio,
r resets the view and q quits.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg, pts, err := flags.load(args)
			if err != nil {
				return err
			}
			opts, err := cfg.chartOptions()
			if err != nil {
				return err
			}
			logger.Debug("Starting explorer", "points", len(pts))

			p := tea.NewProgram(tui.New(pts, tui.CellOptions(opts)),
				tea.WithContext(cmd.Context()),
				tea.WithAltScreen(),
				tea.WithMouseCellMotion())
			final, err := p.Run()
			if err != nil {
				return fmt.Errorf("cli: explorer: %w", err)
			}
			if m, ok := final.(tui.Model); ok {
				logger.Info("Final view", "bounds", m.Bounds())
			}
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
