package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/plot"
)

// sourceFlags are the flags shared by the commands that read a chart.
type sourceFlags struct {
	config string
	width  int
	height int
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.config, "config", "c", "", "TOML chart config")
	cmd.Flags().IntVar(&f.width, "width", 0, "override the configured width")
	cmd.Flags().IntVar(&f.height, "height", 0, "override the configured height")
}

// load reads the config, applies the flag overrides and reads the data
// named by args.
func (f *sourceFlags) load(args []string) (Config, []plot.Point, error) {
	cfg, err := loadConfig(f.config)
	if err != nil {
		return Config{}, nil, err
	}
	if f.width != 0 {
		cfg.Width = f.width
	}
	if f.height != 0 {
		cfg.Height = f.height
	}
	if err := cfg.validate(); err != nil {
		return Config{}, nil, err
	}

	var path string
	if len(args) > 0 {
		path = args[0]
	}
	pts, err := loadPoints(path)
	if err != nil {
		return Config{}, nil, err
	}
	return cfg, pts, nil
}

func newRenderCmd() *cobra.Command {
	var (
		flags  sourceFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "render [data.csv]",
		Short: "Render a chart to PNG",
		Long: `Render a line chart of the x and y columns of a CSV file to PNG.

Without a file, sin(x) over [0, 4π] is plotted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			cfg, pts, err := flags.load(args)
			if err != nil {
				return err
			}
			logger.Debug("Loaded data", "points", len(pts), "width", cfg.Width, "height", cfg.Height)

			dc, c, err := renderChart(cfg, pts)
			if err != nil {
				return err
			}
			defer dc.Close()
			logger.Debug("Laid out chart",
				"frame", fmt.Sprintf("%+v", c.Transform.Frame()),
				"bounds", c.Transform.Bounds(),
				"x_labels", len(c.X.Shapes),
				"y_labels", len(c.Y.Shapes))

			if err := dc.SavePNG(output); err != nil {
				return fmt.Errorf("cli: save png: %w", err)
			}
			prog.done("Rendered " + output)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "chart.png", "output PNG path")
	return cmd
}
