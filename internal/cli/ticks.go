package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/gogpu/plot"
	"github.com/gogpu/plot/internal/chart"
)

var (
	styleHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36")).Padding(0, 1)
	styleCell   = lipgloss.NewStyle().Padding(0, 1)
	styleDim    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	styleBorder = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func newTicksCmd() *cobra.Command {
	var flags sourceFlags

	cmd := &cobra.Command{
		Use:   "ticks [data.csv]",
		Short: "Print the placed tick labels",
		Long: `Lay out a chart without drawing it and print every placed label with
its position, fade strength and the thickness of each axis.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, pts, err := flags.load(args)
			if err != nil {
				return err
			}
			c, _, err := layoutChart(cfg, pts)
			if err != nil {
				return err
			}
			return writeTicks(cmd.OutOrStdout(), c)
		},
	}

	flags.register(cmd)
	return cmd
}

// writeTicks prints the labels of both axes of c as a table followed by
// the axis thicknesses.
func writeTicks(w io.Writer, c chart.Chart) error {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers("axis", "text", "x", "y", "strength").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			return styleCell
		})

	addRows := func(axis plot.Axis, shapes []plot.TextShape) {
		for _, s := range shapes {
			t.Row(axis.String(), s.Text, num(s.Pos.X), num(s.Pos.Y), strconv.FormatFloat(s.Strength, 'f', 2, 64))
		}
	}
	addRows(plot.X, c.X.Shapes)
	addRows(plot.Y, c.Y.Shapes)

	_, err := fmt.Fprintf(w, "%s\n%s\n", t.Render(),
		styleDim.Render(fmt.Sprintf("thickness x=%s y=%s  frame %s", num(c.X.Thickness), num(c.Y.Thickness), rectString(c.Transform.Frame()))))
	return err
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func rectString(r plot.Rect) string {
	return fmt.Sprintf("[%s, %s]-[%s, %s]", num(r.Min.X), num(r.Min.Y), num(r.Max.X), num(r.Max.Y))
}
