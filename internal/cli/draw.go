package cli

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/gogpu/plot"
	"github.com/gogpu/plot/internal/chart"
)

var (
	backgroundColor = gg.RGB(1, 1, 1)
	gridColor       = gg.RGB(0.6, 0.6, 0.6)
	frameColor      = gg.RGB(0.3, 0.3, 0.3)
	lineColor       = gg.RGB(0.13, 0.4, 0.8)
	labelColor      = gg.RGB(0.2, 0.2, 0.2)
)

// drawChart paints c and the polyline through pts onto dc.
// Labels are drawn with face, which must be the face they were measured with.
func drawChart(dc *gg.Context, c chart.Chart, pts []plot.Point, face text.Face) error {
	dc.ClearWithColor(backgroundColor)

	t := c.Transform
	frame := t.Frame()

	if err := plot.DrawGridLines(dc, t, plot.X, c.XMarks, plot.DefaultGridSpacing, gridColor); err != nil {
		return fmt.Errorf("cli: draw x grid: %w", err)
	}
	if err := plot.DrawGridLines(dc, t, plot.Y, c.YMarks, plot.DefaultGridSpacing, gridColor); err != nil {
		return fmt.Errorf("cli: draw y grid: %w", err)
	}

	if err := drawSeries(dc, t, pts); err != nil {
		return fmt.Errorf("cli: draw series: %w", err)
	}

	dc.SetRGBA(frameColor.R, frameColor.G, frameColor.B, frameColor.A)
	dc.SetLineWidth(1)
	dc.DrawRectangle(frame.Left(), frame.Top(), frame.Width(), frame.Height())
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("cli: draw frame: %w", err)
	}

	plot.DrawTextShapes(dc, face, c.X.Shapes)
	plot.DrawTextShapes(dc, face, c.Y.Shapes)
	return nil
}

// drawSeries strokes pts as one polyline clipped to the frame of t.
func drawSeries(dc *gg.Context, t plot.Transform, pts []plot.Point) error {
	if len(pts) == 0 {
		return nil
	}
	frame := t.Frame()

	dc.Push()
	defer dc.Pop()

	dc.DrawRectangle(frame.Left(), frame.Top(), frame.Width(), frame.Height())
	dc.Clip()

	dc.SetRGBA(lineColor.R, lineColor.G, lineColor.B, lineColor.A)
	dc.SetLineWidth(2)
	for i, p := range pts {
		pos := t.PositionFromPoint(p)
		if i == 0 {
			dc.MoveTo(pos.X, pos.Y)
			continue
		}
		dc.LineTo(pos.X, pos.Y)
	}
	return dc.Stroke()
}

// layoutChart lays out a chart of pts measured with the default face.
func layoutChart(cfg Config, pts []plot.Point) (chart.Chart, *plot.FaceMeasurer, error) {
	opts, err := cfg.chartOptions()
	if err != nil {
		return chart.Chart{}, nil, err
	}
	m, err := plot.NewDefaultFaceMeasurer(plot.DefaultFontSize, plot.WithShaping(plot.ShapingAuto))
	if err != nil {
		return chart.Chart{}, nil, err
	}

	area := plot.Rect{Max: plot.Pos{X: float64(cfg.Width), Y: float64(cfg.Height)}}.Shrink(8, 8, 16, 8)
	opts.TextColor = labelColor
	return chart.Layout(area, chart.DataBounds(pts, opts.Margin), opts, m), m, nil
}

// renderChart lays out and draws a chart of pts.
func renderChart(cfg Config, pts []plot.Point) (*gg.Context, chart.Chart, error) {
	c, m, err := layoutChart(cfg, pts)
	if err != nil {
		return nil, chart.Chart{}, err
	}

	dc := gg.NewContext(cfg.Width, cfg.Height)
	if err := drawChart(dc, c, pts, m.Face()); err != nil {
		_ = dc.Close()
		return nil, chart.Chart{}, err
	}
	return dc, c, nil
}
