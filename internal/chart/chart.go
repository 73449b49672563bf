// Package chart arranges a plot frame and its two axes inside a drawing
// area. It is shared by the PNG renderer and the terminal explorer, which
// differ only in the unit their TextMeasurer reports.
package chart

import (
	"log/slog"
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/plot"
)

// maxReflows bounds how often the frame is shrunk to fit the axes.
const maxReflows = 3

// Options describe a chart independent of its size.
type Options struct {
	XHints plot.AxisHints
	YHints plot.AxisHints

	CenterX bool
	CenterY bool

	// DataAspect locks the data aspect ratio when positive.
	DataAspect float64

	// Margin is the relative padding added around the data bounds.
	Margin float64

	GridBase       int64
	GridMinSpacing float64

	// TextColor is the opaque label color. Zero means plot.DefaultTextColor.
	TextColor gg.RGBA
}

// DefaultOptions returns options with default axis hints and a base 10 grid.
func DefaultOptions() Options {
	return Options{
		XHints:         plot.NewAxisHints(plot.X),
		YHints:         plot.NewAxisHints(plot.Y),
		Margin:         0.05,
		GridBase:       10,
		GridMinSpacing: 8,
	}
}

func (o Options) hints(axis plot.Axis) *plot.AxisHints {
	if axis == plot.X {
		return &o.XHints
	}
	return &o.YHints
}

func (o Options) spacer() plot.GridSpacer {
	base := o.GridBase
	if base < 2 {
		base = 10
	}
	return plot.LogGridSpacer(base)
}

// DataBounds returns the bounds of pts padded by the relative margin.
// Non-finite points are ignored.
func DataBounds(pts []plot.Point, margin float64) plot.Bounds {
	b := plot.EmptyBounds
	for _, p := range pts {
		if math.IsNaN(p.X) || math.IsInf(p.X, 0) || math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			continue
		}
		b.ExtendWith(p)
	}
	if margin > 0 {
		b.AddRelativeMarginX(margin)
		b.AddRelativeMarginY(margin)
	}
	return b
}

// Chart is a laid out plot: the frame transform, the grid marks and the
// two axis layouts.
type Chart struct {
	Area      plot.Rect
	Transform plot.Transform

	XMarks []plot.GridMark
	YMarks []plot.GridMark

	XRect plot.Rect
	YRect plot.Rect

	X plot.AxisLayout
	Y plot.AxisLayout
}

// Layout fits a plot showing bounds into area. The axes are laid out,
// the frame is shrunk by their thickness and the axes are laid out again
// until the thickness settles. The returned strips are always sized from
// the last measured thickness.
func Layout(area plot.Rect, bounds plot.Bounds, opts Options, m plot.TextMeasurer) Chart {
	return reflow(opts.XHints.MinThickness, opts.YHints.MinThickness, func(xThick, yThick float64) Chart {
		return layoutOnce(area, bounds, opts, m, xThick, yThick)
	})
}

// reflow calls layout with the minimum thickness, then again with the
// thickness the previous call measured, until it stops changing or
// maxReflows relayouts have been made.
func reflow(xMin, yMin float64, layout func(xThick, yThick float64) Chart) Chart {
	xThick, yThick := xMin, yMin
	c := layout(xThick, yThick)
	for pass := 0; pass < maxReflows; pass++ {
		nx := math.Max(c.X.Thickness, xMin)
		ny := math.Max(c.Y.Thickness, yMin)
		if nx == xThick && ny == yThick {
			return c
		}
		plot.Logger().Debug("chart: reflow",
			slog.Int("pass", pass),
			slog.Float64("x_thickness", nx),
			slog.Float64("y_thickness", ny))
		xThick, yThick = nx, ny
		c = layout(xThick, yThick)
	}
	return c
}

func layoutOnce(area plot.Rect, bounds plot.Bounds, opts Options, m plot.TextMeasurer, xThick, yThick float64) Chart {
	frame := area
	var xRect, yRect plot.Rect

	switch opts.XHints.Placement {
	case plot.Bottom:
		frame.Max.Y -= xThick
	case plot.Top:
		frame.Min.Y += xThick
	}
	switch opts.YHints.Placement {
	case plot.Left:
		frame.Min.X += yThick
	case plot.Right:
		frame.Max.X -= yThick
	}
	frame = clampFrame(frame)

	if opts.XHints.Placement == plot.Bottom {
		xRect = plot.Rect{Min: plot.Pos{X: frame.Left(), Y: frame.Bottom()}, Max: plot.Pos{X: frame.Right(), Y: frame.Bottom() + xThick}}
	} else {
		xRect = plot.Rect{Min: plot.Pos{X: frame.Left(), Y: frame.Top() - xThick}, Max: plot.Pos{X: frame.Right(), Y: frame.Top()}}
	}
	if opts.YHints.Placement == plot.Left {
		yRect = plot.Rect{Min: plot.Pos{X: frame.Left() - yThick, Y: frame.Top()}, Max: plot.Pos{X: frame.Left(), Y: frame.Bottom()}}
	} else {
		yRect = plot.Rect{Min: plot.Pos{X: frame.Right(), Y: frame.Top()}, Max: plot.Pos{X: frame.Right() + yThick, Y: frame.Bottom()}}
	}

	t := plot.NewTransform(frame, bounds, opts.CenterX, opts.CenterY)
	if opts.DataAspect > 0 {
		t = t.WithAspectByExpanding(opts.DataAspect)
	}

	c := Chart{Area: area, Transform: t, XRect: xRect, YRect: yRect}
	spacer := opts.spacer()
	c.XMarks = spacer(plot.NewGridInput(t, plot.X, opts.GridMinSpacing))
	c.YMarks = spacer(plot.NewGridInput(t, plot.Y, opts.GridMinSpacing))
	c.X = opts.layoutAxis(plot.X, t, xRect, area, c.XMarks, m)
	c.Y = opts.layoutAxis(plot.Y, t, yRect, area, c.YMarks, m)
	return c
}

func (o Options) layoutAxis(axis plot.Axis, t plot.Transform, rect, clip plot.Rect, marks []plot.GridMark, m plot.TextMeasurer) plot.AxisLayout {
	w := plot.NewAxisWidget(o.hints(axis), rect)
	w.TextColor = o.TextColor
	w.Clip = clip
	w.Transform = &t
	w.Range = t.Range(axis)
	w.Marks = marks
	return w.Layout(axis, m)
}

// clampFrame collapses a frame squeezed past zero size onto its center.
func clampFrame(r plot.Rect) plot.Rect {
	if r.Width() < 0 {
		c := (r.Min.X + r.Max.X) / 2
		r.Min.X, r.Max.X = c, c
	}
	if r.Height() < 0 {
		c := (r.Min.Y + r.Max.Y) / 2
		r.Min.Y, r.Max.Y = c, c
	}
	return r
}
