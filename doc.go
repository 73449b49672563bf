// Package plot maps between a window of data values and a screen
// rectangle, and lays out the tick labels of chart axes.
//
// # Overview
//
// A [Bounds] is the visible window in data space. [NewTransform] pairs it
// with a screen [Rect] and sanitizes it, so that a [Transform] always has
// finite bounds with positive width and height no matter what the caller
// passed in. Transforms are values: panning, zooming and aspect
// correction return a new Transform.
//
//	frame := plot.Rect{Max: plot.Pos{X: 800, Y: 600}}
//	bounds := plot.NewBounds([2]float64{0, -1}, [2]float64{10, 1})
//	t := plot.NewTransform(frame, bounds, false, false)
//
//	screen := t.PositionFromPoint(plot.Pt(5, 0)) // {400, 300}
//	t = t.Zoom(plot.Splat(2), screen)            // zoom in around the center
//
// # Coordinate system
//
// Data Y grows upward and screen Y grows downward, so the Y mapping is
// inverted and [Transform.DPosDValueY] is negative.
//
// # Axes
//
// An [AxisWidget] takes a Transform, the [AxisHints] of one axis and a
// list of [GridMark] values (see [LogGridSpacer]) and produces
// [TextShape] draw instructions. Labels whose on-screen spacing falls
// inside [AxisHints.LabelSpacing] fade in; labels that are too dense, or
// wider than their spacing, are dropped.
//
//	m, _ := plot.NewDefaultFaceMeasurer(plot.DefaultFontSize)
//	hints := plot.NewAxisHints(plot.X, plot.WithLabel("time"))
//	w := plot.AxisWidget{
//	    Range:     t.Range(plot.X),
//	    Hints:     &hints,
//	    Rect:      xStrip,
//	    Transform: &t,
//	    Marks:     plot.LogGridSpacer(10)(plot.NewGridInput(t, plot.X, 8)),
//	}
//	layout := w.Layout(plot.X, m)
//	plot.DrawTextShapes(dc, m.Face(), layout.Shapes)
//
// # Logging
//
// The package is silent by default; see [SetLogger].
package plot
