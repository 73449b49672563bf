package plot

import (
	"log/slog"
	"math"

	"github.com/gogpu/gg"
)

// axisLabelGap is the gap between the tick labels and the axis title, in
// units of the title height.
const axisLabelGap = 0.25

// DefaultTextColor is the text color used when an AxisWidget has none.
var DefaultTextColor = gg.RGB(0.55, 0.55, 0.55)

// TextShape is a positioned piece of text to draw.
type TextShape struct {
	// Pos is the top-left corner of the text box before rotation.
	// Rotation is about this point.
	Pos Pos

	Text string

	// Size is the measured size of the unrotated text.
	Size Vec

	// Angle is the clockwise rotation in radians. Y axis titles use -π/2.
	Angle float64

	Color gg.RGBA

	// Strength is the label fade in [0, 1]; Color already includes it.
	Strength float64
}

// AxisLayout is the result of laying out one axis.
type AxisLayout struct {
	Shapes []TextShape

	// Thickness is the screen space the tick labels and title occupy
	// perpendicular to the axis.
	Thickness float64
}

// AxisWidget lays out the tick labels and title of one axis.
type AxisWidget struct {
	// Range is the visible data range handed to the formatter.
	Range Range

	Hints *AxisHints

	// Rect is the strip reserved for the axis.
	Rect Rect

	// Clip is the visible screen area. A zero Clip means everything is visible.
	Clip Rect

	// Transform is nil until the plot has a data window.
	Transform *Transform

	// Marks are the candidate ticks, laid out in the given order.
	Marks []GridMark

	// TextColor is the fully opaque label color. Zero means DefaultTextColor.
	TextColor gg.RGBA
}

// NewAxisWidget creates an AxisWidget for the strip rect.
func NewAxisWidget(hints *AxisHints, rect Rect) AxisWidget {
	return AxisWidget{Hints: hints, Rect: rect}
}

func (w AxisWidget) visible() bool {
	if w.Rect.IsNegative() {
		return false
	}
	return w.Clip.IsZero() || w.Rect.Intersects(w.Clip)
}

func (w AxisWidget) textColor() gg.RGBA {
	if w.TextColor == (gg.RGBA{}) {
		return DefaultTextColor
	}
	return w.TextColor
}

// colorFromStrength fades c by strength. The square root keeps faint
// labels readable for longer.
func (w AxisWidget) colorFromStrength(strength float64) gg.RGBA {
	c := w.textColor()
	c.A *= math.Sqrt(strength)
	return c
}

// Layout places the tick labels and the axis title.
// An axis without a transform, hints, or a visible strip lays out nothing.
func (w AxisWidget) Layout(axis Axis, m TextMeasurer) AxisLayout {
	if w.Transform == nil || w.Hints == nil || !w.visible() {
		return AxisLayout{}
	}

	out := AxisLayout{}
	out.Shapes, out.Thickness = w.tickLabels(axis, m, *w.Transform)

	if w.Hints.Label == "" {
		return out
	}

	size := m.MeasureText(w.Hints.Label)
	var pos Pos
	switch w.Hints.Placement {
	case LeftBottom:
		if axis == X {
			p := w.Rect.CenterBottom()
			pos = Pos{X: p.X - size.X*0.5, Y: p.Y - size.Y*(1+axisLabelGap)}
		} else {
			p := w.Rect.LeftCenter()
			pos = Pos{X: p.X - size.Y*axisLabelGap, Y: p.Y + size.X*0.5}
		}
	case RightTop:
		if axis == X {
			p := w.Rect.CenterTop()
			pos = Pos{X: p.X - size.X*0.5, Y: p.Y + size.Y*axisLabelGap}
		} else {
			p := w.Rect.RightCenter()
			pos = Pos{X: p.X - size.Y*(1-axisLabelGap), Y: p.Y + size.X*0.5}
		}
	}

	angle := 0.0
	if axis == Y {
		angle = -math.Pi / 2
	}

	out.Shapes = append(out.Shapes, TextShape{
		Pos:      pos,
		Text:     w.Hints.Label,
		Size:     size,
		Angle:    angle,
		Color:    w.textColor(),
		Strength: 1,
	})
	out.Thickness += size.Y * (1 + axisLabelGap)
	return out
}

// tickLabels lays out the tick labels and returns them with their thickness.
func (w AxisWidget) tickLabels(axis Axis, m TextMeasurer, t Transform) ([]TextShape, float64) {
	var (
		shapes    []TextShape
		thickness float64
	)
	spacing := w.Hints.LabelSpacing
	format := w.Hints.Formatter
	if format == nil {
		format = DefaultFormatter
	}
	scale := t.DPosDValue()[axis.Index()]

	for _, mark := range w.Marks {
		s := format(mark, w.Range)
		if s == "" {
			continue
		}

		spacingInPoints := math.Abs(scale * mark.StepSize)
		if spacingInPoints <= spacing.Min {
			// Too close together to paint.
			continue
		}

		strength := RemapClamp(spacingInPoints, spacing, Range{Min: 0, Max: 1})

		size := m.MeasureText(s)
		if spacingInPoints < size.At(axis) {
			Logger().Debug("plot: tick label does not fit",
				slog.String("axis", axis.String()),
				slog.String("text", s),
				slog.Float64("spacing", spacingInPoints))
			continue
		}

		var pos Pos
		switch axis {
		case X:
			thickness = math.Max(thickness, size.Y)
			centerX := t.PositionFromPoint(Point{X: mark.Value}).X
			y := w.Rect.Min.Y
			if w.Hints.Placement == Top {
				y = w.Rect.Max.Y - size.Y
			}
			pos = Pos{X: centerX - size.X/2, Y: y}
		case Y:
			thickness = math.Max(thickness, size.X)
			centerY := t.PositionFromPoint(Point{Y: mark.Value}).Y
			x := w.Rect.Max.X - size.X
			if w.Hints.Placement == Right {
				x = w.Rect.Min.X
			}
			pos = Pos{X: x, Y: centerY - size.Y/2}
		}

		shapes = append(shapes, TextShape{
			Pos:      pos,
			Text:     s,
			Size:     size,
			Color:    w.colorFromStrength(strength),
			Strength: strength,
		})
	}
	return shapes, thickness
}
