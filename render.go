package plot

import (
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// DefaultGridSpacing is the screen spacing over which grid lines fade in.
var DefaultGridSpacing = Range{Min: 8, Max: 300}

// DrawTextShapes draws shapes onto dc using face. The face must be the one
// the shapes were measured with for the placement to line up.
func DrawTextShapes(dc *gg.Context, face text.Face, shapes []TextShape) {
	if face == nil {
		return
	}
	ascent := face.Metrics().Ascent

	dc.Push()
	defer dc.Pop()
	dc.SetFont(face)

	for _, s := range shapes {
		if s.Text == "" || s.Color.A <= 0 {
			continue
		}
		dc.SetRGBA(s.Color.R, s.Color.G, s.Color.B, s.Color.A)
		if s.Angle == 0 {
			dc.DrawString(s.Text, s.Pos.X, s.Pos.Y+ascent)
			continue
		}
		dc.Push()
		dc.Translate(s.Pos.X, s.Pos.Y)
		dc.Rotate(s.Angle)
		dc.DrawString(s.Text, 0, ascent)
		dc.Pop()
	}
}

// DrawGridLines strokes one line across the frame of t for every mark on
// axis. Lines fade in with their on-screen spacing across spacing.
func DrawGridLines(dc *gg.Context, t Transform, axis Axis, marks []GridMark, spacing Range, col gg.RGBA) error {
	frame := t.Frame()
	scale := t.DPosDValue()[axis.Index()]

	dc.Push()
	defer dc.Pop()
	dc.SetLineWidth(1)

	for _, mark := range marks {
		spacingInPoints := math.Abs(scale * mark.StepSize)
		strength := RemapClamp(spacingInPoints, spacing, Range{Min: 0, Max: 1})
		if strength <= 0 {
			continue
		}
		dc.SetRGBA(col.R, col.G, col.B, col.A*math.Sqrt(strength))
		switch axis {
		case X:
			x := t.PositionFromPointX(mark.Value)
			dc.DrawLine(x, frame.Top(), x, frame.Bottom())
		case Y:
			y := t.PositionFromPointY(mark.Value)
			dc.DrawLine(frame.Left(), y, frame.Right(), y)
		}
		if err := dc.Stroke(); err != nil {
			return err
		}
	}
	return nil
}
