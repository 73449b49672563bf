package plot

import (
	"log/slog"
	"math"
)

// aspectEpsilon is how close the current aspect must be to the target
// before an aspect correction is skipped.
const aspectEpsilon = 1e-5

// Transform maps between a screen frame and a window of data-space bounds.
//
// The stored bounds are always valid: NewTransform sanitizes degenerate
// input, and the operations that change the bounds return a new Transform
// rather than modifying the receiver.
type Transform struct {
	frame    Rect
	bounds   Bounds
	centered [2]bool
}

// NewTransform creates a Transform for frame and a sanitized copy of bounds.
//
// Per axis: a non-finite axis becomes [-1, 1]; a finite axis with zero or
// negative extent is re-centered on its midpoint using the extent of the
// other axis if that one is valid, otherwise an extent of 2. At large
// magnitudes that extent is widened so the two ends stay distinct. An axis
// with its center flag set is then made symmetric about zero.
//
// frame must have non-negative width and height.
func NewTransform(frame Rect, bounds Bounds, centerX, centerY bool) Transform {
	if !(frame.Width() >= 0 && frame.Height() >= 0) {
		Logger().Error("plot: bad frame", slog.Any("frame", frame))
	}

	// Each axis may borrow the other's extent, so read from the unsanitized bounds.
	b := bounds

	width := 2.0
	if bounds.IsValidX() {
		width = bounds.Width()
	}
	height := 2.0
	if bounds.IsValidY() {
		height = bounds.Height()
	}
	b.min[0], b.max[0] = sanitizeAxis(bounds.min[0], bounds.max[0], height)
	b.min[1], b.max[1] = sanitizeAxis(bounds.min[1], bounds.max[1], width)

	if centerX {
		b.MakeXSymmetrical()
	}
	if centerY {
		b.MakeYSymmetrical()
	}

	if !b.IsValid() {
		Logger().Error("plot: bad sanitized bounds", slog.String("bounds", b.String()))
	}

	return Transform{
		frame:    frame,
		bounds:   b,
		centered: [2]bool{centerX, centerY},
	}
}

// Frame returns the screen rectangle.
func (t Transform) Frame() Rect { return t.frame }

// Bounds returns the sanitized data-space bounds.
func (t Transform) Bounds() Bounds { return t.bounds }

// Centered reports whether axis is kept symmetric about zero.
func (t Transform) Centered(axis Axis) bool { return t.centered[axis.Index()] }

// Range returns the visible data range on axis.
func (t Transform) Range(axis Axis) Range { return t.bounds.Range(axis) }

// WithBounds returns a copy of t showing bounds. The bounds are stored as
// given; callers are expected to pass valid bounds.
func (t Transform) WithBounds(bounds Bounds) Transform {
	t.bounds = bounds
	return t
}

// PositionFromPointX maps a data X value to a screen X coordinate.
func (t Transform) PositionFromPointX(x float64) float64 {
	return Remap(x, t.bounds.RangeX(), Range{Min: t.frame.Left(), Max: t.frame.Right()})
}

// PositionFromPointY maps a data Y value to a screen Y coordinate.
// Data Y grows upward and screen Y grows downward, so the mapping is inverted.
func (t Transform) PositionFromPointY(y float64) float64 {
	return Remap(y, t.bounds.RangeY(), Range{Min: t.frame.Bottom(), Max: t.frame.Top()})
}

// PositionFromPoint maps a data point to a screen position.
func (t Transform) PositionFromPoint(p Point) Pos {
	return Pos{X: t.PositionFromPointX(p.X), Y: t.PositionFromPointY(p.Y)}
}

// ValueFromPosition maps a screen position to a data point.
func (t Transform) ValueFromPosition(p Pos) Point {
	return Point{
		X: Remap(p.X, Range{Min: t.frame.Left(), Max: t.frame.Right()}, t.bounds.RangeX()),
		Y: Remap(p.Y, Range{Min: t.frame.Bottom(), Max: t.frame.Top()}, t.bounds.RangeY()),
	}
}

// RectFromValues returns the screen rectangle spanned by two data points.
// The rectangle is normalized, so its top edge comes from the larger Y value.
func (t Transform) RectFromValues(a, b Point) Rect {
	r := NothingRect
	r.ExtendWith(t.PositionFromPoint(a))
	r.ExtendWith(t.PositionFromPoint(b))
	return r
}

// DPosDValueX returns screen units per data unit along X.
func (t Transform) DPosDValueX() float64 {
	return t.frame.Width() / t.bounds.Width()
}

// DPosDValueY returns screen units per data unit along Y. It is negative.
func (t Transform) DPosDValueY() float64 {
	return -t.frame.Height() / t.bounds.Height()
}

// DPosDValue returns screen units per data unit for both axes.
func (t Transform) DPosDValue() [2]float64 {
	return [2]float64{t.DPosDValueX(), t.DPosDValueY()}
}

// DValueDPos returns data units per screen unit for both axes.
func (t Transform) DValueDPos() [2]float64 {
	return [2]float64{1 / t.DPosDValueX(), 1 / t.DPosDValueY()}
}

// TranslateBounds returns t panned by a screen-space delta. Centered axes
// do not move. A pan that would leave the bounds invalid is discarded.
func (t Transform) TranslateBounds(delta Vec) Transform {
	if t.centered[0] {
		delta.X = 0
	}
	if t.centered[1] {
		delta.Y = 0
	}
	d := t.DValueDPos()
	b := t.bounds
	b.Translate(delta.X*d[0], delta.Y*d[1])
	if !b.IsValid() {
		Logger().Debug("plot: pan discarded",
			slog.Float64("dx", delta.X),
			slog.Float64("dy", delta.Y),
			slog.String("bounds", b.String()))
		return t
	}
	t.bounds = b
	return t
}

// Zoom returns t zoomed by factor around the screen position center.
// A factor above 1 zooms in. If the zoomed bounds would be invalid the
// zoom is discarded and t is returned unchanged.
func (t Transform) Zoom(factor Vec, center Pos) Transform {
	c := t.ValueFromPosition(center)

	b := t.bounds
	b.Zoom(factor, c)

	if !b.IsValid() {
		Logger().Debug("plot: zoom discarded",
			slog.Float64("factor_x", factor.X),
			slog.Float64("factor_y", factor.Y),
			slog.String("bounds", b.String()))
		return t
	}
	t.bounds = b
	return t
}

// minRelativeExtent is the smallest extent, relative to the magnitude of
// its center, a re-centered axis may have. Below it the two ends round to
// the same float64.
const minRelativeExtent = 8 * epsilon

// sanitizeAxis returns an interval with a finite, positive extent for one
// axis. Non-finite ends give [-1, 1]. A finite extent that overflows is
// halved about its center. An empty or inverted interval is re-centered
// on its midpoint with the fallback extent, widened until both ends are
// distinct floats.
func sanitizeAxis(lo, hi, fallback float64) (float64, float64) {
	if !isFinite(lo) || !isFinite(hi) {
		return -1, 1
	}
	if validExtent(hi - lo) {
		return lo, hi
	}

	c := lo/2 + hi/2
	if hi > lo {
		half := hi/2 - lo/2
		return c - half/2, c + half/2
	}

	w := math.Max(fallback, math.Abs(c)*minRelativeExtent)
	lo, hi = c-w/2, c+w/2
	switch {
	case hi > math.MaxFloat64:
		hi = math.MaxFloat64
		lo = hi - w
	case lo < -math.MaxFloat64:
		lo = -math.MaxFloat64
		hi = lo + w
	}
	if !isFinite(lo) || !isFinite(hi) || !validExtent(hi-lo) {
		return -1, 1
	}
	return lo, hi
}

// aspect returns the x/y ratio of data units per screen unit.
// It is 1 when both axes have the same scale.
func (t Transform) aspect() float64 {
	rw := t.frame.Width()
	rh := t.frame.Height()
	return (t.bounds.Width() / rw) / (t.bounds.Height() / rh)
}

// WithAspectByExpanding returns t with its bounds expanded on one axis so
// that the aspect matches. Bounds never shrink.
func (t Transform) WithAspectByExpanding(aspect float64) Transform {
	current, ok := t.currentAspect(aspect)
	if !ok {
		return t
	}
	if current < aspect {
		t.bounds.ExpandX((aspect/current - 1) * t.bounds.Width() * 0.5)
	} else {
		t.bounds.ExpandY((current/aspect - 1) * t.bounds.Height() * 0.5)
	}
	return t
}

// WithAspectByChangingAxis returns t with the bounds of axis expanded so
// that the aspect matches. If matching would require shrinking that axis,
// t is returned unchanged.
func (t Transform) WithAspectByChangingAxis(aspect float64, axis Axis) Transform {
	current, ok := t.currentAspect(aspect)
	if !ok {
		return t
	}
	var pad float64
	switch axis {
	case X:
		pad = (aspect/current - 1) * t.bounds.Width() * 0.5
	case Y:
		pad = (current/aspect - 1) * t.bounds.Height() * 0.5
	}
	if pad < 0 {
		Logger().Debug("plot: aspect needs shrinking, skipped",
			slog.String("axis", axis.String()),
			slog.Float64("current", current),
			slog.Float64("target", aspect))
		return t
	}
	switch axis {
	case X:
		t.bounds.ExpandX(pad)
	case Y:
		t.bounds.ExpandY(pad)
	}
	return t
}

// currentAspect returns the current aspect and whether a correction
// towards target is needed.
func (t Transform) currentAspect(target float64) (float64, bool) {
	current := t.aspect()
	if !isFinite(current) || current <= 0 || !isFinite(target) || target <= 0 {
		Logger().Debug("plot: aspect undefined",
			slog.Float64("current", current),
			slog.Float64("target", target))
		return current, false
	}
	if math.Abs(current-target) < aspectEpsilon {
		return current, false
	}
	return current, true
}
