package plot

import (
	"fmt"
	"math"
)

// Bounds is an axis-aligned rectangle in data space: the range of values
// a plot shows. Index 0 is X, index 1 is Y.
//
// A Bounds is owned by a single caller; the mutating methods use pointer
// receivers and are not safe for concurrent use.
type Bounds struct {
	min [2]float64
	max [2]float64
}

// EmptyBounds contains nothing. It is the identity for ExtendWith and Merge.
var EmptyBounds = Bounds{
	min: [2]float64{math.Inf(1), math.Inf(1)},
	max: [2]float64{math.Inf(-1), math.Inf(-1)},
}

// NewBounds creates Bounds from per-axis minimum and maximum values.
func NewBounds(min, max [2]float64) Bounds {
	return Bounds{min: min, max: max}
}

// NewSymmetricalBounds creates Bounds spanning [-halfExtent, halfExtent] on both axes.
func NewSymmetricalBounds(halfExtent float64) Bounds {
	return Bounds{
		min: [2]float64{-halfExtent, -halfExtent},
		max: [2]float64{halfExtent, halfExtent},
	}
}

// Min returns the per-axis minimum.
func (b Bounds) Min() [2]float64 { return b.min }

// Max returns the per-axis maximum.
func (b Bounds) Max() [2]float64 { return b.max }

// IsFinite reports whether all four values are finite.
func (b Bounds) IsFinite() bool {
	return b.IsFiniteX() && b.IsFiniteY()
}

// IsFiniteX reports whether both X values are finite.
func (b Bounds) IsFiniteX() bool {
	return isFinite(b.min[0]) && isFinite(b.max[0])
}

// IsFiniteY reports whether both Y values are finite.
func (b Bounds) IsFiniteY() bool {
	return isFinite(b.min[1]) && isFinite(b.max[1])
}

// IsValid reports whether both axes are valid.
func (b Bounds) IsValid() bool {
	return b.IsValidX() && b.IsValidY()
}

// IsValidX reports whether the X axis is finite with a positive, finite width.
func (b Bounds) IsValidX() bool {
	return b.IsFiniteX() && validExtent(b.Width())
}

// IsValidY reports whether the Y axis is finite with a positive, finite height.
func (b Bounds) IsValidY() bool {
	return b.IsFiniteY() && validExtent(b.Height())
}

func validExtent(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// Width returns max X - min X.
func (b Bounds) Width() float64 { return b.max[0] - b.min[0] }

// Height returns max Y - min Y.
func (b Bounds) Height() float64 { return b.max[1] - b.min[1] }

// Center returns the midpoint. It stays finite for finite bounds near
// the float64 limits.
func (b Bounds) Center() Point {
	return Point{
		X: b.min[0]/2 + b.max[0]/2,
		Y: b.min[1]/2 + b.max[1]/2,
	}
}

// RangeX returns the X interval.
func (b Bounds) RangeX() Range { return Range{Min: b.min[0], Max: b.max[0]} }

// RangeY returns the Y interval.
func (b Bounds) RangeY() Range { return Range{Min: b.min[1], Max: b.max[1]} }

// Range returns the interval for the given axis.
func (b Bounds) Range(axis Axis) Range {
	if axis == Y {
		return b.RangeY()
	}
	return b.RangeX()
}

// String implements fmt.Stringer.
func (b Bounds) String() string {
	return fmt.Sprintf("Bounds{x: [%g, %g], y: [%g, %g]}", b.min[0], b.max[0], b.min[1], b.max[1])
}

// ExtendWith grows b to include p.
func (b *Bounds) ExtendWith(p Point) {
	b.ExtendWithX(p.X)
	b.ExtendWithY(p.Y)
}

// ExtendWithX grows the X axis to include x.
func (b *Bounds) ExtendWithX(x float64) {
	b.min[0] = math.Min(b.min[0], x)
	b.max[0] = math.Max(b.max[0], x)
}

// ExtendWithY grows the Y axis to include y.
func (b *Bounds) ExtendWithY(y float64) {
	b.min[1] = math.Min(b.min[1], y)
	b.max[1] = math.Max(b.max[1], y)
}

// ExpandX pads both ends of the X axis by pad. Non-finite pads are ignored.
func (b *Bounds) ExpandX(pad float64) {
	if isFinite(pad) {
		b.min[0] -= pad
		b.max[0] += pad
		b.clampToFinite()
	}
}

// ExpandY pads both ends of the Y axis by pad. Non-finite pads are ignored.
func (b *Bounds) ExpandY(pad float64) {
	if isFinite(pad) {
		b.min[1] -= pad
		b.max[1] += pad
		b.clampToFinite()
	}
}

// AddRelativeMarginX pads the X axis by fraction of its width.
func (b *Bounds) AddRelativeMarginX(fraction float64) {
	b.ExpandX(fraction * math.Max(b.Width(), 0))
}

// AddRelativeMarginY pads the Y axis by fraction of its height.
func (b *Bounds) AddRelativeMarginY(fraction float64) {
	b.ExpandY(fraction * math.Max(b.Height(), 0))
}

// Merge grows b to include o.
func (b *Bounds) Merge(o Bounds) {
	b.MergeX(o)
	b.MergeY(o)
}

// MergeX grows the X axis of b to include the X axis of o.
func (b *Bounds) MergeX(o Bounds) {
	b.min[0] = math.Min(b.min[0], o.min[0])
	b.max[0] = math.Max(b.max[0], o.max[0])
}

// MergeY grows the Y axis of b to include the Y axis of o.
func (b *Bounds) MergeY(o Bounds) {
	b.min[1] = math.Min(b.min[1], o.min[1])
	b.max[1] = math.Max(b.max[1], o.max[1])
}

// SetX copies the X axis from o.
func (b *Bounds) SetX(o Bounds) {
	b.min[0] = o.min[0]
	b.max[0] = o.max[0]
}

// SetY copies the Y axis from o.
func (b *Bounds) SetY(o Bounds) {
	b.min[1] = o.min[1]
	b.max[1] = o.max[1]
}

// SetXCenterWidth sets the X axis to width centered on x.
func (b *Bounds) SetXCenterWidth(x, width float64) {
	b.min[0] = x - width/2
	b.max[0] = x + width/2
}

// SetYCenterHeight sets the Y axis to height centered on y.
func (b *Bounds) SetYCenterHeight(y, height float64) {
	b.min[1] = y - height/2
	b.max[1] = y + height/2
}

// TranslateX shifts the X axis by delta. Non-finite deltas are ignored.
func (b *Bounds) TranslateX(delta float64) {
	if isFinite(delta) {
		b.min[0] += delta
		b.max[0] += delta
		b.clampToFinite()
	}
}

// TranslateY shifts the Y axis by delta. Non-finite deltas are ignored.
func (b *Bounds) TranslateY(delta float64) {
	if isFinite(delta) {
		b.min[1] += delta
		b.max[1] += delta
		b.clampToFinite()
	}
}

// Translate shifts both axes.
func (b *Bounds) Translate(dx, dy float64) {
	b.TranslateX(dx)
	b.TranslateY(dy)
}

// Zoom scales each axis around center by 1/factor on that axis.
// A factor above 1 zooms in. The result may be invalid; callers that need
// a usable window must check IsValid.
func (b *Bounds) Zoom(factor Vec, center Point) {
	b.min[0] = center.X + (b.min[0]-center.X)/factor.X
	b.max[0] = center.X + (b.max[0]-center.X)/factor.X
	b.min[1] = center.Y + (b.min[1]-center.Y)/factor.Y
	b.max[1] = center.Y + (b.max[1]-center.Y)/factor.Y
}

// MakeXSymmetrical makes the X axis symmetric about zero, keeping the larger magnitude.
// The magnitude is capped at half the largest float64 so the width stays finite.
func (b *Bounds) MakeXSymmetrical() {
	abs := symmetricalExtent(b.min[0], b.max[0])
	b.min[0] = -abs
	b.max[0] = abs
}

// MakeYSymmetrical makes the Y axis symmetric about zero, keeping the larger magnitude.
// The magnitude is capped like MakeXSymmetrical.
func (b *Bounds) MakeYSymmetrical() {
	abs := symmetricalExtent(b.min[1], b.max[1])
	b.min[1] = -abs
	b.max[1] = abs
}

func symmetricalExtent(lo, hi float64) float64 {
	return math.Min(math.Max(math.Abs(lo), math.Abs(hi)), math.MaxFloat64/2)
}

// clampToFinite replaces infinities with the largest finite values and NaN with zero.
func (b *Bounds) clampToFinite() {
	for d := range 2 {
		b.min[d] = clampFinite(b.min[d])
		b.max[d] = clampFinite(b.max[d])
	}
}

func clampFinite(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v > math.MaxFloat64:
		return math.MaxFloat64
	case v < -math.MaxFloat64:
		return -math.MaxFloat64
	}
	return v
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
