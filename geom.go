package plot

import "math"

// Point is a position in data space.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Pos is a position in screen space. Screen Y grows downward.
type Pos struct {
	X, Y float64
}

// Add returns p translated by v.
func (p Pos) Add(v Vec) Pos {
	return Pos{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the vector from q to p.
func (p Pos) Sub(q Pos) Vec {
	return Vec{X: p.X - q.X, Y: p.Y - q.Y}
}

// Vec is a screen-space delta, a size, or a per-axis factor.
type Vec struct {
	X, Y float64
}

// Splat returns a Vec with both components set to v.
func Splat(v float64) Vec {
	return Vec{X: v, Y: v}
}

// At returns the component for the given axis.
func (v Vec) At(axis Axis) float64 {
	if axis == Y {
		return v.Y
	}
	return v.X
}

// Rotate returns v rotated by angle radians.
func (v Vec) Rotate(angle float64) Vec {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Vec{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Rect is an axis-aligned screen rectangle.
type Rect struct {
	Min, Max Pos
}

// NothingRect is the inverted rectangle that acts as the identity for ExtendWith.
var NothingRect = Rect{
	Min: Pos{X: math.Inf(1), Y: math.Inf(1)},
	Max: Pos{X: math.Inf(-1), Y: math.Inf(-1)},
}

// RectFromMinSize creates a rectangle from its top-left corner and size.
func RectFromMinSize(min Pos, size Vec) Rect {
	return Rect{Min: min, Max: min.Add(size)}
}

// Left returns the smallest X coordinate.
func (r Rect) Left() float64 { return r.Min.X }

// Right returns the largest X coordinate.
func (r Rect) Right() float64 { return r.Max.X }

// Top returns the smallest Y coordinate.
func (r Rect) Top() float64 { return r.Min.Y }

// Bottom returns the largest Y coordinate.
func (r Rect) Bottom() float64 { return r.Max.Y }

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Size returns the extent as a Vec.
func (r Rect) Size() Vec { return Vec{X: r.Width(), Y: r.Height()} }

// Center returns the center point.
func (r Rect) Center() Pos {
	return Pos{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// CenterTop returns the middle of the top edge.
func (r Rect) CenterTop() Pos { return Pos{X: r.Center().X, Y: r.Min.Y} }

// CenterBottom returns the middle of the bottom edge.
func (r Rect) CenterBottom() Pos { return Pos{X: r.Center().X, Y: r.Max.Y} }

// LeftCenter returns the middle of the left edge.
func (r Rect) LeftCenter() Pos { return Pos{X: r.Min.X, Y: r.Center().Y} }

// RightCenter returns the middle of the right edge.
func (r Rect) RightCenter() Pos { return Pos{X: r.Max.X, Y: r.Center().Y} }

// IsNegative reports whether either extent is negative (or NaN).
func (r Rect) IsNegative() bool {
	return !(r.Max.X >= r.Min.X) || !(r.Max.Y >= r.Min.Y)
}

// IsZero reports whether r is the zero rectangle.
func (r Rect) IsZero() bool {
	return r == Rect{}
}

// Intersects reports whether r and o overlap or touch.
func (r Rect) Intersects(o Rect) bool {
	return r.Min.X <= o.Max.X && o.Min.X <= r.Max.X &&
		r.Min.Y <= o.Max.Y && o.Min.Y <= r.Max.Y
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Pos) bool {
	return r.Min.X <= p.X && p.X <= r.Max.X && r.Min.Y <= p.Y && p.Y <= r.Max.Y
}

// ExtendWith grows r to include p.
func (r *Rect) ExtendWith(p Pos) {
	r.Min.X = math.Min(r.Min.X, p.X)
	r.Min.Y = math.Min(r.Min.Y, p.Y)
	r.Max.X = math.Max(r.Max.X, p.X)
	r.Max.Y = math.Max(r.Max.Y, p.Y)
}

// Shrink returns r with each side moved inward by the given amounts.
func (r Rect) Shrink(left, top, right, bottom float64) Rect {
	return Rect{
		Min: Pos{X: r.Min.X + left, Y: r.Min.Y + top},
		Max: Pos{X: r.Max.X - right, Y: r.Max.Y - bottom},
	}
}
