package plot

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// relEqual reports whether a and b agree to a relative tolerance.
func relEqual(a, b, tol float64) bool {
	scale := math.Max(math.Max(math.Abs(a), math.Abs(b)), 1)
	return math.Abs(a-b) <= tol*scale
}

// fixedMeasurer gives every non-empty string the same size.
type fixedMeasurer Vec

func (m fixedMeasurer) MeasureText(s string) Vec {
	if s == "" {
		return Vec{}
	}
	return Vec(m)
}

// runeMeasurer gives each rune a fixed width.
type runeMeasurer struct {
	perRune, height float64
}

func (m runeMeasurer) MeasureText(s string) Vec {
	n := 0
	for range s {
		n++
	}
	if n == 0 {
		return Vec{}
	}
	return Vec{X: float64(n) * m.perRune, Y: m.height}
}

func square(size float64) Rect {
	return Rect{Max: Pos{X: size, Y: size}}
}

// boundsComparer compares Bounds, which has unexported fields.
var boundsComparer = cmp.Comparer(func(a, b Bounds) bool { return a == b })
