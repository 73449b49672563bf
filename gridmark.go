package plot

import (
	"cmp"
	"math"
	"slices"
)

// GridMark is one candidate tick position.
type GridMark struct {
	// Value is the position of the mark in data space.
	Value float64

	// StepSize is the distance to the neighboring mark at the same level.
	// It decides the label precision and the label fade.
	StepSize float64
}

// GridInput is what a GridSpacer sees of an axis.
type GridInput struct {
	// Bounds is the visible data range.
	Bounds Range

	// BaseStepSize is the smallest data-space distance between two marks
	// that is still far enough apart on screen to be drawn.
	BaseStepSize float64
}

// GridSpacer generates grid marks for the visible range of one axis.
type GridSpacer func(GridInput) []GridMark

// BaseStepSize returns the data-space distance covered by minSpacing
// screen units on axis.
func BaseStepSize(t Transform, axis Axis, minSpacing float64) float64 {
	return math.Abs(t.DValueDPos()[axis.Index()]) * minSpacing
}

// NewGridInput builds the GridInput for axis of t.
func NewGridInput(t Transform, axis Axis, minSpacing float64) GridInput {
	return GridInput{
		Bounds:       t.Range(axis),
		BaseStepSize: BaseStepSize(t, axis, minSpacing),
	}
}

// LogGridSpacer places marks at powers of base. The finest level is the
// smallest power of base not below the base step size; two coarser levels
// follow, each base times the previous one.
//
// base must be at least 2.
func LogGridSpacer(base int64) GridSpacer {
	b := float64(base)
	return func(in GridInput) []GridMark {
		if math.Abs(in.BaseStepSize) < epsilon {
			return nil
		}
		unit := nextPower(in.BaseStepSize, b)
		return generateMarks([3]float64{unit, unit * b, unit * b * b}, in.Bounds)
	}
}

// UniformGridSpacer places marks at the three step sizes returned by steps,
// finest first.
func UniformGridSpacer(steps func(GridInput) [3]float64) GridSpacer {
	return func(in GridInput) []GridMark {
		return generateMarks(steps(in), in.Bounds)
	}
}

// epsilon is the float64 machine epsilon.
const epsilon = 2.220446049250313e-16

func nextPower(v, base float64) float64 {
	return math.Pow(base, math.Ceil(math.Log(math.Abs(v))/math.Log(base)))
}

// generateMarks fills the range with marks of every step size. Marks at the
// same value are reduced to the one with the largest step.
func generateMarks(steps [3]float64, bounds Range) []GridMark {
	var marks []GridMark
	for _, step := range steps {
		marks = fillMarksBetween(marks, step, bounds)
	}
	slices.SortFunc(marks, func(a, b GridMark) int {
		if c := cmp.Compare(a.Value, b.Value); c != 0 {
			return c
		}
		return cmp.Compare(b.StepSize, a.StepSize)
	})
	return slices.CompactFunc(marks, func(a, b GridMark) bool {
		return a.Value == b.Value
	})
}

// fillMarksBetween appends the multiples of step in [min, max).
func fillMarksBetween(out []GridMark, step float64, bounds Range) []GridMark {
	if !(step > 0) || !isFinite(step) || bounds.Max < bounds.Min {
		return out
	}
	first := int64(math.Ceil(bounds.Min / step))
	last := int64(math.Ceil(bounds.Max / step))
	for i := first; i < last; i++ {
		out = append(out, GridMark{Value: float64(i) * step, StepSize: step})
	}
	return out
}
