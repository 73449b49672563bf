package plot

import "math"

// Range is an inclusive interval [Min, Max].
type Range struct {
	Min, Max float64
}

// NewRange creates a Range.
func NewRange(lo, hi float64) Range {
	return Range{Min: lo, Max: hi}
}

// Span returns Max - Min.
func (r Range) Span() float64 {
	return r.Max - r.Min
}

// Contains reports whether v lies inside r.
func (r Range) Contains(v float64) bool {
	return r.Min <= v && v <= r.Max
}

// Remap linearly maps x from the from range to the to range.
// Values outside from extrapolate.
func Remap(x float64, from, to Range) float64 {
	t := (x - from.Min) / (from.Max - from.Min)
	return to.Min + t*(to.Max-to.Min)
}

// RemapClamp is Remap with the result clamped to the to range.
// An empty from range maps everything to the midpoint of to.
func RemapClamp(x float64, from, to Range) float64 {
	if from.Max < from.Min {
		from = Range{Min: from.Max, Max: from.Min}
		to = Range{Min: to.Max, Max: to.Min}
	}
	switch {
	case x <= from.Min:
		return to.Min
	case x >= from.Max:
		return to.Max
	}
	t := (x - from.Min) / (from.Max - from.Min)
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return (to.Min + to.Max) / 2
	}
	return to.Min + t*(to.Max-to.Min)
}
