package plot

// Axis selects the horizontal or vertical axis.
type Axis uint8

const (
	// X is the horizontal axis.
	X Axis = iota
	// Y is the vertical axis.
	Y
)

// Index returns 0 for X and 1 for Y.
func (a Axis) Index() int {
	if a == Y {
		return 1
	}
	return 0
}

// Other returns the perpendicular axis.
func (a Axis) Other() Axis {
	if a == Y {
		return X
	}
	return Y
}

// String returns "x" or "y".
func (a Axis) String() string {
	if a == Y {
		return "y"
	}
	return "x"
}

// Placement is the side of the plot frame an axis is drawn on.
//
// It has two values. Bottom and Left are names for LeftBottom, Top and Right
// are names for RightTop; use whichever reads best for the axis at hand.
type Placement uint8

const (
	// LeftBottom places an X axis below the frame and a Y axis to its left.
	LeftBottom Placement = iota
	// RightTop places an X axis above the frame and a Y axis to its right.
	RightTop
)

// Axis-specific names for the two placements.
const (
	Bottom = LeftBottom
	Top    = RightTop
	Left   = LeftBottom
	Right  = RightTop
)

// Name returns the placement's name for axis: "bottom"/"top" for X and
// "left"/"right" for Y.
func (p Placement) Name(axis Axis) string {
	switch {
	case axis == X && p == LeftBottom:
		return "bottom"
	case axis == X:
		return "top"
	case p == LeftBottom:
		return "left"
	default:
		return "right"
	}
}

// String implements fmt.Stringer.
func (p Placement) String() string {
	if p == RightTop {
		return "RightTop"
	}
	return "LeftBottom"
}

// ParsePlacement parses an axis-specific placement name.
func ParsePlacement(axis Axis, name string) (Placement, error) {
	switch {
	case name == LeftBottom.Name(axis):
		return LeftBottom, nil
	case name == RightTop.Name(axis):
		return RightTop, nil
	}
	return LeftBottom, &PlacementError{Axis: axis, Name: name}
}

// PlacementError is returned by ParsePlacement for an unknown name.
type PlacementError struct {
	Axis Axis
	Name string
}

func (e *PlacementError) Error() string {
	return "plot: unknown " + e.Axis.String() + " axis placement " + `"` + e.Name + `"`
}

// AxisHints configures the labels of one axis.
//
// A layout pass reads the hints through a pointer and never modifies them.
type AxisHints struct {
	// Label is the axis title. Empty means no title.
	Label string

	// Formatter turns a grid mark into tick label text.
	Formatter Formatter

	// MinThickness is the least screen space the host should reserve for the axis.
	MinThickness float64

	// Placement is the side of the frame the axis is drawn on.
	Placement Placement

	// LabelSpacing is the fade zone in screen units. Labels closer together
	// than LabelSpacing.Min are hidden; labels further apart than
	// LabelSpacing.Max are fully opaque.
	LabelSpacing Range
}

// AxisOption configures AxisHints.
type AxisOption func(*AxisHints)

// NewAxisHints returns the default hints for axis with opts applied.
//
// Defaults: no label, DefaultFormatter, a minimum thickness of 14,
// LeftBottom placement, and a label spacing of [60, 80] for X (labels can
// get wide) or [20, 30] for Y.
func NewAxisHints(axis Axis, opts ...AxisOption) AxisHints {
	h := AxisHints{
		Formatter:    DefaultFormatter,
		MinThickness: 14,
		Placement:    LeftBottom,
		LabelSpacing: Range{Min: 60, Max: 80},
	}
	if axis == Y {
		h.LabelSpacing = Range{Min: 20, Max: 30}
	}
	for _, opt := range opts {
		opt(&h)
	}
	return h
}

// WithLabel sets the axis title.
func WithLabel(label string) AxisOption {
	return func(h *AxisHints) {
		h.Label = label
	}
}

// WithFormatter sets the tick formatter. A nil formatter restores DefaultFormatter.
func WithFormatter(f Formatter) AxisOption {
	return func(h *AxisHints) {
		if f == nil {
			f = DefaultFormatter
		}
		h.Formatter = f
	}
}

// WithMinThickness sets the minimum axis thickness.
func WithMinThickness(t float64) AxisOption {
	return func(h *AxisHints) {
		h.MinThickness = t
	}
}

// WithPlacement sets the side of the frame the axis is drawn on.
func WithPlacement(p Placement) AxisOption {
	return func(h *AxisHints) {
		h.Placement = p
	}
}

// WithLabelSpacing sets the label fade zone.
func WithLabelSpacing(r Range) AxisOption {
	return func(h *AxisHints) {
		h.LabelSpacing = r
	}
}
