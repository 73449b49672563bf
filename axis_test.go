package plot

import (
	"errors"
	"testing"
)

func TestPlacementNames(t *testing.T) {
	tests := []struct {
		p    Placement
		axis Axis
		want string
	}{
		{Bottom, X, "bottom"},
		{Top, X, "top"},
		{Left, Y, "left"},
		{Right, Y, "right"},
		{LeftBottom, Y, "left"},
		{RightTop, X, "top"},
	}
	for _, tt := range tests {
		if got := tt.p.Name(tt.axis); got != tt.want {
			t.Errorf("%v.Name(%v) = %q, want %q", tt.p, tt.axis, got, tt.want)
		}
	}
	if Bottom != Left || Top != Right {
		t.Error("axis-specific placements must alias the same two values")
	}
}

func TestParsePlacement(t *testing.T) {
	p, err := ParsePlacement(Y, "right")
	if err != nil || p != RightTop {
		t.Errorf("ParsePlacement(Y, right) = %v, %v", p, err)
	}

	_, err = ParsePlacement(X, "left")
	var pe *PlacementError
	if !errors.As(err, &pe) {
		t.Fatalf("ParsePlacement(X, left) error = %v, want *PlacementError", err)
	}
	if pe.Axis != X || pe.Name != "left" {
		t.Errorf("PlacementError = %+v", pe)
	}
}

func TestNewAxisHintsDefaults(t *testing.T) {
	x := NewAxisHints(X)
	y := NewAxisHints(Y)

	if x.LabelSpacing != (Range{Min: 60, Max: 80}) {
		t.Errorf("x LabelSpacing = %+v", x.LabelSpacing)
	}
	if y.LabelSpacing != (Range{Min: 20, Max: 30}) {
		t.Errorf("y LabelSpacing = %+v", y.LabelSpacing)
	}
	for _, h := range []AxisHints{x, y} {
		if h.Label != "" || h.MinThickness != 14 || h.Placement != LeftBottom || h.Formatter == nil {
			t.Errorf("unexpected defaults: %+v", h)
		}
	}
}

func TestAxisOptions(t *testing.T) {
	custom := func(GridMark, Range) string { return "c" }
	h := NewAxisHints(X,
		WithLabel("time"),
		WithFormatter(custom),
		WithMinThickness(30),
		WithPlacement(Top),
		WithLabelSpacing(Range{Min: 10, Max: 12}),
	)
	if h.Label != "time" || h.MinThickness != 30 || h.Placement != Top {
		t.Errorf("options not applied: %+v", h)
	}
	if h.LabelSpacing != (Range{Min: 10, Max: 12}) {
		t.Errorf("LabelSpacing = %+v", h.LabelSpacing)
	}
	if got := h.Formatter(GridMark{}, Range{}); got != "c" {
		t.Errorf("Formatter() = %q, want \"c\"", got)
	}

	h = NewAxisHints(X, WithFormatter(nil))
	if got := h.Formatter(GridMark{Value: 2, StepSize: 1}, Range{}); got != "2" {
		t.Errorf("nil formatter did not restore the default: %q", got)
	}
}

func TestAxisHelpers(t *testing.T) {
	if X.Index() != 0 || Y.Index() != 1 {
		t.Error("Index mismatch")
	}
	if X.Other() != Y || Y.Other() != X {
		t.Error("Other mismatch")
	}
	if v := (Vec{X: 1, Y: 2}); v.At(X) != 1 || v.At(Y) != 2 {
		t.Error("Vec.At mismatch")
	}
}
