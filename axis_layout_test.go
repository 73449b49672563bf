package plot

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
)

func testTransform() *Transform {
	t := NewTransform(square(100), NewBounds([2]float64{0, 0}, [2]float64{10, 10}), false, false)
	return &t
}

func TestLabelFade(t *testing.T) {
	hints := NewAxisHints(Y, WithLabelSpacing(Range{Min: 20, Max: 30}))
	tr := testTransform()
	w := AxisWidget{
		Range:     tr.Range(Y),
		Hints:     &hints,
		Rect:      Rect{Max: Pos{X: 40, Y: 100}},
		Transform: tr,
		Marks: []GridMark{
			{Value: 2, StepSize: 1.5}, // 15 points apart
			{Value: 4, StepSize: 2.2}, // 22 points apart
			{Value: 6, StepSize: 3.5}, // 35 points apart
		},
	}

	got := w.Layout(Y, fixedMeasurer{X: 10, Y: 8})
	if len(got.Shapes) != 2 {
		t.Fatalf("got %d shapes, want 2: %+v", len(got.Shapes), got.Shapes)
	}

	faded, full := got.Shapes[0], got.Shapes[1]
	if faded.Text != "4" || full.Text != "6" {
		t.Fatalf("texts = %q, %q; want \"4\", \"6\"", faded.Text, full.Text)
	}
	if !approxEqual(faded.Strength, 0.2, 1e-9) {
		t.Errorf("strength at 22 points = %v, want 0.2", faded.Strength)
	}
	if full.Strength != 1 {
		t.Errorf("strength at 35 points = %v, want 1", full.Strength)
	}
	if want := DefaultTextColor.A * math.Sqrt(faded.Strength); !approxEqual(faded.Color.A, want, 1e-12) {
		t.Errorf("faded alpha = %v, want %v", faded.Color.A, want)
	}
	if full.Color != DefaultTextColor {
		t.Errorf("full color = %+v, want %+v", full.Color, DefaultTextColor)
	}

	// Left placement: right-aligned in the strip, centered on the tick.
	diff(t, Pos{X: 30, Y: 56}, faded.Pos)
	diff(t, Pos{X: 30, Y: 36}, full.Pos)
	if got.Thickness != 10 {
		t.Errorf("Thickness = %v, want 10", got.Thickness)
	}
}

func TestTickPlacement(t *testing.T) {
	tr := testTransform()
	m := runeMeasurer{perRune: 6, height: 10}
	marks := []GridMark{{Value: 5, StepSize: 8}}

	tests := []struct {
		name      string
		axis      Axis
		placement Placement
		rect      Rect
		want      Pos
		thickness float64
	}{
		{"x bottom", X, Bottom, Rect{Min: Pos{X: 0, Y: 100}, Max: Pos{X: 100, Y: 120}}, Pos{X: 47, Y: 100}, 10},
		{"x top", X, Top, Rect{Min: Pos{X: 0, Y: -20}, Max: Pos{X: 100, Y: 0}}, Pos{X: 47, Y: -10}, 10},
		{"y left", Y, Left, Rect{Min: Pos{X: -40, Y: 0}, Max: Pos{X: 0, Y: 100}}, Pos{X: -6, Y: 45}, 6},
		{"y right", Y, Right, Rect{Min: Pos{X: 100, Y: 0}, Max: Pos{X: 140, Y: 100}}, Pos{X: 100, Y: 45}, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hints := NewAxisHints(tt.axis, WithPlacement(tt.placement), WithLabelSpacing(Range{Min: 1, Max: 2}))
			w := AxisWidget{Hints: &hints, Rect: tt.rect, Transform: tr, Marks: marks}
			got := w.Layout(tt.axis, m)
			if len(got.Shapes) != 1 {
				t.Fatalf("got %d shapes, want 1", len(got.Shapes))
			}
			diff(t, tt.want, got.Shapes[0].Pos)
			if got.Thickness != tt.thickness {
				t.Errorf("Thickness = %v, want %v", got.Thickness, tt.thickness)
			}
			if got.Shapes[0].Angle != 0 {
				t.Errorf("tick label angle = %v, want 0", got.Shapes[0].Angle)
			}
		})
	}
}

func TestMeasuredSizeFilterIsIndependent(t *testing.T) {
	tr := testTransform()
	hints := NewAxisHints(X, WithFormatter(func(GridMark, Range) string { return "wide label" }))
	w := AxisWidget{
		Hints:     &hints,
		Rect:      Rect{Min: Pos{Y: 100}, Max: Pos{X: 100, Y: 120}},
		Transform: tr,
	}
	m := runeMeasurer{perRune: 8, height: 10} // 80 points wide

	// 70 points apart passes the spacing cutoff but the text is wider.
	w.Marks = []GridMark{{Value: 5, StepSize: 7}}
	if got := w.Layout(X, m); len(got.Shapes) != 0 || got.Thickness != 0 {
		t.Errorf("label wider than its spacing was kept: %+v", got)
	}

	// 90 points apart fits.
	w.Marks = []GridMark{{Value: 5, StepSize: 9}}
	if got := w.Layout(X, m); len(got.Shapes) != 1 {
		t.Errorf("got %d shapes, want 1", len(got.Shapes))
	}

	// The Y axis compares against the text height, so the same wide label fits.
	yh := NewAxisHints(Y, WithFormatter(hints.Formatter))
	wy := AxisWidget{Hints: &yh, Rect: Rect{Max: Pos{X: 100, Y: 100}}, Transform: tr, Marks: []GridMark{{Value: 5, StepSize: 7}}}
	if got := wy.Layout(Y, m); len(got.Shapes) != 1 {
		t.Errorf("y axis: got %d shapes, want 1", len(got.Shapes))
	}
}

func TestEmptyLabelsAreSkipped(t *testing.T) {
	tr := testTransform()
	hints := NewAxisHints(Y, WithFormatter(func(m GridMark, _ Range) string {
		if m.Value == 0 {
			return ""
		}
		return "x"
	}))
	w := AxisWidget{
		Hints:     &hints,
		Rect:      Rect{Max: Pos{X: 40, Y: 100}},
		Transform: tr,
		Marks:     []GridMark{{Value: 0, StepSize: 5}, {Value: 5, StepSize: 5}},
	}
	got := w.Layout(Y, fixedMeasurer{X: 7, Y: 9})
	if len(got.Shapes) != 1 || got.Shapes[0].Text != "x" {
		t.Errorf("shapes = %+v, want one \"x\"", got.Shapes)
	}
}

func TestMarksKeepSuppliedOrder(t *testing.T) {
	tr := testTransform()
	hints := NewAxisHints(Y)
	w := AxisWidget{
		Hints:     &hints,
		Rect:      Rect{Max: Pos{X: 40, Y: 100}},
		Transform: tr,
		Marks:     []GridMark{{Value: 9, StepSize: 3}, {Value: 1, StepSize: 3}, {Value: 5, StepSize: 5}},
	}
	got := w.Layout(Y, fixedMeasurer{X: 7, Y: 9})
	var texts []string
	for _, s := range got.Shapes {
		texts = append(texts, s.Text)
	}
	diff(t, []string{"9", "1", "5"}, texts)
}

func TestFormatterSeesVisibleRange(t *testing.T) {
	tr := testTransform()
	var seen []Range
	hints := NewAxisHints(X, WithFormatter(func(_ GridMark, r Range) string {
		seen = append(seen, r)
		return ""
	}))
	w := AxisWidget{
		Range:     Range{Min: -3, Max: 4},
		Hints:     &hints,
		Rect:      Rect{Min: Pos{Y: 100}, Max: Pos{X: 100, Y: 120}},
		Transform: tr,
		Marks:     []GridMark{{Value: 1, StepSize: 1}, {Value: 2, StepSize: 1}},
	}
	w.Layout(X, fixedMeasurer{X: 1, Y: 1})
	diff(t, []Range{{Min: -3, Max: 4}, {Min: -3, Max: 4}}, seen)
}

func TestAxisTitle(t *testing.T) {
	tr := testTransform()
	m := runeMeasurer{perRune: 6, height: 10}
	marks := []GridMark{{Value: 5, StepSize: 8}}

	tests := []struct {
		name      string
		axis      Axis
		placement Placement
		rect      Rect
		want      Pos
		angle     float64
		thickness float64
	}{
		{"x bottom", X, Bottom, Rect{Min: Pos{X: 0, Y: 100}, Max: Pos{X: 100, Y: 120}}, Pos{X: 38, Y: 107.5}, 0, 22.5},
		{"x top", X, Top, Rect{Min: Pos{X: 0, Y: 100}, Max: Pos{X: 100, Y: 120}}, Pos{X: 38, Y: 102.5}, 0, 22.5},
		{"y left", Y, Left, Rect{Max: Pos{X: 40, Y: 100}}, Pos{X: -2.5, Y: 62}, -math.Pi / 2, 18.5},
		{"y right", Y, Right, Rect{Max: Pos{X: 40, Y: 100}}, Pos{X: 32.5, Y: 62}, -math.Pi / 2, 18.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hints := NewAxisHints(tt.axis,
				WithLabel("time"),
				WithPlacement(tt.placement),
				WithLabelSpacing(Range{Min: 1, Max: 2}))
			w := AxisWidget{Hints: &hints, Rect: tt.rect, Transform: tr, Marks: marks}
			got := w.Layout(tt.axis, m)
			if len(got.Shapes) != 2 {
				t.Fatalf("got %d shapes, want tick and title", len(got.Shapes))
			}
			title := got.Shapes[1]
			if title.Text != "time" {
				t.Errorf("title text = %q", title.Text)
			}
			diff(t, tt.want, title.Pos)
			if title.Angle != tt.angle {
				t.Errorf("title angle = %v, want %v", title.Angle, tt.angle)
			}
			if got.Thickness != tt.thickness {
				t.Errorf("Thickness = %v, want %v", got.Thickness, tt.thickness)
			}
		})
	}
}

func TestHiddenAxisLaysOutNothing(t *testing.T) {
	tr := testTransform()
	hints := NewAxisHints(X, WithLabel("x"))
	marks := []GridMark{{Value: 5, StepSize: 8}}
	strip := Rect{Min: Pos{Y: 100}, Max: Pos{X: 100, Y: 120}}

	tests := []struct {
		name string
		w    AxisWidget
	}{
		{"no transform", AxisWidget{Hints: &hints, Rect: strip, Marks: marks}},
		{"no hints", AxisWidget{Rect: strip, Transform: tr, Marks: marks}},
		{"negative rect", AxisWidget{Hints: &hints, Rect: Rect{Min: Pos{X: 10}, Max: Pos{X: 0, Y: 10}}, Transform: tr, Marks: marks}},
		{"clipped away", AxisWidget{Hints: &hints, Rect: strip, Clip: Rect{Min: Pos{X: 500, Y: 500}, Max: Pos{X: 600, Y: 600}}, Transform: tr, Marks: marks}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.w.Layout(X, fixedMeasurer{X: 5, Y: 5})
			if len(got.Shapes) != 0 || got.Thickness != 0 {
				t.Errorf("Layout() = %+v, want empty", got)
			}
		})
	}

	visible := AxisWidget{Hints: &hints, Rect: strip, Clip: square(200), Transform: tr, Marks: marks}
	if got := visible.Layout(X, fixedMeasurer{X: 5, Y: 5}); len(got.Shapes) == 0 {
		t.Error("axis inside the clip rect laid out nothing")
	}
}

func TestCustomTextColor(t *testing.T) {
	tr := testTransform()
	hints := NewAxisHints(Y, WithLabelSpacing(Range{Min: 0, Max: 100}))
	w := AxisWidget{
		Hints:     &hints,
		Rect:      Rect{Max: Pos{X: 40, Y: 100}},
		Transform: tr,
		Marks:     []GridMark{{Value: 5, StepSize: 2.5}}, // 25 points: strength 0.25
		TextColor: gg.RGBA{R: 1, A: 0.8},
	}
	got := w.Layout(Y, fixedMeasurer{X: 5, Y: 5})
	if len(got.Shapes) != 1 {
		t.Fatalf("got %d shapes, want 1", len(got.Shapes))
	}
	want := gg.RGBA{R: 1, A: 0.8 * 0.5}
	if c := got.Shapes[0].Color; c.R != want.R || !approxEqual(c.A, want.A, 1e-12) {
		t.Errorf("Color = %+v, want %+v", c, want)
	}
}
