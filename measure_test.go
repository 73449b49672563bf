package plot

import (
	"errors"
	"testing"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

func newTestFace(t *testing.T, size float64) text.Face {
	t.Helper()
	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource() error = %v", err)
	}
	t.Cleanup(func() { _ = source.Close() })
	return source.Face(size)
}

func TestFaceMeasurer(t *testing.T) {
	m, err := NewFaceMeasurer(newTestFace(t, 14))
	if err != nil {
		t.Fatal(err)
	}

	if got := m.MeasureText(""); got != (Vec{}) {
		t.Errorf("MeasureText(\"\") = %+v, want zero", got)
	}

	one := m.MeasureText("1")
	many := m.MeasureText("1000")
	if one.X <= 0 || one.Y <= 0 {
		t.Fatalf("MeasureText(\"1\") = %+v, want positive size", one)
	}
	if !approxEqual(many.X, 4*one.X, 1e-9) {
		t.Errorf("width of \"1000\" = %v, want 4 * %v (Go Regular digits are tabular)", many.X, one.X)
	}
	if many.Y != one.Y {
		t.Errorf("height depends on text: %v vs %v", many.Y, one.Y)
	}

	bigger, err := NewFaceMeasurer(newTestFace(t, 28))
	if err != nil {
		t.Fatal(err)
	}
	if got := bigger.MeasureText("1"); !(got.X > one.X && got.Y > one.Y) {
		t.Errorf("28pt size %+v not larger than 14pt size %+v", got, one)
	}
}

func TestFaceMeasurerShaping(t *testing.T) {
	face := newTestFace(t, 14)
	plain, err := NewFaceMeasurer(face)
	if err != nil {
		t.Fatal(err)
	}
	shaped, err := NewFaceMeasurer(face, WithShaping(ShapingAlways))
	if err != nil {
		t.Fatal(err)
	}

	p := plain.MeasureText("12.5")
	s := shaped.MeasureText("12.5")
	if s.X <= 0 {
		t.Fatalf("shaped width = %v, want positive", s.X)
	}
	// Digits have no kerning in Go Regular, so both paths agree closely.
	if !approxEqual(p.X, s.X, 1) {
		t.Errorf("plain width %v and shaped width %v disagree", p.X, s.X)
	}
	if p.Y != s.Y {
		t.Errorf("shaping changed the height: %v vs %v", p.Y, s.Y)
	}
}

func TestNeedsShaping(t *testing.T) {
	tests := []struct {
		s    string
		want bool
	}{
		{"1,234.5", false},
		{"time (s)", false},
		{"−3e-4", false},
		{"زمن", true},
		{"समय", true},
	}
	for _, tt := range tests {
		if got := needsShaping(tt.s); got != tt.want {
			t.Errorf("needsShaping(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
}

func TestNewFaceMeasurerNilFace(t *testing.T) {
	if _, err := NewFaceMeasurer(nil); !errors.Is(err, ErrNilFace) {
		t.Errorf("NewFaceMeasurer(nil) error = %v, want ErrNilFace", err)
	}
}

func TestDefaultFaceMeasurer(t *testing.T) {
	m, err := NewDefaultFaceMeasurer(DefaultFontSize)
	if err != nil {
		t.Fatal(err)
	}
	if m.Face() == nil || m.Face().Size() != DefaultFontSize {
		t.Errorf("default face = %v", m.Face())
	}
	if got := m.MeasureText("x"); got.X <= 0 {
		t.Errorf("MeasureText(\"x\") = %+v", got)
	}
}

func TestCellMeasurer(t *testing.T) {
	tests := []struct {
		s    string
		want Vec
	}{
		{"", Vec{}},
		{"1.5", Vec{X: 3, Y: 1}},
		{"时间", Vec{X: 4, Y: 1}},
	}
	for _, tt := range tests {
		if got := (CellMeasurer{}).MeasureText(tt.s); got != tt.want {
			t.Errorf("MeasureText(%q) = %+v, want %+v", tt.s, got, tt.want)
		}
	}
}
