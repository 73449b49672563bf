package plot

import (
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-text/typesetting/language"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFontSize is the size in points of the default text face.
const DefaultFontSize = 14

// ErrNilFace is returned when a measurer is created without a face.
var ErrNilFace = errors.New("plot: nil text face")

// TextMeasurer reports the size of a single unwrapped line of text.
// X is the width and Y the height.
type TextMeasurer interface {
	MeasureText(s string) Vec
}

// ShapingMode selects how FaceMeasurer computes text width.
type ShapingMode uint8

const (
	// ShapingNone sums glyph advances from the font tables.
	ShapingNone ShapingMode = iota
	// ShapingAuto shapes text with HarfBuzz only when it contains a script
	// other than Latin or Common.
	ShapingAuto
	// ShapingAlways shapes all text with HarfBuzz.
	ShapingAlways
)

// MeasurerOption configures a FaceMeasurer.
type MeasurerOption func(*measurerConfig)

type measurerConfig struct {
	shaping ShapingMode
}

// WithShaping sets the shaping mode. The default is ShapingNone.
func WithShaping(mode ShapingMode) MeasurerOption {
	return func(c *measurerConfig) {
		c.shaping = mode
	}
}

// FaceMeasurer measures text with a gg text face.
type FaceMeasurer struct {
	face   text.Face
	config measurerConfig
	shaper *text.GoTextShaper
}

var _ TextMeasurer = (*FaceMeasurer)(nil)

// NewFaceMeasurer creates a FaceMeasurer for face.
func NewFaceMeasurer(face text.Face, opts ...MeasurerOption) (*FaceMeasurer, error) {
	if face == nil {
		return nil, ErrNilFace
	}
	m := &FaceMeasurer{face: face}
	for _, opt := range opts {
		opt(&m.config)
	}
	if m.config.shaping != ShapingNone {
		m.shaper = text.NewGoTextShaper()
	}
	return m, nil
}

var (
	defaultSourceOnce sync.Once
	defaultSource     *text.FontSource
	errDefaultSource  error
)

// DefaultFontSource returns the shared Go Regular font source.
func DefaultFontSource() (*text.FontSource, error) {
	defaultSourceOnce.Do(func() {
		defaultSource, errDefaultSource = text.NewFontSource(goregular.TTF)
		if errDefaultSource != nil {
			errDefaultSource = fmt.Errorf("plot: load default font: %w", errDefaultSource)
		}
	})
	return defaultSource, errDefaultSource
}

// NewDefaultFaceMeasurer creates a FaceMeasurer using Go Regular at size points.
func NewDefaultFaceMeasurer(size float64, opts ...MeasurerOption) (*FaceMeasurer, error) {
	src, err := DefaultFontSource()
	if err != nil {
		return nil, err
	}
	return NewFaceMeasurer(src.Face(size), opts...)
}

// Face returns the face used for measuring.
func (m *FaceMeasurer) Face() text.Face {
	return m.face
}

// MeasureText implements TextMeasurer.
func (m *FaceMeasurer) MeasureText(s string) Vec {
	if s == "" {
		return Vec{}
	}
	width, height := text.Measure(s, m.face)
	if m.shaped(s) {
		width = 0
		for _, g := range m.shaper.Shape(s, m.face) {
			width += g.XAdvance
		}
	}
	return Vec{X: width, Y: height}
}

func (m *FaceMeasurer) shaped(s string) bool {
	switch m.config.shaping {
	case ShapingAlways:
		return true
	case ShapingAuto:
		return needsShaping(s)
	}
	return false
}

// needsShaping reports whether s contains a rune from a script that
// advance-summing measures poorly.
func needsShaping(s string) bool {
	for _, r := range s {
		switch language.LookupScript(r) {
		case language.Latin, language.Common, language.Inherited, language.Unknown:
		default:
			return true
		}
	}
	return false
}

// CellMeasurer measures text in terminal cells: each line is one cell
// high and as wide as its display width.
type CellMeasurer struct{}

var _ TextMeasurer = CellMeasurer{}

// MeasureText implements TextMeasurer.
func (CellMeasurer) MeasureText(s string) Vec {
	if s == "" {
		return Vec{}
	}
	return Vec{X: float64(lipgloss.Width(s)), Y: 1}
}
