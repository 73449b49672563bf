// Package tui is an interactive terminal explorer for a chart. The view
// is laid out in terminal cells with the same chart layout the PNG
// renderer uses.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gogpu/plot"
	"github.com/gogpu/plot/internal/chart"
)

const (
	headerHeight = 1
	footerHeight = 1

	// panFraction is the fraction of the frame one arrow key pans.
	panFraction = 0.1
	zoomStep    = 1.25
)

// Model is the bubbletea model of the explorer.
type Model struct {
	width  int
	height int

	pts  []plot.Point
	opts chart.Options

	// home is the initial view; bounds is the current one.
	home   plot.Bounds
	bounds plot.Bounds
	chart  chart.Chart

	aspectLocked bool
	status       string

	keys keyMap
	help help.Model
}

// CellOptions rescales chart options measured in points to terminal cells.
func CellOptions(opts chart.Options) chart.Options {
	opts.XHints.LabelSpacing = plot.Range{Min: 8, Max: 14}
	opts.XHints.MinThickness = 1
	opts.YHints.LabelSpacing = plot.Range{Min: 2, Max: 4}
	opts.YHints.MinThickness = 1
	opts.GridMinSpacing = 1
	return opts
}

// New creates an explorer for pts. opts should already be in cell units,
// see CellOptions.
func New(pts []plot.Point, opts chart.Options) Model {
	home := chart.DataBounds(pts, opts.Margin)
	return Model{
		pts:          pts,
		opts:         opts,
		home:         home,
		bounds:       home,
		aspectLocked: opts.DataAspect > 0,
		status:       "ready",
		keys:         defaultKeyMap(),
		help:         help.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Bounds returns the data bounds currently in view.
func (m Model) Bounds() plot.Bounds { return m.bounds }

// area is the part of the terminal the chart is laid out in.
func (m Model) area() plot.Rect {
	return plot.Rect{
		Min: plot.Pos{X: 0, Y: headerHeight},
		Max: plot.Pos{X: float64(m.width), Y: float64(max(m.height-footerHeight, headerHeight))},
	}
}

// relayout lays the chart out for the current size and bounds and keeps
// the bounds the layout settled on.
func (m *Model) relayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	opts := m.opts
	opts.DataAspect = 0
	if m.aspectLocked {
		opts.DataAspect = m.dataAspect()
	}
	m.chart = chart.Layout(m.area(), m.bounds, opts, plot.CellMeasurer{})
	m.bounds = m.chart.Transform.Bounds()
}

// dataAspect is the configured aspect corrected for terminal cells being
// about twice as tall as they are wide.
func (m Model) dataAspect() float64 {
	a := m.opts.DataAspect
	if a <= 0 {
		a = 1
	}
	return a / 2
}
