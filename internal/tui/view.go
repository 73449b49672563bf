package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gogpu/plot"
)

type cellKind uint8

const (
	cellEmpty cellKind = iota
	cellSeries
	cellLabel
	cellFaintLabel
	// cellCovered is the second column of a wide rune.
	cellCovered
)

type cell struct {
	r    rune
	kind cellKind
}

// canvas is the chart area as a grid of cells, row 0 being the first
// row below the header.
type canvas struct {
	w, h  int
	cells [][]cell
}

func newCanvas(w, h int) *canvas {
	w, h = max(w, 0), max(h, 0)
	cells := make([][]cell, h)
	for i := range cells {
		cells[i] = make([]cell, w)
	}
	return &canvas{w: w, h: h, cells: cells}
}

func (c *canvas) set(x, y int, r rune, kind cellKind) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y][x] = cell{r: r, kind: kind}
}

// text writes s starting at (x, y), advancing by (dx, dy) per rune.
func (c *canvas) text(x, y, dx, dy int, s string, kind cellKind) {
	for _, r := range s {
		c.set(x, y, r, kind)
		w := lipgloss.Width(string(r))
		if dx == 1 && w == 2 {
			c.set(x+1, y, 0, cellCovered)
		}
		x += dx * max(w, 1)
		y += dy
	}
}

func (c *canvas) lines() []string {
	out := make([]string, c.h)
	var b, run strings.Builder
	for y, row := range c.cells {
		b.Reset()
		kind := cellEmpty
		flush := func() {
			if run.Len() > 0 {
				b.WriteString(styleFor(kind).Render(run.String()))
				run.Reset()
			}
		}
		for _, cl := range row {
			if cl.kind == cellCovered {
				continue
			}
			if cl.kind != kind {
				flush()
				kind = cl.kind
			}
			r := cl.r
			if r == 0 {
				r = ' '
			}
			run.WriteRune(r)
		}
		flush()
		out[y] = b.String()
	}
	return out
}

func styleFor(kind cellKind) lipgloss.Style {
	switch kind {
	case cellSeries:
		return seriesStyle
	case cellLabel:
		return labelStyle
	case cellFaintLabel:
		return faintStyle
	}
	return lipgloss.NewStyle()
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	header := titleStyle.Render(" ggplot ") + dimStyle.Render(" "+m.bounds.String())
	header = lipgloss.NewStyle().MaxWidth(m.width).Render(header)

	body := strings.Join(m.renderChart(), "\n")

	status := dimStyle.Render(" " + m.status + "  ")
	footer := lipgloss.NewStyle().MaxWidth(m.width).
		Render(lipgloss.JoinHorizontal(lipgloss.Bottom, status, m.help.View(m.keys)))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(m.width).MaxHeight(m.height).Render(ui)
}

// renderChart draws the series as braille and overlays the axis labels.
func (m Model) renderChart() []string {
	area := m.area()
	top := int(area.Top())
	cv := newCanvas(m.width, int(area.Height()))

	t := m.chart.Transform
	frame := t.Frame()
	fx0, fy0 := int(math.Floor(frame.Left())), int(math.Floor(frame.Top()))
	fx1, fy1 := int(math.Ceil(frame.Right())), int(math.Ceil(frame.Bottom()))

	br := newBrailleBuf(fx1-fx0, fy1-fy0)
	for i := 1; i < len(m.pts); i++ {
		a := t.PositionFromPoint(m.pts[i-1])
		b := t.PositionFromPoint(m.pts[i])
		br.line(a.X-float64(fx0), a.Y-float64(fy0), b.X-float64(fx0), b.Y-float64(fy0))
	}
	for y := 0; y < br.h; y++ {
		for x := 0; x < br.w; x++ {
			if r := br.cell(x, y); r != 0 {
				cv.set(fx0+x, fy0+y-top, r, cellSeries)
			}
		}
	}

	for _, shapes := range [][]plot.TextShape{m.chart.X.Shapes, m.chart.Y.Shapes} {
		for _, s := range shapes {
			kind := cellLabel
			if s.Strength < 0.5 {
				kind = cellFaintLabel
			}
			x := int(math.Round(s.Pos.X))
			y := int(math.Round(s.Pos.Y)) - top
			if s.Angle != 0 {
				// Rotated by -π/2: the text runs upward from its anchor.
				cv.text(x, y-1, 0, -1, s.Text, kind)
				continue
			}
			cv.text(x, y, 1, 0, s.Text, kind)
		}
	}
	return cv.lines()
}
