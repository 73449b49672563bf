package tui

import "math"

// brailleBuf is a canvas of braille cells, each holding 2×4 dots.
type brailleBuf struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell dot mask
}

func newBrailleBuf(w, h int) *brailleBuf {
	w, h = max(w, 0), max(h, 0)
	m := make([][]uint8, h)
	for i := range m {
		m[i] = make([]uint8, w)
	}
	return &brailleBuf{w: w, h: h, m: m}
}

// dotBits maps a dot's column and row inside a cell to its bit in the
// U+2800 block.
var dotBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// setDot sets the dot at dot coordinates (dx, dy).
func (b *brailleBuf) setDot(dx, dy int) {
	if dx < 0 || dy < 0 {
		return
	}
	cx, cy := dx/2, dy/4
	if cx >= b.w || cy >= b.h {
		return
	}
	b.m[cy][cx] |= dotBits[dx%2][dy%4]
}

// line draws a line between two points given in cell units. The line is
// clipped to the buffer first so far away endpoints stay cheap.
func (b *brailleBuf) line(x0, y0, x1, y1 float64) {
	// Dot space.
	x0, x1 = x0*2, x1*2
	y0, y1 = y0*4, y1*4

	maxX, maxY := float64(b.w*2)-0.5, float64(b.h*4)-0.5
	var ok bool
	x0, y0, x1, y1, ok = clipLine(x0, y0, x1, y1, 0, 0, maxX, maxY)
	if !ok {
		return
	}
	b.bresenham(int(x0), int(y0), int(x1), int(y1))
}

func (b *brailleBuf) bresenham(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setDot(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// cell returns the braille rune of cell (x, y), or 0 for an empty cell.
func (b *brailleBuf) cell(x, y int) rune {
	mask := b.m[y][x]
	if mask == 0 {
		return 0
	}
	return rune(0x2800 + int(mask))
}

// clipLine clips a segment to [minX, maxX] × [minY, maxY] with the
// Liang-Barsky algorithm. ok is false when nothing remains.
func clipLine(x0, y0, x1, y1, minX, minY, maxX, maxY float64) (float64, float64, float64, float64, bool) {
	for _, v := range [4]float64{x0, y0, x1, y1} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, 0, 0, 0, false
		}
	}
	dx, dy := x1-x0, y1-y0
	t0, t1 := 0.0, 1.0
	for _, e := range [4][2]float64{
		{-dx, x0 - minX},
		{dx, maxX - x0},
		{-dy, y0 - minY},
		{dy, maxY - y0},
	} {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = math.Min(t1, r)
		}
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
