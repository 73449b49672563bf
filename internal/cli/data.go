package cli

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/plot"
)

var (
	// ErrNoColumns is returned for CSV input without x and y columns.
	ErrNoColumns = errors.New("cli: csv needs x and y columns")

	// ErrNoData is returned for CSV input without a single usable row.
	ErrNoData = errors.New("cli: csv has no numeric rows")
)

// sampleCount is the number of points of the built-in sample.
const sampleCount = 200

// loadPoints reads points from the CSV file at path, or returns the
// built-in sine sample when path is empty.
func loadPoints(path string) ([]plot.Point, error) {
	if path == "" {
		return samplePoints(sampleCount), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cli: open data: %w", err)
	}
	defer f.Close()
	return readPoints(f)
}

// readPoints reads a CSV with a header row naming x and y columns
// (case-insensitive). Rows whose x or y does not parse to a finite
// number are skipped.
func readPoints(r io.Reader) ([]plot.Point, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoColumns
	}
	if err != nil {
		return nil, fmt.Errorf("cli: read csv header: %w", err)
	}

	ix, iy := -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "x":
			if ix == -1 {
				ix = i
			}
		case "y":
			if iy == -1 {
				iy = i
			}
		}
	}
	if ix == -1 || iy == -1 {
		return nil, ErrNoColumns
	}

	var pts []plot.Point
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cli: read csv: %w", err)
		}
		if ix >= len(row) || iy >= len(row) {
			continue
		}
		x, errX := strconv.ParseFloat(strings.TrimSpace(row[ix]), 64)
		y, errY := strconv.ParseFloat(strings.TrimSpace(row[iy]), 64)
		if errX != nil || errY != nil || !finite(x) || !finite(y) {
			continue
		}
		pts = append(pts, plot.Pt(x, y))
	}
	if len(pts) == 0 {
		return nil, ErrNoData
	}
	return pts, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// samplePoints samples sin(x) at n points over [0, 4π].
func samplePoints(n int) []plot.Point {
	if n < 2 {
		n = 2
	}
	pts := make([]plot.Point, n)
	for i := range pts {
		x := 4 * math.Pi * float64(i) / float64(n-1)
		pts[i] = plot.Pt(x, math.Sin(x))
	}
	return pts
}
