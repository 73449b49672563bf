package plot

import (
	"log/slog"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// maxDecimals caps the precision of formatted tick values.
const maxDecimals = 16

// Formatter turns a grid mark into label text. visible is the range
// currently shown on the axis. An empty result suppresses the label.
//
// Formatters must be pure: the same formatter may be shared by several
// layouts.
type Formatter func(mark GridMark, visible Range) string

// DefaultFormatter prints the mark value with as many decimals as the step
// size needs: a step of 0.01 gives two decimals, a step of 10 gives none.
func DefaultFormatter(mark GridMark, _ Range) string {
	return formatWithDecimals(mark.Value, decimalsForStep(mark.StepSize))
}

// LocaleFormatter returns a Formatter that uses the decimal rule of
// DefaultFormatter with the digit grouping and decimal separator of tag.
func LocaleFormatter(tag language.Tag) Formatter {
	p := message.NewPrinter(tag)
	return func(mark GridMark, _ Range) string {
		n := decimalsForStep(mark.StepSize)
		return p.Sprint(number.Decimal(roundsToZero(mark.Value, n), number.Scale(n)))
	}
}

// SafeFormatter wraps f so that a panic inside f suppresses the label
// instead of propagating.
func SafeFormatter(f Formatter) Formatter {
	return func(mark GridMark, visible Range) (s string) {
		defer func() {
			if r := recover(); r != nil {
				Logger().Warn("plot: formatter panicked",
					slog.Float64("value", mark.Value),
					slog.Any("panic", r))
				s = ""
			}
		}()
		return f(mark, visible)
	}
}

// decimalsForStep returns round(-log10(step)) clamped to [0, maxDecimals].
func decimalsForStep(step float64) int {
	n := -math.Round(math.Log10(math.Abs(step)))
	switch {
	case math.IsNaN(n) || n <= 0:
		return 0
	case n >= maxDecimals:
		return maxDecimals
	}
	return int(n)
}

func formatWithDecimals(v float64, decimals int) string {
	s := strconv.FormatFloat(v, 'f', decimals, 64)
	// Tiny negative values round to "-0.00"; drop the sign.
	if strings.HasPrefix(s, "-") && strings.Trim(s[1:], "0.") == "" {
		return s[1:]
	}
	return s
}

// roundsToZero returns 0 for values that print as zero with the given
// number of decimals, so that they print without a sign.
func roundsToZero(v float64, decimals int) float64 {
	if math.Abs(v) < 0.5*math.Pow(10, -float64(decimals)) {
		return 0
	}
	return v
}
