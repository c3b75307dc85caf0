package printer

import (
	"math"
	"strings"
)

const (
	barFill  = "#"
	barEmpty = "."
)

// TextBar renders a bar placed at left percent spanning width percent
// over a track of the given columns. At least one column is filled.
func TextBar(leftPercent, widthPercent float64, columns int) string {
	if columns <= 0 {
		return ""
	}

	start := clamp(int(math.Round(leftPercent/100*float64(columns))), 0, columns-1)
	length := clamp(int(math.Round(widthPercent/100*float64(columns))), 1, columns-start)

	return "|" +
		strings.Repeat(barEmpty, start) +
		strings.Repeat(barFill, length) +
		strings.Repeat(barEmpty, columns-start-length) +
		"|"
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
