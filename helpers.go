package timeline

import (
	"math"
	"time"
)

const hoursPerDay = 24

type maxNumberTypes interface {
	int | int64 | float64
}

func maxOf[T maxNumberTypes](a, b T) T {
	if a > b {
		return a
	}

	return b
}

func minOf[T maxNumberTypes](a, b T) T {
	if a < b {
		return a
	}

	return b
}

func ternary[T any](condition bool, value1, value2 T) T {
	if condition {
		return value1
	}

	return value2
}

// daysBetween returns the fractional number of days from start to end.
// Negative when end precedes start.
func daysBetween(start, end time.Time) float64 {
	return end.Sub(start).Hours() / hoursPerDay
}

func ceilDays(days float64) int64 {
	return int64(math.Ceil(days))
}

func percentOf(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}

	return part * 100 / whole
}
