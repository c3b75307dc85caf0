package printer

import (
	"time"

	"github.com/TudorHulban/timeline"
)

// FormatHeaderDate formats window bounds as "Jan 2, 2006".
func FormatHeaderDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// FormatDate formats dates as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(timeline.DateLayout)
}
