package timeline

import (
	"fmt"
	"time"
)

// TimeWindow is the visualization window of a project.
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// SpanDays is the ceiling of the window length in days.
// Zero or negative for degenerate or inverted windows.
func (w TimeWindow) SpanDays() int64 {
	return ceilDays(daysBetween(w.Start, w.End))
}

func (w TimeWindow) IsDegenerate() bool {
	return w.SpanDays() <= 0
}

// OffsetDays is the number of days from window start to the given moment,
// floored at zero.
func (w TimeWindow) OffsetDays(moment time.Time) float64 {
	return maxOf(0, daysBetween(w.Start, moment))
}

func (w TimeWindow) String() string {
	return fmt.Sprintf(
		"[%s - %s] (%d days)",

		w.Start.Format(DateLayout),
		w.End.Format(DateLayout),
		w.SpanDays(),
	)
}
