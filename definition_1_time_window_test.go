package timeline

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run(
		"1. empty is absent",
		func(t *testing.T) {
			result, errParse := ParseDate("  ")
			require.NoError(t, errParse)
			require.Nil(t, result)
		},
	)

	t.Run(
		"2. calendar date and timestamp",
		func(t *testing.T) {
			require.Equal(t,
				date(t, "2024-01-06").Unix(),
				date(t, "2024-01-06T00:00:00Z").Unix(),
			)
		},
	)

	t.Run(
		"3. garbage",
		func(t *testing.T) {
			result, errParse := ParseDate("06/01/2024")
			require.Error(t, errParse)
			require.Nil(t, result)
		},
	)
}

func TestTimeWindowSpan(t *testing.T) {
	tests := []struct {
		name       string
		start      string
		end        string
		expected   int64
		degenerate bool
	}{
		{"1. ten days", "2024-01-01", "2024-01-11", 10, false},
		{"2. zero span", "2024-01-01", "2024-01-01", 0, true},
		{"3. inverted", "2024-01-11", "2024-01-01", -10, true},
		{"4. partial day rounds up", "2024-01-01", "2024-01-02T06:00:00Z", 2, false},
	}

	for _, tt := range tests {
		t.Run(
			tt.name,
			func(t *testing.T) {
				window := TimeWindow{
					Start: *date(t, tt.start),
					End:   *date(t, tt.end),
				}

				require.Equal(t, tt.expected, window.SpanDays())
				require.Equal(t, tt.degenerate, window.IsDegenerate())
			},
		)
	}
}

func TestTimeWindowOffset(t *testing.T) {
	window := TimeWindow{
		Start: *date(t, "2024-01-05"),
		End:   *date(t, "2024-01-15"),
	}

	require.Equal(t, 0.0, window.OffsetDays(*date(t, "2024-01-01")))
	require.Equal(t, 3.0, window.OffsetDays(*date(t, "2024-01-08")))
	require.Equal(t,
		"[2024-01-05 - 2024-01-15] (10 days)",
		window.String(),
	)
}
