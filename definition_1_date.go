package timeline

import (
	"fmt"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// ParseDate accepts calendar dates and RFC 3339 timestamps.
// An empty input yields nil.
func ParseDate(value string) (*time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) == 0 {
		return nil, nil
	}

	for _, layout := range []string{DateLayout, time.RFC3339, time.RFC3339Nano} {
		if parsed, errParse := time.Parse(layout, trimmed); errParse == nil {
			return &parsed,
				nil
		}
	}

	return nil,
		fmt.Errorf("date %q is neither %s nor RFC 3339", value, DateLayout)
}
