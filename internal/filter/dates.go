package filter

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const dateOnlyLayout = "2006-01-02"

// ErrInvalidDate is returned for a date bound that is neither YYYY-MM-DD nor RFC3339
var ErrInvalidDate = errors.New("invalid date")

// ParseDateBound parses an optional date filter. Empty input yields nil. When endOfDay is
// set, a date-only value is moved to the last instant of that day so an upper bound covers it.
func ParseDateBound(raw string, endOfDay bool) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	if t, err := time.Parse(dateOnlyLayout, raw); err == nil {
		if endOfDay {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		return &t, nil
	}

	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}
	return &t, nil
}
