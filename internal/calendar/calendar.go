// Package calendar handles the calendar dates vouchers and bills are posted on.
// Dates carry no time of day and are always normalised to UTC midnight.
package calendar

import (
	"fmt"
	"time"
)

// Date truncates t to its calendar day in UTC.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func Today() time.Time {
	return Date(time.Now())
}

// Parse accepts an ISO-8601 calendar date ("2006-01-02") or an RFC 3339
// timestamp, whose date part is kept.
func Parse(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}

	return Date(t), nil
}

// ParseOr parses s, returning def when s is empty.
func ParseOr(s string, def time.Time) (time.Time, error) {
	if s == "" {
		return def, nil
	}

	return Parse(s)
}

// DaysBetween returns the number of whole days from a to b (negative if b is before a).
func DaysBetween(a, b time.Time) int {
	return int(Date(b).Sub(Date(a)).Hours() / 24)
}
