package timebomb

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidDeadline = errors.New("invalid deadline")

var deadlineLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDeadline accepts RFC3339, a zone-less timestamp, or a plain date.
// Zone-less values are read as UTC.
func ParseDeadline(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range deadlineLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDeadline, s)
}

// MustParseDeadline is ParseDeadline for package-level variables; it panics
// on malformed input.
func MustParseDeadline(s string) time.Time {
	t, err := ParseDeadline(s)
	if err != nil {
		panic(err)
	}
	return t
}

func formatDeadline(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}
