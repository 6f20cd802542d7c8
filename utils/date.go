package utils

import (
	"fmt"
	"time"
)

// Input-control layouts used by the mutation forms: the values an admin
// types come back as these strings and must round-trip to wire formats.
const (
	InputDateLayout     = "2006-01-02"
	InputDateTimeLayout = "2006-01-02T15:04" // datetime-local
	InputTimeLayout     = "15:04"
)

// DisplayDate renders a date the way the screens do: M/D/YYYY, no zero
// padding.
func DisplayDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return fmt.Sprintf("%d/%d/%d", int(t.Month()), t.Day(), t.Year())
}

// DisplayDateRange renders "M/D/YYYY - M/D/YYYY".
func DisplayDateRange(start, end time.Time) string {
	return fmt.Sprintf("%s - %s", DisplayDate(start), DisplayDate(end))
}

func ParseInputDate(s string) (time.Time, error) {
	return time.ParseInLocation(InputDateLayout, s, time.UTC)
}

func ParseInputDateTime(s string) (time.Time, error) {
	return time.ParseInLocation(InputDateTimeLayout, s, time.UTC)
}

// ValidClockTime reports whether s is a HH:mm time-of-day string.
func ValidClockTime(s string) bool {
	_, err := time.Parse(InputTimeLayout, s)
	return err == nil
}

// ParseISOTime accepts the handful of timestamp shapes the API has been
// seen to emit.
func ParseISOTime(s string) (*time.Time, error) {
	if s == "" {
		return nil, fmt.Errorf("empty time string")
	}

	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return &t, nil
	}

	t, err = time.Parse(time.RFC3339Nano, s)
	if err == nil {
		return &t, nil
	}

	layouts := []string{
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if tt, e := time.ParseInLocation(layout, s, time.UTC); e == nil {
			return &tt, nil
		}
	}

	return nil, fmt.Errorf("failed to parse time: %v", s)
}
