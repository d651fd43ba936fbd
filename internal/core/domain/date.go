package domain

import (
	"fmt"
	"time"
)

// DayFormat is the only interchange format for calendar days. Dates are
// local civil days; no timezone conversion happens anywhere in the core.
const DayFormat = "2006-01-02"

// MonthFormat prefixes every day belonging to that month.
const MonthFormat = "2006-01"

// ParseDay parses a YYYY-MM-DD string into a midnight-UTC time value.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DayFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day %q, expected YYYY-MM-DD: %w", s, err)
	}
	return t, nil
}

// FormatDay renders a time value as a YYYY-MM-DD civil day.
func FormatDay(t time.Time) string {
	return t.Format(DayFormat)
}

// Today returns the current civil day per the local clock. Callers derive it
// fresh at their boundary and pass it down; the core computations never read
// the clock themselves.
func Today() string {
	return time.Now().Format(DayFormat)
}

// PrevDay returns the civil day before s. Uses calendar arithmetic, so
// month, year and leap boundaries are handled by the time package.
func PrevDay(s string) (string, error) {
	t, err := ParseDay(s)
	if err != nil {
		return "", err
	}
	return FormatDay(t.AddDate(0, 0, -1)), nil
}

// MonthOf returns the YYYY-MM prefix of a day string.
func MonthOf(s string) (string, error) {
	t, err := ParseDay(s)
	if err != nil {
		return "", err
	}
	return t.Format(MonthFormat), nil
}

// DayOfMonth returns the 1-indexed day number of a day string.
func DayOfMonth(s string) (int, error) {
	t, err := ParseDay(s)
	if err != nil {
		return 0, err
	}
	return t.Day(), nil
}

// DaysInMonth returns how many days the month containing s has.
func DaysInMonth(s string) (int, error) {
	t, err := ParseDay(s)
	if err != nil {
		return 0, err
	}
	firstOfNext := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return firstOfNext.AddDate(0, 0, -1).Day(), nil
}
