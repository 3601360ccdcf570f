package timecalc

import (
	"fmt"
	"math"
	"regexp"
	"time"
)

// DateLayout is the calendar date format used throughout the ledger.
const DateLayout = "2006-01-02"

const minutesPerDay = 24 * 60

var clockPattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

// IsValidClock reports whether s is a 24-hour wall-clock value in HH:MM form.
// Hours must be 00-23 and minutes 00-59; a missing leading zero is rejected.
func IsValidClock(s string) bool {
	return clockPattern.MatchString(s)
}

// ParseClock parses a 24-hour "HH:MM" wall-clock value into minutes since midnight.
func ParseClock(s string) (int, error) {
	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("invalid clock time %q, expected HH:MM", s)
	}
	var hour, minute int
	fmt.Sscanf(m[1], "%d", &hour)
	fmt.Sscanf(m[2], "%d", &minute)
	return hour*60 + minute, nil
}

// DeriveHours computes the worked duration in hours between two wall-clock
// times. An end time numerically earlier than the start time is interpreted
// as crossing midnight and wraps around. Equal times yield zero hours.
// The result is rounded to 2 decimal places and is always in [0, 24).
func DeriveHours(start, end string) (float64, error) {
	startTotal, err := ParseClock(start)
	if err != nil {
		return 0, err
	}
	endTotal, err := ParseClock(end)
	if err != nil {
		return 0, err
	}

	var diffMinutes int
	if endTotal >= startTotal {
		diffMinutes = endTotal - startTotal
	} else {
		// Overnight shift
		diffMinutes = (minutesPerDay - startTotal) + endTotal
	}

	return Round2(float64(diffMinutes) / 60), nil
}

// Round2 rounds to 2 decimal places, half away from zero.
func Round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// ParseDate parses a calendar date in ISO-8601 form (YYYY-MM-DD).
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// FormatDate formats a time as a calendar date (YYYY-MM-DD).
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// SameOrAfter reports whether a falls on or after b by calendar date.
func SameOrAfter(a, b time.Time) bool {
	return !truncate(a).Before(truncate(b))
}

// SameOrBefore reports whether a falls on or before b by calendar date.
func SameOrBefore(a, b time.Time) bool {
	return !truncate(a).After(truncate(b))
}

// InRange reports whether t falls within [start, end] inclusive by calendar date.
func InRange(t, start, end time.Time) bool {
	return SameOrAfter(t, start) && SameOrBefore(t, end)
}

func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
