package attendance

import (
	"fmt"
	"math"
	"time"
)

// ParseClock accepts HH:MM or HH:MM:SS time-of-day strings.
func ParseClock(value string) (time.Time, error) {
	if parsed, err := time.Parse("15:04", value); err == nil {
		return parsed, nil
	}
	return time.Parse("15:04:05", value)
}

// DeriveHours computes hours worked by combining the record's date with each
// clock string and taking the difference. A clock-out before clock-in clamps
// to zero rather than going negative; that is a permissive policy, not an
// error. The result is rounded to two decimal places.
func DeriveHours(date, clockIn, clockOut string) (float64, error) {
	in, err := combine(date, clockIn)
	if err != nil {
		return 0, fmt.Errorf("clock-in: %w", err)
	}
	out, err := combine(date, clockOut)
	if err != nil {
		return 0, fmt.Errorf("clock-out: %w", err)
	}

	hours := out.Sub(in).Hours()
	if hours < 0 {
		hours = 0
	}
	return math.Round(hours*100) / 100, nil
}

func combine(date, clock string) (time.Time, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", date)
	}
	tod, err := ParseClock(clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q", clock)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), tod.Hour(), tod.Minute(), tod.Second(), 0, time.UTC), nil
}
