package internal

import (
	"strings"
	"time"

	"github.com/jinzhu/now"
)

// BucketWindow is the time span a chart or a total covers.
type BucketWindow int

const (
	WindowDay BucketWindow = iota
	WindowWeek
	WindowMonth
	WindowYear
	WindowAllTime
)

func ParseBucketWindow(s string) (BucketWindow, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "day":
		return WindowDay, nil
	case "week":
		return WindowWeek, nil
	case "month":
		return WindowMonth, nil
	case "year":
		return WindowYear, nil
	case "alltime", "all-time", "all_time":
		return WindowAllTime, nil
	}
	return WindowDay, &ConfigurationError{Field: "window", Value: s}
}

func (w BucketWindow) String() string {
	switch w {
	case WindowDay:
		return "Day"
	case WindowWeek:
		return "Week"
	case WindowMonth:
		return "Month"
	case WindowYear:
		return "Year"
	case WindowAllTime:
		return "AllTime"
	}
	return "Unknown"
}

// BucketCount is the fixed length of the window's history.
func (w BucketWindow) BucketCount() int {
	switch w {
	case WindowDay:
		return 24
	case WindowWeek:
		return 7
	case WindowMonth:
		return 31
	case WindowYear:
		return 12
	}
	return 0
}

// Clock is the time-of-day convention used for labels.
type Clock int

const (
	Clock12Hour Clock = iota
	Clock24Hour
)

func ParseClock(s string) (Clock, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "12h", "12":
		return Clock12Hour, nil
	case "24h", "24":
		return Clock24Hour, nil
	}
	return Clock12Hour, &ConfigurationError{Field: "clock", Value: s}
}

// TimeOfDay formats t as a short time: "3:04 PM" or "15:04".
func (c Clock) TimeOfDay(t time.Time) string {
	if c == Clock24Hour {
		return t.Format("15:04")
	}
	return t.Format("3:04 PM")
}

// Calendar math runs on the wall-clock date at noon UTC, where no DST gap can
// move it to another day. Results are mapped back with firstInstant.
var calendar = &now.Config{WeekStartDay: time.Monday, TimeLocation: time.UTC}

func civil(t time.Time) *now.Now {
	return calendar.With(time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, time.UTC))
}

// firstInstant returns the first instant of date's day in loc.
func firstInstant(date time.Time, loc *time.Location) time.Time {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	if d.Day() != date.Day() {
		// Midnight is in a DST gap and resolved into the previous day. The day starts
		// when that zone ends.
		_, d = d.ZoneBounds()
	}
	return d
}

func startOfDay(t time.Time) time.Time {
	return firstInstant(civil(t).BeginningOfDay(), t.Location())
}

// startOfWeek returns the first instant of Monday in t's ISO week.
func startOfWeek(t time.Time) time.Time {
	return firstInstant(civil(t).BeginningOfWeek(), t.Location())
}

func startOfMonth(t time.Time) time.Time {
	return firstInstant(civil(t).BeginningOfMonth(), t.Location())
}

func startOfYear(t time.Time) time.Time {
	return firstInstant(civil(t).BeginningOfYear(), t.Location())
}

// addDays returns the start of the day n days after t's date.
func addDays(t time.Time, n int) time.Time {
	return firstInstant(civil(t).AddDate(0, 0, n), t.Location())
}

// addMonths returns the start of the month n months after t's month.
func addMonths(t time.Time, n int) time.Time {
	return firstInstant(civil(t).BeginningOfMonth().AddDate(0, n, 0), t.Location())
}

func beginningOfTime(t time.Time) time.Time {
	return time.Unix(0, 0).In(t.Location())
}

// daysBetween counts calendar days from a's date to b's date, ignoring DST shifts.
func daysBetween(a, b time.Time) int {
	da := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	db := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(db.Sub(da).Hours() / 24)
}

func monthsBetween(a, b time.Time) int {
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
}

func daysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
