// Package calendar holds the date arithmetic shared by leave and contract code.
// All values are treated as calendar dates: the time-of-day part is ignored.
package calendar

import (
	"time"
)

const DateLayout = "2006-01-02"

// Date truncates t to midnight UTC of the same calendar day.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// BusinessDaysBetween counts Monday to Friday days in [start, end], both
// endpoints included. It returns 0 when end is before start.
func BusinessDaysBetween(start, end time.Time) int {
	start, end = Date(start), Date(end)
	if end.Before(start) {
		return 0
	}

	total := DaysBetween(start, end) + 1
	fullWeeks := total / 7
	count := fullWeeks * 5

	// walk the remaining partial week
	day := start.AddDate(0, 0, fullWeeks*7)
	for i := 0; i < total%7; i++ {
		if IsBusinessDay(day) {
			count++
		}
		day = day.AddDate(0, 0, 1)
	}

	return count
}

func IsBusinessDay(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// DaysBetween returns the signed number of calendar days from a to b.
func DaysBetween(a, b time.Time) int {
	a, b = Date(a), Date(b)
	return int(b.Sub(a).Hours() / 24)
}

func StartOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
}

func EndOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)
}

func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatDatePtr formats an optional date, returning nil when absent.
func FormatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := FormatDate(*t)
	return &s
}
