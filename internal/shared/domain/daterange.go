// Package domain contains shared value objects used across bounded
// contexts. Dates are calendar days: midnight UTC, no clock component.
package domain

import "time"

const day = 24 * time.Hour

// NewDate builds a calendar day.
func NewDate(year int, month time.Month, dayOfMonth int) time.Time {
	return time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.UTC)
}

// Truncate drops the clock component of a timestamp, keeping the calendar
// day in UTC.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole days from a to b. Negative when
// b precedes a.
func DaysBetween(a, b time.Time) int {
	return int(Truncate(b).Sub(Truncate(a)) / day)
}

// DaysInclusive returns the length of [start, end] in days, counting both
// endpoints. Returns 0 when either date is missing or end precedes start.
func DaysInclusive(start, end *time.Time) int {
	if start == nil || end == nil {
		return 0
	}
	if end.Before(*start) {
		return 0
	}
	return DaysBetween(*start, *end) + 1
}

// Allocate prorates value over the part of [start, end] that falls within
// [windowStart, windowEnd]. Both ranges are inclusive. A missing date, an
// empty range, or a disjoint window yields 0.
func Allocate(value float64, start, end *time.Time, windowStart, windowEnd time.Time) float64 {
	if start == nil || end == nil {
		return 0
	}
	rangeStart := Truncate(*start)
	rangeEnd := Truncate(*end)
	if rangeStart.After(windowEnd) || rangeEnd.Before(windowStart) {
		return 0
	}

	overlapStart := rangeStart
	if windowStart.After(overlapStart) {
		overlapStart = windowStart
	}
	overlapEnd := rangeEnd
	if windowEnd.Before(overlapEnd) {
		overlapEnd = windowEnd
	}
	if overlapStart.After(overlapEnd) {
		return 0
	}

	totalDays := DaysBetween(rangeStart, rangeEnd) + 1
	if totalDays <= 0 {
		return 0
	}
	overlapDays := DaysBetween(overlapStart, overlapEnd) + 1
	return value * float64(overlapDays) / float64(totalDays)
}

// MonthStart returns the first day of t's month.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// MonthEnd returns the last day of t's month.
func MonthEnd(t time.Time) time.Time {
	return MonthStart(t).AddDate(0, 1, 0).AddDate(0, 0, -1)
}

// MonthStarts lists the first-of-month dates from the month containing
// from through the month containing to, inclusive.
func MonthStarts(from, to time.Time) []time.Time {
	var months []time.Time
	for m := MonthStart(from); !m.After(to); m = m.AddDate(0, 1, 0) {
		months = append(months, m)
	}
	return months
}

// DateRange is a pair of optional inclusive dates.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// FormatDate renders a date as YYYY-MM-DD, or "-" when missing.
func FormatDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("2006-01-02")
}
