package domain

import (
	"time"

	sharedDomain "github.com/genbaworks/genba/internal/shared/domain"
)

// DefaultFiscalStartMonth is July, the accounting convention of the
// business.
const DefaultFiscalStartMonth = time.July

// FiscalYear identifies a 12-month accounting period starting at a
// configurable month of the named year.
type FiscalYear struct {
	Year       int
	StartMonth time.Month
}

// NewFiscalYear builds a fiscal year, defaulting the start month when out
// of range.
func NewFiscalYear(year int, startMonth time.Month) FiscalYear {
	if startMonth < time.January || startMonth > time.December {
		startMonth = DefaultFiscalStartMonth
	}
	return FiscalYear{Year: year, StartMonth: startMonth}
}

// Range returns the inclusive first and last day of the fiscal year.
func (fy FiscalYear) Range() (time.Time, time.Time) {
	start := sharedDomain.NewDate(fy.Year, fy.StartMonth, 1)
	end := start.AddDate(1, 0, 0).AddDate(0, 0, -1)
	return start, end
}

// Months lists the 12 first-of-month dates of the fiscal year in order.
func (fy FiscalYear) Months() []time.Time {
	start, end := fy.Range()
	return sharedDomain.MonthStarts(start, end)
}

// Contains reports whether the date falls within the fiscal year.
func (fy FiscalYear) Contains(t time.Time) bool {
	start, end := fy.Range()
	return !t.Before(start) && !t.After(end)
}

// FiscalYearFor returns the fiscal year a date falls in: dates before
// the start month belong to the previous year's period.
func FiscalYearFor(t time.Time, startMonth time.Month) FiscalYear {
	fy := NewFiscalYear(t.Year(), startMonth)
	if t.Month() < fy.StartMonth {
		fy.Year--
	}
	return fy
}
