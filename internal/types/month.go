package types

import (
	"fmt"
	"time"
)

// Month is a month in a specific year.
type Month time.Time

// NewMonth returns a new Month.
func NewMonth(year int, month time.Month) Month {
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// MonthOf returns the Month in which a time occurs in that time's location.
func MonthOf(t time.Time) Month {
	year, month, _ := t.Date()
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// String returns the month formatted as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", time.Time(m).Year(), time.Time(m).Month())
}

// IsZero reports if the month is the zero value.
func (m Month) IsZero() bool {
	return time.Time(m).IsZero()
}

// Next returns the month following m.
func (m Month) Next() Month {
	return Month(time.Time(m).AddDate(0, 1, 0))
}

// First returns the first Date of the month.
func (m Month) First() Date {
	return DateOf(time.Time(m))
}

// Contains reports whether the date is in the month.
func (m Month) Contains(d Date) bool {
	t := time.Time(d)
	return t.Year() == time.Time(m).Year() && t.Month() == time.Time(m).Month()
}
