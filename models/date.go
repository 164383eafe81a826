package models

import (
	"fmt"
	"strconv"
	"time"
)

// CalendarDate is an immutable year/month/day triple. All date arithmetic
// returns a new value; no shared instance is ever mutated in place.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate parses an ISO "2006-01-02" date.
func ParseDate(s string) (CalendarDate, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return CalendarDate{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// DateOf extracts the calendar date of the given instant in its location.
func DateOf(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{Year: y, Month: m, Day: d}
}

// Time returns midnight UTC of the date.
func (d CalendarDate) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// At combines the date with a clock time into a UTC instant.
func (d CalendarDate) At(t ClockTime) time.Time {
	return d.Time().Add(time.Duration(t.Minutes()) * time.Minute)
}

// AddDays returns a new date the given number of days later.
func (d CalendarDate) AddDays(n int) CalendarDate {
	return DateOf(d.Time().AddDate(0, 0, n))
}

// IsZero reports whether the date is the zero value.
func (d CalendarDate) IsZero() bool {
	return d == CalendarDate{}
}

func (d CalendarDate) Before(o CalendarDate) bool {
	return d.Time().Before(o.Time())
}

func (d CalendarDate) After(o CalendarDate) bool {
	return d.Time().After(o.Time())
}

func (d CalendarDate) Equal(o CalendarDate) bool {
	return d == o
}

// ISO renders the date as "2006-01-02".
func (d CalendarDate) ISO() string {
	return d.Time().Format("2006-01-02")
}

func (d CalendarDate) String() string {
	return d.ISO()
}

// MarshalJSON encodes the date as its ISO string.
func (d CalendarDate) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.ISO())), nil
}

// UnmarshalJSON decodes an ISO date string.
func (d *CalendarDate) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("invalid date %s", data)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DateWindow is an inclusive date range, typically one viewed month.
type DateWindow struct {
	Start CalendarDate `json:"start"`
	End   CalendarDate `json:"end"`
}

// MonthWindow returns the window covering the whole given month.
func MonthWindow(year int, month time.Month) DateWindow {
	first := CalendarDate{Year: year, Month: month, Day: 1}
	last := DateOf(first.Time().AddDate(0, 1, -1))
	return DateWindow{Start: first, End: last}
}

// Contains reports whether the date falls inside the window, bounds included.
func (w DateWindow) Contains(d CalendarDate) bool {
	return !d.Before(w.Start) && !d.After(w.End)
}
