package domain

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the canonical wire form for calendar dates. The fixed-width
// format makes Date values orderable with plain string comparison.
const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date: expected YYYY-MM-DD")

// Date is a single calendar day with no time-of-day component, held in its
// canonical YYYY-MM-DD form. It is constructed once from calendar components
// and never reinterpreted through a timezone.
type Date string

// ParseDate validates s against the canonical layout.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	// reject inputs that round-trip differently, e.g. "2026-2-03"
	if t.Format(DateLayout) != s {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Date(s), nil
}

// NewDate builds a Date from calendar components.
func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Format(DateLayout))
}

// DateOf truncates t to its calendar day in t's own location.
func DateOf(t time.Time) Date {
	return Date(t.Format(DateLayout))
}

func (d Date) String() string { return string(d) }

// Time returns midnight UTC of the day. Only the calendar components are
// meaningful; the UTC location is just a fixed anchor for arithmetic.
func (d Date) Time() time.Time {
	t, _ := time.Parse(DateLayout, string(d))
	return t
}

// AddDays returns the date n days after d (n may be negative).
func (d Date) AddDays(n int) Date {
	return Date(d.Time().AddDate(0, 0, n).Format(DateLayout))
}

func (d Date) After(other Date) bool  { return string(d) > string(other) }
func (d Date) Before(other Date) bool { return string(d) < string(other) }

func (d Date) Year() int         { return d.Time().Year() }
func (d Date) Month() time.Month { return d.Time().Month() }
func (d Date) Day() int          { return d.Time().Day() }
