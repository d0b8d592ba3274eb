// Package calendar holds the date utilities and the holiday/weekend
// ordering policy. All computations are pure; only the clock touches the
// outside world.
package calendar

import (
	"fmt"
	"time"

	"github.com/chuling-hu/EoDeliveryForOffices/internal/domain"
)

// DefaultTimezone is the fixed regional timezone every date in the system
// is anchored to, regardless of where the process runs.
const DefaultTimezone = "Asia/Taipei"

// Clock supplies "now" already resolved to the fixed regional timezone.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock and converts into a fixed location.
type SystemClock struct {
	loc *time.Location
}

func NewSystemClock(tz string) (*SystemClock, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", tz, err)
	}
	return &SystemClock{loc: loc}, nil
}

func (c *SystemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// Today returns the current calendar date in the clock's timezone. The
// runtime's ambient local timezone is never consulted.
func Today(clock Clock) domain.Date {
	return domain.DateOf(clock.Now())
}

// WeekdayIndex returns 0-6 with Sunday = 0, computed from the calendar
// components directly so there is no timezone drift near midnight.
func WeekdayIndex(d domain.Date) int {
	return int(time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC).Weekday())
}

// IsWeekend reports whether d falls on Saturday or Sunday.
func IsWeekend(d domain.Date) bool {
	idx := WeekdayIndex(d)
	return idx == 0 || idx == 6
}

// WeekOf returns the Monday-anchored 7-day sequence containing d.
func WeekOf(d domain.Date) [7]domain.Date {
	// days elapsed since Monday: Mon=0 ... Sun=6
	offset := (WeekdayIndex(d) + 6) % 7
	monday := d.AddDays(-offset)

	var week [7]domain.Date
	for i := range week {
		week[i] = monday.AddDays(i)
	}
	return week
}

// MonthDates returns every date of the given month in order, plus the
// weekday index of the 1st for calendar-grid layout.
func MonthDates(year int, month time.Month) ([]domain.Date, int) {
	first := domain.NewDate(year, month, 1)
	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	dates := make([]domain.Date, 0, lastDay)
	for day := 1; day <= lastDay; day++ {
		dates = append(dates, domain.NewDate(year, month, day))
	}
	return dates, WeekdayIndex(first)
}
