package calendar

import (
	"testing"
	"time"

	"github.com/chuling-hu/EoDeliveryForOffices/internal/domain"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

func TestWeekdayIndex(t *testing.T) {
	tests := []struct {
		date domain.Date
		want int
	}{
		{"2026-03-08", 0}, // Sunday
		{"2026-03-09", 1}, // Monday
		{"2026-03-10", 2},
		{"2026-03-11", 3},
		{"2026-03-12", 4},
		{"2026-03-13", 5},
		{"2026-03-14", 6}, // Saturday
	}

	for _, tc := range tests {
		if got := WeekdayIndex(tc.date); got != tc.want {
			t.Errorf("WeekdayIndex(%s) = %d, want %d", tc.date, got, tc.want)
		}
	}
}

func TestWeekdayIndex_CyclesOverYear(t *testing.T) {
	d := domain.Date("2026-01-01")
	prev := WeekdayIndex(d)

	for i := 0; i < 365; i++ {
		d = d.AddDays(1)
		idx := WeekdayIndex(d)
		if idx != (prev+1)%7 {
			t.Fatalf("weekday index jumped from %d to %d at %s", prev, idx, d)
		}
		if IsWeekend(d) != (idx == 0 || idx == 6) {
			t.Fatalf("IsWeekend(%s) disagrees with index %d", d, idx)
		}
		prev = idx
	}
}

func TestWeekOf(t *testing.T) {
	want := [7]domain.Date{
		"2026-03-09", "2026-03-10", "2026-03-11", "2026-03-12",
		"2026-03-13", "2026-03-14", "2026-03-15",
	}

	// every day of the week maps back to the same Monday-anchored sequence
	for _, d := range want {
		if got := WeekOf(d); got != want {
			t.Errorf("WeekOf(%s) = %v, want %v", d, got, want)
		}
	}
}

func TestMonthDates(t *testing.T) {
	tests := []struct {
		year         int
		month        time.Month
		days         int
		firstWeekday int
	}{
		{2026, time.February, 28, 0}, // not a leap year, 1st is a Sunday
		{2026, time.March, 31, 0},
		{2026, time.April, 30, 3},
		{2024, time.February, 29, 4}, // leap year
	}

	for _, tc := range tests {
		dates, firstWeekday := MonthDates(tc.year, tc.month)
		if len(dates) != tc.days {
			t.Errorf("%d-%02d: expected %d days, got %d", tc.year, tc.month, tc.days, len(dates))
		}
		if firstWeekday != tc.firstWeekday {
			t.Errorf("%d-%02d: expected first weekday %d, got %d", tc.year, tc.month, tc.firstWeekday, firstWeekday)
		}
		if dates[0] != domain.NewDate(tc.year, tc.month, 1) {
			t.Errorf("%d-%02d: expected first date to be the 1st, got %s", tc.year, tc.month, dates[0])
		}
		if dates[len(dates)-1] != domain.NewDate(tc.year, tc.month, tc.days) {
			t.Errorf("%d-%02d: unexpected last date %s", tc.year, tc.month, dates[len(dates)-1])
		}
	}
}

func TestToday(t *testing.T) {
	taipei := time.FixedZone("Asia/Taipei", 8*3600)
	clock := fixedClock{now: time.Date(2026, time.March, 9, 23, 45, 0, 0, taipei)}

	if got := Today(clock); got != "2026-03-09" {
		t.Errorf("Today = %s, want 2026-03-09", got)
	}
}
