package domain

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		for _, s := range []string{"2026-01-01", "2026-02-28", "2025-12-31"} {
			d, err := ParseDate(s)
			if err != nil {
				t.Errorf("ParseDate(%q) returned error: %v", s, err)
			}
			if string(d) != s {
				t.Errorf("ParseDate(%q) = %q", s, d)
			}
		}
	})

	t.Run("invalid", func(t *testing.T) {
		for _, s := range []string{
			"",
			"2026-2-03",   // non-canonical width
			"2026/02/03",  // wrong separator
			"2026-02-30",  // no such day
			"2026-13-01",  // no such month
			"03-02-2026",  // wrong field order
			"2026-02-03T00:00:00Z",
		} {
			if _, err := ParseDate(s); !errors.Is(err, ErrInvalidDate) {
				t.Errorf("ParseDate(%q): expected ErrInvalidDate, got %v", s, err)
			}
		}
	})
}

func TestDateArithmetic(t *testing.T) {
	tests := []struct {
		start Date
		n     int
		want  Date
	}{
		{"2026-03-09", 1, "2026-03-10"},
		{"2026-03-09", -1, "2026-03-08"},
		{"2026-02-28", 1, "2026-03-01"}, // 2026 is not a leap year
		{"2025-12-31", 1, "2026-01-01"},
		{"2026-01-01", -1, "2025-12-31"},
		{"2026-03-09", 0, "2026-03-09"},
	}

	for _, tc := range tests {
		if got := tc.start.AddDays(tc.n); got != tc.want {
			t.Errorf("%s.AddDays(%d) = %s, want %s", tc.start, tc.n, got, tc.want)
		}
	}
}

func TestDateOrdering(t *testing.T) {
	earlier := Date("2026-03-09")
	later := Date("2026-03-10")

	if !earlier.Before(later) || later.Before(earlier) {
		t.Error("Before is inconsistent")
	}
	if !later.After(earlier) || earlier.After(later) {
		t.Error("After is inconsistent")
	}
	if earlier.Before(earlier) || earlier.After(earlier) {
		t.Error("a date must not order against itself")
	}
	// year boundary: lexicographic order must agree with calendar order
	if !Date("2025-12-31").Before("2026-01-01") {
		t.Error("year boundary ordering broken")
	}
}

func TestDateComponents(t *testing.T) {
	d := Date("2026-03-09")

	if d.Year() != 2026 || d.Month() != time.March || d.Day() != 9 {
		t.Errorf("unexpected components: %d %s %d", d.Year(), d.Month(), d.Day())
	}
}

func TestDateOf(t *testing.T) {
	// DateOf uses the time's own location: the same instant is a different
	// calendar day in Taipei than in UTC.
	taipei := time.FixedZone("Asia/Taipei", 8*3600)
	instant := time.Date(2026, time.March, 9, 23, 30, 0, 0, taipei)

	if got := DateOf(instant); got != "2026-03-09" {
		t.Errorf("DateOf in Taipei = %s, want 2026-03-09", got)
	}
	if got := DateOf(instant.UTC()); got != "2026-03-09" {
		t.Errorf("DateOf in UTC = %s, want 2026-03-09", got)
	}

	lateEvening := time.Date(2026, time.March, 10, 1, 0, 0, 0, taipei)
	if got := DateOf(lateEvening.UTC()); got != "2026-03-09" {
		t.Errorf("DateOf(%v) = %s, want 2026-03-09", lateEvening.UTC(), got)
	}
	if got := DateOf(lateEvening); got != "2026-03-10" {
		t.Errorf("DateOf(%v) = %s, want 2026-03-10", lateEvening, got)
	}
}
