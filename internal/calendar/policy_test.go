package calendar

import (
	"testing"

	"github.com/chuling-hu/EoDeliveryForOffices/internal/domain"
)

func TestIsOrderingDefaultOpen(t *testing.T) {
	policy := NewPolicy(TaiwanHolidays())

	tests := []struct {
		name string
		date domain.Date
		want bool
	}{
		{"plain weekday", "2026-03-10", true},
		{"saturday", "2026-03-14", false},
		{"sunday", "2026-03-15", false},
		{"lunar new year on a weekday", "2026-02-17", false},
		{"new year's day", "2026-01-01", false},
		{"day after the holiday block", "2026-02-23", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := policy.IsOrderingDefaultOpen(tc.date); got != tc.want {
				t.Errorf("IsOrderingDefaultOpen(%s) = %v, want %v", tc.date, got, tc.want)
			}
		})
	}
}

func TestHolidayName(t *testing.T) {
	policy := NewPolicy(TaiwanHolidays())

	name, ok := policy.HolidayName("2026-02-17")
	if !ok || name != "春節" {
		t.Errorf("expected 春節, got %q ok=%v", name, ok)
	}
	if _, ok := policy.HolidayName("2026-03-10"); ok {
		t.Error("expected no holiday on a plain weekday")
	}
}

func TestEnableOverride_Weekend(t *testing.T) {
	policy := NewPolicy(TaiwanHolidays())
	saturday := domain.Date("2026-03-14")

	overrides, err := policy.EnableOverride(saturday, "staff event", Overrides{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !policy.IsOverrideActive(saturday, overrides) {
		t.Error("expected override active")
	}
	if !policy.IsOrderingOpen(saturday, overrides) {
		t.Error("expected ordering open under override")
	}
	// the neighbouring Sunday is untouched
	if policy.IsOrderingOpen("2026-03-15", overrides) {
		t.Error("override must not leak to other dates")
	}
}

func TestEnableOverride_BlankJustification(t *testing.T) {
	policy := NewPolicy(TaiwanHolidays())

	for _, reason := range []string{"", "   ", "\t\n"} {
		if _, err := policy.EnableOverride("2026-03-14", reason, Overrides{}); !domain.IsValidationError(err) {
			t.Errorf("EnableOverride with reason %q: expected validation error, got %v", reason, err)
		}
	}
}

func TestEnableOverride_HolidayRejected(t *testing.T) {
	policy := NewPolicy(TaiwanHolidays())

	// 2026-02-17 is 春節 on a Tuesday
	_, err := policy.EnableOverride("2026-02-17", "special request", Overrides{})
	if !domain.IsValidationError(err) {
		t.Fatalf("expected validation error, got %v", err)
	}

	// even an entry injected directly never activates on a holiday
	forced := Overrides{"2026-02-17": {Enabled: true, Reason: "forced"}}
	if policy.IsOverrideActive("2026-02-17", forced) {
		t.Error("holiday override must never activate")
	}
	if policy.IsOrderingOpen("2026-02-17", forced) {
		t.Error("ordering must stay closed on a holiday")
	}
}

func TestOverride_WeekdayEntryInert(t *testing.T) {
	policy := NewPolicy(TaiwanHolidays())

	// an entry on a plain weekday is harmless: the date is open by default
	// and the override itself never activates
	overrides := Overrides{"2026-03-10": {Enabled: true, Reason: "noop"}}
	if policy.IsOverrideActive("2026-03-10", overrides) {
		t.Error("weekday override must not be active")
	}
	if !policy.IsOrderingOpen("2026-03-10", overrides) {
		t.Error("weekday must stay open")
	}
}

func TestDisableOverride(t *testing.T) {
	policy := NewPolicy(TaiwanHolidays())
	saturday := domain.Date("2026-03-14")

	enabled, err := policy.EnableOverride(saturday, "staff event", Overrides{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	disabled := policy.DisableOverride(saturday, enabled)
	if policy.IsOrderingOpen(saturday, disabled) {
		t.Error("expected ordering closed after disable")
	}

	// disabling a date without an override is a no-op
	again := policy.DisableOverride(saturday, disabled)
	if len(again) != 0 {
		t.Errorf("expected empty set, got %v", again)
	}
}

func TestOverrides_ValueSemantics(t *testing.T) {
	policy := NewPolicy(TaiwanHolidays())
	original := Overrides{"2026-03-14": {Enabled: true, Reason: "kept"}}

	enabled, err := policy.EnableOverride("2026-03-15", "added", original)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(original) != 1 {
		t.Errorf("EnableOverride mutated its input: %v", original)
	}
	if len(enabled) != 2 {
		t.Errorf("expected 2 entries, got %v", enabled)
	}

	disabled := policy.DisableOverride("2026-03-14", original)
	if _, ok := original["2026-03-14"]; !ok {
		t.Error("DisableOverride mutated its input")
	}
	if _, ok := disabled["2026-03-14"]; ok {
		t.Error("expected entry removed from the result")
	}
}
