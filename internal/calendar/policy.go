package calendar

import (
	"strings"

	"github.com/chuling-hu/EoDeliveryForOffices/internal/domain"
)

// Overrides is the per-date weekend override set held by an editing draft.
// Policy operations treat it as a value: mutating operations return a new
// set and leave the input untouched.
type Overrides map[domain.Date]domain.WeekendOverride

func (o Overrides) clone() Overrides {
	out := make(Overrides, len(o)+1)
	for d, ov := range o {
		out[d] = ov
	}
	return out
}

// Policy decides whether ordering is open on a given date. Weekends and
// holidays are closed by default; only weekends can be opened back up, and
// only with a justified override.
type Policy struct {
	holidays HolidayCalendar
}

func NewPolicy(holidays HolidayCalendar) *Policy {
	return &Policy{holidays: holidays}
}

// HolidayName returns the display name of the holiday on d, if any.
func (p *Policy) HolidayName(d domain.Date) (string, bool) {
	return p.holidays.HolidayName(d)
}

func (p *Policy) IsHoliday(d domain.Date) bool {
	_, ok := p.holidays.HolidayName(d)
	return ok
}

// IsOrderingDefaultOpen is the rule before overrides: closed on weekends
// and holidays, open otherwise.
func (p *Policy) IsOrderingDefaultOpen(d domain.Date) bool {
	return !IsWeekend(d) && !p.IsHoliday(d)
}

// IsOverrideActive reports whether d carries an enabled, justified override.
// Overrides only take effect on weekend dates; holidays are not overridable.
func (p *Policy) IsOverrideActive(d domain.Date, overrides Overrides) bool {
	ov, ok := overrides[d]
	if !ok || !ov.Enabled || strings.TrimSpace(ov.Reason) == "" {
		return false
	}
	if p.IsHoliday(d) {
		return false
	}
	return IsWeekend(d)
}

// IsOrderingOpen combines the default rule with active overrides.
func (p *Policy) IsOrderingOpen(d domain.Date, overrides Overrides) bool {
	return p.IsOrderingDefaultOpen(d) || p.IsOverrideActive(d, overrides)
}

// EnableOverride inserts or replaces the override for d. The justification
// is mandatory; holidays are rejected because they cannot be opened.
func (p *Policy) EnableOverride(d domain.Date, justification string, overrides Overrides) (Overrides, error) {
	if strings.TrimSpace(justification) == "" {
		return nil, domain.NewValidationError("override justification must not be empty")
	}
	if name, ok := p.holidays.HolidayName(d); ok {
		return nil, domain.NewValidationError("ordering on holiday %s (%s) cannot be opened", d, name)
	}

	out := overrides.clone()
	out[d] = domain.WeekendOverride{Enabled: true, Reason: justification}
	return out, nil
}

// DisableOverride removes the override for d; the date reverts to the
// default rule. Removing a missing override is a no-op.
func (p *Policy) DisableOverride(d domain.Date, overrides Overrides) Overrides {
	out := overrides.clone()
	delete(out, d)
	return out
}
