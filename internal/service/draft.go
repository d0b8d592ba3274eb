package service

import (
	"sort"

	"github.com/chuling-hu/EoDeliveryForOffices/internal/calendar"
	"github.com/chuling-hu/EoDeliveryForOffices/internal/domain"
)

// Draft is the working, unsaved selection state of one editing session
// (daily, weekly or monthly view). It is owned by the caller and passed
// explicitly into engine operations; nothing here touches storage.
// Navigating away without saving simply drops the Draft.
type Draft struct {
	selections map[domain.Date]map[string]struct{}
	overrides  calendar.Overrides
}

func NewDraft() *Draft {
	return &Draft{
		selections: make(map[domain.Date]map[string]struct{}),
		overrides:  make(calendar.Overrides),
	}
}

func (d *Draft) selection(date domain.Date) map[string]struct{} {
	set, ok := d.selections[date]
	if !ok {
		set = make(map[string]struct{})
		d.selections[date] = set
	}
	return set
}

// Selected reports whether itemID is in the date's working selection.
func (d *Draft) Selected(date domain.Date, itemID string) bool {
	_, ok := d.selections[date][itemID]
	return ok
}

// SelectedIDs returns the date's working selection, sorted for stable
// persistence. The set itself carries no ordering significance.
func (d *Draft) SelectedIDs(date domain.Date) []string {
	set := d.selections[date]
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// SetSelection replaces the date's working selection wholesale. Used when
// seeding a draft from persisted state.
func (d *Draft) SetSelection(date domain.Date, itemIDs []string) {
	set := make(map[string]struct{}, len(itemIDs))
	for _, id := range itemIDs {
		set[id] = struct{}{}
	}
	d.selections[date] = set
}

// ToggleItem flips membership of one item in the date's selection:
// present is removed, absent is added.
func (d *Draft) ToggleItem(date domain.Date, itemID string) {
	set := d.selection(date)
	if _, ok := set[itemID]; ok {
		delete(set, itemID)
	} else {
		set[itemID] = struct{}{}
	}
}

// SelectionState is the per-restaurant aggregate for one date.
type SelectionState string

const (
	SelectionNone    SelectionState = "none"
	SelectionPartial SelectionState = "partial"
	SelectionAll     SelectionState = "all"
)

// StateFor recomputes the aggregate state of a restaurant's items on a
// date. It is derived on demand, never cached.
func (d *Draft) StateFor(date domain.Date, items []domain.MenuItem) SelectionState {
	if len(items) == 0 {
		return SelectionNone
	}

	selected := 0
	for _, item := range items {
		if d.Selected(date, item.ID) {
			selected++
		}
	}

	switch selected {
	case 0:
		return SelectionNone
	case len(items):
		return SelectionAll
	default:
		return SelectionPartial
	}
}

// ToggleRestaurant toggles a whole restaurant: ALL clears every item,
// anything else (NONE or PARTIAL) selects every item. A partial restaurant
// always promotes to all, never drops to none.
func (d *Draft) ToggleRestaurant(date domain.Date, items []domain.MenuItem) {
	set := d.selection(date)
	if d.StateFor(date, items) == SelectionAll {
		for _, item := range items {
			delete(set, item.ID)
		}
		return
	}
	for _, item := range items {
		set[item.ID] = struct{}{}
	}
}

// CopyForward replaces day dayIndex's working selection with an independent
// snapshot of the previous day's. The first day of a week has no
// predecessor and cannot be a copy target.
func (d *Draft) CopyForward(week [7]domain.Date, dayIndex int) error {
	if dayIndex <= 0 || dayIndex >= len(week) {
		return domain.NewInvalidOperationError("no predecessor day to copy from")
	}

	src := d.selections[week[dayIndex-1]]
	dst := make(map[string]struct{}, len(src))
	for id := range src {
		dst[id] = struct{}{}
	}
	d.selections[week[dayIndex]] = dst
	return nil
}

// Override returns the draft override for a date, if any.
func (d *Draft) Override(date domain.Date) (domain.WeekendOverride, bool) {
	ov, ok := d.overrides[date]
	return ov, ok
}

// Overrides exposes the draft's override set for policy checks.
func (d *Draft) Overrides() calendar.Overrides {
	return d.overrides
}
