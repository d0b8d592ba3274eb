package service

import (
	"context"
	"strings"

	"github.com/chuling-hu/EoDeliveryForOffices/internal/calendar"
	"github.com/chuling-hu/EoDeliveryForOffices/internal/domain"
	"github.com/chuling-hu/EoDeliveryForOffices/internal/repo"
	"go.uber.org/zap"
)

// ScheduleService is the admin-side menu availability engine. Editing state
// lives in a caller-owned Draft; only Load and Save cross the storage
// boundary.
type ScheduleService struct {
	menuRepo repo.DailyMenuRepository
	catalog  repo.CatalogRepository
	policy   *calendar.Policy
	logger   *zap.SugaredLogger
}

func NewScheduleService(
	menuRepo repo.DailyMenuRepository,
	catalog repo.CatalogRepository,
	policy *calendar.Policy,
	logger *zap.SugaredLogger,
) *ScheduleService {
	return &ScheduleService{
		menuRepo: menuRepo,
		catalog:  catalog,
		policy:   policy,
		logger:   logger,
	}
}

// RestaurantGroup is one restaurant's slice of the catalog.
type RestaurantGroup struct {
	Restaurant domain.Restaurant `json:"restaurant"`
	Items      []domain.MenuItem `json:"items"`
}

// GroupedCatalog partitions the full item catalog by owning restaurant.
// Groups appear in the order their restaurant is first seen in the catalog,
// not alphabetically. A non-empty nameFilter narrows the restaurant set by
// case-insensitive substring match on the restaurant name.
func (s *ScheduleService) GroupedCatalog(ctx context.Context, nameFilter string) ([]RestaurantGroup, error) {
	restaurants, err := s.catalog.ListRestaurants(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]domain.Restaurant, len(restaurants))
	for _, r := range restaurants {
		byID[r.ID] = r
	}

	items, err := s.catalog.ListAllMenuItems(ctx)
	if err != nil {
		return nil, err
	}

	var groups []RestaurantGroup
	index := make(map[string]int)
	for _, item := range items {
		i, seen := index[item.RestaurantID]
		if !seen {
			index[item.RestaurantID] = len(groups)
			groups = append(groups, RestaurantGroup{Restaurant: byID[item.RestaurantID]})
			i = len(groups) - 1
		}
		groups[i].Items = append(groups[i].Items, item)
	}

	if nameFilter == "" {
		return groups, nil
	}

	needle := strings.ToLower(nameFilter)
	filtered := groups[:0]
	for _, g := range groups {
		if strings.Contains(strings.ToLower(g.Restaurant.Name), needle) {
			filtered = append(filtered, g)
		}
	}
	return filtered, nil
}

// LoadDraft seeds a fresh draft with the persisted selections and overrides
// for the given dates.
func (s *ScheduleService) LoadDraft(ctx context.Context, dates ...domain.Date) (*Draft, error) {
	draft := NewDraft()
	if len(dates) == 0 {
		return draft, nil
	}

	min, max := dates[0], dates[0]
	wanted := make(map[domain.Date]bool, len(dates))
	for _, d := range dates {
		wanted[d] = true
		if d.Before(min) {
			min = d
		}
		if d.After(max) {
			max = d
		}
	}

	menus, err := s.menuRepo.GetRange(ctx, min, max)
	if err != nil {
		return nil, err
	}

	for _, m := range menus {
		if !wanted[m.Date] {
			continue
		}
		draft.SetSelection(m.Date, m.MenuItemIDs)
		if m.Override != nil {
			draft.overrides[m.Date] = *m.Override
		}
	}

	return draft, nil
}

// EnableWeekendOverride records a justified override in the draft. Blank
// justifications and holiday dates are rejected before the draft changes.
func (s *ScheduleService) EnableWeekendOverride(draft *Draft, date domain.Date, justification string) error {
	overrides, err := s.policy.EnableOverride(date, justification, draft.overrides)
	if err != nil {
		return err
	}
	draft.overrides = overrides
	return nil
}

// DisableWeekendOverride removes the draft override; the date reverts to
// the default-closed weekend rule.
func (s *ScheduleService) DisableWeekendOverride(draft *Draft, date domain.Date) {
	draft.overrides = s.policy.DisableOverride(date, draft.overrides)
}

// OrderingOpen reports whether ordering is open for the date under the
// draft's override set.
func (s *ScheduleService) OrderingOpen(draft *Draft, date domain.Date) bool {
	return s.policy.IsOrderingOpen(date, draft.overrides)
}

// SaveDate persists the working selection for exactly one date as a single
// upsert, carrying the weekend override along when the date is a weekend.
func (s *ScheduleService) SaveDate(ctx context.Context, draft *Draft, date domain.Date) error {
	menu := &domain.DailyMenu{
		Date:        date,
		MenuItemIDs: draft.SelectedIDs(date),
	}
	if ov, ok := draft.overrides[date]; ok && calendar.IsWeekend(date) {
		menu.Override = &ov
	}

	if err := s.menuRepo.Set(ctx, menu); err != nil {
		return err
	}

	s.logger.Infow("daily menu saved", "date", date, "items", len(menu.MenuItemIDs), "override", menu.Override != nil)
	return nil
}

// BatchResult reports the outcome of a multi-date save.
type BatchResult struct {
	Saved int
	Total int
	Err   error // first failure, nil when everything landed
}

// SaveBatch persists every date in the batch as a sequence of independent
// upserts. The store offers no multi-key atomicity, so a failure partway
// leaves earlier dates committed; the result carries the success count and
// the first error.
func (s *ScheduleService) SaveBatch(ctx context.Context, draft *Draft, dates []domain.Date) BatchResult {
	result := BatchResult{Total: len(dates)}
	for _, date := range dates {
		if err := s.SaveDate(ctx, draft, date); err != nil {
			s.logger.Errorw("batch save failed for date", "date", date, "error", err)
			if result.Err == nil {
				result.Err = err
			}
			continue
		}
		result.Saved++
	}
	return result
}

// DayView is the per-date editing view: the grouped catalog with each
// restaurant's selection state, plus the date's policy standing.
type DayView struct {
	Date         domain.Date             `json:"date"`
	Weekend      bool                    `json:"weekend"`
	Holiday      string                  `json:"holiday,omitempty"`
	OrderingOpen bool                    `json:"ordering_open"`
	Override     *domain.WeekendOverride `json:"override,omitempty"`
	Groups       []GroupState            `json:"groups"`
}

type GroupState struct {
	Restaurant domain.Restaurant `json:"restaurant"`
	Items      []domain.MenuItem `json:"items"`
	State      SelectionState    `json:"state"`
	Selected   []string          `json:"selected"`
}

// DayViewFor assembles the editing view for one date from a draft.
func (s *ScheduleService) DayViewFor(ctx context.Context, draft *Draft, date domain.Date, nameFilter string) (*DayView, error) {
	groups, err := s.GroupedCatalog(ctx, nameFilter)
	if err != nil {
		return nil, err
	}

	view := &DayView{
		Date:         date,
		Weekend:      calendar.IsWeekend(date),
		OrderingOpen: s.policy.IsOrderingOpen(date, draft.overrides),
	}
	if name, ok := s.policy.HolidayName(date); ok {
		view.Holiday = name
	}
	if ov, ok := draft.Override(date); ok {
		view.Override = &ov
	}

	for _, g := range groups {
		gs := GroupState{
			Restaurant: g.Restaurant,
			Items:      g.Items,
			State:      draft.StateFor(date, g.Items),
			Selected:   []string{},
		}
		for _, item := range g.Items {
			if draft.Selected(date, item.ID) {
				gs.Selected = append(gs.Selected, item.ID)
			}
		}
		view.Groups = append(view.Groups, gs)
	}

	return view, nil
}
