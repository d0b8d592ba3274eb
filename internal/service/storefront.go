package service

import (
	"context"
	"time"

	"github.com/chuling-hu/EoDeliveryForOffices/internal/calendar"
	"github.com/chuling-hu/EoDeliveryForOffices/internal/domain"
	"github.com/chuling-hu/EoDeliveryForOffices/internal/repo"
	"go.uber.org/zap"
)

// OrderLeadDays is the minimum number of days between today and the
// earliest orderable pickup date.
const OrderLeadDays = 1

// StorefrontService is the customer-facing read side: which dates are
// orderable and what is published on them.
type StorefrontService struct {
	menuRepo repo.DailyMenuRepository
	catalog  repo.CatalogRepository
	policy   *calendar.Policy
	clock    calendar.Clock
	logger   *zap.SugaredLogger
}

func NewStorefrontService(
	menuRepo repo.DailyMenuRepository,
	catalog repo.CatalogRepository,
	policy *calendar.Policy,
	clock calendar.Clock,
	logger *zap.SugaredLogger,
) *StorefrontService {
	return &StorefrontService{
		menuRepo: menuRepo,
		catalog:  catalog,
		policy:   policy,
		clock:    clock,
		logger:   logger,
	}
}

// IsDateSelectable reports whether new orders may target the date: strictly
// after today, so today itself and the past are never selectable.
func (s *StorefrontService) IsDateSelectable(date domain.Date) bool {
	earliest := calendar.Today(s.clock).AddDays(OrderLeadDays)
	return !date.Before(earliest)
}

// CanOrderForDate gates checkout. It deliberately does not consult the
// weekend/holiday rule: that rule governs administrative curation, while
// customers may order against whatever menu is published far enough ahead.
func (s *StorefrontService) CanOrderForDate(date domain.Date) bool {
	return s.IsDateSelectable(date)
}

// PublishedItems returns the catalog items selected for the date, in
// catalog order. An empty or absent selection publishes nothing; there is
// no fallback menu.
func (s *StorefrontService) PublishedItems(ctx context.Context, date domain.Date) ([]domain.MenuItem, error) {
	menu, err := s.menuRepo.Get(ctx, date)
	if err != nil {
		return nil, err
	}
	if menu.Empty() {
		return []domain.MenuItem{}, nil
	}

	selected := make(map[string]bool, len(menu.MenuItemIDs))
	for _, id := range menu.MenuItemIDs {
		selected[id] = true
	}

	catalog, err := s.catalog.ListAllMenuItems(ctx)
	if err != nil {
		return nil, err
	}

	published := make([]domain.MenuItem, 0, len(menu.MenuItemIDs))
	for _, item := range catalog {
		if selected[item.ID] {
			published = append(published, item)
		}
	}
	return published, nil
}

// History lists past dates that had a non-empty published menu, newest
// first.
func (s *StorefrontService) History(ctx context.Context) ([]domain.DailyMenu, error) {
	return s.menuRepo.GetAllBefore(ctx, calendar.Today(s.clock))
}

// MonthDay is one cell of the customer date picker.
type MonthDay struct {
	Date         domain.Date `json:"date"`
	Selectable   bool        `json:"selectable"`
	HasItems     bool        `json:"has_items"`
	OrderingOpen bool        `json:"ordering_open"`
}

type MonthView struct {
	Year         int        `json:"year"`
	Month        int        `json:"month"`
	FirstWeekday int        `json:"first_weekday"`
	Days         []MonthDay `json:"days"`
}

// MonthViewFor builds the date-picker view for one month. Ordering-open
// status folds in the overrides persisted with each date's menu.
func (s *StorefrontService) MonthViewFor(ctx context.Context, year int, month time.Month) (*MonthView, error) {
	dates, firstWeekday := calendar.MonthDates(year, month)

	menus, err := s.menuRepo.GetRange(ctx, dates[0], dates[len(dates)-1])
	if err != nil {
		return nil, err
	}

	byDate := make(map[domain.Date]domain.DailyMenu, len(menus))
	overrides := make(calendar.Overrides)
	for _, m := range menus {
		byDate[m.Date] = m
		if m.Override != nil {
			overrides[m.Date] = *m.Override
		}
	}

	view := &MonthView{
		Year:         year,
		Month:        int(month),
		FirstWeekday: firstWeekday,
		Days:         make([]MonthDay, 0, len(dates)),
	}
	for _, d := range dates {
		menu := byDate[d]
		view.Days = append(view.Days, MonthDay{
			Date:         d,
			Selectable:   s.IsDateSelectable(d),
			HasItems:     len(menu.MenuItemIDs) > 0,
			OrderingOpen: s.policy.IsOrderingOpen(d, overrides),
		})
	}

	return view, nil
}
