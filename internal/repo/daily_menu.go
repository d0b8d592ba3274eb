package repo

import (
	"context"

	"github.com/chuling-hu/EoDeliveryForOffices/internal/domain"
)

// DailyMenuRepository is the per-date menu availability store. There is no
// delete: a date is cleared by overwriting it with an empty selection.
type DailyMenuRepository interface {
	// Get returns (nil, nil) when no document exists for the date; callers
	// read that as an empty selection.
	Get(ctx context.Context, date domain.Date) (*domain.DailyMenu, error)
	// Set upserts the full document for menu.Date and stamps UpdatedAt.
	Set(ctx context.Context, menu *domain.DailyMenu) error
	// GetRange returns documents with start <= date <= end, in no
	// guaranteed order.
	GetRange(ctx context.Context, start, end domain.Date) ([]domain.DailyMenu, error)
	// GetAllBefore returns documents strictly before date that hold a
	// non-empty selection, newest first.
	GetAllBefore(ctx context.Context, date domain.Date) ([]domain.DailyMenu, error)
}
