package repo

import (
	"context"

	"github.com/chuling-hu/EoDeliveryForOffices/internal/domain"
)

// CatalogRepository is the read-only restaurant/menu-item catalog the
// scheduler consumes. Item order is insertion order.
type CatalogRepository interface {
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	ListMenuItems(ctx context.Context, restaurantID string) ([]domain.MenuItem, error)
	ListAllMenuItems(ctx context.Context) ([]domain.MenuItem, error)
}
