package repo

import (
	"context"

	"github.com/chuling-hu/EoDeliveryForOffices/internal/domain"
)

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	SetPickedUp(ctx context.Context, id string, pickedUp bool) error
	ListAll(ctx context.Context) ([]domain.Order, error)
	ListByPickupDate(ctx context.Context, date domain.Date) ([]domain.Order, error)
}
