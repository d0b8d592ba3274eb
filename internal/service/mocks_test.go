package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/chuling-hu/EoDeliveryForOffices/internal/domain"
	"github.com/chuling-hu/EoDeliveryForOffices/internal/queue"
)

// fixedClock pins "now" for deterministic lead-time checks.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type mockDailyMenuRepo struct {
	mu     sync.Mutex
	menus  map[domain.Date]domain.DailyMenu
	failOn map[domain.Date]error
}

func newMockDailyMenuRepo() *mockDailyMenuRepo {
	return &mockDailyMenuRepo{
		menus:  make(map[domain.Date]domain.DailyMenu),
		failOn: make(map[domain.Date]error),
	}
}

func (m *mockDailyMenuRepo) Get(ctx context.Context, date domain.Date) (*domain.DailyMenu, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	menu, ok := m.menus[date]
	if !ok {
		return nil, nil
	}
	out := menu
	return &out, nil
}

func (m *mockDailyMenuRepo) Set(ctx context.Context, menu *domain.DailyMenu) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err, ok := m.failOn[menu.Date]; ok {
		return err
	}
	menu.UpdatedAt = time.Now()
	m.menus[menu.Date] = *menu
	return nil
}

func (m *mockDailyMenuRepo) GetRange(ctx context.Context, start, end domain.Date) ([]domain.DailyMenu, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []domain.DailyMenu
	for date, menu := range m.menus {
		if !date.Before(start) && !date.After(end) {
			out = append(out, menu)
		}
	}
	return out, nil
}

func (m *mockDailyMenuRepo) GetAllBefore(ctx context.Context, date domain.Date) ([]domain.DailyMenu, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []domain.DailyMenu
	for d, menu := range m.menus {
		if d.Before(date) && len(menu.MenuItemIDs) > 0 {
			out = append(out, menu)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

type mockCatalogRepo struct {
	restaurants []domain.Restaurant
	items       []domain.MenuItem
}

func (m *mockCatalogRepo) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	return m.restaurants, nil
}

func (m *mockCatalogRepo) ListMenuItems(ctx context.Context, restaurantID string) ([]domain.MenuItem, error) {
	var out []domain.MenuItem
	for _, item := range m.items {
		if item.RestaurantID == restaurantID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (m *mockCatalogRepo) ListAllMenuItems(ctx context.Context) ([]domain.MenuItem, error) {
	return m.items, nil
}

type mockOrderRepo struct {
	mu     sync.Mutex
	orders map[string]domain.Order
	ids    []string
}

func newMockOrderRepo() *mockOrderRepo {
	return &mockOrderRepo{orders: make(map[string]domain.Order)}
}

func (m *mockOrderRepo) Create(ctx context.Context, order *domain.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.orders[order.ID] = *order
	m.ids = append(m.ids, order.ID)
	return nil
}

func (m *mockOrderRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	order, ok := m.orders[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := order
	return &out, nil
}

func (m *mockOrderRepo) SetPickedUp(ctx context.Context, id string, pickedUp bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	order, ok := m.orders[id]
	if !ok {
		return domain.ErrNotFound
	}
	order.PickedUp = pickedUp
	m.orders[id] = order
	return nil
}

func (m *mockOrderRepo) ListAll(ctx context.Context) ([]domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]domain.Order, 0, len(m.ids))
	for _, id := range m.ids {
		out = append(out, m.orders[id])
	}
	return out, nil
}

func (m *mockOrderRepo) ListByPickupDate(ctx context.Context, date domain.Date) ([]domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []domain.Order
	for _, id := range m.ids {
		if m.orders[id].PickupDate == date {
			out = append(out, m.orders[id])
		}
	}
	return out, nil
}

type mockAuditRepo struct {
	mu     sync.Mutex
	audits []domain.OrderAudit
}

func (m *mockAuditRepo) Create(ctx context.Context, audit *domain.OrderAudit) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.audits = append(m.audits, *audit)
	return nil
}

func (m *mockAuditRepo) GetByOrderID(ctx context.Context, orderID string, limit int) ([]domain.OrderAudit, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []domain.OrderAudit
	for _, a := range m.audits {
		if a.OrderID == orderID {
			out = append(out, a)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type publishedMessage struct {
	queueName string
	body      []byte
}

type mockBroker struct {
	mu        sync.Mutex
	published []publishedMessage
}

func (m *mockBroker) Publish(ctx context.Context, queueName string, message []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.published = append(m.published, publishedMessage{queueName: queueName, body: message})
	return nil
}

func (m *mockBroker) Subscribe(ctx context.Context, queueName string, handler queue.MessageHandler) error {
	return nil
}

func (m *mockBroker) Close() error { return nil }
