package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/chuling-hu/EoDeliveryForOffices/internal/calendar"
	"github.com/chuling-hu/EoDeliveryForOffices/internal/domain"
	"github.com/chuling-hu/EoDeliveryForOffices/internal/queue"
	"github.com/chuling-hu/EoDeliveryForOffices/internal/repo"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderService struct {
	orderRepo repo.OrderRepository
	auditRepo repo.OrderAuditRepository
	broker    queue.Broker
	clock     calendar.Clock
	logger    *zap.SugaredLogger
}

func NewOrderService(
	orderRepo repo.OrderRepository,
	auditRepo repo.OrderAuditRepository,
	broker queue.Broker,
	clock calendar.Clock,
	logger *zap.SugaredLogger,
) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		auditRepo: auditRepo,
		broker:    broker,
		clock:     clock,
		logger:    logger,
	}
}

type CreateOrderInput struct {
	CustomerName  string
	Phone         string
	Office        string
	PickupDate    domain.Date
	Lines         []domain.OrderLine
	DeclaredTotal float64
}

// CreateOrder validates the input, recomputes the total from the line
// snapshots, and persists the order. The client's declared total is checked
// against the recomputed one and rejected on mismatch; it is never stored
// as-is.
func (s *OrderService) CreateOrder(ctx context.Context, in CreateOrderInput) (*domain.Order, error) {
	if strings.TrimSpace(in.CustomerName) == "" {
		return nil, domain.NewValidationError("customer name must not be empty")
	}
	if len(in.Lines) == 0 {
		return nil, domain.NewValidationError("order must contain at least one line")
	}
	for i, line := range in.Lines {
		if line.MenuItemID == "" {
			return nil, domain.NewValidationError("line %d: menu item id must not be empty", i)
		}
		if line.Quantity < 1 {
			return nil, domain.NewValidationError("line %d: quantity must be at least 1", i)
		}
		if line.Price < 0 {
			return nil, domain.NewValidationError("line %d: price must not be negative", i)
		}
	}

	earliest := calendar.Today(s.clock).AddDays(OrderLeadDays)
	if in.PickupDate.Before(earliest) {
		return nil, domain.NewValidationError("pickup date %s must be at least %d day(s) ahead", in.PickupDate, OrderLeadDays)
	}

	order := &domain.Order{
		ID:           uuid.NewString(),
		CustomerName: in.CustomerName,
		Phone:        in.Phone,
		Office:       in.Office,
		Lines:        in.Lines,
		PickupDate:   in.PickupDate,
		CreatedAt:    s.clock.Now(),
	}
	order.Total = order.LinesTotal()

	if math.Abs(order.Total-in.DeclaredTotal) > 1e-6 {
		return nil, domain.NewValidationError("declared total %.2f does not match computed total %.2f", in.DeclaredTotal, order.Total)
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Infow("order created", "order_id", order.ID, "pickup_date", order.PickupDate, "total", order.Total)

	s.publishEvent(ctx, domain.OrderEvent{
		EventType:  domain.EventOrderCreated,
		OrderID:    order.ID,
		PickupDate: order.PickupDate,
		Total:      order.Total,
		Timestamp:  s.clock.Now(),
	})

	return order, nil
}

// SetPickedUp flips the pickup flag, leaving every other field untouched.
func (s *OrderService) SetPickedUp(ctx context.Context, orderID string, pickedUp bool) (*domain.Order, error) {
	if err := s.orderRepo.SetPickedUp(ctx, orderID, pickedUp); err != nil {
		return nil, err
	}

	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	eventType := domain.EventOrderPickedUp
	if !pickedUp {
		eventType = domain.EventOrderPickupReverted
	}
	s.publishEvent(ctx, domain.OrderEvent{
		EventType:  eventType,
		OrderID:    order.ID,
		PickupDate: order.PickupDate,
		Total:      order.Total,
		PickedUp:   pickedUp,
		Timestamp:  s.clock.Now(),
	})

	return order, nil
}

// FindByID backs the QR-scan pickup flow.
func (s *OrderService) FindByID(ctx context.Context, orderID string) (*domain.Order, error) {
	return s.orderRepo.GetByID(ctx, orderID)
}

func (s *OrderService) ListAll(ctx context.Context) ([]domain.Order, error) {
	return s.orderRepo.ListAll(ctx)
}

func (s *OrderService) ListForDate(ctx context.Context, date domain.Date) ([]domain.Order, error) {
	return s.orderRepo.ListByPickupDate(ctx, date)
}

// publishEvent ships an audit event to the queue. The order is already
// committed at this point, so a broker failure is logged rather than
// surfaced.
func (s *OrderService) publishEvent(ctx context.Context, event domain.OrderEvent) {
	body, err := json.Marshal(event)
	if err != nil {
		s.logger.Errorw("failed to marshal order event", "order_id", event.OrderID, "error", err)
		return
	}

	if err := s.broker.Publish(ctx, queue.QueueOrderEvents, body); err != nil {
		s.logger.Errorw("failed to publish order event", "order_id", event.OrderID, "event_type", event.EventType, "error", err)
	}
}

// ProcessOrderEvent writes the audit record for one consumed event. Called
// by the order-events worker.
func (s *OrderService) ProcessOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	audit := &domain.OrderAudit{
		OrderID:    event.OrderID,
		EventType:  event.EventType,
		PickupDate: event.PickupDate,
		Total:      event.Total,
		PickedUp:   event.PickedUp,
		Detail:     event.Detail,
		Timestamp:  event.Timestamp,
	}

	if err := s.auditRepo.Create(ctx, audit); err != nil {
		return fmt.Errorf("failed to create order audit: %w", err)
	}

	s.logger.Infow("order audit created", "order_id", event.OrderID, "event_type", event.EventType)
	return nil
}

// GetOrderAudit returns the newest audit records for an order.
func (s *OrderService) GetOrderAudit(ctx context.Context, orderID string, limit int) ([]domain.OrderAudit, error) {
	return s.auditRepo.GetByOrderID(ctx, orderID, limit)
}
