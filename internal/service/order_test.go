package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/chuling-hu/EoDeliveryForOffices/internal/domain"
	"github.com/chuling-hu/EoDeliveryForOffices/internal/queue"
	"go.uber.org/zap"
)

func newTestOrderService() (*OrderService, *mockOrderRepo, *mockAuditRepo, *mockBroker) {
	orderRepo := newMockOrderRepo()
	auditRepo := &mockAuditRepo{}
	broker := &mockBroker{}
	svc := NewOrderService(orderRepo, auditRepo, broker, monday2026(), zap.NewNop().Sugar())
	return svc, orderRepo, auditRepo, broker
}

func validOrderInput() CreateOrderInput {
	return CreateOrderInput{
		CustomerName: "Wei-Ting Chen",
		Phone:        "0912345678",
		Office:       "7F",
		PickupDate:   "2026-03-10",
		Lines: []domain.OrderLine{
			{MenuItemID: "a1", Name: "Pork Bento", Price: 50, Quantity: 2},
			{MenuItemID: "b2", Name: "Wonton Soup", Price: 30, Quantity: 1},
		},
		DeclaredTotal: 130,
	}
}

func TestCreateOrder(t *testing.T) {
	svc, orderRepo, _, broker := newTestOrderService()

	order, err := svc.CreateOrder(context.Background(), validOrderInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if order.ID == "" {
		t.Error("expected a generated order ID")
	}
	if order.Total != 130 {
		t.Errorf("expected total 130, got %v", order.Total)
	}
	if order.PickedUp {
		t.Error("new order must not be picked up")
	}

	stored, err := orderRepo.GetByID(context.Background(), order.ID)
	if err != nil {
		t.Fatalf("expected order persisted: %v", err)
	}
	if stored.CustomerName != "Wei-Ting Chen" {
		t.Errorf("unexpected customer name %q", stored.CustomerName)
	}

	if len(broker.published) != 1 {
		t.Fatalf("expected 1 published event, got %d", len(broker.published))
	}
	msg := broker.published[0]
	if msg.queueName != queue.QueueOrderEvents {
		t.Errorf("expected queue %q, got %q", queue.QueueOrderEvents, msg.queueName)
	}
	var event domain.OrderEvent
	if err := json.Unmarshal(msg.body, &event); err != nil {
		t.Fatalf("failed to unmarshal event: %v", err)
	}
	if event.EventType != domain.EventOrderCreated || event.OrderID != order.ID {
		t.Errorf("unexpected event %+v", event)
	}
}

func TestCreateOrder_Validation(t *testing.T) {
	svc, _, _, broker := newTestOrderService()

	tests := []struct {
		name   string
		mutate func(*CreateOrderInput)
	}{
		{"blank customer name", func(in *CreateOrderInput) { in.CustomerName = "  " }},
		{"no lines", func(in *CreateOrderInput) { in.Lines = nil }},
		{"zero quantity", func(in *CreateOrderInput) { in.Lines[0].Quantity = 0 }},
		{"negative price", func(in *CreateOrderInput) { in.Lines[0].Price = -1 }},
		{"missing item id", func(in *CreateOrderInput) { in.Lines[0].MenuItemID = "" }},
		{"pickup today", func(in *CreateOrderInput) { in.PickupDate = "2026-03-09" }},
		{"pickup in the past", func(in *CreateOrderInput) { in.PickupDate = "2026-03-01" }},
		{"total mismatch", func(in *CreateOrderInput) { in.DeclaredTotal = 129 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := validOrderInput()
			tc.mutate(&in)

			_, err := svc.CreateOrder(context.Background(), in)
			if !domain.IsValidationError(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}

	if len(broker.published) != 0 {
		t.Errorf("rejected orders must not publish events, got %d", len(broker.published))
	}
}

func TestSetPickedUp(t *testing.T) {
	svc, _, _, broker := newTestOrderService()

	order, err := svc.CreateOrder(context.Background(), validOrderInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := svc.SetPickedUp(context.Background(), order.ID, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !updated.PickedUp {
		t.Error("expected picked_up set")
	}
	if updated.Total != order.Total || updated.CustomerName != order.CustomerName {
		t.Error("pickup must not change other fields")
	}

	reverted, err := svc.SetPickedUp(context.Background(), order.ID, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reverted.PickedUp {
		t.Error("expected picked_up cleared")
	}

	// created + picked_up + pickup_reverted
	if len(broker.published) != 3 {
		t.Fatalf("expected 3 events, got %d", len(broker.published))
	}
	var last domain.OrderEvent
	if err := json.Unmarshal(broker.published[2].body, &last); err != nil {
		t.Fatalf("failed to unmarshal event: %v", err)
	}
	if last.EventType != domain.EventOrderPickupReverted {
		t.Errorf("expected pickup_reverted, got %s", last.EventType)
	}
}

func TestSetPickedUp_NotFound(t *testing.T) {
	svc, _, _, _ := newTestOrderService()

	_, err := svc.SetPickedUp(context.Background(), "missing", true)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListForDate(t *testing.T) {
	svc, _, _, _ := newTestOrderService()

	first := validOrderInput()
	second := validOrderInput()
	second.PickupDate = "2026-03-11"
	if _, err := svc.CreateOrder(context.Background(), first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.CreateOrder(context.Background(), second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	orders, err := svc.ListForDate(context.Background(), "2026-03-11")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 1 || orders[0].PickupDate != "2026-03-11" {
		t.Fatalf("expected exactly the 2026-03-11 order, got %v", orders)
	}

	all, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(all))
	}
}

func TestProcessOrderEvent(t *testing.T) {
	svc, _, auditRepo, _ := newTestOrderService()

	event := domain.OrderEvent{
		EventType:  domain.EventOrderPickedUp,
		OrderID:    "o-1",
		PickupDate: "2026-03-10",
		Total:      130,
		PickedUp:   true,
	}
	if err := svc.ProcessOrderEvent(context.Background(), event); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	audits, err := svc.GetOrderAudit(context.Background(), "o-1", 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(audits) != 1 {
		t.Fatalf("expected 1 audit record, got %d", len(audits))
	}
	if audits[0].EventType != domain.EventOrderPickedUp || !audits[0].PickedUp {
		t.Errorf("unexpected audit record %+v", audits[0])
	}

	if len(auditRepo.audits) != 1 {
		t.Errorf("expected audit persisted once, got %d", len(auditRepo.audits))
	}
}
