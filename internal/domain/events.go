package domain

import "time"

// OrderEvent is published to the order-events queue on every order mutation.
// The audit worker consumes it and writes an OrderAudit record.
type OrderEvent struct {
	EventType  string    `json:"event_type"`
	OrderID    string    `json:"order_id"`
	PickupDate Date      `json:"pickup_date"`
	Total      float64   `json:"total"`
	PickedUp   bool      `json:"picked_up"`
	Detail     string    `json:"detail,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

const (
	EventOrderCreated        = "order.created"
	EventOrderPickedUp       = "order.picked_up"
	EventOrderPickupReverted = "order.pickup_reverted"
)
