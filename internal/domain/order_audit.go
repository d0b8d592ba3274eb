package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderAudit is the persisted trail of order lifecycle events, written by
// the audit worker from consumed OrderEvents.
type OrderAudit struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrderID    string             `bson:"order_id" json:"order_id"`
	EventType  string             `bson:"event_type" json:"event_type"`
	PickupDate Date               `bson:"pickup_date" json:"pickup_date"`
	Total      float64            `bson:"total" json:"total"`
	PickedUp   bool               `bson:"picked_up" json:"picked_up"`
	Detail     string             `bson:"detail,omitempty" json:"detail,omitempty"`
	Timestamp  time.Time          `bson:"timestamp" json:"timestamp"`
}
