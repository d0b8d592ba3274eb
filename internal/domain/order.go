package domain

import "time"

// Order is a customer pickup order. Line name and price are captured at
// order time as a snapshot, not a live reference into the catalog.
type Order struct {
	ID           string      `bson:"_id" json:"id"`
	CustomerName string      `bson:"customer_name" json:"customer_name"`
	Phone        string      `bson:"phone" json:"phone"`
	Office       string      `bson:"office" json:"office"`
	Lines        []OrderLine `bson:"lines" json:"lines"`
	Total        float64     `bson:"total" json:"total"`
	PickupDate   Date        `bson:"pickup_date" json:"pickup_date"`
	PickedUp     bool        `bson:"picked_up" json:"picked_up"`
	CreatedAt    time.Time   `bson:"created_at" json:"created_at"`
}

type OrderLine struct {
	MenuItemID string  `bson:"menu_item_id" json:"menu_item_id"`
	Name       string  `bson:"name" json:"name"`
	Price      float64 `bson:"price" json:"price"`
	Quantity   int     `bson:"quantity" json:"quantity"`
}

// Subtotal is price times quantity for one line.
func (l OrderLine) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}

// LinesTotal sums the line subtotals. Order.Total must always equal it.
func (o *Order) LinesTotal() float64 {
	var sum float64
	for _, l := range o.Lines {
		sum += l.Subtotal()
	}
	return sum
}
