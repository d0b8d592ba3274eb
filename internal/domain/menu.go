package domain

import (
	"time"
)

// Restaurant owns zero or more menu items. Read-only to the scheduler;
// restaurant CRUD lives in the admin surface.
type Restaurant struct {
	ID          string    `bson:"_id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description" json:"description"`
	Phone       string    `bson:"phone" json:"phone"`
	Address     string    `bson:"address" json:"address"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

type MenuItem struct {
	ID           string  `bson:"_id" json:"id"`
	RestaurantID string  `bson:"restaurant_id" json:"restaurant_id"`
	Name         string  `bson:"name" json:"name"`
	Description  string  `bson:"description" json:"description"`
	Price        float64 `bson:"price" json:"price"`
	ImageURL     string  `bson:"image_url,omitempty" json:"image_url,omitempty"`
}

// DailyMenu is the set of menu items published for one calendar date.
// One document per date; created implicitly on first save and only ever
// overwritten, never deleted. An absent document reads the same as an
// empty selection.
type DailyMenu struct {
	Date        Date             `bson:"_id" json:"date"`
	MenuItemIDs []string         `bson:"menu_item_ids" json:"menu_item_ids"`
	Override    *WeekendOverride `bson:"override,omitempty" json:"override,omitempty"`
	UpdatedAt   time.Time        `bson:"updated_at" json:"updated_at"`
}

// HasItem reports membership of id in the selection set.
func (m *DailyMenu) HasItem(id string) bool {
	if m == nil {
		return false
	}
	for _, v := range m.MenuItemIDs {
		if v == id {
			return true
		}
	}
	return false
}

// Empty reports whether the selection set holds no items. Absent documents
// and empty documents are equivalent on read.
func (m *DailyMenu) Empty() bool {
	return m == nil || len(m.MenuItemIDs) == 0
}

// WeekendOverride opens ordering on an otherwise-closed weekend date.
// A non-blank justification is mandatory while enabled. Persisted inside
// the DailyMenu document so it survives reloads.
type WeekendOverride struct {
	Enabled bool   `bson:"enabled" json:"enabled"`
	Reason  string `bson:"reason" json:"reason"`
}
