package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock event direction.
const (
	DirectionIn  = "IN"
	DirectionOut = "OUT"
)

// StockEvent is one append-only movement of stock. Events are never mutated;
// a correction is a new event, and deletion removes the row wholesale by
// identity without inserting a compensating entry.
type StockEvent struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Item      string    `json:"item" gorm:"size:128;not null;index:idx_stock_events_key,priority:1"`
	Type      string    `json:"type" gorm:"size:256;index:idx_stock_events_key,priority:2"`
	Brand     string    `json:"brand" gorm:"size:128;index:idx_stock_events_key,priority:3"`
	Direction string    `json:"direction" gorm:"size:4;not null"`
	Quantity  float64   `json:"quantity" gorm:"type:decimal(12,4);not null"`
	// Rate is the monetary rate per unit. It is carried through for the
	// purchase records but never consulted by the balance computation.
	Rate      decimal.Decimal `json:"rate" gorm:"type:decimal(12,2)"`
	CreatedAt time.Time       `json:"created_at"`
}

func (StockEvent) TableName() string {
	return "stock_events"
}

// Key returns the event's normalized stock identity.
func (e StockEvent) Key() StockKey {
	return NewStockKey(e.Item, e.Type, e.Brand)
}

// Signed returns the event's contribution to a balance: positive for IN,
// negative for OUT.
func (e StockEvent) Signed() float64 {
	if e.Direction == DirectionOut {
		return -e.Quantity
	}
	return e.Quantity
}
