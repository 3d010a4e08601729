package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Event interface {
	EventType() string
}

type EventLine struct {
	LineID    string          `json:"line_id"`
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type OrderCreated struct {
	OrderID    string          `json:"order_id"`
	CustomerID string          `json:"customer_id,omitempty"`
	LocationID string          `json:"location_id"`
	Lines      []EventLine     `json:"lines"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	Tax        decimal.Decimal `json:"tax"`
	Total      decimal.Decimal `json:"total"`
	At         time.Time       `json:"at"`
}

func (OrderCreated) EventType() string { return "OrderCreated" }

type OrderLineChanged struct {
	OrderID     string          `json:"order_id"`
	LineID      string          `json:"line_id"`
	ProductID   string          `json:"product_id"`
	OldQuantity int64           `json:"old_quantity"`
	NewQuantity int64           `json:"new_quantity"`
	Total       decimal.Decimal `json:"total"`
	At          time.Time       `json:"at"`
}

func (OrderLineChanged) EventType() string { return "OrderLineChanged" }

type OrderCompleted struct {
	OrderID string          `json:"order_id"`
	Total   decimal.Decimal `json:"total"`
	At      time.Time       `json:"at"`
}

func (OrderCompleted) EventType() string { return "OrderCompleted" }

type OrderCancelled struct {
	OrderID string          `json:"order_id"`
	Total   decimal.Decimal `json:"total"`
	At      time.Time       `json:"at"`
}

func (OrderCancelled) EventType() string { return "OrderCancelled" }

func NewOrderCreated(o *Order) OrderCreated {
	lines := make([]EventLine, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, EventLine{LineID: l.ID, ProductID: l.ProductID, Quantity: l.Quantity, UnitPrice: l.UnitPrice})
	}
	return OrderCreated{
		OrderID:    o.ID,
		CustomerID: o.CustomerID,
		LocationID: o.LocationID,
		Lines:      lines,
		Subtotal:   o.Subtotal,
		Tax:        o.Tax,
		Total:      o.Total,
		At:         o.CreatedAt,
	}
}
