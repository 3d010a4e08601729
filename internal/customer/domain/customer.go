package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dmehra2102/shop-backoffice/pkg/apperr"
)

var (
	ErrCustomerNotFound = apperr.NotFound("customer_not_found", "customer not found")
	ErrInvalidEntry     = apperr.Validation("invalid_spend_entry", "spend entry needs a customer and a reference")
)

type Customer struct {
	ID            string
	LifetimeSpend decimal.Decimal
	OrderCount    int64
	UpdatedAt     time.Time
}

// SpendEntry changes a customer's lifetime spend. Ref identifies the
// business fact behind it (e.g. "order:<id>:created") and makes applying the
// same entry twice a no-op. Negative amounts reverse an earlier entry.
// Orders is how the entry moves the order count: 1 for a new order, -1 for
// a cancelled one, 0 for a change to an existing order.
type SpendEntry struct {
	Ref        string          `json:"ref"`
	CustomerID string          `json:"customer_id"`
	Amount     decimal.Decimal `json:"amount"`
	Orders     int64           `json:"orders"`
	At         time.Time       `json:"at"`
}

// OrdersFor is the order count delta of a whole order total: positive
// totals add an order, negative ones take it back.
func OrdersFor(amount decimal.Decimal) int64 {
	return int64(amount.Sign())
}
