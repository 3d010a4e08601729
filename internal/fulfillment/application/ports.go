package application

import (
	"context"

	"github.com/shopspring/decimal"

	catalogdomain "github.com/dmehra2102/shop-backoffice/internal/catalog/domain"
	invapp "github.com/dmehra2102/shop-backoffice/internal/inventory/application"
	invdomain "github.com/dmehra2102/shop-backoffice/internal/inventory/domain"
	orderdomain "github.com/dmehra2102/shop-backoffice/internal/order/domain"
)

type StockLedger interface {
	Lookup(ctx context.Context, productID, locationID string) (invdomain.StockRecord, error)
	Apply(ctx context.Context, reason string, adjustments []invapp.Adjustment) ([]invdomain.StockRecord, error)
}

// OrderRepository persists orders. Save must fail unless the stored
// version is o.Version-1. Events are published through the outbox in the
// same transaction as the order.
type OrderRepository interface {
	Create(ctx context.Context, o *orderdomain.Order, events ...orderdomain.Event) error
	Get(ctx context.Context, id string) (*orderdomain.Order, error)
	Save(ctx context.Context, o *orderdomain.Order, events ...orderdomain.Event) error
}

type Catalog interface {
	GetProduct(ctx context.Context, id string) (catalogdomain.Product, error)
}

// CustomerLedger tracks lifetime spend. AddOrderTotal counts (or with a
// negative amount, uncounts) a whole order; AdjustOrderTotal moves the
// spend of an order already counted.
type CustomerLedger interface {
	AddOrderTotal(ctx context.Context, customerID string, amount decimal.Decimal, ref string) error
	AdjustOrderTotal(ctx context.Context, customerID string, delta decimal.Decimal, ref string) error
}

type IdempotencyStore interface {
	Claim(ctx context.Context, scope, key string) (ref string, claimed bool, err error)
	Resolve(ctx context.Context, scope, key, ref string) error
	Forget(ctx context.Context, scope, key string) error
}
