package application

import (
	"context"

	"github.com/dmehra2102/shop-backoffice/internal/inventory/domain"
)

// ListFilter narrows List. Zero values match everything.
type ListFilter struct {
	LocationID       string
	BelowReorderOnly bool
}

// StockRepository persists stock records. Save must fail with
// domain.ErrConcurrentUpdate unless the stored version is rec.Version-1, and
// must write events in the same transaction as the record.
type StockRepository interface {
	Create(ctx context.Context, rec domain.StockRecord) error
	Get(ctx context.Context, id string) (domain.StockRecord, error)
	FindByProductLocation(ctx context.Context, productID, locationID string) (domain.StockRecord, error)
	Save(ctx context.Context, rec domain.StockRecord, events []domain.StockEvent) error
	List(ctx context.Context, filter ListFilter) ([]domain.StockRecord, error)
}
