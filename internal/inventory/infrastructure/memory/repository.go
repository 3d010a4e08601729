// Package memory keeps stock records in process memory. It backs the
// STORE_DRIVER=memory mode and the tests.
package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/dmehra2102/shop-backoffice/internal/inventory/application"
	"github.com/dmehra2102/shop-backoffice/internal/inventory/domain"
)

type Repository struct {
	mu      sync.RWMutex
	records map[string]domain.StockRecord
	byPair  map[string]string
	events  []domain.StockEvent
}

func NewRepository() *Repository {
	return &Repository{
		records: make(map[string]domain.StockRecord),
		byPair:  make(map[string]string),
	}
}

func (r *Repository) Create(ctx context.Context, rec domain.StockRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	pair := pairKey(rec.ProductID, rec.LocationID)
	if _, ok := r.byPair[pair]; ok {
		return domain.ErrStockExists
	}
	r.records[rec.ID] = rec
	r.byPair[pair] = rec.ID
	return nil
}

func (r *Repository) Get(ctx context.Context, id string) (domain.StockRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.records[id]
	if !ok {
		return domain.StockRecord{}, fmt.Errorf("stock record %s: %w", id, domain.ErrStockNotFound)
	}
	return rec, nil
}

func (r *Repository) FindByProductLocation(ctx context.Context, productID, locationID string) (domain.StockRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byPair[pairKey(productID, locationID)]
	if !ok {
		return domain.StockRecord{}, fmt.Errorf("product %s at %s: %w", productID, locationID, domain.ErrStockNotFound)
	}
	return r.records[id], nil
}

func (r *Repository) Save(ctx context.Context, rec domain.StockRecord, events []domain.StockEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.records[rec.ID]
	if !ok {
		return fmt.Errorf("stock record %s: %w", rec.ID, domain.ErrStockNotFound)
	}
	if cur.Version != rec.Version-1 {
		return fmt.Errorf("stock record %s at version %d: %w", rec.ID, cur.Version, domain.ErrConcurrentUpdate)
	}
	r.records[rec.ID] = rec
	r.events = append(r.events, events...)
	return nil
}

func (r *Repository) List(ctx context.Context, filter application.ListFilter) ([]domain.StockRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.StockRecord, 0, len(r.records))
	for _, rec := range r.records {
		if filter.LocationID != "" && rec.LocationID != filter.LocationID {
			continue
		}
		if filter.BelowReorderOnly && !rec.IsBelowReorder() {
			continue
		}
		out = append(out, rec)
	}
	slices.SortFunc(out, func(a, b domain.StockRecord) int { return strings.Compare(a.ID, b.ID) })
	return out, nil
}

// Events returns a copy of every event saved so far.
func (r *Repository) Events() []domain.StockEvent {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.events)
}

func pairKey(productID, locationID string) string { return productID + "\x00" + locationID }
