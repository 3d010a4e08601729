package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/dmehra2102/shop-backoffice/internal/order/domain"
)

type Repository struct {
	mu     sync.RWMutex
	orders map[string]domain.Order
	events []domain.Event
}

func NewRepository() *Repository {
	return &Repository{orders: make(map[string]domain.Order)}
}

func (r *Repository) Create(ctx context.Context, o *domain.Order, events ...domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[o.ID]; ok {
		return fmt.Errorf("order %s already exists: %w", o.ID, domain.ErrConcurrentWrite)
	}
	r.orders[o.ID] = clone(o)
	r.events = append(r.events, events...)
	return nil
}

func (r *Repository) Get(ctx context.Context, id string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, fmt.Errorf("order %s: %w", id, domain.ErrOrderNotFound)
	}
	c := clone(&o)
	return &c, nil
}

func (r *Repository) Save(ctx context.Context, o *domain.Order, events ...domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.orders[o.ID]
	if !ok {
		return fmt.Errorf("order %s: %w", o.ID, domain.ErrOrderNotFound)
	}
	if cur.Version != o.Version-1 {
		return fmt.Errorf("order %s at version %d: %w", o.ID, cur.Version, domain.ErrConcurrentWrite)
	}
	r.orders[o.ID] = clone(o)
	r.events = append(r.events, events...)
	return nil
}

func (r *Repository) Events() []domain.Event {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.events)
}

func clone(o *domain.Order) domain.Order {
	c := *o
	c.Lines = slices.Clone(o.Lines)
	return c
}
