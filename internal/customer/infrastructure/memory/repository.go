package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmehra2102/shop-backoffice/internal/customer/domain"
)

type Repository struct {
	mu        sync.Mutex
	customers map[string]domain.Customer
	refs      map[string]struct{}
}

func NewRepository() *Repository {
	return &Repository{
		customers: make(map[string]domain.Customer),
		refs:      make(map[string]struct{}),
	}
}

func (r *Repository) ApplySpend(ctx context.Context, entry domain.SpendEntry) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.refs[entry.Ref]; ok {
		return false, nil
	}
	r.refs[entry.Ref] = struct{}{}

	c := r.customers[entry.CustomerID]
	c.ID = entry.CustomerID
	c.LifetimeSpend = c.LifetimeSpend.Add(entry.Amount)
	c.OrderCount += entry.Orders
	c.UpdatedAt = entry.At
	r.customers[entry.CustomerID] = c
	return true, nil
}

func (r *Repository) Get(ctx context.Context, id string) (domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.customers[id]
	if !ok {
		return domain.Customer{}, fmt.Errorf("customer %s: %w", id, domain.ErrCustomerNotFound)
	}
	return c, nil
}
