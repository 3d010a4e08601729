package application

import (
	"context"

	"github.com/dmehra2102/shop-backoffice/internal/customer/domain"
)

type CustomerRepository interface {
	// ApplySpend records entry and updates the customer's totals in one
	// step. applied is false when an entry with the same Ref already exists.
	ApplySpend(ctx context.Context, entry domain.SpendEntry) (applied bool, err error)
	Get(ctx context.Context, id string) (domain.Customer, error)
}
