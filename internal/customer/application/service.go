package application

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dmehra2102/shop-backoffice/internal/customer/domain"
)

type Service struct {
	log  *slog.Logger
	repo CustomerRepository
}

func NewService(log *slog.Logger, repo CustomerRepository) *Service {
	return &Service{log: log, repo: repo}
}

// AddOrderTotal records a whole order: a positive amount counts a new
// order, a negative one reverses it.
func (s *Service) AddOrderTotal(ctx context.Context, customerID string, amount decimal.Decimal, ref string) error {
	return s.Apply(ctx, domain.SpendEntry{
		Ref:        ref,
		CustomerID: customerID,
		Amount:     amount,
		Orders:     domain.OrdersFor(amount),
		At:         time.Now().UTC(),
	})
}

// AdjustOrderTotal records a change to the total of an order already
// counted.
func (s *Service) AdjustOrderTotal(ctx context.Context, customerID string, delta decimal.Decimal, ref string) error {
	return s.Apply(ctx, domain.SpendEntry{
		Ref:        ref,
		CustomerID: customerID,
		Amount:     delta,
		At:         time.Now().UTC(),
	})
}

func (s *Service) Apply(ctx context.Context, entry domain.SpendEntry) error {
	if entry.CustomerID == "" || entry.Ref == "" {
		return domain.ErrInvalidEntry
	}
	applied, err := s.repo.ApplySpend(ctx, entry)
	if err != nil {
		return err
	}
	if !applied {
		s.log.Info("spend entry already applied", "ref", entry.Ref, "customer_id", entry.CustomerID)
		return nil
	}
	s.log.Info("customer spend updated", "customer_id", entry.CustomerID, "amount", entry.Amount.String(), "ref", entry.Ref)
	return nil
}

func (s *Service) Get(ctx context.Context, id string) (domain.Customer, error) {
	return s.repo.Get(ctx, id)
}
