package domain

import (
	"fmt"
	"time"
)

// StockRecord holds the counters for one product at one location.
// The invariant 0 <= Reserved <= OnHand holds after every method; a method
// that would break it returns an error and leaves the record untouched.
type StockRecord struct {
	ID               string
	ProductID        string
	LocationID       string
	OnHand           int64
	Reserved         int64
	ReorderThreshold int64
	Version          int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func NewStockRecord(id, productID, locationID string, onHand, reorderThreshold int64) (StockRecord, error) {
	if productID == "" || locationID == "" {
		return StockRecord{}, fmt.Errorf("product and location are required: %w", ErrInvalidArgument)
	}
	if onHand < 0 || reorderThreshold < 0 {
		return StockRecord{}, fmt.Errorf("quantities cannot be negative: %w", ErrInvalidArgument)
	}
	now := time.Now().UTC()
	return StockRecord{
		ID:               id,
		ProductID:        productID,
		LocationID:       locationID,
		OnHand:           onHand,
		ReorderThreshold: reorderThreshold,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

func (s *StockRecord) Available() int64 { return s.OnHand - s.Reserved }

func (s *StockRecord) IsInStock() bool { return s.OnHand > 0 }

func (s *StockRecord) IsBelowReorder() bool { return s.OnHand <= s.ReorderThreshold }

func (s *StockRecord) AddOnHand(amount int64) error {
	if err := s.positive("add_on_hand", amount); err != nil {
		return err
	}
	s.OnHand += amount
	return nil
}

// RemoveOnHand takes physical units out. Units held by reservations cannot
// be removed, so the check is against Available rather than OnHand; with
// nothing reserved the two are equal.
func (s *StockRecord) RemoveOnHand(amount int64) error {
	if err := s.positive("remove_on_hand", amount); err != nil {
		return err
	}
	if err := s.CanRemove(amount); err != nil {
		return err
	}
	s.OnHand -= amount
	return nil
}

// CanRemove reports whether RemoveOnHand(amount) would succeed.
func (s *StockRecord) CanRemove(amount int64) error {
	if amount > s.Available() {
		return s.fail("remove_on_hand", amount, ErrInsufficientStock)
	}
	return nil
}

func (s *StockRecord) Reserve(amount int64) error {
	if err := s.positive("reserve", amount); err != nil {
		return err
	}
	if amount > s.Available() {
		return s.fail("reserve", amount, ErrInsufficientAvailable)
	}
	s.Reserved += amount
	return nil
}

func (s *StockRecord) Release(amount int64) error {
	if err := s.positive("release", amount); err != nil {
		return err
	}
	if amount > s.Reserved {
		return s.fail("release", amount, ErrOverRelease)
	}
	s.Reserved -= amount
	return nil
}

// Consume turns reserved units into a sale: they leave both the reserved
// and the on-hand count.
func (s *StockRecord) Consume(amount int64) error {
	if err := s.positive("consume", amount); err != nil {
		return err
	}
	if amount > s.Reserved {
		return s.fail("consume", amount, ErrOverRelease)
	}
	s.Reserved -= amount
	s.OnHand -= amount
	return nil
}

// SetOnHand overrides the physical count, e.g. after a stock take. It is
// rejected below the reserved quantity.
func (s *StockRecord) SetOnHand(amount int64) error {
	if amount < 0 {
		return s.fail("set_on_hand", amount, ErrInvalidArgument)
	}
	if amount < s.Reserved {
		return s.fail("set_on_hand", amount, ErrInsufficientStock)
	}
	s.OnHand = amount
	return nil
}

func (s *StockRecord) SetReorderThreshold(amount int64) error {
	if amount < 0 {
		return s.fail("set_reorder_threshold", amount, ErrInvalidArgument)
	}
	s.ReorderThreshold = amount
	return nil
}

func (s *StockRecord) positive(op string, amount int64) error {
	if amount <= 0 {
		return s.fail(op, amount, ErrInvalidArgument)
	}
	return nil
}

func (s *StockRecord) fail(op string, amount int64, err error) error {
	return &StockError{
		Op:        op,
		RecordID:  s.ID,
		ProductID: s.ProductID,
		Requested: amount,
		OnHand:    s.OnHand,
		Reserved:  s.Reserved,
		Err:       err,
	}
}
