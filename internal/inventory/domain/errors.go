package domain

import (
	"fmt"

	"github.com/dmehra2102/shop-backoffice/pkg/apperr"
)

var (
	ErrInvalidArgument       = apperr.Validation("invalid_argument", "invalid argument")
	ErrStockNotFound         = apperr.NotFound("stock_not_found", "stock record not found")
	ErrStockExists           = apperr.Conflict("stock_exists", "stock record already exists for product and location")
	ErrInsufficientStock     = apperr.Conflict("insufficient_stock", "insufficient stock")
	ErrInsufficientAvailable = apperr.Conflict("insufficient_available", "insufficient available stock")
	ErrOverRelease           = apperr.Conflict("over_release", "release exceeds reserved quantity")
	ErrConcurrentUpdate      = apperr.Conflict("concurrent_update", "stock record was modified concurrently")
)

// StockError carries the figures a caller needs to explain a rejected
// stock operation.
type StockError struct {
	Op        string
	RecordID  string
	ProductID string
	Requested int64
	OnHand    int64
	Reserved  int64
	Err       error
}

func (e *StockError) Error() string {
	return fmt.Sprintf("%s %s: %s for product %s: requested %d, on hand %d, reserved %d, available %d",
		e.Op, e.RecordID, e.Err, e.ProductID, e.Requested, e.OnHand, e.Reserved, e.OnHand-e.Reserved)
}

func (e *StockError) Unwrap() error { return e.Err }

// Available is the quantity that could have been promised when the
// operation was rejected.
func (e *StockError) Available() int64 { return e.OnHand - e.Reserved }

// Details is the machine readable view of the rejection, used in API
// error bodies.
func (e *StockError) Details() map[string]any {
	return map[string]any{
		"record_id":  e.RecordID,
		"product_id": e.ProductID,
		"requested":  e.Requested,
		"on_hand":    e.OnHand,
		"reserved":   e.Reserved,
		"available":  e.Available(),
	}
}
