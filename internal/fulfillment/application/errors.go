package application

import (
	"errors"
	"fmt"

	"github.com/dmehra2102/shop-backoffice/pkg/apperr"
)

var ErrDuplicateRequest = apperr.Conflict("duplicate_request", "a request with this idempotency key is still being processed")

// LineError ties a failure to the request line that caused it.
type LineError struct {
	Index     int
	ProductID string
	Err       error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d (product %s): %v", e.Index, e.ProductID, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

func (e *LineError) Details() map[string]any {
	d := map[string]any{"line": e.Index, "product_id": e.ProductID}
	var inner interface{ Details() map[string]any }
	if errors.As(e.Err, &inner) {
		for k, v := range inner.Details() {
			d[k] = v
		}
	}
	return d
}
