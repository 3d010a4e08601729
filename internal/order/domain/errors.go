package domain

import "github.com/dmehra2102/shop-backoffice/pkg/apperr"

var (
	ErrInvalidArgument = apperr.Validation("invalid_argument", "invalid argument")
	ErrInvalidState    = apperr.Conflict("invalid_state", "order is not in a state that allows this operation")
	ErrOrderNotFound   = apperr.NotFound("order_not_found", "order not found")
	ErrLineNotFound    = apperr.NotFound("line_not_found", "order line not found")
	ErrEmptyOrder      = apperr.Validation("empty_order", "order must have at least one line")
	ErrConcurrentWrite = apperr.Conflict("concurrent_update", "order was modified concurrently")
)
