package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	catalogdomain "github.com/dmehra2102/shop-backoffice/internal/catalog/domain"
	"github.com/dmehra2102/shop-backoffice/internal/fulfillment/domain"
	invapp "github.com/dmehra2102/shop-backoffice/internal/inventory/application"
	invdomain "github.com/dmehra2102/shop-backoffice/internal/inventory/domain"
	orderdomain "github.com/dmehra2102/shop-backoffice/internal/order/domain"
	"github.com/dmehra2102/shop-backoffice/pkg/idempotency"
	"github.com/dmehra2102/shop-backoffice/pkg/keylock"
)

const createOrderScope = "create-order"

type LineRequest struct {
	ProductID string
	Quantity  int64
	// UnitPrice overrides the catalog price when set.
	UnitPrice *decimal.Decimal
}

type CreateOrderRequest struct {
	LocationID     string
	CustomerID     string
	IdempotencyKey string
	Lines          []LineRequest
}

// Coordinator keeps orders and stock records consistent. Each operation
// is a saga: stock is changed first through the ledger, then the order is
// written, and a failed write reverses the stock change.
type Coordinator struct {
	log       *slog.Logger
	stock     StockLedger
	orders    OrderRepository
	catalog   Catalog
	customers CustomerLedger
	idem      IdempotencyStore
	taxRate   decimal.Decimal
	locks     *keylock.Locker
	tracer    trace.Tracer
}

type Option func(*Coordinator)

func WithIdempotency(store IdempotencyStore) Option {
	return func(c *Coordinator) { c.idem = store }
}

func WithTaxRate(rate decimal.Decimal) Option {
	return func(c *Coordinator) { c.taxRate = rate }
}

func NewCoordinator(log *slog.Logger, stock StockLedger, orders OrderRepository, catalog Catalog, customers CustomerLedger, opts ...Option) *Coordinator {
	c := &Coordinator{
		log:       log,
		stock:     stock,
		orders:    orders,
		catalog:   catalog,
		customers: customers,
		taxRate:   decimal.Zero,
		locks:     keylock.New(),
		tracer:    otel.Tracer("fulfillment-coordinator"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Coordinator) GetOrder(ctx context.Context, id string) (*orderdomain.Order, error) {
	return c.orders.Get(ctx, id)
}

func (c *Coordinator) CreateOrder(ctx context.Context, req CreateOrderRequest) (_ *orderdomain.Order, err error) {
	ctx, span := c.tracer.Start(ctx, "CreateOrder")
	defer span.End()
	defer recordErr(span, &err)
	span.SetAttributes(
		attribute.String("order.location_id", req.LocationID),
		attribute.Int("order.lines", len(req.Lines)),
	)

	if err := validateRequest(req); err != nil {
		return nil, err
	}

	if req.IdempotencyKey != "" && c.idem != nil {
		ref, claimed, cerr := c.idem.Claim(ctx, createOrderScope, req.IdempotencyKey)
		switch {
		case errors.Is(cerr, idempotency.ErrInFlight):
			return nil, ErrDuplicateRequest
		case cerr != nil:
			return nil, fmt.Errorf("claim idempotency key: %w", cerr)
		case !claimed:
			c.log.Info("create order replayed", "idempotency_key", req.IdempotencyKey, "order_id", ref)
			return c.orders.Get(ctx, ref)
		}
		defer func() {
			if err == nil {
				return
			}
			if ferr := c.idem.Forget(context.WithoutCancel(ctx), createOrderScope, req.IdempotencyKey); ferr != nil {
				c.log.Error("idempotency key release failed", "idempotency_key", req.IdempotencyKey, "err", ferr)
			}
		}()
	}

	lines := make([]orderdomain.Line, 0, len(req.Lines))
	for i, lr := range req.Lines {
		line, err := c.resolveLine(ctx, req.LocationID, lr)
		if err != nil {
			return nil, &LineError{Index: i, ProductID: lr.ProductID, Err: err}
		}
		lines = append(lines, line)
	}

	o, err := orderdomain.NewOrder(uuid.NewString(), req.CustomerID, req.LocationID, c.taxRate, lines)
	if err != nil {
		return nil, err
	}
	o.IdempotencyKey = req.IdempotencyKey
	o.Version = 1
	span.SetAttributes(attribute.String("order.id", o.ID))

	debits, credits := adjustments(o.Quantities())
	saga := domain.NewSaga("create order " + o.ID)
	err = saga.Run(ctx,
		domain.Step{
			Name: "debit stock",
			Do: func(ctx context.Context) error {
				_, err := c.stock.Apply(ctx, "order "+o.ID, debits)
				return err
			},
			Undo: func(ctx context.Context) error {
				_, err := c.stock.Apply(ctx, "rollback order "+o.ID, credits)
				return err
			},
		},
		domain.Step{
			Name: "persist order",
			Do: func(ctx context.Context) error {
				return c.orders.Create(ctx, o, orderdomain.NewOrderCreated(o))
			},
		},
	)
	if err != nil {
		c.log.Warn("create order failed", "order_id", o.ID, "saga_state", saga.State, "err", err)
		return nil, attributeToLine(err, o, req)
	}

	if req.IdempotencyKey != "" && c.idem != nil {
		if rerr := c.idem.Resolve(ctx, createOrderScope, req.IdempotencyKey, o.ID); rerr != nil {
			c.log.Error("idempotency key resolve failed", "idempotency_key", req.IdempotencyKey, "err", rerr)
		}
	}

	c.log.Info("order created", "order_id", o.ID, "location_id", o.LocationID, "total", o.Total.String())
	c.notifyCustomer(ctx, o.CustomerID, o.Total, "order:"+o.ID+":created", c.addOrderTotal)
	return o, nil
}

func (c *Coordinator) CancelOrder(ctx context.Context, id string) (_ *orderdomain.Order, err error) {
	ctx, span := c.tracer.Start(ctx, "CancelOrder", trace.WithAttributes(attribute.String("order.id", id)))
	defer span.End()
	defer recordErr(span, &err)

	o, err := c.withOrder(ctx, id, func(o *orderdomain.Order) error {
		if !o.Status.CanTransition(orderdomain.StatusCancelled) {
			return fmt.Errorf("order %s is %s: %w", o.ID, o.Status, orderdomain.ErrInvalidState)
		}
		// credits first so stock is restored before cancelled is visible
		debits, credits := adjustments(o.Quantities())
		saga := domain.NewSaga("cancel order " + o.ID)
		return saga.Run(ctx,
			domain.Step{
				Name: "credit stock",
				Do: func(ctx context.Context) error {
					_, err := c.stock.Apply(ctx, "cancel order "+o.ID, credits)
					return err
				},
				Undo: func(ctx context.Context) error {
					_, err := c.stock.Apply(ctx, "rollback cancel "+o.ID, debits)
					return err
				},
			},
			domain.Step{
				Name: "persist cancellation",
				Do: func(ctx context.Context) error {
					if err := o.Cancel(); err != nil {
						return err
					}
					o.Version++
					return c.orders.Save(ctx, o, orderdomain.OrderCancelled{OrderID: o.ID, Total: o.Total, At: o.UpdatedAt})
				},
			},
		)
	})
	if err != nil {
		return nil, err
	}

	c.log.Info("order cancelled", "order_id", o.ID)
	c.notifyCustomer(ctx, o.CustomerID, o.Total.Neg(), "order:"+o.ID+":cancelled", c.addOrderTotal)
	return o, nil
}

func (c *Coordinator) CompleteOrder(ctx context.Context, id string) (_ *orderdomain.Order, err error) {
	ctx, span := c.tracer.Start(ctx, "CompleteOrder", trace.WithAttributes(attribute.String("order.id", id)))
	defer span.End()
	defer recordErr(span, &err)

	o, err := c.withOrder(ctx, id, func(o *orderdomain.Order) error {
		if err := o.Complete(); err != nil {
			return err
		}
		o.Version++
		return c.orders.Save(ctx, o, orderdomain.OrderCompleted{OrderID: o.ID, Total: o.Total, At: o.UpdatedAt})
	})
	if err != nil {
		return nil, err
	}
	c.log.Info("order completed", "order_id", o.ID)
	return o, nil
}

// AddLine debits stock for a new line and appends it to a pending order.
func (c *Coordinator) AddLine(ctx context.Context, orderID string, lr LineRequest) (_ *orderdomain.Order, err error) {
	ctx, span := c.tracer.Start(ctx, "AddLine", trace.WithAttributes(attribute.String("order.id", orderID)))
	defer span.End()
	defer recordErr(span, &err)

	if err := validateLine(lr); err != nil {
		return nil, err
	}
	var before decimal.Decimal
	o, err := c.withOrder(ctx, orderID, func(o *orderdomain.Order) error {
		before = o.Total
		if o.Status != orderdomain.StatusPending {
			return fmt.Errorf("add line to %s order %s: %w", o.Status, o.ID, orderdomain.ErrInvalidState)
		}
		line, err := c.resolveLine(ctx, o.LocationID, lr)
		if err != nil {
			return &LineError{Index: len(o.Lines), ProductID: lr.ProductID, Err: err}
		}
		line.ID = uuid.NewString()
		return c.changeStockThenSave(ctx, o, line.StockRecordID, -line.Quantity, func() (orderdomain.Event, error) {
			if err := o.AppendLine(line); err != nil {
				return nil, err
			}
			return orderdomain.OrderLineChanged{
				OrderID: o.ID, LineID: line.ID, ProductID: line.ProductID,
				NewQuantity: line.Quantity, Total: o.Total, At: o.UpdatedAt,
			}, nil
		})
	})
	if err != nil {
		return nil, err
	}
	c.notifyTotalChange(ctx, o, before)
	return o, nil
}

// AdjustLineQuantity changes a line's quantity and moves the difference in
// or out of stock in the same step.
func (c *Coordinator) AdjustLineQuantity(ctx context.Context, orderID, lineID string, quantity int64) (_ *orderdomain.Order, err error) {
	ctx, span := c.tracer.Start(ctx, "AdjustLineQuantity", trace.WithAttributes(
		attribute.String("order.id", orderID),
		attribute.String("order.line_id", lineID),
	))
	defer span.End()
	defer recordErr(span, &err)

	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive: %w", orderdomain.ErrInvalidArgument)
	}
	var before decimal.Decimal
	o, err := c.withOrder(ctx, orderID, func(o *orderdomain.Order) error {
		before = o.Total
		if o.Status != orderdomain.StatusPending {
			return fmt.Errorf("update line on %s order %s: %w", o.Status, o.ID, orderdomain.ErrInvalidState)
		}
		line, ok := o.Line(lineID)
		if !ok {
			return fmt.Errorf("line %s: %w", lineID, orderdomain.ErrLineNotFound)
		}
		delta := quantity - line.Quantity
		if delta == 0 {
			return nil
		}
		return c.changeStockThenSave(ctx, o, line.StockRecordID, -delta, func() (orderdomain.Event, error) {
			if err := o.UpdateItemQuantity(lineID, quantity); err != nil {
				return nil, err
			}
			return orderdomain.OrderLineChanged{
				OrderID: o.ID, LineID: lineID, ProductID: line.ProductID,
				OldQuantity: line.Quantity, NewQuantity: quantity, Total: o.Total, At: o.UpdatedAt,
			}, nil
		})
	})
	if err != nil {
		return nil, err
	}
	c.notifyTotalChange(ctx, o, before)
	return o, nil
}

// changeStockThenSave applies delta to one stock record, then mutates and
// saves the order; a failed save puts the stock back.
func (c *Coordinator) changeStockThenSave(ctx context.Context, o *orderdomain.Order, recordID string, delta int64, mutate func() (orderdomain.Event, error)) error {
	saga := domain.NewSaga("change order " + o.ID)
	return saga.Run(ctx,
		domain.Step{
			Name: "adjust stock",
			Do: func(ctx context.Context) error {
				_, err := c.stock.Apply(ctx, "order "+o.ID, []invapp.Adjustment{{RecordID: recordID, Delta: delta}})
				return err
			},
			Undo: func(ctx context.Context) error {
				_, err := c.stock.Apply(ctx, "rollback order "+o.ID, []invapp.Adjustment{{RecordID: recordID, Delta: -delta}})
				return err
			},
		},
		domain.Step{
			Name: "persist order",
			Do: func(ctx context.Context) error {
				ev, err := mutate()
				if err != nil {
					return err
				}
				o.Version++
				return c.orders.Save(ctx, o, ev)
			},
		},
	)
}

// withOrder loads an order under its lock and runs fn against it. fn's
// error is returned as is; on success the mutated order is returned.
func (c *Coordinator) withOrder(ctx context.Context, id string, fn func(o *orderdomain.Order) error) (*orderdomain.Order, error) {
	unlock := c.locks.Lock("order:" + id)
	defer unlock()

	o, err := c.orders.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(o); err != nil {
		return nil, err
	}
	return o, nil
}

func (c *Coordinator) resolveLine(ctx context.Context, locationID string, lr LineRequest) (orderdomain.Line, error) {
	p, err := c.catalog.GetProduct(ctx, lr.ProductID)
	if err != nil {
		return orderdomain.Line{}, err
	}
	if !p.Active {
		return orderdomain.Line{}, fmt.Errorf("product %s: %w", p.ID, catalogdomain.ErrProductInactive)
	}
	rec, err := c.stock.Lookup(ctx, lr.ProductID, locationID)
	if err != nil {
		return orderdomain.Line{}, err
	}
	price := p.Price
	if lr.UnitPrice != nil {
		price = *lr.UnitPrice
	}
	return orderdomain.Line{
		ProductID:     lr.ProductID,
		StockRecordID: rec.ID,
		Name:          p.Name,
		Quantity:      lr.Quantity,
		UnitPrice:     price,
	}, nil
}

type spendFunc func(ctx context.Context, customerID string, amount decimal.Decimal, ref string) error

func (c *Coordinator) addOrderTotal(ctx context.Context, customerID string, amount decimal.Decimal, ref string) error {
	return c.customers.AddOrderTotal(ctx, customerID, amount, ref)
}

func (c *Coordinator) adjustOrderTotal(ctx context.Context, customerID string, amount decimal.Decimal, ref string) error {
	return c.customers.AdjustOrderTotal(ctx, customerID, amount, ref)
}

// notifyTotalChange reports the spend difference of a line change. The ref
// carries the order version so each change is applied once.
func (c *Coordinator) notifyTotalChange(ctx context.Context, o *orderdomain.Order, before decimal.Decimal) {
	delta := o.Total.Sub(before)
	if delta.IsZero() {
		return
	}
	c.notifyCustomer(ctx, o.CustomerID, delta, fmt.Sprintf("order:%s:v%d", o.ID, o.Version), c.adjustOrderTotal)
}

// notifyCustomer is best effort: the order is already committed and a
// failed notification is only logged.
func (c *Coordinator) notifyCustomer(ctx context.Context, customerID string, amount decimal.Decimal, ref string, send spendFunc) {
	if customerID == "" || c.customers == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := send(ctx, customerID, amount, ref); err != nil {
		c.log.Error("customer ledger notification failed", "customer_id", customerID, "ref", ref, "amount", amount.String(), "err", err)
	}
}

func validateRequest(req CreateOrderRequest) error {
	if req.LocationID == "" {
		return fmt.Errorf("location is required: %w", orderdomain.ErrInvalidArgument)
	}
	if len(req.Lines) == 0 {
		return orderdomain.ErrEmptyOrder
	}
	for i, l := range req.Lines {
		if err := validateLine(l); err != nil {
			return &LineError{Index: i, ProductID: l.ProductID, Err: err}
		}
	}
	return nil
}

func validateLine(l LineRequest) error {
	if l.ProductID == "" {
		return fmt.Errorf("product is required: %w", orderdomain.ErrInvalidArgument)
	}
	if l.Quantity <= 0 {
		return fmt.Errorf("quantity must be positive: %w", orderdomain.ErrInvalidArgument)
	}
	if l.UnitPrice != nil && l.UnitPrice.IsNegative() {
		return fmt.Errorf("unit price cannot be negative: %w", orderdomain.ErrInvalidArgument)
	}
	return nil
}

func adjustments(quantities map[string]int64) (debits, credits []invapp.Adjustment) {
	for id, q := range quantities {
		debits = append(debits, invapp.Adjustment{RecordID: id, Delta: -q})
		credits = append(credits, invapp.Adjustment{RecordID: id, Delta: q})
	}
	return debits, credits
}

// attributeToLine wraps a stock failure in a LineError for the first
// request line drawing on the failing record.
func attributeToLine(err error, o *orderdomain.Order, req CreateOrderRequest) error {
	var se *invdomain.StockError
	if !errors.As(err, &se) {
		return err
	}
	for i, l := range o.Lines {
		if l.StockRecordID == se.RecordID {
			return &LineError{Index: i, ProductID: req.Lines[i].ProductID, Err: err}
		}
	}
	return err
}

func recordErr(span trace.Span, err *error) {
	if *err != nil {
		span.SetStatus(codes.Error, (*err).Error())
	}
}
