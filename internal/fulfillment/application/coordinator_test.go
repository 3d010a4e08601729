package application_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogdomain "github.com/dmehra2102/shop-backoffice/internal/catalog/domain"
	catalogmem "github.com/dmehra2102/shop-backoffice/internal/catalog/infrastructure/memory"
	customerapp "github.com/dmehra2102/shop-backoffice/internal/customer/application"
	customermem "github.com/dmehra2102/shop-backoffice/internal/customer/infrastructure/memory"
	"github.com/dmehra2102/shop-backoffice/internal/fulfillment/application"
	invapp "github.com/dmehra2102/shop-backoffice/internal/inventory/application"
	invdomain "github.com/dmehra2102/shop-backoffice/internal/inventory/domain"
	invmem "github.com/dmehra2102/shop-backoffice/internal/inventory/infrastructure/memory"
	orderdomain "github.com/dmehra2102/shop-backoffice/internal/order/domain"
	ordermem "github.com/dmehra2102/shop-backoffice/internal/order/infrastructure/memory"
	"github.com/dmehra2102/shop-backoffice/pkg/idempotency"
)

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

type failingOrders struct {
	*ordermem.Repository
	failCreate bool
	failSave   bool
}

func (r *failingOrders) Create(ctx context.Context, o *orderdomain.Order, events ...orderdomain.Event) error {
	if r.failCreate {
		return errors.New("connection reset")
	}
	return r.Repository.Create(ctx, o, events...)
}

func (r *failingOrders) Save(ctx context.Context, o *orderdomain.Order, events ...orderdomain.Event) error {
	if r.failSave {
		return errors.New("connection reset")
	}
	return r.Repository.Save(ctx, o, events...)
}

type brokenCustomers struct{ calls int }

func (b *brokenCustomers) AddOrderTotal(context.Context, string, decimal.Decimal, string) error {
	b.calls++
	return errors.New("broker unavailable")
}

func (b *brokenCustomers) AdjustOrderTotal(context.Context, string, decimal.Decimal, string) error {
	b.calls++
	return errors.New("broker unavailable")
}

type fixture struct {
	ledger    *invapp.Ledger
	orders    *failingOrders
	customers *customerapp.Service
	coord     *application.Coordinator
	records   map[string]invdomain.StockRecord
}

func newFixture(t *testing.T, opts ...application.Option) *fixture {
	t.Helper()
	ctx := context.Background()
	ledger := invapp.NewLedger(discard(), invmem.NewRepository())
	catalog := catalogmem.NewCatalog(
		catalogdomain.Product{ID: "widget", SKU: "W-1", Name: "Widget", Price: decimal.RequireFromString("10.00"), Active: true},
		catalogdomain.Product{ID: "gadget", SKU: "G-1", Name: "Gadget", Price: decimal.RequireFromString("2.50"), Active: true},
		catalogdomain.Product{ID: "retired", SKU: "R-1", Name: "Retired", Price: decimal.RequireFromString("1.00"), Active: false},
	)
	records := make(map[string]invdomain.StockRecord)
	for _, seed := range []struct {
		product string
		onHand  int64
	}{{"widget", 5}, {"gadget", 3}, {"retired", 9}} {
		rec, err := ledger.Create(ctx, seed.product, "store-1", seed.onHand, 1)
		require.NoError(t, err)
		records[seed.product] = rec
	}
	orders := &failingOrders{Repository: ordermem.NewRepository()}
	customers := customerapp.NewService(discard(), customermem.NewRepository())
	coord := application.NewCoordinator(discard(), ledger, orders, catalog, customers, opts...)
	return &fixture{ledger: ledger, orders: orders, customers: customers, coord: coord, records: records}
}

func (f *fixture) onHand(t *testing.T, product string) int64 {
	t.Helper()
	rec, err := f.ledger.Get(context.Background(), f.records[product].ID)
	require.NoError(t, err)
	return rec.OnHand
}

func TestCreateOrderDebitsStockAndPricesFromCatalog(t *testing.T) {
	f := newFixture(t, application.WithTaxRate(decimal.RequireFromString("0.0825")))
	ctx := context.Background()

	o, err := f.coord.CreateOrder(ctx, application.CreateOrderRequest{
		LocationID: "store-1",
		CustomerID: "cust-1",
		Lines: []application.LineRequest{
			{ProductID: "widget", Quantity: 2},
			{ProductID: "gadget", Quantity: 3},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, orderdomain.StatusPending, o.Status)
	assert.Equal(t, "27.5", o.Subtotal.String())
	assert.Equal(t, "2.27", o.Tax.String())
	assert.Equal(t, "29.77", o.Total.String())
	assert.Equal(t, int64(3), f.onHand(t, "widget"))
	assert.Equal(t, int64(0), f.onHand(t, "gadget"))

	c, err := f.customers.Get(ctx, "cust-1")
	require.NoError(t, err)
	assert.Equal(t, "29.77", c.LifetimeSpend.String())

	require.Len(t, f.orders.Events(), 1)
	assert.Equal(t, "OrderCreated", f.orders.Events()[0].EventType())
}

func TestCreateOrderPriceOverride(t *testing.T) {
	f := newFixture(t)
	price := decimal.RequireFromString("7.25")
	o, err := f.coord.CreateOrder(context.Background(), application.CreateOrderRequest{
		LocationID: "store-1",
		Lines:      []application.LineRequest{{ProductID: "widget", Quantity: 2, UnitPrice: &price}},
	})
	require.NoError(t, err)
	assert.Equal(t, "14.5", o.Total.String())
}

func TestCreateOrderInsufficientStockLeavesEverythingUntouched(t *testing.T) {
	f := newFixture(t)
	_, err := f.coord.CreateOrder(context.Background(), application.CreateOrderRequest{
		LocationID: "store-1",
		Lines: []application.LineRequest{
			{ProductID: "widget", Quantity: 2},
			{ProductID: "gadget", Quantity: 4},
		},
	})
	require.ErrorIs(t, err, invdomain.ErrInsufficientStock)

	var lineErr *application.LineError
	require.ErrorAs(t, err, &lineErr)
	assert.Equal(t, 1, lineErr.Index)
	assert.Equal(t, "gadget", lineErr.ProductID)

	var stockErr *invdomain.StockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, int64(3), stockErr.Available())

	assert.Equal(t, int64(5), f.onHand(t, "widget"))
	assert.Equal(t, int64(3), f.onHand(t, "gadget"))
	assert.Empty(t, f.orders.Events())
}

func TestCreateOrderRejectsBadRequests(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.coord.CreateOrder(ctx, application.CreateOrderRequest{LocationID: "store-1"})
	assert.ErrorIs(t, err, orderdomain.ErrEmptyOrder)

	_, err = f.coord.CreateOrder(ctx, application.CreateOrderRequest{
		LocationID: "store-1",
		Lines:      []application.LineRequest{{ProductID: "widget", Quantity: 0}},
	})
	assert.ErrorIs(t, err, orderdomain.ErrInvalidArgument)

	_, err = f.coord.CreateOrder(ctx, application.CreateOrderRequest{
		LocationID: "store-1",
		Lines:      []application.LineRequest{{ProductID: "missing", Quantity: 1}},
	})
	assert.ErrorIs(t, err, catalogdomain.ErrProductNotFound)

	_, err = f.coord.CreateOrder(ctx, application.CreateOrderRequest{
		LocationID: "store-1",
		Lines:      []application.LineRequest{{ProductID: "retired", Quantity: 1}},
	})
	assert.ErrorIs(t, err, catalogdomain.ErrProductInactive)

	_, err = f.coord.CreateOrder(ctx, application.CreateOrderRequest{
		LocationID: "store-2",
		Lines:      []application.LineRequest{{ProductID: "widget", Quantity: 1}},
	})
	assert.ErrorIs(t, err, invdomain.ErrStockNotFound)

	assert.Equal(t, int64(5), f.onHand(t, "widget"))
}

func TestConcurrentOrdersForLastUnit(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.ledger.SetOnHand(ctx, f.records["widget"].ID, 1, "count")
	require.NoError(t, err)

	const n = 20
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.coord.CreateOrder(ctx, application.CreateOrderRequest{
				LocationID: "store-1",
				Lines:      []application.LineRequest{{ProductID: "widget", Quantity: 1}},
			})
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
				return
			}
			assert.ErrorIs(t, err, invdomain.ErrInsufficientStock)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, int64(0), f.onHand(t, "widget"))
}

func TestCreateOrderRollsBackStockWhenPersistFails(t *testing.T) {
	f := newFixture(t)
	f.orders.failCreate = true

	_, err := f.coord.CreateOrder(context.Background(), application.CreateOrderRequest{
		LocationID: "store-1",
		Lines: []application.LineRequest{
			{ProductID: "widget", Quantity: 2},
			{ProductID: "gadget", Quantity: 1},
		},
	})
	require.Error(t, err)
	assert.Equal(t, int64(5), f.onHand(t, "widget"))
	assert.Equal(t, int64(3), f.onHand(t, "gadget"))
}

func TestCustomerNotificationFailureIsNotFatal(t *testing.T) {
	f := newFixture(t)
	broken := &brokenCustomers{}
	coord := application.NewCoordinator(discard(), f.ledger, f.orders, catalogmem.NewCatalog(
		catalogdomain.Product{ID: "widget", Name: "Widget", Price: decimal.NewFromInt(1), Active: true},
	), broken)

	o, err := coord.CreateOrder(context.Background(), application.CreateOrderRequest{
		LocationID: "store-1",
		CustomerID: "cust-1",
		Lines:      []application.LineRequest{{ProductID: "widget", Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, broken.calls)
	assert.Equal(t, int64(4), f.onHand(t, "widget"))

	_, err = f.orders.Get(context.Background(), o.ID)
	assert.NoError(t, err)
}

func TestCreateOrderIdempotencyKeyReplays(t *testing.T) {
	idem := idempotency.NewMemoryStore(16, time.Hour)
	f := newFixture(t, application.WithIdempotency(idem))
	ctx := context.Background()
	req := application.CreateOrderRequest{
		LocationID:     "store-1",
		IdempotencyKey: "req-42",
		Lines:          []application.LineRequest{{ProductID: "widget", Quantity: 2}},
	}

	first, err := f.coord.CreateOrder(ctx, req)
	require.NoError(t, err)
	second, err := f.coord.CreateOrder(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, int64(3), f.onHand(t, "widget"))
}

func TestCreateOrderIdempotencyKeyReleasedOnFailure(t *testing.T) {
	idem := idempotency.NewMemoryStore(16, time.Hour)
	f := newFixture(t, application.WithIdempotency(idem))
	ctx := context.Background()
	req := application.CreateOrderRequest{
		LocationID:     "store-1",
		IdempotencyKey: "req-43",
		Lines:          []application.LineRequest{{ProductID: "widget", Quantity: 6}},
	}

	_, err := f.coord.CreateOrder(ctx, req)
	require.ErrorIs(t, err, invdomain.ErrInsufficientStock)

	req.Lines[0].Quantity = 5
	o, err := f.coord.CreateOrder(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, int64(5), o.Lines[0].Quantity)
}

func TestCreateOrderInFlightKeyIsConflict(t *testing.T) {
	idem := idempotency.NewMemoryStore(16, time.Hour)
	_, claimed, err := idem.Claim(context.Background(), "create-order", "req-44")
	require.NoError(t, err)
	require.True(t, claimed)
	f := newFixture(t, application.WithIdempotency(idem))

	_, err = f.coord.CreateOrder(context.Background(), application.CreateOrderRequest{
		LocationID:     "store-1",
		IdempotencyKey: "req-44",
		Lines:          []application.LineRequest{{ProductID: "widget", Quantity: 1}},
	})
	assert.ErrorIs(t, err, application.ErrDuplicateRequest)
}

func TestCancelOrderRestoresStockOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	o, err := f.coord.CreateOrder(ctx, application.CreateOrderRequest{
		LocationID: "store-1",
		CustomerID: "cust-1",
		Lines:      []application.LineRequest{{ProductID: "widget", Quantity: 3}},
	})
	require.NoError(t, err)
	require.Equal(t, int64(2), f.onHand(t, "widget"))

	cancelled, err := f.coord.CancelOrder(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, orderdomain.StatusCancelled, cancelled.Status)
	assert.Equal(t, int64(5), f.onHand(t, "widget"))

	_, err = f.coord.CancelOrder(ctx, o.ID)
	assert.ErrorIs(t, err, orderdomain.ErrInvalidState)
	assert.Equal(t, int64(5), f.onHand(t, "widget"))

	c, err := f.customers.Get(ctx, "cust-1")
	require.NoError(t, err)
	assert.True(t, c.LifetimeSpend.IsZero())
}

func TestCancelOrderKeepsStockWhenPersistFails(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	o, err := f.coord.CreateOrder(ctx, application.CreateOrderRequest{
		LocationID: "store-1",
		Lines:      []application.LineRequest{{ProductID: "widget", Quantity: 3}},
	})
	require.NoError(t, err)

	f.orders.failSave = true
	_, err = f.coord.CancelOrder(ctx, o.ID)
	require.Error(t, err)
	assert.Equal(t, int64(2), f.onHand(t, "widget"))

	stored, err := f.orders.Get(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, orderdomain.StatusPending, stored.Status)
}

func TestCompletedOrderCannotBeCancelled(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	o, err := f.coord.CreateOrder(ctx, application.CreateOrderRequest{
		LocationID: "store-1",
		Lines:      []application.LineRequest{{ProductID: "widget", Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = f.coord.CompleteOrder(ctx, o.ID)
	require.NoError(t, err)

	_, err = f.coord.CancelOrder(ctx, o.ID)
	assert.ErrorIs(t, err, orderdomain.ErrInvalidState)
	assert.Equal(t, int64(4), f.onHand(t, "widget"))

	_, err = f.coord.CompleteOrder(ctx, "nope")
	assert.ErrorIs(t, err, orderdomain.ErrOrderNotFound)
}

func TestAddLineAndAdjustQuantityMoveStock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	o, err := f.coord.CreateOrder(ctx, application.CreateOrderRequest{
		LocationID: "store-1",
		Lines:      []application.LineRequest{{ProductID: "widget", Quantity: 1}},
	})
	require.NoError(t, err)

	o, err = f.coord.AddLine(ctx, o.ID, application.LineRequest{ProductID: "gadget", Quantity: 2})
	require.NoError(t, err)
	require.Len(t, o.Lines, 2)
	assert.Equal(t, int64(1), f.onHand(t, "gadget"))
	assert.Equal(t, "15", o.Total.String())

	lineID := o.Lines[0].ID
	o, err = f.coord.AdjustLineQuantity(ctx, o.ID, lineID, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(1), f.onHand(t, "widget"))
	assert.Equal(t, "45", o.Total.String())

	_, err = f.coord.AdjustLineQuantity(ctx, o.ID, lineID, 9)
	require.ErrorIs(t, err, invdomain.ErrInsufficientStock)
	assert.Equal(t, int64(1), f.onHand(t, "widget"))

	o, err = f.coord.AdjustLineQuantity(ctx, o.ID, lineID, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), f.onHand(t, "widget"))

	_, err = f.coord.AdjustLineQuantity(ctx, o.ID, "missing", 2)
	assert.ErrorIs(t, err, orderdomain.ErrLineNotFound)

	_, err = f.coord.CancelOrder(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(5), f.onHand(t, "widget"))
	assert.Equal(t, int64(3), f.onHand(t, "gadget"))

	_, err = f.coord.AddLine(ctx, o.ID, application.LineRequest{ProductID: "gadget", Quantity: 1})
	assert.ErrorIs(t, err, orderdomain.ErrInvalidState)
}

func TestLineChangesFollowCustomerSpend(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	o, err := f.coord.CreateOrder(ctx, application.CreateOrderRequest{
		LocationID: "store-1",
		CustomerID: "cust-7",
		Lines:      []application.LineRequest{{ProductID: "widget", Quantity: 1}},
	})
	require.NoError(t, err)

	o, err = f.coord.AddLine(ctx, o.ID, application.LineRequest{ProductID: "gadget", Quantity: 2})
	require.NoError(t, err)
	o, err = f.coord.AdjustLineQuantity(ctx, o.ID, o.Lines[0].ID, 3)
	require.NoError(t, err)

	c, err := f.customers.Get(ctx, "cust-7")
	require.NoError(t, err)
	assert.Equal(t, "35", c.LifetimeSpend.String())
	assert.Equal(t, int64(1), c.OrderCount)

	_, err = f.coord.CancelOrder(ctx, o.ID)
	require.NoError(t, err)
	c, err = f.customers.Get(ctx, "cust-7")
	require.NoError(t, err)
	assert.True(t, c.LifetimeSpend.IsZero())
	assert.Equal(t, int64(0), c.OrderCount)
}
