package application_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmehra2102/shop-backoffice/internal/customer/application"
	"github.com/dmehra2102/shop-backoffice/internal/customer/domain"
	"github.com/dmehra2102/shop-backoffice/internal/customer/infrastructure/memory"
)

func setup(t *testing.T) *application.Service {
	t.Helper()
	return application.NewService(slog.New(slog.NewTextHandler(io.Discard, nil)), memory.NewRepository())
}

func TestAddOrderTotalAccumulates(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	require.NoError(t, svc.AddOrderTotal(ctx, "c-1", decimal.RequireFromString("30.00"), "order:o-1:created"))
	require.NoError(t, svc.AddOrderTotal(ctx, "c-1", decimal.RequireFromString("12.50"), "order:o-2:created"))

	c, err := svc.Get(ctx, "c-1")
	require.NoError(t, err)
	assert.True(t, c.LifetimeSpend.Equal(decimal.RequireFromString("42.50")))
	assert.Equal(t, int64(2), c.OrderCount)
}

func TestAddOrderTotalIsIdempotentPerRef(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	require.NoError(t, svc.AddOrderTotal(ctx, "c-1", decimal.RequireFromString("30.00"), "order:o-1:created"))
	require.NoError(t, svc.AddOrderTotal(ctx, "c-1", decimal.RequireFromString("30.00"), "order:o-1:created"))
	require.NoError(t, svc.AddOrderTotal(ctx, "c-1", decimal.RequireFromString("-30.00"), "order:o-1:cancelled"))

	c, err := svc.Get(ctx, "c-1")
	require.NoError(t, err)
	assert.True(t, c.LifetimeSpend.IsZero())
	assert.Equal(t, int64(0), c.OrderCount)
}

func TestAddOrderTotalValidation(t *testing.T) {
	svc := setup(t)

	err := svc.AddOrderTotal(context.Background(), "", decimal.NewFromInt(1), "ref")
	assert.ErrorIs(t, err, domain.ErrInvalidEntry)

	_, err = svc.Get(context.Background(), "nobody")
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}

func TestAdjustOrderTotalKeepsOrderCount(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	require.NoError(t, svc.AddOrderTotal(ctx, "c-1", decimal.RequireFromString("10.00"), "order:o-1:created"))
	require.NoError(t, svc.AdjustOrderTotal(ctx, "c-1", decimal.RequireFromString("5.00"), "order:o-1:v2"))
	require.NoError(t, svc.AdjustOrderTotal(ctx, "c-1", decimal.RequireFromString("5.00"), "order:o-1:v2"))
	require.NoError(t, svc.AdjustOrderTotal(ctx, "c-1", decimal.RequireFromString("-2.50"), "order:o-1:v3"))

	c, err := svc.Get(ctx, "c-1")
	require.NoError(t, err)
	assert.Equal(t, "12.5", c.LifetimeSpend.String())
	assert.Equal(t, int64(1), c.OrderCount)
}
