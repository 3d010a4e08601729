package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmehra2102/shop-backoffice/internal/customer/domain"
)

type Repository struct {
	log  *slog.Logger
	pool *pgxpool.Pool
}

func NewRepository(log *slog.Logger, pool *pgxpool.Pool) *Repository {
	return &Repository{log: log, pool: pool}
}

func (r *Repository) ApplySpend(ctx context.Context, entry domain.SpendEntry) (bool, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return false, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	ct, err := tx.Exec(ctx, `INSERT INTO customer_ledger_entries (ref, customer_id, amount, created_at)
		VALUES ($1,$2,$3,$4) ON CONFLICT (ref) DO NOTHING`,
		entry.Ref, entry.CustomerID, entry.Amount, entry.At)
	if err != nil {
		return false, err
	}
	if ct.RowsAffected() == 0 {
		return false, nil
	}

	_, err = tx.Exec(ctx, `INSERT INTO customers (id, lifetime_spend, order_count, updated_at)
		VALUES ($1,$2,$3,$4)
		ON CONFLICT (id) DO UPDATE SET lifetime_spend = customers.lifetime_spend + $2,
			order_count = customers.order_count + $3, updated_at = $4`,
		entry.CustomerID, entry.Amount, entry.Orders, entry.At)
	if err != nil {
		return false, err
	}
	return true, tx.Commit(ctx)
}

func (r *Repository) Get(ctx context.Context, id string) (domain.Customer, error) {
	var c domain.Customer
	err := r.pool.QueryRow(ctx, `SELECT id, lifetime_spend, order_count, updated_at FROM customers WHERE id=$1`, id).
		Scan(&c.ID, &c.LifetimeSpend, &c.OrderCount, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Customer{}, fmt.Errorf("customer %s: %w", id, domain.ErrCustomerNotFound)
	}
	return c, err
}
