package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmehra2102/shop-backoffice/internal/order/domain"
	"github.com/dmehra2102/shop-backoffice/pkg/outbox"
)

type Repository struct {
	log  *slog.Logger
	pool *pgxpool.Pool
}

func NewRepository(log *slog.Logger, pool *pgxpool.Pool) *Repository {
	return &Repository{log: log, pool: pool}
}

func (r *Repository) Create(ctx context.Context, o *domain.Order, events ...domain.Event) error {
	return r.write(ctx, o, events, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `INSERT INTO orders (id, customer_id, location_id, status, subtotal, tax_rate, tax, total, idempotency_key, version, created_at, updated_at)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
			o.ID, nullable(o.CustomerID), o.LocationID, o.Status.String(), o.Subtotal, o.TaxRate, o.Tax, o.Total,
			nullable(o.IdempotencyKey), o.Version, o.CreatedAt, o.UpdatedAt)
		return err
	})
}

func (r *Repository) Save(ctx context.Context, o *domain.Order, events ...domain.Event) error {
	return r.write(ctx, o, events, func(tx pgx.Tx) error {
		ct, err := tx.Exec(ctx, `UPDATE orders SET status=$2, subtotal=$3, tax=$4, total=$5, version=$6, updated_at=$7
			WHERE id=$1 AND version=$8`,
			o.ID, o.Status.String(), o.Subtotal, o.Tax, o.Total, o.Version, o.UpdatedAt, o.Version-1)
		if err != nil {
			return err
		}
		if ct.RowsAffected() == 0 {
			return fmt.Errorf("order %s: %w", o.ID, domain.ErrConcurrentWrite)
		}
		_, err = tx.Exec(ctx, `DELETE FROM order_lines WHERE order_id=$1`, o.ID)
		return err
	})
}

// write runs header in a transaction followed by the line rows and the
// outbox rows for events.
func (r *Repository) write(ctx context.Context, o *domain.Order, events []domain.Event, header func(pgx.Tx) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if err := header(tx); err != nil {
		return err
	}

	batch := &pgx.Batch{}
	for i, l := range o.Lines {
		batch.Queue(`INSERT INTO order_lines (id, order_id, position, product_id, stock_record_id, name, quantity, unit_price)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
			l.ID, o.ID, i, l.ProductID, l.StockRecordID, l.Name, l.Quantity, l.UnitPrice)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return err
	}

	for _, ev := range events {
		row, err := outbox.NewEvent(ctx, "order", o.ID, ev)
		if err != nil {
			return err
		}
		if err := outbox.Insert(ctx, tx, row); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *Repository) Get(ctx context.Context, id string) (*domain.Order, error) {
	var (
		o              domain.Order
		status         string
		customerID     *string
		idempotencyKey *string
	)
	err := r.pool.QueryRow(ctx, `SELECT id, customer_id, location_id, status, subtotal, tax_rate, tax, total, idempotency_key, version, created_at, updated_at
		FROM orders WHERE id=$1`, id).
		Scan(&o.ID, &customerID, &o.LocationID, &status, &o.Subtotal, &o.TaxRate, &o.Tax, &o.Total, &idempotencyKey, &o.Version, &o.CreatedAt, &o.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("order %s: %w", id, domain.ErrOrderNotFound)
	}
	if err != nil {
		return nil, err
	}
	if o.Status, err = domain.ParseStatus(status); err != nil {
		return nil, err
	}
	if customerID != nil {
		o.CustomerID = *customerID
	}
	if idempotencyKey != nil {
		o.IdempotencyKey = *idempotencyKey
	}

	rows, err := r.pool.Query(ctx, `SELECT id, product_id, stock_record_id, name, quantity, unit_price
		FROM order_lines WHERE order_id=$1 ORDER BY position`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var l domain.Line
		if err := rows.Scan(&l.ID, &l.ProductID, &l.StockRecordID, &l.Name, &l.Quantity, &l.UnitPrice); err != nil {
			return nil, err
		}
		o.Lines = append(o.Lines, l)
	}
	return &o, rows.Err()
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
