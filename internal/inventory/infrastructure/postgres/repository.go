package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmehra2102/shop-backoffice/internal/inventory/application"
	"github.com/dmehra2102/shop-backoffice/internal/inventory/domain"
	"github.com/dmehra2102/shop-backoffice/pkg/outbox"
)

const uniqueViolation = "23505"

type Repository struct {
	log  *slog.Logger
	pool *pgxpool.Pool
}

func NewRepository(log *slog.Logger, pool *pgxpool.Pool) *Repository {
	return &Repository{
		log:  log,
		pool: pool,
	}
}

const selectStock = `SELECT id, product_id, location_id, on_hand, reserved, reorder_threshold, version, created_at, updated_at FROM stock_records`

func (r *Repository) Create(ctx context.Context, rec domain.StockRecord) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO stock_records (id, product_id, location_id, on_hand, reserved, reorder_threshold, version, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		rec.ID, rec.ProductID, rec.LocationID, rec.OnHand, rec.Reserved, rec.ReorderThreshold, rec.Version, rec.CreatedAt, rec.UpdatedAt)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return domain.ErrStockExists
	}
	return err
}

func (r *Repository) Get(ctx context.Context, id string) (domain.StockRecord, error) {
	rec, err := scanStock(r.pool.QueryRow(ctx, selectStock+` WHERE id=$1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.StockRecord{}, fmt.Errorf("stock record %s: %w", id, domain.ErrStockNotFound)
	}
	return rec, err
}

func (r *Repository) FindByProductLocation(ctx context.Context, productID, locationID string) (domain.StockRecord, error) {
	rec, err := scanStock(r.pool.QueryRow(ctx, selectStock+` WHERE product_id=$1 AND location_id=$2`, productID, locationID))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.StockRecord{}, fmt.Errorf("product %s at %s: %w", productID, locationID, domain.ErrStockNotFound)
	}
	return rec, err
}

// Save writes rec and its events in one transaction. The CHECK constraints
// on stock_records repeat the domain invariant as a last line of defence.
func (r *Repository) Save(ctx context.Context, rec domain.StockRecord, events []domain.StockEvent) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	ct, err := tx.Exec(ctx, `UPDATE stock_records
		SET on_hand=$2, reserved=$3, reorder_threshold=$4, version=$5, updated_at=$6
		WHERE id=$1 AND version=$7`,
		rec.ID, rec.OnHand, rec.Reserved, rec.ReorderThreshold, rec.Version, rec.UpdatedAt, rec.Version-1)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("stock record %s: %w", rec.ID, domain.ErrConcurrentUpdate)
	}

	for _, ev := range events {
		row, err := outbox.NewEvent(ctx, "stock", rec.ID, ev)
		if err != nil {
			return err
		}
		if err := outbox.Insert(ctx, tx, row); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *Repository) List(ctx context.Context, filter application.ListFilter) ([]domain.StockRecord, error) {
	rows, err := r.pool.Query(ctx, selectStock+`
		WHERE ($1 = '' OR location_id = $1)
		  AND (NOT $2 OR on_hand <= reorder_threshold)
		ORDER BY id`, filter.LocationID, filter.BelowReorderOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.StockRecord
	for rows.Next() {
		rec, err := scanStock(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func scanStock(row pgx.Row) (domain.StockRecord, error) {
	var rec domain.StockRecord
	err := row.Scan(&rec.ID, &rec.ProductID, &rec.LocationID, &rec.OnHand, &rec.Reserved, &rec.ReorderThreshold, &rec.Version, &rec.CreatedAt, &rec.UpdatedAt)
	return rec, err
}
