package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/dmehra2102/shop-backoffice/internal/inventory/domain"
	"github.com/dmehra2102/shop-backoffice/pkg/keylock"
)

// Ledger is the only writer of stock records. Every mutation of a record
// runs under that record's lock, so load, check and save never interleave
// with another mutation of the same record inside this process; the
// repository's version check covers other processes.
type Ledger struct {
	log    *slog.Logger
	repo   StockRepository
	locks  *keylock.Locker
	tracer trace.Tracer
}

const compensateTimeout = 10 * time.Second

func NewLedger(log *slog.Logger, repo StockRepository) *Ledger {
	return &Ledger{
		log:    log,
		repo:   repo,
		locks:  keylock.New(),
		tracer: otel.Tracer("inventory-ledger"),
	}
}

func (l *Ledger) Create(ctx context.Context, productID, locationID string, onHand, reorderThreshold int64) (domain.StockRecord, error) {
	rec, err := domain.NewStockRecord(uuid.NewString(), productID, locationID, onHand, reorderThreshold)
	if err != nil {
		return domain.StockRecord{}, err
	}

	unlock := l.locks.Lock("pair:" + productID + "/" + locationID)
	defer unlock()

	_, err = l.repo.FindByProductLocation(ctx, productID, locationID)
	switch {
	case err == nil:
		return domain.StockRecord{}, fmt.Errorf("product %s at %s: %w", productID, locationID, domain.ErrStockExists)
	case !errors.Is(err, domain.ErrStockNotFound):
		return domain.StockRecord{}, err
	}

	rec.Version = 1
	if err := l.repo.Create(ctx, rec); err != nil {
		return domain.StockRecord{}, err
	}
	l.log.Info("stock record created", "record_id", rec.ID, "product_id", productID, "location_id", locationID, "on_hand", onHand)
	return rec, nil
}

func (l *Ledger) Get(ctx context.Context, id string) (domain.StockRecord, error) {
	return l.repo.Get(ctx, id)
}

func (l *Ledger) Lookup(ctx context.Context, productID, locationID string) (domain.StockRecord, error) {
	return l.repo.FindByProductLocation(ctx, productID, locationID)
}

func (l *Ledger) List(ctx context.Context, filter ListFilter) ([]domain.StockRecord, error) {
	return l.repo.List(ctx, filter)
}

func (l *Ledger) AddOnHand(ctx context.Context, id string, amount int64, reason string) (domain.StockRecord, error) {
	return l.mutate(ctx, id, "add_on_hand", amount, reason, func(r *domain.StockRecord) error { return r.AddOnHand(amount) })
}

func (l *Ledger) RemoveOnHand(ctx context.Context, id string, amount int64, reason string) (domain.StockRecord, error) {
	return l.mutate(ctx, id, "remove_on_hand", amount, reason, func(r *domain.StockRecord) error { return r.RemoveOnHand(amount) })
}

func (l *Ledger) Reserve(ctx context.Context, id string, amount int64, reason string) (domain.StockRecord, error) {
	return l.mutate(ctx, id, "reserve", amount, reason, func(r *domain.StockRecord) error { return r.Reserve(amount) })
}

func (l *Ledger) Release(ctx context.Context, id string, amount int64, reason string) (domain.StockRecord, error) {
	return l.mutate(ctx, id, "release", amount, reason, func(r *domain.StockRecord) error { return r.Release(amount) })
}

func (l *Ledger) Consume(ctx context.Context, id string, amount int64, reason string) (domain.StockRecord, error) {
	return l.mutate(ctx, id, "consume", amount, reason, func(r *domain.StockRecord) error { return r.Consume(amount) })
}

func (l *Ledger) SetOnHand(ctx context.Context, id string, amount int64, reason string) (domain.StockRecord, error) {
	return l.mutate(ctx, id, "set_on_hand", amount, reason, func(r *domain.StockRecord) error { return r.SetOnHand(amount) })
}

func (l *Ledger) SetReorderThreshold(ctx context.Context, id string, amount int64) (domain.StockRecord, error) {
	return l.mutate(ctx, id, "set_reorder_threshold", amount, "", func(r *domain.StockRecord) error { return r.SetReorderThreshold(amount) })
}

func (l *Ledger) mutate(ctx context.Context, id, op string, amount int64, reason string, fn func(*domain.StockRecord) error) (domain.StockRecord, error) {
	ctx, span := l.tracer.Start(ctx, "ledger."+op)
	defer span.End()
	span.SetAttributes(
		attribute.String("stock.record_id", id),
		attribute.Int64("stock.amount", amount),
	)

	unlock := l.locks.Lock(stockKey(id))
	defer unlock()

	rec, err := l.repo.Get(ctx, id)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return domain.StockRecord{}, err
	}
	before := rec
	if err := fn(&rec); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return domain.StockRecord{}, err
	}
	l.stamp(&rec)
	if err := l.repo.Save(ctx, rec, domain.EventsFor(before, rec, op, amount, reason)); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return domain.StockRecord{}, err
	}

	span.SetAttributes(
		attribute.Int64("stock.on_hand", rec.OnHand),
		attribute.Int64("stock.reserved", rec.Reserved),
	)
	l.log.Debug("stock mutated", "op", op, "record_id", id, "amount", amount, "on_hand", rec.OnHand, "reserved", rec.Reserved)
	return rec, nil
}

// Adjustment is a signed change to a record's on-hand count: negative
// values remove units, positive values add them.
type Adjustment struct {
	RecordID string
	Delta    int64
}

// Apply changes several records as one unit. All records are locked in id
// order, every adjustment is validated before any is written, and if a
// write fails the writes already made are reversed before the error is
// returned. Adjustments to the same record are summed.
func (l *Ledger) Apply(ctx context.Context, reason string, adjustments []Adjustment) ([]domain.StockRecord, error) {
	ctx, span := l.tracer.Start(ctx, "ledger.apply")
	defer span.End()

	deltas := make(map[string]int64, len(adjustments))
	for _, a := range adjustments {
		deltas[a.RecordID] += a.Delta
	}
	ids := make([]string, 0, len(deltas))
	for id, d := range deltas {
		if d != 0 {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	span.SetAttributes(attribute.Int("stock.records", len(ids)), attribute.String("stock.reason", reason))

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = stockKey(id)
	}
	unlock := l.locks.Lock(keys...)
	defer unlock()

	type change struct {
		before, after domain.StockRecord
		delta         int64
	}
	changes := make([]change, 0, len(ids))
	for _, id := range ids {
		rec, err := l.repo.Get(ctx, id)
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		after := rec
		if err := applyDelta(&after, deltas[id]); err != nil {
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		changes = append(changes, change{before: rec, after: after, delta: deltas[id]})
	}

	committed := make([]change, 0, len(changes))
	for _, c := range changes {
		l.stamp(&c.after)
		if err := l.repo.Save(ctx, c.after, domain.EventsFor(c.before, c.after, deltaOp(c.delta), abs(c.delta), reason)); err != nil {
			span.SetStatus(codes.Error, err.Error())
			l.log.Error("stock batch write failed, compensating", "record_id", c.after.ID, "reason", reason, "err", err)
			undo := make([]Adjustment, 0, len(committed))
			for i := len(committed) - 1; i >= 0; i-- {
				undo = append(undo, Adjustment{RecordID: committed[i].after.ID, Delta: -committed[i].delta})
			}
			if cerr := l.compensate(ctx, "compensate: "+reason, undo); cerr != nil {
				return nil, errors.Join(err, cerr)
			}
			return nil, err
		}
		committed = append(committed, c)
	}

	out := make([]domain.StockRecord, 0, len(committed))
	for _, c := range committed {
		out = append(out, c.after)
	}
	return out, nil
}

// compensate reverses committed adjustments in the given order. The caller
// already holds the locks of every record involved. It runs detached from
// ctx's cancellation: a cancelled caller is the usual reason the batch
// failed, and the records must still be put back.
func (l *Ledger) compensate(ctx context.Context, reason string, undo []Adjustment) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), compensateTimeout)
	defer cancel()

	var errs []error
	for _, u := range undo {
		rec, err := l.repo.Get(ctx, u.RecordID)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		before := rec
		if err := applyDelta(&rec, u.Delta); err != nil {
			errs = append(errs, err)
			continue
		}
		l.stamp(&rec)
		if err := l.repo.Save(ctx, rec, domain.EventsFor(before, rec, deltaOp(u.Delta), abs(u.Delta), reason)); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		l.log.Error("stock compensation incomplete", "reason", reason, "err", errors.Join(errs...))
	}
	return errors.Join(errs...)
}

func (l *Ledger) stamp(rec *domain.StockRecord) {
	rec.Version++
	rec.UpdatedAt = time.Now().UTC()
}

func applyDelta(rec *domain.StockRecord, delta int64) error {
	if delta < 0 {
		return rec.RemoveOnHand(-delta)
	}
	return rec.AddOnHand(delta)
}

func deltaOp(delta int64) string {
	if delta < 0 {
		return "remove_on_hand"
	}
	return "add_on_hand"
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

func stockKey(id string) string { return "stock:" + id }
