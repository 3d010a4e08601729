package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/segmentio/kafka-go"

	"github.com/dmehra2102/shop-backoffice/internal/inventory/application"
	"github.com/dmehra2102/shop-backoffice/internal/inventory/domain"
	"github.com/dmehra2102/shop-backoffice/pkg/apperr"
	"github.com/dmehra2102/shop-backoffice/pkg/tracing"
)

const (
	EventStockReceived = "StockReceived"
	EventStockCounted  = "StockCounted"
)

var ErrBadPurchasingEvent = apperr.Validation("bad_purchasing_event", "malformed purchasing event")

// PurchasingEvent is a goods receipt or a stock count from purchasing.
// The record is addressed by id, or by product and location when the
// sender does not know the id.
type PurchasingEvent struct {
	EventID       string `json:"event_id"`
	StockRecordID string `json:"stock_record_id,omitempty"`
	ProductID     string `json:"product_id,omitempty"`
	LocationID    string `json:"location_id,omitempty"`
	Quantity      int64  `json:"quantity"`
}

type PurchasingHandler struct {
	log    *slog.Logger
	ledger *application.Ledger
}

func NewPurchasingHandler(log *slog.Logger, ledger *application.Ledger) *PurchasingHandler {
	return &PurchasingHandler{log: log, ledger: ledger}
}

// EventID is the dedupe key of a purchasing message.
func EventID(msg kafka.Message) string {
	var ev struct {
		EventID string `json:"event_id"`
	}
	if err := json.Unmarshal(msg.Value, &ev); err != nil {
		return ""
	}
	return ev.EventID
}

func (h *PurchasingHandler) Handle(ctx context.Context, msg kafka.Message) error {
	eventType := tracing.HeaderValue(msg.Headers, "event_type")
	if eventType != EventStockReceived && eventType != EventStockCounted {
		h.log.Debug("purchasing event ignored", "event_type", eventType)
		return nil
	}
	var ev PurchasingEvent
	if err := json.Unmarshal(msg.Value, &ev); err != nil {
		return fmt.Errorf("%w: %v", ErrBadPurchasingEvent, err)
	}

	id, err := h.recordID(ctx, ev)
	if err != nil {
		return err
	}
	reason := "purchasing " + eventType + " " + ev.EventID

	var rec domain.StockRecord
	switch eventType {
	case EventStockReceived:
		rec, err = h.ledger.AddOnHand(ctx, id, ev.Quantity, reason)
	default:
		rec, err = h.ledger.SetOnHand(ctx, id, ev.Quantity, reason)
	}
	if err != nil {
		return err
	}
	h.log.Info("purchasing event applied", "event_type", eventType, "event_id", ev.EventID, "record_id", rec.ID, "on_hand", rec.OnHand)
	return nil
}

func (h *PurchasingHandler) recordID(ctx context.Context, ev PurchasingEvent) (string, error) {
	if ev.StockRecordID != "" {
		return ev.StockRecordID, nil
	}
	if ev.ProductID == "" || ev.LocationID == "" {
		return "", fmt.Errorf("%w: no stock record, product or location", ErrBadPurchasingEvent)
	}
	rec, err := h.ledger.Lookup(ctx, ev.ProductID, ev.LocationID)
	if errors.Is(err, domain.ErrStockNotFound) {
		// first receipt at a location opens the record
		rec, err = h.ledger.Create(ctx, ev.ProductID, ev.LocationID, 0, 0)
		if errors.Is(err, domain.ErrStockExists) {
			rec, err = h.ledger.Lookup(ctx, ev.ProductID, ev.LocationID)
		}
	}
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}
