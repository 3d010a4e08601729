package domain

import "time"

const (
	EventStockAdjusted       = "StockAdjusted"
	EventReorderPointReached = "ReorderPointReached"
)

// StockEvent is written to the outbox alongside the record it describes.
type StockEvent interface {
	EventType() string
}

type StockAdjusted struct {
	RecordID   string    `json:"record_id"`
	ProductID  string    `json:"product_id"`
	LocationID string    `json:"location_id"`
	Op         string    `json:"op"`
	Amount     int64     `json:"amount"`
	OnHand     int64     `json:"on_hand"`
	Reserved   int64     `json:"reserved"`
	Reason     string    `json:"reason,omitempty"`
	At         time.Time `json:"at"`
}

func (StockAdjusted) EventType() string { return EventStockAdjusted }

type ReorderPointReached struct {
	RecordID   string    `json:"record_id"`
	ProductID  string    `json:"product_id"`
	LocationID string    `json:"location_id"`
	OnHand     int64     `json:"on_hand"`
	Threshold  int64     `json:"threshold"`
	At         time.Time `json:"at"`
}

func (ReorderPointReached) EventType() string { return EventReorderPointReached }

// EventsFor builds the events for a transition from before to after.
func EventsFor(before, after StockRecord, op string, amount int64, reason string) []StockEvent {
	now := after.UpdatedAt
	events := []StockEvent{StockAdjusted{
		RecordID:   after.ID,
		ProductID:  after.ProductID,
		LocationID: after.LocationID,
		Op:         op,
		Amount:     amount,
		OnHand:     after.OnHand,
		Reserved:   after.Reserved,
		Reason:     reason,
		At:         now,
	}}
	if after.IsBelowReorder() && !before.IsBelowReorder() {
		events = append(events, ReorderPointReached{
			RecordID:   after.ID,
			ProductID:  after.ProductID,
			LocationID: after.LocationID,
			OnHand:     after.OnHand,
			Threshold:  after.ReorderThreshold,
			At:         now,
		})
	}
	return events
}
