package grpc

import (
	"time"

	"github.com/dmehra2102/shop-backoffice/internal/inventory/domain"
	pb "github.com/dmehra2102/shop-backoffice/internal/inventory/infrastructure/grpc/proto"
)

// Item is one product and quantity in an availability check.
type Item struct {
	ProductID string
	Quantity  int64
}

// Shortfall reports an item that cannot be covered at the location.
type Shortfall struct {
	ProductID string
	Requested int64
	Available int64
}

func recordToPB(rec domain.StockRecord) *pb.StockRecord {
	return &pb.StockRecord{
		Id:               rec.ID,
		ProductId:        rec.ProductID,
		LocationId:       rec.LocationID,
		OnHand:           rec.OnHand,
		Reserved:         rec.Reserved,
		Available:        rec.Available(),
		ReorderThreshold: rec.ReorderThreshold,
		Version:          rec.Version,
		UpdatedAt:        rec.UpdatedAt.Format(time.RFC3339Nano),
	}
}

func recordFromPB(m *pb.StockRecord) domain.StockRecord {
	rec := domain.StockRecord{
		ID:               m.GetId(),
		ProductID:        m.GetProductId(),
		LocationID:       m.GetLocationId(),
		OnHand:           m.GetOnHand(),
		Reserved:         m.GetReserved(),
		ReorderThreshold: m.GetReorderThreshold(),
		Version:          m.GetVersion(),
	}
	if t, err := time.Parse(time.RFC3339Nano, m.GetUpdatedAt()); err == nil {
		rec.UpdatedAt = t
	}
	return rec
}

func itemsToPB(items []Item) []*pb.Item {
	out := make([]*pb.Item, 0, len(items))
	for _, it := range items {
		out = append(out, &pb.Item{ProductId: it.ProductID, Quantity: it.Quantity})
	}
	return out
}

func shortfallsFromPB(in []*pb.Shortfall) []Shortfall {
	var out []Shortfall
	for _, s := range in {
		out = append(out, Shortfall{ProductID: s.GetProductId(), Requested: s.GetRequested(), Available: s.GetAvailable()})
	}
	return out
}
