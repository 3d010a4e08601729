package grpc

import (
	"context"
	"log/slog"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dmehra2102/shop-backoffice/internal/inventory/domain"
	pb "github.com/dmehra2102/shop-backoffice/internal/inventory/infrastructure/grpc/proto"
	"github.com/dmehra2102/shop-backoffice/pkg/apperr"
)

// ErrUnknownMethod is returned by Adjust for a method the service lacks.
var ErrUnknownMethod = apperr.Validation("unknown_method", "unknown stock ledger method")

// Client calls a remote StockLedger service.
type Client struct {
	log *slog.Logger
	rpc pb.StockLedgerClient
}

func Dial(log *slog.Logger, addr string) (*Client, *grpc.ClientConn, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, nil, err
	}
	return NewClient(log, conn), conn, nil
}

func NewClient(log *slog.Logger, cc grpc.ClientConnInterface) *Client {
	return &Client{log: log, rpc: pb.NewStockLedgerClient(cc)}
}

func (c *Client) GetStock(ctx context.Context, id string) (domain.StockRecord, error) {
	var trailer metadata.MD
	out, err := c.rpc.GetStock(ctx, &pb.GetStockRequest{Id: id}, grpc.Trailer(&trailer))
	return record(out, err, trailer)
}

func (c *Client) LookupStock(ctx context.Context, productID, locationID string) (domain.StockRecord, error) {
	var trailer metadata.MD
	out, err := c.rpc.LookupStock(ctx, &pb.LookupStockRequest{ProductId: productID, LocationId: locationID}, grpc.Trailer(&trailer))
	return record(out, err, trailer)
}

// Adjust runs one of the amount based operations: AddOnHand, RemoveOnHand,
// Reserve, Release, Consume, SetOnHand or SetReorderThreshold.
func (c *Client) Adjust(ctx context.Context, method, id string, amount int64, reason string) (domain.StockRecord, error) {
	var trailer metadata.MD
	req := &pb.AdjustStockRequest{Id: id, Amount: amount, Reason: reason}
	opt := grpc.Trailer(&trailer)

	var (
		out *pb.StockRecord
		err error
	)
	switch method {
	case "AddOnHand":
		out, err = c.rpc.AddOnHand(ctx, req, opt)
	case "RemoveOnHand":
		out, err = c.rpc.RemoveOnHand(ctx, req, opt)
	case "Reserve":
		out, err = c.rpc.Reserve(ctx, req, opt)
	case "Release":
		out, err = c.rpc.Release(ctx, req, opt)
	case "Consume":
		out, err = c.rpc.Consume(ctx, req, opt)
	case "SetOnHand":
		out, err = c.rpc.SetOnHand(ctx, req, opt)
	case "SetReorderThreshold":
		out, err = c.rpc.SetReorderThreshold(ctx, &pb.SetReorderThresholdRequest{Id: id, Threshold: amount}, opt)
	default:
		return domain.StockRecord{}, ErrUnknownMethod
	}
	return record(out, err, trailer)
}

func (c *Client) CheckAvailability(ctx context.Context, locationID string, items []Item) (bool, []Shortfall, error) {
	var trailer metadata.MD
	out, err := c.rpc.CheckAvailability(ctx, &pb.CheckAvailabilityRequest{
		LocationId: locationID,
		Items:      itemsToPB(items),
	}, grpc.Trailer(&trailer))
	if err != nil {
		return false, nil, fromStatus(err, trailer)
	}
	return out.GetAvailable(), shortfallsFromPB(out.GetShortfalls()), nil
}

func record(out *pb.StockRecord, err error, trailer metadata.MD) (domain.StockRecord, error) {
	if err != nil {
		return domain.StockRecord{}, fromStatus(err, trailer)
	}
	return recordFromPB(out), nil
}

// fromStatus turns a status error back into an *apperr.Error so callers
// can branch on kind and code as they would in process.
func fromStatus(err error, trailer metadata.MD) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	code := "internal"
	if v := trailer.Get(ErrorCodeKey); len(v) > 0 {
		code = v[0]
	}
	var kind apperr.Kind
	switch st.Code() {
	case codes.InvalidArgument:
		kind = apperr.KindValidation
	case codes.NotFound:
		kind = apperr.KindNotFound
	case codes.FailedPrecondition:
		kind = apperr.KindConflict
	default:
		return err
	}
	return apperr.New(kind, code, st.Message())
}
