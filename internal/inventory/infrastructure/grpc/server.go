package grpc

//go:generate protoc -I proto --go_out=proto --go_opt=paths=source_relative --go-grpc_out=proto --go-grpc_opt=paths=source_relative proto/stock_ledger.proto

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dmehra2102/shop-backoffice/internal/inventory/application"
	"github.com/dmehra2102/shop-backoffice/internal/inventory/domain"
	pb "github.com/dmehra2102/shop-backoffice/internal/inventory/infrastructure/grpc/proto"
	"github.com/dmehra2102/shop-backoffice/pkg/apperr"
)

const (
	ServiceName = "backoffice.inventory.v1.StockLedger"
	// ErrorCodeKey is the trailer carrying the apperr code of a failed call.
	ErrorCodeKey = "x-error-code"
)

type Server struct {
	pb.UnimplementedStockLedgerServer
	log    *slog.Logger
	ledger *application.Ledger
}

func NewServer(log *slog.Logger, ledger *application.Ledger) *Server {
	return &Server{log: log, ledger: ledger}
}

func Register(gs *grpc.Server, srv *Server) {
	pb.RegisterStockLedgerServer(gs, srv)
	hs := health.NewServer()
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(gs, hs)
}

func NewGRPCServer(log *slog.Logger) *grpc.Server {
	return grpc.NewServer(grpc.ChainUnaryInterceptor(logging(log)))
}

// Run listens on addr and serves in the background.
func Run(log *slog.Logger, addr string, srv *Server) (*grpc.Server, error) {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	gs := NewGRPCServer(log)
	Register(gs, srv)
	go func() {
		if err := gs.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			log.Error("grpc server stopped", "err", err)
		}
	}()
	return gs, nil
}

func (s *Server) GetStock(ctx context.Context, req *pb.GetStockRequest) (*pb.StockRecord, error) {
	return s.reply(ctx)(s.ledger.Get(ctx, req.GetId()))
}

func (s *Server) LookupStock(ctx context.Context, req *pb.LookupStockRequest) (*pb.StockRecord, error) {
	return s.reply(ctx)(s.ledger.Lookup(ctx, req.GetProductId(), req.GetLocationId()))
}

func (s *Server) AddOnHand(ctx context.Context, req *pb.AdjustStockRequest) (*pb.StockRecord, error) {
	return s.reply(ctx)(s.ledger.AddOnHand(ctx, req.GetId(), req.GetAmount(), req.GetReason()))
}

func (s *Server) RemoveOnHand(ctx context.Context, req *pb.AdjustStockRequest) (*pb.StockRecord, error) {
	return s.reply(ctx)(s.ledger.RemoveOnHand(ctx, req.GetId(), req.GetAmount(), req.GetReason()))
}

func (s *Server) Reserve(ctx context.Context, req *pb.AdjustStockRequest) (*pb.StockRecord, error) {
	return s.reply(ctx)(s.ledger.Reserve(ctx, req.GetId(), req.GetAmount(), req.GetReason()))
}

func (s *Server) Release(ctx context.Context, req *pb.AdjustStockRequest) (*pb.StockRecord, error) {
	return s.reply(ctx)(s.ledger.Release(ctx, req.GetId(), req.GetAmount(), req.GetReason()))
}

func (s *Server) Consume(ctx context.Context, req *pb.AdjustStockRequest) (*pb.StockRecord, error) {
	return s.reply(ctx)(s.ledger.Consume(ctx, req.GetId(), req.GetAmount(), req.GetReason()))
}

func (s *Server) SetOnHand(ctx context.Context, req *pb.AdjustStockRequest) (*pb.StockRecord, error) {
	return s.reply(ctx)(s.ledger.SetOnHand(ctx, req.GetId(), req.GetAmount(), req.GetReason()))
}

func (s *Server) SetReorderThreshold(ctx context.Context, req *pb.SetReorderThresholdRequest) (*pb.StockRecord, error) {
	return s.reply(ctx)(s.ledger.SetReorderThreshold(ctx, req.GetId(), req.GetThreshold()))
}

// CheckAvailability reports whether every item could be taken from the
// location right now. It reads without locking, so the answer is advisory.
func (s *Server) CheckAvailability(ctx context.Context, req *pb.CheckAvailabilityRequest) (*pb.CheckAvailabilityResponse, error) {
	resp := &pb.CheckAvailabilityResponse{}
	for _, it := range req.GetItems() {
		if it.GetQuantity() <= 0 {
			return nil, s.toStatus(ctx, domain.ErrInvalidArgument)
		}
		var available int64
		rec, err := s.ledger.Lookup(ctx, it.GetProductId(), req.GetLocationId())
		switch {
		case err == nil:
			available = rec.Available()
		case !errors.Is(err, domain.ErrStockNotFound):
			return nil, s.toStatus(ctx, err)
		}
		if available < it.GetQuantity() {
			resp.Shortfalls = append(resp.Shortfalls, &pb.Shortfall{
				ProductId: it.GetProductId(),
				Requested: it.GetQuantity(),
				Available: available,
			})
		}
	}
	resp.Available = len(resp.Shortfalls) == 0
	return resp, nil
}

func (s *Server) reply(ctx context.Context) func(domain.StockRecord, error) (*pb.StockRecord, error) {
	return func(rec domain.StockRecord, err error) (*pb.StockRecord, error) {
		if err != nil {
			return nil, s.toStatus(ctx, err)
		}
		return recordToPB(rec), nil
	}
}

// toStatus maps err's kind to a status code and puts its apperr code in
// the trailer. Internal errors are logged here and reach the caller as
// "internal error" only.
func (s *Server) toStatus(ctx context.Context, err error) error {
	_ = grpc.SetTrailer(ctx, metadata.Pairs(ErrorCodeKey, apperr.CodeOf(err)))
	var c codes.Code
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		c = codes.InvalidArgument
	case apperr.KindNotFound:
		c = codes.NotFound
	case apperr.KindConflict:
		c = codes.FailedPrecondition
	default:
		method, _ := grpc.Method(ctx)
		s.log.Error("grpc internal error", "method", method, "err", err)
		return status.Error(codes.Internal, "internal error")
	}
	return status.Error(c, err.Error())
}

func logging(log *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		if err != nil {
			log.Warn("grpc call failed", "method", info.FullMethod, "code", status.Code(err).String(), "duration", time.Since(start), "err", err)
			return resp, err
		}
		log.Debug("grpc call", "method", info.FullMethod, "duration", time.Since(start))
		return resp, nil
	}
}
