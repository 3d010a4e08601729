package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	catalogmem "github.com/dmehra2102/shop-backoffice/internal/catalog/infrastructure/memory"
	catalogpg "github.com/dmehra2102/shop-backoffice/internal/catalog/infrastructure/postgres"
	catalogredis "github.com/dmehra2102/shop-backoffice/internal/catalog/infrastructure/redis"
	"github.com/dmehra2102/shop-backoffice/internal/config"
	customerapp "github.com/dmehra2102/shop-backoffice/internal/customer/application"
	customerkafka "github.com/dmehra2102/shop-backoffice/internal/customer/infrastructure/kafka"
	customermem "github.com/dmehra2102/shop-backoffice/internal/customer/infrastructure/memory"
	"github.com/dmehra2102/shop-backoffice/internal/fulfillment/application"
	invapp "github.com/dmehra2102/shop-backoffice/internal/inventory/application"
	invgrpc "github.com/dmehra2102/shop-backoffice/internal/inventory/infrastructure/grpc"
	invhttp "github.com/dmehra2102/shop-backoffice/internal/inventory/infrastructure/http"
	invkafka "github.com/dmehra2102/shop-backoffice/internal/inventory/infrastructure/kafka"
	invmem "github.com/dmehra2102/shop-backoffice/internal/inventory/infrastructure/memory"
	invpg "github.com/dmehra2102/shop-backoffice/internal/inventory/infrastructure/postgres"
	orderhttp "github.com/dmehra2102/shop-backoffice/internal/order/infrastructure/http"
	orderkafka "github.com/dmehra2102/shop-backoffice/internal/order/infrastructure/kafka"
	ordermem "github.com/dmehra2102/shop-backoffice/internal/order/infrastructure/memory"
	orderpg "github.com/dmehra2102/shop-backoffice/internal/order/infrastructure/postgres"
	"github.com/dmehra2102/shop-backoffice/pkg/idempotency"
	"github.com/dmehra2102/shop-backoffice/pkg/kafkaconsumer"
	"github.com/dmehra2102/shop-backoffice/pkg/logging"
	"github.com/dmehra2102/shop-backoffice/pkg/outbox"
	"github.com/dmehra2102/shop-backoffice/pkg/shutdown"
	"github.com/dmehra2102/shop-backoffice/pkg/tracing"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "err", err)
		os.Exit(1)
	}
	log := logging.New(cfg.LogLevel).With("service", "backoffice-service")

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	tp, err := tracing.Init(ctx, "backoffice-service", cfg.OTLPEndpoint, log)
	if err != nil {
		log.Error("otel init failed", "err", err)
		os.Exit(1)
	}
	defer func() { _ = tp.Shutdown(context.Background()) }()

	g, ctx := errgroup.WithContext(ctx)

	var (
		ledger *invapp.Ledger
		coord  *application.Coordinator
	)
	switch cfg.StoreDriver {
	case config.DriverMemory:
		ledger, coord, err = wireMemory(log, cfg)
	default:
		ledger, coord, err = wirePostgres(ctx, g, log, cfg)
	}
	if err != nil {
		log.Error("wiring failed", "driver", cfg.StoreDriver, "err", err)
		os.Exit(1)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	orderhttp.NewHandler(log, coord).Register(r)
	invhttp.NewHandler(log, ledger).Register(r)

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	g.Go(func() error {
		log.Info("http listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	gs, err := invgrpc.Run(log, cfg.GRPCAddr, invgrpc.NewServer(log, ledger))
	if err != nil {
		log.Error("grpc server failed", "err", err)
		os.Exit(1)
	}
	log.Info("grpc listening", "addr", cfg.GRPCAddr)

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer shutdownCancel()
		gs.GracefulStop()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("backoffice-service stopped with error", "err", err)
		os.Exit(1)
	}
	log.Info("backoffice-service shutdown complete")
}

// wireMemory builds a single process setup with no external dependencies.
// Customer spend is applied in process.
func wireMemory(log *slog.Logger, cfg config.Config) (*invapp.Ledger, *application.Coordinator, error) {
	catalog := catalogmem.NewCatalog()
	if cfg.CatalogFile != "" {
		var err error
		if catalog, err = catalogmem.LoadFile(cfg.CatalogFile); err != nil {
			return nil, nil, err
		}
	}
	ledger := invapp.NewLedger(log, invmem.NewRepository())
	customers := customerapp.NewService(log, customermem.NewRepository())
	coord := application.NewCoordinator(log, ledger, ordermem.NewRepository(), catalog, customers,
		application.WithIdempotency(idempotency.NewMemoryStore(0, cfg.IdempotencyTTL)),
		application.WithTaxRate(cfg.TaxRate))
	return ledger, coord, nil
}

func wirePostgres(ctx context.Context, g *errgroup.Group, log *slog.Logger, cfg config.Config) (*invapp.Ledger, *application.Coordinator, error) {
	pool, err := pgxpool.New(ctx, cfg.PGURL)
	if err != nil {
		return nil, nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, err
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	idem := idempotency.NewStore(rdb, cfg.IdempotencyTTL)
	writer := orderkafka.NewWriter(cfg.KafkaBrokers)

	ledger := invapp.NewLedger(log, invpg.NewRepository(log, pool))
	catalog := catalogredis.NewCache(log, rdb, catalogpg.NewRepository(log, pool), cfg.CatalogCacheTTL)
	notifier := customerkafka.NewNotifier(log, writer, cfg.SpendTopic)
	coord := application.NewCoordinator(log, ledger, orderpg.NewRepository(log, pool), catalog, notifier,
		application.WithIdempotency(idem),
		application.WithTaxRate(cfg.TaxRate),
	)

	dispatch := outbox.NewDispatcher(log, writer, map[string]string{
		"order": cfg.OrderTopic,
		"stock": cfg.StockTopic,
	})
	relay := outbox.NewRelay(log, outbox.NewPostgresStore(log, pool), dispatch, cfg.RelayID)
	g.Go(func() error { return relay.Run(ctx) })

	purchasing := kafkaconsumer.New(log, "purchasing-consumer",
		kafkaconsumer.NewReader(cfg.KafkaBrokers, cfg.PurchasingTopic, cfg.ConsumerGroup),
		idem,
		invkafka.NewPurchasingHandler(log, ledger).Handle,
		kafkaconsumer.WithKey(invkafka.EventID),
	)
	g.Go(func() error { return purchasing.Run(ctx) })

	g.Go(func() error {
		<-ctx.Done()
		_ = writer.Close()
		_ = rdb.Close()
		pool.Close()
		return nil
	})
	return ledger, coord, nil
}
