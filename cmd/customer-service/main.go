package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/dmehra2102/shop-backoffice/internal/config"
	"github.com/dmehra2102/shop-backoffice/internal/customer/application"
	customerkafka "github.com/dmehra2102/shop-backoffice/internal/customer/infrastructure/kafka"
	pg "github.com/dmehra2102/shop-backoffice/internal/customer/infrastructure/postgres"
	"github.com/dmehra2102/shop-backoffice/pkg/idempotency"
	"github.com/dmehra2102/shop-backoffice/pkg/kafkaconsumer"
	"github.com/dmehra2102/shop-backoffice/pkg/logging"
	"github.com/dmehra2102/shop-backoffice/pkg/shutdown"
	"github.com/dmehra2102/shop-backoffice/pkg/tracing"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "err", err)
		os.Exit(1)
	}
	log := logging.New(cfg.LogLevel).With("service", "customer-service")

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	tp, err := tracing.Init(ctx, "customer-service", cfg.OTLPEndpoint, log)
	if err != nil {
		log.Error("otel init failed", "err", err)
		os.Exit(1)
	}
	defer func() { _ = tp.Shutdown(context.Background()) }()

	pool, err := pgxpool.New(ctx, cfg.PGURL)
	if err != nil {
		log.Error("pg connect failed", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer rdb.Close()
	idem := idempotency.NewStore(rdb, cfg.IdempotencyTTL)

	svc := application.NewService(log, pg.NewRepository(log, pool))
	consumer := kafkaconsumer.New(log, "spend-consumer",
		kafkaconsumer.NewReader(cfg.KafkaBrokers, cfg.SpendTopic, "customer-service"),
		idem,
		customerkafka.NewSpendHandler(log, svc).Handle,
		kafkaconsumer.WithKey(customerkafka.EntryRef),
	)

	log.Info("customer-service consuming", "topic", cfg.SpendTopic)
	if err := consumer.Run(ctx); err != nil {
		log.Error("consumer stopped", "err", err)
		os.Exit(1)
	}
	log.Info("customer-service shutdown")
}
