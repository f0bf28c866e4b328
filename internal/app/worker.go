package app

import (
	"context"
	"fmt"
	"os/signal"
	"sync"
	"syscall"

	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/messaging/kafka/producer"
	"go-hrms/internal/scheduler"
	"go-hrms/internal/shared/config"
	"go-hrms/internal/shared/connection"

	"go.uber.org/zap"
)

// RunWorker relays outbox rows to Kafka and runs the periodic contract sweep
// until SIGINT or SIGTERM.
func RunWorker(cfg *config.Config) error {
	logger := zap.L().Named("app.worker")

	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	infra, err := connect(cfg, logger)
	if err != nil {
		return err
	}
	defer infra.Close()

	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.KafkaBroker, cfg.DB.MaxRetries)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(infra.sqlDB)
	svc := buildServices(cfg, infra.sqlDB, infra.gormDB, infra.redis, zap.L())
	sweeper := scheduler.NewContractSweepScheduler(
		svc.contract,
		infra.redis,
		cfg.Contract.SweepInterval,
		cfg.Contract.AutoRenew,
		zap.L(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		producer.ProcessOutboxEvents(ctx, outboxRepo, kafkaWriter, zap.L(), cfg.OutboxPollInterval)
	}()
	go func() {
		defer wg.Done()
		sweeper.Run(ctx)
	}()

	<-ctx.Done()
	logger.Info("worker shutting down")
	wg.Wait()

	return nil
}
