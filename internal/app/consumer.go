package app

import (
	"context"
	"fmt"

	"storefront/config"
	"storefront/config/kafka"
	"storefront/config/postgre"
	orderKafka "storefront/internal/order/delivery/kafka"
	orderRepo "storefront/internal/order/repository/postgre"
	orderUC "storefront/internal/order/usecase"
	"storefront/pkg/log"
)

// RunConsumer feeds the intake topic into the order use case until ctx is
// cancelled. The reader is closed before the pool.
func RunConsumer(ctx context.Context, cfg *config.Config, logger log.Logger) error {
	logger.Info(ctx, "Starting consumer service...")

	// 1. Connection pool
	pool, err := postgre.Connect(ctx, cfg.Postgres, logger)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer postgre.Disconnect(context.Background(), logger)

	// 2. Reader
	reader := kafka.NewReader(cfg.Kafka)
	defer func() {
		if err := reader.Close(); err != nil {
			logger.Warnf(context.Background(), "Kafka reader close: %v", err)
		}
	}()
	logger.Infof(ctx, "Kafka brokers=%v topic=%s group=%s", cfg.Kafka.Brokers, cfg.Kafka.Topic, cfg.Kafka.GroupID)

	// 3. Domain
	repo := orderRepo.New(pool, logger)
	uc := orderUC.New(repo, nil, logger)
	consumer := orderKafka.New(reader, uc, logger)

	if err := consumer.Start(ctx); err != nil {
		return fmt.Errorf("consume: %w", err)
	}
	return nil
}
