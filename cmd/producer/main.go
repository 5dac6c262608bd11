package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/spf13/cobra"

	"storefront/config"
	"storefront/config/kafka"
	"storefront/internal/app"
	"storefront/internal/order"
	orderKafka "storefront/internal/order/delivery/kafka"
)

// main publishes generated order requests to the intake topic. Used to load
// the consumer in local setups.
func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		count    int
		interval time.Duration
		maxUser  int
	)
	cmd := &cobra.Command{
		Use:           "producer",
		Short:         "Publish generated order requests to the intake topic",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.ServiceOrder)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			logger := app.NewLogger(cfg.Logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			w := kafka.NewWriter(cfg.Kafka)
			defer func() {
				if err := w.Close(); err != nil {
					logger.Warnf(context.Background(), "Kafka writer close: %v", err)
				}
			}()
			logger.Infof(ctx, "Kafka brokers=%v topic=%s count=%d", cfg.Kafka.Brokers, cfg.Kafka.Topic, count)

			pub := orderKafka.NewPublisher(w)
			for i := range count {
				if err := pub.Publish(ctx, fakeInput(maxUser)); err != nil {
					return fmt.Errorf("publish %d: %w", i, err)
				}
				if interval > 0 {
					select {
					case <-ctx.Done():
						return nil
					case <-time.After(interval):
					}
				}
			}
			logger.Infof(ctx, "Produced %d message(s)", count)
			return nil
		},
	}
	cmd.Flags().IntVar(&count, "count", 1, "number of messages to publish")
	cmd.Flags().DurationVar(&interval, "interval", 0, "pause between messages")
	cmd.Flags().IntVar(&maxUser, "max-user", 100, "largest generated user_id")
	return cmd
}

func fakeInput(maxUser int) order.CreateInput {
	return order.CreateInput{
		UserID:    int64(gofakeit.IntRange(1, max(maxUser, 1))),
		ProductID: int64(gofakeit.IntRange(1, 10000)),
		Quantity:  int32(gofakeit.IntRange(1, 10)),
	}
}
