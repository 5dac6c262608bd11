package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"storefront/config"
	"storefront/internal/app"
)

// main is the entry point for the order intake consumer.
// This binary consumes order requests from Kafka and creates them via the order UseCase.
//
// Pattern:
//  1. Initialize infra (same as cmd/order-api/main.go)
//  2. Create UseCases
//  3. Create the Kafka consumer group, wire handlers
//  4. Run & graceful shutdown
func main() {
	cfg, err := config.Load(config.ServiceOrder)
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	logger := app.NewLogger(cfg.Logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.RunConsumer(ctx, cfg, logger); err != nil {
		logger.Error(ctx, "Consumer stopped: ", err)
		stop()
		os.Exit(1)
	}

	logger.Info(ctx, "Consumer service stopped gracefully")
}
