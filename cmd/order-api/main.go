package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"storefront/config"
	_ "storefront/docs" // Swagger docs
	"storefront/internal/app"
)

// @title       Storefront Order API
// @description Creates and retrieves orders.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	cfg, err := config.Load(config.ServiceOrder)
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	logger := app.NewLogger(cfg.Logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.RunAPI(ctx, config.ServiceOrder, cfg, logger); err != nil {
		logger.Error(ctx, "order-service stopped: ", err)
		stop()
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
