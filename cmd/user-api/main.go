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

// @title       Storefront User API
// @description Registers and retrieves users.
// @version     1
// @host        localhost:8081
// @schemes     http
func main() {
	cfg, err := config.Load(config.ServiceUser)
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	logger := app.NewLogger(cfg.Logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.RunAPI(ctx, config.ServiceUser, cfg, logger); err != nil {
		logger.Error(ctx, "user-service stopped: ", err)
		stop()
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
