// Package app wires configuration, logging, storage and the HTTP server for
// one service binary.
package app

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"storefront/config"
	"storefront/config/postgre"
	"storefront/config/redis"
	"storefront/internal/httpserver"
	"storefront/pkg/log"
)

// NewLogger builds the process logger from the logger section.
func NewLogger(cfg config.LoggerConfig) log.Logger {
	return log.Init(log.ZapConfig{
		Level:        cfg.Level,
		Mode:         cfg.Mode,
		Encoding:     cfg.Encoding,
		ColorEnabled: cfg.ColorEnabled,
		FilePath:     cfg.FilePath,
		MaxSizeMB:    cfg.MaxSizeMB,
		MaxBackups:   cfg.MaxBackups,
		MaxAgeDays:   cfg.MaxAgeDays,
	})
}

// RunAPI serves the HTTP API of service until ctx is cancelled. The pool is
// shut down after the HTTP server has drained.
func RunAPI(ctx context.Context, service config.Service, cfg *config.Config, logger log.Logger) error {
	logger.Infof(ctx, "Starting %s-service...", service)
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 1. Schema
	if cfg.Migrate.Auto {
		if err := postgre.MigrateUp(ctx, service, cfg.Postgres, logger); err != nil {
			return err
		}
	}

	// 2. Connection pool
	pool, err := postgre.Connect(ctx, cfg.Postgres, logger)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer postgre.Disconnect(context.Background(), logger)

	// 3. Shared cache (optional)
	var rdb *goredis.Client
	if cfg.Cache.Backend == "redis" {
		rdb, err = redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer redis.Disconnect()
	}

	// 4. HTTP Server
	srv, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Service:         service,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		PostgresDB:      pool,
		Redis:           rdb,
		Cache:           cfg.Cache,
		RateLimit:       cfg.RateLimit,
	})
	if err != nil {
		return fmt.Errorf("init http server: %w", err)
	}

	// 5. Run
	return srv.Run(ctx)
}
