package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"storefront/config"
	"storefront/pkg/log"
	pkgPostgre "storefront/pkg/postgre"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	service         config.Service
	shutdownTimeout time.Duration

	// Storage
	postgresDB *pkgPostgre.Pool
	redis      *redis.Client
	cacheCfg   config.CacheConfig

	// Middleware
	rateLimit config.RateLimitConfig
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	Service         config.Service
	ShutdownTimeout time.Duration

	PostgresDB *pkgPostgre.Pool
	Redis      *redis.Client // required when Cache.Backend is "redis"
	Cache      config.CacheConfig
	RateLimit  config.RateLimitConfig
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		service:         cfg.Service,
		shutdownTimeout: cfg.ShutdownTimeout,
		postgresDB:      cfg.PostgresDB,
		redis:           cfg.Redis,
		cacheCfg:        cfg.Cache,
		rateLimit:       cfg.RateLimit,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = 10 * time.Second
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres pool is required")
	}
	if srv.service != config.ServiceOrder && srv.service != config.ServiceUser {
		return errors.New("service must be order or user")
	}
	if srv.cacheCfg.Backend == "redis" && srv.redis == nil {
		return errors.New("redis client is required for the redis cache backend")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
