package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Service selects the env prefix and database defaults.
type Service string

const (
	ServiceOrder Service = "order"
	ServiceUser  Service = "user"
)

// Config holds all service configuration.
type Config struct {
	Service Service

	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Storage
	Postgres PostgresConfig
	Migrate  MigrateConfig
	Cache    CacheConfig
	Redis    RedisConfig

	// Async intake
	Kafka KafkaConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
	FilePath     string
	MaxSizeMB    int
	MaxBackups   int
	MaxAgeDays   int
}

type RateLimitConfig struct {
	Enabled bool
	RPS     float64
	Burst   int
	Clients int // number of client limiters kept in memory
}

type PostgresConfig struct {
	Host           string
	Port           int
	DBName         string
	User           string
	Password       string
	SSLMode        string
	MinConns       int32
	MaxConns       int32
	AcquireTimeout time.Duration
}

// DSN builds a libpq-style URL. Credentials are escaped.
func (c PostgresConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {c.SSLMode}}.Encode(),
	}
	return u.String()
}

type MigrateConfig struct {
	Auto bool
}

// CacheConfig selects the record cache: "lru", "redis" or "none".
type CacheConfig struct {
	Backend string
	Size    int
	TTL     time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
	GroupID string
}

// Load loads configuration for service using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/.
// Environment variables use the service prefix, e.g. ORDER_POSTGRES_HOST.
func Load(service Service) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	v.SetEnvPrefix(string(service))
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v, service)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{Service: service}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = v.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.Logger.FilePath = v.GetString("logger.file_path")
	cfg.Logger.MaxSizeMB = v.GetInt("logger.max_size_mb")
	cfg.Logger.MaxBackups = v.GetInt("logger.max_backups")
	cfg.Logger.MaxAgeDays = v.GetInt("logger.max_age_days")
	cfg.RateLimit.Enabled = v.GetBool("rate_limit.enabled")
	cfg.RateLimit.RPS = v.GetFloat64("rate_limit.rps")
	cfg.RateLimit.Burst = v.GetInt("rate_limit.burst")
	cfg.RateLimit.Clients = v.GetInt("rate_limit.clients")

	// Storage
	cfg.Postgres.Host = v.GetString("postgres.host")
	cfg.Postgres.Port = v.GetInt("postgres.port")
	cfg.Postgres.DBName = v.GetString("postgres.db_name")
	cfg.Postgres.User = v.GetString("postgres.user")
	cfg.Postgres.Password = v.GetString("postgres.password")
	cfg.Postgres.SSLMode = v.GetString("postgres.ssl_mode")
	cfg.Postgres.MinConns = v.GetInt32("postgres.min_conns")
	cfg.Postgres.MaxConns = v.GetInt32("postgres.max_conns")
	cfg.Postgres.AcquireTimeout = v.GetDuration("postgres.acquire_timeout")
	cfg.Migrate.Auto = v.GetBool("migrate.auto")

	cfg.Cache.Backend = strings.ToLower(v.GetString("cache.backend"))
	cfg.Cache.Size = v.GetInt("cache.size")
	cfg.Cache.TTL = v.GetDuration("cache.ttl")
	cfg.Redis.Addr = v.GetString("redis.addr")
	cfg.Redis.Password = v.GetString("redis.password")
	cfg.Redis.DB = v.GetInt("redis.db")

	// Kafka brokers may arrive as a comma separated env var
	cfg.Kafka.Brokers = splitCSV(v.GetString("kafka.brokers"))
	cfg.Kafka.Topic = v.GetString("kafka.topic")
	cfg.Kafka.GroupID = v.GetString("kafka.group_id")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations the service cannot start with.
func (c *Config) Validate() error {
	if c.Postgres.Host == "" {
		return errors.New("postgres.host is required")
	}
	if c.Postgres.DBName == "" {
		return errors.New("postgres.db_name is required")
	}
	if c.Postgres.MaxConns < 1 {
		return fmt.Errorf("postgres.max_conns must be >= 1, got %d", c.Postgres.MaxConns)
	}
	if c.Postgres.MinConns < 1 || c.Postgres.MinConns > c.Postgres.MaxConns {
		return fmt.Errorf("postgres.min_conns must be in [1, %d], got %d", c.Postgres.MaxConns, c.Postgres.MinConns)
	}
	switch c.Cache.Backend {
	case "lru", "redis", "none":
	default:
		return fmt.Errorf("cache.backend must be lru, redis or none, got %q", c.Cache.Backend)
	}
	if c.Cache.Backend == "redis" && c.Redis.Addr == "" {
		return errors.New("redis.addr is required when cache.backend is redis")
	}
	return nil
}

func setDefaults(v *viper.Viper, service Service) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.shutdown_timeout", "10s")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("logger.max_size_mb", 50)
	v.SetDefault("logger.max_backups", 5)
	v.SetDefault("logger.max_age_days", 30)
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.rps", 50)
	v.SetDefault("rate_limit.burst", 100)
	v.SetDefault("rate_limit.clients", 4096)

	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.user", "postgres")
	v.SetDefault("postgres.password", "postgres")
	v.SetDefault("postgres.ssl_mode", "disable")
	v.SetDefault("postgres.min_conns", 1)
	v.SetDefault("postgres.max_conns", 10)
	v.SetDefault("postgres.acquire_timeout", "5s")
	v.SetDefault("migrate.auto", false)

	v.SetDefault("cache.backend", "lru")
	v.SetDefault("cache.size", 1024)
	v.SetDefault("cache.ttl", "5m")
	v.SetDefault("redis.db", 0)

	v.SetDefault("kafka.brokers", "localhost:9094")
	v.SetDefault("kafka.topic", "order-intake")
	v.SetDefault("kafka.group_id", "order-intake-consumers")

	switch service {
	case ServiceUser:
		v.SetDefault("http_server.port", 8081)
		v.SetDefault("postgres.port", 5433)
		v.SetDefault("postgres.db_name", "userdb")
	default:
		v.SetDefault("http_server.port", 8080)
		v.SetDefault("postgres.port", 5432)
		v.SetDefault("postgres.db_name", "orderdb")
	}
}

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
