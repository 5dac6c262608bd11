package config

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(ServiceOrder)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTPServer.Port)
	assert.Equal(t, "localhost", cfg.Postgres.Host)
	assert.Equal(t, 5432, cfg.Postgres.Port)
	assert.Equal(t, "orderdb", cfg.Postgres.DBName)
	assert.Equal(t, int32(1), cfg.Postgres.MinConns)
	assert.Equal(t, int32(10), cfg.Postgres.MaxConns)
	assert.Equal(t, 5*time.Second, cfg.Postgres.AcquireTimeout)
	assert.Equal(t, "lru", cfg.Cache.Backend)
	assert.Equal(t, []string{"localhost:9094"}, cfg.Kafka.Brokers)

	cfg, err = Load(ServiceUser)
	require.NoError(t, err)
	assert.Equal(t, 5433, cfg.Postgres.Port)
	assert.Equal(t, "userdb", cfg.Postgres.DBName)
	assert.Equal(t, 8081, cfg.HTTPServer.Port)
}

func TestLoad_EnvPrefix(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("USER_POSTGRES_HOST", "db.internal")
	t.Setenv("USER_POSTGRES_MAX_CONNS", "20")
	t.Setenv("ORDER_POSTGRES_HOST", "ignored-by-user")
	t.Setenv("USER_KAFKA_BROKERS", "k1:9092, k2:9092")

	cfg, err := Load(ServiceUser)
	require.NoError(t, err)
	assert.Equal(t, "db.internal", cfg.Postgres.Host)
	assert.Equal(t, int32(20), cfg.Postgres.MaxConns)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
}

func TestLoad_RejectsMinAboveMax(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ORDER_POSTGRES_MIN_CONNS", "5")
	t.Setenv("ORDER_POSTGRES_MAX_CONNS", "2")

	_, err := Load(ServiceOrder)
	require.Error(t, err)
}

func TestValidate_Cache(t *testing.T) {
	cfg := &Config{
		Postgres: PostgresConfig{Host: "h", DBName: "d", MinConns: 1, MaxConns: 1},
		Cache:    CacheConfig{Backend: "memcached"},
	}
	require.Error(t, cfg.Validate())

	cfg.Cache.Backend = "redis"
	require.Error(t, cfg.Validate())

	cfg.Redis.Addr = "localhost:6379"
	require.NoError(t, cfg.Validate())
}

func TestPostgresDSN(t *testing.T) {
	c := PostgresConfig{Host: "h", Port: 5432, DBName: "orderdb", User: "u", Password: "p", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@h:5432/orderdb?sslmode=disable", c.DSN())
}

func TestPostgresDSN_EscapesCredentials(t *testing.T) {
	c := PostgresConfig{Host: "db", Port: 5432, DBName: "orderdb", User: "app", Password: "p@ss/w%rd", SSLMode: "disable"}

	connCfg, err := pgx.ParseConfig(c.DSN())
	require.NoError(t, err)
	assert.Equal(t, "app", connCfg.User)
	assert.Equal(t, "p@ss/w%rd", connCfg.Password)
	assert.Equal(t, "db", connCfg.Host)
	assert.Equal(t, uint16(5432), connCfg.Port)
	assert.Equal(t, "orderdb", connCfg.Database)
}
