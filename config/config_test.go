package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("POSTGRES_ADDR", "")
	t.Setenv("JWT_SECRET", "")

	cfg := Load()

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, 30*24*time.Hour, cfg.Redis.ClickClaimTTL)
	assert.Equal(t, 50, cfg.Reports.DefaultLocationLimit)
	assert.Equal(t, "127.0.0.1:6379", cfg.Redis.GetRedisAddr())

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("POSTGRES_ADDR", "db:5432")
	t.Setenv("POSTGRES_USER", "app")
	t.Setenv("POSTGRES_PASSWORD", "p@ss")
	t.Setenv("POSTGRES_DB", "content")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("REDIS_ENDPOINT", "redis.internal:6380")
	t.Setenv("COUNTER_FLUSH_INTERVAL", "250ms")
	t.Setenv("CLICKHOUSE_ASYNC_INSERT_ENABLED", "yes")
	t.Setenv("PUBLIC_BASE_URL", "https://pages.example.com/")

	cfg := Load()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "postgres://app:p%40ss@db:5432/content?sslmode=disable", cfg.Postgres.URL)
	assert.Equal(t, "redis.internal:6380", cfg.Redis.GetRedisAddr())
	assert.Equal(t, 250*time.Millisecond, cfg.Counters.FlushInterval)
	assert.Equal(t, "https://pages.example.com", cfg.PublicBaseURL)
	assert.True(t, cfg.ClickHouse.AsyncInsertEnabled)
}

func TestGetClickHouseDSN(t *testing.T) {
	c := ClickHouseConfig{Host: "ch", Port: "9000", Database: "analytics", User: "app", Password: "pw"}
	assert.Equal(t, "clickhouse://app:pw@ch:9000/analytics", c.GetClickHouseDSN())

	c.AsyncInsertEnabled = true
	c.AsyncInsertWait = 1
	c.AsyncInsertMaxDataSize = 1024
	c.AsyncInsertBusyTimeout = 200
	assert.Equal(t,
		"clickhouse://app:pw@ch:9000/analytics?async_insert=1&wait_for_async_insert=1&async_insert_max_data_size=1024&async_insert_busy_timeout_ms=200",
		c.GetClickHouseDSN())

	c.DSN = "clickhouse://override"
	assert.Equal(t, "clickhouse://override", c.GetClickHouseDSN())
}
