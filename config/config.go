package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Port          string
	PublicBaseURL string // host used when synthesizing target URLs
	ClickHouse    ClickHouseConfig
	Redis         RedisConfig
	Postgres      PostgresConfig
	Auth          AuthConfig
	Counters      CounterConfig
	Reports       ReportConfig
	Log           LogConfig
}

// ClickHouseConfig holds ClickHouse connection settings
type ClickHouseConfig struct {
	Host                   string
	Port                   string
	Database               string
	User                   string
	Password               string
	DSN                    string
	AsyncInsertEnabled     bool  // whether to use async inserts
	AsyncInsertWait        int   // wait_for_async_insert (0 or 1)
	AsyncInsertMaxDataSize int64 // async_insert_max_data_size in bytes
	AsyncInsertBusyTimeout int   // async_insert_busy_timeout_ms in milliseconds
	MaxScanRows            int   // upper bound of rows a single report query may return
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	Endpoint string
	DB       int

	ClickClaimTTL  time.Duration // lifetime of a click dedup claim
	ViewClaimGrace time.Duration // added to the time left until UTC midnight for view claims
}

type PostgresConfig struct {
	URL string
}

type AuthConfig struct {
	JWTSecret string
	JWTIssuer string
}

// CounterConfig sizes the background counter updater.
type CounterConfig struct {
	BufferCapacity int
	BatchSize      int
	FlushInterval  time.Duration
}

type ReportConfig struct {
	DefaultLocationLimit int
	MaxLocationLimit     int
	DefaultTopLinksLimit int
	RealtimeMinutes      int
	DashboardTimeout     time.Duration
}

type LogConfig struct {
	Level  string
	Format string // "json" or "console"
}

// Load reads configuration from a .env file, when present, and environment variables
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:          getEnv("PORT", "3000"),
		PublicBaseURL: strings.TrimRight(getEnv("PUBLIC_BASE_URL", "http://localhost:3000"), "/"),
		ClickHouse: ClickHouseConfig{
			Host:                   getEnv("CLICKHOUSE_HOST", "127.0.0.1"),
			Port:                   getEnv("CLICKHOUSE_PORT", "9000"),
			Database:               getEnv("CLICKHOUSE_DATABASE", "default"),
			User:                   getEnv("CLICKHOUSE_USER", "app"),
			Password:               getEnv("CLICKHOUSE_PASSWORD", "clickhouse_app_password"),
			DSN:                    getEnv("CLICKHOUSE_DSN", ""),
			AsyncInsertEnabled:     getEnvAsBool("CLICKHOUSE_ASYNC_INSERT_ENABLED", false),
			AsyncInsertWait:        getEnvAsInt("CLICKHOUSE_ASYNC_INSERT_WAIT", 1),
			AsyncInsertMaxDataSize: getEnvAsInt64("CLICKHOUSE_ASYNC_INSERT_MAX_DATA_SIZE", 10485760),
			AsyncInsertBusyTimeout: getEnvAsInt("CLICKHOUSE_ASYNC_INSERT_BUSY_TIMEOUT", 200),
			MaxScanRows:            getEnvAsInt("CLICKHOUSE_MAX_SCAN_ROWS", 1_000_000),
		},
		Redis: RedisConfig{
			Host:           getEnv("REDIS_HOST", "127.0.0.1"),
			Port:           getEnv("REDIS_PORT", "6379"),
			Password:       getEnv("REDIS_PASSWORD", ""),
			Endpoint:       getEnv("REDIS_ENDPOINT", ""),
			DB:             getEnvAsInt("REDIS_DB", 0),
			ClickClaimTTL:  getDuration("REDIS_CLICK_CLAIM_TTL", 30*24*time.Hour),
			ViewClaimGrace: getDuration("REDIS_VIEW_CLAIM_GRACE", 5*time.Minute),
		},
		Postgres: PostgresConfig{
			URL: postgresURL(),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", ""),
			JWTIssuer: getEnv("JWT_ISSUER", ""),
		},
		Counters: CounterConfig{
			BufferCapacity: getEnvAsInt("COUNTER_BUFFER_CAPACITY", 10000),
			BatchSize:      getEnvAsInt("COUNTER_BATCH_SIZE", 500),
			FlushInterval:  getDuration("COUNTER_FLUSH_INTERVAL", time.Second),
		},
		Reports: ReportConfig{
			DefaultLocationLimit: getEnvAsInt("REPORT_DEFAULT_LOCATION_LIMIT", 50),
			MaxLocationLimit:     getEnvAsInt("REPORT_MAX_LOCATION_LIMIT", 500),
			DefaultTopLinksLimit: getEnvAsInt("REPORT_DEFAULT_TOP_LINKS_LIMIT", 10),
			RealtimeMinutes:      getEnvAsInt("REPORT_REALTIME_MINUTES", 30),
			DashboardTimeout:     getDuration("REPORT_DASHBOARD_TIMEOUT", 30*time.Second),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "console"),
		},
	}
}

// Validate fails fast on settings the service cannot start without
func (c *Config) Validate() error {
	var errs []error
	if c.Postgres.URL == "" {
		errs = append(errs, errors.New("missing database config: provide DATABASE_URL or POSTGRES_ADDR/POSTGRES_USER/POSTGRES_DB"))
	}
	if c.Auth.JWTSecret == "" {
		errs = append(errs, errors.New("missing JWT_SECRET"))
	}
	if c.Counters.BatchSize <= 0 || c.Counters.BufferCapacity <= 0 {
		errs = append(errs, errors.New("counter batch size and buffer capacity must be positive"))
	}
	if c.Reports.MaxLocationLimit < c.Reports.DefaultLocationLimit {
		errs = append(errs, fmt.Errorf("REPORT_MAX_LOCATION_LIMIT (%d) is below the default limit (%d)",
			c.Reports.MaxLocationLimit, c.Reports.DefaultLocationLimit))
	}
	return errors.Join(errs...)
}

func (c *ClickHouseConfig) GetClickHouseDSN() string {
	if c.DSN != "" {
		return c.DSN
	}

	// Build DSN from components
	dsn := "clickhouse://"
	if c.User != "" {
		dsn += c.User
		if c.Password != "" {
			dsn += ":" + c.Password
		}
		dsn += "@"
	}
	dsn += c.Host + ":" + c.Port + "/" + c.Database

	if c.AsyncInsertEnabled {
		// These settings apply to all queries on this connection
		dsn += "?" + strings.Join([]string{
			"async_insert=1",
			fmt.Sprintf("wait_for_async_insert=%d", c.AsyncInsertWait),
			fmt.Sprintf("async_insert_max_data_size=%d", c.AsyncInsertMaxDataSize),
			fmt.Sprintf("async_insert_busy_timeout_ms=%d", c.AsyncInsertBusyTimeout),
		}, "&")
	}

	return dsn
}

func (r *RedisConfig) GetRedisAddr() string {
	if r.Endpoint != "" {
		return r.Endpoint
	}
	return r.Host + ":" + r.Port
}

// postgresURL prefers DATABASE_URL and otherwise builds one from POSTGRES_*.
func postgresURL() string {
	if v := getEnv("DATABASE_URL", ""); v != "" {
		return v
	}

	addr := getEnv("POSTGRES_ADDR", "")
	user := getEnv("POSTGRES_USER", "")
	db := getEnv("POSTGRES_DB", "")
	if addr == "" || user == "" || db == "" {
		return ""
	}

	u := &url.URL{
		Scheme: "postgres",
		Host:   addr,
		Path:   "/" + strings.TrimPrefix(db, "/"),
	}
	if pass := getEnv("POSTGRES_PASSWORD", ""); pass != "" {
		u.User = url.UserPassword(user, pass)
	} else {
		u.User = url.User(user)
	}
	q := url.Values{}
	q.Set("sslmode", getEnv("POSTGRES_SSLMODE", "disable"))
	u.RawQuery = q.Encode()
	return u.String()
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "t", "yes", "y", "on":
		return true
	case "0", "false", "f", "no", "n", "off":
		return false
	default:
		return defaultValue
	}
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
