// Package config provides configuration management for the Workgrid consumer
// core.
//
// Configuration is loaded from:
// 1. config.yaml file (optional)
// 2. Environment variables (standard names like DATABASE_URL, LOG_LEVEL)
// 3. Default values
package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config is the root configuration structure.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	River    RiverConfig    `mapstructure:"river"`
	Worker   WorkerConfig   `mapstructure:"worker"`
	Consumer ConsumerConfig `mapstructure:"consumer"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Ledger   LedgerConfig   `mapstructure:"ledger"`
	Ops      OpsConfig      `mapstructure:"ops"`
}

// DatabaseConfig contains PostgreSQL connection settings. Ent and River share
// a single pgxpool.
type DatabaseConfig struct {
	URL string `mapstructure:"url"`

	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
	SSLMode  string `mapstructure:"sslmode"`

	// Pool configuration (shared by Ent and River)
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"`
	MaxConnIdleTime time.Duration `mapstructure:"max_conn_idle_time"`

	AutoMigrate bool `mapstructure:"auto_migrate"`
}

// DSN returns the PostgreSQL connection string.
// Priority: DATABASE_URL > constructed from individual fields.
func (c DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	sslmode := c.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Database, sslmode,
	)
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or console
}

// RiverConfig contains River Queue settings.
type RiverConfig struct {
	MaxWorkers                  int           `mapstructure:"max_workers"`
	CompletedJobRetentionPeriod time.Duration `mapstructure:"completed_job_retention_period"`
	OutboxDrainInterval         time.Duration `mapstructure:"outbox_drain_interval"`
	CacheSweepInterval          time.Duration `mapstructure:"cache_sweep_interval"`
	LedgerPruneInterval         time.Duration `mapstructure:"ledger_prune_interval"`
}

// WorkerConfig contains worker pool settings.
type WorkerConfig struct {
	PartitionPoolSize int `mapstructure:"partition_pool_size"`
	GeneralPoolSize   int `mapstructure:"general_pool_size"`
}

// ConsumerConfig contains event consumption settings.
type ConsumerConfig struct {
	// GroupID names the consumer group on the bus; it is also the
	// consumer_id recorded in the idempotency ledger.
	GroupID string `mapstructure:"group_id"`

	// Source is the service name stamped on published envelopes.
	Source string `mapstructure:"source"`

	// Partitions is the number of bus partitions consumed concurrently.
	Partitions int `mapstructure:"partitions"`

	// HandlerTimeout bounds a single handler invocation. Exceeding it is
	// handler failure, subject to the retry policy.
	HandlerTimeout time.Duration `mapstructure:"handler_timeout"`

	// MaxRetries bounds redelivery attempts before dead-lettering.
	MaxRetries int `mapstructure:"max_retries"`

	// RetryBackoff is the base backoff; doubled per attempt up to
	// RetryBackoffMax.
	RetryBackoff    time.Duration `mapstructure:"retry_backoff"`
	RetryBackoffMax time.Duration `mapstructure:"retry_backoff_max"`
}

// CacheConfig contains read-through cache settings.
type CacheConfig struct {
	// MaxEntryAge is the safety-net TTL. Event-driven invalidation is
	// authoritative; entries older than this are treated as misses in case
	// the correlated invalidation event was permanently lost.
	MaxEntryAge time.Duration `mapstructure:"max_entry_age"`
}

// LedgerConfig contains idempotency ledger settings.
type LedgerConfig struct {
	// Retention is how long processed-event rows are kept. Duplicates
	// arriving after pruning are reprocessed; effects are idempotent at the
	// data layer, so correctness holds.
	Retention time.Duration `mapstructure:"retention"`
}

// OpsConfig contains the operator HTTP surface settings.
type OpsConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`

	// TokenSecret verifies operator bearer tokens (HS256). Token issuance
	// is external.
	TokenSecret string `mapstructure:"token_secret"`
}

var (
	bootstrapLoggerOnce sync.Once
	bootstrapLogger     *zap.Logger
)

// Load reads configuration from file and environment variables.
// Standard environment variables without prefix: DATABASE_URL, LOG_LEVEL,
// CONSUMER_GROUP_ID, OPS_TOKEN_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/workgrid")

	// Maps nested config: consumer.max_retries → CONSUMER_MAX_RETRIES
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
		// Config file is optional, use defaults and env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.ensureSecrets(); err != nil {
		return nil, fmt.Errorf("ensure secrets: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// Validate checks for critical configuration errors.
func (c *Config) Validate() error {
	if c.Consumer.GroupID == "" {
		return fmt.Errorf("consumer.group_id must not be empty")
	}
	if c.Consumer.Partitions < 1 {
		return fmt.Errorf("consumer.partitions must be at least 1")
	}
	// Every partition gets a dedicated everlasting consume loop; a pool
	// smaller than the partition count would never schedule the excess
	// partitions.
	if c.Consumer.Partitions > c.Worker.PartitionPoolSize {
		return fmt.Errorf("worker.partition_pool_size (%d) must be at least consumer.partitions (%d)",
			c.Worker.PartitionPoolSize, c.Consumer.Partitions)
	}
	if c.Consumer.MaxRetries < 0 {
		return fmt.Errorf("consumer.max_retries must not be negative")
	}
	if c.Consumer.RetryBackoff > c.Consumer.RetryBackoffMax {
		return fmt.Errorf("consumer.retry_backoff must not exceed consumer.retry_backoff_max")
	}
	if c.Ops.Enabled && len(c.Ops.TokenSecret) < 32 {
		return fmt.Errorf("ops.token_secret must be at least 32 characters when the ops server is enabled")
	}
	return nil
}

// ensureSecrets auto-generates missing secrets on first boot.
func (c *Config) ensureSecrets() error {
	if c.Ops.Enabled && c.Ops.TokenSecret == "" {
		secret, err := generateSecureRandomHex(32)
		if err != nil {
			return fmt.Errorf("auto-generate ops token secret: %w", err)
		}
		c.Ops.TokenSecret = secret
		logBootstrapWarn(
			"auto-generated ops.token_secret; set OPS_TOKEN_SECRET env var for persistence",
			zap.Int("length", len(secret)),
		)
	}
	return nil
}

func logBootstrapWarn(msg string, fields ...zap.Field) {
	bootstrapLoggerOnce.Do(func() {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)

		l, err := cfg.Build()
		if err != nil {
			bootstrapLogger = zap.NewNop()
			return
		}
		bootstrapLogger = l
	})

	bootstrapLogger.Warn(msg, fields...)
}

// generateSecureRandomHex produces a hex-encoded string of n random bytes.
func generateSecureRandomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("crypto/rand: %w", err)
	}
	return hex.EncodeToString(b), nil
}

func setDefaults(v *viper.Viper) {
	// Database (shared pool for Ent + River)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "workgrid")
	v.SetDefault("database.password", "")
	v.SetDefault("database.database", "workgrid")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 50)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.max_conn_lifetime", "1h")
	v.SetDefault("database.max_conn_idle_time", "10m")
	v.SetDefault("database.auto_migrate", false)

	// Log
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// River
	v.SetDefault("river.max_workers", 10)
	v.SetDefault("river.completed_job_retention_period", "24h")
	v.SetDefault("river.outbox_drain_interval", "5s")
	v.SetDefault("river.cache_sweep_interval", "1h")
	v.SetDefault("river.ledger_prune_interval", "24h")

	// Worker pool
	v.SetDefault("worker.partition_pool_size", 16)
	v.SetDefault("worker.general_pool_size", 64)

	// Consumer
	v.SetDefault("consumer.group_id", "workgrid-core")
	v.SetDefault("consumer.source", "workgrid-core")
	v.SetDefault("consumer.partitions", 8)
	v.SetDefault("consumer.handler_timeout", "30s")
	v.SetDefault("consumer.max_retries", 5)
	v.SetDefault("consumer.retry_backoff", "200ms")
	v.SetDefault("consumer.retry_backoff_max", "30s")

	// Cache safety net (event-driven invalidation is authoritative)
	v.SetDefault("cache.max_entry_age", "24h")

	// Ledger retention
	v.SetDefault("ledger.retention", "720h") // 30 days

	// Ops server
	v.SetDefault("ops.enabled", true)
	v.SetDefault("ops.port", 8091)
	v.SetDefault("ops.read_timeout", "30s")
	v.SetDefault("ops.write_timeout", "30s")
	v.SetDefault("ops.shutdown_timeout", "30s")
}
