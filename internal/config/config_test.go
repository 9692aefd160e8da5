package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir()) // no config.yaml present

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "workgrid-core", cfg.Consumer.GroupID)
	require.Equal(t, 8, cfg.Consumer.Partitions)
	require.Equal(t, 5, cfg.Consumer.MaxRetries)
	require.Equal(t, 30*time.Second, cfg.Consumer.HandlerTimeout)
	require.Equal(t, 24*time.Hour, cfg.Cache.MaxEntryAge)
	require.Equal(t, 30*24*time.Hour, cfg.Ledger.Retention)
	require.True(t, cfg.Ops.Enabled)
	// Enabled ops server with no secret configured gets one auto-generated.
	require.GreaterOrEqual(t, len(cfg.Ops.TokenSecret), 32)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CONSUMER_GROUP_ID", "workgrid-eu")
	t.Setenv("CONSUMER_MAX_RETRIES", "2")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/workgrid?sslmode=require")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "workgrid-eu", cfg.Consumer.GroupID)
	require.Equal(t, 2, cfg.Consumer.MaxRetries)
	require.Equal(t, "postgres://u:p@db:5432/workgrid?sslmode=require", cfg.Database.DSN())
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "empty group id",
			mutate:  func(c *Config) { c.Consumer.GroupID = "" },
			wantErr: "consumer.group_id",
		},
		{
			name:    "zero partitions",
			mutate:  func(c *Config) { c.Consumer.Partitions = 0 },
			wantErr: "consumer.partitions",
		},
		{
			name: "more partitions than partition workers",
			mutate: func(c *Config) {
				c.Consumer.Partitions = 32
				c.Worker.PartitionPoolSize = 16
			},
			wantErr: "worker.partition_pool_size",
		},
		{
			name: "backoff exceeds max",
			mutate: func(c *Config) {
				c.Consumer.RetryBackoff = time.Minute
				c.Consumer.RetryBackoffMax = time.Second
			},
			wantErr: "retry_backoff",
		},
		{
			name: "ops enabled with short secret",
			mutate: func(c *Config) {
				c.Ops.Enabled = true
				c.Ops.TokenSecret = "short"
			},
			wantErr: "ops.token_secret",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func validConfig() *Config {
	return &Config{
		Consumer: ConsumerConfig{
			GroupID:         "workgrid-core",
			Source:          "workgrid-core",
			Partitions:      4,
			HandlerTimeout:  time.Second,
			MaxRetries:      3,
			RetryBackoff:    time.Millisecond,
			RetryBackoffMax: time.Second,
		},
		Worker: WorkerConfig{
			PartitionPoolSize: 16,
			GeneralPoolSize:   64,
		},
		Ops: OpsConfig{
			Enabled:     true,
			TokenSecret: "0123456789abcdef0123456789abcdef",
		},
	}
}
