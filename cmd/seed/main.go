// Package main seeds a development database from a YAML fixture. Fixtures are
// turned into ordinary platform events queued through the transactional
// outbox, so they reach the projections the same way production traffic does.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"workgrid.io/workgrid/ent"
	"workgrid.io/workgrid/internal/config"
	"workgrid.io/workgrid/internal/domain"
	"workgrid.io/workgrid/internal/infrastructure"
	"workgrid.io/workgrid/internal/outbox"
	"workgrid.io/workgrid/internal/pkg/logger"
)

type fixture struct {
	Tenants []tenantFixture `yaml:"tenants"`
}

type tenantFixture struct {
	ID           string `yaml:"id"`
	Entitlements *struct {
		MaxProjects  int      `yaml:"max_projects"`
		MaxMembers   int      `yaml:"max_members"`
		MaxStorageMB int      `yaml:"max_storage_mb"`
		Features     []string `yaml:"features"`
	} `yaml:"entitlements"`
	Members []struct {
		UserID string `yaml:"user_id"`
		Role   string `yaml:"role"`
	} `yaml:"members"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var file string
	flag.StringVar(&file, "file", "seed.yaml", "YAML fixture to load")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := logger.Init(cfg.Log.Level, "console"); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	raw, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("read fixture %s: %w", file, err)
	}
	var fx fixture
	if err := yaml.Unmarshal(raw, &fx); err != nil {
		return fmt.Errorf("parse fixture %s: %w", file, err)
	}
	if len(fx.Tenants) == 0 {
		return fmt.Errorf("fixture %s declares no tenants", file)
	}

	ctx := context.Background()
	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("init database clients: %w", err)
	}
	defer db.Close()
	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(ctx); err != nil {
			return fmt.Errorf("auto-migrate: %w", err)
		}
	}

	queued, err := seed(ctx, db.EntClient, cfg.Consumer.Source, fx)
	if err != nil {
		return err
	}
	logger.Info("fixture queued through outbox",
		zap.String("file", file),
		zap.Int("tenants", len(fx.Tenants)),
		zap.Int("events", queued),
	)
	return nil
}

// seed queues one event per fixture entry in a single transaction: the run
// either seeds everything or nothing.
func seed(ctx context.Context, client *ent.Client, source string, fx fixture) (int, error) {
	tx, err := client.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin seed transaction: %w", err)
	}

	queued := 0
	for _, tenant := range fx.Tenants {
		if tenant.ID == "" {
			_ = tx.Rollback()
			return 0, fmt.Errorf("fixture tenant with empty id")
		}
		if tenant.Entitlements != nil {
			env, err := domain.NewEnvelope(domain.EventEntitlementsUpdated, source, tenant.ID,
				domain.EntitlementsUpdatedPayload{
					MaxProjects:  tenant.Entitlements.MaxProjects,
					MaxMembers:   tenant.Entitlements.MaxMembers,
					MaxStorageMB: tenant.Entitlements.MaxStorageMB,
					Features:     tenant.Entitlements.Features,
				})
			if err != nil {
				_ = tx.Rollback()
				return 0, err
			}
			if err := outbox.AppendTx(ctx, tx, env); err != nil {
				_ = tx.Rollback()
				return 0, err
			}
			queued++
		}
		for _, member := range tenant.Members {
			if member.UserID == "" || member.Role == "" {
				_ = tx.Rollback()
				return 0, fmt.Errorf("tenant %s: member needs user_id and role", tenant.ID)
			}
			env, err := domain.NewEnvelope(domain.EventMemberAdded, source, tenant.ID,
				domain.MemberAddedPayload{UserID: member.UserID, Role: member.Role})
			if err != nil {
				_ = tx.Rollback()
				return 0, err
			}
			if err := outbox.AppendTx(ctx, tx, env); err != nil {
				_ = tx.Rollback()
				return 0, err
			}
			queued++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit seed transaction: %w", err)
	}
	return queued, nil
}
