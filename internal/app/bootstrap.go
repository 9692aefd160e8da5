// Package app is the composition root: it wires the bus, the dispatcher,
// the cache and saga handlers, the river jobs, and the operator server.
// Bootstrap stays orchestration-only; behavior lives in the wired packages.
package app

import (
	"context"
	"fmt"

	"github.com/riverqueue/river"

	"workgrid.io/workgrid/internal/audit"
	"workgrid.io/workgrid/internal/bus"
	"workgrid.io/workgrid/internal/cache"
	"workgrid.io/workgrid/internal/config"
	"workgrid.io/workgrid/internal/dispatch"
	"workgrid.io/workgrid/internal/infrastructure"
	"workgrid.io/workgrid/internal/jobs"
	"workgrid.io/workgrid/internal/ledger"
	"workgrid.io/workgrid/internal/ops"
	"workgrid.io/workgrid/internal/outbox"
	"workgrid.io/workgrid/internal/pkg/worker"
	"workgrid.io/workgrid/internal/saga"
)

// Application holds composed application dependencies.
type Application struct {
	Config      *config.Config
	DB          *infrastructure.DatabaseClients
	Pools       *worker.Pools
	Bus         *bus.MemoryBus
	Dispatcher  *dispatch.Dispatcher
	Coordinator *saga.Coordinator
	Policy      *cache.Engine
	Ops         *ops.Server

	subscription bus.Subscription
}

// Bootstrap initializes all dependencies using manual DI.
func Bootstrap(ctx context.Context, cfg *config.Config) (*Application, error) {
	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("init database clients: %w", err)
	}
	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
	}

	pools, err := worker.NewPools(ctx, worker.PoolConfig{
		PartitionPoolSize: cfg.Worker.PartitionPoolSize,
		GeneralPoolSize:   cfg.Worker.GeneralPoolSize,
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init worker pools: %w", err)
	}

	b := bus.NewMemoryBus(cfg.Consumer.Partitions)

	l := ledger.New(db.EntClient, cfg.Consumer.GroupID)
	sink := dispatch.NewSink(db.EntClient)
	dispatcher := dispatch.New(dispatch.Config{
		HandlerTimeout:  cfg.Consumer.HandlerTimeout,
		MaxRetries:      cfg.Consumer.MaxRetries,
		RetryBackoff:    cfg.Consumer.RetryBackoff,
		RetryBackoffMax: cfg.Consumer.RetryBackoffMax,
	}, l, sink, pools)

	cache.RegisterHandlers(dispatcher)
	store := cache.NewStore(db.EntClient)
	policy := cache.NewEngine(store, db.EntClient, cfg.Cache.MaxEntryAge)

	coordinator := saga.NewCoordinator(db.EntClient, cfg.Consumer.Source, saga.TenantDeletion())
	coordinator.RegisterHandlers(dispatcher)

	drainer := outbox.NewDrainer(db.EntClient, b, 100)

	workers := river.NewWorkers()
	river.AddWorker(workers, jobs.NewOutboxDrainWorker(drainer))
	river.AddWorker(workers, jobs.NewLedgerPruneWorker(l, drainer, cfg.Ledger.Retention))
	river.AddWorker(workers, jobs.NewCacheSweepWorker(store, cfg.Cache.MaxEntryAge))
	if err := db.InitRiverClient(workers, cfg.River); err != nil {
		pools.Shutdown()
		db.Close()
		return nil, fmt.Errorf("init river workers: %w", err)
	}
	registerPeriodicJobs(db, cfg.River)

	sub, err := b.Subscribe(cfg.Consumer.GroupID, dispatcher.Topics()...)
	if err != nil {
		pools.Shutdown()
		db.Close()
		return nil, fmt.Errorf("subscribe consumer group: %w", err)
	}

	app := &Application{
		Config:       cfg,
		DB:           db,
		Pools:        pools,
		Bus:          b,
		Dispatcher:   dispatcher,
		Coordinator:  coordinator,
		Policy:       policy,
		subscription: sub,
	}
	if cfg.Ops.Enabled {
		app.Ops = ops.NewServer(cfg.Ops, dispatcher, sink, coordinator, audit.NewRecorder(db.EntClient), pools)
	}
	return app, nil
}

func registerPeriodicJobs(db *infrastructure.DatabaseClients, cfg config.RiverConfig) {
	if db.RiverClient == nil {
		return
	}
	db.RiverClient.PeriodicJobs().Add(
		river.NewPeriodicJob(
			river.PeriodicInterval(cfg.OutboxDrainInterval),
			func() (river.JobArgs, *river.InsertOpts) {
				return jobs.OutboxDrainArgs{}, nil
			},
			&river.PeriodicJobOpts{RunOnStart: true},
		),
	)
	db.RiverClient.PeriodicJobs().Add(
		river.NewPeriodicJob(
			river.PeriodicInterval(cfg.CacheSweepInterval),
			func() (river.JobArgs, *river.InsertOpts) {
				return jobs.CacheSweepArgs{}, nil
			},
			&river.PeriodicJobOpts{RunOnStart: false},
		),
	)
	db.RiverClient.PeriodicJobs().Add(
		river.NewPeriodicJob(
			river.PeriodicInterval(cfg.LedgerPruneInterval),
			func() (river.JobArgs, *river.InsertOpts) {
				return jobs.LedgerPruneArgs{}, nil
			},
			&river.PeriodicJobOpts{RunOnStart: true},
		),
	)
}
