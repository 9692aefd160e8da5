package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"workgrid.io/workgrid/internal/pkg/logger"
)

// Start starts the background services: river jobs, the dispatch loops, and
// the operator server. Everything runs on the worker pools; Start itself
// returns once they are launched.
func (a *Application) Start(ctx context.Context) error {
	if a.DB != nil && a.DB.RiverClient != nil {
		if err := a.DB.RiverClient.Start(ctx); err != nil {
			return fmt.Errorf("start river client: %w", err)
		}
		logger.Info("river client started, jobs will now be consumed")
	}

	if err := a.Pools.General.Submit(ctx, func(ctx context.Context) {
		if err := a.Dispatcher.Run(ctx, a.subscription); err != nil {
			logger.Error("dispatcher stopped with error", zap.Error(err))
		}
	}); err != nil {
		return fmt.Errorf("start dispatcher: %w", err)
	}
	logger.Info("dispatcher started",
		zap.Int("partitions", a.subscription.Partitions()),
		zap.Strings("topics", a.Dispatcher.Topics()),
	)

	if a.Ops != nil {
		if err := a.Pools.General.Submit(ctx, func(ctx context.Context) {
			if err := a.Ops.Run(ctx); err != nil {
				logger.Error("ops server stopped with error", zap.Error(err))
			}
		}); err != nil {
			return fmt.Errorf("start ops server: %w", err)
		}
	}
	return nil
}

// Shutdown gracefully shuts down all application components.
func (a *Application) Shutdown() {
	shutdownCtx := context.Background()

	if a.DB != nil && a.DB.RiverClient != nil {
		if err := a.DB.RiverClient.Stop(shutdownCtx); err != nil {
			logger.Error("failed to stop river client", zap.Error(err))
		} else {
			logger.Info("river client stopped")
		}
	}

	if a.Bus != nil {
		a.Bus.Close()
	}
	if a.subscription != nil {
		a.subscription.Close()
	}
	if a.Pools != nil {
		a.Pools.Shutdown()
	}
	if a.DB != nil {
		a.DB.Close()
	}
}
