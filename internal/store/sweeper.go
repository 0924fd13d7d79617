package store

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Sweeper evicts expired jobs on a fixed interval. It is constructed once at
// process start and owned explicitly: Start launches the loop, Stop blocks
// until it has finished.
type Sweeper struct {
	store    *Store
	interval time.Duration
	logger   *zap.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSweeper creates a sweeper over the given store.
func NewSweeper(s *Store, interval time.Duration, logger *zap.Logger) *Sweeper {
	return &Sweeper{store: s, interval: interval, logger: logger}
}

// Start launches the background sweep loop.
func (sw *Sweeper) Start(ctx context.Context) {
	ctx, sw.cancel = context.WithCancel(ctx)
	sw.wg.Add(1)
	go func() {
		defer sw.wg.Done()
		sw.logger.Info("sweeper started", zap.Duration("interval", sw.interval))
		ticker := time.NewTicker(sw.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				sw.logger.Info("sweeper stopped")
				return
			case <-ticker.C:
				sw.sweep(ctx)
			}
		}
	}()
}

// Stop terminates the loop and waits for it to exit.
func (sw *Sweeper) Stop() {
	if sw.cancel != nil {
		sw.cancel()
	}
	sw.wg.Wait()
}

// Sweep runs one eviction pass. Exported so that tests and operators can
// trigger it without waiting for the ticker.
func (sw *Sweeper) Sweep(ctx context.Context) {
	sw.sweep(ctx)
}

func (sw *Sweeper) sweep(ctx context.Context) {
	ids, err := sw.store.ListExpired(ctx)
	if err != nil {
		sw.logger.Error("sweep listing failed", zap.Error(err))
		return
	}
	for _, id := range ids {
		if err := sw.store.Cleanup(ctx, id); err != nil {
			sw.logger.Warn("sweep cleanup failed", zap.String("job_id", id), zap.Error(err))
			continue
		}
		sw.logger.Info("expired job evicted", zap.String("job_id", id))
	}
}
