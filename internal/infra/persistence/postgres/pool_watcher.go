package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"
)

const (
	poolWatchInterval = 5 * time.Second
	poolWaitWarnAfter = 50 * time.Millisecond
)

// poolWatcher reports connection pool contention: requests that had to wait
// for a free connection since the previous sample.
type poolWatcher struct {
	logger   *slog.Logger
	stats    func() sql.DBStats
	interval time.Duration
	last     sql.DBStats
}

func newPoolWatcher(logger *slog.Logger, stats func() sql.DBStats) *poolWatcher {
	return &poolWatcher{
		logger:   logger,
		stats:    stats,
		interval: poolWatchInterval,
	}
}

func (w *poolWatcher) run(ctx context.Context) {
	if w.logger == nil || w.stats == nil {
		return
	}

	w.last = w.stats()
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.sample(ctx)
		}
	}
}

// sample logs the waits accumulated since the previous call. Nothing is logged when no caller waited.
func (w *poolWatcher) sample(ctx context.Context) {
	current := w.stats()
	waits := current.WaitCount - w.last.WaitCount
	waited := current.WaitDuration - w.last.WaitDuration
	w.last = current

	if waits <= 0 {
		return
	}

	level := slog.LevelDebug
	if waited >= poolWaitWarnAfter {
		level = slog.LevelWarn
	}

	w.logger.LogAttrs(ctx, level, "Connection pool contention",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avgWait", waited/time.Duration(waits)),
		slog.Int("inUse", current.InUse),
		slog.Int("idle", current.Idle),
		slog.Int("maxOpen", current.MaxOpenConnections),
	)
}
