package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// Reconciler persists the daily and weekly buckets that cover a moment
type Reconciler interface {
	ReconcileDaily(ctx context.Context, asOf time.Time) (bool, error)
	ReconcileWeekly(ctx context.Context, asOf time.Time) (bool, error)
}

// RollupWorker runs the bucket reconciliation on a fixed interval
type RollupWorker struct {
	reconciler Reconciler
	interval   time.Duration
	now        func() time.Time
}

// NewRollupWorker creates a new RollupWorker. A non-positive interval
// defaults to 24h.
func NewRollupWorker(reconciler Reconciler, interval time.Duration) *RollupWorker {
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	return &RollupWorker{
		reconciler: reconciler,
		interval:   interval,
		now:        time.Now,
	}
}

// Start runs one pass immediately and then one per interval until ctx is done
func (w *RollupWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.Info().Dur("interval", w.interval).Msg("Rollup worker started")
	w.RunOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("Rollup worker stopped")
			return
		case <-ticker.C:
			w.RunOnce(ctx)
		}
	}
}

// RunOnce reconciles the current week and day. Failures are logged and the
// next tick retries.
func (w *RollupWorker) RunOnce(ctx context.Context) {
	now := w.now()

	if created, err := w.reconciler.ReconcileWeekly(ctx, now); err != nil {
		log.Error().Err(err).Msg("Weekly rollup failed")
	} else if created {
		log.Debug().Time("as_of", now).Msg("Weekly bucket created by worker")
	}

	if created, err := w.reconciler.ReconcileDaily(ctx, now); err != nil {
		log.Error().Err(err).Msg("Daily rollup failed")
	} else if created {
		log.Debug().Time("as_of", now).Msg("Daily bucket created by worker")
	}
}
