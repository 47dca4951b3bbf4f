package session

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/leadpilot-ai/chatbot-platform/pkg/logger"
	"github.com/leadpilot-ai/chatbot-platform/pkg/metrics"
)

// Reaper sweeps idle sessions on a fixed interval, decoupled from request
// volume.
type Reaper struct {
	store    *Store
	maxIdle  time.Duration
	interval time.Duration
	logger   *logger.Logger
}

// NewReaper creates a reaper for the given store.
func NewReaper(store *Store, maxIdle, interval time.Duration, log *logger.Logger) *Reaper {
	return &Reaper{
		store:    store,
		maxIdle:  maxIdle,
		interval: interval,
		logger:   log,
	}
}

// Run sweeps until the context is canceled. It blocks; run it in its own
// goroutine.
func (r *Reaper) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep()
		}
	}
}

// Sweep runs a single reap pass and records metrics.
func (r *Reaper) Sweep() {
	reaped := r.store.Reap(r.maxIdle)
	metrics.SessionsActive.Set(float64(r.store.Len()))
	if reaped > 0 {
		metrics.SessionsReapedTotal.Add(float64(reaped))
		r.logger.Info("reaped idle sessions",
			zap.Int("count", reaped),
			zap.Duration("max_idle", r.maxIdle),
		)
	}
}
