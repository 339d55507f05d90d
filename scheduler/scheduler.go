// Package scheduler drives the reminder tick at a fixed cadence. Each tick
// is an independent run; nothing is carried over between ticks.
package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"

	"taskreminder/metrics"
	"taskreminder/reminder"
)

type Scheduler struct {
	svc      *reminder.Service
	lease    *Lease
	interval time.Duration
	log      *zap.Logger
}

func New(svc *reminder.Service, lease *Lease, interval time.Duration, log *zap.Logger) *Scheduler {
	return &Scheduler{
		svc:      svc,
		lease:    lease,
		interval: interval,
		log:      log,
	}
}

// Start blocks, running one tick per interval until ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	s.log.Info("Scheduler started", zap.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info("Scheduler stopped")
			return
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context) {
	if !s.lease.Acquire(ctx) {
		s.log.Debug("Tick skipped, lease held by another run")
		metrics.TickCount.WithLabelValues("skipped").Inc()
		return
	}
	defer s.lease.Release(ctx)

	if _, err := s.svc.RunTick(ctx, time.Now()); err != nil {
		// Nothing was marked sent; the next tick retries from scratch.
		s.log.Error("Tick failed", zap.Error(err))
	}
}
