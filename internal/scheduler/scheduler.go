package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"news_pusher/internal/domain"
)

// Runner is one publish pass over the source catalog.
type Runner interface {
	Run(ctx context.Context) (*domain.RunStats, error)
}

// Scheduler repeats publish runs on a fixed interval for daemon mode. The
// normal deployment is run-once under an external trigger; this exists for
// environments without one.
type Scheduler struct {
	runner     Runner
	interval   time.Duration
	runTimeout time.Duration
	logger     *slog.Logger
}

func NewScheduler(runner Runner, interval, runTimeout time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		runner:     runner,
		interval:   interval,
		runTimeout: runTimeout,
		logger:     logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runOnce(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context) {
	runCtx, cancel := context.WithTimeout(ctx, s.runTimeout)
	defer cancel()

	if _, err := s.runner.Run(runCtx); err != nil {
		s.logger.Error("publish run failed", "error", err)
	}
	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		s.logger.Warn("publish run cut off by run timeout", "run_timeout", s.runTimeout)
	}
}
