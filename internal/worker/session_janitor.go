package worker

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Sweeper evicts idle sessions.
type Sweeper interface {
	Sweep(ctx context.Context) (int, error)
}

// SessionJanitor periodically evicts idle console sessions.
type SessionJanitor struct {
	sweeper  Sweeper
	interval time.Duration
	logger   *zap.Logger
}

// NewSessionJanitor builds a janitor that sweeps every interval.
func NewSessionJanitor(sweeper Sweeper, interval time.Duration, logger *zap.Logger) *SessionJanitor {
	if logger == nil {
		logger = zap.NewNop()
	}
	if interval <= 0 {
		interval = time.Minute
	}
	return &SessionJanitor{sweeper: sweeper, interval: interval, logger: logger}
}

// Run sweeps until ctx is cancelled.
func (j *SessionJanitor) Run(ctx context.Context) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			j.logger.Info("session janitor stopped")
			return
		case <-ticker.C:
			if _, err := j.sweeper.Sweep(ctx); err != nil {
				j.logger.Error("session sweep failed", zap.Error(err))
			}
		}
	}
}

// StartSessionJanitor runs the janitor in the background.
func StartSessionJanitor(ctx context.Context, janitor *SessionJanitor) {
	if janitor == nil {
		return
	}
	go janitor.Run(ctx)
}
