package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/yuzvak/nhh-storefront/internal/application/session"
	"github.com/yuzvak/nhh-storefront/internal/infrastructure/monitoring"
	"github.com/yuzvak/nhh-storefront/internal/pkg/clock"
	"github.com/yuzvak/nhh-storefront/internal/pkg/logger"
)

// SessionJanitor periodically drops sessions that have been idle for longer
// than maxIdle.
type SessionJanitor struct {
	sessions *session.Registry
	clock    clock.Clock
	logger   *logger.Logger
	interval time.Duration
	maxIdle  time.Duration

	stopOnce sync.Once
	stopChan chan struct{}
}

func NewSessionJanitor(
	sessions *session.Registry,
	c clock.Clock,
	logger *logger.Logger,
	interval, maxIdle time.Duration,
) *SessionJanitor {
	return &SessionJanitor{
		sessions: sessions,
		clock:    c,
		logger:   logger,
		interval: interval,
		maxIdle:  maxIdle,
		stopChan: make(chan struct{}),
	}
}

// Start sweeps every interval until ctx is cancelled or Stop is called.
func (j *SessionJanitor) Start(ctx context.Context) error {
	j.logger.Info("Starting session janitor", "interval", j.interval.String(), "max_idle", j.maxIdle.String())

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			j.logger.Info("Session janitor stopped")
			return nil
		case <-j.stopChan:
			j.logger.Info("Session janitor stopped")
			return nil
		case <-ticker.C:
			j.Sweep()
		}
	}
}

func (j *SessionJanitor) Stop() {
	j.stopOnce.Do(func() { close(j.stopChan) })
}

func (j *SessionJanitor) Sweep() int {
	evicted := j.sessions.EvictIdle(j.clock.Now(), j.maxIdle)
	active := j.sessions.Len()
	monitoring.RecordSessionSweep(active, evicted)

	if evicted > 0 {
		j.logger.Debug("Evicted idle sessions", "evicted", evicted, "active", active)
	}
	return evicted
}
