// Package scheduler runs the periodic housekeeping of the API server.
package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MrSnakeDoc/backoffice/internal/logger"
)

// DefaultGCInterval is how often expired records are swept.
const DefaultGCInterval = time.Hour

// Purger removes expired records and reports how many went away.
type Purger interface {
	PurgeExpiredResets(ctx context.Context) (int, error)
}

// GarbageCollector periodically purges expired password reset tickets.
type GarbageCollector struct {
	purger   Purger
	logger   logger.Logger
	interval time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewGarbageCollector creates a new garbage collector
func NewGarbageCollector(p Purger, log logger.Logger, interval time.Duration) *GarbageCollector {
	if interval <= 0 {
		interval = DefaultGCInterval
	}
	return &GarbageCollector{
		purger:   p,
		logger:   log,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start runs one collection, then one per interval until Stop or ctx ends.
func (gc *GarbageCollector) Start(ctx context.Context) error {
	if gc.purger == nil {
		return errors.New("garbage collector has nothing to purge")
	}

	// Run immediately on start
	if _, err := gc.Collect(ctx); err != nil {
		gc.logger.Warn("initial garbage collection failed", logger.Error(err))
	}

	ticker := time.NewTicker(gc.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if _, err := gc.Collect(ctx); err != nil {
					gc.logger.Error("garbage collection failed", logger.Error(err))
				}
			case <-gc.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the garbage collector. Safe to call more than once.
func (gc *GarbageCollector) Stop() {
	gc.stopOnce.Do(func() { close(gc.stopCh) })
}

// Collect purges once and returns the number of removed tickets.
func (gc *GarbageCollector) Collect(ctx context.Context) (int, error) {
	n, err := gc.purger.PurgeExpiredResets(ctx)
	if err != nil {
		return n, err
	}
	if n > 0 {
		gc.logger.Info("garbage collection completed", logger.Int("reset_tickets_deleted", n))
	} else {
		gc.logger.Debug("no items to garbage collect")
	}
	return n, nil
}
