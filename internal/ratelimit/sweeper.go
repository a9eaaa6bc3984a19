package ratelimit

import (
	"sync"
	"time"

	"bhavesh/backend/pkg/logger"
)

// DefaultSweepInterval is how often stale window entries are purged.
const DefaultSweepInterval = 5 * time.Minute

// Sweeper periodically removes expired entries from a limiter's store
// so the table stays bounded under churning client identities.
type Sweeper struct {
	limiter  *Limiter
	interval time.Duration
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

func NewSweeper(limiter *Limiter, interval time.Duration) *Sweeper {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	return &Sweeper{
		limiter:  limiter,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

func (s *Sweeper) Start() {
	s.wg.Add(1)
	go s.run()
	logger.Info("rate limit sweeper started", "interval", s.interval)
}

func (s *Sweeper) Stop() {
	close(s.stopCh)
	s.wg.Wait()
	logger.Info("rate limit sweeper stopped")
}

func (s *Sweeper) run() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			removed := s.limiter.store.Sweep(s.limiter.clock())
			if removed > 0 {
				logger.Debug("swept rate limit entries", "removed", removed)
			}
		case <-s.stopCh:
			return
		}
	}
}
