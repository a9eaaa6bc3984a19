// Package ratelimit implements an in-process fixed-window request
// admission gate keyed by client identity and operation class.
//
// State lives in one process: quotas are not shared across instances
// and do not survive restarts. For horizontal scaling, swap the Store
// for a distributed implementation.
package ratelimit

import (
	"sync"
	"time"
)

// Config bounds one operation class: at most MaxRequests per Window.
type Config struct {
	MaxRequests int
	Window      time.Duration
}

// Result reports the admission decision for a single request.
// RetryAfter is measured against the limiter's own clock, so callers
// never mix time sources when building retry hints.
type Result struct {
	Allowed    bool
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Entry is the per-key window state.
type Entry struct {
	Count     int
	ResetTime time.Time
}

// Store holds window state per key. Bump must be atomic per key: two
// concurrent bumps of the same key must not lose an increment.
type Store interface {
	// Bump opens a fresh window for key (count = 1, reset = now + window)
	// when none is active, otherwise increments the active window's count.
	Bump(key string, now time.Time, window time.Duration) Entry
	// Sweep removes entries whose window has passed and reports how many
	// were removed.
	Sweep(now time.Time) int
}

// Limiter admits or denies requests against per-key windows.
type Limiter struct {
	store Store
	clock func() time.Time
}

// Option configures a Limiter.
type Option func(*Limiter)

// WithClock substitutes the time source, for tests.
func WithClock(clock func() time.Time) Option {
	return func(l *Limiter) { l.clock = clock }
}

// WithStore substitutes the backing store.
func WithStore(store Store) Option {
	return func(l *Limiter) { l.store = store }
}

func New(opts ...Option) *Limiter {
	l := &Limiter{
		store: newMemoryStore(),
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Check records one request for key and decides whether it is admitted.
// A key with no active window is a first request, never an error; Check
// does not fail. Denial does not reset the window: a throttled client
// stays throttled until ResetTime passes.
func (l *Limiter) Check(key string, cfg Config) Result {
	now := l.clock()
	entry := l.store.Bump(key, now, cfg.Window)

	remaining := cfg.MaxRequests - entry.Count
	if remaining < 0 {
		remaining = 0
	}

	return Result{
		Allowed:    entry.Count <= cfg.MaxRequests,
		Remaining:  remaining,
		ResetTime:  entry.ResetTime,
		RetryAfter: entry.ResetTime.Sub(now),
	}
}

// memoryStore is the process-local Store used in the default setup.
type memoryStore struct {
	mu    sync.Mutex
	table map[string]*Entry
}

func newMemoryStore() *memoryStore {
	return &memoryStore{table: make(map[string]*Entry)}
}

func (s *memoryStore) Bump(key string, now time.Time, window time.Duration) Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.table[key]
	if !ok || now.After(entry.ResetTime) {
		entry = &Entry{Count: 1, ResetTime: now.Add(window)}
		s.table[key] = entry
		return *entry
	}

	entry.Count++
	return *entry
}

func (s *memoryStore) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, entry := range s.table {
		if now.After(entry.ResetTime) {
			delete(s.table, key)
			removed++
		}
	}
	return removed
}
