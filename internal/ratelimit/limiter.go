package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Result represents the result of a rate limit check
type Result struct {
	Allowed   bool      `json:"allowed"`
	Limit     int       `json:"limit"`
	Remaining int       `json:"remaining"`
	ResetAt   time.Time `json:"reset_at"`
}

// Limiter is a fixed-window admission check. Implementations: MemoryLimiter
// for single-process deployments and tests, RedisLimiter for multi-instance
// production. Selected at bootstrap by configuration, never by conditional
// code in callers.
type Limiter interface {
	Check(ctx context.Context, key string, maxRequests int, window time.Duration) (Result, error)
}

type windowEntry struct {
	count   int
	resetAt time.Time
}

// MemoryLimiter is an in-memory fixed-window limiter. Approximate: it permits
// bursts at window boundaries, which is acceptable for abuse prevention.
type MemoryLimiter struct {
	mu      sync.Mutex
	entries map[string]windowEntry
	now     func() time.Time
}

// NewMemoryLimiter creates an in-memory fixed-window limiter
func NewMemoryLimiter() *MemoryLimiter {
	return &MemoryLimiter{
		entries: make(map[string]windowEntry),
		now:     time.Now,
	}
}

// Check admits or denies a request for the key. A fresh or elapsed window
// starts with count=1; a full window denies without incrementing.
func (l *MemoryLimiter) Check(_ context.Context, key string, maxRequests int, window time.Duration) (Result, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	entry, ok := l.entries[key]
	if !ok || !now.Before(entry.resetAt) {
		resetAt := now.Add(window)
		l.entries[key] = windowEntry{count: 1, resetAt: resetAt}
		return Result{Allowed: true, Limit: maxRequests, Remaining: maxRequests - 1, ResetAt: resetAt}, nil
	}

	if entry.count >= maxRequests {
		return Result{Allowed: false, Limit: maxRequests, Remaining: 0, ResetAt: entry.resetAt}, nil
	}

	entry.count++
	l.entries[key] = entry
	return Result{
		Allowed:   true,
		Limit:     maxRequests,
		Remaining: maxRequests - entry.count,
		ResetAt:   entry.resetAt,
	}, nil
}

// Sweep removes entries whose window has already elapsed, bounding memory.
// Invoked periodically by the scheduler.
func (l *MemoryLimiter) Sweep() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	removed := 0
	for key, entry := range l.entries {
		if !now.Before(entry.resetAt) {
			delete(l.entries, key)
			removed++
		}
	}
	return removed
}
