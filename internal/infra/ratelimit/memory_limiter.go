package ratelimit

import (
	"context"
	"sync"
	"time"

	"habitude/internal/domain/service"
)

// memoryLimiter is an in-process AttemptLimiter used when Redis is not
// configured. Counters do not survive restarts and are not shared across
// replicas.
type memoryLimiter struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
	now     func() time.Time
}

type memoryEntry struct {
	count     int64
	expiresAt time.Time
}

// NewMemoryLimiter creates an in-memory AttemptLimiter.
func NewMemoryLimiter() service.AttemptLimiter {
	return &memoryLimiter{
		entries: make(map[string]*memoryEntry),
		now:     time.Now,
	}
}

// Incr increments the counter for key, starting a window of ttl on first increment.
func (l *memoryLimiter) Incr(_ context.Context, key string, ttl time.Duration) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.entries[key]
	if !ok || l.now().After(entry.expiresAt) {
		entry = &memoryEntry{expiresAt: l.now().Add(ttl)}
		l.entries[key] = entry
	}
	entry.count++

	return entry.count, nil
}

// Reset clears the counter for key.
func (l *memoryLimiter) Reset(_ context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.entries, key)

	return nil
}

// SetCooldown records a cooldown marker for key, returning false when a
// live marker already exists.
func (l *memoryLimiter) SetCooldown(_ context.Context, key string, ttl time.Duration) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.entries[key]
	if ok && l.now().Before(entry.expiresAt) {
		return false, nil
	}

	l.entries[key] = &memoryEntry{count: 1, expiresAt: l.now().Add(ttl)}

	return true, nil
}
