package service

import (
	"context"
	"time"
)

// AttemptLimiter tracks failed or repeated attempts against a key (login
// email, reset email) so limits survive process restarts and apply across
// replicas.
type AttemptLimiter interface {
	// Incr increments the counter for key, starting a window of ttl on first
	// increment, and returns the new count.
	Incr(ctx context.Context, key string, ttl time.Duration) (int64, error)

	// Reset clears the counter for key.
	Reset(ctx context.Context, key string) error

	// SetCooldown records a cooldown marker for key. It returns false if a
	// marker is already present (the caller is still cooling down).
	SetCooldown(ctx context.Context, key string, ttl time.Duration) (bool, error)
}
