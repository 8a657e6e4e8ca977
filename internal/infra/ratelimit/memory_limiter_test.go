package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLimiter_Incr(t *testing.T) {
	limiter := NewMemoryLimiter()
	ctx := context.Background()

	count, err := limiter.Incr(ctx, "login:a@example.com", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = limiter.Incr(ctx, "login:a@example.com", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// Independent keys keep independent counters
	count, err = limiter.Incr(ctx, "login:b@example.com", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestMemoryLimiter_IncrWindowExpiry(t *testing.T) {
	limiter := NewMemoryLimiter().(*memoryLimiter)
	ctx := context.Background()

	current := time.Now()
	limiter.now = func() time.Time { return current }

	_, err := limiter.Incr(ctx, "k", time.Minute)
	require.NoError(t, err)

	// Advance past the window; the counter starts over
	current = current.Add(2 * time.Minute)

	count, err := limiter.Incr(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestMemoryLimiter_Reset(t *testing.T) {
	limiter := NewMemoryLimiter()
	ctx := context.Background()

	_, err := limiter.Incr(ctx, "k", time.Minute)
	require.NoError(t, err)

	require.NoError(t, limiter.Reset(ctx, "k"))

	count, err := limiter.Incr(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestMemoryLimiter_SetCooldown(t *testing.T) {
	limiter := NewMemoryLimiter().(*memoryLimiter)
	ctx := context.Background()

	current := time.Now()
	limiter.now = func() time.Time { return current }

	ok, err := limiter.SetCooldown(ctx, "pwreset:a@example.com", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	// Second attempt within the window is refused
	ok, err = limiter.SetCooldown(ctx, "pwreset:a@example.com", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	// After expiry the marker can be set again
	current = current.Add(2 * time.Minute)
	ok, err = limiter.SetCooldown(ctx, "pwreset:a@example.com", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}
