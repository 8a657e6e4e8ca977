// Package ratelimit provides attempt counters backed by external storage so
// limits survive restarts and apply across replicas.
package ratelimit

import (
	"context"
	"log/slog"
	"time"

	"habitude/config"
	"habitude/internal/domain/lifecycle"
	"habitude/internal/domain/service"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// redisLimiter implements the AttemptLimiter interface on Redis.
type redisLimiter struct {
	client *redis.Client
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewAttemptLimiter creates an AttemptLimiter based on configuration. With
// no Redis configured it falls back to an in-process limiter, which is only
// suitable for single-replica deployments.
func NewAttemptLimiter(params Params) (service.AttemptLimiter, error) {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Warn("Redis not configured, using in-memory attempt limiter")

		return NewMemoryLimiter(), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return &redisLimiter{client: client}, nil
}

// Incr increments the counter for key and starts the window on the first
// increment. The key expires with the window, so counters clean themselves up.
func (l *redisLimiter) Incr(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, errors.Wrap(err, "failed to increment attempt counter")
	}

	if count == 1 {
		if err := l.client.Expire(ctx, key, ttl).Err(); err != nil {
			return 0, errors.Wrap(err, "failed to set attempt counter expiry")
		}
	}

	return count, nil
}

// Reset clears the counter for key.
func (l *redisLimiter) Reset(ctx context.Context, key string) error {
	if err := l.client.Del(ctx, key).Err(); err != nil {
		return errors.Wrap(err, "failed to reset attempt counter")
	}

	return nil
}

// SetCooldown records a cooldown marker with SET NX, returning false when a
// marker already exists.
func (l *redisLimiter) SetCooldown(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := l.client.SetNX(ctx, key, 1, ttl).Result()
	if err != nil {
		return false, errors.Wrap(err, "failed to set cooldown marker")
	}

	return ok, nil
}
