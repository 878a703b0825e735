// Package ratelimit throttles login attempts per email with a Redis sliding window.
package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/config"
	"github.com/redis/go-redis/v9"
)

type Decision struct {
	Allowed   bool
	Remaining int
	// RetryAfter is the number of seconds until the oldest attempt leaves the window.
	RetryAfter int
}

type Limiter interface {
	CheckLogin(ctx context.Context, email string) (Decision, error)
}

type redisLimiter struct {
	client *redis.Client
	cfg    config.RateConfig
	now    func() time.Time
}

func NewRedisLimiter(client *redis.Client, cfg config.RateConfig) Limiter {
	return &redisLimiter{client: client, cfg: cfg, now: time.Now}
}

// NewRedisLimiterWithClock is NewRedisLimiter with a fixed time source.
func NewRedisLimiterWithClock(client *redis.Client, cfg config.RateConfig, now func() time.Time) Limiter {
	return &redisLimiter{client: client, cfg: cfg, now: now}
}

func Key(email string) string {
	return "login_attempts:" + strings.ToLower(strings.TrimSpace(email))
}

func (r *redisLimiter) CheckLogin(ctx context.Context, email string) (Decision, error) {

	logger := middleware.LoggerFromContext(ctx)

	key := Key(email)
	window := r.cfg.WindowSize

	current := r.now()
	now := current.Unix()

	// only attempts after windowStart are counted
	windowStart := now - int64(window.Seconds())

	pipe := r.client.Pipeline()

	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", windowStart))

	// nanosecond members keep attempts within the same second distinct
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now), Member: current.UnixNano()})

	count := pipe.ZCard(ctx, key)

	pipe.Expire(ctx, key, window)

	if _, err := pipe.Exec(ctx); err != nil {
		logger.Error("Redis pipeline execution failed for rate limit", slog.String("key", key), slog.Any("error", err))
		return Decision{}, fmt.Errorf("redis pipeline error for rate limit check: %w", err)
	}

	attempts := count.Val()
	remaining := r.cfg.MaxAttempts - attempts

	if attempts > r.cfg.MaxAttempts {

		scores, err := r.client.ZRangeArgsWithScores(ctx, redis.ZRangeArgs{Key: key, Start: 0, Stop: 0}).Result()
		if err != nil || len(scores) == 0 {
			logger.Error("Failed to get oldest attempt time for rate limit", slog.String("key", key), slog.Any("error", err))
			return Decision{RetryAfter: int(window.Seconds())}, fmt.Errorf("failed to get oldest attempt time: %w", err)
		}

		retryAfter := max(int64(scores[0].Score)+int64(window.Seconds())-now, 0)

		logger.Warn("Rate limit exceeded for login", slog.String("email", email), slog.Int64("attempts", attempts))
		return Decision{Allowed: false, RetryAfter: int(retryAfter)}, nil
	}

	logger.Debug("Rate limit check passed", slog.String("email", email), slog.Int64("attempts", attempts), slog.Int64("remaining", remaining))
	return Decision{Allowed: true, Remaining: int(remaining)}, nil
}

type disabled struct{}

// Disabled allows every attempt. It is used when no Redis is configured.
func Disabled() Limiter {
	return disabled{}
}

func (disabled) CheckLogin(context.Context, string) (Decision, error) {
	return Decision{Allowed: true}, nil
}
