package ratelimit_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/config"
	"github.com/aaravmahajanofficial/storefront/internal/ratelimit"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	fixedNow = time.Unix(1_700_000_000, 0)
	rateCfg  = config.RateConfig{MaxAttempts: 3, WindowSize: 15 * time.Minute}
)

func setup() (ratelimit.Limiter, redismock.ClientMock) {
	client, mock := redismock.NewClientMock()

	return ratelimit.NewRedisLimiterWithClock(client, rateCfg, func() time.Time { return fixedNow }), mock
}

func expectPipeline(mock redismock.ClientMock, key string, count int64) {
	windowStart := fixedNow.Unix() - int64(rateCfg.WindowSize.Seconds())

	mock.ExpectZRemRangeByScore(key, "0", fmt.Sprintf("%d", windowStart)).SetVal(0)
	mock.ExpectZAdd(key, redis.Z{Score: float64(fixedNow.Unix()), Member: fixedNow.UnixNano()}).SetVal(1)
	mock.ExpectZCard(key).SetVal(count)
	mock.ExpectExpire(key, rateCfg.WindowSize).SetVal(true)
}

func TestCheckLogin(t *testing.T) {
	email := "Ana@Example.com"
	key := "login_attempts:ana@example.com"

	t.Run("Success - Under the limit", func(t *testing.T) {
		// Arrange
		limiter, mock := setup()
		expectPipeline(mock, key, 1)

		// Act
		decision, err := limiter.CheckLogin(t.Context(), email)

		// Assert
		require.NoError(t, err)
		assert.True(t, decision.Allowed)
		assert.Equal(t, 2, decision.Remaining)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Last allowed attempt", func(t *testing.T) {
		// Arrange
		limiter, mock := setup()
		expectPipeline(mock, key, 3)

		// Act
		decision, err := limiter.CheckLogin(t.Context(), email)

		// Assert
		require.NoError(t, err)
		assert.True(t, decision.Allowed)
		assert.Zero(t, decision.Remaining)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Blocked - Over the limit", func(t *testing.T) {
		// Arrange
		limiter, mock := setup()
		expectPipeline(mock, key, 4)

		oldest := fixedNow.Add(-10 * time.Minute).Unix()
		mock.ExpectZRangeArgsWithScores(redis.ZRangeArgs{Key: key, Start: 0, Stop: 0}).
			SetVal([]redis.Z{{Score: float64(oldest), Member: "x"}})

		// Act
		decision, err := limiter.CheckLogin(t.Context(), email)

		// Assert
		require.NoError(t, err)
		assert.False(t, decision.Allowed)
		assert.Equal(t, int((5 * time.Minute).Seconds()), decision.RetryAfter)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Pipeline error", func(t *testing.T) {
		// Arrange
		limiter, mock := setup()
		windowStart := fixedNow.Unix() - int64(rateCfg.WindowSize.Seconds())
		mock.ExpectZRemRangeByScore(key, "0", fmt.Sprintf("%d", windowStart)).SetErr(errors.New("connection refused"))

		// Act
		decision, err := limiter.CheckLogin(t.Context(), email)

		// Assert
		require.Error(t, err)
		assert.False(t, decision.Allowed)
		assert.Contains(t, err.Error(), "redis pipeline error")
	})
}

func TestDisabled(t *testing.T) {
	decision, err := ratelimit.Disabled().CheckLogin(t.Context(), "ana@example.com")

	require.NoError(t, err)
	assert.True(t, decision.Allowed)
}
