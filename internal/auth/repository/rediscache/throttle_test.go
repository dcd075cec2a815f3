package rediscache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/koobs97/BonsCore-sub000/pkg/constant"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = rdb.Close()
		mr.Close()
	})

	return mr, rdb
}

func TestAttemptThrottle_Saturation(t *testing.T) {
	_, rdb := newTestRedis(t)
	throttle := NewAttemptThrottle(rdb)
	ctx := context.Background()

	for i := 0; i < constant.MaxLoginAttempts-1; i++ {
		require.NoError(t, throttle.OnFailure(ctx, "u2"))

		blocked, err := throttle.IsBlocked(ctx, "u2")
		require.NoError(t, err)
		assert.False(t, blocked, "not blocked after %d failures", i+1)
	}

	require.NoError(t, throttle.OnFailure(ctx, "u2"))

	blocked, err := throttle.IsBlocked(ctx, "u2")
	require.NoError(t, err)
	assert.True(t, blocked)

	// A sixth failure extends the block; it does not reset the count.
	require.NoError(t, throttle.OnFailure(ctx, "u2"))
	blocked, err = throttle.IsBlocked(ctx, "u2")
	require.NoError(t, err)
	assert.True(t, blocked)
}

func TestAttemptThrottle_SuccessClears(t *testing.T) {
	_, rdb := newTestRedis(t)
	throttle := NewAttemptThrottle(rdb)
	ctx := context.Background()

	for i := 0; i < constant.MaxLoginAttempts; i++ {
		require.NoError(t, throttle.OnFailure(ctx, "u2"))
	}
	blocked, err := throttle.IsBlocked(ctx, "u2")
	require.NoError(t, err)
	require.True(t, blocked)

	require.NoError(t, throttle.OnSuccess(ctx, "u2"))

	blocked, err = throttle.IsBlocked(ctx, "u2")
	require.NoError(t, err)
	assert.False(t, blocked)
}

func TestAttemptThrottle_WindowExpiry(t *testing.T) {
	mr, rdb := newTestRedis(t)
	throttle := NewAttemptThrottle(rdb)
	ctx := context.Background()

	for i := 0; i < constant.MaxLoginAttempts; i++ {
		require.NoError(t, throttle.OnFailure(ctx, "u2"))
	}

	mr.FastForward(constant.LoginLockoutWindow / 2)
	blocked, err := throttle.IsBlocked(ctx, "u2")
	require.NoError(t, err)
	assert.True(t, blocked)

	// A further failure restarts the window.
	require.NoError(t, throttle.OnFailure(ctx, "u2"))
	mr.FastForward(constant.LoginLockoutWindow / 2)
	blocked, err = throttle.IsBlocked(ctx, "u2")
	require.NoError(t, err)
	assert.True(t, blocked)

	mr.FastForward(constant.LoginLockoutWindow)
	blocked, err = throttle.IsBlocked(ctx, "u2")
	require.NoError(t, err)
	assert.False(t, blocked)
}

func TestAttemptThrottle_NoCounter(t *testing.T) {
	_, rdb := newTestRedis(t)
	throttle := NewAttemptThrottle(rdb)

	blocked, err := throttle.IsBlocked(context.Background(), "unknown")
	require.NoError(t, err)
	assert.False(t, blocked)
}

func TestAttemptThrottle_RedisDown(t *testing.T) {
	mr, rdb := newTestRedis(t)
	throttle := NewAttemptThrottle(rdb)
	mr.Close()

	_, err := throttle.IsBlocked(context.Background(), "u2")
	assert.Error(t, err)
	assert.Error(t, throttle.OnFailure(context.Background(), "u2"))
}
