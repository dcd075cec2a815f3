package rediscache

import (
	"context"
	"errors"
	"fmt"

	"github.com/koobs97/BonsCore-sub000/pkg/constant"
	"github.com/redis/go-redis/v9"
)

// AttemptThrottle counts consecutive failed logins per account in the shared
// cache. The counter expires after the lockout window unless another failure
// refreshes it.
type AttemptThrottle struct {
	redis       *redis.Client
	maxAttempts int
}

func NewAttemptThrottle(redisClient *redis.Client) *AttemptThrottle {
	return &AttemptThrottle{
		redis:       redisClient,
		maxAttempts: constant.MaxLoginAttempts,
	}
}

func attemptKey(accountID string) string {
	return constant.AttemptKeyPrefix + accountID
}

func (t *AttemptThrottle) OnFailure(ctx context.Context, accountID string) error {
	key := attemptKey(accountID)

	if err := t.redis.Incr(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to increment attempt counter: %w", err)
	}
	// Each failure restarts the lockout window.
	if err := t.redis.Expire(ctx, key, constant.LoginLockoutWindow).Err(); err != nil {
		return fmt.Errorf("failed to set attempt counter TTL: %w", err)
	}

	return nil
}

func (t *AttemptThrottle) OnSuccess(ctx context.Context, accountID string) error {
	if err := t.redis.Del(ctx, attemptKey(accountID)).Err(); err != nil {
		return fmt.Errorf("failed to clear attempt counter: %w", err)
	}
	return nil
}

func (t *AttemptThrottle) IsBlocked(ctx context.Context, accountID string) (bool, error) {
	count, err := t.redis.Get(ctx, attemptKey(accountID)).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read attempt counter: %w", err)
	}

	return count >= t.maxAttempts, nil
}
