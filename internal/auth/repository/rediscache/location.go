package rediscache

import (
	"context"
	"errors"
	"fmt"

	"github.com/koobs97/BonsCore-sub000/pkg/constant"
	"github.com/redis/go-redis/v9"
)

// LocationCache remembers the country code of the last accepted login so the
// anomaly detector can skip the durable history lookup on repeat logins.
type LocationCache struct {
	redis *redis.Client
}

func NewLocationCache(redisClient *redis.Client) *LocationCache {
	return &LocationCache{redis: redisClient}
}

func locationKey(accountID string) string {
	return constant.LocationKeyPrefix + accountID
}

// RecentCountry returns the cached country code, or "" on a cache miss.
func (c *LocationCache) RecentCountry(ctx context.Context, accountID string) (string, error) {
	country, err := c.redis.Get(ctx, locationKey(accountID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read recent location: %w", err)
	}
	return country, nil
}

func (c *LocationCache) SetRecentCountry(ctx context.Context, accountID, countryCode string) error {
	err := c.redis.Set(ctx, locationKey(accountID), countryCode, constant.RecentLocationTTL).Err()
	if err != nil {
		return fmt.Errorf("failed to store recent location: %w", err)
	}
	return nil
}
