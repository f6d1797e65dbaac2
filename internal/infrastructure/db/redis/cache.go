package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// PortfolioCache stores serialized portfolio list responses under plain
// string keys with a TTL. It backs the read-through cache in front of the
// public skill and education endpoints.
type PortfolioCache struct {
	client *redis.Client
}

func NewPortfolioCache(client *redis.Client) *PortfolioCache {
	return &PortfolioCache{client: client}
}

// Get returns the cached value and whether the key was present.
func (c *PortfolioCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get %s: %w", key, err)
	}
	return raw, true, nil
}

// Set stores value under key for ttl.
func (c *PortfolioCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

// Invalidate removes the given keys. Missing keys are not an error.
func (c *PortfolioCache) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("cache invalidate: %w", err)
	}
	return nil
}
