package ports

import (
	"context"
	"time"
)

// PortfolioCache abstracts the read cache in front of the public portfolio
// lists (Redis in production). Get returning (nil, false, nil) means a miss.
type PortfolioCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Invalidate(ctx context.Context, keys ...string) error
}
