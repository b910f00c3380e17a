package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// RecordCache implements ports.RecordCache using Redis. It caches serialized
// transaction records by external reference so status lookups skip Postgres
// on the hot path.
type RecordCache struct {
	client *goredis.Client
	prefix string
}

// NewRecordCache creates a new Redis-backed transaction record cache.
func NewRecordCache(client *goredis.Client) *RecordCache {
	return &RecordCache{
		client: client,
		prefix: "txrecord:",
	}
}

// Get retrieves a cached record by reference.
// Returns nil, nil if the key does not exist.
func (c *RecordCache) Get(ctx context.Context, reference string) ([]byte, error) {
	val, err := c.client.Get(ctx, c.prefix+reference).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis record get: %w", err)
	}
	return val, nil
}

// Set stores a record in the cache with TTL.
func (c *RecordCache) Set(ctx context.Context, reference string, value []byte, ttl time.Duration) error {
	err := c.client.Set(ctx, c.prefix+reference, value, ttl).Err()
	if err != nil {
		return fmt.Errorf("redis record set: %w", err)
	}
	return nil
}

// Invalidate drops a cached record after a status change so the next read
// sees Postgres.
func (c *RecordCache) Invalidate(ctx context.Context, reference string) error {
	err := c.client.Del(ctx, c.prefix+reference).Err()
	if err != nil {
		return fmt.Errorf("redis record invalidate: %w", err)
	}
	return nil
}
