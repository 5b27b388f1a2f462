package notification

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache implements Cache on a shared Redis instance, so the staleness
// bound holds across all API instances. Invalidation is a single INCR on the
// scope's version key; stale entries expire through their own TTL.
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (c *RedisCache) Get(ctx context.Context, scope Scope, op string, params string, dest interface{}) (bool, error) {
	version, err := c.scopeVersion(ctx, scope)
	if err != nil {
		return false, err
	}

	data, err := c.client.Get(ctx, cacheKey(scope, version, op, params)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *RedisCache) Set(ctx context.Context, scope Scope, op string, params string, value interface{}, ttl time.Duration) error {
	version, err := c.scopeVersion(ctx, scope)
	if err != nil {
		return err
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, cacheKey(scope, version, op, params), data, ttl).Err()
}

func (c *RedisCache) Invalidate(ctx context.Context, scope Scope) error {
	return c.client.Incr(ctx, scopeVersionKey(scope)).Err()
}

func (c *RedisCache) scopeVersion(ctx context.Context, scope Scope) (int64, error) {
	version, err := c.client.Get(ctx, scopeVersionKey(scope)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, err
	}
	return version, nil
}
