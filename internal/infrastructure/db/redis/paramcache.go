package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/popsolutions/odoo-api-server/internal/core/ports"
)

const paramTTL = 30 * time.Second

// ParamCache fronts a ParamStore with a short-lived Redis cache. Secrets and
// settings are read on every token operation; the TTL bounds how long a
// rotated value can remain stale. Key format: param:<key>
type ParamCache struct {
	client *redis.Client
	inner  ports.ParamStore
}

// NewParamCache wraps inner with a Redis cache on the given client.
func NewParamCache(client *redis.Client, inner ports.ParamStore) *ParamCache {
	return &ParamCache{client: client, inner: inner}
}

func (c *ParamCache) GetParam(ctx context.Context, key string) (string, bool, error) {
	cached, err := c.client.Get(ctx, c.key(key)).Result()
	if err == nil {
		return cached, true, nil
	}
	if !errors.Is(err, redis.Nil) {
		return "", false, fmt.Errorf("param cache get: %w", err)
	}

	value, ok, err := c.inner.GetParam(ctx, key)
	if err != nil || !ok {
		return value, ok, err
	}

	// Best effort: a failed cache write must not fail the read.
	_ = c.client.Set(ctx, c.key(key), value, paramTTL).Err()
	return value, true, nil
}

func (c *ParamCache) key(key string) string {
	return "param:" + key
}
