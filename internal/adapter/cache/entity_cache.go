// Package cache stores single entities in Redis under "<prefix>:<id>" keys.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// EntityCache defines the caching operations for one entity type.
type EntityCache[T any] interface {
	// Get retrieves an entity by ID. Returns nil, nil on a miss.
	Get(ctx context.Context, id int64) (*T, error)

	// Set stores an entity with the configured TTL.
	Set(ctx context.Context, id int64, v *T) error

	// Delete removes an entity by ID.
	Delete(ctx context.Context, id int64) error
}

// RedisCache implements EntityCache using Redis as the backing store.
type RedisCache[T any] struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	log    *zap.Logger
}

// NewRedisCache creates a Redis-backed cache whose keys start with prefix.
func NewRedisCache[T any](client *redis.Client, prefix string, ttl time.Duration, log *zap.Logger) *RedisCache[T] {
	return &RedisCache[T]{
		client: client,
		prefix: prefix,
		ttl:    ttl,
		log:    log.With(zap.String("cache", prefix)),
	}
}

func (c *RedisCache[T]) key(id int64) string {
	return fmt.Sprintf("%s:%d", c.prefix, id)
}

// Get retrieves an entity from Redis.
func (c *RedisCache[T]) Get(ctx context.Context, id int64) (*T, error) {
	data, err := c.client.Get(ctx, c.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		c.log.Debug("cache miss", zap.Int64("id", id))
		return nil, nil
	}
	if err != nil {
		c.log.Error("failed to get from cache", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		c.log.Error("failed to unmarshal cached entity", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	c.log.Debug("cache hit", zap.Int64("id", id))
	return &v, nil
}

// Set stores an entity in Redis with TTL.
func (c *RedisCache[T]) Set(ctx context.Context, id int64, v *T) error {
	if v == nil {
		return fmt.Errorf("cannot cache nil %s", c.prefix)
	}

	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	if err := c.client.Set(ctx, c.key(id), data, c.ttl).Err(); err != nil {
		c.log.Error("failed to set cache", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

// Delete removes an entity from Redis.
func (c *RedisCache[T]) Delete(ctx context.Context, id int64) error {
	if err := c.client.Del(ctx, c.key(id)).Err(); err != nil {
		c.log.Error("failed to delete from cache", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}
