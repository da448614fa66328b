// Package cached wraps entity repositories with a cache-aside layer for
// lookups by id. Writes go to the wrapped repository and invalidate the
// cached copy.
package cached

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"user-post-service/internal/adapter/cache"
)

// byID serves GetByID from the cache, falling back to load on a miss.
// Cache errors degrade to the wrapped repository.
type byID[T any] struct {
	cache cache.EntityCache[T]
	log   *zap.Logger
	group singleflight.Group
	name  string
}

func (b *byID[T]) get(ctx context.Context, id int64, load func(context.Context, int64) (*T, error)) (*T, error) {
	if v, err := b.cache.Get(ctx, id); err != nil {
		b.log.Warn("cache get error, falling back to store", zap.Int64("id", id), zap.Error(err))
	} else if v != nil {
		return v, nil
	}

	// Only one caller per id hits the store on a miss
	result, err, _ := b.group.Do(fmt.Sprintf("%s:%d", b.name, id), func() (any, error) {
		v, err := load(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := b.cache.Set(ctx, id, v); err != nil {
			b.log.Warn("failed to cache entity", zap.Int64("id", id), zap.Error(err))
		}
		return v, nil
	})
	if err != nil {
		return nil, err
	}

	// Each caller gets its own copy
	v := *result.(*T)
	return &v, nil
}

// invalidate runs before and after each write. A miss that loaded the old
// value can still land between the two; such an entry lives until its TTL.
func (b *byID[T]) invalidate(ctx context.Context, id int64) {
	if err := b.cache.Delete(ctx, id); err != nil {
		b.log.Warn("failed to invalidate cache", zap.Int64("id", id), zap.Error(err))
	}
}
