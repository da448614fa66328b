package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	domain "user-post-service/internal/domain/user"
)

// setupTestCache creates a miniredis-backed user cache for testing
func setupTestCache(t *testing.T, ttl time.Duration) (*RedisCache[domain.User], *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
	})
	return NewRedisCache[domain.User](client, "user", ttl, zaptest.NewLogger(t)), mr
}

func TestRedisCache_SetGet(t *testing.T) {
	ctx := context.Background()
	c, mr := setupTestCache(t, time.Minute)

	u := &domain.User{ID: 1, Name: "Ada", Username: "ada", Email: "ada@x.com"}
	require.NoError(t, c.Set(ctx, u.ID, u))
	assert.True(t, mr.Exists("user:1"))
	assert.Equal(t, time.Minute, mr.TTL("user:1"))

	got, err := c.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, u, got)
}

func TestRedisCache_Miss(t *testing.T) {
	c, _ := setupTestCache(t, time.Minute)

	got, err := c.Get(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisCache_Expiry(t *testing.T) {
	ctx := context.Background()
	c, mr := setupTestCache(t, time.Second)

	require.NoError(t, c.Set(ctx, 1, &domain.User{ID: 1}))
	mr.FastForward(2 * time.Second)

	got, err := c.Get(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisCache_Delete(t *testing.T) {
	ctx := context.Background()
	c, mr := setupTestCache(t, time.Minute)

	require.NoError(t, c.Set(ctx, 1, &domain.User{ID: 1}))
	require.NoError(t, c.Delete(ctx, 1))
	assert.False(t, mr.Exists("user:1"))
}

func TestRedisCache_NilEntity(t *testing.T) {
	c, _ := setupTestCache(t, time.Minute)
	assert.EqualError(t, c.Set(context.Background(), 1, nil), "cannot cache nil user")
}

func TestRedisCache_CorruptEntry(t *testing.T) {
	c, mr := setupTestCache(t, time.Minute)
	require.NoError(t, mr.Set("user:1", "not json"))

	_, err := c.Get(context.Background(), 1)
	assert.Error(t, err)
}

func TestRedisCache_Unavailable(t *testing.T) {
	c, mr := setupTestCache(t, time.Minute)
	mr.Close()

	_, err := c.Get(context.Background(), 1)
	assert.Error(t, err)
}
