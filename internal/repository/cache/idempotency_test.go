package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRedis struct {
	keys    map[string]time.Duration
	failing error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{keys: make(map[string]time.Duration)}
}

func (f *fakeRedis) SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd {
	if f.failing != nil {
		return redis.NewBoolResult(false, f.failing)
	}
	if _, ok := f.keys[key]; ok {
		return redis.NewBoolResult(false, nil)
	}
	f.keys[key] = expiration
	return redis.NewBoolResult(true, nil)
}

func (f *fakeRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	if f.failing != nil {
		return redis.NewIntResult(0, f.failing)
	}
	var n int64
	for _, k := range keys {
		if _, ok := f.keys[k]; ok {
			delete(f.keys, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestIdempotencyStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Acquire once per key", func(t *testing.T) {
		rdb := newFakeRedis()
		store := &IdempotencyStore{rdb: rdb, ttl: time.Hour}

		ok, err := store.TryAcquire(ctx, "session-charge", "s1:batch-1")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, time.Hour, rdb.keys["idemp:session-charge:s1:batch-1"])

		ok, err = store.TryAcquire(ctx, "session-charge", "s1:batch-1")
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = store.TryAcquire(ctx, "session-charge", "s1:batch-2")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Release makes key available again", func(t *testing.T) {
		store := &IdempotencyStore{rdb: newFakeRedis(), ttl: time.Minute}

		ok, err := store.TryAcquire(ctx, "scope", "k")
		require.NoError(t, err)
		require.True(t, ok)

		require.NoError(t, store.Release(ctx, "scope", "k"))

		ok, err = store.TryAcquire(ctx, "scope", "k")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Redis error", func(t *testing.T) {
		rdb := newFakeRedis()
		rdb.failing = errors.New("connection refused")
		store := &IdempotencyStore{rdb: rdb, ttl: time.Minute}

		ok, err := store.TryAcquire(ctx, "scope", "k")
		assert.Error(t, err)
		assert.False(t, ok)

		assert.Error(t, store.Release(ctx, "scope", "k"))
	})
}
