package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "idemp:"

// commander подмножество команд redis.Client, нужное хранилищу
type commander interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// IdempotencyStore реализует domain.IdempotencyStore на Redis.
// Ключ живет ttl, после чего тот же пакет можно записать снова.
type IdempotencyStore struct {
	rdb commander
	ttl time.Duration
}

// NewIdempotencyStore создает новый IdempotencyStore
func NewIdempotencyStore(rdb *redis.Client, ttl time.Duration) *IdempotencyStore {
	return &IdempotencyStore{rdb: rdb, ttl: ttl}
}

// TryAcquire занимает ключ. Возвращает false, если ключ уже занят
func (s *IdempotencyStore) TryAcquire(ctx context.Context, scope, key string) (bool, error) {
	ok, err := s.rdb.SetNX(ctx, storeKey(scope, key), "1", s.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("cache: failed to acquire %s/%s: %w", scope, key, err)
	}
	return ok, nil
}

// Release освобождает ключ
func (s *IdempotencyStore) Release(ctx context.Context, scope, key string) error {
	if err := s.rdb.Del(ctx, storeKey(scope, key)).Err(); err != nil {
		return fmt.Errorf("cache: failed to release %s/%s: %w", scope, key, err)
	}
	return nil
}

func storeKey(scope, key string) string {
	return keyPrefix + scope + ":" + key
}

// NewClient подключается к Redis и проверяет соединение
func NewClient(ctx context.Context, addr string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("cache: failed to ping redis at %s: %w", addr, err)
	}
	return rdb, nil
}
