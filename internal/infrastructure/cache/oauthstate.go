package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisOAuthStateStore holds short-lived OAuth CSRF states in Redis. A state
// is one-time use; Consume atomically removes it.
type RedisOAuthStateStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisOAuthStateStore(client *redis.Client, prefix string, ttl time.Duration) *RedisOAuthStateStore {
	return &RedisOAuthStateStore{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (s *RedisOAuthStateStore) Save(ctx context.Context, state string) error {
	if state == "" {
		return errors.New("state cannot be empty")
	}

	if err := s.client.Set(ctx, s.buildKey(state), "1", s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store state in redis: %w", err)
	}
	return nil
}

func (s *RedisOAuthStateStore) Consume(ctx context.Context, state string) (bool, error) {
	if state == "" {
		return false, nil
	}

	// GETDEL is atomic, so a replayed state can never pass twice.
	_, err := s.client.GetDel(ctx, s.buildKey(state)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to consume state from redis: %w", err)
	}
	return true, nil
}

func (s *RedisOAuthStateStore) buildKey(state string) string {
	return s.prefix + state
}
