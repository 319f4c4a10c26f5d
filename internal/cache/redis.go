package cache

import (
	"context"
	"errors"
	"time"

	"weather-service/internal/models"

	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	client  redis.UniversalClient
	timeout time.Duration
}

var _ Store = (*RedisStore)(nil)

func NewRedisStore(client redis.UniversalClient, timeout time.Duration) *RedisStore {
	if timeout <= 0 {
		timeout = DefaultOpTimeout
	}
	return &RedisStore{client: client, timeout: timeout}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, &models.TransportError{Op: "redis GET", Target: key, Err: err}
	}
	return data, true, nil
}

// Set overwrites any existing entry and resets its expiration.
func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return &models.TransportError{Op: "redis SET", Target: key, Err: err}
	}
	return nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.client.Ping(ctx).Err(); err != nil {
		return &models.TransportError{Op: "redis PING", Target: "redis", Err: err}
	}
	return nil
}
