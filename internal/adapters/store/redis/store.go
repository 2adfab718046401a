package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/whowinninglilly/contest/internal/core/ports"
)

type keyValueStore struct {
	client *redis.Client
}

// NewKeyValueStore connects to Redis using a redis:// or rediss:// URL.
// When token is non-empty it overrides the password embedded in the URL.
func NewKeyValueStore(url, token string) (ports.KeyValueStore, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	if token != "" {
		opt.Password = token
	}
	return &keyValueStore{client: redis.NewClient(opt)}, nil
}

func (s *keyValueStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get %q: %w", key, err)
	}
	return value, true, nil
}

func (s *keyValueStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set %q: %w", key, err)
	}
	return nil
}

func (s *keyValueStore) SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	stored, err := s.client.SetNX(ctx, key, value, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to setnx %q: %w", key, err)
	}
	return stored, nil
}

func (s *keyValueStore) Incr(ctx context.Context, key string) (int64, error) {
	n, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to incr %q: %w", key, err)
	}
	return n, nil
}
