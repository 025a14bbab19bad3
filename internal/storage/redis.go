package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

// RedisSlot stores each slot as a plain string key under a prefix.
type RedisSlot struct {
	client *redis.Client
	prefix string
}

var _ Slot = (*RedisSlot)(nil)

// NewRedisSlot connects to redisURL. Both redis:// URLs and bare host:port
// addresses are accepted.
func NewRedisSlot(ctx context.Context, redisURL, prefix string) (*RedisSlot, error) {
	client := redis.NewClient(redisOptions(redisURL))
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return &RedisSlot{client: client, prefix: prefix}, nil
}

func redisOptions(redisURL string) *redis.Options {
	if !strings.Contains(redisURL, "://") {
		redisURL = "redis://" + redisURL
	}
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		// Fallback to simple connection
		return &redis.Options{Addr: strings.TrimPrefix(redisURL, "redis://")}
	}
	return opt
}

func (r *RedisSlot) redisKey(key string) string {
	if r.prefix == "" {
		return key
	}
	return r.prefix + ":" + key
}

func (r *RedisSlot) Get(ctx context.Context, key string) (string, error) {
	v, err := r.client.Get(ctx, r.redisKey(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get slot %s: %w", key, err)
	}
	return v, nil
}

func (r *RedisSlot) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, r.redisKey(key), value, 0).Err(); err != nil {
		return fmt.Errorf("set slot %s: %w", key, err)
	}
	return nil
}

func (r *RedisSlot) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisSlot) Close() error {
	return r.client.Close()
}
