package history

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisKey is the key holding the history document.
const DefaultRedisKey = "dash:history"

// RedisBackend stores the history document under a single Redis key so
// several machines can share one history. Last writer wins.
type RedisBackend struct {
	client *redis.Client
	key    string
}

// RedisOption configures a RedisBackend.
type RedisOption func(*RedisBackend)

// WithKey sets the key holding the document.
func WithKey(key string) RedisOption {
	return func(r *RedisBackend) {
		if key != "" {
			r.key = key
		}
	}
}

// NewRedisBackend connects to a Redis server.
func NewRedisBackend(address, password string, db int, opts ...RedisOption) *RedisBackend {
	client := redis.NewClient(&redis.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewRedisBackendFromClient(client, opts...)
}

// NewRedisBackendFromClient wraps an existing client.
func NewRedisBackendFromClient(client *redis.Client, opts ...RedisOption) *RedisBackend {
	r := &RedisBackend{
		client: client,
		key:    DefaultRedisKey,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Key returns the key holding the document.
func (r *RedisBackend) Key() string {
	return r.key
}

// Read implements Backend.
func (r *RedisBackend) Read(ctx context.Context) ([]byte, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get history from redis: %w", err)
	}
	return data, nil
}

// Write implements Backend.
func (r *RedisBackend) Write(ctx context.Context, data []byte) error {
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save history to redis: %w", err)
	}
	return nil
}

// Close closes the redis client.
func (r *RedisBackend) Close() error {
	return r.client.Close()
}
