package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultStoragePrefix = "fiber:"

// Storage adapts a Redis client to fiber.Storage so middleware such as the
// rate limiter can share state across instances.
type Storage struct {
	client *redis.Client
	prefix string
}

func NewStorage(client *redis.Client, prefix string) *Storage {
	if prefix == "" {
		prefix = defaultStoragePrefix
	}
	return &Storage{client: client, prefix: prefix}
}

// Get returns nil, nil when the key does not exist.
func (s *Storage) Get(key string) ([]byte, error) {
	if key == "" {
		return nil, nil
	}
	val, err := s.client.Get(context.Background(), s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	return val, err
}

// Set stores val; a zero exp keeps the key until deleted.
func (s *Storage) Set(key string, val []byte, exp time.Duration) error {
	if key == "" || len(val) == 0 {
		return nil
	}
	return s.client.Set(context.Background(), s.prefix+key, val, exp).Err()
}

func (s *Storage) Delete(key string) error {
	if key == "" {
		return nil
	}
	return s.client.Del(context.Background(), s.prefix+key).Err()
}

// Reset deletes every key under the storage prefix.
func (s *Storage) Reset() error {
	ctx := context.Background()
	iter := s.client.Scan(ctx, 0, s.prefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) > 0 {
		return s.client.Del(ctx, keys...).Err()
	}
	return nil
}

// Close is a no-op; the client is owned by the caller.
func (s *Storage) Close() error {
	return nil
}
