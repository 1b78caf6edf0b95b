package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

const renderCounterPrefix = "dashboard:renders:"

// CacheService keeps operational dashboard counters in Redis. It never
// stores dashboard data.
type CacheService struct {
	client *redis.Client
}

func NewCacheService(client *redis.Client) *CacheService {
	if client == nil {
		panic("redis client is required")
	}
	return &CacheService{client: client}
}

// RecordRender counts one dashboard render from source.
func (s *CacheService) RecordRender(ctx context.Context, source string) error {
	if source == "" {
		return errors.New("render source is required")
	}
	return s.client.Incr(ctx, renderCounterPrefix+source).Err()
}

// RenderCounts returns the number of renders recorded per source.
func (s *CacheService) RenderCounts(ctx context.Context) (map[string]int64, error) {
	counts := make(map[string]int64)
	iter := s.client.Scan(ctx, 0, renderCounterPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		n, err := s.client.Get(ctx, key).Int64()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to read render counter %s: %w", key, err)
		}
		counts[strings.TrimPrefix(key, renderCounterPrefix)] = n
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan render counters: %w", err)
	}
	return counts, nil
}

// HealthCheck pings Redis.
func (s *CacheService) HealthCheck(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection failed: %w", err)
	}
	return nil
}

// GetStats returns the client's connection pool statistics.
func (s *CacheService) GetStats() *redis.PoolStats {
	return s.client.PoolStats()
}

// Close closes the Redis client connection
func (s *CacheService) Close() error {
	return s.client.Close()
}
