package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// CacheService is a small JSON read cache over redis, used for the
// category summary and dashboard stats. A nil client disables caching;
// every call then reports a miss and reads fall through to the store.
type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(redisURL string, ttl time.Duration) *CacheService {
	if redisURL == "" {
		return &CacheService{ttl: ttl}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("Invalid REDIS_URL, caching disabled: %v", err)
		return &CacheService{ttl: ttl}
	}

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("Redis unreachable, caching disabled: %v", err)
		return &CacheService{ttl: ttl}
	}

	return &CacheService{client: client, ttl: ttl}
}

func (s *CacheService) Enabled() bool {
	return s.client != nil
}

// GetJSON unmarshals the cached value into dest, reporting whether it
// was a hit
func (s *CacheService) GetJSON(ctx context.Context, key string, dest interface{}) bool {
	if s.client == nil {
		return false
	}

	raw, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false
	}
	return true
}

// SetJSON stores the value under the key with the service TTL,
// best-effort
func (s *CacheService) SetJSON(ctx context.Context, key string, value interface{}) {
	if s.client == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.client.Set(ctx, key, raw, s.ttl).Err(); err != nil {
		log.Printf("Cache write failed for %s: %v", key, err)
	}
}

// Invalidate drops the given keys, best-effort. Called by the daily
// update job after it mutates the catalog.
func (s *CacheService) Invalidate(ctx context.Context, keys ...string) {
	if s.client == nil || len(keys) == 0 {
		return
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		log.Printf("Cache invalidation failed: %v", err)
	}
}
