package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/lifestory-app/lifestory-backend/internal/database"
)

const (
	// CacheKeyPrefix is the Redis key prefix for cached data
	CacheKeyPrefix = "cache:"
	// PromptCacheTTL keeps the daily reflection prompt fresh enough
	// without hitting the completion API on every dashboard load.
	PromptCacheTTL = 4 * time.Hour
)

// CacheService provides JSON caching for derived data. Failures are treated
// as cache misses; correctness never depends on the cache.
type CacheService struct{}

// Get retrieves a value from cache. Returns false on miss.
func (c *CacheService) Get(key string, dest interface{}) (bool, error) {
	ctx := context.Background()
	cacheKey := CacheKeyPrefix + key

	val, err := database.RedisClient.Get(ctx, cacheKey).Result()
	if err != nil {
		return false, nil // Cache miss, not an error
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, err
	}

	return true, nil
}

// SetWithTTL stores a value in cache with the given TTL.
func (c *CacheService) SetWithTTL(key string, value interface{}, ttl time.Duration) error {
	ctx := context.Background()
	cacheKey := CacheKeyPrefix + key

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return database.RedisClient.Set(ctx, cacheKey, data, ttl).Err()
}
