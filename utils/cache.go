package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
}

type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a Redis cache client.
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{
		client: client,
	}
}

// Get reads a cached value.
func (c *RedisCache) Get(ctx context.Context, key string, dest interface{}) error {
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(val), dest)
}

// Set writes a cached value.
func (c *RedisCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, string(data), expiration).Err()
}

// Delete removes a cache entry.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

// BuildCacheKey builds a cache key.
func BuildCacheKey(prefix string, params ...interface{}) string {
	key := prefix
	for _, param := range params {
		key += fmt.Sprintf(":%v", param)
	}
	return key
}

const CacheKeySignedURL = "photo:signed:url"

// GetSignedURLFromCache reads a cached presigned URL for an object.
func GetSignedURLFromCache(ctx context.Context, cache Cache, bucket, storageKey string) (string, bool) {
	if cache == nil {
		return "", false
	}
	key := BuildCacheKey(CacheKeySignedURL, bucket, storageKey)
	var url string
	if err := cache.Get(ctx, key, &url); err != nil || url == "" {
		return "", false
	}
	return url, true
}

// SetSignedURLToCache caches a presigned URL. The expiration must stay
// well below the signing TTL so a served link never arrives near-expired.
func SetSignedURLToCache(ctx context.Context, cache Cache, bucket, storageKey, url string, expiration time.Duration) error {
	if cache == nil {
		return nil
	}
	key := BuildCacheKey(CacheKeySignedURL, bucket, storageKey)
	return cache.Set(ctx, key, url, expiration)
}
