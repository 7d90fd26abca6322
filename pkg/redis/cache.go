package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Cache stores JSON values under "namespace::name::key" with a fixed TTL
type Cache struct {
	client *Client
	name   string
	ttl    time.Duration
}

// NewCache creates a named cache. A zero ttl uses the client default.
func NewCache(client *Client, name string, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = client.config.DefaultCacheTTL
	}
	return &Cache{client: client, name: name, ttl: ttl}
}

func (c *Cache) buildCacheKey(key string) string {
	return c.client.Key(c.name, key)
}

// Get decodes the cached value into dest. found is false on a cache miss.
func (c *Cache) Get(ctx context.Context, key string, dest any) (found bool, err error) {
	data, found, err := c.client.GetBytes(ctx, c.buildCacheKey(key))
	if err != nil || !found {
		return false, err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to deserialize cached value: %w", err)
	}
	return true, nil
}

// Set stores value with the cache TTL
func (c *Cache) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to serialize value: %w", err)
	}
	return c.client.Set(ctx, c.buildCacheKey(key), data, c.ttl)
}

// Delete removes a value from cache
func (c *Cache) Delete(ctx context.Context, key string) error {
	return c.client.Delete(ctx, c.buildCacheKey(key))
}

// Clear removes every entry of the cache
func (c *Cache) Clear(ctx context.Context) error {
	_, err := c.client.DeleteByPattern(ctx, c.buildCacheKey("*"), 100)
	return err
}
