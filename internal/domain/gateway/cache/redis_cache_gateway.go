package cache

import (
	"context"
	"time"

	"go-taskflow/internal/domain/model"
	"go-taskflow/pkg/redis"
)

// RedisCacheGateway keeps entries in a named redis cache shared by every instance
type RedisCacheGateway struct {
	cache *redis.Cache
}

var _ Gateway = (*RedisCacheGateway)(nil)

func NewRedisCacheGateway(client *redis.Client, name string, ttl time.Duration) *RedisCacheGateway {
	return &RedisCacheGateway{cache: redis.NewCache(client, name, ttl)}
}

func (gateway *RedisCacheGateway) Get(ctx context.Context, key string, dest any) (bool, error) {
	return gateway.cache.Get(ctx, key, dest)
}

func (gateway *RedisCacheGateway) Set(ctx context.Context, key string, value any) error {
	return gateway.cache.Set(ctx, key, value)
}

func (gateway *RedisCacheGateway) Clear(ctx context.Context) error {
	return gateway.cache.Clear(ctx)
}

// RedisHealthGateway reports the redis server health
type RedisHealthGateway struct {
	checker *redis.HealthChecker
}

var _ HealthGateway = (*RedisHealthGateway)(nil)

func NewRedisHealthGateway(client *redis.Client) *RedisHealthGateway {
	return &RedisHealthGateway{checker: redis.NewHealthChecker(client, 2*time.Second)}
}

func (gateway *RedisHealthGateway) Health() model.ComponentHealthStatus {
	check := gateway.checker.HealthCheck(context.Background())
	status := model.StatusDown
	if check.Status == redis.StatusUp {
		status = model.StatusUp
	}
	return model.ComponentHealthStatus{Status: status, Details: check.Details}
}
