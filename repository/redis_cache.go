package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache stores calculation results in Redis so that replicas of the
// API share one memoization space.
type RedisCache struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedisCache(addr string) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisCache{
		client: rdb,
		ctx:    context.Background(),
	}
}

// Ping verifies the connection so startup can fall back to the in-memory
// cache when Redis is unreachable.
func (r *RedisCache) Ping() error {
	ctx, cancel := context.WithTimeout(r.ctx, 2*time.Second)
	defer cancel()
	return r.client.Ping(ctx).Err()
}

func (r *RedisCache) Get(key string) (string, bool) {
	val, err := r.client.Get(r.ctx, key).Result()
	if err != nil {
		// redis.Nil (miss) y errores de red se tratan igual: recalcular
		return "", false
	}
	return val, true
}

func (r *RedisCache) Set(key string, value string, ttl time.Duration) error {
	return r.client.Set(r.ctx, key, value, ttl).Err()
}
