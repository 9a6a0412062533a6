package hub

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/datacube/topic-search/internal/logger"
)

// Cache stores raw upstream response bodies. Implementations must treat
// every failure as a miss; caching is strictly best-effort and must never
// fail a request.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}

const cacheKeyPrefix = "topic-search:hub:"

// RedisCache caches upstream responses in Redis.
type RedisCache struct {
	client *redis.Client
	logger logger.Logger
}

// NewRedisCache connects to Redis and verifies the connection with a short
// ping. A nil cache and an error are returned when Redis is unreachable so
// the caller can decide to run uncached.
func NewRedisCache(addr, password string, db int, log logger.Logger) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	return &RedisCache{client: client, logger: log}, nil
}

// Get implements Cache.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := c.client.Get(ctx, cacheKeyPrefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("cache get failed", logger.String("key", key), logger.Error(err))
		}
		return nil, false
	}
	return val, true
}

// Set implements Cache.
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if err := c.client.Set(ctx, cacheKeyPrefix+key, value, ttl).Err(); err != nil {
		c.logger.Warn("cache set failed", logger.String("key", key), logger.Error(err))
	}
}

// Ping checks the Redis connection, for readiness probes.
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close releases the Redis connection.
func (c *RedisCache) Close() error {
	return c.client.Close()
}
