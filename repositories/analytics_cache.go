package repositories

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/redis/go-redis/v9"
)

const (
	DefaultAnalyticsCacheSize = 256
	DefaultAnalyticsCacheTtl  = 60 * time.Second

	redisAnalyticsPrefix        = "firagent:analytics"
	redisAnalyticsGenerationKey = redisAnalyticsPrefix + ":generation"
)

// AnalyticsCache stores serialized aggregate results. Invalidate drops every entry at once,
// it is called after each FIR write.
//
// Get returns the generation it read under, and Set only stores a value computed in that
// generation: a result computed before a write commits is dropped if the write invalidated
// the cache in the meantime.
type AnalyticsCache interface {
	Get(ctx context.Context, key string) (value []byte, generation int64, found bool, err error)
	Set(ctx context.Context, key string, generation int64, value []byte) error
	Invalidate(ctx context.Context) error
}

type InMemoryAnalyticsCache struct {
	mu         sync.Mutex
	generation int64
	lru        *expirable.LRU[string, []byte]
}

func NewInMemoryAnalyticsCache(size int, ttl time.Duration) *InMemoryAnalyticsCache {
	return &InMemoryAnalyticsCache{
		lru: expirable.NewLRU[string, []byte](size, nil, ttl),
	}
}

func (c *InMemoryAnalyticsCache) Get(ctx context.Context, key string) ([]byte, int64, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	value, ok := c.lru.Get(key)
	return value, c.generation, ok, nil
}

func (c *InMemoryAnalyticsCache) Set(ctx context.Context, key string, generation int64, value []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if generation != c.generation {
		return nil
	}
	c.lru.Add(key, value)
	return nil
}

func (c *InMemoryAnalyticsCache) Invalidate(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	c.lru.Purge()
	return nil
}

// RedisAnalyticsCache shares cached aggregates between instances. Keys embed a generation
// number so that invalidation is a single INCR instead of a key scan.
type RedisAnalyticsCache struct {
	client *RedisClient
	ttl    time.Duration
}

func NewRedisAnalyticsCache(client *RedisClient, ttl time.Duration) *RedisAnalyticsCache {
	return &RedisAnalyticsCache{client: client, ttl: ttl}
}

func (c *RedisAnalyticsCache) generation(ctx context.Context) (int64, error) {
	generation, err := c.client.client.Get(ctx, redisAnalyticsGenerationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return generation, err
}

func (c *RedisAnalyticsCache) key(generation int64, key string) string {
	return redisAnalyticsPrefix + ":" + strconv.FormatInt(generation, 10) + ":" + key
}

func (c *RedisAnalyticsCache) Get(ctx context.Context, key string) ([]byte, int64, bool, error) {
	generation, err := c.generation(ctx)
	if err != nil {
		return nil, 0, false, errors.Wrap(err, "could not read analytics cache generation")
	}

	value, err := c.client.client.Get(ctx, c.key(generation, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, generation, false, nil
	}
	if err != nil {
		return nil, generation, false, errors.Wrap(err, "could not read analytics cache")
	}
	return value, generation, true, nil
}

// Set writes under the generation read by Get. After an invalidation that key is never read again.
func (c *RedisAnalyticsCache) Set(ctx context.Context, key string, generation int64, value []byte) error {
	return c.client.client.Set(ctx, c.key(generation, key), value, c.ttl).Err()
}

func (c *RedisAnalyticsCache) Invalidate(ctx context.Context) error {
	return c.client.client.Incr(ctx, redisAnalyticsGenerationKey).Err()
}
