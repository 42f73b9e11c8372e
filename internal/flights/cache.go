package flights

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"

	"flightly/internal/models"
)

const searchVersionKey = "flightly:search:version"

// RedisSearchCache caches search results under a versioned key prefix.
// Invalidation bumps the version; stale generations age out via TTL
// instead of being scanned and deleted.
type RedisSearchCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisSearchCache(client *redis.Client, ttl time.Duration) *RedisSearchCache {
	return &RedisSearchCache{Client: client, TTL: ttl}
}

func (c *RedisSearchCache) key(origin, destination, departureDate string) string {
	ctx := context.Background()
	version, err := c.Client.Get(ctx, searchVersionKey).Int64()
	if err != nil {
		version = 0
	}
	return fmt.Sprintf("flightly:search:%d:%s|%s|%s",
		version, strings.ToLower(origin), strings.ToLower(destination), departureDate)
}

func (c *RedisSearchCache) Get(origin, destination, departureDate string) ([]models.Flight, bool) {
	if c.Client == nil {
		return nil, false
	}
	ctx := context.Background()
	payload, err := c.Client.Get(ctx, c.key(origin, destination, departureDate)).Result()
	if err != nil {
		// redis.Nil means a plain miss; anything else degrades to a miss
		// as well since the db is authoritative.
		return nil, false
	}
	var flights []models.Flight
	if err := json.Unmarshal([]byte(payload), &flights); err != nil {
		return nil, false
	}
	return flights, true
}

func (c *RedisSearchCache) Set(origin, destination, departureDate string, flights []models.Flight) {
	if c.Client == nil {
		return
	}
	payload, err := json.Marshal(flights)
	if err != nil {
		return
	}
	ctx := context.Background()
	c.Client.Set(ctx, c.key(origin, destination, departureDate), payload, c.TTL)
}

func (c *RedisSearchCache) Invalidate() {
	if c.Client == nil {
		return
	}
	c.Client.Incr(context.Background(), searchVersionKey)
}
