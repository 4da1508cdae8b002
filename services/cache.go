package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const catalogCacheTTL = 5 * time.Minute

// Cache is an optional read cache for the public catalog. A nil *Cache is
// valid and disables caching entirely, so handlers never branch on
// whether redis is configured.
type Cache struct {
	client *redis.Client
}

func NewCache(addr, password string, db int) *Cache {
	if addr == "" {
		return nil
	}
	return &Cache{client: redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})}
}

// Get loads key into dst, returning true on a hit. Redis errors degrade
// to a miss; the database remains the source of truth.
func (c *Cache) Get(ctx context.Context, key string, dst any) bool {
	if c == nil {
		return false
	}
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dst) == nil
}

func (c *Cache) Set(ctx context.Context, key string, v any) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, raw, catalogCacheTTL).Err(); err != nil {
		log.Printf("warning: cache set %s failed: %v", key, err)
	}
}

// InvalidateCatalog drops every cached catalog view. Called after any
// admin mutation; the next read repopulates.
func (c *Cache) InvalidateCatalog(ctx context.Context) {
	if c == nil {
		return
	}
	keys, err := c.client.Keys(ctx, "catalog:*").Result()
	if err != nil || len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		log.Printf("warning: cache invalidation failed: %v", err)
	}
}
