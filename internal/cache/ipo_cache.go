package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wcib/ipoportal/internal/models"
)

const (
	ipoListKey = "ipos:all"
	ipoListTTL = 2 * time.Minute
)

// RedisIPOCache caches offering listings so the public list endpoint does
// not hit Mongo on every poll. Misses and Redis errors both fall through to
// the repository.
type RedisIPOCache struct {
	client *redis.Client
}

func New(addr, password string, db int) (*RedisIPOCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return &RedisIPOCache{client: client}, nil
}

func (c *RedisIPOCache) GetIPOs() ([]*models.IPO, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	data, err := c.client.Get(ctx, ipoListKey).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		log.Printf("ipo cache read failed: %v", err)
		return nil, false
	}

	var ipos []*models.IPO
	if err := json.Unmarshal(data, &ipos); err != nil {
		log.Printf("ipo cache entry malformed, dropping: %v", err)
		c.Invalidate()
		return nil, false
	}
	return ipos, true
}

func (c *RedisIPOCache) SetIPOs(ipos []*models.IPO) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	data, err := json.Marshal(ipos)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, ipoListKey, data, ipoListTTL).Err(); err != nil {
		log.Printf("ipo cache write failed: %v", err)
	}
}

func (c *RedisIPOCache) Invalidate() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := c.client.Del(ctx, ipoListKey).Err(); err != nil {
		log.Printf("ipo cache invalidate failed: %v", err)
	}
}
