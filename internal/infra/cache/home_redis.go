package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	domain "github.com/BruksfildServices01/home-listing/internal/domain/home"
	"github.com/BruksfildServices01/home-listing/internal/dto"
)

// HomeRedisCache stores home details as JSON. Redis failures are logged and
// treated as misses so reads always fall back to the database.
type HomeRedisCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewHomeRedisCache(rdb *redis.Client, ttl time.Duration) *HomeRedisCache {
	return &HomeRedisCache{rdb: rdb, ttl: ttl}
}

func homeKey(id uint) string {
	return fmt.Sprintf("home:%d", id)
}

func (c *HomeRedisCache) Get(ctx context.Context, id uint) (*dto.HomeDTO, bool) {
	val, err := c.rdb.Get(ctx, homeKey(id)).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		logrus.WithError(err).WithField("home_id", id).Warn("home cache read failed")
		return nil, false
	}

	var h dto.HomeDTO
	if err := json.Unmarshal([]byte(val), &h); err != nil {
		logrus.WithError(err).WithField("home_id", id).Warn("home cache entry corrupt")
		return nil, false
	}
	return &h, true
}

func (c *HomeRedisCache) Set(ctx context.Context, id uint, h *dto.HomeDTO) {
	b, err := json.Marshal(h)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, homeKey(id), b, c.ttl).Err(); err != nil {
		logrus.WithError(err).WithField("home_id", id).Warn("home cache write failed")
	}
}

func (c *HomeRedisCache) Invalidate(ctx context.Context, id uint) {
	if err := c.rdb.Del(ctx, homeKey(id)).Err(); err != nil {
		logrus.WithError(err).WithField("home_id", id).Warn("home cache invalidate failed")
	}
}

// Compile-time check
var _ domain.Cache = (*HomeRedisCache)(nil)
