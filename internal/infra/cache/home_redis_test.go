package cache

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/home-listing/internal/dto"
)

func TestHomeKey(t *testing.T) {
	assert.Equal(t, "home:12", homeKey(12))
}

func TestUnreachableRedisIsAMiss(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer rdb.Close()

	c := NewHomeRedisCache(rdb, time.Minute)
	ctx := context.Background()

	assert.NotPanics(t, func() {
		c.Set(ctx, 1, &dto.HomeDTO{ID: 1})
		c.Invalidate(ctx, 1)
	})

	h, ok := c.Get(ctx, 1)
	assert.False(t, ok)
	assert.Nil(t, h)
}
