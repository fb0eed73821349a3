package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// LikeCountCache is a read-through Redis cache for per-post like counts.
// A nil cache is valid and means caching is disabled; every method degrades
// to a miss or a no-op, so callers never branch on configuration.
type LikeCountCache struct {
	Cli *redis.Client
	TTL time.Duration
}

func New(addr string, ttl time.Duration) *LikeCountCache {
	if addr == "" {
		return nil
	}
	return &LikeCountCache{
		Cli: redis.NewClient(&redis.Options{Addr: addr}),
		TTL: ttl,
	}
}

func key(postID string) string { return "post:" + postID + ":likes" }

func (c *LikeCountCache) Get(ctx context.Context, postID string) (int, bool) {
	if c == nil {
		return 0, false
	}
	val, err := c.Cli.Get(ctx, key(postID)).Result()
	if err != nil {
		return 0, false
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (c *LikeCountCache) Set(ctx context.Context, postID string, count int) {
	if c == nil {
		return
	}
	_ = c.Cli.Set(ctx, key(postID), strconv.Itoa(count), c.TTL).Err()
}

func (c *LikeCountCache) Invalidate(ctx context.Context, postID string) {
	if c == nil {
		return
	}
	_ = c.Cli.Del(ctx, key(postID)).Err()
}
