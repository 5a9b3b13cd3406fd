package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

// Counter increments a fixed-window hit counter and returns the new value.
type Counter interface {
	Increment(ctx context.Context, key string, window time.Duration) (int64, error)
}

type RedisCounter struct {
	client *redis.Client
}

func NewRedisCounter(client *redis.Client) *RedisCounter {
	return &RedisCounter{client: client}
}

func (r *RedisCounter) Increment(ctx context.Context, key string, window time.Duration) (int64, error) {
	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		r.client.Expire(ctx, key, window)
	}
	return count, nil
}

// MemoryCounter keeps windows in process memory; used when Redis is unavailable.
type MemoryCounter struct {
	cache *gocache.Cache
}

func NewMemoryCounter() *MemoryCounter {
	return &MemoryCounter{cache: gocache.New(time.Minute, 5*time.Minute)}
}

func (m *MemoryCounter) Increment(_ context.Context, key string, window time.Duration) (int64, error) {
	for {
		if err := m.cache.Add(key, int64(1), window); err == nil {
			return 1, nil
		}
		count, err := m.cache.IncrementInt64(key, 1)
		if err == nil {
			return count, nil
		}
		// window expired between Add and Increment
	}
}

func RateLimitMiddleware(counter Counter, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var subject string
		if identity, ok := CurrentIdentity(c); ok {
			subject = strconv.FormatUint(uint64(identity.UserID), 10)
		} else {
			subject = c.ClientIP()
		}

		key := fmt.Sprintf("rate_limit:%s:%s", c.FullPath(), subject)

		count, err := counter.Increment(c.Request.Context(), key, window)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"status":  false,
				"message": "Rate limit check failed",
				"errors":  []any{},
			})
			return
		}

		remaining := int64(limit) - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > int64(limit) {
			c.Header("Retry-After", strconv.Itoa(int(window.Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"status":  false,
				"message": "Too Many Attempts.",
				"errors":  []any{},
			})
			return
		}

		c.Next()
	}
}
