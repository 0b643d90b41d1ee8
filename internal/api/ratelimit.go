package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/esteveseverson/fastapi-playtime/internal/pkg/cache"
)

// RateLimiter caps requests per client IP inside a rolling window,
// counting in redis so every instance shares the same budget.
func RateLimiter(client cache.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "rate-limit:" + c.ClientIP()
		ctx := context.Background()

		count, err := client.GetInt(ctx, key)
		if err == cache.ErrCacheMiss {
			_ = client.Set(ctx, key, 1, window)
			c.Header("X-RateLimit-Remaining", strconv.Itoa(limit-1))
			c.Next()
			return
		} else if err != nil {
			// A broken cache should not take the API down.
			c.Next()
			return
		}

		if count >= limit {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}

		_ = client.Incr(ctx, key)
		c.Header("X-RateLimit-Remaining", strconv.Itoa(limit-count-1))
		c.Next()
	}
}
