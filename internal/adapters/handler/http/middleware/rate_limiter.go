package middleware

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimiterMiddleware is a fixed-window counter per client IP. It fails open when redis is unavailable.
func RateLimiterMiddleware(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := "rate_limit:" + c.ClientIP()

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			log.Printf("[RATELIMIT] Redis error, limiter skipped: %v", err)
			c.Next()
			return
		}

		if count == 1 {
			if err := rdb.Expire(ctx, key, window).Err(); err != nil {
				log.Printf("[RATELIMIT] Redis expire error: %v. Deleting key to avoid zombie.", err)
				rdb.Del(ctx, key)
				c.Next()
				return
			}
		}

		ttl, err := rdb.TTL(ctx, key).Result()
		if err != nil || ttl < 0 {
			ttl = window
		}

		remaining := int64(limit) - count
		if remaining < 0 {
			remaining = 0
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(ttl).Unix(), 10))

		if count > int64(limit) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"status":     "error",
				"message":    "Too many requests. Slow down!",
				"retry_in_s": int(ttl.Seconds()),
			})
			return
		}

		c.Next()
	}
}
