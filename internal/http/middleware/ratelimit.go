// README: Redis fixed-window rate limiter for generation endpoints.
package middleware

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const rateLimitKeyPrefix = "ratelimit:%s:%s"

// RateLimit allows perMin requests per client IP per calendar minute.
// Redis being down must not take the API with it: on any Redis error the
// request is allowed through and the error logged (fail open).
func RateLimit(rdb *redis.Client, perMin int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil || perMin <= 0 {
			c.Next()
			return
		}
		ctx := c.Request.Context()
		window := time.Now().UTC().Format("200601021504")
		key := fmt.Sprintf(rateLimitKeyPrefix, c.ClientIP(), window)

		n, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			log.Printf("ratelimit: redis error, allowing request: %v", err)
			c.Next()
			return
		}
		if n == 1 {
			// Two minutes outlives the window regardless of clock skew.
			rdb.Expire(ctx, key, 2*time.Minute)
		}
		if n > int64(perMin) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
