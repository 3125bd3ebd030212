package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/andrewarnaud1/mymanager/pkg/redis"
	"github.com/andrewarnaud1/mymanager/pkg/response"
)

// RateLimit enforces a fixed-window per-IP limit backed by Redis.
// With a nil client the middleware is a pass-through. Redis errors fail
// open: an unreachable limiter never takes the API down.
func RateLimit(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("ratelimit:%s:%s", c.FullPath(), c.ClientIP())
		ok, err := rdb.CheckRateLimit(c.Request.Context(), key, limit, window)
		if err == nil && !ok {
			response.Error(c, http.StatusTooManyRequests, 42900, "too many requests")
			c.Abort()
			return
		}
		c.Next()
	}
}
