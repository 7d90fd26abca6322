package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"go-taskflow/pkg/log"
	"go-taskflow/pkg/redis"
)

const rateLimiterName = "bulk"

// BulkRateLimiter limits the bulk endpoints to perSecond requests per client IP.
// With a redis client the window is shared by every replica, otherwise it is kept in memory.
func BulkRateLimiter(client *redis.Client, perSecond int) echo.MiddlewareFunc {
	return echomw.RateLimiterWithConfig(echomw.RateLimiterConfig{
		Store: rateLimiterStore(client, perSecond),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusForbidden, map[string]string{"error": err.Error()})
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			if err != nil {
				log.Warnf("Rate limiter store failed for %s: %v", identifier, err)
			}
			return c.JSON(http.StatusTooManyRequests, map[string]string{"error": "Too many bulk requests, try again later"})
		},
	})
}

func rateLimiterStore(client *redis.Client, perSecond int) echomw.RateLimiterStore {
	if perSecond <= 0 {
		perSecond = 1
	}
	if client != nil {
		limiter, err := redis.NewRateLimiter(client, rateLimiterName, redis.RateLimiterOptions{
			MaxTransactionsPerSecond: perSecond,
			Timeout:                  time.Second,
		})
		if err == nil {
			return limiter
		}
		log.Warnf("Falling back to the in-memory rate limiter: %v", err)
	}
	return echomw.NewRateLimiterMemoryStoreWithConfig(echomw.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(perSecond),
		Burst:     perSecond,
		ExpiresIn: time.Minute,
	})
}
