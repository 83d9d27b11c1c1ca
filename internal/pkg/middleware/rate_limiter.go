package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/nebengdinas/internal/pkg/database"
	"github.com/piresc/nebengdinas/internal/pkg/logger"
	"github.com/piresc/nebengdinas/internal/utils"
)

// RateLimiterConfig is a fixed window limit per caller and route
type RateLimiterConfig struct {
	Redis  *database.RedisClient
	Prefix string
	Limit  int
	Period time.Duration
}

// RateLimiterMiddleware counts requests per caller in redis. When redis is
// unavailable the request is let through.
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identifier := c.RealIP()
			if uid := c.Get(ContextKeyUserID); uid != nil {
				identifier = fmt.Sprintf("%v", uid)
			}
			key := fmt.Sprintf("rate:limit:%s:%s:%s", config.Prefix, c.Path(), identifier)
			ctx := c.Request().Context()

			count, err := config.Redis.Client.Incr(ctx, key).Result()
			if err != nil {
				logger.Warn("Rate limiter unavailable", logger.Err(err))
				return next(c)
			}
			if count == 1 {
				config.Redis.Client.Expire(ctx, key, config.Period)
			}

			remaining := int64(config.Limit) - count
			if remaining < 0 {
				remaining = 0
			}
			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

			if count > int64(config.Limit) {
				if ttl, err := config.Redis.Client.TTL(ctx, key).Result(); err == nil && ttl > 0 {
					c.Response().Header().Set("Retry-After", strconv.Itoa(int(ttl.Seconds())))
				}
				return utils.ErrorResponseHandler(c, http.StatusTooManyRequests, "Rate limit exceeded")
			}
			return next(c)
		}
	}
}
