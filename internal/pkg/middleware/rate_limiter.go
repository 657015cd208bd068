package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"

	"github.com/emresource/emresource/internal/pkg/constants"
	"github.com/emresource/emresource/internal/utils"
)

// RateLimiterConfig contains configuration for the Redis-backed limiter.
type RateLimiterConfig struct {
	RedisClient *redis.Client
	Resource    string        // key segment identifying the limited resource
	Limit       int           // maximum number of requests per period
	Period      time.Duration // rolling window length
}

// rateLimitScript increments the counter and sets the window expiry in one
// atomic step, so two concurrent requests cannot both start a window.
const rateLimitScript = `
local current = redis.call('INCR', KEYS[1])
if current == 1 then
	redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
return current
`

// RateLimiterMiddleware limits requests per client identifier (user id when
// authenticated, IP otherwise) using a fixed window in Redis.
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identifier := c.RealIP()
			if userID := c.Get("user_id"); userID != nil {
				identifier = fmt.Sprintf("%v", userID)
			}

			key := fmt.Sprintf(constants.KeyRateLimit, config.Resource, identifier)
			ctx := c.Request().Context()

			result, err := config.RedisClient.Eval(ctx, rateLimitScript,
				[]string{key}, config.Period.Milliseconds()).Result()
			if err != nil {
				// A broken limiter should not take down the endpoint.
				return next(c)
			}

			count, _ := result.(int64)
			remaining := config.Limit - int(count)
			if remaining < 0 {
				remaining = 0
			}

			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

			if int(count) > config.Limit {
				ttl, err := config.RedisClient.PTTL(ctx, key).Result()
				if err == nil && ttl > 0 {
					c.Response().Header().Set("Retry-After",
						strconv.FormatInt(int64(ttl.Seconds())+1, 10))
				}
				return utils.ErrorResponseHandler(c, http.StatusTooManyRequests, "Rate limit exceeded")
			}

			return next(c)
		}
	}
}
