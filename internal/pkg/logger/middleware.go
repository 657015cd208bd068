package logger

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// EchoMiddleware logs every HTTP request and enriches the active New Relic
// transaction when one exists.
func EchoMiddleware(l *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			txn := newrelic.FromContext(c.Request().Context())

			start := time.Now()
			path := c.Request().URL.Path
			raw := c.Request().URL.RawQuery

			err := next(c)

			latency := time.Since(start)
			statusCode := c.Response().Status
			method := c.Request().Method

			if raw != "" {
				path = path + "?" + raw
			}

			userID := "anonymous"
			if v := c.Get("user_id"); v != nil {
				userID = fmt.Sprintf("%v", v)
			}
			requestID := c.Response().Header().Get(echo.HeaderXRequestID)

			if txn != nil {
				txn.AddAttribute("user_id", userID)
				txn.AddAttribute("request_id", requestID)
				txn.AddAttribute("response_time_ms", latency.Milliseconds())
				if err != nil {
					txn.NoticeError(err)
				}
			}

			fields := []Field{
				String("method", method),
				String("path", path),
				String("client_ip", c.RealIP()),
				String("user_id", userID),
				String("request_id", requestID),
				Int("status", statusCode),
				Duration("latency", latency),
			}
			if err != nil {
				fields = append(fields, Err(err))
				l.Warn("http request", fields...)
			} else {
				l.Info("http request", fields...)
			}

			return err
		}
	}
}
