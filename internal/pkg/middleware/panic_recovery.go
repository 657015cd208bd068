package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/emresource/emresource/internal/pkg/logger"
	"github.com/emresource/emresource/internal/utils"
)

// PanicRecoveryMiddleware recovers from handler panics, records them on the
// active New Relic transaction, and returns a 500 instead of dropping the
// connection.
func PanicRecoveryMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (returnErr error) {
			defer func() {
				if r := recover(); r != nil {
					err, ok := r.(error)
					if !ok {
						err = fmt.Errorf("%v", r)
					}

					if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
						txn.NoticeError(err)
					}

					logger.Error("panic recovered",
						logger.Err(err),
						logger.String("path", c.Path()),
						logger.String("method", c.Request().Method),
						logger.String("stack", string(debug.Stack())),
					)

					returnErr = utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Internal server error")
				}
			}()
			return next(c)
		}
	}
}
