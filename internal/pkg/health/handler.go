package health

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/emresource/emresource/internal/pkg/database"
	"github.com/emresource/emresource/internal/pkg/nats"
)

// Checker verifies a single dependency.
type Checker interface {
	Name() string
	CheckHealth(ctx context.Context) error
}

// PostgresChecker verifies the PostgreSQL connection.
type PostgresChecker struct {
	client *database.PostgresClient
}

// NewPostgresChecker creates a PostgreSQL health checker.
func NewPostgresChecker(client *database.PostgresClient) *PostgresChecker {
	return &PostgresChecker{client: client}
}

func (p *PostgresChecker) Name() string { return "postgres" }

func (p *PostgresChecker) CheckHealth(ctx context.Context) error {
	if p.client == nil {
		return nil
	}
	return p.client.GetDB().PingContext(ctx)
}

// RedisChecker verifies the Redis connection.
type RedisChecker struct {
	client *database.RedisClient
}

// NewRedisChecker creates a Redis health checker.
func NewRedisChecker(client *database.RedisClient) *RedisChecker {
	return &RedisChecker{client: client}
}

func (r *RedisChecker) Name() string { return "redis" }

func (r *RedisChecker) CheckHealth(ctx context.Context) error {
	if r.client == nil {
		return nil
	}
	return r.client.Client.Ping(ctx).Err()
}

// NATSChecker verifies the NATS connection.
type NATSChecker struct {
	client *nats.Client
}

// NewNATSChecker creates a NATS health checker.
func NewNATSChecker(client *nats.Client) *NATSChecker {
	return &NATSChecker{client: client}
}

func (n *NATSChecker) Name() string { return "nats" }

func (n *NATSChecker) CheckHealth(ctx context.Context) error {
	if n.client == nil || n.client.GetConn().IsConnected() {
		return nil
	}
	return echo.NewHTTPError(http.StatusServiceUnavailable, "nats disconnected")
}

// RegisterEndpoints mounts /health (liveness) and /health/ready (readiness
// against every registered checker).
func RegisterEndpoints(e *echo.Echo, appName string, checkers ...Checker) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"service": appName,
		})
	})

	e.GET("/health/ready", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		status := http.StatusOK
		results := make(map[string]string, len(checkers))
		for _, checker := range checkers {
			if err := checker.CheckHealth(ctx); err != nil {
				results[checker.Name()] = err.Error()
				status = http.StatusServiceUnavailable
			} else {
				results[checker.Name()] = "ok"
			}
		}

		return c.JSON(status, map[string]interface{}{
			"service": appName,
			"checks":  results,
		})
	})
}
