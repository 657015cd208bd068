package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/emresource/emresource/internal/pkg/logger"
)

// GracefulServer wraps an Echo server with graceful shutdown.
type GracefulServer struct {
	echo            *echo.Echo
	logger          *logger.ZapLogger
	port            int
	shutdownTimeout time.Duration
}

// NewGracefulServer creates a server that drains in-flight requests on
// SIGINT/SIGTERM before exiting.
func NewGracefulServer(e *echo.Echo, zapLogger *logger.ZapLogger, port int, shutdownTimeout time.Duration) *GracefulServer {
	if shutdownTimeout <= 0 {
		shutdownTimeout = 30 * time.Second
	}
	return &GracefulServer{
		echo:            e,
		logger:          zapLogger,
		port:            port,
		shutdownTimeout: shutdownTimeout,
	}
}

// Start serves until a shutdown signal arrives, then drains.
func (s *GracefulServer) Start() error {
	go func() {
		addr := fmt.Sprintf(":%d", s.port)
		s.logger.Info("Starting HTTP server", logger.String("address", addr))

		if err := s.echo.Start(addr); err != nil && err != http.ErrServerClosed {
			s.logger.Fatal("Failed to start server", logger.Err(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	sig := <-quit
	s.logger.Info("Received shutdown signal", logger.String("signal", sig.String()))

	return s.Shutdown()
}

// Shutdown drains in-flight requests within the configured timeout.
func (s *GracefulServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.echo.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", logger.Err(err))
		return err
	}

	s.logger.Info("Server shutdown completed")
	return nil
}
