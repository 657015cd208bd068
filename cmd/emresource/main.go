package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"

	"github.com/emresource/emresource/internal/pkg/config"
	"github.com/emresource/emresource/internal/pkg/database"
	"github.com/emresource/emresource/internal/pkg/health"
	"github.com/emresource/emresource/internal/pkg/logger"
	"github.com/emresource/emresource/internal/pkg/middleware"
	"github.com/emresource/emresource/internal/pkg/nats"
	"github.com/emresource/emresource/internal/pkg/newrelic"
	"github.com/emresource/emresource/internal/pkg/server"
	authgw "github.com/emresource/emresource/services/auth/gateway"
	authhandler "github.com/emresource/emresource/services/auth/handler"
	authhttp "github.com/emresource/emresource/services/auth/handler/http"
	authrepo "github.com/emresource/emresource/services/auth/repository"
	authuc "github.com/emresource/emresource/services/auth/usecase"
	emergencygw "github.com/emresource/emresource/services/emergency/gateway"
	emergencyhandler "github.com/emresource/emresource/services/emergency/handler"
	emergencyhttp "github.com/emresource/emresource/services/emergency/handler/http"
	emergencyrepo "github.com/emresource/emresource/services/emergency/repository"
	emergencyuc "github.com/emresource/emresource/services/emergency/usecase"
)

func main() {
	appName := "emresource"
	configPath := "config/emresource.env"
	configs := config.InitConfig(configPath)

	// Initialize New Relic APM
	nrApp := newrelic.InitNewRelic(configs)

	// Initialize structured logging
	zapLogger, err := logger.NewZapLogger(configs.Logger, nrApp)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		logger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// Initialize repositories
	authRepo := authrepo.NewAuthRepo(configs, postgresClient.GetDB(), redisClient)
	emergencyRepo := emergencyrepo.NewEmergencyRepo(configs, postgresClient.GetDB(), redisClient)

	// Initialize gateways
	authGW := authgw.NewAuthGW(natsClient)
	emergencyGW := emergencygw.NewEmergencyGW(natsClient)

	// Initialize usecases
	authUC := authuc.NewAuthUC(configs, authRepo, authGW)
	emergencyUC := emergencyuc.NewEmergencyUC(configs, emergencyRepo, emergencyGW)

	// Initialize handlers
	authHandler := authhandler.NewHandler(authhttp.NewAuthHandler(authUC), redisClient, configs)
	emergencyHandler := emergencyhandler.NewHandler(emergencyhttp.NewEmergencyHandler(emergencyUC), configs)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	e.Use(nrecho.Middleware(nrApp))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware())
	e.Use(logger.EchoMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterEndpoints(e, appName,
		health.NewPostgresChecker(postgresClient),
		health.NewRedisChecker(redisClient),
		health.NewNATSChecker(natsClient),
	)

	// Register service routes
	authHandler.RegisterRoutes(e)
	emergencyHandler.RegisterRoutes(e)

	// Start server with graceful shutdown
	shutdownTimeout := time.Duration(configs.Server.ShutdownTimeout) * time.Second
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port, shutdownTimeout)
	logger.Info("Starting service",
		logger.String("app", appName),
		logger.Int("port", configs.Server.Port))
	if err := srv.Start(); err != nil {
		logger.Fatal("Server terminated", logger.Err(err))
	}
}
