package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/prasetia/dompet/internal/pkg/config"
	"github.com/prasetia/dompet/internal/pkg/database"
	"github.com/prasetia/dompet/internal/pkg/health"
	"github.com/prasetia/dompet/internal/pkg/logger"
	"github.com/prasetia/dompet/internal/pkg/middleware"
	nrpkg "github.com/prasetia/dompet/internal/pkg/newrelic"
	"github.com/prasetia/dompet/internal/pkg/validation"
	"github.com/prasetia/dompet/services/ledger/handler"
	"github.com/prasetia/dompet/services/ledger/repository"
	"github.com/prasetia/dompet/services/ledger/usecase"
)

func main() {
	appName := "ledger-service"
	configPath := "config/ledger.env"
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	// Set global logger for application-wide access
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize repository and bootstrap the schema
	transactionRepo := repository.NewTransactionRepository(configs, postgresClient.GetDB())

	schemaCtx, schemaCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := transactionRepo.EnsureSchema(schemaCtx); err != nil {
		schemaCancel()
		zapLogger.Fatal("Failed to ensure database schema", logger.Err(err))
	}
	schemaCancel()

	// Redis backs the rate limiter and is optional
	var redisClient *database.RedisClient
	if configs.Redis.Host != "" {
		redisClient, err = database.NewRedisClient(configs.Redis)
		if err != nil {
			zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
		}
		defer redisClient.Close()
	}

	// Initialize usecase
	ledgerUC := usecase.NewLedgerUC(configs, transactionRepo)

	// Initialize handlers
	ledgerHandler := handler.NewHandler(ledgerUC, configs)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	e.Validator = validation.NewEchoValidator()

	// Add middlewares (panic recovery should be first)
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	if nrApp != nil {
		e.Use(nrecho.Middleware(nrApp))
	}
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Initialize health service
	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	if redisClient != nil {
		healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	}
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	// Register service routes, rate limited when Redis is available
	var routeMiddlewares []echo.MiddlewareFunc
	if redisClient != nil && configs.RateLimit.Limit > 0 {
		routeMiddlewares = append(routeMiddlewares, middleware.IPRateLimiter(
			configs.RateLimit.Limit,
			time.Duration(configs.RateLimit.Period)*time.Second,
			redisClient.GetClient(),
		))
	}
	ledgerHandler.RegisterRoutes(e, routeMiddlewares...)

	// Start server in goroutine
	go func() {
		addr := fmt.Sprintf(":%d", configs.Server.Port)
		zapLogger.Info("Starting HTTP server",
			logger.String("address", addr),
			logger.String("app", appName))

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", logger.Err(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	zapLogger.Info("Received shutdown signal", logger.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	zapLogger.Info("Shutting down HTTP server...")
	if err := e.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", logger.Err(err))
	}

	zapLogger.Info("Closing PostgreSQL connection...")
	if err := postgresClient.Close(); err != nil {
		zapLogger.Error("Error closing PostgreSQL connection", logger.Err(err))
	}

	if redisClient != nil {
		zapLogger.Info("Closing Redis connection...")
		if err := redisClient.Close(); err != nil {
			zapLogger.Error("Error closing Redis connection", logger.Err(err))
		}
	}

	if nrApp != nil {
		zapLogger.Info("Shutting down New Relic...")
		nrApp.Shutdown(10 * time.Second)
	}

	zapLogger.Info("Server exiting gracefully")
	_ = zapLogger.Sync()
}
