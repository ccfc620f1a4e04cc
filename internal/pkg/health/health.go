package health

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prasetia/dompet/internal/pkg/database"
	"github.com/prasetia/dompet/internal/pkg/logger"
)

// HealthChecker defines the interface for health checking dependencies
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}

// PostgresHealthChecker checks PostgreSQL connection health
type PostgresHealthChecker struct {
	client *database.PostgresClient
}

// NewPostgresHealthChecker creates a new PostgreSQL health checker
func NewPostgresHealthChecker(client *database.PostgresClient) *PostgresHealthChecker {
	return &PostgresHealthChecker{client: client}
}

// CheckHealth checks if PostgreSQL is healthy
func (p *PostgresHealthChecker) CheckHealth(ctx context.Context) error {
	if p.client == nil {
		return nil // Skip if no PostgreSQL client
	}
	return p.client.GetDB().PingContext(ctx)
}

// RedisHealthChecker checks Redis connection health
type RedisHealthChecker struct {
	client *database.RedisClient
}

// NewRedisHealthChecker creates a new Redis health checker
func NewRedisHealthChecker(client *database.RedisClient) *RedisHealthChecker {
	return &RedisHealthChecker{client: client}
}

// CheckHealth checks if Redis is healthy
func (r *RedisHealthChecker) CheckHealth(ctx context.Context) error {
	if r.client == nil {
		return nil // Skip if no Redis client
	}
	return r.client.GetClient().Ping(ctx).Err()
}

// HealthService manages health checks for multiple dependencies
type HealthService struct {
	checkers map[string]HealthChecker
	logger   *logger.ZapLogger
}

// NewHealthService creates a new health service
func NewHealthService(zapLogger *logger.ZapLogger) *HealthService {
	return &HealthService{
		checkers: make(map[string]HealthChecker),
		logger:   zapLogger,
	}
}

// AddChecker registers a health checker for a dependency
func (h *HealthService) AddChecker(name string, checker HealthChecker) {
	h.checkers[name] = checker
}

// DependencyInfo describes the state of a single dependency
type DependencyInfo struct {
	Status    string `json:"status"`
	LatencyMs int64  `json:"latency_ms"`
	Error     string `json:"error,omitempty"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status       string                    `json:"status"`
	Timestamp    time.Time                 `json:"timestamp"`
	Service      string                    `json:"service"`
	Version      string                    `json:"version,omitempty"`
	Dependencies map[string]DependencyInfo `json:"dependencies"`
}

// CheckAll runs every registered checker and aggregates the results
func (h *HealthService) CheckAll(ctx context.Context, service, version string) HealthResponse {
	resp := HealthResponse{
		Status:       "healthy",
		Timestamp:    time.Now(),
		Service:      service,
		Version:      version,
		Dependencies: make(map[string]DependencyInfo),
	}

	for name, checker := range h.checkers {
		start := time.Now()
		err := checker.CheckHealth(ctx)
		info := DependencyInfo{
			Status:    "up",
			LatencyMs: time.Since(start).Milliseconds(),
		}
		if err != nil {
			info.Status = "down"
			info.Error = err.Error()
			resp.Status = "unhealthy"

			h.logger.Warn("Dependency health check failed",
				logger.String("dependency", name),
				logger.Err(err))
		}
		resp.Dependencies[name] = info
	}

	return resp
}

// RegisterHealthEndpoints registers liveness, readiness and dependency
// health endpoints on the echo instance
func RegisterHealthEndpoints(e *echo.Echo, serviceName, version string, service *HealthService) {
	e.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"service":     serviceName,
			"version":     version,
			"server_time": time.Now(),
		})
	})

	// Kubernetes standard health endpoints
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	e.GET("/ready", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	e.GET("/health/deps", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		resp := service.CheckAll(ctx, serviceName, version)
		status := http.StatusOK
		if resp.Status != "healthy" {
			status = http.StatusServiceUnavailable
		}
		return c.JSON(status, resp)
	})
}
