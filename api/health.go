package api

import (
	"context"
	"time"

	"kucukaslan/interactions/buildinfo"
	"kucukaslan/interactions/domain"

	"github.com/gofiber/fiber/v2"
)

// Pinger checks one backing service.
type Pinger func(ctx context.Context) error

// HealthHandler reports the status of every backing service.
type HealthHandler struct {
	ClickHouse Pinger
	Redis      Pinger
	Postgres   Pinger
	Timeout    time.Duration
}

func serviceStatus(ctx context.Context, ping Pinger) (domain.ServiceStatus, bool) {
	if ping == nil {
		return domain.ServiceStatus{Status: "unhealthy", Message: "not configured"}, false
	}
	if err := ping(ctx); err != nil {
		return domain.ServiceStatus{Status: "unhealthy", Message: err.Error()}, false
	}
	return domain.ServiceStatus{Status: "healthy"}, true
}

// Check handles the /health endpoint
// @Summary Health check endpoint
// @Description Check the health status of the service and its dependencies
// @Tags Health
// @Produce json
// @Success 200 {object} domain.HealthResponse "Service is healthy"
// @Success 503 {object} domain.HealthResponse "Service is unhealthy"
// @Router /health [get]
func (h HealthHandler) Check(c *fiber.Ctx) error {
	timeout := h.Timeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
	defer cancel()

	now := time.Now()
	response := domain.HealthResponse{
		Timestamp: now,
		BuildInfo: buildinfo.GetInfo(now),
	}

	var clickhouseHealthy, redisHealthy, postgresHealthy bool
	response.Services.ClickHouse, clickhouseHealthy = serviceStatus(ctx, h.ClickHouse)
	response.Services.Redis, redisHealthy = serviceStatus(ctx, h.Redis)
	response.Services.Postgres, postgresHealthy = serviceStatus(ctx, h.Postgres)

	// Determine overall status
	if clickhouseHealthy && redisHealthy && postgresHealthy {
		response.Status = "healthy"
		return c.Status(fiber.StatusOK).JSON(response)
	}

	response.Status = "unhealthy"
	return c.Status(fiber.StatusServiceUnavailable).JSON(response)
}
