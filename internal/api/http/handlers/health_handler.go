package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/agrilink/internal/persistence"
)

// HealthHandler exposes liveness and readiness probes.
type HealthHandler struct {
	version string
	pg      *persistence.Postgres
	redis   *persistence.Redis
}

// NewHealthHandler constructs the handler.
func NewHealthHandler(version string, pg *persistence.Postgres, redis *persistence.Redis) *HealthHandler {
	return &HealthHandler{version: version, pg: pg, redis: redis}
}

// Live GET /health/live.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "version": h.version})
}

// Ready GET /health/ready checks backing stores. Redis is best-effort and
// reported but never fails readiness.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	checks := fiber.Map{}
	status := http.StatusOK

	if h.pg != nil && h.pg.Pool != nil {
		if err := h.pg.Pool.Ping(c.Context()); err != nil {
			checks["postgres"] = "down"
			status = http.StatusServiceUnavailable
		} else {
			checks["postgres"] = "ok"
		}
	} else {
		checks["postgres"] = "not configured"
		status = http.StatusServiceUnavailable
	}

	if err := h.redis.Ping(c.Context()); err != nil {
		checks["redis"] = "down"
	} else {
		checks["redis"] = "ok"
	}

	return c.Status(status).JSON(fiber.Map{"status": http.StatusText(status), "checks": checks})
}
