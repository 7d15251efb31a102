package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/hoopside/hoopside-backend/backend/utils"
)

// HealthCheck reports service and database health.
func HealthCheck(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
		defer cancel()

		dbStatus := "ok"
		if err := webApp.DB.GetPool().Ping(ctx); err != nil {
			dbStatus = "unreachable"
		}

		status := fiber.Map{
			"status":   "running",
			"version":  webApp.Version,
			"commit":   webApp.Commit,
			"database": dbStatus,
		}

		if dbStatus != "ok" {
			return utils.SendJSON(c, fiber.StatusServiceUnavailable, status)
		}
		return utils.SendJSON(c, fiber.StatusOK, status)
	}
}
