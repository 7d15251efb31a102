package middleware

import (
	"crypto/subtle"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/hoopside/hoopside-backend/backend/utils"
)

// AdminRequired guards the admin endpoints behind a static bearer
// token from configuration. The product's real auth is handled by the
// mobile gateway; this protects the operational surface only.
func AdminRequired(token string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token == "" {
			slog.Warn("Admin endpoint called but no admin token configured",
				slog.String("type", "http"),
				slog.String("path", c.Path()))
			return utils.SendUnauthorized(c, "Admin access is not configured")
		}

		provided := c.Get("Authorization")
		const prefix = "Bearer "
		if len(provided) > len(prefix) && provided[:len(prefix)] == prefix {
			provided = provided[len(prefix):]
		}

		if subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
			slog.Warn("Admin auth failed",
				slog.String("type", "http"),
				slog.String("path", c.Path()),
				slog.String("ip", utils.GetIPAddress(c)))
			return utils.SendUnauthorized(c, "Invalid admin token")
		}

		return c.Next()
	}
}
