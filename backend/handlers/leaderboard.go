package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hoopside/hoopside-backend/backend/utils"
)

// GetLeaderboard returns the top players ordered by XP.
func GetLeaderboard(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := c.QueryInt("limit", 25)
		if limit < 1 || limit > 100 {
			limit = 25
		}

		entries, err := webApp.Leaderboard.Top(c.Context(), limit)
		if err != nil {
			return utils.SendInternalServerError(c, "Failed to load leaderboard")
		}

		return utils.SendSuccess(c, entries, "")
	}
}
