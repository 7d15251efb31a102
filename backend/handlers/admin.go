package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/hoopside/hoopside-backend/backend/utils"
	"github.com/hoopside/hoopside-backend/hoopside/services"
)

type adjustXPRequest struct {
	Delta  int64  `json:"delta"`
	Reason string `json:"reason"`
}

// AdjustPlayerXP applies an explicit admin XP correction.
func AdjustPlayerXP(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		playerID := c.Params("id")

		var req adjustXPRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "Invalid request body", nil)
		}
		if details := utils.ValidatePlayerID(playerID); details != nil {
			return utils.SendBadRequest(c, "Invalid player id", details)
		}
		if details := utils.ValidateAdjustXP(req.Delta, req.Reason); details != nil {
			return utils.SendBadRequest(c, "Invalid adjustment", details)
		}

		result, err := webApp.Progress.AdjustXP(c.Context(), playerID, req.Delta, req.Reason)
		if err != nil {
			if errors.Is(err, services.ErrPlayerNotFound) {
				return utils.SendError(c, fiber.StatusNotFound, "PLAYER_NOT_FOUND", "No ledger exists for this player.", nil)
			}
			return utils.SendInternalServerError(c, "Failed to adjust XP")
		}

		return utils.SendSuccess(c, result, "XP adjusted")
	}
}
