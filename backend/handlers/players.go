package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/hoopside/hoopside-backend/backend/utils"
	"github.com/hoopside/hoopside-backend/hoopside/services"
)

// GetPlayer returns a player's ledger state and rank.
func GetPlayer(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		playerID := c.Params("id")

		profile, err := webApp.Progress.GetProfile(c.Context(), playerID)
		if err != nil {
			if errors.Is(err, services.ErrPlayerNotFound) {
				return utils.SendError(c, fiber.StatusNotFound, "PLAYER_NOT_FOUND", "No ledger exists for this player.", nil)
			}
			return utils.SendInternalServerError(c, "Failed to load player")
		}

		return utils.SendSuccess(c, profile, "")
	}
}

// GetPlayerBadges returns the badges a player has earned.
func GetPlayerBadges(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		playerID := c.Params("id")

		badges, err := webApp.Badges.GetByPlayerID(c.Context(), playerID)
		if err != nil {
			return utils.SendInternalServerError(c, "Failed to load badges")
		}

		return utils.SendSuccess(c, badges, "")
	}
}

// GetPlayerNotifications returns the player's recent notifications.
func GetPlayerNotifications(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		playerID := c.Params("id")
		limit := c.QueryInt("limit", 50)
		if limit < 1 || limit > 200 {
			limit = 50
		}

		notifications, err := webApp.Notifications.GetByPlayerID(c.Context(), playerID, limit)
		if err != nil {
			return utils.SendInternalServerError(c, "Failed to load notifications")
		}

		return utils.SendSuccess(c, notifications, "")
	}
}

// MarkNotificationRead marks one of the player's notifications as read.
func MarkNotificationRead(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		playerID := c.Params("id")

		notifID, err := strconv.ParseInt(c.Params("notification_id"), 10, 64)
		if err != nil {
			return utils.SendBadRequest(c, "Invalid notification id", nil)
		}

		if err := webApp.Notifications.MarkRead(c.Context(), playerID, notifID); err != nil {
			return utils.SendInternalServerError(c, "Failed to update notification")
		}

		return utils.SendSuccess(c, nil, "Notification marked as read")
	}
}
