package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/hoopside/hoopside-backend/backend/utils"
	"github.com/hoopside/hoopside-backend/hoopside/database/repositories"
)

// SearchCourts fuzzy-searches the court directory by name and city.
func SearchCourts(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := c.Query("q")
		limit := c.QueryInt("limit", 20)
		if limit < 1 || limit > 100 {
			limit = 20
		}

		courts, err := webApp.Courts.Search(c.Context(), query, limit)
		if err != nil {
			return utils.SendInternalServerError(c, "Failed to search courts")
		}

		return utils.SendSuccess(c, courts, "")
	}
}

// GetCourt returns one court by ID.
func GetCourt(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		court, err := webApp.Courts.GetByID(c.Context(), c.Params("id"))
		if err != nil {
			if errors.Is(err, repositories.ErrCourtNotFound) {
				return utils.SendNotFound(c, "Court not found")
			}
			return utils.SendInternalServerError(c, "Failed to load court")
		}

		return utils.SendSuccess(c, court, "")
	}
}
