package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/hoopside/hoopside-backend/backend/utils"
	"github.com/hoopside/hoopside-backend/hoopside/database"
	"github.com/hoopside/hoopside-backend/hoopside/progression"
)

type checkInRequest struct {
	PlayerID   string     `json:"player_id"`
	CourtID    string     `json:"court_id"`
	OccurredAt *time.Time `json:"occurred_at"`
}

type missionCompleteRequest struct {
	PlayerID   string     `json:"player_id"`
	MissionID  string     `json:"mission_id"`
	OccurredAt *time.Time `json:"occurred_at"`
}

// CheckIn records a court check-in activity event.
func CheckIn(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req checkInRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "Invalid request body", nil)
		}
		if details := utils.ValidatePlayerID(req.PlayerID); details != nil {
			return utils.SendBadRequest(c, "Invalid player_id", details)
		}
		if details := utils.ValidateEntityID("court_id", req.CourtID, false); details != nil {
			return utils.SendBadRequest(c, "Invalid court_id", details)
		}
		if details := utils.ValidateEventTime(req.OccurredAt); details != nil {
			return utils.SendBadRequest(c, "Invalid occurred_at", details)
		}

		result, err := webApp.Progress.CheckIn(c.Context(), req.PlayerID, req.CourtID, eventTime(req.OccurredAt))
		if err != nil {
			return sendProgressError(c, err)
		}

		return utils.SendSuccess(c, result, "Check-in recorded")
	}
}

// CompleteMission records a mission completion activity event.
func CompleteMission(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req missionCompleteRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "Invalid request body", nil)
		}
		if details := utils.ValidatePlayerID(req.PlayerID); details != nil {
			return utils.SendBadRequest(c, "Invalid player_id", details)
		}
		if details := utils.ValidateEntityID("mission_id", req.MissionID, true); details != nil {
			return utils.SendBadRequest(c, "Invalid mission_id", details)
		}
		if details := utils.ValidateEventTime(req.OccurredAt); details != nil {
			return utils.SendBadRequest(c, "Invalid occurred_at", details)
		}

		result, err := webApp.Progress.CompleteMission(c.Context(), req.PlayerID, req.MissionID, eventTime(req.OccurredAt))
		if err != nil {
			return sendProgressError(c, err)
		}

		return utils.SendSuccess(c, result, "Mission completion recorded")
	}
}

func eventTime(t *time.Time) time.Time {
	if t != nil {
		return t.UTC()
	}
	return time.Now().UTC()
}

// Rejections from the engine are surfaced with their structured
// reason; the client must be able to show why, not just a disabled
// button.
func sendProgressError(c *fiber.Ctx, err error) error {
	var cooldownErr *progression.CooldownError
	switch {
	case errors.As(err, &cooldownErr):
		return utils.SendConflict(c, "COOLDOWN_ACTIVE", "Another activity was recorded too recently.", map[string]string{
			"retry_after": cooldownErr.RetryAfter.Round(time.Second).String(),
		})
	case errors.Is(err, progression.ErrStaleEvent):
		return utils.SendError(c, fiber.StatusUnprocessableEntity, "STALE_EVENT",
			"The event is older than the last recorded activity.", nil)
	case errors.Is(err, database.ErrUnavailable):
		return utils.SendUnavailable(c, "Could not record the activity, please retry.")
	default:
		return utils.SendInternalServerError(c, "Failed to record activity")
	}
}
