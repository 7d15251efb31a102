package handlers

import (
	"github.com/hoopside/hoopside-backend/hoopside"
	"github.com/hoopside/hoopside-backend/hoopside/database"
	"github.com/hoopside/hoopside-backend/hoopside/database/repositories"
	"github.com/hoopside/hoopside-backend/hoopside/services"
)

// WebApp carries the wired dependencies for every handler. Handlers
// never reach for globals; everything they touch comes through here.
type WebApp struct {
	Config        *hoopside.Config
	DB            *database.DB
	Progress      *services.ProgressService
	Leaderboard   *services.LeaderboardService
	Courts        *services.CourtService
	Badges        repositories.BadgeRepository
	Notifications repositories.NotificationRepository
	Version       string
	Commit        string
}
