package migration

import (
	"strings"
	"time"

	"github.com/hoopside/hoopside-backend/hoopside/database/models"
	"github.com/hoopside/hoopside-backend/hoopside/progression"
)

func convertPlayer(lp LegacyPlayer) (*models.PlayerLedger, bool) {
	playerID := cleanseString(lp.UserID)
	if playerID == "" {
		return nil, false
	}

	streak := int(lp.Streak)
	longest := int(lp.LongestStreak)
	if longest < streak {
		// Older exports predate longest-streak tracking.
		longest = streak
	}

	ledger := &models.PlayerLedger{
		PlayerID:         playerID,
		XP:               int64(lp.XP),
		Streak:           streak,
		LongestStreak:    longest,
		TotalCompletions: int64(lp.CheckIns),
		LastActivityAt:   lp.LastCheckIn.UTC(),
		CreatedAt:        lp.Created.UTC(),
		UpdatedAt:        time.Now().UTC(),
	}
	if ledger.XP < 0 {
		ledger.XP = 0
	}
	if ledger.CreatedAt.IsZero() {
		ledger.CreatedAt = time.Now().UTC()
	}
	return ledger, true
}

func convertBadge(lb LegacyBadge) (*models.BadgeAward, bool) {
	playerID := cleanseString(lb.UserID)
	name := cleanseString(lb.Name)
	if playerID == "" || name == "" {
		return nil, false
	}

	earned := lb.Earned.UTC()
	if earned.IsZero() {
		earned = time.Now().UTC()
	}

	award := &models.BadgeAward{
		PlayerID:  playerID,
		BadgeName: name,
		EarnedAt:  earned,
	}
	// Backfill description and icon from the current catalog; legacy
	// exports only store the badge name.
	for _, rule := range progression.BadgeCatalog {
		if rule.Name == name {
			award.Description = rule.Description
			award.Icon = rule.Icon
			break
		}
	}
	return award, true
}

func convertCourt(lc LegacyCourt) (*models.Court, bool) {
	name := cleanseString(lc.Name)
	if name == "" {
		return nil, false
	}
	return &models.Court{
		ID:        lc.ID.Hex(),
		Name:      name,
		City:      cleanseString(lc.City),
		Address:   cleanseString(lc.Address),
		Latitude:  lc.Lat,
		Longitude: lc.Lng,
	}, true
}

// cleanseString strips control characters and stray null bytes that show up
// in old exports.
func cleanseString(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 || r == 127 {
			return -1
		}
		return r
	}, s)
}
