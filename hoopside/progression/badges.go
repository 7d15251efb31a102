package progression

import (
	"time"

	"github.com/hoopside/hoopside-backend/hoopside/database/models"
)

// BadgeRule is one entry of the badge catalog: a threshold predicate
// over ledger state. Rules are data; adding a badge means adding a row
// here, not touching the engine.
type BadgeRule struct {
	Name        string
	Description string
	Icon        string
	Qualifies   func(l *models.PlayerLedger) bool
}

var BadgeCatalog = []BadgeRule{
	{
		Name:        "Rookie",
		Description: "Completed your first activity",
		Icon:        "rookie.png",
		Qualifies:   func(l *models.PlayerLedger) bool { return l.TotalCompletions == 1 },
	},
	{
		Name:        "100 Club",
		Description: "Reached 100 XP",
		Icon:        "100club.png",
		Qualifies:   func(l *models.PlayerLedger) bool { return l.XP >= 100 },
	},
	{
		Name:        "Grind Week",
		Description: "Kept a 7 day streak alive",
		Icon:        "grindweek.png",
		Qualifies:   func(l *models.PlayerLedger) bool { return l.Streak >= 7 },
	},
	{
		Name:        "Regular",
		Description: "Completed 25 activities",
		Icon:        "regular.png",
		Qualifies:   func(l *models.PlayerLedger) bool { return l.TotalCompletions >= 25 },
	},
	{
		Name:        "Iron Month",
		Description: "Kept a 30 day streak alive",
		Icon:        "ironmonth.png",
		Qualifies:   func(l *models.PlayerLedger) bool { return l.Streak >= 30 },
	},
	{
		Name:        "Gym Rat",
		Description: "Completed 100 activities",
		Icon:        "gymrat.png",
		Qualifies:   func(l *models.PlayerLedger) bool { return l.TotalCompletions >= 100 },
	},
	{
		Name:        "Thousand Club",
		Description: "Reached 1000 XP",
		Icon:        "thousandclub.png",
		Qualifies:   func(l *models.PlayerLedger) bool { return l.XP >= 1000 },
	},
}

// EvaluateBadges returns award candidates for every catalog rule that
// is satisfied by the post-event ledger and not yet in the awarded
// set. It performs no I/O; the store re-checks the awarded set inside
// the same transaction that commits the ledger delta, so concurrent
// evaluations cannot produce duplicates.
func EvaluateBadges(after *models.PlayerLedger, awarded map[string]struct{}, earnedAt time.Time) []models.BadgeAward {
	var candidates []models.BadgeAward
	for _, rule := range BadgeCatalog {
		if _, ok := awarded[rule.Name]; ok {
			continue
		}
		if !rule.Qualifies(after) {
			continue
		}
		candidates = append(candidates, models.BadgeAward{
			PlayerID:    after.PlayerID,
			BadgeName:   rule.Name,
			Description: rule.Description,
			Icon:        rule.Icon,
			EarnedAt:    earnedAt,
		})
	}
	return candidates
}
