package models

import (
	"time"

	"github.com/uptrace/bun"
)

// BadgeAward records a badge earned by a player. At most one row ever
// exists per (player_id, badge_name); the unique constraint backs the
// award gate's in-transaction idempotency check.
type BadgeAward struct {
	bun.BaseModel `bun:"table:badge_awards,alias:ba"`

	ID          int64     `bun:"id,pk,autoincrement" json:"-"`
	PlayerID    string    `bun:"player_id,notnull,unique:badge_awards_player_badge_key" json:"player_id"`
	BadgeName   string    `bun:"badge_name,notnull,unique:badge_awards_player_badge_key" json:"badge_name"`
	Description string    `bun:"description,notnull" json:"description"`
	Icon        string    `bun:"icon,notnull" json:"icon"`
	EarnedAt    time.Time `bun:"earned_at,notnull" json:"earned_at"`
}
