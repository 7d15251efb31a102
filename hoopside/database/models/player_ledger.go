package models

import (
	"time"

	"github.com/uptrace/bun"
)

// PlayerLedger is the durable per-player record of XP, streak and
// completion counts. It is only ever mutated through the progression
// service's transactional commit; an absent row is treated as the
// zero-value ledger for that player.
type PlayerLedger struct {
	bun.BaseModel `bun:"table:player_ledgers,alias:pl"`

	ID       int64  `bun:"id,pk,autoincrement" json:"-"`
	PlayerID string `bun:"player_id,notnull,unique" json:"player_id"`

	XP               int64     `bun:"xp,notnull,default:0" json:"xp"`
	Streak           int       `bun:"streak,notnull,default:0" json:"streak"`
	LongestStreak    int       `bun:"longest_streak,notnull,default:0" json:"longest_streak"`
	TotalCompletions int64     `bun:"total_completions,notnull,default:0" json:"total_completions"`
	LastActivityAt   time.Time `bun:"last_activity_at,nullzero" json:"last_activity_at"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp" json:"-"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp" json:"-"`
}

// HasActivity reports whether the player has ever had an accepted
// activity event. A zero LastActivityAt means a brand-new ledger.
func (l *PlayerLedger) HasActivity() bool {
	return !l.LastActivityAt.IsZero()
}
