package progression

import (
	"errors"
	"fmt"
	"time"
)

type ActivityKind string

const (
	ActivityCheckIn         ActivityKind = "checkin"
	ActivityMissionComplete ActivityKind = "mission_complete"
)

// ActivityEvent is a discrete occurrence that may advance a player's
// ledger. It is consumed once and never persisted as its own entity.
type ActivityEvent struct {
	PlayerID   string
	Kind       ActivityKind
	OccurredAt time.Time
}

// Policy carries the reward amount and cooldown window for one
// activity kind. Call sites must never hardcode these.
type Policy struct {
	XPPerEvent     int64
	CooldownWindow time.Duration
}

// LedgerDelta is the engine's proposed new ledger state. Nothing is
// mutated until the store commits it atomically.
type LedgerDelta struct {
	NewXP               int64
	NewStreak           int
	NewLongestStreak    int
	NewTotalCompletions int64
	NewLevel            int
	NewRank             Rank
	NewLastActivityAt   time.Time
}

// ErrStaleEvent rejects out-of-order events: the event timestamp is
// earlier than the ledger's last accepted activity.
var ErrStaleEvent = errors.New("activity event is older than the last recorded activity")

// CooldownError rejects a repeat activity inside the cooldown window.
type CooldownError struct {
	RetryAfter time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("cooldown active, retry in %s", e.RetryAfter.Round(time.Second))
}
