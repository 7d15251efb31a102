package progression

import (
	"github.com/hoopside/hoopside-backend/hoopside/database/models"
)

// ApplyActivity computes the ledger delta for one activity event. It
// performs no I/O and never mutates the input ledger; the caller is
// responsible for committing the delta atomically together with any
// badge and notification records.
//
// Rejections are typed: *CooldownError when the event lands inside the
// cooldown window, ErrStaleEvent when it predates the last accepted
// activity. A rejected event leaves the ledger untouched.
func ApplyActivity(ledger *models.PlayerLedger, event ActivityEvent, policy Policy) (*LedgerDelta, error) {
	if ledger.HasActivity() {
		if event.OccurredAt.Before(ledger.LastActivityAt) {
			return nil, ErrStaleEvent
		}
		if WithinCooldown(ledger.LastActivityAt, event.OccurredAt, policy.CooldownWindow) {
			retryAfter := policy.CooldownWindow - event.OccurredAt.Sub(ledger.LastActivityAt)
			return nil, &CooldownError{RetryAfter: retryAfter}
		}
	}

	newStreak := 1
	switch {
	case !ledger.HasActivity():
		newStreak = 1
	case ConsecutiveDay(ledger.LastActivityAt, event.OccurredAt):
		newStreak = ledger.Streak + 1
	case SameCalendarDay(ledger.LastActivityAt, event.OccurredAt):
		// Already counted today. The cooldown normally prevents this
		// branch, but a same-day event past the window must not
		// double-increment the streak.
		newStreak = ledger.Streak
	}

	newLongest := ledger.LongestStreak
	if newStreak > newLongest {
		newLongest = newStreak
	}

	newXP := ledger.XP + policy.XPPerEvent

	return &LedgerDelta{
		NewXP:               newXP,
		NewStreak:           newStreak,
		NewLongestStreak:    newLongest,
		NewTotalCompletions: ledger.TotalCompletions + 1,
		NewLevel:            LevelFor(newXP),
		NewRank:             RankFor(newXP),
		NewLastActivityAt:   event.OccurredAt,
	}, nil
}

// LedgerAfter returns a copy of the ledger with the delta applied,
// used by the badge gate to evaluate rules against the post-event
// state before anything is committed.
func LedgerAfter(ledger *models.PlayerLedger, delta *LedgerDelta) *models.PlayerLedger {
	after := *ledger
	after.XP = delta.NewXP
	after.Streak = delta.NewStreak
	after.LongestStreak = delta.NewLongestStreak
	after.TotalCompletions = delta.NewTotalCompletions
	after.LastActivityAt = delta.NewLastActivityAt
	return &after
}
