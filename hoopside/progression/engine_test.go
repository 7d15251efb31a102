package progression

import (
	"errors"
	"testing"
	"time"

	"github.com/hoopside/hoopside-backend/hoopside/database/models"
)

var (
	checkInPolicy = Policy{XPPerEvent: 25, CooldownWindow: 2 * time.Hour}
	missionPolicy = Policy{XPPerEvent: 10, CooldownWindow: 2 * time.Hour}
)

func TestApplyActivity_FirstEvent(t *testing.T) {
	ledger := &models.PlayerLedger{PlayerID: "p1"}
	event := ActivityEvent{
		PlayerID:   "p1",
		Kind:       ActivityMissionComplete,
		OccurredAt: date(2025, time.March, 10, 12, 0),
	}

	delta, err := ApplyActivity(ledger, event, missionPolicy)
	if err != nil {
		t.Fatalf("ApplyActivity() error = %v", err)
	}
	if delta.NewXP != 10 {
		t.Errorf("NewXP = %d, want 10", delta.NewXP)
	}
	if delta.NewStreak != 1 {
		t.Errorf("NewStreak = %d, want 1", delta.NewStreak)
	}
	if delta.NewTotalCompletions != 1 {
		t.Errorf("NewTotalCompletions = %d, want 1", delta.NewTotalCompletions)
	}
	if !delta.NewLastActivityAt.Equal(event.OccurredAt) {
		t.Errorf("NewLastActivityAt = %v, want %v", delta.NewLastActivityAt, event.OccurredAt)
	}
}

func TestApplyActivity_StreakRules(t *testing.T) {
	monday := date(2025, time.March, 10, 12, 0)

	tests := []struct {
		name       string
		ledger     models.PlayerLedger
		occurredAt time.Time
		wantStreak int
	}{
		{
			name:       "next day extends streak",
			ledger:     models.PlayerLedger{PlayerID: "p1", Streak: 3, LastActivityAt: monday},
			occurredAt: monday.AddDate(0, 0, 1),
			wantStreak: 4,
		},
		{
			name:       "three day gap resets",
			ledger:     models.PlayerLedger{PlayerID: "p1", Streak: 3, LastActivityAt: monday},
			occurredAt: monday.AddDate(0, 0, 3),
			wantStreak: 1,
		},
		{
			name:       "five day gap resets regardless of length",
			ledger:     models.PlayerLedger{PlayerID: "p1", Streak: 42, LastActivityAt: monday},
			occurredAt: monday.AddDate(0, 0, 5),
			wantStreak: 1,
		},
		{
			name:       "same day past cooldown leaves streak unchanged",
			ledger:     models.PlayerLedger{PlayerID: "p1", Streak: 6, LastActivityAt: monday},
			occurredAt: monday.Add(3 * time.Hour),
			wantStreak: 6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := ActivityEvent{PlayerID: "p1", Kind: ActivityCheckIn, OccurredAt: tt.occurredAt}
			delta, err := ApplyActivity(&tt.ledger, event, checkInPolicy)
			if err != nil {
				t.Fatalf("ApplyActivity() error = %v", err)
			}
			if delta.NewStreak != tt.wantStreak {
				t.Errorf("NewStreak = %d, want %d", delta.NewStreak, tt.wantStreak)
			}
		})
	}
}

func TestApplyActivity_CooldownRejection(t *testing.T) {
	monday := date(2025, time.March, 10, 12, 0)
	ledger := &models.PlayerLedger{
		PlayerID:         "p1",
		XP:               90,
		Streak:           6,
		TotalCompletions: 4,
		LastActivityAt:   monday,
	}
	event := ActivityEvent{PlayerID: "p1", Kind: ActivityCheckIn, OccurredAt: monday.Add(time.Hour)}

	_, err := ApplyActivity(ledger, event, checkInPolicy)

	var cooldownErr *CooldownError
	if !errors.As(err, &cooldownErr) {
		t.Fatalf("ApplyActivity() error = %v, want *CooldownError", err)
	}
	if cooldownErr.RetryAfter != time.Hour {
		t.Errorf("RetryAfter = %v, want %v", cooldownErr.RetryAfter, time.Hour)
	}

	// Rejection must leave the input untouched.
	if ledger.XP != 90 || ledger.Streak != 6 || ledger.TotalCompletions != 4 {
		t.Errorf("ledger mutated on rejection: %+v", ledger)
	}
}

func TestApplyActivity_StaleEvent(t *testing.T) {
	monday := date(2025, time.March, 10, 12, 0)
	ledger := &models.PlayerLedger{PlayerID: "p1", XP: 50, Streak: 2, LastActivityAt: monday}
	event := ActivityEvent{PlayerID: "p1", Kind: ActivityCheckIn, OccurredAt: monday.Add(-time.Hour)}

	_, err := ApplyActivity(ledger, event, checkInPolicy)
	if !errors.Is(err, ErrStaleEvent) {
		t.Fatalf("ApplyActivity() error = %v, want ErrStaleEvent", err)
	}
}

func TestApplyActivity_Monotonicity(t *testing.T) {
	ledger := &models.PlayerLedger{PlayerID: "p1"}
	at := date(2025, time.March, 1, 9, 0)

	var lastXP, lastCompletions int64
	for i := 0; i < 30; i++ {
		event := ActivityEvent{PlayerID: "p1", Kind: ActivityCheckIn, OccurredAt: at}
		delta, err := ApplyActivity(ledger, event, checkInPolicy)
		if err != nil {
			t.Fatalf("event %d: ApplyActivity() error = %v", i, err)
		}
		if delta.NewXP < lastXP {
			t.Fatalf("event %d: xp decreased %d -> %d", i, lastXP, delta.NewXP)
		}
		if delta.NewTotalCompletions < lastCompletions {
			t.Fatalf("event %d: completions decreased %d -> %d", i, lastCompletions, delta.NewTotalCompletions)
		}
		lastXP = delta.NewXP
		lastCompletions = delta.NewTotalCompletions
		ledger = LedgerAfter(ledger, delta)
		at = at.AddDate(0, 0, 1)
	}

	if ledger.Streak != 30 {
		t.Errorf("streak after 30 consecutive days = %d, want 30", ledger.Streak)
	}
}

// Scenario: a player one event short of 100 XP and a 7 day streak
// checks in on the following day.
func TestApplyActivity_ThresholdCrossing(t *testing.T) {
	monday := date(2025, time.March, 10, 12, 0)
	ledger := &models.PlayerLedger{
		PlayerID:         "p1",
		XP:               90,
		Streak:           6,
		TotalCompletions: 4,
		LastActivityAt:   monday,
	}
	event := ActivityEvent{PlayerID: "p1", Kind: ActivityCheckIn, OccurredAt: monday.AddDate(0, 0, 1)}

	delta, err := ApplyActivity(ledger, event, checkInPolicy)
	if err != nil {
		t.Fatalf("ApplyActivity() error = %v", err)
	}
	if delta.NewXP != 115 {
		t.Errorf("NewXP = %d, want 115", delta.NewXP)
	}
	if delta.NewStreak != 7 {
		t.Errorf("NewStreak = %d, want 7", delta.NewStreak)
	}
	if delta.NewTotalCompletions != 5 {
		t.Errorf("NewTotalCompletions = %d, want 5", delta.NewTotalCompletions)
	}

	after := LedgerAfter(ledger, delta)
	awards := EvaluateBadges(after, map[string]struct{}{"Rookie": {}}, event.OccurredAt)
	if !hasBadge(awards, "100 Club") {
		t.Errorf("expected 100 Club in %v", badgeNames(awards))
	}
	if !hasBadge(awards, "Grind Week") {
		t.Errorf("expected Grind Week in %v", badgeNames(awards))
	}
}

func TestLedgerAfter_DoesNotMutateInput(t *testing.T) {
	monday := date(2025, time.March, 10, 12, 0)
	ledger := &models.PlayerLedger{PlayerID: "p1", XP: 10, Streak: 1, TotalCompletions: 1, LastActivityAt: monday}

	delta := &LedgerDelta{
		NewXP:               35,
		NewStreak:           2,
		NewLongestStreak:    2,
		NewTotalCompletions: 2,
		NewLastActivityAt:   monday.AddDate(0, 0, 1),
	}
	after := LedgerAfter(ledger, delta)

	if ledger.XP != 10 || ledger.Streak != 1 {
		t.Errorf("input ledger mutated: %+v", ledger)
	}
	if after.XP != 35 || after.Streak != 2 {
		t.Errorf("after ledger wrong: %+v", after)
	}
}
