package progression

import (
	"testing"
	"time"

	"github.com/hoopside/hoopside-backend/hoopside/database/models"
)

func hasBadge(awards []models.BadgeAward, name string) bool {
	for _, a := range awards {
		if a.BadgeName == name {
			return true
		}
	}
	return false
}

func badgeNames(awards []models.BadgeAward) []string {
	names := make([]string, 0, len(awards))
	for _, a := range awards {
		names = append(names, a.BadgeName)
	}
	return names
}

func TestEvaluateBadges(t *testing.T) {
	earnedAt := date(2025, time.March, 10, 12, 0)

	tests := []struct {
		name    string
		after   models.PlayerLedger
		awarded map[string]struct{}
		want    []string
	}{
		{
			name:    "first completion earns Rookie only",
			after:   models.PlayerLedger{PlayerID: "p1", XP: 10, Streak: 1, TotalCompletions: 1},
			awarded: map[string]struct{}{},
			want:    []string{"Rookie"},
		},
		{
			name:    "crossing 100 xp with a week streak",
			after:   models.PlayerLedger{PlayerID: "p1", XP: 115, Streak: 7, TotalCompletions: 5},
			awarded: map[string]struct{}{"Rookie": {}},
			want:    []string{"100 Club", "Grind Week"},
		},
		{
			name:    "already awarded badges are not re-emitted",
			after:   models.PlayerLedger{PlayerID: "p1", XP: 140, Streak: 8, TotalCompletions: 6},
			awarded: map[string]struct{}{"Rookie": {}, "100 Club": {}, "Grind Week": {}},
			want:    nil,
		},
		{
			name:    "high totals earn the count badges",
			after:   models.PlayerLedger{PlayerID: "p1", XP: 2500, Streak: 30, TotalCompletions: 100},
			awarded: map[string]struct{}{"Rookie": {}, "100 Club": {}, "Grind Week": {}, "Regular": {}},
			want:    []string{"Iron Month", "Gym Rat", "Thousand Club"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateBadges(&tt.after, tt.awarded, earnedAt)
			if len(got) != len(tt.want) {
				t.Fatalf("EvaluateBadges() = %v, want %v", badgeNames(got), tt.want)
			}
			for _, name := range tt.want {
				if !hasBadge(got, name) {
					t.Errorf("missing badge %q in %v", name, badgeNames(got))
				}
			}
			for _, a := range got {
				if a.PlayerID != tt.after.PlayerID {
					t.Errorf("award %q has player %q, want %q", a.BadgeName, a.PlayerID, tt.after.PlayerID)
				}
				if !a.EarnedAt.Equal(earnedAt) {
					t.Errorf("award %q EarnedAt = %v, want %v", a.BadgeName, a.EarnedAt, earnedAt)
				}
			}
		})
	}
}

// Repeatedly re-evaluating a qualifying condition must never produce
// a duplicate once the name is in the awarded set.
func TestEvaluateBadges_Idempotent(t *testing.T) {
	after := &models.PlayerLedger{PlayerID: "p1", XP: 150, Streak: 2, TotalCompletions: 9}
	awarded := map[string]struct{}{}

	first := EvaluateBadges(after, awarded, time.Now())
	if !hasBadge(first, "100 Club") {
		t.Fatalf("expected 100 Club on first evaluation, got %v", badgeNames(first))
	}
	for _, a := range first {
		awarded[a.BadgeName] = struct{}{}
	}

	for i := 0; i < 5; i++ {
		after.XP += 25
		after.TotalCompletions++
		again := EvaluateBadges(after, awarded, time.Now())
		if hasBadge(again, "100 Club") {
			t.Fatalf("100 Club re-awarded on evaluation %d", i)
		}
		for _, a := range again {
			awarded[a.BadgeName] = struct{}{}
		}
	}
}
