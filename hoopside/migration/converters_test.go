package migration

import (
	"testing"
	"time"
)

func TestConvertPlayer(t *testing.T) {
	lastCheckIn := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		in     LegacyPlayer
		wantOK bool
	}{
		{
			name: "full record",
			in: LegacyPlayer{
				UserID:        "player-42",
				XP:            340,
				Streak:        5,
				LongestStreak: 12,
				CheckIns:      28,
				LastCheckIn:   lastCheckIn,
			},
			wantOK: true,
		},
		{
			name:   "blank user id skipped",
			in:     LegacyPlayer{UserID: "   ", XP: 10},
			wantOK: false,
		},
		{
			name:   "negative xp clamped",
			in:     LegacyPlayer{UserID: "p1", XP: -30},
			wantOK: true,
		},
		{
			name:   "missing longest streak backfilled from streak",
			in:     LegacyPlayer{UserID: "p2", Streak: 9},
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := convertPlayer(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("convertPlayer() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got.XP < 0 {
				t.Errorf("XP = %d, want clamped at 0", got.XP)
			}
			if got.LongestStreak < got.Streak {
				t.Errorf("LongestStreak = %d < Streak = %d", got.LongestStreak, got.Streak)
			}
			if got.CreatedAt.IsZero() {
				t.Errorf("CreatedAt must be backfilled")
			}
		})
	}
}

func TestConvertBadge(t *testing.T) {
	got, ok := convertBadge(LegacyBadge{UserID: "p1", Name: "100 Club"})
	if !ok {
		t.Fatal("convertBadge() ok = false, want true")
	}
	if got.Description == "" || got.Icon == "" {
		t.Errorf("catalog badge should backfill description and icon, got %+v", got)
	}
	if got.EarnedAt.IsZero() {
		t.Errorf("EarnedAt must be backfilled when missing")
	}

	if _, ok := convertBadge(LegacyBadge{UserID: "p1", Name: "  "}); ok {
		t.Error("blank badge name must be skipped")
	}
	if _, ok := convertBadge(LegacyBadge{UserID: "", Name: "Rookie"}); ok {
		t.Error("blank user id must be skipped")
	}
}

func TestCleanseString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Rucker Park  ", "Rucker Park"},
		{"Venice\x00Beach", "VeniceBeach"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		if got := cleanseString(tt.in); got != tt.want {
			t.Errorf("cleanseString(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
