package progression

import "testing"

func TestRankFor(t *testing.T) {
	tests := []struct {
		name       string
		xp         int64
		wantTitle  string
		wantMinXP  int64
		wantNextXP int64
	}{
		{"zero xp", 0, "Benchwarmer", 0, 100},
		{"just below first threshold", 99, "Benchwarmer", 0, 100},
		{"exactly at threshold", 100, "Streetballer", 100, 250},
		{"mid table", 600, "Baller", 500, 1000},
		{"exactly at top", 5000, "Legend", 5000, 5000},
		{"beyond top saturates", 99999, "Legend", 5000, 5000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RankFor(tt.xp)
			if got.Title != tt.wantTitle {
				t.Errorf("RankFor(%d).Title = %q, want %q", tt.xp, got.Title, tt.wantTitle)
			}
			if got.MinXP != tt.wantMinXP {
				t.Errorf("RankFor(%d).MinXP = %d, want %d", tt.xp, got.MinXP, tt.wantMinXP)
			}
			if got.NextRankXP != tt.wantNextXP {
				t.Errorf("RankFor(%d).NextRankXP = %d, want %d", tt.xp, got.NextRankXP, tt.wantNextXP)
			}
		})
	}
}

func TestLevelFor(t *testing.T) {
	tests := []struct {
		xp   int64
		want int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{250, 3},
		{4999, 6},
		{5000, 7},
		{1000000, 7},
	}

	for _, tt := range tests {
		if got := LevelFor(tt.xp); got != tt.want {
			t.Errorf("LevelFor(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestRankTableOrdering(t *testing.T) {
	for i := 1; i < len(rankTable); i++ {
		if rankTable[i].MinXP <= rankTable[i-1].MinXP {
			t.Fatalf("rank table not strictly ascending at %q", rankTable[i].Title)
		}
	}
	if rankTable[0].MinXP != 0 {
		t.Fatalf("rank table must start at 0 XP, got %d", rankTable[0].MinXP)
	}
}
