package progression

// Rank is a human-readable tier derived from XP. The table below is
// static configuration data ordered ascending by MinXP; lookups are
// saturating at both ends.
type Rank struct {
	Title      string `json:"title"`
	MinXP      int64  `json:"min_xp"`
	NextRankXP int64  `json:"next_rank_xp"`
}

var rankTable = []struct {
	Title string
	MinXP int64
}{
	{"Benchwarmer", 0},
	{"Streetballer", 100},
	{"Playmaker", 250},
	{"Baller", 500},
	{"All-Star", 1000},
	{"MVP", 2500},
	{"Legend", 5000},
}

// RankFor returns the highest rank whose threshold does not exceed xp.
// NextRankXP equals the following entry's threshold, or the current
// one when already at the top.
func RankFor(xp int64) Rank {
	idx := 0
	for i, r := range rankTable {
		if xp >= r.MinXP {
			idx = i
		}
	}

	rank := Rank{
		Title: rankTable[idx].Title,
		MinXP: rankTable[idx].MinXP,
	}
	if idx+1 < len(rankTable) {
		rank.NextRankXP = rankTable[idx+1].MinXP
	} else {
		rank.NextRankXP = rank.MinXP
	}
	return rank
}

// LevelFor is the numeric alias of the rank: the 1-based index of the
// player's rank in the table.
func LevelFor(xp int64) int {
	level := 1
	for i, r := range rankTable {
		if xp >= r.MinXP {
			level = i + 1
		}
	}
	return level
}
