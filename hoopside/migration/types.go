package migration

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LegacyPlayer is the player document shape exported by the original app.
type LegacyPlayer struct {
	ID            primitive.ObjectID `bson:"_id"`
	UserID        string             `bson:"userid"`
	XP            float64            `bson:"xp"`
	Streak        float64            `bson:"streak"`
	LongestStreak float64            `bson:"longeststreak,omitempty"`
	CheckIns      float64            `bson:"checkins"`
	LastCheckIn   time.Time          `bson:"lastcheckin,omitempty"`
	Created       time.Time          `bson:"created,omitempty"`
}

// LegacyBadge is one earned badge per document.
type LegacyBadge struct {
	ID     primitive.ObjectID `bson:"_id"`
	UserID string             `bson:"userid"`
	Name   string             `bson:"name"`
	Earned time.Time          `bson:"earned,omitempty"`
}

// LegacyCourt is a court entry from the original app's directory.
type LegacyCourt struct {
	ID      primitive.ObjectID `bson:"_id"`
	Name    string             `bson:"name"`
	City    string             `bson:"city"`
	Address string             `bson:"address,omitempty"`
	Lat     float64            `bson:"lat,omitempty"`
	Lng     float64            `bson:"lng,omitempty"`
}

// MigrationStats tracks migration progress and issues
type MigrationStats struct {
	Tables         map[string]*TableStats `json:"tables"`
	StartTime      time.Time              `json:"start_time"`
	EndTime        time.Time              `json:"end_time"`
	TotalErrors    int                    `json:"total_errors"`
	TotalSkipped   int                    `json:"total_skipped"`
	TotalProcessed int                    `json:"total_processed"`
}

// TableStats tracks stats for individual tables
type TableStats struct {
	TableName  string          `json:"table_name"`
	Processed  int             `json:"processed"`
	Successful int             `json:"successful"`
	Skipped    int             `json:"skipped"`
	Errors     int             `json:"errors"`
	Skips      []SkippedRecord `json:"skipped_records,omitempty"`
}

// SkippedRecord tracks why a record was skipped
type SkippedRecord struct {
	Reason string `json:"reason"`
	ID     string `json:"id"`
}
