package models

import (
	"time"

	"github.com/uptrace/bun"
)

type NotificationType string

const (
	NotificationCheckIn  NotificationType = "checkin"
	NotificationMission  NotificationType = "mission"
	NotificationBadge    NotificationType = "badge"
	NotificationAdmin    NotificationType = "admin"
)

// Notification is the per-player inbox record written atomically with
// the ledger commit. External delivery (push) happens after commit and
// is fire-and-forget.
type Notification struct {
	bun.BaseModel `bun:"table:notifications,alias:n"`

	ID        int64            `bun:"id,pk" json:"id"`
	PlayerID  string           `bun:"player_id,notnull" json:"player_id"`
	Type      NotificationType `bun:"type,notnull" json:"type"`
	Title     string           `bun:"title,notnull" json:"title"`
	Body      string           `bun:"body,notnull" json:"body"`
	Read      bool             `bun:"read,notnull,default:false" json:"read"`
	CreatedAt time.Time        `bun:"created_at,notnull" json:"created_at"`
}
