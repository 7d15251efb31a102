package services

import (
	"context"
	"log/slog"

	"github.com/hoopside/hoopside-backend/hoopside/database/models"
)

// NotificationSink delivers a committed notification to the player's
// device. Delivery is best-effort; the caller has already persisted
// the record.
type NotificationSink interface {
	Deliver(ctx context.Context, notification *models.Notification) error
}

// LogSink is the default sink: it only logs. The mobile push gateway
// plugs in behind the same interface.
type LogSink struct{}

func NewLogSink() *LogSink {
	return &LogSink{}
}

func (s *LogSink) Deliver(_ context.Context, n *models.Notification) error {
	slog.Debug("Notification delivered",
		slog.String("type", "sys"),
		slog.String("player_id", n.PlayerID),
		slog.String("notification_type", string(n.Type)),
		slog.String("title", n.Title))
	return nil
}
