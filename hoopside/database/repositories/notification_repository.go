package repositories

import (
	"context"

	"github.com/hoopside/hoopside-backend/hoopside/database/models"
	"github.com/uptrace/bun"
)

type NotificationRepository interface {
	InsertTx(ctx context.Context, tx bun.Tx, notification *models.Notification) error
	GetByPlayerID(ctx context.Context, playerID string, limit int) ([]*models.Notification, error)
	MarkRead(ctx context.Context, playerID string, id int64) error
}

type notificationRepository struct {
	db *bun.DB
}

func NewNotificationRepository(db *bun.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) InsertTx(ctx context.Context, tx bun.Tx, notification *models.Notification) error {
	_, err := tx.NewInsert().Model(notification).Exec(ctx)
	return err
}

func (r *notificationRepository) GetByPlayerID(ctx context.Context, playerID string, limit int) ([]*models.Notification, error) {
	var notifications []*models.Notification
	err := r.db.NewSelect().
		Model(&notifications).
		Where("player_id = ?", playerID).
		Order("created_at DESC").
		Limit(limit).
		Scan(ctx)
	return notifications, err
}

func (r *notificationRepository) MarkRead(ctx context.Context, playerID string, id int64) error {
	_, err := r.db.NewUpdate().
		Model((*models.Notification)(nil)).
		Set("read = true").
		Where("id = ? AND player_id = ?", id, playerID).
		Exec(ctx)
	return err
}
