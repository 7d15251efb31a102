package repositories

import (
	"context"

	"github.com/hoopside/hoopside-backend/hoopside/database/models"
	"github.com/uptrace/bun"
)

type BadgeRepository interface {
	// GetAwardedNamesTx reads the player's awarded badge names inside
	// the commit transaction, closing the check-then-act race between
	// concurrent activity submissions.
	GetAwardedNamesTx(ctx context.Context, tx bun.Tx, playerID string) (map[string]struct{}, error)
	InsertTx(ctx context.Context, tx bun.Tx, awards []models.BadgeAward) error
	GetByPlayerID(ctx context.Context, playerID string) ([]*models.BadgeAward, error)
}

type badgeRepository struct {
	db *bun.DB
}

func NewBadgeRepository(db *bun.DB) BadgeRepository {
	return &badgeRepository{db: db}
}

func (r *badgeRepository) GetAwardedNamesTx(ctx context.Context, tx bun.Tx, playerID string) (map[string]struct{}, error) {
	var names []string
	err := tx.NewSelect().
		Model((*models.BadgeAward)(nil)).
		Column("badge_name").
		Where("player_id = ?", playerID).
		Scan(ctx, &names)
	if err != nil {
		return nil, err
	}

	awarded := make(map[string]struct{}, len(names))
	for _, name := range names {
		awarded[name] = struct{}{}
	}
	return awarded, nil
}

func (r *badgeRepository) InsertTx(ctx context.Context, tx bun.Tx, awards []models.BadgeAward) error {
	if len(awards) == 0 {
		return nil
	}
	_, err := tx.NewInsert().
		Model(&awards).
		Exec(ctx)
	return err
}

func (r *badgeRepository) GetByPlayerID(ctx context.Context, playerID string) ([]*models.BadgeAward, error) {
	var awards []*models.BadgeAward
	err := r.db.NewSelect().
		Model(&awards).
		Where("player_id = ?", playerID).
		Order("earned_at ASC").
		Scan(ctx)
	return awards, err
}
