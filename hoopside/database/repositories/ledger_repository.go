package repositories

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/hoopside/hoopside-backend/hoopside/database/models"
	"github.com/uptrace/bun"
)

var ErrLedgerNotFound = errors.New("player ledger not found")

type LedgerRepository interface {
	GetByPlayerID(ctx context.Context, playerID string) (*models.PlayerLedger, error)
	// GetForUpdateTx reads the ledger row with a row lock, serializing
	// concurrent progression commits for the same player. A missing row
	// returns ErrLedgerNotFound; callers bootstrap a zero-value ledger.
	GetForUpdateTx(ctx context.Context, tx bun.Tx, playerID string) (*models.PlayerLedger, error)
	CreateTx(ctx context.Context, tx bun.Tx, ledger *models.PlayerLedger) error
	UpdateStatsTx(ctx context.Context, tx bun.Tx, ledger *models.PlayerLedger) error
	GetTop(ctx context.Context, limit int) ([]*models.PlayerLedger, error)
	AdjustXP(ctx context.Context, tx bun.Tx, playerID string, delta int64) (*models.PlayerLedger, error)
}

type ledgerRepository struct {
	db *bun.DB
}

func NewLedgerRepository(db *bun.DB) LedgerRepository {
	return &ledgerRepository{db: db}
}

func (r *ledgerRepository) GetByPlayerID(ctx context.Context, playerID string) (*models.PlayerLedger, error) {
	ledger := new(models.PlayerLedger)
	err := r.db.NewSelect().
		Model(ledger).
		Where("player_id = ?", playerID).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrLedgerNotFound
		}
		slog.Error("Database error when getting ledger",
			slog.String("type", "db"),
			slog.String("operation", "GetByPlayerID"),
			slog.String("player_id", playerID),
			slog.String("error", err.Error()))
		return nil, err
	}

	return ledger, nil
}

func (r *ledgerRepository) GetForUpdateTx(ctx context.Context, tx bun.Tx, playerID string) (*models.PlayerLedger, error) {
	ledger := new(models.PlayerLedger)
	err := tx.NewSelect().
		Model(ledger).
		Where("player_id = ?", playerID).
		For("UPDATE").
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrLedgerNotFound
		}
		return nil, err
	}

	return ledger, nil
}

func (r *ledgerRepository) CreateTx(ctx context.Context, tx bun.Tx, ledger *models.PlayerLedger) error {
	ledger.CreatedAt = time.Now()
	ledger.UpdatedAt = time.Now()
	_, err := tx.NewInsert().Model(ledger).Exec(ctx)
	return err
}

func (r *ledgerRepository) UpdateStatsTx(ctx context.Context, tx bun.Tx, ledger *models.PlayerLedger) error {
	_, err := tx.NewUpdate().
		Model((*models.PlayerLedger)(nil)).
		Set("xp = ?", ledger.XP).
		Set("streak = ?", ledger.Streak).
		Set("longest_streak = ?", ledger.LongestStreak).
		Set("total_completions = ?", ledger.TotalCompletions).
		Set("last_activity_at = ?", ledger.LastActivityAt).
		Set("updated_at = ?", time.Now()).
		Where("player_id = ?", ledger.PlayerID).
		Exec(ctx)
	return err
}

func (r *ledgerRepository) GetTop(ctx context.Context, limit int) ([]*models.PlayerLedger, error) {
	var ledgers []*models.PlayerLedger
	err := r.db.NewSelect().
		Model(&ledgers).
		OrderExpr("xp DESC").
		Limit(limit).
		Scan(ctx)
	return ledgers, err
}

// AdjustXP applies an explicit admin correction, the only path where
// XP may decrease. The result is clamped at zero.
func (r *ledgerRepository) AdjustXP(ctx context.Context, tx bun.Tx, playerID string, delta int64) (*models.PlayerLedger, error) {
	ledger, err := r.GetForUpdateTx(ctx, tx, playerID)
	if err != nil {
		return nil, err
	}

	ledger.XP += delta
	if ledger.XP < 0 {
		ledger.XP = 0
	}

	_, err = tx.NewUpdate().
		Model((*models.PlayerLedger)(nil)).
		Set("xp = ?", ledger.XP).
		Set("updated_at = ?", time.Now()).
		Where("player_id = ?", playerID).
		Exec(ctx)
	if err != nil {
		return nil, err
	}

	return ledger, nil
}
