package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/hoopside/hoopside-backend/hoopside/database/models"
	"github.com/uptrace/bun"
)

var ErrCourtNotFound = errors.New("court not found")

type CourtRepository interface {
	GetByID(ctx context.Context, id string) (*models.Court, error)
	GetAll(ctx context.Context) ([]*models.Court, error)
	Create(ctx context.Context, court *models.Court) error
}

type courtRepository struct {
	db *bun.DB
}

func NewCourtRepository(db *bun.DB) CourtRepository {
	return &courtRepository{db: db}
}

func (r *courtRepository) GetByID(ctx context.Context, id string) (*models.Court, error) {
	court := new(models.Court)
	err := r.db.NewSelect().
		Model(court).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCourtNotFound
		}
		return nil, err
	}
	return court, nil
}

func (r *courtRepository) GetAll(ctx context.Context) ([]*models.Court, error) {
	var courts []*models.Court
	err := r.db.NewSelect().
		Model(&courts).
		Order("name ASC").
		Scan(ctx)
	return courts, err
}

func (r *courtRepository) Create(ctx context.Context, court *models.Court) error {
	_, err := r.db.NewInsert().Model(court).Exec(ctx)
	return err
}
