package services

import (
	"context"
	"strings"

	"github.com/hoopside/hoopside-backend/hoopside/database/models"
	"github.com/hoopside/hoopside-backend/hoopside/database/repositories"
	"github.com/sahilm/fuzzy"
)

// courtSearchItems implements fuzzy.Source over the court directory.
type courtSearchItems []*models.Court

func (items courtSearchItems) Len() int {
	return len(items)
}

func (items courtSearchItems) String(i int) string {
	return items[i].Name + " " + items[i].City
}

// CourtService resolves the check-in targets players search for.
type CourtService struct {
	courts repositories.CourtRepository
}

func NewCourtService(courts repositories.CourtRepository) *CourtService {
	return &CourtService{courts: courts}
}

func (s *CourtService) GetByID(ctx context.Context, id string) (*models.Court, error) {
	return s.courts.GetByID(ctx, id)
}

// Search fuzzy-matches courts by name and city. An empty query
// returns the full directory.
func (s *CourtService) Search(ctx context.Context, query string, limit int) ([]*models.Court, error) {
	courts, err := s.courts.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.TrimSpace(query)
	if query == "" {
		if len(courts) > limit {
			courts = courts[:limit]
		}
		return courts, nil
	}

	matches := fuzzy.FindFrom(query, courtSearchItems(courts))

	results := make([]*models.Court, 0, len(matches))
	for _, m := range matches {
		results = append(results, courts[m.Index])
		if len(results) >= limit {
			break
		}
	}
	return results, nil
}
