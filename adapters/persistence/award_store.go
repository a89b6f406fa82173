package persistence

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/predusk/profile-api/internal/domain"
	"github.com/predusk/profile-api/pkg/logger"
)

var awardColumns = []string{"id", "profile_id", "title", "issuer", "date", "description"}

func scanAward(row pgx.Row) (*domain.Award, error) {
	a := &domain.Award{}
	if err := row.Scan(&a.ID, &a.ProfileID, &a.Title, &a.Issuer, &a.Date, &a.Description); err != nil {
		return nil, err
	}
	return a, nil
}

func NewAwardStore(pool *pgxpool.Pool, log logger.Logger) *Store[domain.Award] {
	return NewStore(pool, "awards", awardColumns, scanAward, log)
}
