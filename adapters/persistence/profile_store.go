package persistence

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/predusk/profile-api/internal/domain"
	"github.com/predusk/profile-api/pkg/logger"
)

var profileColumns = []string{"id", "name", "title", "location", "summary", "skills"}

func scanProfile(row pgx.Row) (*domain.Profile, error) {
	p := &domain.Profile{}
	if err := row.Scan(&p.ID, &p.Name, &p.Title, &p.Location, &p.Summary, &p.Skills); err != nil {
		return nil, err
	}
	return p, nil
}

func NewProfileStore(pool *pgxpool.Pool, log logger.Logger) *Store[domain.Profile] {
	return NewStore(pool, "profile", profileColumns, scanProfile, log)
}
