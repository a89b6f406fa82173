package persistence

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/predusk/profile-api/internal/domain"
	"github.com/predusk/profile-api/pkg/logger"
)

var experienceColumns = []string{
	"id", "profile_id", "company", "role", "start_date", "end_date",
	"location", "description", "currently", "skills",
}

func scanExperience(row pgx.Row) (*domain.Experience, error) {
	e := &domain.Experience{}
	err := row.Scan(
		&e.ID, &e.ProfileID, &e.Company, &e.Role, &e.StartDate, &e.EndDate,
		&e.Location, &e.Description, &e.Currently, &e.Skills,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func NewExperienceStore(pool *pgxpool.Pool, log logger.Logger) *Store[domain.Experience] {
	return NewStore(pool, "experiences", experienceColumns, scanExperience, log)
}
