package persistence

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/predusk/profile-api/internal/domain"
	"github.com/predusk/profile-api/pkg/logger"
)

var educationColumns = []string{
	"id", "profile_id", "institution", "degree", "field_of_study",
	"start_date", "end_date", "grade", "description",
}

func scanEducation(row pgx.Row) (*domain.Education, error) {
	e := &domain.Education{}
	err := row.Scan(
		&e.ID, &e.ProfileID, &e.Institution, &e.Degree, &e.FieldOfStudy,
		&e.StartDate, &e.EndDate, &e.Grade, &e.Description,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func NewEducationStore(pool *pgxpool.Pool, log logger.Logger) *Store[domain.Education] {
	return NewStore(pool, "educations", educationColumns, scanEducation, log)
}
