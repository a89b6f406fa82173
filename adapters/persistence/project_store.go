package persistence

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/predusk/profile-api/internal/domain"
	"github.com/predusk/profile-api/pkg/logger"
)

var projectColumns = []string{"id", "title", "description", "skills", "profile_id"}

func scanProject(row pgx.Row) (*domain.Project, error) {
	p := &domain.Project{}
	if err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Skills, &p.ProfileID); err != nil {
		return nil, err
	}
	return p, nil
}

func NewProjectStore(pool *pgxpool.Pool, log logger.Logger) *Store[domain.Project] {
	return NewStore(pool, "projects", projectColumns, scanProject, log)
}
