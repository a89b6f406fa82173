package persistence

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/predusk/profile-api/internal/domain"
	"github.com/predusk/profile-api/pkg/logger"
)

var skillColumns = []string{"id", "profile_id", "name", "proficiency", "years"}

func scanSkill(row pgx.Row) (*domain.Skill, error) {
	s := &domain.Skill{}
	if err := row.Scan(&s.ID, &s.ProfileID, &s.Name, &s.Proficiency, &s.Years); err != nil {
		return nil, err
	}
	return s, nil
}

func NewSkillStore(pool *pgxpool.Pool, log logger.Logger) *Store[domain.Skill] {
	return NewStore(pool, "skills", skillColumns, scanSkill, log)
}
