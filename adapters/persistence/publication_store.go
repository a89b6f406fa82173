package persistence

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/predusk/profile-api/internal/domain"
	"github.com/predusk/profile-api/pkg/logger"
)

var publicationColumns = []string{
	"id", "profile_id", "title", "publisher", "publication_date", "url", "description",
}

func scanPublication(row pgx.Row) (*domain.Publication, error) {
	p := &domain.Publication{}
	err := row.Scan(
		&p.ID, &p.ProfileID, &p.Title, &p.Publisher, &p.PublicationDate,
		&p.URL, &p.Description,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func NewPublicationStore(pool *pgxpool.Pool, log logger.Logger) *Store[domain.Publication] {
	return NewStore(pool, "publications", publicationColumns, scanPublication, log)
}
