package persistence

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/predusk/profile-api/internal/domain"
	"github.com/predusk/profile-api/pkg/logger"
)

var referenceColumns = []string{
	"id", "profile_id", "name", "relationship", "contact_info", "testimonial",
}

func scanReference(row pgx.Row) (*domain.Reference, error) {
	r := &domain.Reference{}
	err := row.Scan(&r.ID, &r.ProfileID, &r.Name, &r.Relation, &r.ContactInfo, &r.Testimonial)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func NewReferenceStore(pool *pgxpool.Pool, log logger.Logger) *Store[domain.Reference] {
	// REFERENCES is a reserved word in Postgres; the table name stays quoted.
	return NewStore(pool, `"references"`, referenceColumns, scanReference, log)
}
