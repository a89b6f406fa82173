package persistence

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/predusk/profile-api/internal/domain"
	"github.com/predusk/profile-api/pkg/logger"
)

var contactColumns = []string{"id", "profile_id", "email", "phone", "website", "address"}

func scanContact(row pgx.Row) (*domain.Contact, error) {
	c := &domain.Contact{}
	if err := row.Scan(&c.ID, &c.ProfileID, &c.Email, &c.Phone, &c.Website, &c.Address); err != nil {
		return nil, err
	}
	return c, nil
}

func NewContactStore(pool *pgxpool.Pool, log logger.Logger) *Store[domain.Contact] {
	return NewStore(pool, "contacts", contactColumns, scanContact, log)
}
