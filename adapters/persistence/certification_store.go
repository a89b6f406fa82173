package persistence

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/predusk/profile-api/internal/domain"
	"github.com/predusk/profile-api/pkg/logger"
)

var certificationColumns = []string{
	"id", "profile_id", "name", "issuer", "issue_date", "expiration_date",
	"credential_id", "credential_url",
}

func scanCertification(row pgx.Row) (*domain.Certification, error) {
	c := &domain.Certification{}
	err := row.Scan(
		&c.ID, &c.ProfileID, &c.Name, &c.Issuer, &c.IssueDate, &c.ExpirationDate,
		&c.CredentialID, &c.CredentialURL,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func NewCertificationStore(pool *pgxpool.Pool, log logger.Logger) *Store[domain.Certification] {
	return NewStore(pool, "certifications", certificationColumns, scanCertification, log)
}
