package persistence

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/predusk/profile-api/internal/domain"
	"github.com/predusk/profile-api/pkg/logger"
)

var socialLinkColumns = []string{"id", "profile_id", "platform", "url", "username"}

func scanSocialLink(row pgx.Row) (*domain.SocialLink, error) {
	s := &domain.SocialLink{}
	if err := row.Scan(&s.ID, &s.ProfileID, &s.Platform, &s.URL, &s.Username); err != nil {
		return nil, err
	}
	return s, nil
}

func NewSocialLinkStore(pool *pgxpool.Pool, log logger.Logger) *Store[domain.SocialLink] {
	return NewStore(pool, "social_links", socialLinkColumns, scanSocialLink, log)
}
