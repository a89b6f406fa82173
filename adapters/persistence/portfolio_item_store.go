package persistence

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/predusk/profile-api/internal/domain"
	"github.com/predusk/profile-api/pkg/logger"
)

var portfolioItemColumns = []string{
	"id", "profile_id", "title", "description", "url", "screenshot_url",
	"skills", "display_order",
}

func scanPortfolioItem(row pgx.Row) (*domain.PortfolioItem, error) {
	p := &domain.PortfolioItem{}
	err := row.Scan(
		&p.ID, &p.ProfileID, &p.Title, &p.Description, &p.URL, &p.ScreenshotURL,
		&p.Skills, &p.DisplayOrder,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func NewPortfolioItemStore(pool *pgxpool.Pool, log logger.Logger) *Store[domain.PortfolioItem] {
	return NewStore(pool, "portfolio_items", portfolioItemColumns, scanPortfolioItem, log)
}
