package domain

import "github.com/jackc/pgx/v5/pgtype"

type Experience struct {
	ID          int64       `json:"id"`
	ProfileID   int64       `json:"profile_id"`
	Company     string      `json:"company"`
	Role        string      `json:"role"`
	StartDate   pgtype.Date `json:"start_date"`
	EndDate     pgtype.Date `json:"end_date"`
	Location    *string     `json:"location"`
	Description *string     `json:"description"`
	Currently   bool        `json:"currently"`
	Skills      []string    `json:"skills"`
}

func (e Experience) EntityID() int64 { return e.ID }
