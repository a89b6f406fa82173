package domain

import "github.com/jackc/pgx/v5/pgtype"

type Education struct {
	ID           int64       `json:"id"`
	ProfileID    int64       `json:"profile_id"`
	Institution  string      `json:"institution"`
	Degree       *string     `json:"degree"`
	FieldOfStudy *string     `json:"field_of_study"`
	StartDate    pgtype.Date `json:"start_date"`
	EndDate      pgtype.Date `json:"end_date"`
	Grade        *string     `json:"grade"`
	Description  *string     `json:"description"`
}

func (e Education) EntityID() int64 { return e.ID }
