package domain

import "github.com/jackc/pgx/v5/pgtype"

type Award struct {
	ID          int64       `json:"id"`
	ProfileID   int64       `json:"profile_id"`
	Title       string      `json:"title"`
	Issuer      *string     `json:"issuer"`
	Date        pgtype.Date `json:"date"`
	Description *string     `json:"description"`
}

func (e Award) EntityID() int64 { return e.ID }
