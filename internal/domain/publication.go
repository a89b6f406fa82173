package domain

import "github.com/jackc/pgx/v5/pgtype"

type Publication struct {
	ID              int64       `json:"id"`
	ProfileID       int64       `json:"profile_id"`
	Title           string      `json:"title"`
	Publisher       *string     `json:"publisher"`
	PublicationDate pgtype.Date `json:"publication_date"`
	URL             *string     `json:"url"`
	Description     *string     `json:"description"`
}

func (e Publication) EntityID() int64 { return e.ID }
