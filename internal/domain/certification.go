package domain

import "github.com/jackc/pgx/v5/pgtype"

type Certification struct {
	ID             int64       `json:"id"`
	ProfileID      int64       `json:"profile_id"`
	Name           string      `json:"name"`
	Issuer         *string     `json:"issuer"`
	IssueDate      pgtype.Date `json:"issue_date"`
	ExpirationDate pgtype.Date `json:"expiration_date"`
	CredentialID   *string     `json:"credential_id"`
	CredentialURL  *string     `json:"credential_url"`
}

func (e Certification) EntityID() int64 { return e.ID }
