package domain

type Contact struct {
	ID        int64   `json:"id"`
	ProfileID int64   `json:"profile_id"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Website   *string `json:"website"`
	Address   *string `json:"address"`
}

func (e Contact) EntityID() int64 { return e.ID }
