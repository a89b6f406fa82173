package domain

type SocialLink struct {
	ID        int64   `json:"id"`
	ProfileID int64   `json:"profile_id"`
	Platform  *string `json:"platform"`
	URL       *string `json:"url"`
	Username  *string `json:"username"`
}

func (e SocialLink) EntityID() int64 { return e.ID }
