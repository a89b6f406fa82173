package domain

// Project is the one dependent whose profile_id is optional: a project may
// exist before it is attached to a profile.
type Project struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	Skills      []string `json:"skills"`
	ProfileID   *int64   `json:"profile_id"`
}

func (e Project) EntityID() int64 { return e.ID }
