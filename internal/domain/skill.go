package domain

// Skill is a single named skill row, distinct from the free-form skill tags
// carried as string arrays on other entities.
type Skill struct {
	ID          int64    `json:"id"`
	ProfileID   int64    `json:"profile_id"`
	Name        string   `json:"name"`
	Proficiency *int32   `json:"proficiency"`
	Years       *float64 `json:"years"`
}

func (e Skill) EntityID() int64 { return e.ID }
