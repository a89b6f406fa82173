package domain

// Profile is the root record a resume hangs off. Every other entity points
// back at it through profile_id.
type Profile struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Title    *string  `json:"title"`
	Location *string  `json:"location"`
	Summary  *string  `json:"summary"`
	Skills   []string `json:"skills"`
}

// AggregatedProfile is the read model combining a profile with all of its
// dependent collections. Collections are always present, possibly empty.
type AggregatedProfile struct {
	Profile
	Projects       []*Project       `json:"projects"`
	Experiences    []*Experience    `json:"experiences"`
	Educations     []*Education     `json:"educations"`
	Certifications []*Certification `json:"certifications"`
	Awards         []*Award         `json:"awards"`
	Publications   []*Publication   `json:"publications"`
	Contacts       []*Contact       `json:"contacts"`
	SocialLinks    []*SocialLink    `json:"social_links"`
	PortfolioItems []*PortfolioItem `json:"portfolio_items"`
	References     []*Reference     `json:"references"`
	SkillItems     []*Skill         `json:"skill_items"`
}

func (e Profile) EntityID() int64 { return e.ID }
