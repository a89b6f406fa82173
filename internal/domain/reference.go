package domain

// Reference's relation field maps to the "relationship" column; the column
// name is a reserved-looking word the wire format avoids.
type Reference struct {
	ID          int64   `json:"id"`
	ProfileID   int64   `json:"profile_id"`
	Name        string  `json:"name"`
	Relation    *string `json:"relation"`
	ContactInfo *string `json:"contact_info"`
	Testimonial *string `json:"testimonial"`
}

func (e Reference) EntityID() int64 { return e.ID }
