package http

import (
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/predusk/profile-api/internal/domain"
)

// setIfPresent narrows a full-shape update payload to the fields the caller
// actually sent: a nil pointer means "leave unchanged", never "clear".
func setIfPresent[V any](f domain.Fields, column string, v *V) {
	if v != nil {
		f[column] = *v
	}
}

func orEmpty(skills []string) []string {
	if skills == nil {
		return []string{}
	}
	return skills
}

// Project

type CreateProjectRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description *string  `json:"description"`
	Skills      []string `json:"skills"`
	ProfileID   *int64   `json:"profile_id"`
}

func (r CreateProjectRequest) FieldMap() domain.Fields {
	return domain.Fields{
		"title":       r.Title,
		"description": r.Description,
		"skills":      orEmpty(r.Skills),
		"profile_id":  r.ProfileID,
	}
}

type UpdateProjectRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Skills      *[]string `json:"skills"`
	ProfileID   *int64    `json:"profile_id"`
}

func (r UpdateProjectRequest) FieldMap() domain.Fields {
	f := domain.Fields{}
	setIfPresent(f, "title", r.Title)
	setIfPresent(f, "description", r.Description)
	setIfPresent(f, "skills", r.Skills)
	setIfPresent(f, "profile_id", r.ProfileID)
	return f
}

// Experience

type CreateExperienceRequest struct {
	ProfileID   int64       `json:"profile_id" binding:"required"`
	Company     string      `json:"company" binding:"required"`
	Role        string      `json:"role" binding:"required"`
	StartDate   pgtype.Date `json:"start_date"`
	EndDate     pgtype.Date `json:"end_date"`
	Location    *string     `json:"location"`
	Description *string     `json:"description"`
	Currently   bool        `json:"currently"`
	Skills      []string    `json:"skills"`
}

func (r CreateExperienceRequest) FieldMap() domain.Fields {
	return domain.Fields{
		"profile_id":  r.ProfileID,
		"company":     r.Company,
		"role":        r.Role,
		"start_date":  r.StartDate,
		"end_date":    r.EndDate,
		"location":    r.Location,
		"description": r.Description,
		"currently":   r.Currently,
		"skills":      orEmpty(r.Skills),
	}
}

type UpdateExperienceRequest struct {
	ProfileID   *int64       `json:"profile_id"`
	Company     *string      `json:"company"`
	Role        *string      `json:"role"`
	StartDate   *pgtype.Date `json:"start_date"`
	EndDate     *pgtype.Date `json:"end_date"`
	Location    *string      `json:"location"`
	Description *string      `json:"description"`
	Currently   *bool        `json:"currently"`
	Skills      *[]string    `json:"skills"`
}

func (r UpdateExperienceRequest) FieldMap() domain.Fields {
	f := domain.Fields{}
	setIfPresent(f, "profile_id", r.ProfileID)
	setIfPresent(f, "company", r.Company)
	setIfPresent(f, "role", r.Role)
	setIfPresent(f, "start_date", r.StartDate)
	setIfPresent(f, "end_date", r.EndDate)
	setIfPresent(f, "location", r.Location)
	setIfPresent(f, "description", r.Description)
	setIfPresent(f, "currently", r.Currently)
	setIfPresent(f, "skills", r.Skills)
	return f
}

// Education

type CreateEducationRequest struct {
	ProfileID    int64       `json:"profile_id" binding:"required"`
	Institution  string      `json:"institution" binding:"required"`
	Degree       *string     `json:"degree"`
	FieldOfStudy *string     `json:"field_of_study"`
	StartDate    pgtype.Date `json:"start_date"`
	EndDate      pgtype.Date `json:"end_date"`
	Grade        *string     `json:"grade"`
	Description  *string     `json:"description"`
}

func (r CreateEducationRequest) FieldMap() domain.Fields {
	return domain.Fields{
		"profile_id":     r.ProfileID,
		"institution":    r.Institution,
		"degree":         r.Degree,
		"field_of_study": r.FieldOfStudy,
		"start_date":     r.StartDate,
		"end_date":       r.EndDate,
		"grade":          r.Grade,
		"description":    r.Description,
	}
}

type UpdateEducationRequest struct {
	ProfileID    *int64       `json:"profile_id"`
	Institution  *string      `json:"institution"`
	Degree       *string      `json:"degree"`
	FieldOfStudy *string      `json:"field_of_study"`
	StartDate    *pgtype.Date `json:"start_date"`
	EndDate      *pgtype.Date `json:"end_date"`
	Grade        *string      `json:"grade"`
	Description  *string      `json:"description"`
}

func (r UpdateEducationRequest) FieldMap() domain.Fields {
	f := domain.Fields{}
	setIfPresent(f, "profile_id", r.ProfileID)
	setIfPresent(f, "institution", r.Institution)
	setIfPresent(f, "degree", r.Degree)
	setIfPresent(f, "field_of_study", r.FieldOfStudy)
	setIfPresent(f, "start_date", r.StartDate)
	setIfPresent(f, "end_date", r.EndDate)
	setIfPresent(f, "grade", r.Grade)
	setIfPresent(f, "description", r.Description)
	return f
}

// Certification

type CreateCertificationRequest struct {
	ProfileID      int64       `json:"profile_id" binding:"required"`
	Name           string      `json:"name" binding:"required"`
	Issuer         *string     `json:"issuer"`
	IssueDate      pgtype.Date `json:"issue_date"`
	ExpirationDate pgtype.Date `json:"expiration_date"`
	CredentialID   *string     `json:"credential_id"`
	CredentialURL  *string     `json:"credential_url"`
}

func (r CreateCertificationRequest) FieldMap() domain.Fields {
	return domain.Fields{
		"profile_id":      r.ProfileID,
		"name":            r.Name,
		"issuer":          r.Issuer,
		"issue_date":      r.IssueDate,
		"expiration_date": r.ExpirationDate,
		"credential_id":   r.CredentialID,
		"credential_url":  r.CredentialURL,
	}
}

type UpdateCertificationRequest struct {
	ProfileID      *int64       `json:"profile_id"`
	Name           *string      `json:"name"`
	Issuer         *string      `json:"issuer"`
	IssueDate      *pgtype.Date `json:"issue_date"`
	ExpirationDate *pgtype.Date `json:"expiration_date"`
	CredentialID   *string      `json:"credential_id"`
	CredentialURL  *string      `json:"credential_url"`
}

func (r UpdateCertificationRequest) FieldMap() domain.Fields {
	f := domain.Fields{}
	setIfPresent(f, "profile_id", r.ProfileID)
	setIfPresent(f, "name", r.Name)
	setIfPresent(f, "issuer", r.Issuer)
	setIfPresent(f, "issue_date", r.IssueDate)
	setIfPresent(f, "expiration_date", r.ExpirationDate)
	setIfPresent(f, "credential_id", r.CredentialID)
	setIfPresent(f, "credential_url", r.CredentialURL)
	return f
}

// Award

type CreateAwardRequest struct {
	ProfileID   int64       `json:"profile_id" binding:"required"`
	Title       string      `json:"title" binding:"required"`
	Issuer      *string     `json:"issuer"`
	Date        pgtype.Date `json:"date"`
	Description *string     `json:"description"`
}

func (r CreateAwardRequest) FieldMap() domain.Fields {
	return domain.Fields{
		"profile_id":  r.ProfileID,
		"title":       r.Title,
		"issuer":      r.Issuer,
		"date":        r.Date,
		"description": r.Description,
	}
}

type UpdateAwardRequest struct {
	ProfileID   *int64       `json:"profile_id"`
	Title       *string      `json:"title"`
	Issuer      *string      `json:"issuer"`
	Date        *pgtype.Date `json:"date"`
	Description *string      `json:"description"`
}

func (r UpdateAwardRequest) FieldMap() domain.Fields {
	f := domain.Fields{}
	setIfPresent(f, "profile_id", r.ProfileID)
	setIfPresent(f, "title", r.Title)
	setIfPresent(f, "issuer", r.Issuer)
	setIfPresent(f, "date", r.Date)
	setIfPresent(f, "description", r.Description)
	return f
}

// Publication

type CreatePublicationRequest struct {
	ProfileID       int64       `json:"profile_id" binding:"required"`
	Title           string      `json:"title" binding:"required"`
	Publisher       *string     `json:"publisher"`
	PublicationDate pgtype.Date `json:"publication_date"`
	URL             *string     `json:"url"`
	Description     *string     `json:"description"`
}

func (r CreatePublicationRequest) FieldMap() domain.Fields {
	return domain.Fields{
		"profile_id":       r.ProfileID,
		"title":            r.Title,
		"publisher":        r.Publisher,
		"publication_date": r.PublicationDate,
		"url":              r.URL,
		"description":      r.Description,
	}
}

type UpdatePublicationRequest struct {
	ProfileID       *int64       `json:"profile_id"`
	Title           *string      `json:"title"`
	Publisher       *string      `json:"publisher"`
	PublicationDate *pgtype.Date `json:"publication_date"`
	URL             *string      `json:"url"`
	Description     *string      `json:"description"`
}

func (r UpdatePublicationRequest) FieldMap() domain.Fields {
	f := domain.Fields{}
	setIfPresent(f, "profile_id", r.ProfileID)
	setIfPresent(f, "title", r.Title)
	setIfPresent(f, "publisher", r.Publisher)
	setIfPresent(f, "publication_date", r.PublicationDate)
	setIfPresent(f, "url", r.URL)
	setIfPresent(f, "description", r.Description)
	return f
}

// Contact

type CreateContactRequest struct {
	ProfileID int64   `json:"profile_id" binding:"required"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Website   *string `json:"website"`
	Address   *string `json:"address"`
}

func (r CreateContactRequest) FieldMap() domain.Fields {
	return domain.Fields{
		"profile_id": r.ProfileID,
		"email":      r.Email,
		"phone":      r.Phone,
		"website":    r.Website,
		"address":    r.Address,
	}
}

type UpdateContactRequest struct {
	ProfileID *int64  `json:"profile_id"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Website   *string `json:"website"`
	Address   *string `json:"address"`
}

func (r UpdateContactRequest) FieldMap() domain.Fields {
	f := domain.Fields{}
	setIfPresent(f, "profile_id", r.ProfileID)
	setIfPresent(f, "email", r.Email)
	setIfPresent(f, "phone", r.Phone)
	setIfPresent(f, "website", r.Website)
	setIfPresent(f, "address", r.Address)
	return f
}

// SocialLink

type CreateSocialLinkRequest struct {
	ProfileID int64   `json:"profile_id" binding:"required"`
	Platform  *string `json:"platform"`
	URL       *string `json:"url"`
	Username  *string `json:"username"`
}

func (r CreateSocialLinkRequest) FieldMap() domain.Fields {
	return domain.Fields{
		"profile_id": r.ProfileID,
		"platform":   r.Platform,
		"url":        r.URL,
		"username":   r.Username,
	}
}

type UpdateSocialLinkRequest struct {
	ProfileID *int64  `json:"profile_id"`
	Platform  *string `json:"platform"`
	URL       *string `json:"url"`
	Username  *string `json:"username"`
}

func (r UpdateSocialLinkRequest) FieldMap() domain.Fields {
	f := domain.Fields{}
	setIfPresent(f, "profile_id", r.ProfileID)
	setIfPresent(f, "platform", r.Platform)
	setIfPresent(f, "url", r.URL)
	setIfPresent(f, "username", r.Username)
	return f
}

// PortfolioItem

type CreatePortfolioItemRequest struct {
	ProfileID     int64    `json:"profile_id" binding:"required"`
	Title         string   `json:"title" binding:"required"`
	Description   *string  `json:"description"`
	URL           *string  `json:"url"`
	ScreenshotURL *string  `json:"screenshot_url"`
	Skills        []string `json:"skills"`
	DisplayOrder  int32    `json:"display_order"`
}

func (r CreatePortfolioItemRequest) FieldMap() domain.Fields {
	return domain.Fields{
		"profile_id":     r.ProfileID,
		"title":          r.Title,
		"description":    r.Description,
		"url":            r.URL,
		"screenshot_url": r.ScreenshotURL,
		"skills":         orEmpty(r.Skills),
		"display_order":  r.DisplayOrder,
	}
}

type UpdatePortfolioItemRequest struct {
	ProfileID     *int64    `json:"profile_id"`
	Title         *string   `json:"title"`
	Description   *string   `json:"description"`
	URL           *string   `json:"url"`
	ScreenshotURL *string   `json:"screenshot_url"`
	Skills        *[]string `json:"skills"`
	DisplayOrder  *int32    `json:"display_order"`
}

func (r UpdatePortfolioItemRequest) FieldMap() domain.Fields {
	f := domain.Fields{}
	setIfPresent(f, "profile_id", r.ProfileID)
	setIfPresent(f, "title", r.Title)
	setIfPresent(f, "description", r.Description)
	setIfPresent(f, "url", r.URL)
	setIfPresent(f, "screenshot_url", r.ScreenshotURL)
	setIfPresent(f, "skills", r.Skills)
	setIfPresent(f, "display_order", r.DisplayOrder)
	return f
}

// Reference

type CreateReferenceRequest struct {
	ProfileID   int64   `json:"profile_id" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Relation    *string `json:"relation"`
	ContactInfo *string `json:"contact_info"`
	Testimonial *string `json:"testimonial"`
}

func (r CreateReferenceRequest) FieldMap() domain.Fields {
	return domain.Fields{
		"profile_id":   r.ProfileID,
		"name":         r.Name,
		"relationship": r.Relation,
		"contact_info": r.ContactInfo,
		"testimonial":  r.Testimonial,
	}
}

type UpdateReferenceRequest struct {
	ProfileID   *int64  `json:"profile_id"`
	Name        *string `json:"name"`
	Relation    *string `json:"relation"`
	ContactInfo *string `json:"contact_info"`
	Testimonial *string `json:"testimonial"`
}

func (r UpdateReferenceRequest) FieldMap() domain.Fields {
	f := domain.Fields{}
	setIfPresent(f, "profile_id", r.ProfileID)
	setIfPresent(f, "name", r.Name)
	setIfPresent(f, "relationship", r.Relation)
	setIfPresent(f, "contact_info", r.ContactInfo)
	setIfPresent(f, "testimonial", r.Testimonial)
	return f
}

// Skill

type CreateSkillRequest struct {
	ProfileID   int64    `json:"profile_id" binding:"required"`
	Name        string   `json:"name" binding:"required"`
	Proficiency *int32   `json:"proficiency"`
	Years       *float64 `json:"years"`
}

func (r CreateSkillRequest) FieldMap() domain.Fields {
	return domain.Fields{
		"profile_id":  r.ProfileID,
		"name":        r.Name,
		"proficiency": r.Proficiency,
		"years":       r.Years,
	}
}

type UpdateSkillRequest struct {
	ProfileID   *int64   `json:"profile_id"`
	Name        *string  `json:"name"`
	Proficiency *int32   `json:"proficiency"`
	Years       *float64 `json:"years"`
}

func (r UpdateSkillRequest) FieldMap() domain.Fields {
	f := domain.Fields{}
	setIfPresent(f, "profile_id", r.ProfileID)
	setIfPresent(f, "name", r.Name)
	setIfPresent(f, "proficiency", r.Proficiency)
	setIfPresent(f, "years", r.Years)
	return f
}
