package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/predusk/profile-api/internal/domain"
	"github.com/predusk/profile-api/pkg/logger"
)

// Services bundles everything the router needs from the service layer.
type Services struct {
	Profiles       ProfileService
	Projects       CRUDService[domain.Project]
	Experiences    CRUDService[domain.Experience]
	Educations     CRUDService[domain.Education]
	Certifications CRUDService[domain.Certification]
	Awards         CRUDService[domain.Award]
	Publications   CRUDService[domain.Publication]
	Contacts       CRUDService[domain.Contact]
	SocialLinks    CRUDService[domain.SocialLink]
	PortfolioItems CRUDService[domain.PortfolioItem]
	References     CRUDService[domain.Reference]
	Skills         CRUDService[domain.Skill]
}

func NewRouter(s Services, log logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestIDMiddleware(), ErrorMiddleware(log))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to the Profile API"})
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	NewProfileHandler(s.Profiles, log).Register(api)

	NewResource[domain.Project, CreateProjectRequest, UpdateProjectRequest]("project", s.Projects, log).
		WithSkillFilter().
		Register(api, "projects")
	NewResource[domain.Experience, CreateExperienceRequest, UpdateExperienceRequest]("experience", s.Experiences, log).
		Register(api, "experiences")
	NewResource[domain.Education, CreateEducationRequest, UpdateEducationRequest]("education", s.Educations, log).
		Register(api, "educations")
	NewResource[domain.Certification, CreateCertificationRequest, UpdateCertificationRequest]("certification", s.Certifications, log).
		Register(api, "certifications")
	NewResource[domain.Award, CreateAwardRequest, UpdateAwardRequest]("award", s.Awards, log).
		Register(api, "awards")
	NewResource[domain.Publication, CreatePublicationRequest, UpdatePublicationRequest]("publication", s.Publications, log).
		Register(api, "publications")
	NewResource[domain.Contact, CreateContactRequest, UpdateContactRequest]("contact", s.Contacts, log).
		Register(api, "contacts")
	NewResource[domain.SocialLink, CreateSocialLinkRequest, UpdateSocialLinkRequest]("social link", s.SocialLinks, log).
		Register(api, "social-links")
	NewResource[domain.PortfolioItem, CreatePortfolioItemRequest, UpdatePortfolioItemRequest]("portfolio item", s.PortfolioItems, log).
		Register(api, "portfolio-items")
	NewResource[domain.Reference, CreateReferenceRequest, UpdateReferenceRequest]("reference", s.References, log).
		Register(api, "references")
	NewResource[domain.Skill, CreateSkillRequest, UpdateSkillRequest]("skill", s.Skills, log).
		Register(api, "skills")

	return router
}
