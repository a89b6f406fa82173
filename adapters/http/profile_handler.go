package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/predusk/profile-api/internal/domain"
	"github.com/predusk/profile-api/pkg/apperror"
	"github.com/predusk/profile-api/pkg/logger"
)

// ProfileService is the profile CRUD contract plus the two aggregate
// operations.
type ProfileService interface {
	CRUDService[domain.Profile]
	GetProfile(ctx context.Context, id int64) (*domain.AggregatedProfile, error)
	UpdateProfile(ctx context.Context, id int64, fields domain.Fields) (*domain.AggregatedProfile, error)
}

type CreateProfileRequest struct {
	Name     string   `json:"name" binding:"required"`
	Title    *string  `json:"title"`
	Location *string  `json:"location"`
	Summary  *string  `json:"summary"`
	Skills   []string `json:"skills"`
}

func (r CreateProfileRequest) FieldMap() domain.Fields {
	return domain.Fields{
		"name":     r.Name,
		"title":    r.Title,
		"location": r.Location,
		"summary":  r.Summary,
		"skills":   orEmpty(r.Skills),
	}
}

type UpdateProfileRequest struct {
	Name     *string   `json:"name"`
	Title    *string   `json:"title"`
	Location *string   `json:"location"`
	Summary  *string   `json:"summary"`
	Skills   *[]string `json:"skills"`
}

func (r UpdateProfileRequest) FieldMap() domain.Fields {
	f := domain.Fields{}
	setIfPresent(f, "name", r.Name)
	setIfPresent(f, "title", r.Title)
	setIfPresent(f, "location", r.Location)
	setIfPresent(f, "summary", r.Summary)
	setIfPresent(f, "skills", r.Skills)
	return f
}

// ProfileHandler serves the profile resource. GET and PUT on a single
// profile return the full aggregate; list and create work on the bare row.
type ProfileHandler struct {
	svc    ProfileService
	logger logger.Logger
}

func NewProfileHandler(svc ProfileService, log logger.Logger) *ProfileHandler {
	return &ProfileHandler{svc: svc, logger: log}
}

func (h *ProfileHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/profiles", h.List)
	rg.POST("/profiles", h.Create)
	rg.GET("/profiles/:id", h.Get)
	rg.PUT("/profiles/:id", h.Update)
	rg.DELETE("/profiles/:id", h.Delete)
}

func (h *ProfileHandler) List(c *gin.Context) {
	params, err := parseListParams(c)
	if err != nil {
		c.Error(err)
		return
	}
	// Profiles are the root entity: no profile_id or skill filter applies.
	params.ProfileID = nil
	params.Skill = nil

	profiles, err := h.svc.List(c.Request.Context(), params)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, profiles)
}

func (h *ProfileHandler) Create(c *gin.Context) {
	var req CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	profile, err := h.svc.Create(c.Request.Context(), req.FieldMap())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, profile)
}

func (h *ProfileHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.Error(err)
		return
	}

	agg, err := h.svc.GetProfile(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	if agg == nil {
		c.Error(apperror.NewNotFound("profile", c.Param("id")))
		return
	}
	c.JSON(http.StatusOK, agg)
}

func (h *ProfileHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	agg, err := h.svc.UpdateProfile(c.Request.Context(), id, req.FieldMap())
	if err != nil {
		c.Error(err)
		return
	}
	if agg == nil {
		c.Error(apperror.NewNotFound("profile", c.Param("id")))
		return
	}
	c.JSON(http.StatusOK, agg)
}

func (h *ProfileHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.Error(err)
		return
	}

	ok, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	if !ok {
		c.Error(apperror.NewNotFound("profile", c.Param("id")))
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
