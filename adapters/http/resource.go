package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/predusk/profile-api/internal/domain"
	"github.com/predusk/profile-api/internal/service"
	"github.com/predusk/profile-api/pkg/apperror"
	"github.com/predusk/profile-api/pkg/logger"
)

// CRUDService is what a resource handler needs from the service layer.
type CRUDService[T any] interface {
	List(ctx context.Context, params service.ListParams) ([]*T, error)
	Get(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, fields domain.Fields) (*T, error)
	Update(ctx context.Context, id int64, fields domain.Fields) (*T, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// payload turns a bound request body into the field map handed to the
// repository contract. Update payloads include only fields the caller
// actually supplied, giving PATCH semantics behind PUT endpoints.
type payload interface {
	FieldMap() domain.Fields
}

// Resource wires the five conventional endpoints of one entity type. C is
// the create request shape (required fields enforced by binding), U the
// update shape (all fields optional).
type Resource[T any, C payload, U payload] struct {
	name        string
	svc         CRUDService[T]
	logger      logger.Logger
	skillFilter bool
}

func NewResource[T any, C payload, U payload](name string, svc CRUDService[T], log logger.Logger) *Resource[T, C, U] {
	return &Resource[T, C, U]{name: name, svc: svc, logger: log}
}

// WithSkillFilter enables the ?skill= query parameter on the list endpoint,
// narrowing results to rows whose skills array contains the value.
func (h *Resource[T, C, U]) WithSkillFilter() *Resource[T, C, U] {
	h.skillFilter = true
	return h
}

func (h *Resource[T, C, U]) Register(rg *gin.RouterGroup, path string) {
	rg.GET("/"+path, h.List)
	rg.POST("/"+path, h.Create)
	rg.GET("/"+path+"/:id", h.Get)
	rg.PUT("/"+path+"/:id", h.Update)
	rg.DELETE("/"+path+"/:id", h.Delete)
}

func (h *Resource[T, C, U]) List(c *gin.Context) {
	params, err := parseListParams(c)
	if err != nil {
		c.Error(err)
		return
	}
	if !h.skillFilter {
		params.Skill = nil
	}

	items, err := h.svc.List(c.Request.Context(), params)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Resource[T, C, U]) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.Error(err)
		return
	}

	item, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	if item == nil {
		c.Error(apperror.NewNotFound(h.name, c.Param("id")))
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Resource[T, C, U]) Create(c *gin.Context) {
	var req C
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	item, err := h.svc.Create(c.Request.Context(), req.FieldMap())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *Resource[T, C, U]) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req U
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	item, err := h.svc.Update(c.Request.Context(), id, req.FieldMap())
	if err != nil {
		c.Error(err)
		return
	}
	if item == nil {
		c.Error(apperror.NewNotFound(h.name, c.Param("id")))
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Resource[T, C, U]) Delete(c *gin.Context) {
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
		c.Error(apperror.NewNotFound(h.name, c.Param("id")))
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.NewInvalidInput("id must be a positive integer", err)
	}
	return id, nil
}

func parseListParams(c *gin.Context) (service.ListParams, error) {
	params := service.ListParams{}

	if raw, ok := c.GetQuery("profile_id"); ok {
		profileID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return params, apperror.NewInvalidInput("profile_id must be an integer", err)
		}
		params.ProfileID = &profileID
	}

	if skill := c.Query("skill"); skill != "" {
		params.Skill = &skill
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return params, apperror.NewInvalidInput("page must be a positive integer", err)
	}
	params.Page = page

	perPage, err := strconv.Atoi(c.DefaultQuery("per_page", "20"))
	if err != nil || perPage < 2 {
		return params, apperror.NewInvalidInput("per_page must be at least 2", err)
	}
	params.PerPage = perPage

	return params, nil
}
