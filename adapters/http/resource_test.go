package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/predusk/profile-api/internal/domain"
	"github.com/predusk/profile-api/internal/service"
	"github.com/predusk/profile-api/pkg/logger"
)

type fakeCRUDService[T any] struct {
	listResult   []*T
	getResult    *T
	createResult *T
	updateResult *T
	deleteResult bool
	err          error

	lastParams service.ListParams
	lastID     int64
	lastFields domain.Fields
}

func (s *fakeCRUDService[T]) List(ctx context.Context, params service.ListParams) ([]*T, error) {
	s.lastParams = params
	if s.listResult == nil {
		return []*T{}, s.err
	}
	return s.listResult, s.err
}

func (s *fakeCRUDService[T]) Get(ctx context.Context, id int64) (*T, error) {
	s.lastID = id
	return s.getResult, s.err
}

func (s *fakeCRUDService[T]) Create(ctx context.Context, fields domain.Fields) (*T, error) {
	s.lastFields = fields
	return s.createResult, s.err
}

func (s *fakeCRUDService[T]) Update(ctx context.Context, id int64, fields domain.Fields) (*T, error) {
	s.lastID = id
	s.lastFields = fields
	return s.updateResult, s.err
}

func (s *fakeCRUDService[T]) Delete(ctx context.Context, id int64) (bool, error) {
	s.lastID = id
	return s.deleteResult, s.err
}

func newExperienceTestRouter(svc CRUDService[domain.Experience]) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorMiddleware(logger.NewNop()))
	api := router.Group("/api")
	NewResource[domain.Experience, CreateExperienceRequest, UpdateExperienceRequest]("experience", svc, logger.NewNop()).
		Register(api, "experiences")
	return router
}

func doJSON(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestListParsesQueryParams(t *testing.T) {
	svc := &fakeCRUDService[domain.Experience]{}
	router := newExperienceTestRouter(svc)

	w := doJSON(router, http.MethodGet, "/api/experiences?profile_id=7&page=2&per_page=5", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	require.NotNil(t, svc.lastParams.ProfileID)
	assert.Equal(t, int64(7), *svc.lastParams.ProfileID)
	assert.Equal(t, 2, svc.lastParams.Page)
	assert.Equal(t, 5, svc.lastParams.PerPage)
}

func TestListWithoutProfileIDLeavesFilterAbsent(t *testing.T) {
	svc := &fakeCRUDService[domain.Experience]{}
	router := newExperienceTestRouter(svc)

	w := doJSON(router, http.MethodGet, "/api/experiences", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, svc.lastParams.ProfileID)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestListRejectsBadPagination(t *testing.T) {
	svc := &fakeCRUDService[domain.Experience]{}
	router := newExperienceTestRouter(svc)

	w := doJSON(router, http.MethodGet, "/api/experiences?page=zero", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListRejectsPerPageBelowTwo(t *testing.T) {
	svc := &fakeCRUDService[domain.Experience]{}
	router := newExperienceTestRouter(svc)

	w := doJSON(router, http.MethodGet, "/api/experiences?per_page=1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func newProjectTestRouter(svc CRUDService[domain.Project]) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorMiddleware(logger.NewNop()))
	api := router.Group("/api")
	NewResource[domain.Project, CreateProjectRequest, UpdateProjectRequest]("project", svc, logger.NewNop()).
		WithSkillFilter().
		Register(api, "projects")
	return router
}

func TestProjectListParsesSkillFilter(t *testing.T) {
	svc := &fakeCRUDService[domain.Project]{}
	router := newProjectTestRouter(svc)

	w := doJSON(router, http.MethodGet, "/api/projects?skill=go", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.lastParams.Skill)
	assert.Equal(t, "go", *svc.lastParams.Skill)
}

func TestSkillFilterIgnoredWhereUnsupported(t *testing.T) {
	svc := &fakeCRUDService[domain.Experience]{}
	router := newExperienceTestRouter(svc)

	w := doJSON(router, http.MethodGet, "/api/experiences?skill=go", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, svc.lastParams.Skill)
}

func TestGetAbsentIs404(t *testing.T) {
	svc := &fakeCRUDService[domain.Experience]{getResult: nil}
	router := newExperienceTestRouter(svc)

	w := doJSON(router, http.MethodGet, "/api/experiences/9", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetRejectsNonNumericID(t *testing.T) {
	svc := &fakeCRUDService[domain.Experience]{}
	router := newExperienceTestRouter(svc)

	w := doJSON(router, http.MethodGet, "/api/experiences/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateRequiresMandatoryFields(t *testing.T) {
	svc := &fakeCRUDService[domain.Experience]{}
	router := newExperienceTestRouter(svc)

	w := doJSON(router, http.MethodPost, "/api/experiences", gin.H{"profile_id": 1, "company": "Acme"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateReturnsPersistedEntity(t *testing.T) {
	svc := &fakeCRUDService[domain.Experience]{
		createResult: &domain.Experience{ID: 3, ProfileID: 1, Company: "Acme", Role: "Eng", Skills: []string{}},
	}
	router := newExperienceTestRouter(svc)

	w := doJSON(router, http.MethodPost, "/api/experiences", gin.H{
		"profile_id": 1, "company": "Acme", "role": "Eng",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	assert.Equal(t, int64(1), svc.lastFields["profile_id"])
	assert.Equal(t, "Acme", svc.lastFields["company"])
	assert.Equal(t, []string{}, svc.lastFields["skills"])

	var got domain.Experience
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, int64(3), got.ID)
}

func TestUpdateNarrowsToSuppliedFields(t *testing.T) {
	svc := &fakeCRUDService[domain.Experience]{
		updateResult: &domain.Experience{ID: 3, ProfileID: 1, Company: "Acme", Role: "CTO"},
	}
	router := newExperienceTestRouter(svc)

	w := doJSON(router, http.MethodPut, "/api/experiences/3", gin.H{"role": "CTO"})
	assert.Equal(t, http.StatusOK, w.Code)

	// A full-replace-shaped endpoint still patches: untouched fields must
	// not appear in the update map at all.
	assert.Equal(t, domain.Fields{"role": "CTO"}, svc.lastFields)
	assert.Equal(t, int64(3), svc.lastID)
}

func TestUpdateAbsentIs404(t *testing.T) {
	svc := &fakeCRUDService[domain.Experience]{updateResult: nil}
	router := newExperienceTestRouter(svc)

	w := doJSON(router, http.MethodPut, "/api/experiences/9", gin.H{"role": "CTO"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteAbsentIs404(t *testing.T) {
	svc := &fakeCRUDService[domain.Experience]{deleteResult: false}
	router := newExperienceTestRouter(svc)

	w := doJSON(router, http.MethodDelete, "/api/experiences/9", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteReportsOK(t *testing.T) {
	svc := &fakeCRUDService[domain.Experience]{deleteResult: true}
	router := newExperienceTestRouter(svc)

	w := doJSON(router, http.MethodDelete, "/api/experiences/3", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok": true}`, w.Body.String())
}
