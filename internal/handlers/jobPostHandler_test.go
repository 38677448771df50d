package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"naukrivacancy/internal/models"
)

func TestCreateJobPostRequiresAuthentication(t *testing.T) {
	rec := httptest.NewRecorder()
	CreateJobPost(rec, jsonRequest(http.MethodPost, "/api/v1/create", "{}"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Unauthorized access", errorBody(t, rec))
}

func TestCreateJobPostRequiresAdminRole(t *testing.T) {
	rec := httptest.NewRecorder()
	r := withUser(jsonRequest(http.MethodPost, "/api/v1/create", "{}"), &models.User{Role: models.RoleUser})
	CreateJobPost(rec, r)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Forbidden: Admin access required", errorBody(t, rec))
}

func TestCreateJobPostNamesFirstMissingField(t *testing.T) {
	admin := &models.User{Role: models.RoleAdmin}

	rec := httptest.NewRecorder()
	CreateJobPost(rec, withUser(jsonRequest(http.MethodPost, "/api/v1/create", "{}"), admin))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "PostName is required", errorBody(t, rec))

	rec = httptest.NewRecorder()
	CreateJobPost(rec, withUser(jsonRequest(http.MethodPost, "/api/v1/create",
		`{"postName":"SSC CGL 2025"}`), admin))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Description is required", errorBody(t, rec))
}

func TestCreateJobPostRejectsBlankRequiredField(t *testing.T) {
	admin := &models.User{Role: models.RoleAdmin}

	rec := httptest.NewRecorder()
	CreateJobPost(rec, withUser(jsonRequest(http.MethodPost, "/api/v1/create",
		`{"postName":"   "}`), admin))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "PostName is required", errorBody(t, rec))
}

func TestUpdateJobPostRequiresAdminRole(t *testing.T) {
	rec := httptest.NewRecorder()
	UpdateJobPostByID(rec, jsonRequest(http.MethodPut, "/api/v1/abc", "{}"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	r := withUser(jsonRequest(http.MethodPut, "/api/v1/abc", "{}"), &models.User{Role: models.RoleUser})
	UpdateJobPostByID(rec, r)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestDeleteJobPostRejectsMalformedID(t *testing.T) {
	rec := httptest.NewRecorder()
	r := withUser(jsonRequest(http.MethodDelete, "/api/v1/not-an-id", ""), &models.User{Role: models.RoleAdmin})
	DeleteJobPostByID(rec, r)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Job post not found", errorBody(t, rec))
}
