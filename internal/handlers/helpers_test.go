package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"naukrivacancy/internal/models"
)

func withUser(r *http.Request, user *models.User) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), userContextKey, user))
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Status  bool   `json:"status"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Status)
	return body.Message
}

func jsonRequest(method, target, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	r := httptest.NewRequest(method, target, reader)
	r.Header.Set("Content-Type", "application/json")
	return r
}

func TestFirstMissingReportsInOrder(t *testing.T) {
	msg := firstMissing([]requiredField{
		{"postName", true},
		{"description", false},
		{"notificationLink", false},
	})
	assert.Equal(t, "Description is required", msg)
}

func TestFirstMissingAllPresent(t *testing.T) {
	msg := firstMissing([]requiredField{
		{"postName", true},
		{"description", true},
	})
	assert.Empty(t, msg)
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "PostName", capitalize("postName"))
	assert.Equal(t, "Requirement", capitalize("Requirement"))
	assert.Equal(t, "", capitalize(""))
}

func TestQueryInt(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/getAll?page=3&limit=abc&bad=-2", nil)

	assert.Equal(t, 3, queryInt(r, "page", 1))
	assert.Equal(t, 18, queryInt(r, "limit", 18))
	assert.Equal(t, 1, queryInt(r, "bad", 1))
	assert.Equal(t, 1, queryInt(r, "missing", 1))
}
