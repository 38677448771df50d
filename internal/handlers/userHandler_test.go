package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterNamesFirstMissingField(t *testing.T) {
	rec := httptest.NewRecorder()
	Register(rec, jsonRequest(http.MethodPost, "/api/v1/register", "{}"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "FirstName is required", errorBody(t, rec))

	rec = httptest.NewRecorder()
	Register(rec, jsonRequest(http.MethodPost, "/api/v1/register",
		`{"firstName":"Asha","lastName":"Verma","phone":"9876543210"}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Email is required", errorBody(t, rec))
}

func TestLoginNamesFirstMissingField(t *testing.T) {
	rec := httptest.NewRecorder()
	Login(rec, jsonRequest(http.MethodPost, "/api/v1/login", `{"otp":"100001"}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Email is required", errorBody(t, rec))

	rec = httptest.NewRecorder()
	Login(rec, jsonRequest(http.MethodPost, "/api/v1/login", `{"email":"a@b.com"}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Otp is required", errorBody(t, rec))
}

func TestSendVerificationCodeRequiresEmail(t *testing.T) {
	rec := httptest.NewRecorder()
	SendVerificationCode(rec, jsonRequest(http.MethodPost, "/api/v1/code", "{}"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Either email or phone number is required", errorBody(t, rec))
}

func TestLogoutExpiresCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	Logout(rec, httptest.NewRequest(http.MethodGet, "/api/v1/logout", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, "accessToken", cookie.Name)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
}
