package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// The controller validates the payload before touching the database, so the
// rejection paths below run safely against a nil DB.
func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func authRouter() *gin.Engine {
	ac := NewAuthController(nil, "test-secret", 60, nil)
	r := gin.New()
	r.POST("/register", ac.Register)
	r.POST("/login", ac.Login)
	r.POST("/forgot-password", ac.ForgotPassword)
	r.POST("/reset-password", ac.ResetPassword)
	return r
}

func TestRegisterRejectsInvalidEmail(t *testing.T) {
	r := authRouter()

	w := postJSON(r, "/register", `{"email":"not-an-email","password":"Secret1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	r := authRouter()

	w := postJSON(r, "/register", `{"email":"user@example.com","password":"Ab1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	r := authRouter()

	// Long enough for binding, but a single character class
	w := postJSON(r, "/register", `{"email":"user@example.com","password":"abcdefgh"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "too weak")
}

func TestLoginRejectsMissingFields(t *testing.T) {
	r := authRouter()

	w := postJSON(r, "/login", `{"email":"user@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(r, "/login", `{"password":"Secret1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestForgotPasswordRejectsInvalidEmail(t *testing.T) {
	r := authRouter()

	w := postJSON(r, "/forgot-password", `{"email":"not-an-email"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResetPasswordRejectsBadCodeLength(t *testing.T) {
	r := authRouter()

	w := postJSON(r, "/reset-password", `{"email":"user@example.com","code":"123","new_password":"Secret1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResetPasswordRejectsWeakPassword(t *testing.T) {
	r := authRouter()

	w := postJSON(r, "/reset-password", `{"email":"user@example.com","code":"123456","new_password":"abcdefgh"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "too weak")
}
