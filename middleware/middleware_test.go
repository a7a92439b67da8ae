package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulse-afisha-api/models"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func signTestToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestParseToken(t *testing.T) {
	signed := signTestToken(t, testSecret, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	claims, err := ParseToken(signed, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims["sub"])
}

func TestParseTokenExpired(t *testing.T) {
	signed := signTestToken(t, testSecret, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	_, err := ParseToken(signed, testSecret)
	assert.Error(t, err)
}

func TestParseTokenWrongSecret(t *testing.T) {
	signed := signTestToken(t, "other-secret", jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := ParseToken(signed, testSecret)
	assert.Error(t, err)
}

func TestParseTokenRejectsNonHMAC(t *testing.T) {
	// Token claims alg=none, must be rejected regardless of payload
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "user-1",
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ParseToken(unsigned, testSecret)
	assert.Error(t, err)
}

// authTestRouter wires AuthMiddleware with a nil DB. The requests below are
// all rejected before the user lookup, so the DB is never touched.
func authTestRouter() *gin.Engine {
	r := gin.New()
	r.GET("/protected", AuthMiddleware(nil, testSecret), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	r := authTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	r := authTestRouter()

	for _, header := range []string{"Basic abc", "Bearer", "just-a-token"} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", header)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestAuthMiddlewareBadSignature(t *testing.T) {
	r := authTestRouter()

	signed := signTestToken(t, "other-secret", jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareMissingSubject(t *testing.T) {
	r := authTestRouter()

	signed := signTestToken(t, testSecret, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRoles(t *testing.T) {
	r := gin.New()
	r.GET("/admin", func(c *gin.Context) {
		c.Set(ContextRoleKey, models.RoleOrganizer)
	}, RequireRoles(models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/organizer", func(c *gin.Context) {
		c.Set(ContextRoleKey, models.RoleOrganizer)
	}, RequireRoles(models.RoleOrganizer, models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/anonymous", RequireRoles(models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/organizer", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/anonymous", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRateLimit(t *testing.T) {
	r := gin.New()
	r.GET("/limited", RateLimit(60, 2), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	// Burst of 2 passes, third request is rejected
	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/limited", nil))
		assert.Equal(t, http.StatusOK, w.Code, "request %d", i+1)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/limited", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
}

func TestRateLimiterCleanup(t *testing.T) {
	rl := NewRateLimiter(60, 2)
	rl.GetLimiter("10.0.0.1")
	assert.Len(t, rl.limiters, 1)

	// A limiter with a full bucket is idle and gets dropped
	rl.CleanupLimiters()
	assert.Len(t, rl.limiters, 0)
}

func TestSecurityHeaders(t *testing.T) {
	r := gin.New()
	r.GET("/", SecurityHeaders(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
}

func TestValidateJSON(t *testing.T) {
	r := gin.New()
	handler := func(c *gin.Context) { c.Status(http.StatusOK) }
	r.POST("/resource", ValidateJSON(), handler)
	r.GET("/resource", ValidateJSON(), handler)

	// POST with a non-JSON body is rejected
	req := httptest.NewRequest(http.MethodPost, "/resource", nil)
	req.Header.Set("Content-Type", "text/plain")
	req.ContentLength = 10
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// POST with JSON passes
	req = httptest.NewRequest(http.MethodPost, "/resource", nil)
	req.Header.Set("Content-Type", "application/json")
	req.ContentLength = 10
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// GET is exempt
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/resource", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
