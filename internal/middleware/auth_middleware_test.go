package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deniz/classbooker/internal/app/models"
	"github.com/deniz/classbooker/internal/pkg/auth"
)

func testJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "classbooker.test",
	})
}

func issueToken(t *testing.T, svc *auth.JWTService, role models.RoleType) string {
	t.Helper()
	token, _, err := svc.GenerateToken(&models.User{
		ID:    1,
		Email: "student@classbooker.app",
		Role:  role,
	})
	require.NoError(t, err)
	return token
}

func testRouter(m *AuthMiddleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	protected := router.Group("", m.JWTAuth())
	protected.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": AuthenticatedEmail(c)})
	})
	protected.GET("/users/:email/bookings", func(c *gin.Context) {
		email, ok := BindEmailParam(c, "email")
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"email": email})
	})

	adminOnly := protected.Group("", m.RoleRequired(string(models.RoleAdmin)))
	adminOnly.GET("/admin", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return router
}

func doRequest(router *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	router := testRouter(NewAuthMiddleware(testJWTService()))

	rec := doRequest(router, "/me", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuth_MalformedHeader(t *testing.T) {
	router := testRouter(NewAuthMiddleware(testJWTService()))

	rec := doRequest(router, "/me", "Token abc")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuth_ValidTokenSetsIdentity(t *testing.T) {
	svc := testJWTService()
	router := testRouter(NewAuthMiddleware(svc))
	token := issueToken(t, svc, models.RoleUnset)

	rec := doRequest(router, "/me", "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "student@classbooker.app")
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	expired := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: -time.Minute,
		TokenIssuer:    "classbooker.test",
	})
	router := testRouter(NewAuthMiddleware(testJWTService()))
	token := issueToken(t, expired, models.RoleUnset)

	rec := doRequest(router, "/me", "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "AUTH_003")
}

func TestRoleRequired_DeniesWrongRole(t *testing.T) {
	svc := testJWTService()
	router := testRouter(NewAuthMiddleware(svc))
	token := issueToken(t, svc, models.RoleInstructor)

	rec := doRequest(router, "/admin", "Bearer "+token)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRoleRequired_AllowsMatchingRole(t *testing.T) {
	svc := testJWTService()
	router := testRouter(NewAuthMiddleware(svc))
	token := issueToken(t, svc, models.RoleAdmin)

	rec := doRequest(router, "/admin", "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBindEmailParam_RejectsForeignEmail(t *testing.T) {
	svc := testJWTService()
	router := testRouter(NewAuthMiddleware(svc))
	token := issueToken(t, svc, models.RoleUnset)

	rec := doRequest(router, "/users/other@classbooker.app/bookings", "Bearer "+token)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestBindEmailParam_AllowsOwnEmail(t *testing.T) {
	svc := testJWTService()
	router := testRouter(NewAuthMiddleware(svc))
	token := issueToken(t, svc, models.RoleUnset)

	rec := doRequest(router, "/users/student@classbooker.app/bookings", "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
}
