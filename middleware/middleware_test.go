package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motohub-api/models"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, expiresIn time.Duration) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "u1",
		"email":   "rider@motohub.com",
		"role":    models.RoleModerator,
		"exp":     time.Now().Add(expiresIn).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func protectedRouter(legacy LegacyResolver) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", AuthMiddleware(testSecret, legacy), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetString("user_id"),
			"role":    c.GetString("role"),
		})
	})
	return r
}

func doGet(r *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("ValidJWT", func(t *testing.T) {
		r := protectedRouter(nil)
		w := doGet(r, "/me", "Bearer "+signToken(t, testSecret, time.Hour))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":"u1"`)
		assert.Contains(t, w.Body.String(), `"role":"moderator"`)
	})

	t.Run("MissingHeader", func(t *testing.T) {
		r := protectedRouter(nil)
		w := doGet(r, "/me", "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("MalformedHeader", func(t *testing.T) {
		r := protectedRouter(nil)
		w := doGet(r, "/me", "Token abc")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("ExpiredJWT", func(t *testing.T) {
		r := protectedRouter(nil)
		w := doGet(r, "/me", "Bearer "+signToken(t, testSecret, -time.Hour))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		r := protectedRouter(nil)
		w := doGet(r, "/me", "Bearer "+signToken(t, "other-secret", time.Hour))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("LegacySessionToken", func(t *testing.T) {
		legacy := func(token string) (*models.User, error) {
			if token == "legacy-session-1" {
				return &models.User{ID: "u2", Email: "old@motohub.com", Role: models.RoleUser}, nil
			}
			return nil, errors.New("not found")
		}

		r := protectedRouter(legacy)
		w := doGet(r, "/me", "Bearer legacy-session-1")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":"u2"`)
	})

	t.Run("UnknownLegacyToken", func(t *testing.T) {
		legacy := func(token string) (*models.User, error) {
			return nil, errors.New("not found")
		}

		r := protectedRouter(legacy)
		w := doGet(r, "/me", "Bearer bogus")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestOptionalAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/log", OptionalAuth(testSecret, nil), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id")})
	})

	t.Run("AnonymousPassesThrough", func(t *testing.T) {
		w := doGet(r, "/log", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":""`)
	})

	t.Run("InvalidTokenStillPasses", func(t *testing.T) {
		w := doGet(r, "/log", "Bearer garbage")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":""`)
	})

	t.Run("ValidTokenAttributes", func(t *testing.T) {
		w := doGet(r, "/log", "Bearer "+signToken(t, testSecret, time.Hour))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":"u1"`)
	})
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	admin := r.Group("/admin")
	admin.Use(AuthMiddleware(testSecret, nil), RequireRole(models.RoleAdmin))
	admin.GET("/users", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	t.Run("WrongRoleIsForbidden", func(t *testing.T) {
		// Token carries the moderator role
		w := doGet(r, "/admin/users", "Bearer "+signToken(t, testSecret, time.Hour))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("NoCredentialIsUnauthorized", func(t *testing.T) {
		w := doGet(r, "/admin/users", "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
