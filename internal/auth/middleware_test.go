package auth

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/model"
)

func TestRequireAdminPage(t *testing.T) {
	tokens, err := NewTokenService("test-secret")
	require.NoError(t, err)
	resolver := NewResolver(tokens, false)

	e := echo.New()
	e.GET("/admin/", func(c echo.Context) error {
		return c.String(http.StatusOK, "dashboard")
	}, RequireAdminPage(resolver, "/auth/sign-in"))

	t.Run("anonymous redirected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/auth/sign-in", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("non-admin redirected", func(t *testing.T) {
		token, err := tokens.Issue(2, "user@example.com", model.RoleUser)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/admin/", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
	})

	t.Run("admin passes", func(t *testing.T) {
		token, err := tokens.Issue(1, "admin@example.com", model.RoleAdmin)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/admin/", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "dashboard", rec.Body.String())
	})
}

func TestJWTMiddlewareWithRequireRole(t *testing.T) {
	tokens, err := NewTokenService("test-secret")
	require.NoError(t, err)

	e := echo.New()
	secured := e.Group("/api", JWTMiddleware("test-secret"), RequireRole(model.RoleAdmin))
	secured.GET("/churches", func(c echo.Context) error {
		claims := c.Get(ContextKeyIdentity).(*Claims)
		return c.String(http.StatusOK, fmt.Sprintf("%d:%s:%s", claims.UserID, claims.Email, claims.Role))
	})

	t.Run("missing cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/churches", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "UNAUTHORIZED")
	})

	t.Run("invalid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/churches", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "garbage"})
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
			UserID: 1,
			Email:  "admin@example.com",
			Role:   model.RoleAdmin,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
				IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			},
		})
		signed, err := expired.SignedString([]byte("test-secret"))
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/churches", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: signed})
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong role", func(t *testing.T) {
		token, err := tokens.Issue(2, "user@example.com", model.RoleUser)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/churches", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin passes", func(t *testing.T) {
		token, err := tokens.Issue(1, "admin@example.com", model.RoleAdmin)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/churches", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, fmt.Sprintf("1:admin@example.com:%s", model.RoleAdmin), rec.Body.String())
	})
}
