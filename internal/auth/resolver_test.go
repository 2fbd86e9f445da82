package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/model"
)

func newResolverContext(t *testing.T, configure func(*http.Request)) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if configure != nil {
		configure(req)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestResolver_Identity_Cookie(t *testing.T) {
	tokens, err := NewTokenService("test-secret")
	require.NoError(t, err)
	resolver := NewResolver(tokens, false)

	token, err := tokens.Issue(7, "admin@example.com", model.RoleAdmin)
	require.NoError(t, err)

	c := newResolverContext(t, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	})

	claims, ok := resolver.Identity(c)
	require.True(t, ok)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, model.RoleAdmin, claims.Role)
}

func TestResolver_Identity_BadCookie(t *testing.T) {
	tokens, err := NewTokenService("test-secret")
	require.NoError(t, err)
	resolver := NewResolver(tokens, false)

	c := newResolverContext(t, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "garbage"})
	})

	claims, ok := resolver.Identity(c)
	assert.False(t, ok)
	assert.Nil(t, claims)
}

func TestResolver_Identity_NoCredentials(t *testing.T) {
	tokens, err := NewTokenService("test-secret")
	require.NoError(t, err)
	resolver := NewResolver(tokens, true)

	claims, ok := resolver.Identity(newResolverContext(t, nil))
	assert.False(t, ok)
	assert.Nil(t, claims)
}

func TestResolver_Identity_ProxyHeaders(t *testing.T) {
	tokens, err := NewTokenService("test-secret")
	require.NoError(t, err)

	tests := []struct {
		name       string
		trust      bool
		email      string
		role       string
		expectOK   bool
		expectRole string
	}{
		{
			name:       "trusted admin headers",
			trust:      true,
			email:      "gw@example.com",
			role:       model.RoleAdmin,
			expectOK:   true,
			expectRole: model.RoleAdmin,
		},
		{
			name:     "headers ignored when trust disabled",
			trust:    false,
			email:    "gw@example.com",
			role:     model.RoleAdmin,
			expectOK: false,
		},
		{
			name:     "unknown role rejected",
			trust:    true,
			email:    "gw@example.com",
			role:     "superuser",
			expectOK: false,
		},
		{
			name:     "missing email rejected",
			trust:    true,
			email:    "",
			role:     model.RoleAdmin,
			expectOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := NewResolver(tokens, tt.trust)
			c := newResolverContext(t, func(req *http.Request) {
				if tt.email != "" {
					req.Header.Set(HeaderAuthEmail, tt.email)
				}
				req.Header.Set(HeaderAuthRole, tt.role)
			})

			claims, ok := resolver.Identity(c)
			if tt.expectOK {
				require.True(t, ok)
				assert.Equal(t, tt.email, claims.Email)
				assert.Equal(t, tt.expectRole, claims.Role)
			} else {
				assert.False(t, ok)
				assert.Nil(t, claims)
			}
		})
	}
}
