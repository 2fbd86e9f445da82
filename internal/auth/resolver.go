package auth

import (
	"github.com/labstack/echo/v4"

	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/model"
)

// Headers a trusted upstream gateway may inject once it has already
// authenticated the request. Only honored when TrustProxyHeaders is set.
const (
	HeaderAuthEmail = "X-Auth-Email"
	HeaderAuthRole  = "X-Auth-Role"
)

// Resolver extracts a request identity from the session cookie or, when
// configured, from trusted proxy headers. It never blocks and never errors;
// authorization decisions belong to the caller.
type Resolver struct {
	tokens            *TokenService
	trustProxyHeaders bool
}

// NewResolver creates a request identity resolver.
func NewResolver(tokens *TokenService, trustProxyHeaders bool) *Resolver {
	return &Resolver{tokens: tokens, trustProxyHeaders: trustProxyHeaders}
}

// Identity resolves the request identity, reporting whether one was found.
func (r *Resolver) Identity(c echo.Context) (*Claims, bool) {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		if claims, err := r.tokens.Verify(cookie.Value); err == nil {
			return claims, true
		}
	}

	if r.trustProxyHeaders {
		email := c.Request().Header.Get(HeaderAuthEmail)
		role := c.Request().Header.Get(HeaderAuthRole)
		if email != "" && (role == model.RoleAdmin || role == model.RoleUser) {
			return &Claims{Email: email, Role: role}, true
		}
	}

	return nil, false
}
