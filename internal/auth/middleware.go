package auth

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/errors"
	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/model"
)

// ContextKeyIdentity is where guards store the resolved *Claims on the echo
// context.
const ContextKeyIdentity = "identity"

// apiClaims is the claims shape echo-jwt decodes. echo-jwt verifies with
// jwt/v5 while TokenService signs with jwt/v4; both read the same HS256
// payload, so this type must stay field-for-field identical to Claims.
type apiClaims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// JWTMiddleware builds the echo-jwt middleware for admin API routes. The
// token is looked up in the session cookie; a missing or invalid token is a
// 401 JSON response, never a redirect.
func JWTMiddleware(secret string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(secret),
		TokenLookup: "cookie:" + SessionCookieName,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return &apiClaims{}
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusUnauthorized, errors.ErrorResponse{
				Error: "authentication required",
				Code:  "UNAUTHORIZED",
			})
		},
	})
}

// RequireRole checks the role claim set by JWTMiddleware and rejects
// everything else with 403. The matching claims are stashed on the context
// for handlers.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return c.JSON(http.StatusUnauthorized, errors.ErrorResponse{
					Error: "authentication required",
					Code:  "UNAUTHORIZED",
				})
			}
			claims, ok := token.Claims.(*apiClaims)
			if !ok || claims.Role != role {
				return c.JSON(http.StatusForbidden, errors.ErrorResponse{
					Error: "insufficient permissions",
					Code:  "FORBIDDEN",
				})
			}
			c.Set(ContextKeyIdentity, &Claims{
				UserID: claims.UserID,
				Email:  claims.Email,
				Role:   claims.Role,
			})
			return next(c)
		}
	}
}

// RequireAdminPage guards browser-facing admin paths. A request without an
// admin identity is redirected to the sign-in page; the denial is final for
// that request.
func RequireAdminPage(resolver *Resolver, loginPath string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := resolver.Identity(c)
			if !ok || claims.Role != model.RoleAdmin {
				return c.Redirect(http.StatusSeeOther, loginPath)
			}
			c.Set(ContextKeyIdentity, claims)
			return next(c)
		}
	}
}
