package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/auth"
	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/errors"
	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/service"
)

// AuthHandler handles session endpoints.
type AuthHandler struct {
	authService service.AuthService
	resolver    *auth.Resolver
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, resolver *auth.Resolver) *AuthHandler {
	return &AuthHandler{authService: authService, resolver: resolver}
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login godoc
// @Summary Sign in and receive a session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ValidationResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.NewValidationResponse(err))
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	c.SetCookie(sessionCookie(token, auth.SessionTokenExpiry))

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "signed in",
		"user":    user,
	})
}

// Logout godoc
// @Summary Clear the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	// Expiring the cookie is the whole logout: tokens have no server-side
	// revocation and stay valid until expiry.
	c.SetCookie(sessionCookie("", -time.Hour))

	return c.JSON(http.StatusOK, map[string]string{
		"message": "signed out",
	})
}

// Me godoc
// @Summary Return the identity behind the current session
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	claims, ok := h.resolver.Identity(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errors.ErrorResponse{
			Error: "authentication required",
			Code:  "UNAUTHORIZED",
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"id":    claims.UserID,
		"email": claims.Email,
		"role":  claims.Role,
	})
}

func sessionCookie(token string, maxAge time.Duration) *http.Cookie {
	cookie := &http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if maxAge > 0 {
		cookie.MaxAge = int(maxAge.Seconds())
		cookie.Expires = time.Now().Add(maxAge)
	} else {
		// Serialized as Max-Age=0, which deletes the cookie.
		cookie.MaxAge = -1
		cookie.Expires = time.Unix(0, 0)
	}
	return cookie
}
