package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/errors"
	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/model"
	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/qr"
	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/service"
)

// MemberHandler handles member registry endpoints.
type MemberHandler struct {
	svc service.MemberService
}

// NewMemberHandler creates a new member handler.
func NewMemberHandler(svc service.MemberService) *MemberHandler {
	return &MemberHandler{svc: svc}
}

// CreateMemberRequest represents a member create payload. Birthdate is an
// RFC 3339 date-time string.
type CreateMemberRequest struct {
	ChurchID      uint       `json:"church_id" validate:"required"`
	FirstName     string     `json:"first_name" validate:"required"`
	LastName      string     `json:"last_name" validate:"required"`
	MiddleName    *string    `json:"middle_name,omitempty"`
	Gender        string     `json:"gender" validate:"required,oneof=male female"`
	Birthdate     *time.Time `json:"birthdate,omitempty"`
	Email         *string    `json:"email,omitempty" validate:"omitempty,email"`
	ContactNumber *string    `json:"contact_number,omitempty"`
	Address       *string    `json:"address,omitempty"`
	Occupation    *string    `json:"occupation,omitempty"`
	ImageURL      *string    `json:"image_url,omitempty"`
}

// UpdateMemberRequest represents a partial member update payload.
type UpdateMemberRequest struct {
	ChurchID      *uint      `json:"church_id,omitempty"`
	FirstName     *string    `json:"first_name,omitempty" validate:"omitempty,min=1"`
	LastName      *string    `json:"last_name,omitempty" validate:"omitempty,min=1"`
	MiddleName    *string    `json:"middle_name,omitempty"`
	Gender        *string    `json:"gender,omitempty" validate:"omitempty,oneof=male female"`
	Birthdate     *time.Time `json:"birthdate,omitempty"`
	Email         *string    `json:"email,omitempty" validate:"omitempty,email"`
	ContactNumber *string    `json:"contact_number,omitempty"`
	Address       *string    `json:"address,omitempty"`
	Occupation    *string    `json:"occupation,omitempty"`
	ImageURL      *string    `json:"image_url,omitempty"`
}

func (r *UpdateMemberRequest) changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if r.ChurchID != nil {
		changes["church_id"] = *r.ChurchID
	}
	if r.FirstName != nil {
		changes["first_name"] = *r.FirstName
	}
	if r.LastName != nil {
		changes["last_name"] = *r.LastName
	}
	if r.MiddleName != nil {
		changes["middle_name"] = *r.MiddleName
	}
	if r.Gender != nil {
		changes["gender"] = *r.Gender
	}
	if r.Birthdate != nil {
		changes["birthdate"] = *r.Birthdate
	}
	if r.Email != nil {
		changes["email"] = *r.Email
	}
	if r.ContactNumber != nil {
		changes["contact_number"] = *r.ContactNumber
	}
	if r.Address != nil {
		changes["address"] = *r.Address
	}
	if r.Occupation != nil {
		changes["occupation"] = *r.Occupation
	}
	if r.ImageURL != nil {
		changes["image_url"] = *r.ImageURL
	}
	return changes
}

// List godoc
// @Summary List members, optionally scoped to one church
// @Tags members
// @Produce json
// @Param churchId query int false "Church ID"
// @Success 200 {array} model.Member
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /members [get]
func (h *MemberHandler) List(c echo.Context) error {
	var churchID uint
	if raw := c.QueryParam("churchId"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid churchId")
		}
		churchID = uint(parsed)
	}

	members, err := h.svc.List(c.Request().Context(), churchID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, members)
}

// Get godoc
// @Summary Get one member
// @Tags members
// @Produce json
// @Param id path int true "Member ID"
// @Success 200 {object} model.Member
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /members/{id} [get]
func (h *MemberHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	member, err := h.svc.Get(c.Request().Context(), uint(id))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, member)
}

// Create godoc
// @Summary Register a member
// @Tags members
// @Accept json
// @Produce json
// @Param request body CreateMemberRequest true "Member payload"
// @Success 201 {object} model.Member
// @Failure 400 {object} errors.ValidationResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /members [post]
func (h *MemberHandler) Create(c echo.Context) error {
	var req CreateMemberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.NewValidationResponse(err))
	}

	member, err := h.svc.Create(c.Request().Context(), &model.Member{
		ChurchID:      req.ChurchID,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		MiddleName:    req.MiddleName,
		Gender:        req.Gender,
		Birthdate:     req.Birthdate,
		Email:         req.Email,
		ContactNumber: req.ContactNumber,
		Address:       req.Address,
		Occupation:    req.Occupation,
		ImageURL:      req.ImageURL,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, member)
}

// Update godoc
// @Summary Update a member
// @Tags members
// @Accept json
// @Produce json
// @Param id path int true "Member ID"
// @Param request body UpdateMemberRequest true "Partial member payload"
// @Success 200 {object} model.Member
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /members/{id} [put]
func (h *MemberHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req UpdateMemberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.NewValidationResponse(err))
	}

	member, err := h.svc.Update(c.Request().Context(), uint(id), req.changes())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, member)
}

// Delete godoc
// @Summary Delete a member
// @Tags members
// @Produce json
// @Param id path int true "Member ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /members/{id} [delete]
func (h *MemberHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := h.svc.Delete(c.Request().Context(), uint(id)); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "deleted"})
}

// Resolve godoc
// @Summary Resolve a scanned member-card payload to a member
// @Tags members
// @Produce json
// @Param payload query string true "Scanned QR payload"
// @Success 200 {object} model.Member
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /members/resolve [get]
func (h *MemberHandler) Resolve(c echo.Context) error {
	payload := c.QueryParam("payload")
	if payload == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "payload is required")
	}

	// Accept both the raw card payload and a bare identifier.
	identifier, ok := qr.ParsePayload(payload)
	if !ok {
		identifier = payload
	}

	member, err := h.svc.GetByQRIdentifier(c.Request().Context(), identifier)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, member)
}

// QRCard godoc
// @Summary Render the member's QR card as PNG
// @Tags members
// @Produce png
// @Param id path int true "Member ID"
// @Success 200 {file} binary
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /members/{id}/qr [get]
func (h *MemberHandler) QRCard(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	member, err := h.svc.Get(c.Request().Context(), uint(id))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	png, err := qr.MemberCard(member.QRIdentifier)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
