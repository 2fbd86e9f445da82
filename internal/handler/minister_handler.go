package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/errors"
	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/model"
	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/service"
)

// MinisterHandler handles minister registry endpoints.
type MinisterHandler struct {
	svc service.MinisterService
}

// NewMinisterHandler creates a new minister handler.
func NewMinisterHandler(svc service.MinisterService) *MinisterHandler {
	return &MinisterHandler{svc: svc}
}

// CreateMinisterRequest represents a minister create payload.
type CreateMinisterRequest struct {
	ChurchID      uint       `json:"church_id" validate:"required"`
	FirstName     string     `json:"first_name" validate:"required"`
	LastName      string     `json:"last_name" validate:"required"`
	MiddleName    *string    `json:"middle_name,omitempty"`
	Suffix        *string    `json:"suffix,omitempty"`
	Gender        string     `json:"gender" validate:"required,oneof=male female"`
	Birthdate     *time.Time `json:"birthdate,omitempty"`
	Email         *string    `json:"email,omitempty" validate:"omitempty,email"`
	ContactNumber *string    `json:"contact_number,omitempty"`
	Address       *string    `json:"address,omitempty"`
	ImageURL      *string    `json:"image_url,omitempty"`
	Biography     *string    `json:"biography,omitempty"`
}

// UpdateMinisterRequest represents a partial minister update payload.
type UpdateMinisterRequest struct {
	ChurchID      *uint      `json:"church_id,omitempty"`
	FirstName     *string    `json:"first_name,omitempty" validate:"omitempty,min=1"`
	LastName      *string    `json:"last_name,omitempty" validate:"omitempty,min=1"`
	MiddleName    *string    `json:"middle_name,omitempty"`
	Suffix        *string    `json:"suffix,omitempty"`
	Gender        *string    `json:"gender,omitempty" validate:"omitempty,oneof=male female"`
	Birthdate     *time.Time `json:"birthdate,omitempty"`
	Email         *string    `json:"email,omitempty" validate:"omitempty,email"`
	ContactNumber *string    `json:"contact_number,omitempty"`
	Address       *string    `json:"address,omitempty"`
	ImageURL      *string    `json:"image_url,omitempty"`
	Biography     *string    `json:"biography,omitempty"`
}

func (r *UpdateMinisterRequest) changes() map[string]interface{} {
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
	if r.Suffix != nil {
		changes["suffix"] = *r.Suffix
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
	if r.ImageURL != nil {
		changes["image_url"] = *r.ImageURL
	}
	if r.Biography != nil {
		changes["biography"] = *r.Biography
	}
	return changes
}

// List godoc
// @Summary List ministers, optionally scoped to one church
// @Tags ministers
// @Produce json
// @Param churchId query int false "Church ID"
// @Success 200 {array} model.Minister
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /ministers [get]
func (h *MinisterHandler) List(c echo.Context) error {
	var churchID uint
	if raw := c.QueryParam("churchId"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid churchId")
		}
		churchID = uint(parsed)
	}

	ministers, err := h.svc.List(c.Request().Context(), churchID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, ministers)
}

// Get godoc
// @Summary Get one minister
// @Tags ministers
// @Produce json
// @Param id path int true "Minister ID"
// @Success 200 {object} model.Minister
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /ministers/{id} [get]
func (h *MinisterHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	minister, err := h.svc.Get(c.Request().Context(), uint(id))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, minister)
}

// Create godoc
// @Summary Register a minister
// @Tags ministers
// @Accept json
// @Produce json
// @Param request body CreateMinisterRequest true "Minister payload"
// @Success 201 {object} model.Minister
// @Failure 400 {object} errors.ValidationResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /ministers [post]
func (h *MinisterHandler) Create(c echo.Context) error {
	var req CreateMinisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.NewValidationResponse(err))
	}

	minister, err := h.svc.Create(c.Request().Context(), &model.Minister{
		ChurchID:      req.ChurchID,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		MiddleName:    req.MiddleName,
		Suffix:        req.Suffix,
		Gender:        req.Gender,
		Birthdate:     req.Birthdate,
		Email:         req.Email,
		ContactNumber: req.ContactNumber,
		Address:       req.Address,
		ImageURL:      req.ImageURL,
		Biography:     req.Biography,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, minister)
}

// Update godoc
// @Summary Update a minister
// @Tags ministers
// @Accept json
// @Produce json
// @Param id path int true "Minister ID"
// @Param request body UpdateMinisterRequest true "Partial minister payload"
// @Success 200 {object} model.Minister
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /ministers/{id} [put]
func (h *MinisterHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req UpdateMinisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.NewValidationResponse(err))
	}

	minister, err := h.svc.Update(c.Request().Context(), uint(id), req.changes())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, minister)
}

// Delete godoc
// @Summary Delete a minister
// @Tags ministers
// @Produce json
// @Param id path int true "Minister ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /ministers/{id} [delete]
func (h *MinisterHandler) Delete(c echo.Context) error {
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
