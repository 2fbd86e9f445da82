package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/errors"
	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/model"
	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/service"
)

// ChurchHandler handles church directory endpoints. List and Get are
// public; writes are admin-only.
type ChurchHandler struct {
	svc service.ChurchService
}

// NewChurchHandler creates a new church handler.
func NewChurchHandler(svc service.ChurchService) *ChurchHandler {
	return &ChurchHandler{svc: svc}
}

// CreateChurchRequest represents a church create payload.
type CreateChurchRequest struct {
	Name          string   `json:"name" validate:"required"`
	Abbreviation  *string  `json:"abbreviation,omitempty"`
	Description   *string  `json:"description,omitempty"`
	Address       *string  `json:"address,omitempty"`
	Latitude      *float64 `json:"latitude,omitempty" validate:"omitempty,gte=-90,lte=90"`
	Longitude     *float64 `json:"longitude,omitempty" validate:"omitempty,gte=-180,lte=180"`
	Email         *string  `json:"email,omitempty" validate:"omitempty,email"`
	ContactNumber *string  `json:"contact_number,omitempty"`
	ImageURL      *string  `json:"image_url,omitempty"`
}

// UpdateChurchRequest represents a partial church update payload. Absent
// fields are left unchanged.
type UpdateChurchRequest struct {
	Name          *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	Abbreviation  *string  `json:"abbreviation,omitempty"`
	Description   *string  `json:"description,omitempty"`
	Address       *string  `json:"address,omitempty"`
	Latitude      *float64 `json:"latitude,omitempty" validate:"omitempty,gte=-90,lte=90"`
	Longitude     *float64 `json:"longitude,omitempty" validate:"omitempty,gte=-180,lte=180"`
	Email         *string  `json:"email,omitempty" validate:"omitempty,email"`
	ContactNumber *string  `json:"contact_number,omitempty"`
	ImageURL      *string  `json:"image_url,omitempty"`
}

func (r *UpdateChurchRequest) changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if r.Name != nil {
		changes["name"] = *r.Name
	}
	if r.Abbreviation != nil {
		changes["abbreviation"] = *r.Abbreviation
	}
	if r.Description != nil {
		changes["description"] = *r.Description
	}
	if r.Address != nil {
		changes["address"] = *r.Address
	}
	if r.Latitude != nil {
		changes["latitude"] = *r.Latitude
	}
	if r.Longitude != nil {
		changes["longitude"] = *r.Longitude
	}
	if r.Email != nil {
		changes["email"] = *r.Email
	}
	if r.ContactNumber != nil {
		changes["contact_number"] = *r.ContactNumber
	}
	if r.ImageURL != nil {
		changes["image_url"] = *r.ImageURL
	}
	return changes
}

// List godoc
// @Summary List churches, optionally filtered by a search query
// @Tags churches
// @Produce json
// @Param search query string false "Match against name, address, email"
// @Success 200 {array} model.Church
// @Failure 500 {object} errors.ErrorResponse
// @Router /churches [get]
func (h *ChurchHandler) List(c echo.Context) error {
	churches, err := h.svc.List(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, churches)
}

// Get godoc
// @Summary Get one church
// @Tags churches
// @Produce json
// @Param id path int true "Church ID"
// @Success 200 {object} model.Church
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /churches/{id} [get]
func (h *ChurchHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	church, err := h.svc.Get(c.Request().Context(), uint(id))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, church)
}

// Create godoc
// @Summary Create a church
// @Tags churches
// @Accept json
// @Produce json
// @Param request body CreateChurchRequest true "Church payload"
// @Success 201 {object} model.Church
// @Failure 400 {object} errors.ValidationResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /churches [post]
func (h *ChurchHandler) Create(c echo.Context) error {
	var req CreateChurchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.NewValidationResponse(err))
	}

	church, err := h.svc.Create(c.Request().Context(), &model.Church{
		Name:          req.Name,
		Abbreviation:  req.Abbreviation,
		Description:   req.Description,
		Address:       req.Address,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		Email:         req.Email,
		ContactNumber: req.ContactNumber,
		ImageURL:      req.ImageURL,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, church)
}

// Update godoc
// @Summary Update a church
// @Tags churches
// @Accept json
// @Produce json
// @Param id path int true "Church ID"
// @Param request body UpdateChurchRequest true "Partial church payload"
// @Success 200 {object} model.Church
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /churches/{id} [put]
func (h *ChurchHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req UpdateChurchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.NewValidationResponse(err))
	}

	church, err := h.svc.Update(c.Request().Context(), uint(id), req.changes())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, church)
}

// Delete godoc
// @Summary Delete a church
// @Tags churches
// @Produce json
// @Param id path int true "Church ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /churches/{id} [delete]
func (h *ChurchHandler) Delete(c echo.Context) error {
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
