package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/errors"
	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/model"
	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/service"
)

// CoverPhotoHandler handles landing-page cover photo endpoints. List is
// public so the site can rotate heroes without a session.
type CoverPhotoHandler struct {
	svc service.CoverPhotoService
}

// NewCoverPhotoHandler creates a new cover photo handler.
func NewCoverPhotoHandler(svc service.CoverPhotoService) *CoverPhotoHandler {
	return &CoverPhotoHandler{svc: svc}
}

// CreateCoverPhotoRequest represents a cover photo create payload.
type CreateCoverPhotoRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description,omitempty"`
	CoverImage  string  `json:"cover_image" validate:"required"`
}

// UpdateCoverPhotoRequest represents a partial cover photo update payload.
type UpdateCoverPhotoRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Description *string `json:"description,omitempty"`
	CoverImage  *string `json:"cover_image,omitempty" validate:"omitempty,min=1"`
}

func (r *UpdateCoverPhotoRequest) changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if r.Name != nil {
		changes["name"] = *r.Name
	}
	if r.Description != nil {
		changes["description"] = *r.Description
	}
	if r.CoverImage != nil {
		changes["cover_image"] = *r.CoverImage
	}
	return changes
}

// List godoc
// @Summary List cover photos
// @Tags church-cover-photos
// @Produce json
// @Success 200 {array} model.ChurchCoverPhoto
// @Failure 500 {object} errors.ErrorResponse
// @Router /church-cover-photos [get]
func (h *CoverPhotoHandler) List(c echo.Context) error {
	photos, err := h.svc.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, photos)
}

// Get godoc
// @Summary Get one cover photo
// @Tags church-cover-photos
// @Produce json
// @Param id path int true "Cover photo ID"
// @Success 200 {object} model.ChurchCoverPhoto
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /church-cover-photos/{id} [get]
func (h *CoverPhotoHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	photo, err := h.svc.Get(c.Request().Context(), uint(id))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, photo)
}

// Create godoc
// @Summary Create a cover photo
// @Tags church-cover-photos
// @Accept json
// @Produce json
// @Param request body CreateCoverPhotoRequest true "Cover photo payload"
// @Success 201 {object} model.ChurchCoverPhoto
// @Failure 400 {object} errors.ValidationResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /church-cover-photos [post]
func (h *CoverPhotoHandler) Create(c echo.Context) error {
	var req CreateCoverPhotoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.NewValidationResponse(err))
	}

	photo, err := h.svc.Create(c.Request().Context(), &model.ChurchCoverPhoto{
		Name:        req.Name,
		Description: req.Description,
		CoverImage:  req.CoverImage,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, photo)
}

// Update godoc
// @Summary Update a cover photo
// @Tags church-cover-photos
// @Accept json
// @Produce json
// @Param id path int true "Cover photo ID"
// @Param request body UpdateCoverPhotoRequest true "Partial cover photo payload"
// @Success 200 {object} model.ChurchCoverPhoto
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /church-cover-photos/{id} [put]
func (h *CoverPhotoHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req UpdateCoverPhotoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.NewValidationResponse(err))
	}

	photo, err := h.svc.Update(c.Request().Context(), uint(id), req.changes())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, photo)
}

// Delete godoc
// @Summary Delete a cover photo
// @Tags church-cover-photos
// @Produce json
// @Param id path int true "Cover photo ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /church-cover-photos/{id} [delete]
func (h *CoverPhotoHandler) Delete(c echo.Context) error {
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
