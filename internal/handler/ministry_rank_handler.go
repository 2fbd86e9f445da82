package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/errors"
	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/model"
	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/service"
)

// MinistryRankHandler handles ministry rank endpoints.
type MinistryRankHandler struct {
	svc service.MinistryRankService
}

// NewMinistryRankHandler creates a new ministry rank handler.
func NewMinistryRankHandler(svc service.MinistryRankService) *MinistryRankHandler {
	return &MinistryRankHandler{svc: svc}
}

// CreateMinistryRankRequest represents a rank create payload.
type CreateMinistryRankRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description,omitempty"`
}

// UpdateMinistryRankRequest represents a partial rank update payload.
type UpdateMinistryRankRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Description *string `json:"description,omitempty"`
}

func (r *UpdateMinistryRankRequest) changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if r.Name != nil {
		changes["name"] = *r.Name
	}
	if r.Description != nil {
		changes["description"] = *r.Description
	}
	return changes
}

// List godoc
// @Summary List ministry ranks
// @Tags ministry-ranks
// @Produce json
// @Success 200 {array} model.MinistryRank
// @Failure 500 {object} errors.ErrorResponse
// @Router /ministry-ranks [get]
func (h *MinistryRankHandler) List(c echo.Context) error {
	ranks, err := h.svc.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, ranks)
}

// Get godoc
// @Summary Get one ministry rank
// @Tags ministry-ranks
// @Produce json
// @Param id path int true "Rank ID"
// @Success 200 {object} model.MinistryRank
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /ministry-ranks/{id} [get]
func (h *MinistryRankHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	rank, err := h.svc.Get(c.Request().Context(), uint(id))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, rank)
}

// Create godoc
// @Summary Create a ministry rank
// @Tags ministry-ranks
// @Accept json
// @Produce json
// @Param request body CreateMinistryRankRequest true "Rank payload"
// @Success 201 {object} model.MinistryRank
// @Failure 400 {object} errors.ValidationResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /ministry-ranks [post]
func (h *MinistryRankHandler) Create(c echo.Context) error {
	var req CreateMinistryRankRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.NewValidationResponse(err))
	}

	rank, err := h.svc.Create(c.Request().Context(), &model.MinistryRank{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, rank)
}

// Update godoc
// @Summary Update a ministry rank
// @Tags ministry-ranks
// @Accept json
// @Produce json
// @Param id path int true "Rank ID"
// @Param request body UpdateMinistryRankRequest true "Partial rank payload"
// @Success 200 {object} model.MinistryRank
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /ministry-ranks/{id} [put]
func (h *MinistryRankHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req UpdateMinistryRankRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.NewValidationResponse(err))
	}

	rank, err := h.svc.Update(c.Request().Context(), uint(id), req.changes())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, rank)
}

// Delete godoc
// @Summary Delete a ministry rank
// @Tags ministry-ranks
// @Produce json
// @Param id path int true "Rank ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /ministry-ranks/{id} [delete]
func (h *MinistryRankHandler) Delete(c echo.Context) error {
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
