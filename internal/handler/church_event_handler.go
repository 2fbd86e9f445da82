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

// ChurchEventHandler handles event calendar endpoints. List and Get are
// public.
type ChurchEventHandler struct {
	svc service.ChurchEventService
}

// NewChurchEventHandler creates a new church event handler.
func NewChurchEventHandler(svc service.ChurchEventService) *ChurchEventHandler {
	return &ChurchEventHandler{svc: svc}
}

// CreateChurchEventRequest represents an event create payload.
type CreateChurchEventRequest struct {
	Name        string    `json:"name" validate:"required"`
	Description *string   `json:"description,omitempty"`
	Place       string    `json:"place" validate:"required"`
	Datetime    time.Time `json:"datetime" validate:"required"`
	ImageURL    *string   `json:"image_url,omitempty"`
}

// UpdateChurchEventRequest represents a partial event update payload.
type UpdateChurchEventRequest struct {
	Name        *string    `json:"name,omitempty" validate:"omitempty,min=1"`
	Description *string    `json:"description,omitempty"`
	Place       *string    `json:"place,omitempty" validate:"omitempty,min=1"`
	Datetime    *time.Time `json:"datetime,omitempty"`
	ImageURL    *string    `json:"image_url,omitempty"`
}

func (r *UpdateChurchEventRequest) changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if r.Name != nil {
		changes["name"] = *r.Name
	}
	if r.Description != nil {
		changes["description"] = *r.Description
	}
	if r.Place != nil {
		changes["place"] = *r.Place
	}
	if r.Datetime != nil {
		changes["datetime"] = *r.Datetime
	}
	if r.ImageURL != nil {
		changes["image_url"] = *r.ImageURL
	}
	return changes
}

// List godoc
// @Summary List church events
// @Tags church-events
// @Produce json
// @Success 200 {array} model.ChurchEvent
// @Failure 500 {object} errors.ErrorResponse
// @Router /church-events [get]
func (h *ChurchEventHandler) List(c echo.Context) error {
	events, err := h.svc.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, events)
}

// Get godoc
// @Summary Get one church event
// @Tags church-events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} model.ChurchEvent
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /church-events/{id} [get]
func (h *ChurchEventHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	event, err := h.svc.Get(c.Request().Context(), uint(id))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, event)
}

// Create godoc
// @Summary Create a church event
// @Tags church-events
// @Accept json
// @Produce json
// @Param request body CreateChurchEventRequest true "Event payload"
// @Success 201 {object} model.ChurchEvent
// @Failure 400 {object} errors.ValidationResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /church-events [post]
func (h *ChurchEventHandler) Create(c echo.Context) error {
	var req CreateChurchEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.NewValidationResponse(err))
	}

	event, err := h.svc.Create(c.Request().Context(), &model.ChurchEvent{
		Name:        req.Name,
		Description: req.Description,
		Place:       req.Place,
		Datetime:    req.Datetime,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, event)
}

// Update godoc
// @Summary Update a church event
// @Tags church-events
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param request body UpdateChurchEventRequest true "Partial event payload"
// @Success 200 {object} model.ChurchEvent
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /church-events/{id} [put]
func (h *ChurchEventHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req UpdateChurchEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.NewValidationResponse(err))
	}

	event, err := h.svc.Update(c.Request().Context(), uint(id), req.changes())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, event)
}

// Delete godoc
// @Summary Delete a church event
// @Tags church-events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /church-events/{id} [delete]
func (h *ChurchEventHandler) Delete(c echo.Context) error {
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
