package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/errors"
	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/model"
	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/service"
)

// MinistrySkillHandler handles ministry skill endpoints.
type MinistrySkillHandler struct {
	svc service.MinistrySkillService
}

// NewMinistrySkillHandler creates a new ministry skill handler.
func NewMinistrySkillHandler(svc service.MinistrySkillService) *MinistrySkillHandler {
	return &MinistrySkillHandler{svc: svc}
}

// CreateMinistrySkillRequest represents a skill create payload.
type CreateMinistrySkillRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description,omitempty"`
}

// UpdateMinistrySkillRequest represents a partial skill update payload.
type UpdateMinistrySkillRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Description *string `json:"description,omitempty"`
}

func (r *UpdateMinistrySkillRequest) changes() map[string]interface{} {
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
// @Summary List ministry skills
// @Tags ministry-skills
// @Produce json
// @Success 200 {array} model.MinistrySkill
// @Failure 500 {object} errors.ErrorResponse
// @Router /ministry-skills [get]
func (h *MinistrySkillHandler) List(c echo.Context) error {
	skills, err := h.svc.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, skills)
}

// Get godoc
// @Summary Get one ministry skill
// @Tags ministry-skills
// @Produce json
// @Param id path int true "Skill ID"
// @Success 200 {object} model.MinistrySkill
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /ministry-skills/{id} [get]
func (h *MinistrySkillHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	skill, err := h.svc.Get(c.Request().Context(), uint(id))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, skill)
}

// Create godoc
// @Summary Create a ministry skill
// @Tags ministry-skills
// @Accept json
// @Produce json
// @Param request body CreateMinistrySkillRequest true "Skill payload"
// @Success 201 {object} model.MinistrySkill
// @Failure 400 {object} errors.ValidationResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /ministry-skills [post]
func (h *MinistrySkillHandler) Create(c echo.Context) error {
	var req CreateMinistrySkillRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.NewValidationResponse(err))
	}

	skill, err := h.svc.Create(c.Request().Context(), &model.MinistrySkill{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, skill)
}

// Update godoc
// @Summary Update a ministry skill
// @Tags ministry-skills
// @Accept json
// @Produce json
// @Param id path int true "Skill ID"
// @Param request body UpdateMinistrySkillRequest true "Partial skill payload"
// @Success 200 {object} model.MinistrySkill
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /ministry-skills/{id} [put]
func (h *MinistrySkillHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req UpdateMinistrySkillRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.NewValidationResponse(err))
	}

	skill, err := h.svc.Update(c.Request().Context(), uint(id), req.changes())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, skill)
}

// Delete godoc
// @Summary Delete a ministry skill
// @Tags ministry-skills
// @Produce json
// @Param id path int true "Skill ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /ministry-skills/{id} [delete]
func (h *MinistrySkillHandler) Delete(c echo.Context) error {
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
