package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/errors"
	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/model"
	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/service"
)

// ContactHandler handles contact-form endpoints. Create is public; list,
// get, and delete are dashboard operations.
type ContactHandler struct {
	svc service.ContactService
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(svc service.ContactService) *ContactHandler {
	return &ContactHandler{svc: svc}
}

// CreateContactRequest represents a public contact-form submission.
type CreateContactRequest struct {
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	ContactNumber string `json:"contactNumber" validate:"required"`
	Description   string `json:"description" validate:"required"`
}

// Create godoc
// @Summary Submit the public contact form
// @Tags contact-us
// @Accept json
// @Produce json
// @Param request body CreateContactRequest true "Submission"
// @Success 201 {object} model.ContactSubmission
// @Failure 400 {object} errors.ValidationResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /contact-us [post]
func (h *ContactHandler) Create(c echo.Context) error {
	var req CreateContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.NewValidationResponse(err))
	}

	submission, err := h.svc.Create(c.Request().Context(), &model.ContactSubmission{
		Name:          req.Name,
		Email:         req.Email,
		ContactNumber: req.ContactNumber,
		Description:   req.Description,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, submission)
}

// List godoc
// @Summary List contact submissions
// @Tags contact-us
// @Produce json
// @Success 200 {array} model.ContactSubmission
// @Failure 500 {object} errors.ErrorResponse
// @Router /contact-us [get]
func (h *ContactHandler) List(c echo.Context) error {
	submissions, err := h.svc.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, submissions)
}

// Get godoc
// @Summary Get one contact submission
// @Tags contact-us
// @Produce json
// @Param id path int true "Submission ID"
// @Success 200 {object} model.ContactSubmission
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /contact-us/{id} [get]
func (h *ContactHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	submission, err := h.svc.Get(c.Request().Context(), uint(id))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, submission)
}

// Delete godoc
// @Summary Delete a contact submission
// @Tags contact-us
// @Produce json
// @Param id path int true "Submission ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /contact-us/{id} [delete]
func (h *ContactHandler) Delete(c echo.Context) error {
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
