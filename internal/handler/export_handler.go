package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/errors"
	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/export"
	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/service"
)

// ExportHandler renders member and minister listings as spreadsheet
// downloads. Rows come from one List call each; a concurrent edit may land
// between the two reads.
type ExportHandler struct {
	members   service.MemberService
	ministers service.MinisterService
	churches  service.ChurchService
}

// NewExportHandler creates a new export handler.
func NewExportHandler(members service.MemberService, ministers service.MinisterService, churches service.ChurchService) *ExportHandler {
	return &ExportHandler{members: members, ministers: ministers, churches: churches}
}

// Members godoc
// @Summary Download the member registry as xlsx
// @Tags exports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Failure 500 {object} errors.ErrorResponse
// @Router /members/export [get]
func (h *ExportHandler) Members(c echo.Context) error {
	ctx := c.Request().Context()

	members, err := h.members.List(ctx, 0)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	churchNames, err := h.churchNames(c)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	f, err := export.Members(members, churchNames)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	setAttachment(c, export.Filename("members", time.Now()))
	return c.Blob(http.StatusOK, export.ContentType, buf.Bytes())
}

// Ministers godoc
// @Summary Download the minister registry as xlsx
// @Tags exports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Failure 500 {object} errors.ErrorResponse
// @Router /ministers/export [get]
func (h *ExportHandler) Ministers(c echo.Context) error {
	ctx := c.Request().Context()

	ministers, err := h.ministers.List(ctx, 0)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	churchNames, err := h.churchNames(c)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	f, err := export.Ministers(ministers, churchNames)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	setAttachment(c, export.Filename("ministers", time.Now()))
	return c.Blob(http.StatusOK, export.ContentType, buf.Bytes())
}

func (h *ExportHandler) churchNames(c echo.Context) (map[uint]string, error) {
	churches, err := h.churches.List(c.Request().Context(), "")
	if err != nil {
		return nil, err
	}
	names := make(map[uint]string, len(churches))
	for _, church := range churches {
		names[church.ID] = church.Name
	}
	return names, nil
}

func setAttachment(c echo.Context, filename string) {
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%s", filename))
}
