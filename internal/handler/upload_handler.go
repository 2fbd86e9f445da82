package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/errors"
	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/storage"
	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/upload"
)

// UploadHandler fronts the object-storage gateway with the upload guard:
// rate limit first, then file metadata validation, then a presigned URL.
type UploadHandler struct {
	gateway      *storage.Gateway
	limiter      *upload.RateLimiter
	allowedTypes []string
	maxBytes     int64
}

// NewUploadHandler creates a new upload handler.
func NewUploadHandler(gateway *storage.Gateway, limiter *upload.RateLimiter, allowedTypes []string, maxBytes int64) *UploadHandler {
	return &UploadHandler{
		gateway:      gateway,
		limiter:      limiter,
		allowedTypes: allowedTypes,
		maxBytes:     maxBytes,
	}
}

// PresignUploadRequest describes the file the client intends to upload.
type PresignUploadRequest struct {
	Filename    string `json:"filename" validate:"required"`
	ContentType string `json:"content_type" validate:"required"`
	Size        int64  `json:"size" validate:"required,gt=0"`
}

// PresignUploadResponse carries the key to store and the URL to PUT to.
type PresignUploadResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// Presign godoc
// @Summary Issue a presigned upload URL
// @Tags uploads
// @Accept json
// @Produce json
// @Param request body PresignUploadRequest true "Upload intent"
// @Success 200 {object} PresignUploadResponse
// @Failure 400 {object} errors.ValidationResponse
// @Failure 429 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /upload/presign [post]
func (h *UploadHandler) Presign(c echo.Context) error {
	if ok, retryAfter := h.limiter.Allow(c.RealIP()); !ok {
		c.Response().Header().Set("Retry-After", strconv.Itoa(int(retryAfter.Seconds())+1))
		return c.JSON(http.StatusTooManyRequests, errors.ErrorResponse{
			Error: "too many upload requests",
			Code:  "RATE_LIMITED",
		})
	}

	var req PresignUploadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.NewValidationResponse(err))
	}

	if err := upload.ValidateFile(req.Filename, req.ContentType, req.Size, h.allowedTypes, h.maxBytes); err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "INVALID_FILE",
		})
	}

	key, url, err := h.gateway.PresignUpload(c.Request().Context(), req.ContentType)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, PresignUploadResponse{Key: key, URL: url})
}

// DownloadURL godoc
// @Summary Issue a presigned download URL for a stored object
// @Tags uploads
// @Produce json
// @Param key query string true "Object key"
// @Param ttl query int false "TTL in seconds, clamped to 24h"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /upload/download-url [get]
func (h *UploadHandler) DownloadURL(c echo.Context) error {
	key := c.QueryParam("key")
	if key == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "key is required")
	}

	var ttl time.Duration
	if raw := c.QueryParam("ttl"); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid ttl")
		}
		ttl = time.Duration(seconds) * time.Second
	}

	url, err := h.gateway.PresignDownload(c.Request().Context(), key, ttl)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{"url": url})
}

// Delete godoc
// @Summary Delete a stored object
// @Tags uploads
// @Produce json
// @Param key query string true "Object key"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /upload [delete]
func (h *UploadHandler) Delete(c echo.Context) error {
	key := c.QueryParam("key")
	if key == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "key is required")
	}

	if err := h.gateway.Delete(c.Request().Context(), key); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "deleted"})
}
