package handler

import (
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/errors"
	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/storage"
)

// proxyCacheControl marks proxied images as immutable: keys are random, so
// an object's bytes never change under a key.
const proxyCacheControl = "public, max-age=31536000, immutable"

// externalFetchLimit caps how much of an external image the proxy will
// relay.
const externalFetchLimit = 20 << 20

// ProxyHandler streams images through the server so storage credentials
// and bucket layout stay private.
type ProxyHandler struct {
	gateway *storage.Gateway
	client  *http.Client
}

// NewProxyHandler creates a new image proxy handler.
func NewProxyHandler(gateway *storage.Gateway) *ProxyHandler {
	return &ProxyHandler{
		gateway: gateway,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Image godoc
// @Summary Stream an image from storage or an external URL
// @Tags uploads
// @Produce octet-stream
// @Param key query string false "Object key"
// @Param url query string false "External image URL"
// @Success 200 {file} binary
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /proxy-image [get]
func (h *ProxyHandler) Image(c echo.Context) error {
	if key := c.QueryParam("key"); key != "" {
		return h.fromStorage(c, key)
	}
	if raw := c.QueryParam("url"); raw != "" {
		return h.fromExternal(c, raw)
	}
	return echo.NewHTTPError(http.StatusBadRequest, "key or url is required")
}

func (h *ProxyHandler) fromStorage(c echo.Context, key string) error {
	body, contentType, err := h.gateway.Fetch(c.Request().Context(), key)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	defer body.Close()

	c.Response().Header().Set("Cache-Control", proxyCacheControl)
	return c.Stream(http.StatusOK, contentType, body)
}

func (h *ProxyHandler) fromExternal(c echo.Context, raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid url")
	}

	req, err := http.NewRequestWithContext(c.Request().Context(), http.MethodGet, parsed.String(), nil)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid url")
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return c.JSON(http.StatusBadGateway, errors.ErrorResponse{
			Error: "failed to fetch image",
			Code:  "UPSTREAM_FAILED",
		})
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.JSON(http.StatusNotFound, errors.ErrorResponse{
			Error: errors.ErrObjectNotFound.Error(),
			Code:  "OBJECT_NOT_FOUND",
		})
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.Response().Header().Set("Cache-Control", proxyCacheControl)
	return c.Stream(http.StatusOK, contentType, io.LimitReader(resp.Body, externalFetchLimit))
}
