package handler

import (
	"fmt"
	"io/fs"
	"net/http"

	"github.com/deppfellow/blog-posts/internal/server"
	"github.com/labstack/echo/v4"
)

// OpenAPIHandler serves the API documentation page. The page loads its
// document from /static/openapi.json.
type OpenAPIHandler struct {
	Handler
	assets fs.FS
}

// NewOpenAPIHandler reads the page from assets, normally static.FS.
func NewOpenAPIHandler(s *server.Server, assets fs.FS) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
		assets:  assets,
	}
}

// ServeOpenAPIUI writes openapi.html uncached so doc edits show up at once.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	page, err := fs.ReadFile(h.assets, "openapi.html")
	if err != nil {
		return fmt.Errorf("failed to read OpenAPI UI template: %w", err)
	}

	c.Response().Header().Set("Cache-Control", "no-cache")
	return c.HTMLBlob(http.StatusOK, page)
}
