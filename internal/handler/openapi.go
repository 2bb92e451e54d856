package handler

import (
	"embed"
	"fmt"
	"net/http"

	"github.com/deppfellow/cookbook/internal/server"
	"github.com/labstack/echo/v4"
)

// StaticFiles holds the docs UI and the OpenAPI document, served under
// /static and /docs.
//
//go:embed static
var StaticFiles embed.FS

// OpenAPIHandler serves the OpenAPI UI for trying the API from a browser.
//
// The UI page loads its JS from a CDN and reads /static/openapi.json.
type OpenAPIHandler struct {
	Handler
}

func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
	}
}

// ServeOpenAPIUI serves static/openapi.html with caching disabled so doc
// updates show up immediately.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	page, err := StaticFiles.ReadFile("static/openapi.html")

	c.Response().Header().Set("Cache-Control", "no-cache")

	if err != nil {
		return fmt.Errorf("failed to read OpenAPI UI template: %w", err)
	}

	if err := c.HTMLBlob(http.StatusOK, page); err != nil {
		return fmt.Errorf("failed to write HTML response: %w", err)
	}

	return nil
}
