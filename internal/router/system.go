package router

import (
	"github.com/deppfellow/cookbook/internal/handler"
	"github.com/deppfellow/cookbook/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// registerSystemRoutes registers endpoints that are not part of the recipe
// API: health, Prometheus metrics, the docs UI and its static assets.
func registerSystemRoutes(r *echo.Echo, s *server.Server, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)

	r.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(s.Registry, promhttp.HandlerOpts{
		Registry: s.Registry,
	})))

	// Serves openapi.json (and the UI page) from the binary.
	r.StaticFS("/static", echo.MustSubFS(handler.StaticFiles, "static"))

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
