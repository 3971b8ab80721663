package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/testmaster-app/testmaster/auth"
	"github.com/testmaster-app/testmaster/monitoring"
	"github.com/testmaster-app/testmaster/static"
)

// RegisterRoutes initializes all routes for the application
func (h *Handlers) RegisterRoutes(e *echo.Echo, health *monitoring.HealthMonitor) {
	// Health and metrics are outside the rate limiter
	e.GET("/health", health.HealthHandler)
	e.GET("/ready", health.ReadinessHandler)
	e.GET("/live", health.LivenessHandler)
	e.GET("/metrics", h.metrics.Handler())

	// Embedded assets
	e.StaticFS("/static", static.Assets())

	// Landing page; a token is optional
	pages := e.Group("", auth.OptionalJWTMiddleware())
	pages.GET("/", h.LandingPage)
	pages.GET("/api/landing", h.LandingJSON)

	// Design-time registry
	e.GET("/__dev/registry", h.DevOnly(h.RegistryEntries))

	e.GET("/favicon.ico", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})
}
