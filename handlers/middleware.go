package handlers

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/testmaster-app/testmaster/logging"
)

// SecurityHeaders sets the response headers every page carries. All assets
// are served from this origin.
func SecurityHeaders() echo.MiddlewareFunc {
	return middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "SAMEORIGIN",
		HSTSMaxAge:            31536000,
		ContentSecurityPolicy: "default-src 'self'; img-src 'self' data:",
		ReferrerPolicy:        "strict-origin-when-cross-origin",
	})
}

// RequestID tags each request with a UUID unless the client sent one.
func RequestID() echo.MiddlewareFunc {
	return middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	})
}

// DevOnly hides a route unless dev mode is on.
func (h *Handlers) DevOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !h.config.Server.DevMode {
			logging.DebugLogger.Printf("Dev route %s requested outside dev mode", c.Request().URL.Path)
			return echo.ErrNotFound
		}
		return next(c)
	}
}
