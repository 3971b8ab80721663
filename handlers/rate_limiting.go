package handlers

import (
	"net"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/testmaster-app/testmaster/logging"
)

// rateLimitExpiry is how long an idle visitor's limiter is kept.
const rateLimitExpiry = 3 * time.Minute

// RateLimiter limits requests per client IP using a token bucket of
// h.config.Security.RateLimit requests per second with RateBurst burst.
func (h *Handlers) RateLimiter() echo.MiddlewareFunc {
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(h.config.Security.RateLimit),
		Burst:     h.config.Security.RateBurst,
		ExpiresIn: rateLimitExpiry,
	})

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Skipper: func(c echo.Context) bool {
			switch c.Path() {
			case "/health", "/ready", "/live", "/metrics":
				return true
			}
			return false
		},
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return JSONError(c, http.StatusForbidden, "Unable to identify client")
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			h.metrics.RateLimited.Inc()
			h.events.LogPageEvent(logging.EventRateLimited, net.ParseIP(identifier), c.Request().URL.Path, false,
				map[string]interface{}{"limit": h.config.Security.RateLimit, "burst": h.config.Security.RateBurst})

			c.Response().Header().Set("Retry-After", "1")
			return JSONError(c, http.StatusTooManyRequests, "Too many requests")
		},
	})
}
