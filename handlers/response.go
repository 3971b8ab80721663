package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/testmaster-app/testmaster/logging"
)

// APIResponse represents the standard API response structure
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// JSONResponse sends a standard JSON response
func JSONResponse(c echo.Context, status int, message string, data interface{}) error {
	return c.JSON(status, APIResponse{
		Success: status >= 200 && status < 300,
		Message: message,
		Data:    data,
	})
}

// JSONError sends a standard JSON error response
func JSONError(c echo.Context, status int, message string) error {
	return c.JSON(status, APIResponse{Success: false, Message: message})
}

// ErrorHandler reports errors in the API envelope under /api and as plain
// text elsewhere. Internal errors are logged and not echoed to the client.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := http.StatusText(status)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		message = fmt.Sprint(he.Message)
	} else {
		logging.ErrorLogger.Printf("Unhandled error on %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	}

	var writeErr error
	switch {
	case c.Request().Method == http.MethodHead:
		writeErr = c.NoContent(status)
	case strings.HasPrefix(c.Request().URL.Path, "/api/"):
		writeErr = JSONError(c, status, message)
	default:
		writeErr = c.String(status, message)
	}
	if writeErr != nil {
		logging.ErrorLogger.Printf("Failed to write error response: %v", writeErr)
	}
}
