// Package middleware contains the HTTP middlewares for the storefront server.
package middleware

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware converts errors escaping the handlers into the response
// envelope. Internal failures keep their detail in the server log only.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates the error handling middleware.
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			// Store and payment-gateway failures carry internal detail;
			// log it in full and answer with the generic message only.
			m.logger.Error("Request failed",
				slog.String("error_code", appErr.ErrorCode()),
				slog.String("error", err.Error()),
				slog.String("details", appErr.Details()),
				slog.String("path", c.Request().URL.Path),
				slog.String("method", c.Request().Method),
			)
			response.Failure(c, appErr.HTTPCode(), appErr.Message())

			return
		}

		message := appErr.Message()
		if details := appErr.Details(); details != "" {
			message = message + ": " + details
		}
		response.Failure(c, appErr.HTTPCode(), message)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message, ok := httpErr.Message.(string)
		if !ok {
			message = http.StatusText(httpErr.Code)
		}
		response.Failure(c, httpErr.Code, message)

		return
	}

	m.logger.Error("Unhandled error",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	response.Failure(c, http.StatusInternalServerError, "Internal Server Error")
}
