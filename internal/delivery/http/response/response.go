// Package response implements the storefront response envelope. Every
// endpoint answers with a message, an alert flag the frontend uses to pick
// toast styling, and an optional data payload.
package response

import "github.com/labstack/echo/v4"

// Envelope is the unified API response body.
type Envelope struct {
	Message string `json:"message"`
	Alert   bool   `json:"alert"`
	Data    any    `json:"data,omitempty"`
}

// Success writes a 2xx envelope with alert set to true.
func Success(c echo.Context, statusCode int, message string, data any) error {
	return c.JSON(statusCode, Envelope{
		Message: message,
		Alert:   true,
		Data:    data,
	})
}

// Signal writes a 2xx envelope with alert set to false. It reports an
// outcome that is not an error but should not toast as a success either,
// such as signing up with an email that is already registered.
func Signal(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, Envelope{
		Message: message,
		Alert:   false,
	})
}

// Failure writes an error envelope. Alert is always false on failures.
func Failure(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, Envelope{
		Message: message,
		Alert:   false,
	})
}
