package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// MessageBody is the body returned on success.
type MessageBody struct {
	Message string `json:"message"`
}

// ErrorBody is the body returned on failure.
type ErrorBody struct {
	Error string `json:"error"`
}

// Success writes a success response with the given status code and message.
func Success(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MessageBody{Message: message})
}

// Error writes an error response with the given status code and message.
func Error(c echo.Context, statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, ErrorBody{Error: message})
}

// BadRequest 400 error
func BadRequest(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, message)
}

// Unauthorized 401 error
func Unauthorized(c echo.Context, message string) error {
	return Error(c, http.StatusUnauthorized, message)
}

// Conflict 409 error
func Conflict(c echo.Context, message string) error {
	return Error(c, http.StatusConflict, message)
}

// InternalServerError 500 error
func InternalServerError(c echo.Context, message string) error {
	return Error(c, http.StatusInternalServerError, message)
}
