package response

import (
	"net/http"

	"carhub/internal/domain/entity"
	domainerrors "carhub/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Message string `json:"message"`           // User-friendly error message
	Code    string `json:"code"`              // Machine-readable error code, e.g., "VALIDATION_FAILED"
	Details any    `json:"details,omitempty"` // Additional error context (only for 4xx errors)
}

// TokenResponse is returned by signup and login.
type TokenResponse struct {
	Token string `json:"token"`
}

// MessageResponse carries a plain confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// CarDetailResponse wraps a single car with a confirmation message.
type CarDetailResponse struct {
	Message string      `json:"message"`
	Car     *entity.Car `json:"car"`
}

// DeleteResponse confirms a deletion.
type DeleteResponse struct {
	Msg string `json:"msg"`
}

// Success returns a successful response with the given body
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// Details should not be included for 5xx errors or authentication/authorization errors
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}
	if s, ok := details.(string); ok && s == "" {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Message: message,
		Code:    errorCode,
		Details: details,
	})
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// HandleAppError writes AppErrors directly and hands anything else to the HTTP error handler.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
