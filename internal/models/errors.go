package models

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error codes carried in API error bodies.
const (
	CodeConflict           = "VALIDATION_CONFLICT"
	CodeValidation         = "VALIDATION_ERROR"
	CodeNotFound           = "NOT_FOUND"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeMissingToken       = "MISSING_TOKEN"
	CodeInvalidToken       = "INVALID_TOKEN"
	CodeStorage            = "STORAGE_ERROR"
)

// ErrorResponse represents a standardized API error response
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// AppError represents a custom application error
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Predefined error constructors
func NewNotFoundError(message string) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: message,
	}
}

func NewConflictError(message string) *AppError {
	return &AppError{
		Code:    CodeConflict,
		Message: message,
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: message,
	}
}

func NewInvalidCredentialsError() *AppError {
	return &AppError{
		Code:    CodeInvalidCredentials,
		Message: "Invalid Credentials",
	}
}

func NewMissingTokenError() *AppError {
	return &AppError{
		Code:    CodeMissingToken,
		Message: "Access Denied",
	}
}

func NewInvalidTokenError(err error) *AppError {
	return &AppError{
		Code:    CodeInvalidToken,
		Message: "Invalid Token",
		Err:     err,
	}
}

// NewStorageError wraps a store failure. message is what the client sees.
func NewStorageError(message string, err error) *AppError {
	return &AppError{
		Code:    CodeStorage,
		Message: message,
		Err:     err,
	}
}

// HasCode reports whether err is an *AppError with the given code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// RespondWithError writes a {message, code} body. The wrapped cause is never exposed.
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	var response ErrorResponse

	var appErr *AppError
	if errors.As(err, &appErr) {
		response = ErrorResponse{
			Message: appErr.Message,
			Code:    appErr.Code,
		}
	} else {
		response = ErrorResponse{
			Message: "Server Error",
		}
	}

	return c.Status(status).JSON(response)
}
