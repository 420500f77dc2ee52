package server

import (
	"errors"
	"log/slog"

	"healthtrack/internal/middleware"
	"healthtrack/internal/models"

	"github.com/gofiber/fiber/v2"
)

// currentUserID returns the ID stored by the auth middleware.
func currentUserID(c *fiber.Ctx) uint {
	id, _ := c.Locals("userID").(uint)
	return id
}

// parseBody decodes a JSON body into dst. An empty body leaves dst untouched.
func parseBody(c *fiber.Ctx, dst any) error {
	body := c.Body()
	if len(body) == 0 {
		return nil
	}
	if err := c.App().Config().JSONDecoder(body, dst); err != nil {
		return models.NewValidationError("Invalid request body")
	}
	return nil
}

// mapServiceError writes the response for an error returned by a service.
func mapServiceError(c *fiber.Ctx, err error) error {
	var appErr *models.AppError
	if !errors.As(err, &appErr) {
		middleware.Logger.ErrorContext(c.UserContext(), "unexpected error", slog.String("error", err.Error()))
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	switch appErr.Code {
	case models.CodeConflict, models.CodeValidation, models.CodeInvalidCredentials:
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	case models.CodeNotFound:
		return models.RespondWithError(c, fiber.StatusNotFound, err)
	case models.CodeMissingToken:
		return models.RespondWithError(c, fiber.StatusUnauthorized, err)
	case models.CodeInvalidToken:
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	default:
		middleware.Logger.ErrorContext(c.UserContext(), appErr.Message,
			slog.String("code", appErr.Code),
			slog.Any("error", appErr.Err),
		)
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
}
