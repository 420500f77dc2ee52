package middleware

import (
	"strings"

	"healthtrack/internal/models"

	"github.com/gofiber/fiber/v2"
)

// TokenVerifier resolves a bearer token to the user it was issued for.
type TokenVerifier interface {
	Verify(token string) (uint, error)
}

// AuthRequired rejects requests without a valid bearer token and stores the
// caller's ID in c.Locals("userID").
func AuthRequired(verifier TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized, models.NewMissingTokenError())
		}

		// A bare token without the scheme is accepted too.
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

		userID, err := verifier.Verify(tokenString)
		if err != nil {
			Logger.DebugContext(c.UserContext(), "token rejected", "error", err)
			return models.RespondWithError(c, fiber.StatusBadRequest, models.NewInvalidTokenError(err))
		}

		c.Locals("userID", userID)
		c.SetUserContext(WithUserID(c.UserContext(), userID))

		return c.Next()
	}
}
