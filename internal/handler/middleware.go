package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jnvillamor/blogsite/internal/service"
)

const userIDKey = "userID"

// RequireAuth extracts the bearer access token, verifies it and puts
// the authenticated user id into the request locals.
func RequireAuth(tokens service.TokenGenerator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing or malformed bearer token"})
		}

		userID, kind, err := tokens.Verify(parts[1])
		if err != nil {
			return respondError(c, err)
		}
		if kind != service.TokenKindAccess {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
		}

		c.Locals(userIDKey, userID)

		return c.Next()
	}
}

// CurrentUserID returns the id set by RequireAuth.
func CurrentUserID(c *fiber.Ctx) uuid.UUID {
	if id, ok := c.Locals(userIDKey).(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}
