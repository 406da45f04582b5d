package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rafaeldias2025/oficial-27/internal/models"
)

func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	user, err := handler.authenticateRequest(c)
	if err != nil {
		return handler.apiError(c, fiber.StatusUnauthorized, "error.unauthorized")
	}
	if user.Status != "" && user.Status != models.StatusActive {
		return handler.apiError(c, fiber.StatusForbidden, "error.user_inactive")
	}

	c.Locals(contextUserKey, user)
	return c.Next()
}

// AdminOnly must run after AuthRequired. The role is read from the stored
// profile loaded by AuthRequired, never from the token claims.
func (handler *Handler) AdminOnly(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return handler.apiError(c, fiber.StatusUnauthorized, "error.unauthorized")
	}
	if !user.IsAdmin() {
		return handler.apiError(c, fiber.StatusForbidden, "error.forbidden")
	}
	return c.Next()
}
