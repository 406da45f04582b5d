package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rafaeldias2025/oficial-27/internal/models"
	"github.com/rafaeldias2025/oficial-27/internal/services"
)

func (handler *Handler) Register(c *fiber.Ctx) error {
	input := registerInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.apiError(c, fiber.StatusBadRequest, "error.invalid_json")
	}

	user, err := handler.authService.Register(services.RegistrationInput{
		Email:    input.Email,
		Password: input.Password,
		Name:     input.Name,
	})
	if errors.Is(err, services.ErrAuthCredentialsInvalid) {
		return handler.apiError(c, fiber.StatusBadRequest, "error.invalid_credentials")
	}
	if err != nil {
		return handler.respondAuthError(c, err)
	}

	return handler.startSession(c, &user, false, fiber.StatusCreated)
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	input := loginInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.apiError(c, fiber.StatusBadRequest, "error.invalid_json")
	}

	now := time.Now()
	limiterKey := loginLimiterKey(c, input.Email)
	if handler.loginLimiter.blocked(limiterKey, now) {
		return handler.apiError(c, fiber.StatusTooManyRequests, "error.too_many_attempts")
	}

	user, err := handler.authService.Authenticate(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrAuthCredentialsInvalid) {
			handler.loginLimiter.recordFailure(limiterKey, now)
		}
		return handler.respondAuthError(c, err)
	}
	handler.loginLimiter.clear(limiterKey)

	return handler.startSession(c, &user, input.RememberMe, fiber.StatusOK)
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return handler.apiError(c, fiber.StatusUnauthorized, "error.unauthorized")
	}
	return c.JSON(fiber.Map{
		"user":                 user,
		"is_admin":             user.IsAdmin(),
		"must_change_password": user.MustChangePassword,
		"language":             currentLanguage(c),
	})
}

func (handler *Handler) ChangePassword(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return handler.apiError(c, fiber.StatusUnauthorized, "error.unauthorized")
	}

	input := changePasswordInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.apiError(c, fiber.StatusBadRequest, "error.invalid_json")
	}
	if err := handler.authService.ChangePassword(user.ID, input.CurrentPassword, input.NewPassword); err != nil {
		return handler.respondAuthError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) startSession(c *fiber.Ctx, user *models.User, rememberMe bool, status int) error {
	ttl := defaultAuthTokenTTL
	if rememberMe {
		ttl = rememberAuthTokenTTL
	}

	token, expiresAt, err := handler.buildToken(user, ttl)
	if err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "error.internal")
	}
	handler.setAuthCookie(c, token, ttl, rememberMe)

	return c.Status(status).JSON(sessionResponse{
		Token:              token,
		ExpiresAt:          expiresAt.UTC().Format(time.RFC3339),
		MustChangePassword: user.MustChangePassword,
		User:               *user,
	})
}

func (handler *Handler) respondAuthError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrAuthCredentialsInvalid):
		return handler.apiError(c, fiber.StatusUnauthorized, "error.invalid_credentials")
	case errors.Is(err, services.ErrWeakPassword):
		return handler.apiError(c, fiber.StatusBadRequest, "error.weak_password")
	case errors.Is(err, services.ErrEmailAlreadyRegistered):
		return handler.apiError(c, fiber.StatusConflict, "error.email_taken")
	case errors.Is(err, services.ErrUserInactive):
		return handler.apiError(c, fiber.StatusForbidden, "error.user_inactive")
	case errors.Is(err, services.ErrUserNotFound):
		return handler.apiError(c, fiber.StatusNotFound, "error.user_not_found")
	default:
		return handler.apiError(c, fiber.StatusInternalServerError, "error.internal")
	}
}
