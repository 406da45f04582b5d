package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rafaeldias2025/oficial-27/internal/services"
	"github.com/rafaeldias2025/oficial-27/internal/wheel"
)

// ListWheels returns the catalog with a fresh session id so a client can
// answer all wheels of one session together.
func (handler *Handler) ListWheels(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"wheels":     handler.wheelService.Definitions(),
		"session_id": services.NewWheelSessionID(),
	})
}

func (handler *Handler) GetWheelResponse(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return handler.apiError(c, fiber.StatusUnauthorized, "error.unauthorized")
	}

	view, err := handler.wheelService.Load(user.ID, c.Params("type"), c.Params("session"))
	if err != nil {
		return handler.respondWheelError(c, err)
	}
	return c.JSON(view)
}

func (handler *Handler) SaveWheelResponse(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return handler.apiError(c, fiber.StatusUnauthorized, "error.unauthorized")
	}

	input := wheelInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.apiError(c, fiber.StatusBadRequest, "error.invalid_json")
	}

	view, err := handler.wheelService.Save(user.ID, c.Params("type"), c.Params("session"), input.Responses, input.ReflectionAnswers)
	if err != nil {
		return handler.respondWheelError(c, err)
	}
	return c.JSON(view)
}

func (handler *Handler) respondWheelError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, wheel.ErrUnknownWheelType):
		return handler.apiError(c, fiber.StatusNotFound, "error.wheel_unknown_type")
	case errors.Is(err, services.ErrWheelSessionInvalid),
		errors.Is(err, wheel.ErrUnknownArea),
		errors.Is(err, wheel.ErrUnknownQuestion),
		errors.Is(err, wheel.ErrReflectionLength):
		return handler.apiError(c, fiber.StatusBadRequest, "error.wheel_invalid")
	case errors.Is(err, services.ErrWheelLoadFailed):
		return handler.apiError(c, fiber.StatusInternalServerError, "error.wheel_load_failed")
	case errors.Is(err, services.ErrWheelSaveFailed):
		return handler.apiError(c, fiber.StatusInternalServerError, "error.wheel_save_failed")
	default:
		return handler.apiError(c, fiber.StatusInternalServerError, "error.internal")
	}
}
