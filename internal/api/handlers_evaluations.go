package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rafaeldias2025/oficial-27/internal/models"
	"github.com/rafaeldias2025/oficial-27/internal/services"
)

// GetEvaluation accepts any day of the week; the evaluation is keyed on the
// Sunday that opens it.
func (handler *Handler) GetEvaluation(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return handler.apiError(c, fiber.StatusUnauthorized, "error.unauthorized")
	}

	day, err := parseDayParam(c.Params("week"), handler.location)
	if err != nil {
		return handler.apiError(c, fiber.StatusBadRequest, "error.invalid_date")
	}

	evaluation, found, err := handler.evaluationService.Fetch(user.ID, day, handler.location)
	if err != nil {
		return handler.respondEvaluationError(c, err)
	}
	return c.JSON(fiber.Map{
		"evaluation":        evaluation,
		"saved":             found,
		"performance_items": services.PerformanceItems,
	})
}

func (handler *Handler) SaveEvaluation(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return handler.apiError(c, fiber.StatusUnauthorized, "error.unauthorized")
	}

	day, err := parseDayParam(c.Params("week"), handler.location)
	if err != nil {
		return handler.apiError(c, fiber.StatusBadRequest, "error.invalid_date")
	}

	input := models.WeeklyEvaluation{}
	if err := c.BodyParser(&input); err != nil {
		return handler.apiError(c, fiber.StatusBadRequest, "error.invalid_json")
	}

	evaluation, err := handler.evaluationService.Save(user.ID, day, input, handler.location)
	if err != nil {
		return handler.respondEvaluationError(c, err)
	}
	return c.JSON(evaluation)
}

func (handler *Handler) GetEvaluationStats(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return handler.apiError(c, fiber.StatusUnauthorized, "error.unauthorized")
	}

	stats, err := handler.evaluationService.Stats(user.ID)
	if err != nil {
		return handler.respondEvaluationError(c, err)
	}
	return c.JSON(stats)
}

func (handler *Handler) respondEvaluationError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrEvaluationInvalid):
		return handler.apiError(c, fiber.StatusBadRequest, "error.evaluation_invalid")
	case errors.Is(err, services.ErrEvaluationLoadFailed):
		return handler.apiError(c, fiber.StatusInternalServerError, "error.evaluation_load_failed")
	case errors.Is(err, services.ErrEvaluationSaveFailed):
		return handler.apiError(c, fiber.StatusInternalServerError, "error.evaluation_save_failed")
	default:
		return handler.apiError(c, fiber.StatusInternalServerError, "error.internal")
	}
}
