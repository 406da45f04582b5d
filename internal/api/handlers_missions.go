package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rafaeldias2025/oficial-27/internal/scoring"
	"github.com/rafaeldias2025/oficial-27/internal/services"
)

// recentScoreDays is the history window, today included, when no range is given.
const recentScoreDays = 7

func (handler *Handler) GetMission(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return handler.apiError(c, fiber.StatusUnauthorized, "error.unauthorized")
	}

	day, err := parseDayParam(c.Params("date"), handler.location)
	if err != nil {
		return handler.apiError(c, fiber.StatusBadRequest, "error.invalid_date")
	}

	result, err := handler.missionService.FetchDay(user.ID, day, handler.location)
	if err != nil {
		return handler.respondMissionError(c, err)
	}
	return c.JSON(handler.localizeMission(c, result))
}

func (handler *Handler) SubmitMission(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return handler.apiError(c, fiber.StatusUnauthorized, "error.unauthorized")
	}

	day, err := parseDayParam(c.Params("date"), handler.location)
	if err != nil {
		return handler.apiError(c, fiber.StatusBadRequest, "error.invalid_date")
	}

	answers := scoring.AnswerSet{}
	if err := c.BodyParser(&answers); err != nil {
		return handler.apiError(c, fiber.StatusBadRequest, "error.invalid_json")
	}

	result, err := handler.missionService.SubmitDay(user.ID, day, answers, handler.location)
	if err != nil {
		return handler.respondMissionError(c, err)
	}
	return c.JSON(handler.localizeMission(c, result))
}

func (handler *Handler) PreviewMission(c *fiber.Ctx) error {
	answers := scoring.AnswerSet{}
	if err := c.BodyParser(&answers); err != nil {
		return handler.apiError(c, fiber.StatusBadRequest, "error.invalid_json")
	}
	return c.JSON(handler.localizeMission(c, handler.missionService.Preview(answers)))
}

func (handler *Handler) GetScoreHistory(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return handler.apiError(c, fiber.StatusUnauthorized, "error.unauthorized")
	}

	if c.Query("from") == "" && c.Query("to") == "" {
		scores, err := handler.missionService.RecentHistory(user.ID, recentScoreDays, handler.location)
		if err != nil {
			return handler.respondMissionError(c, err)
		}
		return c.JSON(scores)
	}

	from, to, err := parseDayRangeQuery(c, handler.location, recentScoreDays)
	if err != nil {
		return handler.apiError(c, fiber.StatusBadRequest, "error.invalid_date")
	}

	scores, err := handler.missionService.History(user.ID, from, to, handler.location)
	if err != nil {
		return handler.respondMissionError(c, err)
	}
	return c.JSON(scores)
}

func (handler *Handler) GetMissionOptions(c *fiber.Ctx) error {
	return c.JSON(scoring.MissionOptions())
}

func (handler *Handler) GetFeedback(c *fiber.Ctx) error {
	total, err := c.ParamsInt("total")
	if err != nil {
		return handler.apiError(c, fiber.StatusBadRequest, "error.invalid_total")
	}
	return c.JSON(handler.localizeFeedback(c, scoring.Classify(total)))
}

func (handler *Handler) localizeMission(c *fiber.Ctx, result services.MissionResult) services.MissionResult {
	result.Feedback = handler.localizeFeedback(c, result.Feedback)
	return result
}

func (handler *Handler) localizeFeedback(c *fiber.Ctx, feedback scoring.Feedback) scoring.Feedback {
	if label := handler.translate(c, feedback.LabelKey); label != feedback.LabelKey {
		feedback.Label = label
	}
	if message := handler.translate(c, feedback.MessageKey); message != feedback.MessageKey {
		feedback.Message = message
	}
	return feedback
}

func (handler *Handler) respondMissionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, scoring.ErrInvalidAnswer):
		return handler.apiError(c, fiber.StatusBadRequest, "error.invalid_answers")
	case errors.Is(err, services.ErrMissionFutureDay):
		return handler.apiError(c, fiber.StatusBadRequest, "error.future_day")
	case errors.Is(err, services.ErrInvalidScoreRange):
		return handler.apiError(c, fiber.StatusBadRequest, "error.invalid_range")
	case errors.Is(err, services.ErrMissionLoadFailed):
		return handler.apiError(c, fiber.StatusInternalServerError, "error.mission_load_failed")
	case errors.Is(err, services.ErrMissionSaveFailed):
		return handler.apiError(c, fiber.StatusInternalServerError, "error.mission_save_failed")
	case errors.Is(err, services.ErrScoreLoadFailed):
		return handler.apiError(c, fiber.StatusInternalServerError, "error.score_load_failed")
	default:
		return handler.apiError(c, fiber.StatusInternalServerError, "error.internal")
	}
}
