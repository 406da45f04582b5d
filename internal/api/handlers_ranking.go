package api

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rafaeldias2025/oficial-27/internal/scoring"
	"github.com/rafaeldias2025/oficial-27/internal/services"
)

// GetWeeklyRanking ranks the default window ending today, or the explicit
// inclusive from..to range when both are given.
func (handler *Handler) GetWeeklyRanking(c *fiber.Ctx) error {
	rawFrom := strings.TrimSpace(c.Query("from"))
	rawTo := strings.TrimSpace(c.Query("to"))

	var (
		period scoring.RankingPeriod
		err    error
	)
	switch {
	case rawFrom == "" && rawTo == "":
		period, err = handler.rankingService.WeeklyRanking(time.Now(), handler.location)
	case rawFrom == "" || rawTo == "":
		return handler.apiError(c, fiber.StatusBadRequest, "error.invalid_range")
	default:
		from, fromErr := parseDayParam(rawFrom, handler.location)
		to, toErr := parseDayParam(rawTo, handler.location)
		if fromErr != nil || toErr != nil {
			return handler.apiError(c, fiber.StatusBadRequest, "error.invalid_date")
		}
		period, err = handler.rankingService.RankingForRange(from, to, handler.location)
	}

	if errors.Is(err, services.ErrInvalidRankingRange) {
		return handler.apiError(c, fiber.StatusBadRequest, "error.invalid_range")
	}
	if err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "error.ranking_load_failed")
	}
	return c.JSON(period)
}
