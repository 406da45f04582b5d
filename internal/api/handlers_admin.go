package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rafaeldias2025/oficial-27/internal/services"
)

func (handler *Handler) AdminListUsers(c *fiber.Ctx) error {
	users, err := handler.adminService.ListUsers()
	if err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "error.internal")
	}
	return c.JSON(users)
}

func (handler *Handler) AdminUserScores(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("id")
	if err != nil || userID <= 0 {
		return handler.apiError(c, fiber.StatusBadRequest, "error.user_not_found")
	}

	from, to, err := parseDayRangeQuery(c, handler.location, recentScoreDays)
	if err != nil {
		return handler.apiError(c, fiber.StatusBadRequest, "error.invalid_date")
	}

	scores, err := handler.adminService.UserScores(uint(userID), from, to, handler.location)
	if errors.Is(err, services.ErrUserNotFound) {
		return handler.apiError(c, fiber.StatusNotFound, "error.user_not_found")
	}
	if err != nil {
		return handler.respondMissionError(c, err)
	}
	return c.JSON(scores)
}
