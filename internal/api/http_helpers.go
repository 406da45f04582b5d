package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rafaeldias2025/oficial-27/internal/services"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// apiError writes a JSON error whose code is the locale key and whose message
// is that key translated to the request language.
func (handler *Handler) apiError(c *fiber.Ctx, status int, code string) error {
	return c.Status(status).JSON(errorResponse{
		Error: handler.translate(c, code),
		Code:  code,
	})
}

func parseDayParam(raw string, location *time.Location) (time.Time, error) {
	return services.ParseDay(strings.TrimSpace(raw), location)
}

// parseOptionalDayQuery returns nil when the query parameter is absent.
func parseOptionalDayQuery(c *fiber.Ctx, name string, location *time.Location) (*time.Time, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	day, err := parseDayParam(raw, location)
	if err != nil {
		return nil, err
	}
	return &day, nil
}

// parseDayRangeQuery reads from/to, defaulting the missing bounds to the
// window ending today.
func parseDayRangeQuery(c *fiber.Ctx, location *time.Location, defaultDays int) (time.Time, time.Time, error) {
	today := services.DateAtLocation(time.Now(), location)
	from := today.AddDate(0, 0, -(defaultDays - 1))
	to := today

	parsedFrom, err := parseOptionalDayQuery(c, "from", location)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	parsedTo, err := parseOptionalDayQuery(c, "to", location)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if parsedFrom != nil {
		from = *parsedFrom
	}
	if parsedTo != nil {
		to = *parsedTo
	}
	return from, to, nil
}
