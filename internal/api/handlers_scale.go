package api

import (
	"encoding/base64"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rafaeldias2025/oficial-27/internal/models"
	"github.com/rafaeldias2025/oficial-27/internal/scale"
	"github.com/rafaeldias2025/oficial-27/internal/services"
)

func (handler *Handler) RecordScaleReading(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return handler.apiError(c, fiber.StatusUnauthorized, "error.unauthorized")
	}

	input := scaleReadingInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.apiError(c, fiber.StatusBadRequest, "error.invalid_json")
	}

	if len(input.Payloads) == 0 {
		if input.WeightKg == nil {
			return handler.apiError(c, fiber.StatusUnprocessableEntity, "error.scale_reading_invalid")
		}
		measurement, err := handler.scaleService.RecordReading(user.ID, scale.Reading{
			WeightKg: *input.WeightKg,
			Unit:     scale.UnitKilograms,
		}, "", models.MeasurementSourceManual)
		if err != nil {
			return handler.respondScaleError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(measurement)
	}

	capture, err := decodeScaleCapture(input)
	if err != nil {
		return handler.apiError(c, fiber.StatusBadRequest, "error.scale_reading_invalid")
	}

	measurement, err := handler.scaleService.RecordCapture(c.UserContext(), user.ID, capture)
	if err != nil {
		return handler.respondScaleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(measurement)
}

func (handler *Handler) ListScaleReadings(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return handler.apiError(c, fiber.StatusUnauthorized, "error.unauthorized")
	}

	from, err := parseOptionalDayQuery(c, "from", handler.location)
	if err != nil {
		return handler.apiError(c, fiber.StatusBadRequest, "error.invalid_date")
	}
	to, err := parseOptionalDayQuery(c, "to", handler.location)
	if err != nil {
		return handler.apiError(c, fiber.StatusBadRequest, "error.invalid_date")
	}
	if from != nil && to != nil && to.Before(*from) {
		return handler.apiError(c, fiber.StatusBadRequest, "error.invalid_range")
	}

	measurements, err := handler.scaleService.ListReadings(user.ID, from, to, handler.location)
	if err != nil {
		return handler.respondScaleError(c, err)
	}
	return c.JSON(measurements)
}

func (handler *Handler) ListScaleDevices(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return handler.apiError(c, fiber.StatusUnauthorized, "error.unauthorized")
	}

	devices, err := handler.scaleService.ListDevices(user.ID)
	if err != nil {
		return handler.respondScaleError(c, err)
	}
	return c.JSON(devices)
}

func decodeScaleCapture(input scaleReadingInput) (services.DeviceCapture, error) {
	payloads := make([][]byte, 0, len(input.Payloads))
	for _, encoded := range input.Payloads {
		payload, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
		if err != nil {
			return services.DeviceCapture{}, err
		}
		payloads = append(payloads, payload)
	}

	capture := services.DeviceCapture{
		DeviceID:           input.DeviceID,
		Name:               input.Name,
		Services:           input.Services,
		ServiceUUID:        input.ServiceUUID,
		CharacteristicUUID: input.CharacteristicUUID,
		Payloads:           payloads,
	}
	if raw := strings.TrimSpace(input.ReceivedAt); raw != "" {
		receivedAt, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return services.DeviceCapture{}, err
		}
		capture.ReceivedAt = receivedAt
	}
	return capture, nil
}

func (handler *Handler) respondScaleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrScaleReadingInvalid):
		return handler.apiError(c, fiber.StatusUnprocessableEntity, "error.scale_reading_invalid")
	case errors.Is(err, services.ErrScaleDeviceFailed):
		return handler.apiError(c, fiber.StatusBadGateway, "error.scale_device_failed")
	case errors.Is(err, services.ErrScaleReadingSaveFailed), errors.Is(err, services.ErrScaleDeviceSaveFailed):
		return handler.apiError(c, fiber.StatusInternalServerError, "error.scale_save_failed")
	case errors.Is(err, services.ErrScaleReadingLoadFailed):
		return handler.apiError(c, fiber.StatusInternalServerError, "error.scale_load_failed")
	default:
		return handler.apiError(c, fiber.StatusInternalServerError, "error.internal")
	}
}
