package api

import (
	"encoding/base64"
	"encoding/binary"
	"errors"
	"math"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rafaeldias2025/oficial-27/internal/models"
	"github.com/rafaeldias2025/oficial-27/internal/scale"
	"github.com/rafaeldias2025/oficial-27/internal/services"
)

func encodedScalePayload(weight float32) string {
	payload := make([]byte, 13)
	binary.LittleEndian.PutUint32(payload[1:5], math.Float32bits(weight))
	return base64.StdEncoding.EncodeToString(payload)
}

func TestRecordScaleReadingFromBridgePayload(t *testing.T) {
	app, _ := newTestApp(t)
	session := registerUser(t, app, "ana@example.com", "Ana")

	response := doJSON(t, app, http.MethodPost, "/api/scale/readings", session.Token, scaleReadingInput{
		DeviceID:   "AA:BB:CC",
		Name:       "MIBFS",
		Payloads:   []string{base64.StdEncoding.EncodeToString([]byte{0x01}), encodedScalePayload(72.5)},
		ReceivedAt: "2026-03-02T08:30:00Z",
	})
	expectStatus(t, response, http.StatusCreated)
	measurement := models.WeightMeasurement{}
	decodeBody(t, response, &measurement)
	if measurement.WeightKg != 72.5 || measurement.Source != models.MeasurementSourceScale {
		t.Fatalf("unexpected measurement %#v", measurement)
	}
	if measurement.BMI == nil || measurement.BodyFat != nil {
		t.Fatalf("expected BMI only, got %#v", measurement)
	}

	response = doJSON(t, app, http.MethodGet, "/api/scale/readings", session.Token, nil)
	expectStatus(t, response, http.StatusOK)
	measurements := make([]models.WeightMeasurement, 0)
	decodeBody(t, response, &measurements)
	if len(measurements) != 1 {
		t.Fatalf("expected one stored measurement, got %d", len(measurements))
	}

	response = doJSON(t, app, http.MethodGet, "/api/scale/devices", session.Token, nil)
	expectStatus(t, response, http.StatusOK)
	devices := make([]models.ScaleDevice, 0)
	decodeBody(t, response, &devices)
	if len(devices) != 1 || devices[0].DeviceID != "AA:BB:CC" {
		t.Fatalf("expected registered device, got %#v", devices)
	}
}

func TestRecordScaleReadingFailuresAreDistinct(t *testing.T) {
	app, _ := newTestApp(t)
	session := registerUser(t, app, "ana@example.com", "Ana")

	response := doJSON(t, app, http.MethodPost, "/api/scale/readings", session.Token, scaleReadingInput{
		Name:     "MIBFS",
		Payloads: []string{base64.StdEncoding.EncodeToString([]byte{0x01, 0x02})},
	})
	expectStatus(t, response, http.StatusUnprocessableEntity)
	if apiErr := readAPIError(t, response); apiErr.Code != "error.scale_reading_invalid" {
		t.Fatalf("expected scale_reading_invalid code, got %#v", apiErr)
	}

	response = doJSON(t, app, http.MethodPost, "/api/scale/readings", session.Token, scaleReadingInput{
		Name:     "MIBFS",
		Payloads: []string{"%%%not-base64"},
	})
	expectStatus(t, response, http.StatusBadRequest)

	response = doJSON(t, app, http.MethodGet, "/api/scale/readings?from=bad", session.Token, nil)
	expectStatus(t, response, http.StatusBadRequest)
}

func TestScaleErrorStatusSeparatesDeviceFailures(t *testing.T) {
	handler, _ := newTestHandler(t)
	app := fiber.New()
	app.Use(handler.LanguageMiddleware)
	failures := map[string]error{
		"/device":  errors.Join(services.ErrScaleDeviceFailed, scale.ErrConnectFailed),
		"/timeout": errors.Join(services.ErrScaleDeviceFailed, errors.New("context deadline exceeded")),
		"/decode":  errors.Join(services.ErrScaleReadingInvalid, scale.ErrNoReading),
	}
	for path, failure := range failures {
		failure := failure
		app.Get(path, func(c *fiber.Ctx) error {
			return handler.respondScaleError(c, failure)
		})
	}

	tests := []struct {
		path   string
		status int
		code   string
	}{
		{"/device", http.StatusBadGateway, "error.scale_device_failed"},
		{"/timeout", http.StatusBadGateway, "error.scale_device_failed"},
		{"/decode", http.StatusUnprocessableEntity, "error.scale_reading_invalid"},
	}
	for _, tt := range tests {
		response := doJSON(t, app, http.MethodGet, tt.path, "", nil)
		expectStatus(t, response, tt.status)
		if apiErr := readAPIError(t, response); apiErr.Code != tt.code {
			t.Fatalf("%s: expected code %s, got %#v", tt.path, tt.code, apiErr)
		}
	}
}

func TestRecordManualScaleReading(t *testing.T) {
	app, _ := newTestApp(t)
	session := registerUser(t, app, "ana@example.com", "Ana")

	weight := 68.456
	response := doJSON(t, app, http.MethodPost, "/api/scale/readings", session.Token, scaleReadingInput{WeightKg: &weight})
	expectStatus(t, response, http.StatusCreated)
	measurement := models.WeightMeasurement{}
	decodeBody(t, response, &measurement)
	if measurement.WeightKg != 68.46 || measurement.Source != models.MeasurementSourceManual {
		t.Fatalf("unexpected manual measurement %#v", measurement)
	}

	response = doJSON(t, app, http.MethodPost, "/api/scale/readings", session.Token, scaleReadingInput{})
	expectStatus(t, response, http.StatusUnprocessableEntity)
}

func TestWheelRoundTrip(t *testing.T) {
	app, _ := newTestApp(t)
	session := registerUser(t, app, "ana@example.com", "Ana")

	response := doJSON(t, app, http.MethodGet, "/api/wheels", session.Token, nil)
	expectStatus(t, response, http.StatusOK)
	listing := struct {
		SessionID string `json:"session_id"`
	}{}
	decodeBody(t, response, &listing)
	if listing.SessionID == "" {
		t.Fatal("expected a fresh session id")
	}

	path := "/api/wheels/energia_vital/" + listing.SessionID
	response = doJSON(t, app, http.MethodPut, path, session.Token, wheelInput{
		Responses:         map[string]int{"Mental": 8, "Físico": 3},
		ReflectionAnswers: map[string]string{"0": "Mental"},
	})
	expectStatus(t, response, http.StatusOK)

	response = doJSON(t, app, http.MethodGet, path, session.Token, nil)
	expectStatus(t, response, http.StatusOK)
	view := services.WheelView{}
	decodeBody(t, response, &view)
	if !view.Saved || view.Scores["Mental"] != 8 || view.Scores["Espiritual"] != 0 {
		t.Fatalf("unexpected stored wheel %#v", view)
	}

	response = doJSON(t, app, http.MethodGet, "/api/wheels/unknown/"+listing.SessionID, session.Token, nil)
	expectStatus(t, response, http.StatusNotFound)

	response = doJSON(t, app, http.MethodPut, "/api/wheels/energia_vital/not-a-uuid", session.Token, wheelInput{})
	expectStatus(t, response, http.StatusBadRequest)

	response = doJSON(t, app, http.MethodPut, path, session.Token, wheelInput{Responses: map[string]int{"Financeiro": 5}})
	expectStatus(t, response, http.StatusBadRequest)
	if apiErr := readAPIError(t, response); apiErr.Code != "error.wheel_invalid" {
		t.Fatalf("expected wheel_invalid code, got %#v", apiErr)
	}
}

func TestEvaluationRoundTrip(t *testing.T) {
	app, _ := newTestApp(t)
	session := registerUser(t, app, "ana@example.com", "Ana")

	response := doJSON(t, app, http.MethodGet, "/api/evaluations/2026-03-04", session.Token, nil)
	expectStatus(t, response, http.StatusOK)
	blank := struct {
		Evaluation models.WeeklyEvaluation `json:"evaluation"`
		Saved      bool                    `json:"saved"`
	}{}
	decodeBody(t, response, &blank)
	if blank.Saved || blank.Evaluation.WeekStart.Format("2006-01-02") != "2026-03-01" {
		t.Fatalf("expected blank form for week of 2026-03-01, got %#v", blank)
	}

	input := map[string]any{
		"objetivos_semana_anterior": "correr 3x",
		"objetivos_alcancados":      true,
		"humor_semana":              models.MoodGood,
		"nivel_energia":             4,
		"qualidade_sono":            5,
		"nivel_estresse":            2,
		"alimentacao_qualidade":     3,
		"exercicios_frequencia":     4,
		"desempenho_semanal":        map[string]int{"saude_bebi_agua": 5},
	}
	response = doJSON(t, app, http.MethodPut, "/api/evaluations/2026-03-04", session.Token, input)
	expectStatus(t, response, http.StatusOK)
	saved := models.WeeklyEvaluation{}
	decodeBody(t, response, &saved)
	if saved.ID == 0 || saved.WeekStart.Format("2006-01-02") != "2026-03-01" || saved.Mood != models.MoodGood {
		t.Fatalf("unexpected saved evaluation %#v", saved)
	}

	response = doJSON(t, app, http.MethodGet, "/api/evaluations/stats", session.Token, nil)
	expectStatus(t, response, http.StatusOK)
	stats := services.EvaluationStats{}
	decodeBody(t, response, &stats)
	if stats.TotalEvaluations != 1 {
		t.Fatalf("expected one evaluation in stats, got %#v", stats)
	}

	input["nivel_energia"] = 9
	response = doJSON(t, app, http.MethodPut, "/api/evaluations/2026-03-04", session.Token, input)
	expectStatus(t, response, http.StatusBadRequest)
	if apiErr := readAPIError(t, response); apiErr.Code != "error.evaluation_invalid" {
		t.Fatalf("expected evaluation_invalid code, got %#v", apiErr)
	}
}
