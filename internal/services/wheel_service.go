package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rafaeldias2025/oficial-27/internal/models"
	"github.com/rafaeldias2025/oficial-27/internal/wheel"
)

var (
	ErrWheelSessionInvalid = errors.New("wheel session invalid")
	ErrWheelLoadFailed     = errors.New("load wheel response failed")
	ErrWheelSaveFailed     = errors.New("save wheel response failed")
)

type WheelRepository interface {
	Find(userID uint, sessionID string, wheelType string) (models.WheelResponse, bool, error)
	Upsert(response *models.WheelResponse) error
}

type WheelView struct {
	Definition        wheel.Definition  `json:"definition"`
	SessionID         string            `json:"session_id"`
	Scores            map[string]int    `json:"responses"`
	ReflectionAnswers map[string]string `json:"reflection_answers"`
	Chart             []wheel.Slice     `json:"chart"`
	Saved             bool              `json:"saved"`
	CompletedAt       *time.Time        `json:"completed_at,omitempty"`
}

type WheelService struct {
	responses WheelRepository
	catalog   *wheel.Catalog
	now       func() time.Time
}

func NewWheelService(responses WheelRepository, catalog *wheel.Catalog) *WheelService {
	if catalog == nil {
		catalog = wheel.DefaultCatalog()
	}
	return &WheelService{responses: responses, catalog: catalog, now: time.Now}
}

func (service *WheelService) Definitions() []wheel.Definition {
	return service.catalog.Definitions()
}

func NewWheelSessionID() string {
	return uuid.NewString()
}

func (service *WheelService) Load(userID uint, wheelType string, sessionID string) (WheelView, error) {
	definition, err := service.catalog.Lookup(wheelType)
	if err != nil {
		return WheelView{}, err
	}
	sessionID, err = normalizeWheelSessionID(sessionID)
	if err != nil {
		return WheelView{}, err
	}

	response, found, err := service.responses.Find(userID, sessionID, definition.Type)
	if err != nil {
		return WheelView{}, ErrWheelLoadFailed
	}

	view := WheelView{Definition: definition, SessionID: sessionID, ReflectionAnswers: map[string]string{}}
	if !found {
		view.Scores, _, _ = definition.Normalize(nil, nil)
		view.Chart = definition.Chart(view.Scores)
		return view, nil
	}

	// Stored rows may predate a catalog change; drop areas that are gone.
	scores := make(map[string]int, len(definition.Areas))
	for _, area := range definition.Areas {
		scores[area] = wheel.ClampScore(response.Scores[area])
	}
	view.Scores = scores
	if response.ReflectionAnswers != nil {
		view.ReflectionAnswers = response.ReflectionAnswers
	}
	view.Chart = definition.Chart(scores)
	view.Saved = true
	completedAt := response.CompletedAt
	view.CompletedAt = &completedAt
	return view, nil
}

func (service *WheelService) Save(userID uint, wheelType string, sessionID string, scores map[string]int, reflections map[string]string) (WheelView, error) {
	definition, err := service.catalog.Lookup(wheelType)
	if err != nil {
		return WheelView{}, err
	}
	sessionID, err = normalizeWheelSessionID(sessionID)
	if err != nil {
		return WheelView{}, err
	}

	normalizedScores, normalizedReflections, err := definition.Normalize(scores, reflections)
	if err != nil {
		return WheelView{}, err
	}

	completedAt := service.now().UTC()
	response := models.WheelResponse{
		UserID:            userID,
		SessionID:         sessionID,
		WheelType:         definition.Type,
		Scores:            normalizedScores,
		ReflectionAnswers: normalizedReflections,
		CompletedAt:       completedAt,
	}
	if err := service.responses.Upsert(&response); err != nil {
		return WheelView{}, ErrWheelSaveFailed
	}

	return WheelView{
		Definition:        definition,
		SessionID:         sessionID,
		Scores:            normalizedScores,
		ReflectionAnswers: normalizedReflections,
		Chart:             definition.Chart(normalizedScores),
		Saved:             true,
		CompletedAt:       &completedAt,
	}, nil
}

func normalizeWheelSessionID(raw string) (string, error) {
	parsed, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", ErrWheelSessionInvalid
	}
	return parsed.String(), nil
}
