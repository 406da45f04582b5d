package services

import (
	"errors"
	"time"

	"github.com/rafaeldias2025/oficial-27/internal/models"
	"github.com/rafaeldias2025/oficial-27/internal/scoring"
)

var (
	ErrMissionLoadFailed = errors.New("load mission failed")
	ErrMissionSaveFailed = errors.New("save mission failed")
	ErrScoreLoadFailed   = errors.New("load scores failed")
	ErrInvalidScoreRange = errors.New("invalid score range")
	ErrMissionFutureDay  = errors.New("mission day is in the future")
)

type MissionRepository interface {
	FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.DailyMission, bool, error)
	SaveDay(mission *models.DailyMission, score *models.DailyScore) error
}

type DailyScoreRepository interface {
	ListByUserRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.DailyScore, error)
	FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.DailyScore, bool, error)
}

type MissionResult struct {
	Date      time.Time          `json:"date"`
	Answers   scoring.AnswerSet  `json:"answers"`
	Breakdown scoring.Breakdown  `json:"breakdown"`
	Progress  int                `json:"progress"`
	Feedback  scoring.Feedback   `json:"feedback"`
	Record    *models.DailyScore `json:"record,omitempty"`
}

type MissionService struct {
	missions MissionRepository
	scores   DailyScoreRepository
	now      func() time.Time
}

func NewMissionService(missions MissionRepository, scores DailyScoreRepository) *MissionService {
	return &MissionService{missions: missions, scores: scores, now: time.Now}
}

// Preview scores answers without storing them.
func (service *MissionService) Preview(answers scoring.AnswerSet) MissionResult {
	return evaluateMission(answers)
}

// SubmitDay scores the answers and stores both the answers and the resulting
// record for the day, replacing anything stored for the same day.
func (service *MissionService) SubmitDay(userID uint, day time.Time, answers scoring.AnswerSet, location *time.Location) (MissionResult, error) {
	if err := scoring.Validate(answers); err != nil {
		return MissionResult{}, err
	}

	dayStart, dayEnd := DayKeyRange(day, day, location)
	today := DayKey(service.now(), location)
	if dayStart.After(today) {
		return MissionResult{}, ErrMissionFutureDay
	}

	result := evaluateMission(answers)
	result.Date = dayStart

	mission := models.DailyMission{
		UserID:   userID,
		Date:     dayStart,
		Answers:  answers,
		Progress: result.Progress,
	}
	record := BuildDailyScore(userID, dayStart, result.Breakdown, result.Feedback)
	if err := service.missions.SaveDay(&mission, &record); err != nil {
		return MissionResult{}, ErrMissionSaveFailed
	}

	stored, found, err := service.scores.FindByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil || !found {
		return MissionResult{}, ErrScoreLoadFailed
	}
	result.Record = &stored
	return result, nil
}

// FetchDay returns the stored answers for a day, or an empty set when nothing
// was submitted, together with the breakdown recomputed from them.
func (service *MissionService) FetchDay(userID uint, day time.Time, location *time.Location) (MissionResult, error) {
	dayStart, dayEnd := DayKeyRange(day, day, location)
	mission, found, err := service.missions.FindByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return MissionResult{}, ErrMissionLoadFailed
	}

	answers := scoring.AnswerSet{}
	if found {
		answers = mission.Answers
	}
	result := evaluateMission(answers)
	result.Date = dayStart

	if found {
		record, recordFound, err := service.scores.FindByUserAndDayRange(userID, dayStart, dayEnd)
		if err != nil {
			return MissionResult{}, ErrScoreLoadFailed
		}
		if recordFound {
			result.Record = &record
		}
	}
	return result, nil
}

// History lists stored records for the inclusive [from, to] day range.
func (service *MissionService) History(userID uint, from time.Time, to time.Time, location *time.Location) ([]models.DailyScore, error) {
	fromStart, toEnd := DayKeyRange(from, to, location)
	if !toEnd.After(fromStart) {
		return nil, ErrInvalidScoreRange
	}

	scores, err := service.scores.ListByUserRange(userID, fromStart, toEnd)
	if err != nil {
		return nil, ErrScoreLoadFailed
	}
	return scores, nil
}

// RecentHistory lists the last days records ending today.
func (service *MissionService) RecentHistory(userID uint, days int, location *time.Location) ([]models.DailyScore, error) {
	if days < 1 {
		days = 1
	}
	today := DateAtLocation(service.now(), location)
	return service.History(userID, today.AddDate(0, 0, -(days-1)), today, location)
}

func evaluateMission(answers scoring.AnswerSet) MissionResult {
	breakdown := scoring.Score(answers)
	return MissionResult{
		Answers:   answers,
		Breakdown: breakdown,
		Progress:  scoring.Progress(answers),
		Feedback:  scoring.Classify(breakdown.Total),
	}
}

func BuildDailyScore(userID uint, dayStart time.Time, breakdown scoring.Breakdown, feedback scoring.Feedback) models.DailyScore {
	return models.DailyScore{
		UserID:                 userID,
		Date:                   dayStart,
		MorningLiquidPoints:    breakdown.Points(scoring.KeyMorningLiquid),
		ConnectionPoints:       breakdown.Points(scoring.KeyConnectionPractices),
		WakeEnergyPoints:       breakdown.Points(scoring.KeyWakeEnergy),
		SleepPoints:            breakdown.Points(scoring.KeySleep),
		WaterPoints:            breakdown.Points(scoring.KeyWater),
		PhysicalActivityPoints: breakdown.Points(scoring.KeyPhysicalActivity),
		StressPoints:           breakdown.Points(scoring.KeyStress),
		EmotionalHungerPoints:  breakdown.Points(scoring.KeyEmotionalHunger),
		GratitudePoints:        breakdown.Points(scoring.KeyGratitude),
		SmallWinPoints:         breakdown.Points(scoring.KeySmallWin),
		IntentionPoints:        breakdown.Points(scoring.KeyTomorrowIntention),
		DayRatingPoints:        breakdown.Points(scoring.KeyDayRating),
		TotalPoints:            breakdown.Total,
		Category:               string(feedback.Tier),
	}
}
