package services

import (
	"errors"
	"strings"
	"time"

	"github.com/rafaeldias2025/oficial-27/internal/models"
	"github.com/rafaeldias2025/oficial-27/internal/scoring"
)

var (
	ErrEvaluationInvalid    = errors.New("weekly evaluation invalid")
	ErrEvaluationLoadFailed = errors.New("load weekly evaluation failed")
	ErrEvaluationSaveFailed = errors.New("save weekly evaluation failed")
)

const (
	maxEvaluationTextLength = 2000
	maxEvaluationListItems  = 20
	defaultEvaluationRating = 3
)

// PerformanceItems lists the weekly self-assessment statements by area.
var PerformanceItems = []string{
	"saude_alimentacao_objetivos",
	"saude_recuperacao_fisica",
	"saude_bebi_agua",
	"saude_mais_energia",
	"saude_raspei_lingua",
	"presenca_focado_planejei",
	"presenca_atitudes_intencionais",
	"presenca_atencao_alimentacao",
	"presenca_clareza_objetivos",
	"presenca_disciplina_consistencia",
	"fisico_fui_academia",
	"fisico_caminhada_melhor",
	"fisico_mobilidade",
	"fisico_sono_qualidade",
	"fisico_condicionamento_aumentou",
	"profissional_li_livro",
	"profissional_fiz_mais_combinado",
	"profissional_ajudei_alguem",
	"profissional_melhorei_trabalho",
	"profissional_assisti_podcast",
}

var evaluationMoods = []string{
	models.MoodGreat,
	models.MoodGood,
	models.MoodRegular,
	models.MoodBad,
	models.MoodAwful,
}

type EvaluationRepository interface {
	FindByUserAndWeek(userID uint, weekStart time.Time) (models.WeeklyEvaluation, bool, error)
	Upsert(evaluation *models.WeeklyEvaluation) error
	ListByUser(userID uint) ([]models.WeeklyEvaluation, error)
}

type EvaluationStats struct {
	TotalEvaluations       int            `json:"total_evaluations"`
	AverageEnergy          float64        `json:"average_energy"`
	AverageSleep           float64        `json:"average_sleep"`
	AverageStress          float64        `json:"average_stress"`
	AverageNutrition       float64        `json:"average_nutrition"`
	AverageExercise        float64        `json:"average_exercise"`
	MoodDistribution       map[string]int `json:"mood_distribution"`
	ObjectivesAchievedRate float64        `json:"objectives_achieved_rate"`
}

type EvaluationService struct {
	evaluations EvaluationRepository
}

func NewEvaluationService(evaluations EvaluationRepository) *EvaluationService {
	return &EvaluationService{evaluations: evaluations}
}

// Fetch returns the evaluation for the week containing day, or a blank form
// with neutral ratings when none was saved.
func (service *EvaluationService) Fetch(userID uint, day time.Time, location *time.Location) (models.WeeklyEvaluation, bool, error) {
	weekStart := DayKey(WeekStart(day, location), location)
	evaluation, found, err := service.evaluations.FindByUserAndWeek(userID, weekStart)
	if err != nil {
		return models.WeeklyEvaluation{}, false, ErrEvaluationLoadFailed
	}
	if found {
		return evaluation, true, nil
	}
	return blankEvaluation(userID, weekStart), false, nil
}

func (service *EvaluationService) Save(userID uint, day time.Time, input models.WeeklyEvaluation, location *time.Location) (models.WeeklyEvaluation, error) {
	weekStart := DayKey(WeekStart(day, location), location)
	evaluation, err := normalizeEvaluation(input)
	if err != nil {
		return models.WeeklyEvaluation{}, err
	}
	evaluation.ID = 0
	evaluation.UserID = userID
	evaluation.WeekStart = weekStart
	evaluation.WeekEnd = weekStart.AddDate(0, 0, 6)

	if err := service.evaluations.Upsert(&evaluation); err != nil {
		return models.WeeklyEvaluation{}, ErrEvaluationSaveFailed
	}

	stored, found, err := service.evaluations.FindByUserAndWeek(userID, weekStart)
	if err != nil || !found {
		return models.WeeklyEvaluation{}, ErrEvaluationLoadFailed
	}
	return stored, nil
}

func (service *EvaluationService) Stats(userID uint) (EvaluationStats, error) {
	evaluations, err := service.evaluations.ListByUser(userID)
	if err != nil {
		return EvaluationStats{}, ErrEvaluationLoadFailed
	}
	return SummarizeEvaluations(evaluations), nil
}

func SummarizeEvaluations(evaluations []models.WeeklyEvaluation) EvaluationStats {
	stats := EvaluationStats{
		TotalEvaluations: len(evaluations),
		MoodDistribution: make(map[string]int, len(evaluationMoods)),
	}
	for _, mood := range evaluationMoods {
		stats.MoodDistribution[mood] = 0
	}
	if len(evaluations) == 0 {
		return stats
	}

	achieved := 0
	var energy, sleep, stress, nutrition, exercise int
	for _, evaluation := range evaluations {
		energy += evaluation.EnergyLevel
		sleep += evaluation.SleepQuality
		stress += evaluation.StressLevel
		nutrition += evaluation.NutritionQuality
		exercise += evaluation.ExerciseFrequency
		stats.MoodDistribution[evaluation.Mood]++
		if evaluation.GoalsAchieved {
			achieved++
		}
	}

	count := float64(len(evaluations))
	stats.AverageEnergy = float64(energy) / count
	stats.AverageSleep = float64(sleep) / count
	stats.AverageStress = float64(stress) / count
	stats.AverageNutrition = float64(nutrition) / count
	stats.AverageExercise = float64(exercise) / count
	stats.ObjectivesAchievedRate = float64(achieved) / count * 100
	return stats
}

func blankEvaluation(userID uint, weekStart time.Time) models.WeeklyEvaluation {
	performance := make(map[string]int, len(PerformanceItems))
	for _, item := range PerformanceItems {
		performance[item] = defaultEvaluationRating
	}
	return models.WeeklyEvaluation{
		UserID:            userID,
		WeekStart:         weekStart,
		WeekEnd:           weekStart.AddDate(0, 0, 6),
		PositivePoints:    []string{},
		ImprovementPoints: []string{},
		Mood:              models.MoodRegular,
		EnergyLevel:       defaultEvaluationRating,
		SleepQuality:      defaultEvaluationRating,
		StressLevel:       defaultEvaluationRating,
		NutritionQuality:  defaultEvaluationRating,
		ExerciseFrequency: defaultEvaluationRating,
		Performance:       performance,
	}
}

func normalizeEvaluation(input models.WeeklyEvaluation) (models.WeeklyEvaluation, error) {
	evaluation := input

	if !isEvaluationMood(evaluation.Mood) {
		return models.WeeklyEvaluation{}, ErrEvaluationInvalid
	}
	for _, rating := range []int{
		evaluation.EnergyLevel,
		evaluation.SleepQuality,
		evaluation.StressLevel,
		evaluation.NutritionQuality,
		evaluation.ExerciseFrequency,
	} {
		if !scoring.IsValidRating(rating) {
			return models.WeeklyEvaluation{}, ErrEvaluationInvalid
		}
	}

	performance := make(map[string]int, len(PerformanceItems))
	known := make(map[string]struct{}, len(PerformanceItems))
	for _, item := range PerformanceItems {
		known[item] = struct{}{}
	}
	for item, rating := range evaluation.Performance {
		if _, ok := known[item]; !ok || !scoring.IsValidRating(rating) {
			return models.WeeklyEvaluation{}, ErrEvaluationInvalid
		}
		performance[item] = rating
	}
	evaluation.Performance = performance

	var ok bool
	fields := []*string{
		&evaluation.PreviousGoals,
		&evaluation.NotAchievedReason,
		&evaluation.NextWeekGoals,
		&evaluation.AdditionalNotes,
		&evaluation.Learning.BestMoment,
		&evaluation.Learning.BiggestChallenge,
		&evaluation.Learning.MentorAdvice,
		&evaluation.Learning.SaboteurLearning,
		&evaluation.Learning.SelfSabotageMoment,
		&evaluation.Learning.WeekName,
		&evaluation.Learning.FeelingAboutLastWeek,
	}
	for _, field := range fields {
		if *field, ok = trimEvaluationText(*field); !ok {
			return models.WeeklyEvaluation{}, ErrEvaluationInvalid
		}
	}
	if evaluation.GoalsAchieved {
		evaluation.NotAchievedReason = ""
	}

	if evaluation.PositivePoints, ok = normalizeEvaluationList(evaluation.PositivePoints); !ok {
		return models.WeeklyEvaluation{}, ErrEvaluationInvalid
	}
	if evaluation.ImprovementPoints, ok = normalizeEvaluationList(evaluation.ImprovementPoints); !ok {
		return models.WeeklyEvaluation{}, ErrEvaluationInvalid
	}
	return evaluation, nil
}

func isEvaluationMood(value string) bool {
	for _, mood := range evaluationMoods {
		if value == mood {
			return true
		}
	}
	return false
}

func trimEvaluationText(value string) (string, bool) {
	trimmed := strings.TrimSpace(value)
	return trimmed, len([]rune(trimmed)) <= maxEvaluationTextLength
}

func normalizeEvaluationList(values []string) ([]string, bool) {
	normalized := make([]string, 0, len(values))
	for _, value := range values {
		trimmed, ok := trimEvaluationText(value)
		if !ok {
			return nil, false
		}
		if trimmed != "" {
			normalized = append(normalized, trimmed)
		}
	}
	return normalized, len(normalized) <= maxEvaluationListItems
}
