package scoring

import (
	"errors"
	"fmt"
	"math"
)

const (
	LiquidWarmLemonWater = "Água morna com limão"
	LiquidHerbalTea      = "Chá natural"
	LiquidBlackCoffee    = "Café puro"
	LiquidOther          = "Outro"

	PracticePrayer             = "Oração"
	PracticeMeditation         = "Meditação"
	PracticeConsciousBreathing = "Respiração consciente"

	WaterUnder500ml = "Menos de 500ml"
	Water1L         = "1L"
	Water2L         = "2L"
	Water3LOrMore   = "3L ou mais"

	MinRating = 1
	MaxRating = 5

	MaxSleepHours = 24
)

// QuestionCount is the number of source fields considered for progress.
const QuestionCount = 12

var ErrInvalidAnswer = errors.New("invalid answer")

// AnswerSet holds one user's self-reported answers for one calendar day.
// A nil field is unanswered; a nil ConnectionPractices slice is unanswered while an
// empty one is an explicit "none of them".
type AnswerSet struct {
	MorningLiquid       *string  `json:"liquido_ao_acordar,omitempty"`
	ConnectionPractices []string `json:"pratica_conexao"`
	WakeEnergy          *int     `json:"energia_ao_acordar,omitempty"`
	SleepHours          *float64 `json:"sono_horas,omitempty"`
	WaterIntake         *string  `json:"agua_litros,omitempty"`
	PhysicalActivity    *bool    `json:"atividade_fisica,omitempty"`
	StressLevel         *int     `json:"estresse_nivel,omitempty"`
	EmotionalHunger     *bool    `json:"fome_emocional,omitempty"`
	Gratitude           *string  `json:"gratidao,omitempty"`
	SmallWin            *string  `json:"pequena_vitoria,omitempty"`
	TomorrowIntention   *string  `json:"intencao_para_amanha,omitempty"`
	DayRating           *int     `json:"nota_dia,omitempty"`
}

// Options describes the answer domains a mission form offers.
type Options struct {
	MorningLiquids      []string `json:"liquido_ao_acordar"`
	ConnectionPractices []string `json:"pratica_conexao"`
	WaterIntakes        []string `json:"agua_litros"`
	MinRating           int      `json:"min_rating"`
	MaxRating           int      `json:"max_rating"`
	MaxSleepHours       float64  `json:"max_sleep_hours"`
	MaxTotal            int      `json:"max_total"`
}

func LiquidOptions() []string {
	return []string{LiquidWarmLemonWater, LiquidHerbalTea, LiquidBlackCoffee, LiquidOther}
}

func PracticeOptions() []string {
	return []string{PracticePrayer, PracticeMeditation, PracticeConsciousBreathing}
}

func WaterOptions() []string {
	return []string{WaterUnder500ml, Water1L, Water2L, Water3LOrMore}
}

func MissionOptions() Options {
	return Options{
		MorningLiquids:      LiquidOptions(),
		ConnectionPractices: PracticeOptions(),
		WaterIntakes:        WaterOptions(),
		MinRating:           MinRating,
		MaxRating:           MaxRating,
		MaxSleepHours:       MaxSleepHours,
		MaxTotal:            MaxTotal(),
	}
}

// Progress returns the share of the twelve fields that carry a value, as a
// rounded integer percentage. Negative answers count the same as positive ones.
func Progress(answers AnswerSet) int {
	filled := 0
	for _, defined := range definedFields(answers) {
		if defined {
			filled++
		}
	}
	return int(math.Round(float64(filled) * 100 / QuestionCount))
}

func definedFields(answers AnswerSet) []bool {
	return []bool{
		hasString(answers.MorningLiquid),
		answers.ConnectionPractices != nil,
		answers.WakeEnergy != nil,
		answers.SleepHours != nil,
		hasString(answers.WaterIntake),
		answers.PhysicalActivity != nil,
		answers.StressLevel != nil,
		answers.EmotionalHunger != nil,
		hasString(answers.Gratitude),
		hasString(answers.SmallWin),
		hasString(answers.TomorrowIntention),
		answers.DayRating != nil,
	}
}

// Validate reports the first answered field whose value lies outside its fixed
// domain. Score never calls it: scoring treats such values as unanswered.
func Validate(answers AnswerSet) error {
	if answers.MorningLiquid != nil && *answers.MorningLiquid != "" {
		if _, ok := liquidPoints[*answers.MorningLiquid]; !ok {
			return fmt.Errorf("%w: liquido_ao_acordar %q", ErrInvalidAnswer, *answers.MorningLiquid)
		}
	}
	for _, practice := range answers.ConnectionPractices {
		if _, ok := connectionPracticePoints[practice]; !ok {
			return fmt.Errorf("%w: pratica_conexao %q", ErrInvalidAnswer, practice)
		}
	}
	if answers.WaterIntake != nil && *answers.WaterIntake != "" {
		if _, ok := waterPoints[*answers.WaterIntake]; !ok {
			return fmt.Errorf("%w: agua_litros %q", ErrInvalidAnswer, *answers.WaterIntake)
		}
	}
	if answers.SleepHours != nil && !isValidSleepHours(*answers.SleepHours) {
		return fmt.Errorf("%w: sono_horas %v", ErrInvalidAnswer, *answers.SleepHours)
	}

	ratings := []struct {
		field string
		value *int
	}{
		{field: "energia_ao_acordar", value: answers.WakeEnergy},
		{field: "estresse_nivel", value: answers.StressLevel},
		{field: "nota_dia", value: answers.DayRating},
	}
	for _, rating := range ratings {
		if rating.value != nil && !IsValidRating(*rating.value) {
			return fmt.Errorf("%w: %s %d", ErrInvalidAnswer, rating.field, *rating.value)
		}
	}
	return nil
}

func IsValidRating(value int) bool {
	return value >= MinRating && value <= MaxRating
}

func isValidSleepHours(hours float64) bool {
	return !math.IsNaN(hours) && hours >= 0 && hours <= MaxSleepHours
}

func hasString(value *string) bool {
	return value != nil && *value != ""
}
