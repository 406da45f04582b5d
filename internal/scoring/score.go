package scoring

import "strings"

const (
	CategoryMorningRitual = "Ritual da Manhã"
	CategoryDailyHabits   = "Hábitos do Dia"
	CategoryMindEmotions  = "Mente & Emoções"
)

// Question keys identify a scored question independently of its display label.
const (
	KeyMorningLiquid       = "liquido_manha"
	KeyConnectionPractices = "conexao_interna"
	KeyWakeEnergy          = "energia_acordar"
	KeySleep               = "sono"
	KeyWater               = "agua"
	KeyPhysicalActivity    = "atividade_fisica"
	KeyStress              = "estresse"
	KeyEmotionalHunger     = "fome_emocional"
	KeyGratitude           = "gratidao"
	KeySmallWin            = "pequena_vitoria"
	KeyTomorrowIntention   = "intencao_amanha"
	KeyDayRating           = "avaliacao_dia"
)

type ScoreDetail struct {
	Key       string `json:"key"`
	Category  string `json:"categoria"`
	Question  string `json:"pergunta"`
	Points    int    `json:"pontos"`
	MaxPoints int    `json:"pontosMaximos"`
	Answered  bool   `json:"respondida"`
}

type Breakdown struct {
	Total   int           `json:"total"`
	Details []ScoreDetail `json:"detalhes"`
}

// Points returns the earned points for the question key, or zero when absent.
func (breakdown Breakdown) Points(key string) int {
	for _, detail := range breakdown.Details {
		if detail.Key == key {
			return detail.Points
		}
	}
	return 0
}

var liquidPoints = map[string]int{
	LiquidWarmLemonWater: 2,
	LiquidHerbalTea:      1,
	LiquidBlackCoffee:    -1,
	LiquidOther:          -1,
}

var connectionPracticePoints = map[string]int{
	PracticePrayer:             2,
	PracticeMeditation:         2,
	PracticeConsciousBreathing: 2,
}

var wakeEnergyPoints = map[int]int{5: 3, 4: 2, 3: 1, 2: 0, 1: -1}

var waterPoints = map[string]int{
	WaterUnder500ml: -1,
	Water1L:         1,
	Water2L:         2,
	Water3LOrMore:   3,
}

// Stress is an inverted scale: the calmest answer earns the most.
var stressPoints = map[int]int{1: 3, 2: 2, 3: 1, 4: 0, 5: -1}

var dayRatingPoints = map[int]int{5: 4, 4: 3, 3: 2, 2: 1, 1: 0}

type question struct {
	key       string
	category  string
	label     string
	maxPoints int
	evaluate  func(AnswerSet) (int, bool)
}

var questions = []question{
	{
		key: KeyMorningLiquid, category: CategoryMorningRitual, label: "Primeiro líquido consumido", maxPoints: 2,
		evaluate: func(answers AnswerSet) (int, bool) { return lookupString(liquidPoints, answers.MorningLiquid) },
	},
	{
		key: KeyConnectionPractices, category: CategoryMorningRitual, label: "Práticas de conexão interna", maxPoints: 6,
		evaluate: scoreConnectionPractices,
	},
	{
		key: KeyWakeEnergy, category: CategoryMorningRitual, label: "Energia ao acordar", maxPoints: 3,
		evaluate: func(answers AnswerSet) (int, bool) { return lookupInt(wakeEnergyPoints, answers.WakeEnergy) },
	},
	{
		key: KeySleep, category: CategoryDailyHabits, label: "Horas de sono", maxPoints: 2,
		evaluate: scoreSleep,
	},
	{
		key: KeyWater, category: CategoryDailyHabits, label: "Consumo de água", maxPoints: 3,
		evaluate: func(answers AnswerSet) (int, bool) { return lookupString(waterPoints, answers.WaterIntake) },
	},
	{
		key: KeyPhysicalActivity, category: CategoryDailyHabits, label: "Atividade física", maxPoints: 2,
		evaluate: func(answers AnswerSet) (int, bool) { return lookupBool(answers.PhysicalActivity, 2, 0) },
	},
	{
		key: KeyStress, category: CategoryDailyHabits, label: "Nível de estresse", maxPoints: 3,
		evaluate: func(answers AnswerSet) (int, bool) { return lookupInt(stressPoints, answers.StressLevel) },
	},
	{
		key: KeyEmotionalHunger, category: CategoryDailyHabits, label: "Fome emocional", maxPoints: 2,
		evaluate: func(answers AnswerSet) (int, bool) { return lookupBool(answers.EmotionalHunger, -1, 2) },
	},
	{
		key: KeyGratitude, category: CategoryMindEmotions, label: "Gratidão", maxPoints: 1,
		evaluate: func(answers AnswerSet) (int, bool) { return presence(answers.Gratitude, false, 1) },
	},
	{
		key: KeySmallWin, category: CategoryMindEmotions, label: "Pequena vitória", maxPoints: 2,
		evaluate: func(answers AnswerSet) (int, bool) { return presence(answers.SmallWin, true, 2) },
	},
	{
		key: KeyTomorrowIntention, category: CategoryMindEmotions, label: "Intenção para amanhã", maxPoints: 1,
		evaluate: func(answers AnswerSet) (int, bool) { return presence(answers.TomorrowIntention, false, 1) },
	},
	{
		key: KeyDayRating, category: CategoryMindEmotions, label: "Avaliação do dia", maxPoints: 4,
		evaluate: func(answers AnswerSet) (int, bool) { return lookupInt(dayRatingPoints, answers.DayRating) },
	},
}

// Score converts an answer set into an itemized breakdown. It never fails: values
// outside a question's domain earn zero points and are reported as unanswered.
func Score(answers AnswerSet) Breakdown {
	details := make([]ScoreDetail, 0, len(questions))
	total := 0
	for _, item := range questions {
		points, answered := item.evaluate(answers)
		if !answered {
			points = 0
		}
		details = append(details, ScoreDetail{
			Key:       item.key,
			Category:  item.category,
			Question:  item.label,
			Points:    points,
			MaxPoints: item.maxPoints,
			Answered:  answered,
		})
		total += points
	}
	return Breakdown{Total: total, Details: details}
}

// MaxTotal is the best achievable total.
func MaxTotal() int {
	total := 0
	for _, item := range questions {
		total += item.maxPoints
	}
	return total
}

func scoreConnectionPractices(answers AnswerSet) (int, bool) {
	if answers.ConnectionPractices == nil {
		return 0, false
	}
	seen := make(map[string]struct{}, len(answers.ConnectionPractices))
	points := 0
	for _, practice := range answers.ConnectionPractices {
		value, ok := connectionPracticePoints[practice]
		if !ok {
			continue
		}
		if _, duplicate := seen[practice]; duplicate {
			continue
		}
		seen[practice] = struct{}{}
		points += value
	}
	return points, true
}

func scoreSleep(answers AnswerSet) (int, bool) {
	if answers.SleepHours == nil || !isValidSleepHours(*answers.SleepHours) {
		return 0, false
	}
	hours := *answers.SleepHours
	switch {
	case hours <= 4:
		return -1, true
	case hours == 6:
		return 1, true
	case hours >= 8:
		return 2, true
	default:
		return 0, true
	}
}

func lookupString(table map[string]int, value *string) (int, bool) {
	if value == nil {
		return 0, false
	}
	points, ok := table[*value]
	return points, ok
}

func lookupInt(table map[int]int, value *int) (int, bool) {
	if value == nil {
		return 0, false
	}
	points, ok := table[*value]
	return points, ok
}

func lookupBool(value *bool, whenTrue int, whenFalse int) (int, bool) {
	if value == nil {
		return 0, false
	}
	if *value {
		return whenTrue, true
	}
	return whenFalse, true
}

func presence(value *string, trim bool, points int) (int, bool) {
	if value == nil {
		return 0, false
	}
	text := *value
	if trim {
		text = strings.TrimSpace(text)
	}
	if text == "" {
		return 0, false
	}
	return points, true
}
