package scoring

import (
	"errors"
	"reflect"
	"testing"
)

func stringPtr(value string) *string { return &value }

func intPtr(value int) *int { return &value }

func floatPtr(value float64) *float64 { return &value }

func boolPtr(value bool) *bool { return &value }

func fullAnswerSet() AnswerSet {
	return AnswerSet{
		MorningLiquid:       stringPtr(LiquidWarmLemonWater),
		ConnectionPractices: []string{PracticeMeditation},
		WakeEnergy:          intPtr(5),
		SleepHours:          floatPtr(8),
		WaterIntake:         stringPtr(Water2L),
		PhysicalActivity:    boolPtr(true),
		StressLevel:         intPtr(1),
		EmotionalHunger:     boolPtr(false),
		Gratitude:           stringPtr("grateful"),
		SmallWin:            stringPtr("ran 5k"),
		TomorrowIntention:   stringPtr("sleep early"),
		DayRating:           intPtr(5),
	}
}

func TestScoreFullAnswerSet(t *testing.T) {
	answers := fullAnswerSet()

	breakdown := Score(answers)
	if breakdown.Total != 26 {
		t.Fatalf("expected total 26, got %d", breakdown.Total)
	}
	if len(breakdown.Details) != QuestionCount {
		t.Fatalf("expected %d details, got %d", QuestionCount, len(breakdown.Details))
	}
	for _, detail := range breakdown.Details {
		if !detail.Answered {
			t.Fatalf("expected %s to be answered", detail.Key)
		}
	}
	if progress := Progress(answers); progress != 100 {
		t.Fatalf("expected progress 100, got %d", progress)
	}
}

func TestScoreEmptyAnswerSet(t *testing.T) {
	breakdown := Score(AnswerSet{})
	if breakdown.Total != 0 {
		t.Fatalf("expected total 0, got %d", breakdown.Total)
	}
	for _, detail := range breakdown.Details {
		if detail.Answered {
			t.Fatalf("expected %s to be unanswered", detail.Key)
		}
		if detail.Points != 0 {
			t.Fatalf("expected %s to earn 0 points, got %d", detail.Key, detail.Points)
		}
	}
	if progress := Progress(AnswerSet{}); progress != 0 {
		t.Fatalf("expected progress 0, got %d", progress)
	}
}

func TestScoreTotalEqualsSumOfDetails(t *testing.T) {
	sets := []AnswerSet{
		{},
		fullAnswerSet(),
		{
			MorningLiquid:   stringPtr(LiquidBlackCoffee),
			WakeEnergy:      intPtr(1),
			SleepHours:      floatPtr(3),
			WaterIntake:     stringPtr(WaterUnder500ml),
			StressLevel:     intPtr(5),
			EmotionalHunger: boolPtr(true),
			DayRating:       intPtr(1),
		},
	}

	for _, answers := range sets {
		breakdown := Score(answers)
		sum := 0
		for _, detail := range breakdown.Details {
			sum += detail.Points
		}
		if sum != breakdown.Total {
			t.Fatalf("expected total %d to equal detail sum %d", breakdown.Total, sum)
		}
	}
}

func TestScoreAllowsNegativeTotal(t *testing.T) {
	answers := AnswerSet{
		MorningLiquid:   stringPtr(LiquidOther),
		WakeEnergy:      intPtr(1),
		SleepHours:      floatPtr(4),
		WaterIntake:     stringPtr(WaterUnder500ml),
		StressLevel:     intPtr(5),
		EmotionalHunger: boolPtr(true),
	}
	if total := Score(answers).Total; total != -6 {
		t.Fatalf("expected total -6, got %d", total)
	}
}

func TestScoreIsIdempotent(t *testing.T) {
	answers := fullAnswerSet()
	first := Score(answers)
	second := Score(answers)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical breakdowns, got %#v and %#v", first, second)
	}
}

func TestScorePerQuestionTables(t *testing.T) {
	tests := []struct {
		name     string
		answers  AnswerSet
		key      string
		want     int
		answered bool
	}{
		{name: "herbal tea", answers: AnswerSet{MorningLiquid: stringPtr(LiquidHerbalTea)}, key: KeyMorningLiquid, want: 1, answered: true},
		{name: "black coffee", answers: AnswerSet{MorningLiquid: stringPtr(LiquidBlackCoffee)}, key: KeyMorningLiquid, want: -1, answered: true},
		{name: "unknown liquid", answers: AnswerSet{MorningLiquid: stringPtr("Suco")}, key: KeyMorningLiquid, want: 0, answered: false},
		{name: "all practices", answers: AnswerSet{ConnectionPractices: PracticeOptions()}, key: KeyConnectionPractices, want: 6, answered: true},
		{name: "duplicate practice counted once", answers: AnswerSet{ConnectionPractices: []string{PracticePrayer, PracticePrayer}}, key: KeyConnectionPractices, want: 2, answered: true},
		{name: "empty practice set", answers: AnswerSet{ConnectionPractices: []string{}}, key: KeyConnectionPractices, want: 0, answered: true},
		{name: "energy two", answers: AnswerSet{WakeEnergy: intPtr(2)}, key: KeyWakeEnergy, want: 0, answered: true},
		{name: "energy out of range", answers: AnswerSet{WakeEnergy: intPtr(7)}, key: KeyWakeEnergy, want: 0, answered: false},
		{name: "sleep five", answers: AnswerSet{SleepHours: floatPtr(5)}, key: KeySleep, want: 0, answered: true},
		{name: "sleep six", answers: AnswerSet{SleepHours: floatPtr(6)}, key: KeySleep, want: 1, answered: true},
		{name: "sleep seven", answers: AnswerSet{SleepHours: floatPtr(7)}, key: KeySleep, want: 0, answered: true},
		{name: "sleep ten", answers: AnswerSet{SleepHours: floatPtr(10)}, key: KeySleep, want: 2, answered: true},
		{name: "sleep negative", answers: AnswerSet{SleepHours: floatPtr(-1)}, key: KeySleep, want: 0, answered: false},
		{name: "water one liter", answers: AnswerSet{WaterIntake: stringPtr(Water1L)}, key: KeyWater, want: 1, answered: true},
		{name: "water three liters", answers: AnswerSet{WaterIntake: stringPtr(Water3LOrMore)}, key: KeyWater, want: 3, answered: true},
		{name: "no activity", answers: AnswerSet{PhysicalActivity: boolPtr(false)}, key: KeyPhysicalActivity, want: 0, answered: true},
		{name: "stress four", answers: AnswerSet{StressLevel: intPtr(4)}, key: KeyStress, want: 0, answered: true},
		{name: "stress two", answers: AnswerSet{StressLevel: intPtr(2)}, key: KeyStress, want: 2, answered: true},
		{name: "emotional hunger", answers: AnswerSet{EmotionalHunger: boolPtr(true)}, key: KeyEmotionalHunger, want: -1, answered: true},
		{name: "blank gratitude", answers: AnswerSet{Gratitude: stringPtr("")}, key: KeyGratitude, want: 0, answered: false},
		{name: "whitespace small win", answers: AnswerSet{SmallWin: stringPtr("   ")}, key: KeySmallWin, want: 0, answered: false},
		{name: "intention", answers: AnswerSet{TomorrowIntention: stringPtr("walk")}, key: KeyTomorrowIntention, want: 1, answered: true},
		{name: "day rating one", answers: AnswerSet{DayRating: intPtr(1)}, key: KeyDayRating, want: 0, answered: true},
		{name: "day rating three", answers: AnswerSet{DayRating: intPtr(3)}, key: KeyDayRating, want: 2, answered: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			breakdown := Score(testCase.answers)
			var found *ScoreDetail
			for index := range breakdown.Details {
				if breakdown.Details[index].Key == testCase.key {
					found = &breakdown.Details[index]
				}
			}
			if found == nil {
				t.Fatalf("detail %s not found", testCase.key)
			}
			if found.Points != testCase.want {
				t.Fatalf("expected %d points, got %d", testCase.want, found.Points)
			}
			if found.Answered != testCase.answered {
				t.Fatalf("expected answered=%v, got %v", testCase.answered, found.Answered)
			}
			if breakdown.Points(testCase.key) != testCase.want {
				t.Fatalf("Points(%s) mismatch", testCase.key)
			}
		})
	}
}

func TestMaxPointsIndependentOfAnswers(t *testing.T) {
	empty := Score(AnswerSet{})
	full := Score(fullAnswerSet())
	for index := range empty.Details {
		if empty.Details[index].MaxPoints != full.Details[index].MaxPoints {
			t.Fatalf("max points for %s changed with answers", empty.Details[index].Key)
		}
		if empty.Details[index].MaxPoints < 0 {
			t.Fatalf("max points for %s must be non-negative", empty.Details[index].Key)
		}
	}
	if MaxTotal() != 31 {
		t.Fatalf("expected max total 31, got %d", MaxTotal())
	}
}

func TestProgressIsMonotonic(t *testing.T) {
	answers := AnswerSet{}
	previous := Progress(answers)

	steps := []func(*AnswerSet){
		func(a *AnswerSet) { a.MorningLiquid = stringPtr(LiquidOther) },
		func(a *AnswerSet) { a.ConnectionPractices = []string{} },
		func(a *AnswerSet) { a.WakeEnergy = intPtr(1) },
		func(a *AnswerSet) { a.SleepHours = floatPtr(0) },
		func(a *AnswerSet) { a.WaterIntake = stringPtr(WaterUnder500ml) },
		func(a *AnswerSet) { a.PhysicalActivity = boolPtr(false) },
		func(a *AnswerSet) { a.StressLevel = intPtr(5) },
		func(a *AnswerSet) { a.EmotionalHunger = boolPtr(true) },
		func(a *AnswerSet) { a.Gratitude = stringPtr("x") },
		func(a *AnswerSet) { a.SmallWin = stringPtr("y") },
		func(a *AnswerSet) { a.TomorrowIntention = stringPtr("z") },
		func(a *AnswerSet) { a.DayRating = intPtr(1) },
	}
	for index, step := range steps {
		step(&answers)
		current := Progress(answers)
		if current < previous {
			t.Fatalf("progress decreased at step %d: %d -> %d", index, previous, current)
		}
		previous = current
	}
	if previous != 100 {
		t.Fatalf("expected final progress 100, got %d", previous)
	}
}

func TestProgressRounding(t *testing.T) {
	answers := AnswerSet{PhysicalActivity: boolPtr(false)}
	if progress := Progress(answers); progress != 8 {
		t.Fatalf("expected 1/12 to round to 8, got %d", progress)
	}
	answers.Gratitude = stringPtr("")
	if progress := Progress(answers); progress != 8 {
		t.Fatalf("expected empty string to stay undefined, got %d", progress)
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(fullAnswerSet()); err != nil {
		t.Fatalf("expected full answer set to be valid, got %v", err)
	}
	if err := Validate(AnswerSet{}); err != nil {
		t.Fatalf("expected empty answer set to be valid, got %v", err)
	}

	invalid := []AnswerSet{
		{MorningLiquid: stringPtr("Suco")},
		{ConnectionPractices: []string{"Yoga"}},
		{WaterIntake: stringPtr("5L")},
		{SleepHours: floatPtr(25)},
		{WakeEnergy: intPtr(0)},
		{StressLevel: intPtr(6)},
		{DayRating: intPtr(-2)},
	}
	for index, answers := range invalid {
		if err := Validate(answers); !errors.Is(err, ErrInvalidAnswer) {
			t.Fatalf("case %d: expected ErrInvalidAnswer, got %v", index, err)
		}
	}
}

func TestMissionOptionsMatchScoringTables(t *testing.T) {
	options := MissionOptions()
	for _, water := range options.WaterIntakes {
		if err := Validate(AnswerSet{WaterIntake: stringPtr(water)}); err != nil {
			t.Fatalf("offered water option %q fails validation: %v", water, err)
		}
	}
	if err := Validate(AnswerSet{ConnectionPractices: options.ConnectionPractices}); err != nil {
		t.Fatalf("offered practices fail validation: %v", err)
	}
	if options.MaxTotal != MaxTotal() {
		t.Fatalf("expected max total %d, got %d", MaxTotal(), options.MaxTotal)
	}
}
