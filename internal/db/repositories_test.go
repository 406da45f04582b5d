package db

import (
	"testing"
	"time"

	"github.com/rafaeldias2025/oficial-27/internal/models"
	"github.com/rafaeldias2025/oficial-27/internal/scoring"
	"gorm.io/gorm"
)

func createUserForTest(t *testing.T, database *gorm.DB, email string, name string) models.User {
	t.Helper()

	user := models.User{
		Email:        email,
		PasswordHash: "hash",
		Name:         name,
		Role:         models.RoleUser,
		Status:       models.StatusActive,
		CreatedAt:    time.Now().UTC(),
	}
	if err := NewUserRepository(database).Create(&user); err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return user
}

func TestCreateUserRejectsDuplicateNormalizedEmail(t *testing.T) {
	database := openSQLiteForTest(t)
	createUserForTest(t, database, "QA-Test2@Sonhos.Local", "QA")

	duplicate := models.User{
		Email:        "qa-test2@sonhos.local",
		PasswordHash: "hash-2",
		Role:         models.RoleUser,
		CreatedAt:    time.Now().UTC(),
	}
	if err := NewUserRepository(database).Create(&duplicate); err == nil {
		t.Fatal("expected duplicate normalized email insert to fail")
	}

	exists, err := NewUserRepository(database).ExistsByNormalizedEmail("qa-test2@sonhos.local")
	if err != nil {
		t.Fatalf("exists by normalized email: %v", err)
	}
	if !exists {
		t.Fatal("expected normalized email lookup to match mixed-case stored email")
	}
}

func TestDailyScoreUpsertReplacesSameDay(t *testing.T) {
	database := openSQLiteForTest(t)
	user := createUserForTest(t, database, "ana@example.com", "Ana")
	repo := NewDailyScoreRepository(database)
	day := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

	first := models.DailyScore{UserID: user.ID, Date: day, WaterPoints: 1, TotalPoints: 1, Category: string(scoring.TierLow)}
	if err := repo.Upsert(&first); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	second := models.DailyScore{UserID: user.ID, Date: day, WaterPoints: 3, TotalPoints: 26, Category: string(scoring.TierLow)}
	if err := repo.Upsert(&second); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	scores, err := repo.ListByUserRange(user.ID, day, day.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("list scores: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("expected one row per user and day, got %d", len(scores))
	}
	if scores[0].TotalPoints != 26 || scores[0].WaterPoints != 3 {
		t.Fatalf("expected second write to win, got %#v", scores[0])
	}
}

func TestListWindowWithProfilesJoinsUsers(t *testing.T) {
	database := openSQLiteForTest(t)
	ana := createUserForTest(t, database, "ana@example.com", "Ana")
	bia := createUserForTest(t, database, "bia@example.com", "Bia")
	repo := NewDailyScoreRepository(database)
	start := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	rows := []models.DailyScore{
		{UserID: ana.ID, Date: start, TotalPoints: 10, Category: "baixa"},
		{UserID: bia.ID, Date: start.AddDate(0, 0, 1), TotalPoints: 20, Category: "baixa"},
		{UserID: ana.ID, Date: start.AddDate(0, 0, 9), TotalPoints: 99, Category: "medio"},
	}
	for index := range rows {
		if err := repo.Upsert(&rows[index]); err != nil {
			t.Fatalf("upsert row %d: %v", index, err)
		}
	}

	window, err := repo.ListWindowWithProfiles(start, start.AddDate(0, 0, 8))
	if err != nil {
		t.Fatalf("list window: %v", err)
	}
	if len(window) != 2 {
		t.Fatalf("expected 2 rows inside the window, got %d", len(window))
	}
	if window[0].Name != "Ana" || window[1].Name != "Bia" {
		t.Fatalf("expected rows ordered by date with profile names, got %#v", window)
	}
}

func TestMissionSaveDayWritesMissionAndScore(t *testing.T) {
	database := openSQLiteForTest(t)
	user := createUserForTest(t, database, "ana@example.com", "Ana")
	missions := NewMissionRepository(database)
	day := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

	water := scoring.Water2L
	mission := models.DailyMission{UserID: user.ID, Date: day, Answers: scoring.AnswerSet{WaterIntake: &water}, Progress: 8}
	score := models.DailyScore{UserID: user.ID, Date: day, WaterPoints: 2, TotalPoints: 2, Category: "baixa"}
	if err := missions.SaveDay(&mission, &score); err != nil {
		t.Fatalf("save day: %v", err)
	}

	stored, found, err := missions.FindByUserAndDayRange(user.ID, day, day.AddDate(0, 0, 1))
	if err != nil || !found {
		t.Fatalf("expected stored mission, found=%v err=%v", found, err)
	}
	if stored.Answers.WaterIntake == nil || *stored.Answers.WaterIntake != scoring.Water2L {
		t.Fatalf("expected answers to round-trip, got %#v", stored.Answers)
	}

	storedScore, found, err := NewDailyScoreRepository(database).FindByUserAndDayRange(user.ID, day, day.AddDate(0, 0, 1))
	if err != nil || !found {
		t.Fatalf("expected stored score, found=%v err=%v", found, err)
	}
	if storedScore.TotalPoints != 2 {
		t.Fatalf("expected total 2, got %d", storedScore.TotalPoints)
	}
}

func TestListWithLatestScore(t *testing.T) {
	database := openSQLiteForTest(t)
	ana := createUserForTest(t, database, "ana@example.com", "Ana")
	createUserForTest(t, database, "bia@example.com", "Bia")
	repo := NewDailyScoreRepository(database)
	day := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

	for offset, total := range []int{40, 70} {
		score := models.DailyScore{UserID: ana.ID, Date: day.AddDate(0, 0, offset), TotalPoints: total, Category: "medio"}
		if err := repo.Upsert(&score); err != nil {
			t.Fatalf("upsert score: %v", err)
		}
	}

	summaries, err := NewUserRepository(database).ListWithLatestScore()
	if err != nil {
		t.Fatalf("list with latest score: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected 2 users, got %d", len(summaries))
	}
	if summaries[0].LastTotal == nil || *summaries[0].LastTotal != 70 || summaries[0].ScoredDays != 2 {
		t.Fatalf("unexpected summary for Ana: %#v", summaries[0])
	}
	if summaries[1].LastTotal != nil || summaries[1].ScoredDays != 0 {
		t.Fatalf("expected Bia without scores, got %#v", summaries[1])
	}
}

func TestWheelAndEvaluationUpserts(t *testing.T) {
	database := openSQLiteForTest(t)
	user := createUserForTest(t, database, "ana@example.com", "Ana")
	wheels := NewWheelRepository(database)

	first := models.WheelResponse{UserID: user.ID, SessionID: "s-1", WheelType: "roda_vida", Scores: map[string]int{"saude": 4}}
	if err := wheels.Upsert(&first); err != nil {
		t.Fatalf("first wheel upsert: %v", err)
	}
	second := models.WheelResponse{UserID: user.ID, SessionID: "s-1", WheelType: "roda_vida", Scores: map[string]int{"saude": 9}}
	if err := wheels.Upsert(&second); err != nil {
		t.Fatalf("second wheel upsert: %v", err)
	}
	stored, found, err := wheels.Find(user.ID, "s-1", "roda_vida")
	if err != nil || !found {
		t.Fatalf("expected stored wheel, found=%v err=%v", found, err)
	}
	if stored.Scores["saude"] != 9 {
		t.Fatalf("expected replaced wheel scores, got %#v", stored.Scores)
	}

	evaluations := NewEvaluationRepository(database)
	weekStart := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	evaluation := models.WeeklyEvaluation{UserID: user.ID, WeekStart: weekStart, WeekEnd: weekStart.AddDate(0, 0, 6), Mood: models.MoodGood, EnergyLevel: 3}
	if err := evaluations.Upsert(&evaluation); err != nil {
		t.Fatalf("first evaluation upsert: %v", err)
	}
	evaluation = models.WeeklyEvaluation{UserID: user.ID, WeekStart: weekStart, WeekEnd: weekStart.AddDate(0, 0, 6), Mood: models.MoodGreat, EnergyLevel: 5}
	if err := evaluations.Upsert(&evaluation); err != nil {
		t.Fatalf("second evaluation upsert: %v", err)
	}

	list, err := evaluations.ListByUser(user.ID)
	if err != nil {
		t.Fatalf("list evaluations: %v", err)
	}
	if len(list) != 1 || list[0].EnergyLevel != 5 || list[0].Mood != models.MoodGreat {
		t.Fatalf("expected one replaced evaluation, got %#v", list)
	}
}
