package db

import (
	"time"

	"github.com/rafaeldias2025/oficial-27/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var dailyScoreUpsertColumns = []string{
	"morning_liquid_points",
	"connection_points",
	"wake_energy_points",
	"sleep_points",
	"water_points",
	"physical_activity_points",
	"stress_points",
	"emotional_hunger_points",
	"gratitude_points",
	"small_win_points",
	"intention_points",
	"day_rating_points",
	"total_points",
	"category",
	"updated_at",
}

type DailyScoreRepository struct {
	database *gorm.DB
}

func NewDailyScoreRepository(database *gorm.DB) *DailyScoreRepository {
	return &DailyScoreRepository{database: database}
}

func (repo *DailyScoreRepository) ListByUserRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.DailyScore, error) {
	scores := make([]models.DailyScore, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, fromStart, toEnd).
		Order("date ASC, id ASC").
		Find(&scores).Error; err != nil {
		return nil, err
	}
	return scores, nil
}

// ListWindowWithProfiles returns every user's scores in [fromStart, toEnd) joined
// with the owner's display name and avatar.
func (repo *DailyScoreRepository) ListWindowWithProfiles(fromStart time.Time, toEnd time.Time) ([]models.DailyScoreWithProfile, error) {
	rows := make([]models.DailyScoreWithProfile, 0)
	if err := repo.database.
		Table("daily_scores").
		Select("daily_scores.user_id, daily_scores.date, daily_scores.total_points, users.name, users.avatar_url").
		Joins("JOIN users ON users.id = daily_scores.user_id").
		Where("daily_scores.date >= ? AND daily_scores.date < ?", fromStart, toEnd).
		Order("daily_scores.date ASC, daily_scores.id ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (repo *DailyScoreRepository) FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.DailyScore, bool, error) {
	score := models.DailyScore{}
	result := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Order("date DESC, id DESC").
		Limit(1).
		Find(&score)
	if result.Error != nil {
		return models.DailyScore{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DailyScore{}, false, nil
	}
	return score, true, nil
}

// Upsert writes the record, replacing every scored field when a row for the same
// (user_id, date) already exists.
func (repo *DailyScoreRepository) Upsert(score *models.DailyScore) error {
	return upsertDailyScore(repo.database, score)
}

func upsertDailyScore(database *gorm.DB, score *models.DailyScore) error {
	return database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns(dailyScoreUpsertColumns),
	}).Create(score).Error
}
