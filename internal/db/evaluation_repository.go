package db

import (
	"time"

	"github.com/rafaeldias2025/oficial-27/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var weeklyEvaluationUpsertColumns = []string{
	"week_end",
	"previous_goals",
	"goals_achieved",
	"not_achieved_reason",
	"positive_points",
	"improvement_points",
	"next_week_goals",
	"additional_notes",
	"mood",
	"energy_level",
	"sleep_quality",
	"stress_level",
	"nutrition_quality",
	"exercise_frequency",
	"learning",
	"performance",
	"updated_at",
}

type EvaluationRepository struct {
	database *gorm.DB
}

func NewEvaluationRepository(database *gorm.DB) *EvaluationRepository {
	return &EvaluationRepository{database: database}
}

func (repo *EvaluationRepository) FindByUserAndWeek(userID uint, weekStart time.Time) (models.WeeklyEvaluation, bool, error) {
	evaluation := models.WeeklyEvaluation{}
	result := repo.database.
		Where("user_id = ? AND week_start = ?", userID, weekStart).
		Limit(1).
		Find(&evaluation)
	if result.Error != nil {
		return models.WeeklyEvaluation{}, false, result.Error
	}
	return evaluation, result.RowsAffected > 0, nil
}

func (repo *EvaluationRepository) Upsert(evaluation *models.WeeklyEvaluation) error {
	return repo.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "week_start"}},
		DoUpdates: clause.AssignmentColumns(weeklyEvaluationUpsertColumns),
	}).Create(evaluation).Error
}

func (repo *EvaluationRepository) ListByUser(userID uint) ([]models.WeeklyEvaluation, error) {
	evaluations := make([]models.WeeklyEvaluation, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("week_start ASC").Find(&evaluations).Error; err != nil {
		return nil, err
	}
	return evaluations, nil
}
