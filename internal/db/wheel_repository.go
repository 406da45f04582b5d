package db

import (
	"github.com/rafaeldias2025/oficial-27/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WheelRepository struct {
	database *gorm.DB
}

func NewWheelRepository(database *gorm.DB) *WheelRepository {
	return &WheelRepository{database: database}
}

func (repo *WheelRepository) Find(userID uint, sessionID string, wheelType string) (models.WheelResponse, bool, error) {
	response := models.WheelResponse{}
	result := repo.database.
		Where("user_id = ? AND session_id = ? AND wheel_type = ?", userID, sessionID, wheelType).
		Limit(1).
		Find(&response)
	if result.Error != nil {
		return models.WheelResponse{}, false, result.Error
	}
	return response, result.RowsAffected > 0, nil
}

func (repo *WheelRepository) Upsert(response *models.WheelResponse) error {
	return repo.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "session_id"}, {Name: "wheel_type"}},
		DoUpdates: clause.AssignmentColumns([]string{"scores", "reflection_answers", "completed_at", "updated_at"}),
	}).Create(response).Error
}

func (repo *WheelRepository) ListBySession(userID uint, sessionID string) ([]models.WheelResponse, error) {
	responses := make([]models.WheelResponse, 0)
	if err := repo.database.
		Where("user_id = ? AND session_id = ?", userID, sessionID).
		Order("wheel_type ASC").
		Find(&responses).Error; err != nil {
		return nil, err
	}
	return responses, nil
}
