package db

import (
	"time"

	"github.com/rafaeldias2025/oficial-27/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MissionRepository struct {
	database *gorm.DB
}

func NewMissionRepository(database *gorm.DB) *MissionRepository {
	return &MissionRepository{database: database}
}

func (repo *MissionRepository) FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.DailyMission, bool, error) {
	mission := models.DailyMission{}
	result := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Order("date DESC, id DESC").
		Limit(1).
		Find(&mission)
	if result.Error != nil {
		return models.DailyMission{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DailyMission{}, false, nil
	}
	return mission, true, nil
}

// SaveDay stores the day's answers and the score derived from them atomically,
// so a score row never outlives the answers that produced it.
func (repo *MissionRepository) SaveDay(mission *models.DailyMission, score *models.DailyScore) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"answers", "progress", "updated_at"}),
		}).Create(mission).Error; err != nil {
			return err
		}
		return upsertDailyScore(tx, score)
	})
}
