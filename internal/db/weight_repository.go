package db

import (
	"time"

	"github.com/rafaeldias2025/oficial-27/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WeightRepository struct {
	database *gorm.DB
}

func NewWeightRepository(database *gorm.DB) *WeightRepository {
	return &WeightRepository{database: database}
}

func (repo *WeightRepository) CreateMeasurement(measurement *models.WeightMeasurement) error {
	return repo.database.Create(measurement).Error
}

func (repo *WeightRepository) ListMeasurements(userID uint, fromStart *time.Time, toEnd *time.Time) ([]models.WeightMeasurement, error) {
	query := repo.database.Model(&models.WeightMeasurement{}).Where("user_id = ?", userID)
	if fromStart != nil {
		query = query.Where("measured_at >= ?", *fromStart)
	}
	if toEnd != nil {
		query = query.Where("measured_at < ?", *toEnd)
	}

	measurements := make([]models.WeightMeasurement, 0)
	if err := query.Order("measured_at ASC, id ASC").Find(&measurements).Error; err != nil {
		return nil, err
	}
	return measurements, nil
}

func (repo *WeightRepository) UpsertDevice(device *models.ScaleDevice) error {
	return repo.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "device_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "manufacturer", "service_uuid", "characteristic_uuid", "last_connection"}),
	}).Create(device).Error
}

func (repo *WeightRepository) FindDevice(userID uint, deviceID string) (models.ScaleDevice, bool, error) {
	device := models.ScaleDevice{}
	result := repo.database.Where("user_id = ? AND device_id = ?", userID, deviceID).Limit(1).Find(&device)
	if result.Error != nil {
		return models.ScaleDevice{}, false, result.Error
	}
	return device, result.RowsAffected > 0, nil
}

func (repo *WeightRepository) ListDevices(userID uint) ([]models.ScaleDevice, error) {
	devices := make([]models.ScaleDevice, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("created_at ASC").Find(&devices).Error; err != nil {
		return nil, err
	}
	return devices, nil
}
