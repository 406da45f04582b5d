package models

import "time"

const (
	MeasurementSourceScale  = "scale"
	MeasurementSourceManual = "manual"
)

type WeightMeasurement struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"not null;index" json:"user_id"`
	MeasuredAt      time.Time `gorm:"not null;index" json:"measured_at"`
	WeightKg        float64   `gorm:"not null" json:"weight"`
	BMI             *float64  `json:"bmi,omitempty"`
	BodyFat         *float64  `json:"body_fat,omitempty"`
	MuscleMass      *float64  `json:"muscle_mass,omitempty"`
	WaterPercentage *float64  `json:"water_percentage,omitempty"`
	VisceralFat     *int      `json:"visceral_fat,omitempty"`
	BodyAge         *int      `json:"body_age,omitempty"`
	Source          string    `gorm:"not null;default:manual" json:"source"`
	DeviceID        string    `gorm:"not null;default:''" json:"device_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type ScaleDevice struct {
	ID                 string     `gorm:"primaryKey" json:"id"`
	UserID             uint       `gorm:"not null;uniqueIndex:uidx_scale_user_device" json:"user_id"`
	DeviceID           string     `gorm:"not null;uniqueIndex:uidx_scale_user_device" json:"device_id"`
	Name               string     `gorm:"not null" json:"name"`
	Manufacturer       string     `gorm:"not null;default:''" json:"manufacturer,omitempty"`
	ServiceUUID        string     `gorm:"not null;default:''" json:"service_uuid,omitempty"`
	CharacteristicUUID string     `gorm:"not null;default:''" json:"characteristic_uuid,omitempty"`
	LastConnection     *time.Time `json:"last_connection,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}
