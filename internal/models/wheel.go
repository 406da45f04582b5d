package models

import "time"

type WheelResponse struct {
	ID                uint              `gorm:"primaryKey" json:"id"`
	UserID            uint              `gorm:"not null;uniqueIndex:uidx_wheel_user_session_type" json:"user_id"`
	SessionID         string            `gorm:"not null;uniqueIndex:uidx_wheel_user_session_type" json:"session_id"`
	WheelType         string            `gorm:"not null;uniqueIndex:uidx_wheel_user_session_type" json:"wheel_type"`
	Scores            map[string]int    `gorm:"serializer:json" json:"responses"`
	ReflectionAnswers map[string]string `gorm:"serializer:json" json:"reflection_answers"`
	CompletedAt       time.Time         `gorm:"not null" json:"completed_at"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}
