package models

import (
	"time"

	"github.com/rafaeldias2025/oficial-27/internal/scoring"
)

type DailyMission struct {
	ID        uint              `gorm:"primaryKey" json:"id"`
	UserID    uint              `gorm:"not null;uniqueIndex:uidx_mission_user_date" json:"user_id"`
	Date      time.Time         `gorm:"type:date;not null;uniqueIndex:uidx_mission_user_date" json:"date"`
	Answers   scoring.AnswerSet `gorm:"serializer:json" json:"answers"`
	Progress  int               `gorm:"not null;default:0" json:"progress"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}
