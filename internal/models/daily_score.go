package models

import "time"

type DailyScore struct {
	ID                     uint      `gorm:"primaryKey" json:"id"`
	UserID                 uint      `gorm:"not null;uniqueIndex:uidx_score_user_date" json:"user_id"`
	Date                   time.Time `gorm:"type:date;not null;uniqueIndex:uidx_score_user_date" json:"date"`
	MorningLiquidPoints    int       `gorm:"not null;default:0" json:"pontos_liquido_manha"`
	ConnectionPoints       int       `gorm:"not null;default:0" json:"pontos_conexao_interna"`
	WakeEnergyPoints       int       `gorm:"not null;default:0" json:"pontos_energia_acordar"`
	SleepPoints            int       `gorm:"not null;default:0" json:"pontos_sono"`
	WaterPoints            int       `gorm:"not null;default:0" json:"pontos_agua"`
	PhysicalActivityPoints int       `gorm:"not null;default:0" json:"pontos_atividade_fisica"`
	StressPoints           int       `gorm:"not null;default:0" json:"pontos_estresse"`
	EmotionalHungerPoints  int       `gorm:"not null;default:0" json:"pontos_fome_emocional"`
	GratitudePoints        int       `gorm:"not null;default:0" json:"pontos_gratidao"`
	SmallWinPoints         int       `gorm:"not null;default:0" json:"pontos_pequena_vitoria"`
	IntentionPoints        int       `gorm:"not null;default:0" json:"pontos_intencao_amanha"`
	DayRatingPoints        int       `gorm:"not null;default:0" json:"pontos_avaliacao_dia"`
	TotalPoints            int       `gorm:"not null;default:0" json:"total_pontos_dia"`
	Category               string    `gorm:"not null;default:baixa" json:"categoria_dia"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// DailyScoreWithProfile is a score row joined with its owner's public profile.
type DailyScoreWithProfile struct {
	UserID      uint
	Date        time.Time
	TotalPoints int
	Name        string
	AvatarURL   string
}
