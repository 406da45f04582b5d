package models

import "time"

const (
	MoodGreat   = "otimo"
	MoodGood    = "bom"
	MoodRegular = "regular"
	MoodBad     = "ruim"
	MoodAwful   = "pessimo"
)

type EvaluationLearning struct {
	BestMoment           string `json:"melhor_acontecimento"`
	BiggestChallenge     string `json:"maior_desafio"`
	MentorAdvice         string `json:"conselho_mentor"`
	SaboteurLearning     string `json:"maior_aprendizado_sabotador"`
	SelfSabotageMoment   string `json:"momento_percebi_sabotando"`
	WeekName             string `json:"nome_semana"`
	FeelingAboutLastWeek string `json:"relacao_ultima_semana"`
}

type WeeklyEvaluation struct {
	ID                uint               `gorm:"primaryKey" json:"id"`
	UserID            uint               `gorm:"not null;uniqueIndex:uidx_evaluation_user_week" json:"user_id"`
	WeekStart         time.Time          `gorm:"type:date;not null;uniqueIndex:uidx_evaluation_user_week" json:"week_start_date"`
	WeekEnd           time.Time          `gorm:"type:date;not null" json:"week_end_date"`
	PreviousGoals     string             `gorm:"not null;default:''" json:"objetivos_semana_anterior"`
	GoalsAchieved     bool               `gorm:"not null;default:false" json:"objetivos_alcancados"`
	NotAchievedReason string             `gorm:"not null;default:''" json:"motivo_nao_alcancado,omitempty"`
	PositivePoints    []string           `gorm:"serializer:json" json:"pontos_positivos"`
	ImprovementPoints []string           `gorm:"serializer:json" json:"pontos_melhorar"`
	NextWeekGoals     string             `gorm:"not null;default:''" json:"objetivos_proxima_semana"`
	AdditionalNotes   string             `gorm:"not null;default:''" json:"notas_adicionais,omitempty"`
	Mood              string             `gorm:"not null;default:regular" json:"humor_semana"`
	EnergyLevel       int                `gorm:"not null" json:"nivel_energia"`
	SleepQuality      int                `gorm:"not null" json:"qualidade_sono"`
	StressLevel       int                `gorm:"not null" json:"nivel_estresse"`
	NutritionQuality  int                `gorm:"not null" json:"alimentacao_qualidade"`
	ExerciseFrequency int                `gorm:"not null" json:"exercicios_frequencia"`
	Learning          EvaluationLearning `gorm:"serializer:json" json:"aprendizado_semana"`
	Performance       map[string]int     `gorm:"serializer:json" json:"desempenho_semanal"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}
