package db

import "gorm.io/gorm"

type Repositories struct {
	Users       *UserRepository
	Missions    *MissionRepository
	DailyScores *DailyScoreRepository
	Weights     *WeightRepository
	Wheels      *WheelRepository
	Evaluations *EvaluationRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:       NewUserRepository(database),
		Missions:    NewMissionRepository(database),
		DailyScores: NewDailyScoreRepository(database),
		Weights:     NewWeightRepository(database),
		Wheels:      NewWheelRepository(database),
		Evaluations: NewEvaluationRepository(database),
	}
}
