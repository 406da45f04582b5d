package api

import (
	"github.com/rafaeldias2025/oficial-27/internal/db"
	"github.com/rafaeldias2025/oficial-27/internal/services"
	"github.com/rafaeldias2025/oficial-27/internal/wheel"
	"gorm.io/gorm"
)

func (handler *Handler) withDependencies(database *gorm.DB, options HandlerOptions) *Handler {
	repositories := db.NewRepositories(database)
	handler.repositories = repositories
	handler.authService = services.NewAuthService(repositories.Users)
	handler.missionService = services.NewMissionService(repositories.Missions, repositories.DailyScores)
	handler.rankingService = services.NewRankingService(repositories.DailyScores, options.RankingWindowDays)
	handler.scaleService = services.NewScaleService(repositories.Weights, repositories.Users, options.UserHeightDefaultM)
	handler.wheelService = services.NewWheelService(repositories.Wheels, wheel.DefaultCatalog())
	handler.evaluationService = services.NewEvaluationService(repositories.Evaluations)
	handler.adminService = services.NewAdminService(repositories.Users, repositories.DailyScores)
	return handler
}
