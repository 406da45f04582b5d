package api

import (
	"errors"
	"time"

	"github.com/rafaeldias2025/oficial-27/internal/db"
	"github.com/rafaeldias2025/oficial-27/internal/i18n"
	"github.com/rafaeldias2025/oficial-27/internal/services"
	"gorm.io/gorm"
)

const (
	defaultAuthTokenTTL  = 7 * 24 * time.Hour
	rememberAuthTokenTTL = 30 * 24 * time.Hour

	loginAttemptLimit  = 8
	loginAttemptWindow = 15 * time.Minute
)

type HandlerOptions struct {
	CookieSecure       bool
	RankingWindowDays  int
	UserHeightDefaultM float64
}

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
	i18n         *i18n.Manager
	loginLimiter *attemptLimiter

	repositories      *db.Repositories
	authService       *services.AuthService
	missionService    *services.MissionService
	rankingService    *services.RankingService
	scaleService      *services.ScaleService
	wheelService      *services.WheelService
	evaluationService *services.EvaluationService
	adminService      *services.AdminService
}

func NewHandler(database *gorm.DB, secret string, location *time.Location, i18nManager *i18n.Manager, options HandlerOptions) (*Handler, error) {
	if database == nil {
		return nil, errors.New("database is required")
	}
	if location == nil {
		location = time.Local
	}
	if i18nManager == nil {
		return nil, errors.New("i18n manager is required")
	}

	handler := &Handler{
		db:           database,
		secretKey:    []byte(secret),
		location:     location,
		cookieSecure: options.CookieSecure,
		i18n:         i18nManager,
		loginLimiter: newAttemptLimiter(loginAttemptLimit, loginAttemptWindow),
	}
	return handler.withDependencies(database, options), nil
}
