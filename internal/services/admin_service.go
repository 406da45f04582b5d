package services

import (
	"errors"
	"time"

	"github.com/rafaeldias2025/oficial-27/internal/models"
)

var (
	ErrAdminRequired   = errors.New("admin role required")
	ErrAdminListFailed = errors.New("admin list users failed")
)

type AdminUserRepository interface {
	FindByID(userID uint) (models.User, error)
	ListWithLatestScore() ([]models.UserScoreSummary, error)
}

type AdminService struct {
	users  AdminUserRepository
	scores DailyScoreRepository
}

func NewAdminService(users AdminUserRepository, scores DailyScoreRepository) *AdminService {
	return &AdminService{users: users, scores: scores}
}

// IsAdmin reports whether the stored profile carries the admin role.
func (service *AdminService) IsAdmin(userID uint) (bool, error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return false, ErrUserLookupFailed
	}
	return user.IsAdmin(), nil
}

func (service *AdminService) ListUsers() ([]models.UserScoreSummary, error) {
	summaries, err := service.users.ListWithLatestScore()
	if err != nil {
		return nil, ErrAdminListFailed
	}
	return summaries, nil
}

func (service *AdminService) UserScores(userID uint, from time.Time, to time.Time, location *time.Location) ([]models.DailyScore, error) {
	if _, err := service.users.FindByID(userID); err != nil {
		return nil, ErrUserNotFound
	}

	fromStart, toEnd := DayKeyRange(from, to, location)
	if !toEnd.After(fromStart) {
		return nil, ErrInvalidScoreRange
	}
	scores, err := service.scores.ListByUserRange(userID, fromStart, toEnd)
	if err != nil {
		return nil, ErrScoreLoadFailed
	}
	return scores, nil
}
