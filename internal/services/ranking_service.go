package services

import (
	"errors"
	"time"

	"github.com/rafaeldias2025/oficial-27/internal/models"
	"github.com/rafaeldias2025/oficial-27/internal/scoring"
)

const DefaultRankingWindowDays = 7

var (
	ErrRankingLoadFailed   = errors.New("load ranking failed")
	ErrInvalidRankingRange = errors.New("invalid ranking range")
)

type RankingScoreRepository interface {
	ListWindowWithProfiles(fromStart time.Time, toEnd time.Time) ([]models.DailyScoreWithProfile, error)
}

type RankingService struct {
	scores     RankingScoreRepository
	streaks    scoring.StreakSource
	windowDays int
}

func NewRankingService(scores RankingScoreRepository, windowDays int) *RankingService {
	if windowDays < 1 {
		windowDays = DefaultRankingWindowDays
	}
	return &RankingService{
		scores:     scores,
		streaks:    scoring.NoStreaks,
		windowDays: windowDays,
	}
}

func (service *RankingService) WithStreaks(streaks scoring.StreakSource) *RankingService {
	if streaks != nil {
		service.streaks = streaks
	}
	return service
}

// WeeklyRanking ranks the window ending on the calendar day of now and starting
// windowDays before it, both days included.
func (service *RankingService) WeeklyRanking(now time.Time, location *time.Location) (scoring.RankingPeriod, error) {
	end := DateAtLocation(now, location)
	start := end.AddDate(0, 0, -service.windowDays)
	return service.RankingForRange(start, end, location)
}

func (service *RankingService) RankingForRange(from time.Time, to time.Time, location *time.Location) (scoring.RankingPeriod, error) {
	fromStart, toEnd := DayKeyRange(from, to, location)
	toDay := toEnd.AddDate(0, 0, -1)
	if toDay.Before(fromStart) {
		return scoring.RankingPeriod{}, ErrInvalidRankingRange
	}

	rows, err := service.scores.ListWindowWithProfiles(fromStart, toEnd)
	if err != nil {
		return scoring.RankingPeriod{}, ErrRankingLoadFailed
	}

	records := make([]scoring.RankInput, 0, len(rows))
	for _, row := range rows {
		records = append(records, scoring.RankInput{
			UserID:    row.UserID,
			Name:      row.Name,
			AvatarURL: row.AvatarURL,
			Date:      DayKey(row.Date, time.UTC),
			Total:     row.TotalPoints,
		})
	}

	entries := scoring.Rank(records, fromStart, toDay, service.streaks)
	return scoring.SummarizePeriod(entries, fromStart, toDay), nil
}
