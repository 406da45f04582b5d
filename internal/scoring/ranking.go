package scoring

import (
	"math"
	"sort"
	"time"
)

const DefaultDisplayName = "Usuário"

// RankInput is one persisted daily total joined with its owner's profile.
type RankInput struct {
	UserID    uint
	Name      string
	AvatarURL string
	Date      time.Time
	Total     int
}

type WeeklyRankingEntry struct {
	UserID        uint    `json:"user_id"`
	Name          string  `json:"name"`
	AvatarURL     string  `json:"avatar_url,omitempty"`
	DailyTotals   []int   `json:"daily_totals"`
	WeeklyAverage float64 `json:"weekly_average"`
	WeeklyPoints  int     `json:"weekly_points"`
	Position      int     `json:"position"`
	Streak        int     `json:"streak"`
}

type StreakSource interface {
	Streak(userID uint) int
}

type StreakFunc func(userID uint) int

func (fn StreakFunc) Streak(userID uint) int {
	return fn(userID)
}

// NoStreaks reports zero for every user. Streak tracking has no agreed
// consecutive-day rule yet, so the ranking only carries whatever a source reports.
var NoStreaks StreakSource = StreakFunc(func(uint) int { return 0 })

// Rank groups the records inside the inclusive [windowStart, windowEnd] day window
// by user, averages each user's daily totals and orders users by that average.
// Users with equal averages keep the order in which they were first encountered.
func Rank(records []RankInput, windowStart time.Time, windowEnd time.Time, streaks StreakSource) []WeeklyRankingEntry {
	if streaks == nil {
		streaks = NoStreaks
	}

	fromKey := dayKey(windowStart)
	toKey := dayKey(windowEnd)

	entries := make([]WeeklyRankingEntry, 0)
	indexByUser := make(map[uint]int)
	for _, record := range records {
		key := dayKey(record.Date)
		if key < fromKey || key > toKey {
			continue
		}

		index, exists := indexByUser[record.UserID]
		if !exists {
			name := record.Name
			if name == "" {
				name = DefaultDisplayName
			}
			entries = append(entries, WeeklyRankingEntry{
				UserID:      record.UserID,
				Name:        name,
				AvatarURL:   record.AvatarURL,
				DailyTotals: []int{},
			})
			index = len(entries) - 1
			indexByUser[record.UserID] = index
		}
		entries[index].DailyTotals = append(entries[index].DailyTotals, record.Total)
	}

	for index := range entries {
		entries[index].WeeklyAverage = mean(entries[index].DailyTotals)
		entries[index].WeeklyPoints = roundHalfUp(entries[index].WeeklyAverage)
		entries[index].Streak = streaks.Streak(entries[index].UserID)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].WeeklyAverage > entries[j].WeeklyAverage
	})
	for index := range entries {
		entries[index].Position = index + 1
	}
	return entries
}

// RankingPeriod summarizes a ranking over its window.
type RankingPeriod struct {
	StartDate         string               `json:"start_date"`
	EndDate           string               `json:"end_date"`
	Rankings          []WeeklyRankingEntry `json:"rankings"`
	TotalParticipants int                  `json:"total_participants"`
	AveragePoints     float64              `json:"average_points"`
	TopScore          int                  `json:"top_score"`
}

func SummarizePeriod(entries []WeeklyRankingEntry, windowStart time.Time, windowEnd time.Time) RankingPeriod {
	period := RankingPeriod{
		StartDate:         windowStart.Format("2006-01-02"),
		EndDate:           windowEnd.Format("2006-01-02"),
		Rankings:          entries,
		TotalParticipants: len(entries),
	}
	if len(entries) == 0 {
		return period
	}

	sum := 0.0
	for _, entry := range entries {
		sum += entry.WeeklyAverage
	}
	period.AveragePoints = sum / float64(len(entries))
	period.TopScore = entries[0].WeeklyPoints
	return period
}

func mean(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, value := range values {
		sum += value
	}
	return float64(sum) / float64(len(values))
}

func roundHalfUp(value float64) int {
	return int(math.Floor(value + 0.5))
}

func dayKey(value time.Time) int {
	year, month, day := value.Date()
	return year*10000 + int(month)*100 + day
}
