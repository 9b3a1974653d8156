package domain

import (
	"time"
)

var (
	MessageSuccessGetSummary   = "gamification summary retrieved successfully"
	MessageSuccessGetAnalytics = "waste analytics retrieved successfully"

	MessageFailedGetSummary   = "failed to retrieve gamification summary"
	MessageFailedGetAnalytics = "failed to retrieve waste analytics"
)

// Achievement codes awarded by the gamification service.
const (
	AchievementFirstItem     = "first_item"
	AchievementTenItems      = "ten_items"
	AchievementFirstScan     = "first_scan"
	AchievementWeekStreak    = "week_streak"
	AchievementZeroWasteWeek = "zero_waste_week"
)

type (
	AchievementResponse struct {
		Code     string    `json:"code"`
		Name     string    `json:"name"`
		EarnedAt time.Time `json:"earned_at"`
	}

	GamificationSummaryResponse struct {
		CurrentStreak int                   `json:"current_streak"`
		LongestStreak int                   `json:"longest_streak"`
		Achievements  []AchievementResponse `json:"achievements"`
	}

	CategoryWasteStat struct {
		Category   string  `json:"category"`
		Total      int     `json:"total"`
		Wasted     int     `json:"wasted"`
		WasteRatio float64 `json:"waste_ratio"`
	}

	MonthlyWasteStat struct {
		Month    string `json:"month"` // "2006-01"
		Consumed int    `json:"consumed"`
		Wasted   int    `json:"wasted"`
	}

	WasteAnalyticsResponse struct {
		ConsumedItems int                 `json:"consumed_items"`
		WastedItems   int                 `json:"wasted_items"`
		WasteRatio    float64             `json:"waste_ratio"`
		ByCategory    []CategoryWasteStat `json:"by_category"`
		ByMonth       []MonthlyWasteStat  `json:"by_month"`
	}
)
