package gamification

import (
	"Pantry-Backend/domain"
	"Pantry-Backend/entities"
	"context"
	"log"
	"time"

	"github.com/google/uuid"
)

type (
	GamificationService interface {
		// RecordActivity advances the user's daily streak and re-evaluates
		// achievements. Safe to call multiple times per day.
		RecordActivity(ctx context.Context, userID string) error
		GetSummary(ctx context.Context, userID string) (domain.GamificationSummaryResponse, error)
		GetWasteAnalytics(ctx context.Context, userID string) (domain.WasteAnalyticsResponse, error)
	}

	gamificationService struct {
		repository GamificationRepository
	}
)

var achievementNames = map[string]string{
	domain.AchievementFirstItem:     "First Item Logged",
	domain.AchievementTenItems:      "Pantry Regular",
	domain.AchievementFirstScan:     "First Barcode Scan",
	domain.AchievementWeekStreak:    "Week-Long Streak",
	domain.AchievementZeroWasteWeek: "Zero Waste Week",
}

func NewGamificationService(repository GamificationRepository) GamificationService {
	return &gamificationService{repository: repository}
}

func (s *gamificationService) RecordActivity(ctx context.Context, userID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	streak, err := s.repository.GetStreak(ctx, userUUID)
	if err != nil {
		return err
	}

	updated := NextStreak(streak, userUUID, time.Now())
	if err := s.repository.UpsertStreak(ctx, &updated); err != nil {
		return err
	}

	s.evaluateAchievements(ctx, userUUID, &updated)
	return nil
}

// NextStreak applies one day of activity to a streak: same-day activity is a
// no-op, next-day activity extends the run, anything later starts over.
func NextStreak(streak *entities.UserStreak, userID uuid.UUID, now time.Time) entities.UserStreak {
	today := calendarDay(now)

	if streak == nil {
		return entities.UserStreak{
			ID:               uuid.New(),
			UserID:           userID,
			CurrentStreak:    1,
			LongestStreak:    1,
			LastActivityDate: today,
		}
	}

	updated := *streak
	last := calendarDay(streak.LastActivityDate)

	switch {
	case last.Equal(today):
		// Already counted today.
	case last.AddDate(0, 0, 1).Equal(today):
		updated.CurrentStreak++
	default:
		updated.CurrentStreak = 1
	}

	if updated.CurrentStreak > updated.LongestStreak {
		updated.LongestStreak = updated.CurrentStreak
	}
	updated.LastActivityDate = today
	return updated
}

// calendarDay collapses a timestamp to its local calendar date, so an entry
// at 23:50 and one at 00:10 the next day count as consecutive days rather
// than being bucketed by UTC day boundaries.
func calendarDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func (s *gamificationService) evaluateAchievements(ctx context.Context, userID uuid.UUID, streak *entities.UserStreak) {
	award := func(code string) {
		achievement := &entities.UserAchievement{
			ID:       uuid.New(),
			UserID:   userID,
			Code:     code,
			Name:     achievementNames[code],
			EarnedAt: time.Now(),
		}
		if err := s.repository.AwardAchievement(ctx, achievement); err != nil {
			log.Printf("failed to award achievement %s for user %s: %v", code, userID, err)
		}
	}

	totalItems, err := s.repository.CountItems(ctx, userID)
	if err == nil {
		if totalItems >= 1 {
			award(domain.AchievementFirstItem)
		}
		if totalItems >= 10 {
			award(domain.AchievementTenItems)
		}
	}

	scanned, err := s.repository.CountItemsWithBarcode(ctx, userID)
	if err == nil && scanned >= 1 {
		award(domain.AchievementFirstScan)
	}

	if streak.CurrentStreak >= 7 {
		award(domain.AchievementWeekStreak)
	}

	weekAgo := time.Now().AddDate(0, 0, -7)
	wasted, errWasted := s.repository.CountItemsByStatusSince(ctx, userID, entities.StatusWasted, weekAgo)
	consumed, errConsumed := s.repository.CountItemsByStatusSince(ctx, userID, entities.StatusConsumed, weekAgo)
	if errWasted == nil && errConsumed == nil && wasted == 0 && consumed >= 1 {
		award(domain.AchievementZeroWasteWeek)
	}
}

func (s *gamificationService) GetSummary(ctx context.Context, userID string) (domain.GamificationSummaryResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.GamificationSummaryResponse{}, domain.ErrParseUUID
	}

	streak, err := s.repository.GetStreak(ctx, userUUID)
	if err != nil {
		return domain.GamificationSummaryResponse{}, err
	}

	achievements, err := s.repository.GetAchievements(ctx, userUUID)
	if err != nil {
		return domain.GamificationSummaryResponse{}, err
	}

	response := domain.GamificationSummaryResponse{
		Achievements: []domain.AchievementResponse{},
	}
	if streak != nil {
		response.CurrentStreak = streak.CurrentStreak
		response.LongestStreak = streak.LongestStreak
	}
	for _, achievement := range achievements {
		response.Achievements = append(response.Achievements, domain.AchievementResponse{
			Code:     achievement.Code,
			Name:     achievement.Name,
			EarnedAt: achievement.EarnedAt,
		})
	}

	return response, nil
}

func (s *gamificationService) GetWasteAnalytics(ctx context.Context, userID string) (domain.WasteAnalyticsResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.WasteAnalyticsResponse{}, domain.ErrParseUUID
	}

	consumed, err := s.repository.CountItemsByStatus(ctx, userUUID, entities.StatusConsumed)
	if err != nil {
		return domain.WasteAnalyticsResponse{}, err
	}
	wasted, err := s.repository.CountItemsByStatus(ctx, userUUID, entities.StatusWasted)
	if err != nil {
		return domain.WasteAnalyticsResponse{}, err
	}

	response := domain.WasteAnalyticsResponse{
		ConsumedItems: int(consumed),
		WastedItems:   int(wasted),
		ByCategory:    []domain.CategoryWasteStat{},
		ByMonth:       []domain.MonthlyWasteStat{},
	}
	if consumed+wasted > 0 {
		response.WasteRatio = float64(wasted) / float64(consumed+wasted)
	}

	categories, err := s.repository.GetCategoryCounts(ctx, userUUID)
	if err != nil {
		return domain.WasteAnalyticsResponse{}, err
	}
	for _, row := range categories {
		stat := domain.CategoryWasteStat{
			Category: row.Category,
			Total:    int(row.Total),
			Wasted:   int(row.Wasted),
		}
		if row.Total > 0 {
			stat.WasteRatio = float64(row.Wasted) / float64(row.Total)
		}
		response.ByCategory = append(response.ByCategory, stat)
	}

	months, err := s.repository.GetMonthlyCounts(ctx, userUUID, 12)
	if err != nil {
		return domain.WasteAnalyticsResponse{}, err
	}
	for _, row := range months {
		response.ByMonth = append(response.ByMonth, domain.MonthlyWasteStat{
			Month:    row.Month,
			Consumed: int(row.Consumed),
			Wasted:   int(row.Wasted),
		})
	}

	return response, nil
}
