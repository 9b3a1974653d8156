package gamification

import (
	"Pantry-Backend/domain"
	"Pantry-Backend/entities"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGamificationRepository struct {
	streaks      map[string]*entities.UserStreak
	achievements map[string]*entities.UserAchievement

	totalItems    int64
	scannedItems  int64
	wastedSince   int64
	consumedSince int64

	consumedTotal int64
	wastedTotal   int64
	categories    []CategoryCount
	months        []MonthlyCount
}

func newFakeGamificationRepository() *fakeGamificationRepository {
	return &fakeGamificationRepository{
		streaks:      make(map[string]*entities.UserStreak),
		achievements: make(map[string]*entities.UserAchievement),
	}
}

func (f *fakeGamificationRepository) GetStreak(_ context.Context, userID uuid.UUID) (*entities.UserStreak, error) {
	return f.streaks[userID.String()], nil
}

func (f *fakeGamificationRepository) UpsertStreak(_ context.Context, streak *entities.UserStreak) error {
	copied := *streak
	f.streaks[streak.UserID.String()] = &copied
	return nil
}

func (f *fakeGamificationRepository) GetAchievements(_ context.Context, userID uuid.UUID) ([]*entities.UserAchievement, error) {
	var out []*entities.UserAchievement
	for _, achievement := range f.achievements {
		if achievement.UserID == userID {
			out = append(out, achievement)
		}
	}
	return out, nil
}

func (f *fakeGamificationRepository) AwardAchievement(_ context.Context, achievement *entities.UserAchievement) error {
	key := achievement.UserID.String() + ":" + achievement.Code
	if _, exists := f.achievements[key]; exists {
		return nil
	}
	f.achievements[key] = achievement
	return nil
}

func (f *fakeGamificationRepository) CountItems(_ context.Context, _ uuid.UUID) (int64, error) {
	return f.totalItems, nil
}

func (f *fakeGamificationRepository) CountItemsWithBarcode(_ context.Context, _ uuid.UUID) (int64, error) {
	return f.scannedItems, nil
}

func (f *fakeGamificationRepository) CountItemsByStatusSince(_ context.Context, _ uuid.UUID, status string, _ time.Time) (int64, error) {
	if status == entities.StatusWasted {
		return f.wastedSince, nil
	}
	return f.consumedSince, nil
}

func (f *fakeGamificationRepository) CountItemsByStatus(_ context.Context, _ uuid.UUID, status string) (int64, error) {
	if status == entities.StatusWasted {
		return f.wastedTotal, nil
	}
	return f.consumedTotal, nil
}

func (f *fakeGamificationRepository) GetCategoryCounts(_ context.Context, _ uuid.UUID) ([]CategoryCount, error) {
	return f.categories, nil
}

func (f *fakeGamificationRepository) GetMonthlyCounts(_ context.Context, _ uuid.UUID, _ int) ([]MonthlyCount, error) {
	return f.months, nil
}

func (f *fakeGamificationRepository) awardedCodes(userID uuid.UUID) []string {
	var codes []string
	for _, achievement := range f.achievements {
		if achievement.UserID == userID {
			codes = append(codes, achievement.Code)
		}
	}
	return codes
}

func TestNextStreakFirstActivity(t *testing.T) {
	userID := uuid.New()
	now := time.Date(2026, 8, 29, 15, 0, 0, 0, time.UTC)

	streak := NextStreak(nil, userID, now)
	assert.Equal(t, 1, streak.CurrentStreak)
	assert.Equal(t, 1, streak.LongestStreak)
	assert.Equal(t, userID, streak.UserID)
}

func TestNextStreakSameDayIsNoOp(t *testing.T) {
	userID := uuid.New()
	morning := time.Date(2026, 8, 29, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 8, 29, 22, 0, 0, 0, time.UTC)

	streak := NextStreak(nil, userID, morning)
	updated := NextStreak(&streak, userID, evening)
	assert.Equal(t, 1, updated.CurrentStreak)
	assert.Equal(t, 1, updated.LongestStreak)
}

func TestNextStreakConsecutiveDays(t *testing.T) {
	userID := uuid.New()
	start := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

	streak := NextStreak(nil, userID, start)
	for day := 1; day <= 6; day++ {
		streak = NextStreak(&streak, userID, start.AddDate(0, 0, day))
	}
	assert.Equal(t, 7, streak.CurrentStreak)
	assert.Equal(t, 7, streak.LongestStreak)
}

func TestNextStreakUsesLocalCalendarDays(t *testing.T) {
	userID := uuid.New()
	jakarta := time.FixedZone("WIB", 7*60*60)

	// 23:30 and 00:30 the next local day fall on the same UTC day, but they
	// are consecutive calendar days for the user
	lateNight := time.Date(2026, 8, 20, 23, 30, 0, 0, jakarta)
	afterMidnight := time.Date(2026, 8, 21, 0, 30, 0, 0, jakarta)

	streak := NextStreak(nil, userID, lateNight)
	updated := NextStreak(&streak, userID, afterMidnight)
	assert.Equal(t, 2, updated.CurrentStreak)
	assert.Equal(t, 2, updated.LongestStreak)
}

func TestNextStreakGapResetsButKeepsLongest(t *testing.T) {
	userID := uuid.New()
	start := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

	streak := NextStreak(nil, userID, start)
	streak = NextStreak(&streak, userID, start.AddDate(0, 0, 1))
	streak = NextStreak(&streak, userID, start.AddDate(0, 0, 2))
	require.Equal(t, 3, streak.CurrentStreak)

	streak = NextStreak(&streak, userID, start.AddDate(0, 0, 10))
	assert.Equal(t, 1, streak.CurrentStreak)
	assert.Equal(t, 3, streak.LongestStreak)
}

func TestRecordActivityAwardsFirstItem(t *testing.T) {
	repo := newFakeGamificationRepository()
	repo.totalItems = 1
	service := NewGamificationService(repo)
	userID := uuid.New()

	require.NoError(t, service.RecordActivity(context.Background(), userID.String()))

	codes := repo.awardedCodes(userID)
	assert.Contains(t, codes, domain.AchievementFirstItem)
	assert.NotContains(t, codes, domain.AchievementTenItems)
	assert.NotContains(t, codes, domain.AchievementFirstScan)
}

func TestRecordActivityAwardsAreIdempotent(t *testing.T) {
	repo := newFakeGamificationRepository()
	repo.totalItems = 12
	repo.scannedItems = 3
	service := NewGamificationService(repo)
	userID := uuid.New()

	require.NoError(t, service.RecordActivity(context.Background(), userID.String()))
	require.NoError(t, service.RecordActivity(context.Background(), userID.String()))

	codes := repo.awardedCodes(userID)
	assert.ElementsMatch(t, []string{
		domain.AchievementFirstItem,
		domain.AchievementTenItems,
		domain.AchievementFirstScan,
	}, codes)
}

func TestRecordActivityAwardsZeroWasteWeek(t *testing.T) {
	repo := newFakeGamificationRepository()
	repo.totalItems = 1
	repo.consumedSince = 2
	repo.wastedSince = 0
	service := NewGamificationService(repo)
	userID := uuid.New()

	require.NoError(t, service.RecordActivity(context.Background(), userID.String()))
	assert.Contains(t, repo.awardedCodes(userID), domain.AchievementZeroWasteWeek)

	other := uuid.New()
	repo.wastedSince = 1
	require.NoError(t, service.RecordActivity(context.Background(), other.String()))
	assert.NotContains(t, repo.awardedCodes(other), domain.AchievementZeroWasteWeek)
}

func TestRecordActivityAwardsWeekStreak(t *testing.T) {
	repo := newFakeGamificationRepository()
	service := NewGamificationService(repo)
	userID := uuid.New()

	repo.streaks[userID.String()] = &entities.UserStreak{
		ID:               uuid.New(),
		UserID:           userID,
		CurrentStreak:    6,
		LongestStreak:    6,
		LastActivityDate: time.Now().AddDate(0, 0, -1),
	}

	require.NoError(t, service.RecordActivity(context.Background(), userID.String()))
	assert.Contains(t, repo.awardedCodes(userID), domain.AchievementWeekStreak)
	assert.Equal(t, 7, repo.streaks[userID.String()].CurrentStreak)
}

func TestRecordActivityRejectsBadUserID(t *testing.T) {
	service := NewGamificationService(newFakeGamificationRepository())
	err := service.RecordActivity(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrParseUUID)
}

func TestGetSummary(t *testing.T) {
	repo := newFakeGamificationRepository()
	service := NewGamificationService(repo)
	userID := uuid.New()

	summary, err := service.GetSummary(context.Background(), userID.String())
	require.NoError(t, err)
	assert.Zero(t, summary.CurrentStreak)
	assert.Empty(t, summary.Achievements)

	repo.streaks[userID.String()] = &entities.UserStreak{
		UserID: userID, CurrentStreak: 4, LongestStreak: 9,
	}
	repo.achievements[userID.String()+":"+domain.AchievementFirstItem] = &entities.UserAchievement{
		UserID: userID, Code: domain.AchievementFirstItem, Name: "First Item Logged",
	}

	summary, err = service.GetSummary(context.Background(), userID.String())
	require.NoError(t, err)
	assert.Equal(t, 4, summary.CurrentStreak)
	assert.Equal(t, 9, summary.LongestStreak)
	require.Len(t, summary.Achievements, 1)
	assert.Equal(t, domain.AchievementFirstItem, summary.Achievements[0].Code)
}

func TestGetWasteAnalytics(t *testing.T) {
	repo := newFakeGamificationRepository()
	repo.consumedTotal = 6
	repo.wastedTotal = 2
	repo.categories = []CategoryCount{
		{Category: "Dairy", Total: 4, Wasted: 1},
		{Category: "Produce", Total: 4, Wasted: 1},
	}
	repo.months = []MonthlyCount{
		{Month: "2026-07", Consumed: 3, Wasted: 1},
		{Month: "2026-08", Consumed: 3, Wasted: 1},
	}
	service := NewGamificationService(repo)

	analytics, err := service.GetWasteAnalytics(context.Background(), uuid.NewString())
	require.NoError(t, err)
	assert.Equal(t, 6, analytics.ConsumedItems)
	assert.Equal(t, 2, analytics.WastedItems)
	assert.InDelta(t, 0.25, analytics.WasteRatio, 0.001)
	require.Len(t, analytics.ByCategory, 2)
	assert.InDelta(t, 0.25, analytics.ByCategory[0].WasteRatio, 0.001)
	require.Len(t, analytics.ByMonth, 2)
	assert.Equal(t, "2026-07", analytics.ByMonth[0].Month)
}

func TestGetWasteAnalyticsNoActivity(t *testing.T) {
	service := NewGamificationService(newFakeGamificationRepository())

	analytics, err := service.GetWasteAnalytics(context.Background(), uuid.NewString())
	require.NoError(t, err)
	assert.Zero(t, analytics.WasteRatio)
	assert.Empty(t, analytics.ByCategory)
	assert.Empty(t, analytics.ByMonth)
}
