package gamification

import (
	"Pantry-Backend/entities"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	CategoryCount struct {
		Category string
		Total    int64
		Wasted   int64
	}

	MonthlyCount struct {
		Month    string
		Consumed int64
		Wasted   int64
	}

	GamificationRepository interface {
		GetStreak(ctx context.Context, userID uuid.UUID) (*entities.UserStreak, error)
		UpsertStreak(ctx context.Context, streak *entities.UserStreak) error
		GetAchievements(ctx context.Context, userID uuid.UUID) ([]*entities.UserAchievement, error)
		// AwardAchievement is idempotent per (user, code).
		AwardAchievement(ctx context.Context, achievement *entities.UserAchievement) error

		CountItems(ctx context.Context, userID uuid.UUID) (int64, error)
		CountItemsWithBarcode(ctx context.Context, userID uuid.UUID) (int64, error)
		CountItemsByStatusSince(ctx context.Context, userID uuid.UUID, status string, since time.Time) (int64, error)
		CountItemsByStatus(ctx context.Context, userID uuid.UUID, status string) (int64, error)
		GetCategoryCounts(ctx context.Context, userID uuid.UUID) ([]CategoryCount, error)
		GetMonthlyCounts(ctx context.Context, userID uuid.UUID, months int) ([]MonthlyCount, error)
	}

	gamificationRepository struct {
		db *gorm.DB
	}
)

func NewGamificationRepository(db *gorm.DB) GamificationRepository {
	return &gamificationRepository{db: db}
}

func (r *gamificationRepository) GetStreak(ctx context.Context, userID uuid.UUID) (*entities.UserStreak, error) {
	var streak entities.UserStreak
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&streak).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &streak, nil
}

func (r *gamificationRepository) UpsertStreak(ctx context.Context, streak *entities.UserStreak) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"current_streak", "longest_streak", "last_activity_date", "updated_at"}),
	}).Create(streak).Error
}

func (r *gamificationRepository) GetAchievements(ctx context.Context, userID uuid.UUID) ([]*entities.UserAchievement, error) {
	var achievements []*entities.UserAchievement
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("earned_at asc").
		Find(&achievements).Error; err != nil {
		return nil, err
	}
	return achievements, nil
}

func (r *gamificationRepository) AwardAchievement(ctx context.Context, achievement *entities.UserAchievement) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "code"}},
		DoNothing: true,
	}).Create(achievement).Error
}

func (r *gamificationRepository) CountItems(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.PantryItem{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *gamificationRepository) CountItemsWithBarcode(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.PantryItem{}).
		Where("user_id = ? AND barcode <> ''", userID).
		Count(&count).Error
	return count, err
}

func (r *gamificationRepository) CountItemsByStatusSince(ctx context.Context, userID uuid.UUID, status string, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.PantryItem{}).
		Where("user_id = ? AND status = ? AND updated_at >= ?", userID, status, since).
		Count(&count).Error
	return count, err
}

func (r *gamificationRepository) CountItemsByStatus(ctx context.Context, userID uuid.UUID, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.PantryItem{}).
		Where("user_id = ? AND status = ?", userID, status).
		Count(&count).Error
	return count, err
}

func (r *gamificationRepository) GetCategoryCounts(ctx context.Context, userID uuid.UUID) ([]CategoryCount, error) {
	var rows []CategoryCount
	err := r.db.WithContext(ctx).Model(&entities.PantryItem{}).
		Select("category, COUNT(*) AS total, SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) AS wasted", entities.StatusWasted).
		Where("user_id = ?", userID).
		Group("category").
		Order("category asc").
		Scan(&rows).Error
	return rows, err
}

func (r *gamificationRepository) GetMonthlyCounts(ctx context.Context, userID uuid.UUID, months int) ([]MonthlyCount, error) {
	var rows []MonthlyCount
	since := time.Now().AddDate(0, -months, 0)
	err := r.db.WithContext(ctx).Model(&entities.PantryItem{}).
		Select("to_char(updated_at, 'YYYY-MM') AS month, "+
			"SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) AS consumed, "+
			"SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) AS wasted",
			entities.StatusConsumed, entities.StatusWasted).
		Where("user_id = ? AND updated_at >= ? AND status IN ?",
			userID, since, []string{entities.StatusConsumed, entities.StatusWasted}).
		Group("to_char(updated_at, 'YYYY-MM')").
		Order("month asc").
		Scan(&rows).Error
	return rows, err
}
