package pantry

import (
	"Pantry-Backend/entities"
	"context"
	"time"

	"gorm.io/gorm"
)

type (
	PantryRepository interface {
		AddItem(ctx context.Context, item *entities.PantryItem) error
		GetItemByID(ctx context.Context, id string) (*entities.PantryItem, error)
		UpdateItem(ctx context.Context, item *entities.PantryItem) error
		DeleteItem(ctx context.Context, id string) error
		GetItems(ctx context.Context, userID string, status string, page, limit int) ([]*entities.PantryItem, int64, error)
		GetItemsByExpiryRange(ctx context.Context, userID string, startDate, endDate time.Time) ([]*entities.PantryItem, error)
		SetItemStatus(ctx context.Context, id string, status string) error
		GetDashboardStats(ctx context.Context, userID string) (map[string]int64, error)
	}

	pantryRepository struct {
		db *gorm.DB
	}
)

func NewPantryRepository(db *gorm.DB) PantryRepository {
	return &pantryRepository{db: db}
}

func (r *pantryRepository) AddItem(ctx context.Context, item *entities.PantryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *pantryRepository) GetItemByID(ctx context.Context, id string) (*entities.PantryItem, error) {
	var item entities.PantryItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *pantryRepository) UpdateItem(ctx context.Context, item *entities.PantryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *pantryRepository) DeleteItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.PantryItem{}).Error
}

func (r *pantryRepository) GetItems(ctx context.Context, userID string, status string, page, limit int) ([]*entities.PantryItem, int64, error) {
	var items []*entities.PantryItem
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if status != "all" && status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Model(&entities.PantryItem{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).Order("expiry_date asc").Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, count, nil
}

func (r *pantryRepository) GetItemsByExpiryRange(ctx context.Context, userID string, startDate, endDate time.Time) ([]*entities.PantryItem, error) {
	var items []*entities.PantryItem

	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND expiry_date BETWEEN ? AND ? AND status IN ?",
			userID, startDate, endDate, []string{entities.StatusSafe, entities.StatusWarning}).
		Order("expiry_date asc").
		Find(&items).Error; err != nil {
		return nil, err
	}

	return items, nil
}

func (r *pantryRepository) SetItemStatus(ctx context.Context, id string, status string) error {
	return r.db.WithContext(ctx).Model(&entities.PantryItem{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": status}).Error
}

func (r *pantryRepository) GetDashboardStats(ctx context.Context, userID string) (map[string]int64, error) {
	stats := map[string]int64{}

	var total int64
	if err := r.db.WithContext(ctx).Model(&entities.PantryItem{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, err
	}
	stats["total_items"] = total

	statuses := map[string]string{
		"safe_items":     entities.StatusSafe,
		"warning_items":  entities.StatusWarning,
		"expired_items":  entities.StatusExpired,
		"consumed_items": entities.StatusConsumed,
		"wasted_items":   entities.StatusWasted,
	}
	for key, status := range statuses {
		var count int64
		if err := r.db.WithContext(ctx).Model(&entities.PantryItem{}).
			Where("user_id = ? AND status = ?", userID, status).
			Count(&count).Error; err != nil {
			return nil, err
		}
		stats[key] = count
	}

	return stats, nil
}
