package notification

import (
	"Pantry-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	NotificationRepository interface {
		CreateLog(ctx context.Context, entry *entities.NotificationLog) error
	}

	notificationRepository struct {
		db *gorm.DB
	}
)

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) CreateLog(ctx context.Context, entry *entities.NotificationLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}
