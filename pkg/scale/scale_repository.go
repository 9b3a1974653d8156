package scale

import (
	"Pantry-Backend/entities"
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	// ScaleRepository persists weight readings. Readings are append-only and
	// never mutated.
	ScaleRepository interface {
		AddReading(ctx context.Context, reading *entities.WeightReading) error
		GetLatestReading(ctx context.Context, userID string, barcode string) (*entities.WeightReading, error)
		GetReadings(ctx context.Context, userID string, barcode string, limit int) ([]*entities.WeightReading, error)
	}

	scaleRepository struct {
		db *gorm.DB
	}
)

func NewScaleRepository(db *gorm.DB) ScaleRepository {
	return &scaleRepository{db: db}
}

func (r *scaleRepository) AddReading(ctx context.Context, reading *entities.WeightReading) error {
	return r.db.WithContext(ctx).Create(reading).Error
}

func (r *scaleRepository) GetLatestReading(ctx context.Context, userID string, barcode string) (*entities.WeightReading, error) {
	var reading entities.WeightReading
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND barcode = ?", userID, barcode).
		Order("recorded_at desc").
		First(&reading).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reading, nil
}

func (r *scaleRepository) GetReadings(ctx context.Context, userID string, barcode string, limit int) ([]*entities.WeightReading, error) {
	var readings []*entities.WeightReading
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND barcode = ?", userID, barcode).
		Order("recorded_at desc").
		Limit(limit).
		Find(&readings).Error; err != nil {
		return nil, err
	}
	return readings, nil
}
