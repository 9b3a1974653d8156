package barcode

import (
	"Pantry-Backend/entities"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	BarcodeRepository interface {
		// FindByBarcode is a pure read against the local cache; a miss is
		// (nil, nil), not an error.
		FindByBarcode(ctx context.Context, barcode string) (*entities.BarcodeProduct, error)
		UpsertProduct(ctx context.Context, product *entities.BarcodeProduct) error
		FindOverride(ctx context.Context, userID uuid.UUID, barcode string) (*entities.UserExpiryOverride, error)
		UpsertOverride(ctx context.Context, override *entities.UserExpiryOverride) error
	}

	barcodeRepository struct {
		db *gorm.DB
	}
)

func NewBarcodeRepository(db *gorm.DB) BarcodeRepository {
	return &barcodeRepository{db: db}
}

func (r *barcodeRepository) FindByBarcode(ctx context.Context, barcode string) (*entities.BarcodeProduct, error) {
	var product entities.BarcodeProduct
	if err := r.db.WithContext(ctx).Where("barcode = ?", barcode).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *barcodeRepository) UpsertProduct(ctx context.Context, product *entities.BarcodeProduct) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "barcode"}},
		UpdateAll: true,
	}).Create(product).Error
}

func (r *barcodeRepository) FindOverride(ctx context.Context, userID uuid.UUID, barcode string) (*entities.UserExpiryOverride, error) {
	var override entities.UserExpiryOverride
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND barcode = ?", userID, barcode).
		First(&override).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &override, nil
}

func (r *barcodeRepository) UpsertOverride(ctx context.Context, override *entities.UserExpiryOverride) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "barcode"}},
		DoUpdates: clause.AssignmentColumns([]string{"expiry_days", "expiry_date", "updated_at"}),
	}).Create(override).Error
}
