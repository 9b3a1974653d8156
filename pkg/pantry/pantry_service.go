package pantry

import (
	"Pantry-Backend/domain"
	"Pantry-Backend/entities"
	"Pantry-Backend/internal/utils/storage"
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	// ExpiryResolver supplies the default shelf life for a barcode, honoring
	// the caller's override before the cached product default.
	ExpiryResolver interface {
		DefaultExpiryDays(ctx context.Context, userID string, barcode string) (int, bool)
	}

	// ActivityRecorder is notified whenever a user logs pantry activity, so
	// streaks and achievements stay current. Failures are non-fatal.
	ActivityRecorder interface {
		RecordActivity(ctx context.Context, userID string) error
	}

	PantryService interface {
		AddItem(ctx context.Context, req domain.AddItemRequest, userID string) (domain.ItemResponse, error)
		UpdateItem(ctx context.Context, id string, req domain.UpdateItemRequest, userID string) error
		DeleteItem(ctx context.Context, id string, userID string) error
		GetItems(ctx context.Context, userID string, status string, page, limit int) ([]domain.ItemResponse, int64, error)
		GetItemByID(ctx context.Context, id string, userID string) (domain.ItemResponse, error)
		MarkConsumed(ctx context.Context, req domain.MarkItemRequest, userID string) error
		MarkWasted(ctx context.Context, req domain.MarkItemRequest, userID string) error
		UploadItemImage(ctx context.Context, req domain.UploadItemImageRequest, userID string) (string, error)
		GetDashboardStats(ctx context.Context, userID string) (domain.DashboardStatsResponse, error)
		GetItemsExpiringWithin(ctx context.Context, userID string, days int) ([]*entities.PantryItem, error)
	}

	pantryService struct {
		pantryRepository PantryRepository
		s3               storage.AwsS3
		expiryResolver   ExpiryResolver
		recorder         ActivityRecorder
	}
)

func NewPantryService(pantryRepository PantryRepository, s3 storage.AwsS3, expiryResolver ExpiryResolver, recorder ActivityRecorder) PantryService {
	return &pantryService{
		pantryRepository: pantryRepository,
		s3:               s3,
		expiryResolver:   expiryResolver,
		recorder:         recorder,
	}
}

func (s *pantryService) AddItem(ctx context.Context, req domain.AddItemRequest, userID string) (domain.ItemResponse, error) {
	if req.Quantity <= 0 {
		return domain.ItemResponse{}, domain.ErrInvalidQuantity
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ItemResponse{}, domain.ErrParseUUID
	}

	expiryDate, err := s.resolveExpiry(ctx, req, userID)
	if err != nil {
		return domain.ItemResponse{}, err
	}

	item := &entities.PantryItem{
		ID:            uuid.New(),
		UserID:        userUUID,
		Name:          req.Name,
		Barcode:       req.Barcode,
		Quantity:      req.Quantity,
		UnitMeasure:   req.UnitMeasure,
		Category:      req.Category,
		ExpiryDate:    expiryDate,
		Status:        DetermineStatus(expiryDate),
		AddedManually: req.Barcode == "",
	}

	if err := s.pantryRepository.AddItem(ctx, item); err != nil {
		return domain.ItemResponse{}, err
	}

	s.recordActivity(ctx, userID)

	return toItemResponse(item), nil
}

// resolveExpiry applies the precedence: explicit date, then the per-user
// override or product default for the barcode.
func (s *pantryService) resolveExpiry(ctx context.Context, req domain.AddItemRequest, userID string) (time.Time, error) {
	if req.ExpiryDate != "" {
		expiryDate, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			return time.Time{}, domain.ErrInvalidExpiryDate
		}
		return expiryDate, nil
	}

	if req.Barcode != "" && s.expiryResolver != nil {
		if days, ok := s.expiryResolver.DefaultExpiryDays(ctx, userID, req.Barcode); ok {
			return time.Now().AddDate(0, 0, days), nil
		}
	}

	return time.Time{}, domain.ErrInvalidExpiryDate
}

func (s *pantryService) UpdateItem(ctx context.Context, id string, req domain.UpdateItemRequest, userID string) error {
	item, err := s.getOwnedItem(ctx, id, userID)
	if err != nil {
		return err
	}

	if req.Name != "" {
		item.Name = req.Name
	}
	if req.Quantity > 0 {
		item.Quantity = req.Quantity
	}
	if req.UnitMeasure != "" {
		item.UnitMeasure = req.UnitMeasure
	}
	if req.Category != "" {
		item.Category = req.Category
	}
	if req.ExpiryDate != "" {
		expiryDate, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			return domain.ErrInvalidExpiryDate
		}
		item.ExpiryDate = expiryDate
		item.Status = DetermineStatus(expiryDate)
	}

	return s.pantryRepository.UpdateItem(ctx, item)
}

func (s *pantryService) DeleteItem(ctx context.Context, id string, userID string) error {
	item, err := s.getOwnedItem(ctx, id, userID)
	if err != nil {
		return err
	}

	if item.ImageURL != "" {
		objectKey := s.s3.GetObjectKeyFromLink(item.ImageURL)
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return s.pantryRepository.DeleteItem(ctx, id)
}

func (s *pantryService) GetItems(ctx context.Context, userID string, status string, page, limit int) ([]domain.ItemResponse, int64, error) {
	items, count, err := s.pantryRepository.GetItems(ctx, userID, status, page, limit)
	if err != nil {
		return nil, 0, err
	}

	var response []domain.ItemResponse
	for _, item := range items {
		response = append(response, toItemResponse(item))
	}

	return response, count, nil
}

func (s *pantryService) GetItemByID(ctx context.Context, id string, userID string) (domain.ItemResponse, error) {
	item, err := s.getOwnedItem(ctx, id, userID)
	if err != nil {
		return domain.ItemResponse{}, err
	}
	return toItemResponse(item), nil
}

func (s *pantryService) MarkConsumed(ctx context.Context, req domain.MarkItemRequest, userID string) error {
	if err := s.markFinal(ctx, req.ItemID, userID, entities.StatusConsumed); err != nil {
		return err
	}
	s.recordActivity(ctx, userID)
	return nil
}

func (s *pantryService) MarkWasted(ctx context.Context, req domain.MarkItemRequest, userID string) error {
	return s.markFinal(ctx, req.ItemID, userID, entities.StatusWasted)
}

func (s *pantryService) markFinal(ctx context.Context, itemID string, userID string, status string) error {
	item, err := s.getOwnedItem(ctx, itemID, userID)
	if err != nil {
		return err
	}
	if item.Status == entities.StatusConsumed || item.Status == entities.StatusWasted {
		return domain.ErrItemNotActive
	}
	return s.pantryRepository.SetItemStatus(ctx, itemID, status)
}

func (s *pantryService) UploadItemImage(ctx context.Context, req domain.UploadItemImageRequest, userID string) (string, error) {
	item, err := s.getOwnedItem(ctx, req.ItemID, userID)
	if err != nil {
		return "", err
	}

	fileName := fmt.Sprintf("pantry-item-%s", item.ID.String())
	var objectKey string
	var uploadErr error

	if item.ImageURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(item.ImageURL)
		if existingKey != "" {
			objectKey, uploadErr = s.s3.UpdateFile(existingKey, req.Image, storage.AllowImage...)
		} else {
			objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "pantry-items", storage.AllowImage...)
		}
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "pantry-items", storage.AllowImage...)
	}

	if uploadErr != nil {
		return "", uploadErr
	}

	item.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	if err := s.pantryRepository.UpdateItem(ctx, item); err != nil {
		return "", err
	}
	return item.ImageURL, nil
}

func (s *pantryService) GetDashboardStats(ctx context.Context, userID string) (domain.DashboardStatsResponse, error) {
	stats, err := s.pantryRepository.GetDashboardStats(ctx, userID)
	if err != nil {
		return domain.DashboardStatsResponse{}, err
	}

	consumed := stats["consumed_items"]

	return domain.DashboardStatsResponse{
		TotalItems:    int(stats["total_items"]),
		SafeItems:     int(stats["safe_items"]),
		WarningItems:  int(stats["warning_items"]),
		ExpiredItems:  int(stats["expired_items"]),
		ConsumedItems: int(consumed),
		WastedItems:   int(stats["wasted_items"]),
		// Rough per-item value of food eaten before it spoiled.
		EstimatedSavings: float64(consumed) * 2.5,
	}, nil
}

func (s *pantryService) GetItemsExpiringWithin(ctx context.Context, userID string, days int) ([]*entities.PantryItem, error) {
	now := time.Now()
	return s.pantryRepository.GetItemsByExpiryRange(ctx, userID, now, now.AddDate(0, 0, days))
}

func (s *pantryService) getOwnedItem(ctx context.Context, id string, userID string) (*entities.PantryItem, error) {
	item, err := s.pantryRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrItemNotFound
		}
		return nil, err
	}
	if item.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedItem
	}
	return item, nil
}

func (s *pantryService) recordActivity(ctx context.Context, userID string) {
	if s.recorder == nil {
		return
	}
	if err := s.recorder.RecordActivity(ctx, userID); err != nil {
		log.Printf("failed to record activity for user %s: %v", userID, err)
	}
}

func toItemResponse(item *entities.PantryItem) domain.ItemResponse {
	return domain.ItemResponse{
		ID:          item.ID.String(),
		Name:        item.Name,
		Barcode:     item.Barcode,
		Quantity:    item.Quantity,
		UnitMeasure: item.UnitMeasure,
		Category:    item.Category,
		ExpiryDate:  item.ExpiryDate,
		Status:      item.Status,
		ImageURL:    item.ImageURL,
		CreatedAt:   item.CreatedAt,
	}
}

// DetermineStatus derives the display status from the expiry date: Expired
// once past, Warning within three days, Safe otherwise.
func DetermineStatus(expiryDate time.Time) string {
	now := time.Now()

	if expiryDate.Before(now) {
		return entities.StatusExpired
	}

	warningThreshold := now.AddDate(0, 0, 3)
	if expiryDate.Before(warningThreshold) {
		return entities.StatusWarning
	}

	return entities.StatusSafe
}
