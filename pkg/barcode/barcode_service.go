package barcode

import (
	"Pantry-Backend/domain"
	"Pantry-Backend/entities"
	"context"
	"log"
	"regexp"
	"time"

	"github.com/google/uuid"
)

var barcodePattern = regexp.MustCompile(`^[0-9]{8,13}$`)

type (
	BarcodeService interface {
		// ResolveProduct runs the two-tier lookup: local cache first, then the
		// external directory with heuristic enrichment and best-effort
		// write-back. Only domain.ErrProductNotFound or a resolved product
		// crosses this boundary.
		ResolveProduct(ctx context.Context, barcodeValue string, userID string) (domain.ResolveProductResponse, error)
		SetExpiryOverride(ctx context.Context, userID string, req domain.SetExpiryOverrideRequest) error
		// DefaultExpiryDays reports the expiry the caller should assume for a
		// barcode: the user's override first, then the cached product default.
		DefaultExpiryDays(ctx context.Context, userID string, barcodeValue string) (int, bool)
	}

	barcodeService struct {
		barcodeRepository BarcodeRepository
		directory         ExternalDirectory
	}
)

func NewBarcodeService(barcodeRepository BarcodeRepository, directory ExternalDirectory) BarcodeService {
	return &barcodeService{
		barcodeRepository: barcodeRepository,
		directory:         directory,
	}
}

func (s *barcodeService) ResolveProduct(ctx context.Context, barcodeValue string, userID string) (domain.ResolveProductResponse, error) {
	if !barcodePattern.MatchString(barcodeValue) {
		return domain.ResolveProductResponse{}, domain.ErrInvalidBarcode
	}

	cached, err := s.barcodeRepository.FindByBarcode(ctx, barcodeValue)
	if err != nil {
		// The cache is an optimization on the read side too: a broken local
		// store degrades to an external lookup, never to a caller-facing error.
		log.Printf("barcode cache read failed for %s: %v", barcodeValue, err)
		cached = nil
	}
	if cached != nil {
		return s.buildResponse(ctx, cached, entities.SourceLocal, userID), nil
	}

	external, _ := s.directory.LookupProduct(ctx, barcodeValue)
	if external == nil {
		return domain.ResolveProductResponse{}, domain.ErrProductNotFound
	}

	category := MapCategory(external.Categories)
	product := &entities.BarcodeProduct{
		ID:                uuid.New(),
		Barcode:           barcodeValue,
		Name:              external.Name,
		Brand:             external.Brand,
		Category:          category,
		DefaultExpiryDays: EstimateExpiryDays(category),
		Unit:              external.Unit,
		ImageURL:          external.ImageURL,
		SourceOrigin:      entities.SourceExternal,
		Nutrition: entities.NutritionInfo{
			CaloriesPer100g: external.CaloriesPer100g,
			ProteinPer100g:  external.ProteinPer100g,
			CarbsPer100g:    external.CarbsPer100g,
			FatPer100g:      external.FatPer100g,
		},
	}

	// Caching is an optimization, not a requirement: a failed write-back must
	// not cost the caller the resolved product.
	if err := s.barcodeRepository.UpsertProduct(ctx, product); err != nil {
		log.Printf("barcode cache write-back failed for %s: %v", barcodeValue, err)
	}

	return s.buildResponse(ctx, product, entities.SourceExternal, userID), nil
}

func (s *barcodeService) SetExpiryOverride(ctx context.Context, userID string, req domain.SetExpiryOverrideRequest) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}
	if !barcodePattern.MatchString(req.Barcode) {
		return domain.ErrInvalidBarcode
	}

	override := &entities.UserExpiryOverride{
		ID:         uuid.New(),
		UserID:     userUUID,
		Barcode:    req.Barcode,
		ExpiryDays: req.ExpiryDays,
		ExpiryDate: time.Now().AddDate(0, 0, req.ExpiryDays),
	}
	return s.barcodeRepository.UpsertOverride(ctx, override)
}

func (s *barcodeService) DefaultExpiryDays(ctx context.Context, userID string, barcodeValue string) (int, bool) {
	if userUUID, err := uuid.Parse(userID); err == nil {
		override, err := s.barcodeRepository.FindOverride(ctx, userUUID, barcodeValue)
		if err == nil && override != nil {
			return override.ExpiryDays, true
		}
	}

	product, err := s.barcodeRepository.FindByBarcode(ctx, barcodeValue)
	if err != nil || product == nil {
		return 0, false
	}
	if product.DefaultExpiryDays > 0 {
		return product.DefaultExpiryDays, true
	}
	return 0, false
}

func (s *barcodeService) buildResponse(ctx context.Context, product *entities.BarcodeProduct, source string, userID string) domain.ResolveProductResponse {
	res := domain.ResolveProductResponse{
		Barcode:           product.Barcode,
		Name:              product.Name,
		Brand:             product.Brand,
		Category:          product.Category,
		DefaultExpiryDays: product.DefaultExpiryDays,
		Unit:              product.Unit,
		ImageURL:          product.ImageURL,
		Source:            source,
	}

	n := product.Nutrition
	if n.CaloriesPer100g > 0 || n.ProteinPer100g > 0 || n.CarbsPer100g > 0 || n.FatPer100g > 0 {
		res.Nutrition = map[string]any{
			"calories_per_100g": n.CaloriesPer100g,
			"protein_per_100g":  n.ProteinPer100g,
			"carbs_per_100g":    n.CarbsPer100g,
			"fat_per_100g":      n.FatPer100g,
		}
	}

	if userUUID, err := uuid.Parse(userID); err == nil {
		if override, err := s.barcodeRepository.FindOverride(ctx, userUUID, product.Barcode); err == nil && override != nil {
			days := override.ExpiryDays
			res.OverrideDays = &days
		}
	}

	return res
}
