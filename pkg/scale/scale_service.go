package scale

import (
	"Pantry-Backend/domain"
	"Pantry-Backend/entities"
	"context"
	"time"

	"github.com/google/uuid"
)

const maxHistoryLimit = 200

type (
	ScaleService interface {
		AddReading(ctx context.Context, req domain.AddReadingRequest, userID string) (domain.ReadingResponse, error)
		GetCurrentWeight(ctx context.Context, userID string, barcode string) (domain.ReadingResponse, error)
		GetHistory(ctx context.Context, userID string, barcode string, limit int) ([]domain.ReadingResponse, error)
	}

	scaleService struct {
		scaleRepository ScaleRepository
	}
)

func NewScaleService(scaleRepository ScaleRepository) ScaleService {
	return &scaleService{scaleRepository: scaleRepository}
}

func (s *scaleService) AddReading(ctx context.Context, req domain.AddReadingRequest, userID string) (domain.ReadingResponse, error) {
	if req.WeightValue < 0 {
		return domain.ReadingResponse{}, domain.ErrInvalidWeight
	}
	if req.SensorID == "" {
		return domain.ReadingResponse{}, domain.ErrInvalidSensorID
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ReadingResponse{}, domain.ErrParseUUID
	}

	recordedAt := time.Now()
	if req.RecordedAt != "" {
		if parsed, err := time.Parse(time.RFC3339, req.RecordedAt); err == nil {
			recordedAt = parsed
		}
	}

	reading := &entities.WeightReading{
		ID:             uuid.New(),
		UserID:         userUUID,
		Barcode:        req.Barcode,
		SensorID:       req.SensorID,
		WeightValue:    req.WeightValue,
		Unit:           req.Unit,
		RecordedAt:     recordedAt,
		Temperature:    req.Temperature,
		BatteryLevel:   req.BatteryLevel,
		SignalStrength: req.SignalStrength,
	}

	if err := s.scaleRepository.AddReading(ctx, reading); err != nil {
		return domain.ReadingResponse{}, err
	}

	return toReadingResponse(reading), nil
}

func (s *scaleService) GetCurrentWeight(ctx context.Context, userID string, barcode string) (domain.ReadingResponse, error) {
	reading, err := s.scaleRepository.GetLatestReading(ctx, userID, barcode)
	if err != nil {
		return domain.ReadingResponse{}, err
	}
	if reading == nil {
		return domain.ReadingResponse{}, domain.ErrNoReadings
	}
	return toReadingResponse(reading), nil
}

func (s *scaleService) GetHistory(ctx context.Context, userID string, barcode string, limit int) ([]domain.ReadingResponse, error) {
	if limit < 1 || limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	readings, err := s.scaleRepository.GetReadings(ctx, userID, barcode, limit)
	if err != nil {
		return nil, err
	}

	var response []domain.ReadingResponse
	for _, reading := range readings {
		response = append(response, toReadingResponse(reading))
	}
	return response, nil
}

func toReadingResponse(reading *entities.WeightReading) domain.ReadingResponse {
	return domain.ReadingResponse{
		ID:             reading.ID.String(),
		Barcode:        reading.Barcode,
		SensorID:       reading.SensorID,
		WeightValue:    reading.WeightValue,
		Unit:           reading.Unit,
		RecordedAt:     reading.RecordedAt,
		Temperature:    reading.Temperature,
		BatteryLevel:   reading.BatteryLevel,
		SignalStrength: reading.SignalStrength,
	}
}
