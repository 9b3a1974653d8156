package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddReading = "weight reading recorded successfully"
	MessageSuccessGetCurrent = "current weight retrieved successfully"
	MessageSuccessGetHistory = "weight history retrieved successfully"

	MessageFailedAddReading = "failed to record weight reading"
	MessageFailedGetCurrent = "failed to retrieve current weight"
	MessageFailedGetHistory = "failed to retrieve weight history"

	ErrNoReadings      = errors.New("no weight readings for barcode")
	ErrInvalidWeight   = errors.New("weight value must not be negative")
	ErrInvalidSensorID = errors.New("sensor id is required")
)

type (
	AddReadingRequest struct {
		Barcode     string   `json:"barcode" validate:"required,numeric,min=8,max=13"`
		SensorID    string   `json:"sensor_id" validate:"required"`
		WeightValue float64  `json:"weight_value" validate:"min=0"`
		Unit        string   `json:"unit" validate:"required"`
		RecordedAt  string   `json:"recorded_at" validate:"omitempty"`

		Temperature    *float64 `json:"temperature" validate:"omitempty"`
		BatteryLevel   *int     `json:"battery_level" validate:"omitempty,min=0,max=100"`
		SignalStrength *int     `json:"signal_strength" validate:"omitempty"`
	}

	ReadingResponse struct {
		ID          string    `json:"id"`
		Barcode     string    `json:"barcode"`
		SensorID    string    `json:"sensor_id"`
		WeightValue float64   `json:"weight_value"`
		Unit        string    `json:"unit"`
		RecordedAt  time.Time `json:"recorded_at"`

		Temperature    *float64 `json:"temperature,omitempty"`
		BatteryLevel   *int     `json:"battery_level,omitempty"`
		SignalStrength *int     `json:"signal_strength,omitempty"`
	}
)
