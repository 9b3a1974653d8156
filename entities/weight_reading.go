package entities

import (
	"time"

	"github.com/google/uuid"
)

// WeightReading is a single measurement from a (real or simulated) pantry
// scale. Readings are append-only; the most recent one by RecordedAt is the
// current weight for a barcode.
type WeightReading struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Barcode     string    `gorm:"index" json:"barcode"`
	SensorID    string    `json:"sensor_id"`
	WeightValue float64   `json:"weight_value"`
	Unit        string    `json:"unit"`
	RecordedAt  time.Time `gorm:"index" json:"recorded_at"`

	// Optional telemetry reported by the device
	Temperature    *float64 `json:"temperature,omitempty"`
	BatteryLevel   *int     `json:"battery_level,omitempty"`
	SignalStrength *int     `json:"signal_strength,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
