package entities

import (
	"time"

	"github.com/google/uuid"
)

const (
	SourceLocal    = "local"
	SourceExternal = "external"
)

// NutritionInfo holds per-100g macros as reported by the product directory.
type NutritionInfo struct {
	CaloriesPer100g float64 `json:"calories_per_100g"`
	ProteinPer100g  float64 `json:"protein_per_100g"`
	CarbsPer100g    float64 `json:"carbs_per_100g"`
	FatPer100g      float64 `json:"fat_per_100g"`
}

// BarcodeProduct is shared reference data keyed by barcode. It is created on
// first successful resolution, upserted whenever an external lookup succeeds
// and never deleted.
type BarcodeProduct struct {
	ID                uuid.UUID     `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Barcode           string        `gorm:"uniqueIndex;not null" json:"barcode"`
	Name              string        `json:"name"`
	Brand             string        `json:"brand,omitempty"`
	Category          string        `json:"category,omitempty"`
	DefaultExpiryDays int           `json:"default_expiry_days,omitempty"`
	Unit              string        `json:"unit,omitempty"`
	Nutrition         NutritionInfo `gorm:"embedded;embeddedPrefix:nutrition_" json:"nutrition"`
	ImageURL          string        `json:"image_url,omitempty"`
	SourceOrigin      string        `json:"source_origin"` // "local", "external"

	Timestamp
}

// UserExpiryOverride stores a user-chosen expiry for a barcode, one row per
// (user, barcode) pair, independent of the global product default.
type UserExpiryOverride struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID     uuid.UUID `gorm:"uniqueIndex:idx_user_barcode" json:"user_id"`
	Barcode    string    `gorm:"uniqueIndex:idx_user_barcode" json:"barcode"`
	ExpiryDays int       `json:"expiry_days"`
	ExpiryDate time.Time `json:"expiry_date"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
