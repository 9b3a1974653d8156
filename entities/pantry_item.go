package entities

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusSafe     = "Safe"
	StatusWarning  = "Warning"
	StatusExpired  = "Expired"
	StatusConsumed = "Consumed"
	StatusWasted   = "Wasted"
)

type PantryItem struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	Name          string    `json:"name"`
	Barcode       string    `json:"barcode,omitempty"`
	Quantity      int       `json:"quantity"`
	UnitMeasure   string    `json:"unit_measure"`
	Category      string    `json:"category"`
	ExpiryDate    time.Time `json:"expiry_date"`
	Status        string    `json:"status"` // "Safe", "Warning", "Expired", "Consumed", "Wasted"
	ImageURL      string    `json:"image_url,omitempty"`
	AddedManually bool      `json:"added_manually"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
