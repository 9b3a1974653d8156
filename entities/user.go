package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name       string    `json:"name"`
	Email      string    `gorm:"uniqueIndex" json:"email"`
	Password   string    `json:"-"`
	Phone      string    `json:"phone,omitempty"`
	Role       string    `json:"role"`
	IsVerified bool      `json:"is_verified"`

	// Notification preferences
	NotifyByEmail  bool `gorm:"default:true" json:"notify_by_email"`
	NotifyBySMS    bool `json:"notify_by_sms"`
	ExpiryLeadDays int  `gorm:"default:3" json:"expiry_lead_days"`

	Timestamp
}
