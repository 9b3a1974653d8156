package entities

import (
	"time"

	"github.com/google/uuid"
)

type NotificationLog struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID  uuid.UUID `json:"user_id"`
	Channel string    `json:"channel"` // "email", "sms"
	Subject string    `json:"subject"`
	Body    string    `gorm:"type:text" json:"body"`
	Status  string    `json:"status"` // "Sent", "Failed"
	ItemID  *string   `json:"item_id,omitempty"`
	SentAt  time.Time `json:"sent_at"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
