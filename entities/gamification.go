package entities

import (
	"time"

	"github.com/google/uuid"
)

type UserStreak struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID           uuid.UUID `gorm:"uniqueIndex" json:"user_id"`
	CurrentStreak    int       `json:"current_streak"`
	LongestStreak    int       `json:"longest_streak"`
	LastActivityDate time.Time `json:"last_activity_date"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}

type UserAchievement struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID   uuid.UUID `gorm:"uniqueIndex:idx_user_achievement" json:"user_id"`
	Code     string    `gorm:"uniqueIndex:idx_user_achievement" json:"code"`
	Name     string    `json:"name"`
	EarnedAt time.Time `json:"earned_at"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
