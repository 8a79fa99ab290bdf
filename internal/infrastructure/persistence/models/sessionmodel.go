package models

import "time"

type SessionModel struct {
	ID               string `gorm:"primaryKey;size:64"`
	UserID           uint   `gorm:"index;not null"`
	IPAddress        string `gorm:"size:45"`
	UserAgent        string `gorm:"size:500"`
	RefreshTokenHash string `gorm:"uniqueIndex;size:64;not null"`
	ExpiresAt        time.Time `gorm:"index;not null"`
	LastActivityAt   time.Time
	CreatedAt        time.Time
}

func (SessionModel) TableName() string {
	return "sessions"
}
