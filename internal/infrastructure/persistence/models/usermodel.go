package models

import "time"

type UserModel struct {
	ID                   uint    `gorm:"primaryKey"`
	Email                string  `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash         *string `gorm:"size:255"`
	FirstName            string  `gorm:"size:100"`
	LastName             string  `gorm:"size:100"`
	ProfileImageURL      string  `gorm:"size:500"`
	Role                 string  `gorm:"size:20;not null;default:'user'"`
	IsPremium            bool    `gorm:"not null;default:false"`
	StripeCustomerID     *string `gorm:"size:128;index"`
	StripeSubscriptionID *string `gorm:"size:128"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (UserModel) TableName() string {
	return "users"
}
