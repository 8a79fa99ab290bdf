package models

import "time"

type ReviewModel struct {
	ID           uint   `gorm:"primaryKey"`
	ToolID       uint   `gorm:"uniqueIndex:idx_reviews_tool_user;not null"`
	UserID       uint   `gorm:"uniqueIndex:idx_reviews_tool_user;index;not null"`
	Rating       int    `gorm:"not null"`
	Experience   string `gorm:"type:text;not null"`
	Dislikes     string `gorm:"type:text"`
	Improvements string `gorm:"type:text"`
	IsApproved   bool   `gorm:"not null;default:false;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (ReviewModel) TableName() string {
	return "reviews"
}
