package models

import "time"

type ComparisonModel struct {
	ID        uint     `gorm:"primaryKey"`
	UserID    uint     `gorm:"index;not null"`
	ToolIDs   UintList `gorm:"type:text;not null"`
	CreatedAt time.Time
}

func (ComparisonModel) TableName() string {
	return "tool_comparisons"
}
