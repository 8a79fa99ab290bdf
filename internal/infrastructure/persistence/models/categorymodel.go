package models

import "time"

type CategoryModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:100;not null"`
	Slug        string `gorm:"uniqueIndex;size:120;not null"`
	Description string `gorm:"size:500"`
	Icon        string `gorm:"size:100"`
	Color       string `gorm:"size:20"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (CategoryModel) TableName() string {
	return "categories"
}
