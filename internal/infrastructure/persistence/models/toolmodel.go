package models

import (
	"time"

	"gorm.io/datatypes"
)

type ToolModel struct {
	ID               uint   `gorm:"primaryKey"`
	Name             string `gorm:"size:200;not null"`
	Slug             string `gorm:"uniqueIndex;size:220;not null"`
	ShortDescription string `gorm:"size:500;not null"`
	LongDescription  string `gorm:"type:text"`
	Website          string `gorm:"size:500;not null"`
	FeaturedImage    string `gorm:"size:500"`
	PricingModel     string `gorm:"size:20;not null;index"`
	DifficultyLevel  string `gorm:"size:20;not null;index"`
	CategoryID       *uint  `gorm:"index"`
	KeyFeatures      StringList     `gorm:"type:text"`
	TargetAudience   StringList     `gorm:"type:text"`
	Integrations     StringList     `gorm:"type:text"`
	SocialLinks      StringList     `gorm:"type:text"`
	Videos           StringList     `gorm:"type:text"`
	Pros             StringList     `gorm:"type:text"`
	Cons             StringList     `gorm:"type:text"`
	Faqs             datatypes.JSON `gorm:"type:json"`
	PricingTiers     datatypes.JSON `gorm:"type:json"`
	EaseOfUseScore   *float64
	FeaturesScore    *float64
	SupportScore     *float64
	PricingScore     *float64
	IntegrationScore *float64
	OverallScore     *float64 `gorm:"index"`
	Status           string   `gorm:"size:20;not null;index;default:'pending'"`
	IsVerified       bool     `gorm:"not null;default:false"`
	IsFeatured       bool     `gorm:"not null;default:false;index"`
	IsPremiumListing bool     `gorm:"not null;default:false"`
	Views            uint     `gorm:"not null;default:0;index"`
	SubmittedBy      *uint    `gorm:"index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (ToolModel) TableName() string {
	return "tools"
}
