package models

import "time"

// FavoriteModel enforces idempotency at the schema level through the
// composite unique index on (user_id, tool_id).
type FavoriteModel struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"uniqueIndex:idx_user_tool;not null"`
	ToolID    uint `gorm:"uniqueIndex:idx_user_tool;not null"`
	CreatedAt time.Time
}

func (FavoriteModel) TableName() string {
	return "user_favorites"
}
