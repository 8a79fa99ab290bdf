package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"toolvault/internal/domain/favorite"
	"toolvault/internal/infrastructure/persistence/mappers"
	"toolvault/internal/infrastructure/persistence/models"
	"toolvault/internal/shared/db"
)

type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Add upserts against the (user_id, tool_id) unique index so re-adding an
// existing favorite is a no-op rather than a constraint error.
func (r *FavoriteRepository) Add(ctx context.Context, fav *favorite.Favorite) error {
	model := mappers.FavoriteToModel(fav)
	if err := db.GetTxFromContext(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "tool_id"}},
			DoNothing: true,
		}).
		Create(model).Error; err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	fav.SetID(model.ID)
	return nil
}

func (r *FavoriteRepository) Remove(ctx context.Context, userID, toolID uint) error {
	if err := db.GetTxFromContext(ctx, r.db).
		Where("user_id = ? AND tool_id = ?", userID, toolID).
		Delete(&models.FavoriteModel{}).Error; err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}

func (r *FavoriteRepository) Exists(ctx context.Context, userID, toolID uint) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.FavoriteModel{}).
		Where("user_id = ? AND tool_id = ?", userID, toolID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}
	return count > 0, nil
}

func (r *FavoriteRepository) ListByUser(ctx context.Context, userID uint) ([]*favorite.Favorite, error) {
	var ms []*models.FavoriteModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&ms).Error; err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	return mappers.FavoritesToDomain(ms), nil
}
