package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"toolvault/internal/domain/review"
	"toolvault/internal/infrastructure/persistence/mappers"
	"toolvault/internal/infrastructure/persistence/models"
	"toolvault/internal/shared/db"
	apperrors "toolvault/internal/shared/errors"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, rev *review.Review) error {
	model := mappers.ReviewToModel(rev)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	rev.SetID(model.ID)
	return nil
}

func (r *ReviewRepository) Update(ctx context.Context, rev *review.Review) error {
	model := mappers.ReviewToModel(rev)
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.ReviewModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"is_approved": model.IsApproved,
			"updated_at":  model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update review: %w", result.Error)
	}
	return nil
}

func (r *ReviewRepository) GetByID(ctx context.Context, id uint) (*review.Review, error) {
	var model models.ReviewModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("review not found")
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}
	return mappers.ReviewToDomain(&model), nil
}

func (r *ReviewRepository) ExistsByToolAndUser(ctx context.Context, toolID, userID uint) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.ReviewModel{}).
		Where("tool_id = ? AND user_id = ?", toolID, userID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check review existence: %w", err)
	}
	return count > 0, nil
}

func (r *ReviewRepository) ListApprovedByTool(ctx context.Context, toolID uint, limit, offset int) ([]*review.Review, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).
		Model(&models.ReviewModel{}).
		Where("tool_id = ? AND is_approved = ?", toolID, true)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count reviews: %w", err)
	}

	var ms []*models.ReviewModel
	if err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&ms).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list reviews: %w", err)
	}
	return mappers.ReviewsToDomain(ms), total, nil
}

func (r *ReviewRepository) ListPending(ctx context.Context) ([]*review.Review, error) {
	var ms []*models.ReviewModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("is_approved = ?", false).
		Order("created_at ASC").
		Find(&ms).Error; err != nil {
		return nil, fmt.Errorf("failed to list pending reviews: %w", err)
	}
	return mappers.ReviewsToDomain(ms), nil
}
